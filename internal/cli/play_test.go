package cli

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"citysim/internal/city"
	"citysim/internal/repository"
	"citysim/internal/repository/db"
	"citysim/internal/service"
)

func init() {
	color.NoColor = true
}

type harness struct {
	repos *repository.Repository
	env   *Env
}

func newHarness(t *testing.T, cfg city.Config) *harness {
	t.Helper()
	conn, err := db.InitDB(filepath.Join(t.TempDir(), "play.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	repos := repository.NewRepository(conn)
	return &harness{
		repos: repos,
		env: &Env{
			Saves:      repos.CityRepo,
			Highscores: repos.HighscoreRepo,
			Session:    service.SessionOptions{City: cfg, Seed: 21},
			Slot:       "default",
		},
	}
}

func (h *harness) open(*cobra.Command) (*Env, func(), error) {
	return h.env, func() {}, nil
}

// play runs `play args...` and returns the combined output.
func (h *harness) play(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewPlayCmd(h.open)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestPlay_FirstCommandFoundsCityAndSaves(t *testing.T) {
	h := newHarness(t, city.DefaultConfig())

	out, err := h.play(t, "build", "residential")
	require.NoError(t, err)
	assert.Contains(t, out, `Slot "default" is empty`)
	assert.Contains(t, out, "Built Residential #0")

	snap, err := h.repos.CityRepo.Load(context.Background(), "default")
	require.NoError(t, err)
	require.Len(t, snap.Buildings, 1)
	assert.Equal(t, city.DefaultBudget-city.Residential.Cost(), snap.Budget)
}

func TestPlay_CommandsAccumulateInSlot(t *testing.T) {
	h := newHarness(t, city.DefaultConfig())

	_, err := h.play(t, "--slot", "alpha", "build", "commercial")
	require.NoError(t, err)
	_, err = h.play(t, "--slot", "alpha", "tax", "0.15")
	require.NoError(t, err)
	out, err := h.play(t, "--slot", "alpha", "tick", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "Day 1: income")
	assert.Contains(t, out, "Day 3: income")

	snap, err := h.repos.CityRepo.Load(context.Background(), "alpha")
	require.NoError(t, err)
	assert.Equal(t, 3, snap.Day)
	assert.Equal(t, 0.15, snap.TaxRate)
	assert.Len(t, snap.Buildings, 1)

	_, err = h.repos.CityRepo.Load(context.Background(), "default")
	assert.ErrorIs(t, err, repository.ErrSaveNotFound)
}

func TestPlay_RateIsClamped(t *testing.T) {
	h := newHarness(t, city.DefaultConfig())

	out, err := h.play(t, "vat", "0.9")
	require.NoError(t, err)
	assert.Contains(t, out, "clamped")
	assert.Contains(t, out, "vat rate set to 25%")
}

func TestPlay_InvalidInput(t *testing.T) {
	h := newHarness(t, city.DefaultConfig())

	_, err := h.play(t, "build", "castle")
	assert.ErrorIs(t, err, city.ErrUnknownBuildingType)

	_, err = h.play(t, "tax", "lots")
	assert.ErrorIs(t, err, service.ErrInvalidArgument)

	_, err = h.play(t, "tick", "0")
	assert.ErrorIs(t, err, service.ErrInvalidArgument)

	_, err = h.repos.CityRepo.Load(context.Background(), "default")
	assert.ErrorIs(t, err, repository.ErrSaveNotFound, "failed commands must not save")
}

func TestPlay_UnaffordableBuildIsNotSaved(t *testing.T) {
	h := newHarness(t, city.Config{Families: 10, Budget: 100, Satisfaction: 50})

	_, err := h.play(t, "build", "power plant")
	assert.ErrorIs(t, err, service.ErrInsufficientFunds)
}

func TestPlay_GameOverSubmitsHighscore(t *testing.T) {
	h := newHarness(t, city.Config{Families: 100, Budget: 10, Satisfaction: 50})

	out, err := h.play(t, "--player", "ada", "tick")
	require.NoError(t, err)
	assert.Contains(t, out, "GAME OVER: the city went bankrupt")
	assert.Contains(t, out, "Recorded highscore #1 for ada")

	top, err := h.repos.HighscoreRepo.Top(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "ada", top[0].Name)
	assert.Equal(t, 1, top[0].Day)

	_, err = h.play(t, "tick")
	assert.True(t, errors.Is(err, service.ErrGameOver), "got %v", err)

	out, err = h.play(t, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "GAME OVER")

	_, err = h.play(t, "new")
	require.NoError(t, err)
	_, err = h.play(t, "build", "park")
	assert.ErrorIs(t, err, service.ErrInsufficientFunds, "new city has budget 10 again")
}

func TestPlay_StatusAndEvents(t *testing.T) {
	h := newHarness(t, city.DefaultConfig())
	_, err := h.play(t, "tick", "2")
	require.NoError(t, err)

	out, err := h.play(t, "status")
	require.NoError(t, err)
	assert.Contains(t, out, "== default, day 2 ==")
	assert.Contains(t, out, "Residential")
	assert.Contains(t, out, "Coverage")

	out, err = h.play(t, "events", "--tag", "warning", "--recent", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "Day 1: WARNING")
	assert.NotContains(t, out, "City founded")

	out, err = h.play(t, "events", "--notable", "--recent", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Day 2:")
}

func TestPlay_CatalogAndListings(t *testing.T) {
	h := newHarness(t, city.DefaultConfig())

	out, err := h.play(t, "catalog")
	require.NoError(t, err)
	for _, bt := range city.AllBuildingTypes() {
		assert.Contains(t, out, bt.String())
	}

	out, err = h.play(t, "highscores")
	require.NoError(t, err)
	assert.Contains(t, out, "No scores yet.")

	_, err = h.play(t, "--slot", "beta", "new")
	require.NoError(t, err)
	out, err = h.play(t, "slots")
	require.NoError(t, err)
	assert.Contains(t, out, "beta")
}

func TestPlay_CorruptSlotIsReported(t *testing.T) {
	h := newHarness(t, city.DefaultConfig())
	snap := city.New(city.DefaultConfig()).Snapshot()
	snap.Satisfaction = 900
	require.NoError(t, h.repos.CityRepo.Save(context.Background(), "default", snap))

	_, err := h.play(t, "status")
	assert.ErrorIs(t, err, repository.ErrCorruptSave)

	// new replaces the corrupt slot without reading it
	_, err = h.play(t, "new")
	require.NoError(t, err)
	_, err = h.play(t, "status")
	require.NoError(t, err)
}
