package city

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"citysim/internal/models"
)

func playedCity(t *testing.T) *City {
	t.Helper()
	c := New(DefaultConfig())
	c.SetTaxRate(0.12)
	c.SetVatRate(0.07)
	for _, bt := range []BuildingType{Residential, Residential, Commercial, Industrial, Hospital, Park} {
		c.AddBuilding(bt)
	}
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 30; i++ {
		c.NextDay(rng)
	}
	return c
}

func TestSnapshot_RoundTrip(t *testing.T) {
	c := playedCity(t)

	restored, err := Restore(c.Snapshot())
	require.NoError(t, err)

	assert.Equal(t, c.Snapshot(), restored.Snapshot())
	assert.Equal(t, c.Buildings(), restored.Buildings())
	assert.Equal(t, c.Events(), restored.Events())
	assert.Equal(t, c.Score(), restored.Score())
}

func TestSnapshot_RoundTripThroughJSON(t *testing.T) {
	c := playedCity(t)

	raw, err := json.Marshal(c.Snapshot())
	require.NoError(t, err)

	var snap models.CitySnapshot
	require.NoError(t, json.Unmarshal(raw, &snap))

	restored, err := Restore(snap)
	require.NoError(t, err)
	assert.Equal(t, c.Snapshot(), restored.Snapshot())
}

func TestSnapshot_RestoredCityKeepsSimulatingIdentically(t *testing.T) {
	c := playedCity(t)
	restored, err := Restore(c.Snapshot())
	require.NoError(t, err)

	a := rand.New(rand.NewSource(11))
	b := rand.New(rand.NewSource(11))
	for i := 0; i < 10; i++ {
		c.NextDay(a)
		restored.NextDay(b)
	}
	assert.Equal(t, c.Snapshot(), restored.Snapshot())
}

func TestSnapshot_NextBuildingIDContinuesAfterRestore(t *testing.T) {
	c := New(DefaultConfig())
	c.AddBuilding(Park)
	c.AddBuilding(Park)

	restored, err := Restore(c.Snapshot())
	require.NoError(t, err)
	assert.Equal(t, 2, restored.AddBuilding(School).ID)
}

func TestSnapshot_IsDetached(t *testing.T) {
	c := New(DefaultConfig())
	c.AddBuilding(Park)

	snap := c.Snapshot()
	snap.Events[0] = "changed"
	snap.Buildings[0].Condition = 1

	assert.NotEqual(t, "changed", c.Events()[0])
	assert.Equal(t, 100, c.Buildings()[0].Condition)
}

func TestRestore_RejectsInvalidSnapshots(t *testing.T) {
	valid := func() models.CitySnapshot {
		c := New(DefaultConfig())
		c.AddBuilding(Residential)
		c.AddBuilding(Park)
		return c.Snapshot()
	}

	tests := []struct {
		name   string
		mutate func(*models.CitySnapshot)
	}{
		{name: "negative day", mutate: func(s *models.CitySnapshot) { s.Day = -1 }},
		{name: "negative families", mutate: func(s *models.CitySnapshot) { s.Families = -3 }},
		{name: "satisfaction too high", mutate: func(s *models.CitySnapshot) { s.Satisfaction = 101 }},
		{name: "tax out of range", mutate: func(s *models.CitySnapshot) { s.TaxRate = 0.5 }},
		{name: "vat out of range", mutate: func(s *models.CitySnapshot) { s.VatRate = -0.1 }},
		{name: "empty events", mutate: func(s *models.CitySnapshot) { s.Events = nil }},
		{name: "unknown type", mutate: func(s *models.CitySnapshot) { s.Buildings[0].Type = "CASTLE" }},
		{name: "duplicate ids", mutate: func(s *models.CitySnapshot) { s.Buildings[1].ID = s.Buildings[0].ID }},
		{name: "negative id", mutate: func(s *models.CitySnapshot) { s.Buildings[0].ID = -1 }},
		{name: "condition out of range", mutate: func(s *models.CitySnapshot) { s.Buildings[1].Condition = 140 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			snap := valid()
			tc.mutate(&snap)

			c, err := Restore(snap)
			assert.Nil(t, c)
			assert.ErrorIs(t, err, ErrInvalidSnapshot)
		})
	}
}
