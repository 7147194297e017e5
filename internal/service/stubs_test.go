package service

import (
	"context"
	"sync"

	"citysim/internal/models"
	"citysim/internal/repository"
)

// ---- Test doubles ----

// cityRepoStub keeps snapshots in memory. loadErr, when set, is returned by Load.
type cityRepoStub struct {
	mu      sync.Mutex
	slots   map[string]models.CitySnapshot
	saves   int
	saveErr error
	loadErr error
}

func newCityRepoStub() *cityRepoStub {
	return &cityRepoStub{slots: map[string]models.CitySnapshot{}}
}

func (s *cityRepoStub) Save(_ context.Context, slot string, snap models.CitySnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	s.slots[slot] = snap
	s.saves++
	return nil
}

func (s *cityRepoStub) Load(_ context.Context, slot string) (models.CitySnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loadErr != nil {
		return models.CitySnapshot{}, s.loadErr
	}
	snap, ok := s.slots[slot]
	if !ok {
		return models.CitySnapshot{}, repository.ErrSaveNotFound
	}
	return snap, nil
}

func (s *cityRepoStub) ListSlots(_ context.Context) ([]models.SaveSlot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.SaveSlot, 0, len(s.slots))
	for name, snap := range s.slots {
		out = append(out, models.SaveSlot{Name: name, Day: snap.Day})
	}
	return out, nil
}

func (s *cityRepoStub) saveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

// highscoreRepoStub records submissions.
type highscoreRepoStub struct {
	submitted []models.Highscore
	err       error
}

func (h *highscoreRepoStub) Submit(_ context.Context, hs models.Highscore) (int, error) {
	if h.err != nil {
		return 0, h.err
	}
	h.submitted = append(h.submitted, hs)
	return len(h.submitted), nil
}

func (h *highscoreRepoStub) Top(_ context.Context, limit int) ([]models.Highscore, error) {
	if limit > len(h.submitted) {
		limit = len(h.submitted)
	}
	return h.submitted[:limit], nil
}
