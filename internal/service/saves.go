package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"citysim/internal/city"
	"citysim/internal/logger"
	"citysim/internal/models"
	"citysim/internal/repository"
)

type SaveService struct {
	session *GameSession
	repo    repository.CityRepo
	log     *logger.Logger
}

func NewSaveService(session *GameSession, repo repository.CityRepo, log *logger.Logger) *SaveService {
	if log == nil {
		log = logger.Nop()
	}
	return &SaveService{session: session, repo: repo, log: log.Component("saves")}
}

// Save stores the current city under slot, replacing what was there.
func (s *SaveService) Save(ctx context.Context, slot string) (models.SaveSlot, error) {
	snap := s.session.Snapshot()
	if err := s.repo.Save(ctx, slot, snap); err != nil {
		s.log.Errorw("save_failed", "slot", slot, "err", err)
		return models.SaveSlot{}, err
	}
	s.log.Infow("city_saved", "slot", slot, "day", snap.Day)
	return models.SaveSlot{Name: slot, Day: snap.Day, SavedAt: time.Now().UTC()}, nil
}

// Load replaces the current city with the one stored under slot. On any
// failure the current city is kept. Snapshots that decode but break the
// city's invariants are reported as repository.ErrCorruptSave.
func (s *SaveService) Load(ctx context.Context, slot string) (models.SessionState, error) {
	snap, err := s.repo.Load(ctx, slot)
	if err != nil {
		s.log.Warnw("load_failed", "slot", slot, "err", err)
		return models.SessionState{}, err
	}
	c, err := city.Restore(snap)
	if err != nil {
		if errors.Is(err, city.ErrInvalidSnapshot) {
			err = fmt.Errorf("%w: %w", repository.ErrCorruptSave, err)
		}
		s.log.Warnw("load_failed", "slot", slot, "err", err)
		return models.SessionState{}, err
	}

	s.session.ReplaceCity(c, snap.Seed)
	s.log.Infow("city_loaded", "slot", slot, "day", c.Day())
	return s.session.State(), nil
}

func (s *SaveService) ListSlots(ctx context.Context) ([]models.SaveSlot, error) {
	return s.repo.ListSlots(ctx)
}
