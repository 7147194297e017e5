package service

import (
	"context"
	"time"

	"citysim/internal/logger"
)

// SimulatorService advances the session on a timer and optionally saves
// after every day.
type SimulatorService struct {
	session  *GameSession
	saves    *SaveService
	autosave string
	log      *logger.Logger
}

func NewSimulatorService(session *GameSession, saves *SaveService, autosave string, log *logger.Logger) *SimulatorService {
	if log == nil {
		log = logger.Nop()
	}
	return &SimulatorService{
		session:  session,
		saves:    saves,
		autosave: autosave,
		log:      log.Component("simulator"),
	}
}

// Run ticks every interval until ctx is cancelled or the session ends.
// A non-positive interval disables auto-advance.
func (s *SimulatorService) Run(ctx context.Context, every time.Duration) {
	if every <= 0 {
		return
	}
	s.log.Infow("auto_advance_started", "every", every.String())

	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if !s.step(ctx) {
				s.log.Infow("auto_advance_stopped", "outcome", string(s.session.Outcome()))
				return
			}
		}
	}
}

// step advances one day and reports whether the loop should keep going.
func (s *SimulatorService) step(ctx context.Context) bool {
	if s.session.Ended() {
		return false
	}
	cont := s.session.CityTick()
	if s.autosave != "" && s.saves != nil {
		if _, err := s.saves.Save(ctx, s.autosave); err != nil {
			s.log.Errorw("autosave_failed", "slot", s.autosave, "err", err)
		}
	}
	return cont
}
