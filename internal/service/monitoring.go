package service

import (
	"context"

	"citysim/internal/city"
	"citysim/internal/models"
)

type MonitoringService struct {
	session *GameSession
}

func NewMonitoringService(session *GameSession) *MonitoringService {
	return &MonitoringService{session: session}
}

// GetState returns the session view including the full city snapshot.
func (s *MonitoringService) GetState(_ context.Context) (models.SessionState, error) {
	return s.session.State(), nil
}

// GetStats returns the reporting view: counts, capacities, coverage and score.
func (s *MonitoringService) GetStats(_ context.Context) (city.Stats, error) {
	var st city.Stats
	s.session.Read(func(c *city.City) {
		st = c.Stats()
	})
	return st, nil
}
