package service

import (
	"context"
	"time"

	"citysim/internal/city"
	"citysim/internal/logger"
	"citysim/internal/models"
	"citysim/internal/repository"
)

// Authorization manages mayor accounts and the bearer tokens for /api/v1.
type Authorization interface {
	SignUp(ctx context.Context, name, password string) (int, error)
	SignIn(ctx context.Context, name, password string) (Token, error)
	ParseToken(token string) (int, error)
}

// CityControl exposes the mutating game operations.
type CityControl interface {
	Build(t city.BuildingType) (BuildResult, error)
	SetTaxRate(rate float64) float64
	SetVatRate(rate float64) float64
	Advance(days int) (TickResult, error)
	NewCity() models.SessionState
}

// Monitoring exposes read-only views of the running city.
type Monitoring interface {
	GetState(ctx context.Context) (models.SessionState, error)
	GetStats(ctx context.Context) (city.Stats, error)
}

// EventLog exposes the city's event log with filtering.
type EventLog interface {
	List(ctx context.Context, f LogFilter) ([]string, error)
}

// Saves persists the session's city into named slots.
type Saves interface {
	Save(ctx context.Context, slot string) (models.SaveSlot, error)
	Load(ctx context.Context, slot string) (models.SessionState, error)
	ListSlots(ctx context.Context) ([]models.SaveSlot, error)
}

type Highscores interface {
	SubmitScore(ctx context.Context, name string) (models.Highscore, error)
	TopScores(ctx context.Context, limit int) ([]models.Highscore, error)
}

// Simulator advances the city on a timer. Stop it by cancelling ctx.
type Simulator interface {
	Run(ctx context.Context, every time.Duration)
}

type Service struct {
	CityControl
	Monitoring
	EventLog
	Saves
	Highscores
	Simulator
	Authorization
}

// Options carries the settings services need beyond their repositories.
type Options struct {
	Auth     AuthOptions
	Autosave string
}

func NewService(repos *repository.Repository, session *GameSession, opts Options, log *logger.Logger) *Service {
	saves := NewSaveService(session, repos.CityRepo, log)
	return &Service{
		CityControl:   session,
		Monitoring:    NewMonitoringService(session),
		EventLog:      NewEventLogService(session),
		Saves:         saves,
		Highscores:    NewHighscoreService(session, repos.HighscoreRepo),
		Simulator:     NewSimulatorService(session, saves, opts.Autosave, log),
		Authorization: NewAuthService(repos.Mayors, opts.Auth),
	}
}
