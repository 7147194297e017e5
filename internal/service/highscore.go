package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"citysim/internal/city"
	"citysim/internal/models"
	"citysim/internal/repository"
)

var errEmptyName = fmt.Errorf("%w: name is required", ErrInvalidArgument)

type HighscoreService struct {
	session *GameSession
	repo    repository.HighscoreRepo
}

func NewHighscoreService(session *GameSession, repo repository.HighscoreRepo) *HighscoreService {
	return &HighscoreService{session: session, repo: repo}
}

// SubmitScore records the current city's score under name.
func (s *HighscoreService) SubmitScore(ctx context.Context, name string) (models.Highscore, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Highscore{}, errEmptyName
	}

	h := models.Highscore{Name: name, RecordedAt: time.Now().UTC()}
	s.session.Read(func(c *city.City) {
		h.Score = c.Score()
		h.Day = c.Day()
	})

	id, err := s.repo.Submit(ctx, h)
	if err != nil {
		return models.Highscore{}, err
	}
	h.ID = id
	return h, nil
}

func (s *HighscoreService) TopScores(ctx context.Context, limit int) ([]models.Highscore, error) {
	return s.repo.Top(ctx, limit)
}
