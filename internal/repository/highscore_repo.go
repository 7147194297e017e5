package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"citysim/internal/models"
)

type HighscoreSQLite struct {
	db *sql.DB
}

func NewHighscoreSQLite(db *sql.DB) *HighscoreSQLite { return &HighscoreSQLite{db: db} }

var _ HighscoreRepo = (*HighscoreSQLite)(nil)

const (
	insertHighscoreSQL = `INSERT INTO highscores (name, score, day, recorded_at) VALUES (?, ?, ?, ?)`

	// Ties on score go to the city that got there sooner.
	selectTopHighscoresSQL = `
		SELECT id, name, score, day, recorded_at
		FROM highscores
		ORDER BY score DESC, day ASC, id ASC
		LIMIT ?
	`

	defaultHighscoreLimit = 10
	maxHighscoreLimit     = 100
)

// Submit records a finished city. RecordedAt defaults to now.
func (r *HighscoreSQLite) Submit(ctx context.Context, h models.Highscore) (int, error) {
	name := strings.TrimSpace(h.Name)
	if name == "" {
		return 0, errors.New("highscore name is empty")
	}
	at := h.RecordedAt
	if at.IsZero() {
		at = time.Now().UTC()
	} else {
		at = at.UTC()
	}

	res, err := r.db.ExecContext(ctx, insertHighscoreSQL, name, h.Score, h.Day, at)
	if err != nil {
		return 0, fmt.Errorf("insert highscore for %q: %w", name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for highscore %q: %w", name, err)
	}
	return int(id), nil
}

// Top returns at most limit entries; limit <= 0 means the default of 10.
func (r *HighscoreSQLite) Top(ctx context.Context, limit int) ([]models.Highscore, error) {
	if limit <= 0 {
		limit = defaultHighscoreLimit
	}
	if limit > maxHighscoreLimit {
		limit = maxHighscoreLimit
	}

	rows, err := r.db.QueryContext(ctx, selectTopHighscoresSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("select highscores: %w", err)
	}
	defer rows.Close()

	out := make([]models.Highscore, 0, limit)
	for rows.Next() {
		var h models.Highscore
		if err := rows.Scan(&h.ID, &h.Name, &h.Score, &h.Day, &h.RecordedAt); err != nil {
			return nil, fmt.Errorf("scan highscore: %w", err)
		}
		h.RecordedAt = h.RecordedAt.UTC()
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
