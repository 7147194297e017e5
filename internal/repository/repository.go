package repository

import (
	"context"
	"database/sql"
	"errors"

	"citysim/internal/models"
)

// Load failures callers must tell apart.
var (
	ErrSaveNotFound = errors.New("save not found")
	ErrCorruptSave  = errors.New("save is corrupt")
	ErrInvalidSlot  = errors.New("slot name is empty")

	ErrMayorNotFound = errors.New("mayor not found")
	ErrMayorExists   = errors.New("mayor name is taken")
)

// Mayors stores player accounts. Names are unique regardless of case.
type Mayors interface {
	CreateMayor(ctx context.Context, name, passwordHash string) (int, error)
	MayorByName(ctx context.Context, name string) (models.Mayor, error)
}

// CityRepo stores whole-city snapshots keyed by slot name. A save replaces
// the slot atomically.
type CityRepo interface {
	Save(ctx context.Context, slot string, snap models.CitySnapshot) error
	Load(ctx context.Context, slot string) (models.CitySnapshot, error)
	ListSlots(ctx context.Context) ([]models.SaveSlot, error)
}

type HighscoreRepo interface {
	Submit(ctx context.Context, h models.Highscore) (int, error)
	Top(ctx context.Context, limit int) ([]models.Highscore, error)
}

type Repository struct {
	CityRepo      CityRepo
	HighscoreRepo HighscoreRepo
	Mayors        Mayors
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		CityRepo:      NewCitySQLite(db),
		HighscoreRepo: NewHighscoreSQLite(db),
		Mayors:        NewMayorSQLite(db),
	}
}
