package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"citysim/internal/models"
)

type MayorSQLite struct {
	db *sql.DB
}

func NewMayorSQLite(db *sql.DB) *MayorSQLite {
	return &MayorSQLite{db: db}
}

var _ Mayors = (*MayorSQLite)(nil)

const (
	insertMayorSQL       = `INSERT INTO mayors (name, password_hash, created_at) VALUES (?, ?, ?)`
	selectMayorByNameSQL = `SELECT id, name, password_hash, created_at FROM mayors WHERE name = ?`
)

// CreateMayor stores a new account. A name that differs from an existing one
// only by case is rejected with ErrMayorExists.
func (r *MayorSQLite) CreateMayor(ctx context.Context, name, passwordHash string) (int, error) {
	res, err := r.db.ExecContext(ctx, insertMayorSQL, name, passwordHash, time.Now().UTC())
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("%w: %q", ErrMayorExists, name)
		}
		return 0, fmt.Errorf("insert mayor %q: %w", name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id for mayor %q: %w", name, err)
	}
	return int(id), nil
}

func (r *MayorSQLite) MayorByName(ctx context.Context, name string) (models.Mayor, error) {
	var m models.Mayor
	err := r.db.QueryRowContext(ctx, selectMayorByNameSQL, name).Scan(&m.ID, &m.Name, &m.PasswordHash, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Mayor{}, fmt.Errorf("%w: %q", ErrMayorNotFound, name)
		}
		return models.Mayor{}, fmt.Errorf("select mayor %q: %w", name, err)
	}
	m.CreatedAt = m.CreatedAt.UTC()
	return m, nil
}

func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	return errors.As(err, &se) && se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
}
