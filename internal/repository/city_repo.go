package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"citysim/internal/models"
)

type CitySQLite struct {
	db *sql.DB
}

func NewCitySQLite(db *sql.DB) *CitySQLite {
	return &CitySQLite{db: db}
}

var _ CityRepo = (*CitySQLite)(nil)

const (
	upsertSaveSQL = `
		INSERT INTO city_saves (slot, day, budget, families, satisfaction, tax_rate, vat_rate, daily_income, daily_expenses, events, seed, saved_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(slot) DO UPDATE SET
			day=excluded.day,
			budget=excluded.budget,
			families=excluded.families,
			satisfaction=excluded.satisfaction,
			tax_rate=excluded.tax_rate,
			vat_rate=excluded.vat_rate,
			daily_income=excluded.daily_income,
			daily_expenses=excluded.daily_expenses,
			events=excluded.events,
			seed=excluded.seed,
			saved_at=excluded.saved_at
	`

	deleteBuildingsSQL = `DELETE FROM city_buildings WHERE slot = ?`

	insertBuildingSQL = `
		INSERT INTO city_buildings (slot, id, type, capacity, condition)
		VALUES (?, ?, ?, ?, ?)
	`

	selectSaveSQL = `
		SELECT day, budget, families, satisfaction, tax_rate, vat_rate, daily_income, daily_expenses, events, seed
		FROM city_saves WHERE slot = ?
	`

	selectBuildingsSQL = `
		SELECT id, type, capacity, condition
		FROM city_buildings WHERE slot = ? ORDER BY id ASC
	`

	selectSlotsSQL = `SELECT slot, day, saved_at FROM city_saves ORDER BY saved_at DESC, slot ASC`
)

func normalizeSlot(slot string) (string, error) {
	slot = strings.TrimSpace(slot)
	if slot == "" {
		return "", ErrInvalidSlot
	}
	return slot, nil
}

// Save writes the snapshot and its buildings in one transaction.
func (r *CitySQLite) Save(ctx context.Context, slot string, snap models.CitySnapshot) error {
	slot, err := normalizeSlot(slot)
	if err != nil {
		return err
	}
	events, err := json.Marshal(snap.Events)
	if err != nil {
		return fmt.Errorf("encode events: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save %q: %w", slot, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, upsertSaveSQL,
		slot,
		snap.Day,
		snap.Budget,
		snap.Families,
		snap.Satisfaction,
		snap.TaxRate,
		snap.VatRate,
		snap.DailyIncome,
		snap.DailyExpenses,
		string(events),
		snap.Seed,
		time.Now().UTC(),
	); err != nil {
		return fmt.Errorf("write save %q: %w", slot, err)
	}

	if _, err := tx.ExecContext(ctx, deleteBuildingsSQL, slot); err != nil {
		return fmt.Errorf("clear buildings for %q: %w", slot, err)
	}
	for _, b := range snap.Buildings {
		if _, err := tx.ExecContext(ctx, insertBuildingSQL, slot, b.ID, b.Type, b.Capacity, b.Condition); err != nil {
			return fmt.Errorf("write building %d for %q: %w", b.ID, slot, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save %q: %w", slot, err)
	}
	return nil
}

// Load returns ErrSaveNotFound for an unknown slot and ErrCorruptSave when
// the stored rows cannot be decoded.
func (r *CitySQLite) Load(ctx context.Context, slot string) (models.CitySnapshot, error) {
	slot, err := normalizeSlot(slot)
	if err != nil {
		return models.CitySnapshot{}, err
	}

	var (
		s      models.CitySnapshot
		events string
	)
	err = r.db.QueryRowContext(ctx, selectSaveSQL, slot).Scan(
		&s.Day,
		&s.Budget,
		&s.Families,
		&s.Satisfaction,
		&s.TaxRate,
		&s.VatRate,
		&s.DailyIncome,
		&s.DailyExpenses,
		&events,
		&s.Seed,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.CitySnapshot{}, fmt.Errorf("%w: %q", ErrSaveNotFound, slot)
		}
		return models.CitySnapshot{}, fmt.Errorf("select save %q: %w", slot, err)
	}
	if err := json.Unmarshal([]byte(events), &s.Events); err != nil {
		return models.CitySnapshot{}, fmt.Errorf("%w: %q events: %v", ErrCorruptSave, slot, err)
	}

	rows, err := r.db.QueryContext(ctx, selectBuildingsSQL, slot)
	if err != nil {
		return models.CitySnapshot{}, fmt.Errorf("select buildings %q: %w", slot, err)
	}
	defer rows.Close()

	s.Buildings = make([]models.BuildingRecord, 0, 16)
	for rows.Next() {
		var b models.BuildingRecord
		if err := rows.Scan(&b.ID, &b.Type, &b.Capacity, &b.Condition); err != nil {
			return models.CitySnapshot{}, fmt.Errorf("%w: %q building row: %v", ErrCorruptSave, slot, err)
		}
		s.Buildings = append(s.Buildings, b)
	}
	if err := rows.Err(); err != nil {
		return models.CitySnapshot{}, fmt.Errorf("read buildings %q: %w", slot, err)
	}
	return s, nil
}

// ListSlots returns stored saves, most recent first.
func (r *CitySQLite) ListSlots(ctx context.Context) ([]models.SaveSlot, error) {
	rows, err := r.db.QueryContext(ctx, selectSlotsSQL)
	if err != nil {
		return nil, fmt.Errorf("select slots: %w", err)
	}
	defer rows.Close()

	out := make([]models.SaveSlot, 0, 8)
	for rows.Next() {
		var s models.SaveSlot
		if err := rows.Scan(&s.Name, &s.Day, &s.SavedAt); err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		s.SavedAt = s.SavedAt.UTC()
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
