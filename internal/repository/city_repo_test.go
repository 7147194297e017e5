package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"citysim/internal/models"
)

func newMockCityRepo(t *testing.T) (*CitySQLite, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	cleanup := func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet sqlmock expectations: %v", err)
		}
		_ = db.Close()
	}
	return NewCitySQLite(db), mock, cleanup
}

func sampleSnapshot() models.CitySnapshot {
	return models.CitySnapshot{
		Day:           3,
		Budget:        14200,
		Families:      96,
		Satisfaction:  41,
		TaxRate:       0.15,
		VatRate:       0.05,
		DailyIncome:   400,
		DailyExpenses: 230,
		Buildings: []models.BuildingRecord{
			{ID: 0, Type: "RESIDENTIAL", Capacity: 100, Condition: 100},
			{ID: 1, Type: "COMMERCIAL", Capacity: 60, Condition: 45},
		},
		Events: []string{"Day 0: City founded", "Day 2: FIRE damaged Commercial #1"},
		Seed:   1234,
	}
}

func TestCitySQLite_Save_WritesRowAndBuildingsInOneTx(t *testing.T) {
	t.Parallel()
	repo, mock, cleanup := newMockCityRepo(t)
	defer cleanup()

	snap := sampleSnapshot()
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(upsertSaveSQL)).
		WithArgs("alpha", 3, 14200, 96, 41, 0.15, 0.05, 400, 230,
			`["Day 0: City founded","Day 2: FIRE damaged Commercial #1"]`,
			int64(1234), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(deleteBuildingsSQL)).
		WithArgs("alpha").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta(insertBuildingSQL)).
		WithArgs("alpha", 0, "RESIDENTIAL", 100, 100).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(insertBuildingSQL)).
		WithArgs("alpha", 1, "COMMERCIAL", 60, 45).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.Save(context.Background(), " alpha ", snap); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
}

func TestCitySQLite_Save_RollsBackOnBuildingError(t *testing.T) {
	t.Parallel()
	repo, mock, cleanup := newMockCityRepo(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(upsertSaveSQL)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta(deleteBuildingsSQL)).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta(insertBuildingSQL)).WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.Save(context.Background(), "alpha", sampleSnapshot())
	if err == nil {
		t.Fatalf("Save() expected error, got nil")
	}
	if !contains(err.Error(), "write building 0") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCitySQLite_Save_EmptySlot(t *testing.T) {
	t.Parallel()
	repo, _, cleanup := newMockCityRepo(t)
	defer cleanup()

	if err := repo.Save(context.Background(), "  ", sampleSnapshot()); !errors.Is(err, ErrInvalidSlot) {
		t.Fatalf("expected ErrInvalidSlot, got %v", err)
	}
	if _, err := repo.Load(context.Background(), ""); !errors.Is(err, ErrInvalidSlot) {
		t.Fatalf("expected ErrInvalidSlot from Load, got %v", err)
	}
}

func TestCitySQLite_Load(t *testing.T) {
	saveCols := []string{"day", "budget", "families", "satisfaction", "tax_rate", "vat_rate", "daily_income", "daily_expenses", "events", "seed"}
	buildingCols := []string{"id", "type", "capacity", "condition"}

	tests := []struct {
		name       string
		mockExpect func(sqlmock.Sqlmock)
		wantErr    error
		check      func(t *testing.T, got models.CitySnapshot)
	}{
		{
			name: "found",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(selectSaveSQL)).
					WithArgs("alpha").
					WillReturnRows(sqlmock.NewRows(saveCols).
						AddRow(3, 14200, 96, 41, 0.15, 0.05, 400, 230, `["Day 0: City founded","Day 2: FIRE damaged Commercial #1"]`, 1234))
				m.ExpectQuery(regexp.QuoteMeta(selectBuildingsSQL)).
					WithArgs("alpha").
					WillReturnRows(sqlmock.NewRows(buildingCols).
						AddRow(0, "RESIDENTIAL", 100, 100).
						AddRow(1, "COMMERCIAL", 60, 45))
			},
			check: func(t *testing.T, got models.CitySnapshot) {
				want := sampleSnapshot()
				if got.Day != want.Day || got.Budget != want.Budget || got.Families != want.Families ||
					got.Satisfaction != want.Satisfaction || got.TaxRate != want.TaxRate || got.VatRate != want.VatRate ||
					got.DailyIncome != want.DailyIncome || got.DailyExpenses != want.DailyExpenses || got.Seed != want.Seed {
					t.Fatalf("unexpected fields: %+v", got)
				}
				if len(got.Buildings) != 2 || got.Buildings[1] != want.Buildings[1] {
					t.Fatalf("unexpected buildings: %+v", got.Buildings)
				}
				if !equalStrings(got.Events, want.Events) {
					t.Fatalf("unexpected events: %v", got.Events)
				}
			},
		},
		{
			name: "missing slot",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(selectSaveSQL)).
					WithArgs("alpha").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: ErrSaveNotFound,
		},
		{
			name: "events column is not json",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(selectSaveSQL)).
					WithArgs("alpha").
					WillReturnRows(sqlmock.NewRows(saveCols).
						AddRow(3, 14200, 96, 41, 0.15, 0.05, 400, 230, `Day 0: City founded`, 0))
			},
			wantErr: ErrCorruptSave,
		},
		{
			name: "building row does not decode",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(selectSaveSQL)).
					WithArgs("alpha").
					WillReturnRows(sqlmock.NewRows(saveCols).
						AddRow(3, 14200, 96, 41, 0.15, 0.05, 400, 230, `["Day 0: City founded"]`, 0))
				m.ExpectQuery(regexp.QuoteMeta(selectBuildingsSQL)).
					WithArgs("alpha").
					WillReturnRows(sqlmock.NewRows(buildingCols).AddRow("zero", "PARK", 150, 100))
			},
			wantErr: ErrCorruptSave,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := newMockCityRepo(t)
			defer cleanup()
			tt.mockExpect(mock)

			got, err := repo.Load(context.Background(), "alpha")
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			tt.check(t, got)
		})
	}
}

func TestCitySQLite_Load_NotFoundAndCorruptAreDistinct(t *testing.T) {
	if errors.Is(ErrSaveNotFound, ErrCorruptSave) || errors.Is(ErrCorruptSave, ErrSaveNotFound) {
		t.Fatalf("not-found and corrupt must be distinguishable")
	}
}

func TestCitySQLite_ListSlots(t *testing.T) {
	t.Parallel()
	repo, mock, cleanup := newMockCityRepo(t)
	defer cleanup()

	later := time.Date(2025, 3, 2, 10, 0, 0, 0, time.UTC)
	earlier := later.Add(-time.Hour)
	mock.ExpectQuery(regexp.QuoteMeta(selectSlotsSQL)).
		WillReturnRows(sqlmock.NewRows([]string{"slot", "day", "saved_at"}).
			AddRow("beta", 12, later).
			AddRow("alpha", 3, earlier))

	slots, err := repo.ListSlots(context.Background())
	if err != nil {
		t.Fatalf("ListSlots() error = %v", err)
	}
	if len(slots) != 2 || slots[0].Name != "beta" || slots[0].Day != 12 || !slots[1].SavedAt.Equal(earlier) {
		t.Fatalf("unexpected slots: %+v", slots)
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
