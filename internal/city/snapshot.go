package city

import (
	"errors"
	"fmt"

	"citysim/internal/models"
)

var ErrInvalidSnapshot = errors.New("invalid city snapshot")

// Snapshot exports the full city state as plain data.
func (c *City) Snapshot() models.CitySnapshot {
	records := make([]models.BuildingRecord, 0, len(c.buildings))
	for _, b := range c.buildings {
		records = append(records, models.BuildingRecord{
			ID:        b.ID,
			Type:      b.Type.String(),
			Capacity:  b.Capacity,
			Condition: b.Condition,
		})
	}
	return models.CitySnapshot{
		Day:           c.day,
		Budget:        c.budget,
		Families:      c.families,
		Satisfaction:  c.satisfaction,
		TaxRate:       c.taxRate,
		VatRate:       c.vatRate,
		DailyIncome:   c.dailyIncome,
		DailyExpenses: c.dailyExpenses,
		Buildings:     records,
		Events:        c.log.All(),
	}
}

// Restore rebuilds a City from a snapshot. Snapshots that break the aggregate's
// invariants are rejected with ErrInvalidSnapshot rather than repaired.
func Restore(s models.CitySnapshot) (*City, error) {
	if s.Day < 0 {
		return nil, fmt.Errorf("%w: negative day %d", ErrInvalidSnapshot, s.Day)
	}
	if s.Families < 0 {
		return nil, fmt.Errorf("%w: negative families %d", ErrInvalidSnapshot, s.Families)
	}
	if s.Satisfaction < MinSatisfaction || s.Satisfaction > MaxSatisfaction {
		return nil, fmt.Errorf("%w: satisfaction %d out of range", ErrInvalidSnapshot, s.Satisfaction)
	}
	if s.TaxRate < MinTaxRate || s.TaxRate > MaxTaxRate {
		return nil, fmt.Errorf("%w: tax rate %v out of range", ErrInvalidSnapshot, s.TaxRate)
	}
	if s.VatRate < MinVatRate || s.VatRate > MaxVatRate {
		return nil, fmt.Errorf("%w: vat rate %v out of range", ErrInvalidSnapshot, s.VatRate)
	}
	if len(s.Events) == 0 {
		return nil, fmt.Errorf("%w: empty event log", ErrInvalidSnapshot)
	}

	buildings := make([]Building, 0, len(s.Buildings))
	for i, r := range s.Buildings {
		t, err := ParseBuildingType(r.Type)
		if err != nil {
			return nil, fmt.Errorf("%w: building %d: %v", ErrInvalidSnapshot, r.ID, err)
		}
		if r.ID < 0 || (i > 0 && r.ID <= s.Buildings[i-1].ID) {
			return nil, fmt.Errorf("%w: building ids must be non-negative and strictly increasing (got %d)", ErrInvalidSnapshot, r.ID)
		}
		if r.Condition < 0 || r.Condition > maxCondition {
			return nil, fmt.Errorf("%w: building %d condition %d out of range", ErrInvalidSnapshot, r.ID, r.Condition)
		}
		buildings = append(buildings, Building{
			ID:        r.ID,
			Type:      t,
			Capacity:  r.Capacity,
			Condition: r.Condition,
		})
	}

	return &City{
		day:           s.Day,
		budget:        s.Budget,
		families:      s.Families,
		satisfaction:  s.Satisfaction,
		taxRate:       s.TaxRate,
		vatRate:       s.VatRate,
		dailyIncome:   s.DailyIncome,
		dailyExpenses: s.DailyExpenses,
		buildings:     buildings,
		log:           newEventLog(s.Events),
	}, nil
}
