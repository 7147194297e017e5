package models

import "time"

// CitySnapshot is the plain data form of a city, used for saves and API responses.
type CitySnapshot struct {
	Day           int              `json:"day"`
	Budget        int              `json:"budget"`
	Families      int              `json:"families"`
	Satisfaction  int              `json:"satisfaction"`
	TaxRate       float64          `json:"tax_rate"`
	VatRate       float64          `json:"vat_rate"`
	DailyIncome   int              `json:"daily_income"`
	DailyExpenses int              `json:"daily_expenses"`
	Buildings     []BuildingRecord `json:"buildings"`
	Events        []string         `json:"events"`
	Seed          int64            `json:"seed,omitempty"` // event stream seed of the saving session
}

// BuildingRecord is a single constructed building.
type BuildingRecord struct {
	ID        int    `json:"id"`
	Type      string `json:"type"`      // RESIDENTIAL | COMMERCIAL | ... | POWER_PLANT
	Capacity  int    `json:"capacity"`  // copied from the catalog at construction
	Condition int    `json:"condition"` // 0..100
}

// SaveSlot describes a stored city.
type SaveSlot struct {
	Name    string    `json:"name"`
	Day     int       `json:"day"`
	SavedAt time.Time `json:"saved_at"`
}
