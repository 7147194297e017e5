// Package city holds the simulation core: the building catalog, the City
// aggregate with its event log, and the daily tick that advances it.
package city

import "math"

// Rate policy bounds. Setters clamp into these ranges.
const (
	MinTaxRate = 0.0
	MaxTaxRate = 0.40
	MinVatRate = 0.0
	MaxVatRate = 0.25
)

const (
	MinSatisfaction = 0
	MaxSatisfaction = 100
)

// Defaults for a freshly founded city.
const (
	DefaultFamilies     = 100
	DefaultBudget       = 15000
	DefaultSatisfaction = 50
	DefaultTaxRate      = 0.10
	DefaultVatRate      = 0.05
)

// Config is the founding configuration of a city.
type Config struct {
	Families     int
	Budget       int
	Satisfaction int
	TaxRate      float64
	VatRate      float64
}

// DefaultConfig returns the standard starting city.
func DefaultConfig() Config {
	return Config{
		Families:     DefaultFamilies,
		Budget:       DefaultBudget,
		Satisfaction: DefaultSatisfaction,
		TaxRate:      DefaultTaxRate,
		VatRate:      DefaultVatRate,
	}
}

// City is the aggregate root of the simulation. It is not safe for concurrent
// use; callers serialize access.
type City struct {
	day           int
	budget        int
	families      int
	satisfaction  int
	taxRate       float64
	vatRate       float64
	dailyIncome   int
	dailyExpenses int
	buildings     []Building
	log           *EventLog
}

// New founds a city and records the founding event.
func New(cfg Config) *City {
	c := &City{
		budget:       cfg.Budget,
		families:     maxInt(cfg.Families, 0),
		satisfaction: clampInt(cfg.Satisfaction, MinSatisfaction, MaxSatisfaction),
		log:          newEventLog(nil),
	}
	c.SetTaxRate(cfg.TaxRate)
	c.SetVatRate(cfg.VatRate)
	c.log.appendf(0, "City founded with %d families and a budget of %d", c.families, c.budget)
	return c
}

func (c *City) Day() int              { return c.day }
func (c *City) Budget() int           { return c.budget }
func (c *City) Families() int         { return c.families }
func (c *City) Satisfaction() int     { return c.satisfaction }
func (c *City) TaxRate() float64      { return c.taxRate }
func (c *City) VatRate() float64      { return c.vatRate }
func (c *City) DailyIncome() int      { return c.dailyIncome }
func (c *City) DailyExpenses() int    { return c.dailyExpenses }
func (c *City) EventLog() *EventLog   { return c.log }
func (c *City) Events() []string      { return c.log.All() }
func (c *City) BuildingCount() int    { return len(c.buildings) }
func (c *City) Score() int            { return Score(c.families, c.budget, c.satisfaction, c.day) }
func (c *City) Capacities() Capacity  { return computeCapacity(c.buildings) }
func (c *City) Coverage() Coverage    { return computeCoverage(c.Capacities(), c.families) }
func (c *City) RecentEvents(n int) []string {
	return c.log.Recent(n)
}

// Buildings returns a copy of the building list in construction order.
func (c *City) Buildings() []Building {
	return append([]Building(nil), c.buildings...)
}

// BuildingCounts returns the number of buildings per type; every type is present.
func (c *City) BuildingCounts() map[BuildingType]int {
	counts := make(map[BuildingType]int, len(catalog))
	for _, t := range AllBuildingTypes() {
		counts[t] = 0
	}
	for _, b := range c.buildings {
		counts[b.Type]++
	}
	return counts
}

// CountOf returns the number of buildings of type t.
func (c *City) CountOf(t BuildingType) int {
	n := 0
	for _, b := range c.buildings {
		if b.Type == t {
			n++
		}
	}
	return n
}

// SetTaxRate clamps rate into [MinTaxRate, MaxTaxRate].
func (c *City) SetTaxRate(rate float64) {
	c.taxRate = clampRate(rate, MinTaxRate, MaxTaxRate)
}

// SetVatRate clamps rate into [MinVatRate, MaxVatRate].
func (c *City) SetVatRate(rate float64) {
	c.vatRate = clampRate(rate, MinVatRate, MaxVatRate)
}

// AddBuilding constructs a building of type t with the next id. Affordability
// is the caller's concern.
func (c *City) AddBuilding(t BuildingType) Building {
	id := 0
	if n := len(c.buildings); n > 0 {
		id = c.buildings[n-1].ID + 1
	}
	b := newBuilding(id, t)
	c.buildings = append(c.buildings, b)
	return b
}

// Spend deducts amount from the budget. Used by the session to pay for construction.
func (c *City) Spend(amount int) {
	c.budget -= amount
}

func clampRate(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Min(math.Max(v, lo), hi)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxInt(a, b int) int {
	if a >= b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a <= b {
		return a
	}
	return b
}
