package city

// Score weights used for session end and the highscore table.
const (
	scorePerFamily       = 10
	scoreBudgetDivisor   = 10
	scorePerSatisfaction = 5
	scorePerDay          = 2
)

// Score is a pure function of the final city state. Budget division truncates toward zero.
func Score(families, budget, satisfaction, day int) int {
	return families*scorePerFamily + budget/scoreBudgetDivisor + satisfaction*scorePerSatisfaction + day*scorePerDay
}

// Stats is a read-only statistics view for reporting.
type Stats struct {
	Day            int            `json:"day"`
	Budget         int            `json:"budget"`
	Families       int            `json:"families"`
	Satisfaction   int            `json:"satisfaction"`
	TaxRate        float64        `json:"tax_rate"`
	VatRate        float64        `json:"vat_rate"`
	DailyIncome    int            `json:"daily_income"`
	DailyExpenses  int            `json:"daily_expenses"`
	BuildingCounts map[string]int `json:"building_counts"`
	Capacity       Capacity       `json:"capacity"`
	Coverage       Coverage       `json:"coverage"`
	Score          int            `json:"score"`
	EventCount     int            `json:"event_count"`
}

// Stats gathers everything a reporter needs without re-deriving rules.
func (c *City) Stats() Stats {
	counts := make(map[string]int, len(catalog))
	for t, n := range c.BuildingCounts() {
		counts[t.String()] = n
	}
	capacity := c.Capacities()
	return Stats{
		Day:            c.day,
		Budget:         c.budget,
		Families:       c.families,
		Satisfaction:   c.satisfaction,
		TaxRate:        c.taxRate,
		VatRate:        c.vatRate,
		DailyIncome:    c.dailyIncome,
		DailyExpenses:  c.dailyExpenses,
		BuildingCounts: counts,
		Capacity:       capacity,
		Coverage:       computeCoverage(capacity, c.families),
		Score:          c.Score(),
		EventCount:     c.log.Len(),
	}
}
