package city

import (
	"fmt"
	"math"
)

// Economy policy.
const (
	perFamilyIncomeBase   = 20.0
	vatContributionFactor = 1.0
	baseCityServiceCost   = 100
	bankruptcyHorizonDays = 5
)

// Population and satisfaction policy.
const (
	adequacyThreshold = 0.9
	shortageThreshold = 0.6
	maxGrowthRate     = 0.05
	maxDeclineRate    = 0.08
	lowSatisfaction   = 20

	taxBurdenWeight = 100.0
	vatBurdenWeight = 60.0
)

var satisfactionWeights = struct {
	housing, jobs, education, healthcare, water, power, leisure float64
}{
	housing:    0.22,
	jobs:       0.22,
	education:  0.10,
	healthcare: 0.14,
	water:      0.11,
	power:      0.11,
	leisure:    0.10,
}

// Random event policy. Each event is rolled independently once per day.
const (
	fireChance     = 0.03
	epidemicChance = 0.02
	crisisChance   = 0.02
	grantChance    = 0.03

	fireDamage              = 60
	fireSatisfactionHit     = 5
	epidemicBaseLoss        = 0.03
	epidemicSeverity        = 0.07
	epidemicSatisfactionHit = 8
	crisisBudgetShare       = 0.10
	crisisMinimumLoss       = 250
	grantExpenseShare       = 0.5
)

// RandomSource drives the daily events. *rand.Rand satisfies it.
type RandomSource interface {
	Float64() float64
	Intn(n int) int
}

// DayReport summarizes one completed tick.
type DayReport struct {
	Day           int      `json:"day"`
	Income        int      `json:"income"`
	Expenses      int      `json:"expenses"`
	FamiliesDelta int      `json:"families_delta"`
	Entries       []string `json:"entries"`
}

// dayState is the working copy a tick mutates before committing.
type dayState struct {
	day          int
	budget       int
	families     int
	satisfaction int
	buildings    []Building
	entries      []string
}

func (s *dayState) logf(format string, args ...any) {
	s.entries = append(s.entries, fmt.Sprintf("Day %d: ", s.day)+fmt.Sprintf(format, args...))
}

// NextDay advances the city by one day. A nil rng disables random events.
// All changes are computed on a working copy and committed together.
func (c *City) NextDay(rng RandomSource) DayReport {
	s := &dayState{
		day:          c.day + 1,
		budget:       c.budget,
		families:     c.families,
		satisfaction: c.satisfaction,
		buildings:    append([]Building(nil), c.buildings...),
	}
	for i := range s.buildings {
		s.buildings[i].repair()
	}

	income := c.income(s.buildings, s.families)
	expenses := expenses(s.buildings)
	s.budget += income - expenses
	if s.budget >= 0 && s.budget+bankruptcyHorizonDays*(income-expenses) < 0 {
		s.logf("%s: Treasury will run dry within %d days (budget %d, net %d per day)",
			TagWarning, bankruptcyHorizonDays, s.budget, income-expenses)
	}

	capacity := computeCapacity(s.buildings)
	coverage := computeCoverage(capacity, s.families)

	delta := populationDelta(s.families, capacity.Housing, coverage, s.satisfaction)
	s.families += delta
	if coverage.Housing < shortageThreshold {
		s.logf("%s: Housing shortage, coverage at %.0f%%", TagWarning, coverage.Housing*100)
	}
	if coverage.Jobs < shortageThreshold {
		s.logf("%s: Job shortage, coverage at %.0f%%", TagWarning, coverage.Jobs*100)
	}

	s.satisfaction = satisfactionFor(coverage, c.taxRate, c.vatRate)
	if s.satisfaction < lowSatisfaction {
		s.logf("%s: Citizens are unhappy, satisfaction at %d", TagWarning, s.satisfaction)
	}

	if rng != nil {
		rollEvents(s, rng, coverage, expenses)
	}

	if s.budget < 0 {
		s.logf("%s: The city is bankrupt, budget at %d", TagCritical, s.budget)
	}
	if s.families <= 0 && c.families > 0 {
		s.logf("%s: The last families have left the city", TagCritical)
	}

	report := DayReport{
		Day:           s.day,
		Income:        income,
		Expenses:      expenses,
		FamiliesDelta: s.families - c.families,
		Entries:       s.entries,
	}

	c.day = s.day
	c.budget = s.budget
	c.families = s.families
	c.satisfaction = s.satisfaction
	c.dailyIncome = income
	c.dailyExpenses = expenses
	c.buildings = s.buildings
	c.log.entries = append(c.log.entries, s.entries...)
	return report
}

// income is tax on resident families plus VAT-weighted revenue from
// commercial and industrial buildings.
func (c *City) income(buildings []Building, families int) int {
	revenue := 0
	for _, b := range buildings {
		if b.Type.producesIncome() {
			revenue += b.Type.Info().Revenue
		}
	}
	tax := float64(families) * c.taxRate * perFamilyIncomeBase
	vat := float64(revenue) * (1 + c.vatRate) * vatContributionFactor
	return int(math.Round(tax + vat))
}

func expenses(buildings []Building) int {
	total := baseCityServiceCost
	for _, b := range buildings {
		total += b.Type.Upkeep()
	}
	return total
}

// populationDelta is continuous and non-decreasing in coverage and satisfaction.
// Below the shortage threshold families leave; above it they arrive, at full
// pace once housing and jobs reach the adequacy threshold. Growth never
// exceeds free housing, and an empty city stays empty.
func populationDelta(families, housing int, cv Coverage, satisfaction int) int {
	crit := cv.critical()
	sat := float64(clampInt(satisfaction, MinSatisfaction, MaxSatisfaction)) / 100

	var rate float64
	if crit < shortageThreshold {
		severity := (shortageThreshold - crit) / shortageThreshold
		rate = -maxDeclineRate * severity * (1.5 - sat)
	} else {
		readiness := math.Min(1, (crit-shortageThreshold)/(adequacyThreshold-shortageThreshold))
		rate = maxGrowthRate * readiness * (0.5 + 0.5*cv.services()) * (0.25 + 0.75*sat)
	}

	delta := int(math.Round(float64(families) * rate))
	switch {
	case rate > 0 && delta == 0 && families > 0:
		delta = 1
	case rate < 0 && delta == 0 && families > 0:
		delta = -1
	}
	if delta > 0 {
		delta = minInt(delta, maxInt(housing-families, 0))
	}
	if delta < -families {
		delta = -families
	}
	return delta
}

func satisfactionFor(cv Coverage, taxRate, vatRate float64) int {
	w := satisfactionWeights
	base := 100 * (w.housing*capped(cv.Housing) +
		w.jobs*capped(cv.Jobs) +
		w.education*capped(cv.Education) +
		w.healthcare*capped(cv.Healthcare) +
		w.water*capped(cv.Water) +
		w.power*capped(cv.Power) +
		w.leisure*capped(cv.Leisure))
	burden := taxRate*taxBurdenWeight + vatRate*vatBurdenWeight
	return clampInt(int(math.Round(base-burden)), MinSatisfaction, MaxSatisfaction)
}

// rollEvents draws the four daily events in a fixed order so a seeded source
// replays identically.
func rollEvents(s *dayState, rng RandomSource, cv Coverage, expenses int) {
	fire := rng.Float64() < fireChance
	epidemic := rng.Float64() < epidemicChance
	crisis := rng.Float64() < crisisChance
	grant := rng.Float64() < grantChance

	if fire && len(s.buildings) > 0 {
		b := &s.buildings[rng.Intn(len(s.buildings))]
		b.damage(fireDamage)
		s.satisfaction = clampInt(s.satisfaction-fireSatisfactionHit, MinSatisfaction, MaxSatisfaction)
		s.logf("%s damaged %s #%d, condition now %d%%", TagFire, b.Type.Name(), b.ID, b.Condition)
	}

	if epidemic && s.families > 0 {
		share := epidemicBaseLoss + epidemicSeverity*(1-capped(cv.Healthcare))
		lost := maxInt(int(math.Round(float64(s.families)*share)), 1)
		lost = minInt(lost, s.families)
		s.families -= lost
		s.satisfaction = clampInt(s.satisfaction-epidemicSatisfactionHit, MinSatisfaction, MaxSatisfaction)
		s.logf("%s struck the city, %d families lost", TagEpidemic, lost)
	}

	if crisis {
		loss := crisisMinimumLoss
		if share := int(float64(s.budget) * crisisBudgetShare); share > loss {
			loss = share
		}
		s.budget -= loss
		s.logf("%s cost the treasury %d", TagEconomicCrisis, loss)
	}

	if grant {
		if amount := int(float64(expenses) * grantExpenseShare); amount > 0 {
			s.budget += amount
			s.logf("%s of %d received from the regional government", TagGrant, amount)
		}
	}
}
