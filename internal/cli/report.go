package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"citysim/internal/city"
	"citysim/internal/models"
	"citysim/internal/service"
)

var (
	heading = color.New(color.FgCyan, color.Bold)
	good    = color.New(color.FgGreen, color.Bold)
	caution = color.New(color.FgYellow, color.Bold)
	alarm   = color.New(color.FgRed, color.Bold)
	plain   = color.New(color.FgHiWhite)
)

// entryColor picks the color for an event log line by its tag.
func entryColor(entry string) *color.Color {
	switch {
	case strings.Contains(entry, city.TagCritical),
		strings.Contains(entry, city.TagFire),
		strings.Contains(entry, city.TagEpidemic),
		strings.Contains(entry, city.TagEconomicCrisis):
		return alarm
	case strings.Contains(entry, city.TagWarning):
		return caution
	case strings.Contains(entry, city.TagGrant):
		return good
	default:
		return plain
	}
}

func pct(v float64) string {
	return fmt.Sprintf("%.0f%%", v*100)
}

func renderStats(w io.Writer, slot string, st city.Stats) {
	heading.Fprintf(w, "\n== %s, day %d ==\n", slot, st.Day)

	budget := good
	if st.Budget < 0 {
		budget = alarm
	}
	budget.Fprintf(w, "Budget:       %d\n", st.Budget)
	fmt.Fprintf(w, "Income:       %d/day\n", st.DailyIncome)
	fmt.Fprintf(w, "Expenses:     %d/day\n", st.DailyExpenses)
	fmt.Fprintf(w, "Families:     %d\n", st.Families)
	fmt.Fprintf(w, "Satisfaction: %d\n", st.Satisfaction)
	fmt.Fprintf(w, "Tax / VAT:    %s / %s\n", pct(st.TaxRate), pct(st.VatRate))
	fmt.Fprintf(w, "Score:        %d\n", st.Score)

	heading.Fprintln(w, "\nBuildings")
	for _, t := range city.AllBuildingTypes() {
		fmt.Fprintf(w, "  %-12s %3d\n", t.Name(), st.BuildingCounts[t.String()])
	}

	heading.Fprintln(w, "\nCoverage")
	cv := st.Coverage
	for _, row := range []struct {
		name string
		v    float64
	}{
		{"Housing", cv.Housing},
		{"Jobs", cv.Jobs},
		{"Education", cv.Education},
		{"Healthcare", cv.Healthcare},
		{"Water", cv.Water},
		{"Power", cv.Power},
		{"Leisure", cv.Leisure},
	} {
		c := good
		if row.v < 0.5 {
			c = alarm
		} else if row.v < 1 {
			c = caution
		}
		c.Fprintf(w, "  %-12s %6s\n", row.name, pct(row.v))
	}
}

func renderDay(w io.Writer, r city.DayReport) {
	net := r.Income - r.Expenses
	c := good
	if net < 0 {
		c = caution
	}
	c.Fprintf(w, "Day %d: income %d, expenses %d, net %+d, families %+d\n",
		r.Day, r.Income, r.Expenses, net, r.FamiliesDelta)
	for _, e := range r.Entries {
		entryColor(e).Fprintf(w, "  %s\n", e)
	}
}

func renderEvents(w io.Writer, entries []string) {
	if len(entries) == 0 {
		plain.Fprintln(w, "No matching events.")
		return
	}
	for _, e := range entries {
		entryColor(e).Fprintln(w, e)
	}
}

func renderCatalog(w io.Writer) {
	heading.Fprintln(w, "\n== BUILDING CATALOG ==")
	fmt.Fprintf(w, "%-12s %-11s %7s %7s %9s  %s\n", "CODE", "CATEGORY", "COST", "UPKEEP", "CAPACITY", "DESCRIPTION")
	for _, t := range city.AllBuildingTypes() {
		info := t.Info()
		fmt.Fprintf(w, "%-12s %-11s %7d %7d %9d  %s\n",
			info.Code, info.Category, t.Cost(), info.Upkeep, info.Capacity, info.Description)
	}
}

func renderHighscores(w io.Writer, scores []models.Highscore) {
	heading.Fprintln(w, "\n== HIGHSCORES ==")
	if len(scores) == 0 {
		plain.Fprintln(w, "No scores yet.")
		return
	}
	for i, h := range scores {
		fmt.Fprintf(w, "%3d. %-20s %8d  day %d\n", i+1, h.Name, h.Score, h.Day)
	}
}

func renderSlots(w io.Writer, slots []models.SaveSlot) {
	heading.Fprintln(w, "\n== SAVES ==")
	if len(slots) == 0 {
		plain.Fprintln(w, "No saved cities.")
		return
	}
	for _, s := range slots {
		fmt.Fprintf(w, "%-20s day %-5d %s\n", s.Name, s.Day, s.SavedAt.Format("2006-01-02 15:04"))
	}
}

func renderGameOver(w io.Writer, outcome service.Outcome, score int) {
	switch outcome {
	case service.OutcomeBankrupt:
		alarm.Fprintln(w, "\nGAME OVER: the city went bankrupt.")
	case service.OutcomeAbandoned:
		alarm.Fprintln(w, "\nGAME OVER: every family has left the city.")
	default:
		alarm.Fprintln(w, "\nGAME OVER.")
	}
	heading.Fprintf(w, "Final score: %d\n", score)
}
