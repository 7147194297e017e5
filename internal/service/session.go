package service

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"citysim/internal/city"
	"citysim/internal/logger"
	"citysim/internal/metrics"
	"citysim/internal/models"
)

// Outcome says why a session ended. The zero value means it is still running.
type Outcome string

const (
	OutcomeNone      Outcome = ""
	OutcomeBankrupt  Outcome = "bankrupt"
	OutcomeAbandoned Outcome = "abandoned"
)

const maxAdvanceDays = 365

var (
	ErrGameOver          = errors.New("game over")
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrInvalidArgument wraps every rejected caller input.
	ErrInvalidArgument = errors.New("invalid argument")

	errInvalidDays = fmt.Errorf("%w: days must be between 1 and %d", ErrInvalidArgument, maxAdvanceDays)
)

// SessionOptions configures a GameSession. Seed 0 picks a time-based seed;
// loading a save switches to the seed stored with it.
type SessionOptions struct {
	City    city.Config
	Sandbox bool
	Seed    int64
}

// BuildResult is a constructed building and the budget left after paying for it.
type BuildResult struct {
	Building city.Building `json:"building"`
	Budget   int           `json:"budget"`
}

// TickResult summarizes an Advance call.
type TickResult struct {
	Reports  []city.DayReport `json:"reports"`
	Continue bool             `json:"continue"`
	Outcome  Outcome          `json:"outcome,omitempty"`
	Score    int              `json:"score"`
}

// GameSession owns the current city and serializes every operation on it.
// Outside sandbox mode it ends the game on bankruptcy or abandonment.
type GameSession struct {
	mu sync.Mutex

	id      string
	opts    SessionOptions
	seed    int64
	city    *city.City
	outcome Outcome

	log     *logger.Logger
	metrics metrics.Recorder
}

func NewGameSession(opts SessionOptions, rec metrics.Recorder, log *logger.Logger) *GameSession {
	if rec == nil {
		rec = metrics.Nop{}
	}
	if log == nil {
		log = logger.Nop()
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &GameSession{
		id:      uuid.NewString(),
		opts:    opts,
		seed:    seed,
		log:     log.Component("session"),
		metrics: rec,
	}
	s.replaceLocked(city.New(opts.City))
	return s
}

func (s *GameSession) ID() string { return s.id }

func (s *GameSession) Sandbox() bool { return s.opts.Sandbox }

func (s *GameSession) Seed() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.seed
}

// rngFor derives each day's event stream from the seed and the day, so a city
// reloaded from a save replays the same days as one that never left memory.
func rngFor(seed int64, day int) *rand.Rand {
	return rand.New(rand.NewSource(seed ^ int64(day)*0x9E3779B1))
}

// replaceLocked swaps in a new city. The end state is re-evaluated so that a
// loaded city that is already lost stays lost.
func (s *GameSession) replaceLocked(c *city.City) {
	s.city = c
	s.outcome = s.terminalOutcome()
}

func (s *GameSession) terminalOutcome() Outcome {
	if s.opts.Sandbox {
		return OutcomeNone
	}
	switch {
	case s.city.Budget() < 0:
		return OutcomeBankrupt
	case s.city.Families() <= 0:
		return OutcomeAbandoned
	default:
		return OutcomeNone
	}
}

// NewCity discards the current city and founds a fresh one.
func (s *GameSession) NewCity() models.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.replaceLocked(city.New(s.opts.City))
	s.log.Infow("city_founded", "session_id", s.id, "families", s.city.Families(), "budget", s.city.Budget())
	return s.stateLocked()
}

// ReplaceCity installs c as the current city and continues its event stream
// from seed. A zero seed keeps the session's own.
func (s *GameSession) ReplaceCity(c *city.City, seed int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seed != 0 {
		s.seed = seed
	}
	s.replaceLocked(c)
}

// Build charges the construction cost and adds the building. An unaffordable
// build returns ErrInsufficientFunds and leaves the city untouched.
func (s *GameSession) Build(t city.BuildingType) (BuildResult, error) {
	if !t.Valid() {
		return BuildResult{}, city.ErrUnknownBuildingType
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.outcome != OutcomeNone {
		return BuildResult{}, ErrGameOver
	}
	cost := t.Cost()
	if s.city.Budget() < cost {
		s.metrics.RecordBuild(t.String(), false)
		s.log.Infow("build_rejected", "session_id", s.id, "type", t.String(), "cost", cost, "budget", s.city.Budget())
		return BuildResult{}, fmt.Errorf("%w: %s costs %d, budget is %d", ErrInsufficientFunds, t.Name(), cost, s.city.Budget())
	}

	s.city.Spend(cost)
	b := s.city.AddBuilding(t)
	s.metrics.RecordBuild(t.String(), true)
	s.log.Infow("build_accepted", "session_id", s.id, "type", t.String(), "id", b.ID, "cost", cost, "budget", s.city.Budget())
	return BuildResult{Building: b, Budget: s.city.Budget()}, nil
}

// BuildBuilding reports whether the building was constructed.
func (s *GameSession) BuildBuilding(t city.BuildingType) bool {
	_, err := s.Build(t)
	return err == nil
}

// SetTaxRate clamps and applies rate, returning the stored value.
func (s *GameSession) SetTaxRate(rate float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.city.SetTaxRate(rate)
	s.log.Debugw("tax_rate_set", "session_id", s.id, "requested", rate, "applied", s.city.TaxRate())
	return s.city.TaxRate()
}

// SetVatRate clamps and applies rate, returning the stored value.
func (s *GameSession) SetVatRate(rate float64) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.city.SetVatRate(rate)
	s.log.Debugw("vat_rate_set", "session_id", s.id, "requested", rate, "applied", s.city.VatRate())
	return s.city.VatRate()
}

// CityTick advances one day and reports whether play continues. Once a
// session has ended further calls return false without ticking.
func (s *GameSession) CityTick() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, cont := s.tickLocked()
	return cont
}

func (s *GameSession) tickLocked() (city.DayReport, bool) {
	if s.outcome != OutcomeNone {
		return city.DayReport{}, false
	}

	started := time.Now()
	report := s.city.NextDay(rngFor(s.seed, s.city.Day()))
	s.metrics.RecordTick(s.city.Day(), s.city.Budget(), s.city.Families(), s.city.Satisfaction(), time.Since(started))
	s.log.Debugw("city_tick",
		"session_id", s.id,
		"day", report.Day,
		"income", report.Income,
		"expenses", report.Expenses,
		"budget", s.city.Budget(),
		"families", s.city.Families(),
		"satisfaction", s.city.Satisfaction(),
	)

	s.outcome = s.terminalOutcome()
	if s.outcome != OutcomeNone {
		s.metrics.RecordEnding(string(s.outcome))
		s.log.Warnw("session_ended",
			"session_id", s.id,
			"reason", string(s.outcome),
			"day", s.city.Day(),
			"score", s.city.Score(),
		)
		return report, false
	}
	return report, true
}

// Advance ticks up to days times, stopping early when the session ends.
func (s *GameSession) Advance(days int) (TickResult, error) {
	if days < 1 || days > maxAdvanceDays {
		return TickResult{}, errInvalidDays
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.outcome != OutcomeNone {
		return TickResult{}, ErrGameOver
	}

	res := TickResult{Reports: make([]city.DayReport, 0, days), Continue: true}
	for i := 0; i < days && res.Continue; i++ {
		var report city.DayReport
		report, res.Continue = s.tickLocked()
		res.Reports = append(res.Reports, report)
	}
	res.Outcome = s.outcome
	res.Score = s.city.Score()
	return res, nil
}

func (s *GameSession) Outcome() Outcome {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outcome
}

func (s *GameSession) Ended() bool {
	return s.Outcome() != OutcomeNone
}

func (s *GameSession) Score() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.city.Score()
}

// Read runs fn with the current city while holding the session lock. fn must
// not retain c.
func (s *GameSession) Read(fn func(c *city.City)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.city)
}

// Snapshot returns the city together with the session seed, so a saved city
// resumes the same event stream.
func (s *GameSession) Snapshot() models.CitySnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *GameSession) snapshotLocked() models.CitySnapshot {
	snap := s.city.Snapshot()
	snap.Seed = s.seed
	return snap
}

func (s *GameSession) State() models.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *GameSession) stateLocked() models.SessionState {
	return models.SessionState{
		SessionID: s.id,
		Sandbox:   s.opts.Sandbox,
		Ended:     s.outcome != OutcomeNone,
		Outcome:   string(s.outcome),
		Score:     s.city.Score(),
		City:      s.snapshotLocked(),
	}
}
