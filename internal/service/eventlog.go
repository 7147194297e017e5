package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"citysim/internal/city"
)

// LogFilter narrows the event log. Nil day bounds are open; Recent keeps the
// last n matches after the other filters, 0 keeps all.
type LogFilter struct {
	Tag     string
	FromDay *int
	ToDay   *int
	Recent  int
}

type EventLogService struct {
	session *GameSession
}

func NewEventLogService(session *GameSession) *EventLogService {
	return &EventLogService{session: session}
}

var (
	errInvalidDayRange = fmt.Errorf("%w: from_day must be <= to_day", ErrInvalidArgument)
	errNegativeRecent  = fmt.Errorf("%w: recent must not be negative", ErrInvalidArgument)
)

func normalizeTag(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

func validateFilter(f LogFilter) error {
	if f.FromDay != nil && f.ToDay != nil && *f.FromDay > *f.ToDay {
		return errInvalidDayRange
	}
	if f.Recent < 0 {
		return errNegativeRecent
	}
	return nil
}

// entryDay extracts n from the "Day n: " prefix every entry carries.
func entryDay(entry string) (int, bool) {
	rest, ok := strings.CutPrefix(entry, "Day ")
	if !ok {
		return 0, false
	}
	num, _, ok := strings.Cut(rest, ":")
	if !ok {
		return 0, false
	}
	day, err := strconv.Atoi(num)
	return day, err == nil
}

func matches(entry string, tag string, f LogFilter) bool {
	if tag != "" && !strings.Contains(entry, tag) {
		return false
	}
	if f.FromDay == nil && f.ToDay == nil {
		return true
	}
	day, ok := entryDay(entry)
	if !ok {
		return false
	}
	if f.FromDay != nil && day < *f.FromDay {
		return false
	}
	if f.ToDay != nil && day > *f.ToDay {
		return false
	}
	return true
}

func (s *EventLogService) List(_ context.Context, f LogFilter) ([]string, error) {
	if err := validateFilter(f); err != nil {
		return nil, err
	}
	tag := normalizeTag(f.Tag)

	var entries []string
	s.session.Read(func(c *city.City) {
		entries = c.Events()
	})

	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if matches(e, tag, f) {
			out = append(out, e)
		}
	}
	if f.Recent > 0 && len(out) > f.Recent {
		out = out[len(out)-f.Recent:]
	}
	return out, nil
}
