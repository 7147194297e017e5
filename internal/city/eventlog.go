package city

import (
	"fmt"
	"strings"
)

// Tags marking notable entries. Consumers match on these substrings.
const (
	TagFire           = "FIRE"
	TagEpidemic       = "EPIDEMIC"
	TagEconomicCrisis = "ECONOMIC CRISIS"
	TagGrant          = "GRANT"
	TagCritical       = "CRITICAL"
	TagWarning        = "WARNING"
)

// NotableTags is the fixed tag set that marks an entry as notable.
var NotableTags = []string{TagFire, TagEpidemic, TagEconomicCrisis, TagGrant, TagCritical, TagWarning}

// DefaultRecentEvents is the suffix length returned when a caller asks for n <= 0.
const DefaultRecentEvents = 10

// EventLog is an append-only list of day-stamped entries.
type EventLog struct {
	entries []string
}

func newEventLog(entries []string) *EventLog {
	return &EventLog{entries: append([]string(nil), entries...)}
}

func (l *EventLog) appendf(day int, format string, args ...any) {
	l.entries = append(l.entries, fmt.Sprintf("Day %d: ", day)+fmt.Sprintf(format, args...))
}

// Len returns the number of entries.
func (l *EventLog) Len() int { return len(l.entries) }

// All returns a copy of every entry in chronological order.
func (l *EventLog) All() []string {
	return append([]string(nil), l.entries...)
}

// Recent returns at most the last n entries, oldest first.
func (l *EventLog) Recent(n int) []string {
	if n <= 0 {
		n = DefaultRecentEvents
	}
	start := len(l.entries) - n
	if start < 0 {
		start = 0
	}
	return append([]string(nil), l.entries[start:]...)
}

// Filter returns the entries containing tag.
func (l *EventLog) Filter(tag string) []string {
	var out []string
	for _, e := range l.entries {
		if strings.Contains(e, tag) {
			out = append(out, e)
		}
	}
	return out
}

// Notable returns the entries carrying any of NotableTags.
func (l *EventLog) Notable() []string {
	var out []string
	for _, e := range l.entries {
		if IsNotable(e) {
			out = append(out, e)
		}
	}
	return out
}

// IsNotable reports whether entry carries one of NotableTags.
func IsNotable(entry string) bool {
	for _, tag := range NotableTags {
		if strings.Contains(entry, tag) {
			return true
		}
	}
	return false
}
