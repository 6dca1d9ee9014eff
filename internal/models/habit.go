package models

import (
	"fmt"
	"time"

	"github.com/julianstephens/habitual/internal/utils"
)

// Frequency is how often a habit is expected to be done.
type Frequency string

const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
)

// Frequencies lists every supported frequency in display order.
func Frequencies() []Frequency {
	return []Frequency{FrequencyDaily, FrequencyWeekly}
}

// ParseFrequency maps the stored or user-supplied text onto a Frequency.
func ParseFrequency(s string) (Frequency, error) {
	switch Frequency(s) {
	case FrequencyDaily:
		return FrequencyDaily, nil
	case FrequencyWeekly:
		return FrequencyWeekly, nil
	default:
		return "", fmt.Errorf("invalid frequency %q (expected daily or weekly)", s)
	}
}

// Title returns the frequency capitalized for display.
func (f Frequency) Title() string {
	switch f {
	case FrequencyDaily:
		return "Daily"
	case FrequencyWeekly:
		return "Weekly"
	default:
		return string(f)
	}
}

// PeriodUnit returns the plural unit a streak of this frequency is counted in.
func (f Frequency) PeriodUnit() string {
	switch f {
	case FrequencyDaily:
		return "days"
	case FrequencyWeekly:
		return "weeks"
	default:
		return "periods"
	}
}

// Habit represents a recurring practice to track.
// Completions holds one timestamp per period in which the habit was done;
// it is unordered and only ever appended to.
type Habit struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Frequency   Frequency   `json:"frequency"`
	CreatedAt   time.Time   `json:"created_at"`
	Completions []time.Time `json:"completions"`
}

// IsCompletedToday reports whether any completion falls on now's calendar date.
func (h *Habit) IsCompletedToday(now time.Time) bool {
	for _, c := range h.Completions {
		if utils.SameDay(c, now) {
			return true
		}
	}
	return false
}

// IsCompletedThisWeek reports whether any completion falls in now's week.
func (h *Habit) IsCompletedThisWeek(now time.Time) bool {
	for _, c := range h.Completions {
		if utils.SameWeek(c, now) {
			return true
		}
	}
	return false
}

// IsCompletedForPeriod reports whether the habit is done for the period
// containing now, according to its frequency.
func (h *Habit) IsCompletedForPeriod(now time.Time) bool {
	switch h.Frequency {
	case FrequencyDaily:
		return h.IsCompletedToday(now)
	case FrequencyWeekly:
		return h.IsCompletedThisWeek(now)
	default:
		return false
	}
}

// Complete records now as a completion unless the current period already
// has one. It returns false, and leaves the habit untouched, in that case.
func (h *Habit) Complete(now time.Time) bool {
	switch h.Frequency {
	case FrequencyDaily:
		if h.IsCompletedToday(now) {
			return false
		}
	case FrequencyWeekly:
		if h.IsCompletedThisWeek(now) {
			return false
		}
	default:
		return false
	}
	h.Completions = append(h.Completions, now)
	return true
}
