// Package analytics computes groupings and streaks over in-memory habits.
// Nothing in here touches storage or fails; missing data yields zero values.
package analytics

import (
	"sort"
	"time"

	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/utils"
)

// Summary is the per-habit view used by the report and the TUI.
type Summary struct {
	Habit              models.Habit
	Longest            int
	Current            int
	CompletedForPeriod bool
	TotalCompletions   int
}

// AllHabits returns habits unchanged, in input order.
func AllHabits(habits []models.Habit) []models.Habit {
	return habits
}

// HabitsByFrequency returns the habits with the given frequency, preserving order.
func HabitsByFrequency(habits []models.Habit, f models.Frequency) []models.Habit {
	var out []models.Habit
	for _, h := range habits {
		if h.Frequency == f {
			out = append(out, h)
		}
	}
	return out
}

// sortedCompletions returns an ascending copy; the habit's own slice is left as is.
func sortedCompletions(h models.Habit) []time.Time {
	dates := make([]time.Time, len(h.Completions))
	copy(dates, h.Completions)
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// consecutive reports whether t lands in the period right after p's.
func consecutive(f models.Frequency, p, t time.Time) bool {
	switch f {
	case models.FrequencyDaily:
		return utils.NextDay(p, t)
	case models.FrequencyWeekly:
		return utils.NextWeek(p, t)
	default:
		return false
	}
}

// LongestStreak returns the longest run of consecutive periods with a
// completion. A repeated timestamp breaks the run like any other gap.
func LongestStreak(h models.Habit) int {
	current, longest := 0, 0
	var prev *time.Time
	for _, t := range sortedCompletions(h) {
		if prev != nil && consecutive(h.Frequency, *prev, t) {
			current++
		} else {
			current = 1
		}
		longest = max(longest, current)
		prev = &t
	}
	return longest
}

// LongestStreakAcrossHabits returns the habit with the strictly greatest
// longest streak. Ties go to the first habit in input order. found is false
// only when habits is empty.
func LongestStreakAcrossHabits(habits []models.Habit) (best models.Habit, streak int, found bool) {
	for i, h := range habits {
		s := LongestStreak(h)
		if i == 0 || s > streak {
			best, streak = h, s
		}
	}
	return best, streak, len(habits) > 0
}

// CurrentStreak returns the length of the run that ends in now's period or
// the one before it. A run whose last completion is older than that is
// already broken and counts as 0.
func CurrentStreak(h models.Habit, now time.Time) int {
	dates := sortedCompletions(h)
	if len(dates) == 0 {
		return 0
	}

	last := dates[len(dates)-1]
	switch h.Frequency {
	case models.FrequencyDaily:
		if !utils.SameDay(last, now) && !utils.NextDay(last, now) {
			return 0
		}
	case models.FrequencyWeekly:
		if !utils.SameWeek(last, now) && !utils.NextWeek(last, now) {
			return 0
		}
	default:
		return 0
	}

	run := 1
	for i := len(dates) - 1; i > 0; i-- {
		if !consecutive(h.Frequency, dates[i-1], dates[i]) {
			break
		}
		run++
	}
	return run
}

// Summarize builds a Summary for every habit, in input order.
func Summarize(habits []models.Habit, now time.Time) []Summary {
	out := make([]Summary, 0, len(habits))
	for _, h := range habits {
		out = append(out, Summary{
			Habit:              h,
			Longest:            LongestStreak(h),
			Current:            CurrentStreak(h, now),
			CompletedForPeriod: h.IsCompletedForPeriod(now),
			TotalCompletions:   len(h.Completions),
		})
	}
	return out
}
