package validation

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/utils"
)

// ConflictType represents the type of data integrity problem
type ConflictType string

const (
	ConflictDuplicateHabitName    ConflictType = "duplicate_habit_name"
	ConflictInvalidName           ConflictType = "invalid_name"
	ConflictInvalidFrequency      ConflictType = "invalid_frequency"
	ConflictCompletionBeforeHabit ConflictType = "completion_before_habit"
	ConflictFutureCompletion      ConflictType = "future_completion"
	ConflictDuplicateCompletion   ConflictType = "duplicate_completion"
)

// Conflict is one problem found in stored habits
type Conflict struct {
	Type        ConflictType
	Description string
	HabitIDs    []int64
}

// ValidationResult contains all detected conflicts
type ValidationResult struct {
	Conflicts []Conflict
}

func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	var b strings.Builder
	b.WriteString("Conflicts detected:\n")
	for _, c := range vr.Conflicts {
		fmt.Fprintf(&b, "- %s\n", c.Description)
	}
	return b.String()
}

func (vr *ValidationResult) add(t ConflictType, ids []int64, format string, args ...any) {
	vr.Conflicts = append(vr.Conflicts, Conflict{
		Type:        t,
		Description: fmt.Sprintf(format, args...),
		HabitIDs:    ids,
	})
}

// Validator checks stored habits for data the application would never
// write itself: hand-edited rows, imports, clock skew.
type Validator struct {
	now func() time.Time
}

func New(now func() time.Time) *Validator {
	return &Validator{now: now}
}

func (v *Validator) ValidateHabits(habits []models.Habit) ValidationResult {
	result := ValidationResult{Conflicts: []Conflict{}}
	now := v.now()

	byName := make(map[string][]int64)
	var names []string
	for _, h := range habits {
		if _, seen := byName[h.Name]; !seen {
			names = append(names, h.Name)
		}
		byName[h.Name] = append(byName[h.Name], h.ID)
	}
	for _, name := range names {
		if ids := byName[name]; len(ids) > 1 {
			result.add(ConflictDuplicateHabitName, ids, "Duplicate habit name: %q (IDs: %v)", name, ids)
		}
	}

	for _, h := range habits {
		if err := ValidateName(h.Name); err != nil {
			result.add(ConflictInvalidName, []int64{h.ID},
				"Habit %d name %q is not %d-%d characters", h.ID, h.Name, constants.MinHabitNameLen, constants.MaxHabitNameLen)
		}

		var samePeriod func(a, b time.Time) bool
		switch h.Frequency {
		case models.FrequencyDaily:
			samePeriod = utils.SameDay
		case models.FrequencyWeekly:
			samePeriod = utils.SameWeek
		default:
			result.add(ConflictInvalidFrequency, []int64{h.ID}, "Habit %q has unknown frequency %q", h.Name, h.Frequency)
			continue
		}

		completions := make([]time.Time, len(h.Completions))
		copy(completions, h.Completions)
		sort.Slice(completions, func(i, j int) bool { return completions[i].Before(completions[j]) })

		for i, c := range completions {
			if !h.CreatedAt.IsZero() && c.Before(utils.StartOfDay(h.CreatedAt)) {
				result.add(ConflictCompletionBeforeHabit, []int64{h.ID},
					"Habit %q has a completion on %s, before it was created on %s",
					h.Name, c.Format(constants.DateFormat), h.CreatedAt.Format(constants.DateFormat))
			}
			if c.After(now) {
				result.add(ConflictFutureCompletion, []int64{h.ID},
					"Habit %q has a completion in the future: %s", h.Name, c.Format(constants.DateFormat))
			}
			if i > 0 && samePeriod(completions[i-1], c) {
				result.add(ConflictDuplicateCompletion, []int64{h.ID},
					"Habit %q has more than one completion in the %s of %s",
					h.Name, periodWord(h.Frequency), c.Format(constants.DateFormat))
			}
		}
	}

	return result
}

func periodWord(f models.Frequency) string {
	switch f {
	case models.FrequencyDaily:
		return "day"
	case models.FrequencyWeekly:
		return "week"
	}
	return "period"
}
