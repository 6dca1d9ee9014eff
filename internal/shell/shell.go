// Package shell is the numbered-menu interface to the habit tracker.
package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/julianstephens/habitual/internal/analytics"
	"github.com/julianstephens/habitual/internal/logger"
	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/storage"
	"github.com/julianstephens/habitual/internal/validation"
)

const (
	mainMenu     = "\n1. Create habit\n2. Delete habit\n3. Check all habits\n4. Complete habit\n5. Analyze habits\n6. Exit"
	analysisMenu = "\n1. List all habits\n2. List habits by frequency\n3. Get longest streak of all habits\n4. Get longest streak for a habit"

	promptChoice    = "Enter your choice: "
	promptName      = "Enter habit name: "
	promptFrequency = "Enter habit frequency (daily/weekly): "
	promptID        = "Enter habit ID: "

	msgNameLength       = "Habit name must be between 3 and 20 characters."
	msgInvalidFrequency = "Invalid frequency. Please enter 'daily' or 'weekly'."
	msgInvalidID        = "Invalid habit ID. Please enter a number."
	msgNotFound         = "Habit not found."
	msgAlreadyDone      = "Habit has already been completed for this period."
	msgNoHabits         = "No habits found."
	msgInvalidChoice    = "Invalid choice. Please try again."
	msgFarewell         = "Have an amazing day!"
)

// Shell owns the in-memory habit collection for one interactive session.
type Shell struct {
	store  storage.Provider
	in     *bufio.Scanner
	out    io.Writer
	now    func() time.Time
	habits []models.Habit
}

func New(store storage.Provider, in io.Reader, out io.Writer, now func() time.Time) *Shell {
	return &Shell{
		store: store,
		in:    bufio.NewScanner(in),
		out:   out,
		now:   now,
	}
}

// Run loads the habits and serves the menu until Exit or end of input.
// Storage failures end the session and are returned.
func (s *Shell) Run() error {
	habits, err := s.store.ListHabits()
	if err != nil {
		return fmt.Errorf("failed to load habits: %w", err)
	}
	s.habits = habits
	logger.Debug("Shell started", "habits", len(habits))

	for {
		s.println(mainMenu)
		choice, err := s.prompt(promptChoice)
		if err != nil {
			return s.finish(err)
		}

		switch strings.TrimSpace(choice) {
		case "1":
			err = s.createHabit()
		case "2":
			err = s.deleteHabit()
		case "3":
			s.checkHabits()
		case "4":
			err = s.completeHabit()
		case "5":
			err = s.analyze()
		case "6":
			s.println(msgFarewell)
			return nil
		default:
			s.println(msgInvalidChoice)
		}
		if err != nil {
			return s.finish(err)
		}
	}
}

func (s *Shell) finish(err error) error {
	if errors.Is(err, io.EOF) {
		s.println("")
		s.println(msgFarewell)
		return nil
	}
	logger.Error("Shell aborted", "error", err)
	return err
}

func (s *Shell) println(line string) {
	fmt.Fprintln(s.out, line)
}

func (s *Shell) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format+"\n", args...)
}

// prompt returns the next input line without its line ending, or io.EOF.
func (s *Shell) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimRight(s.in.Text(), "\r"), nil
}

// find returns the index of the habit with id in the session collection.
func (s *Shell) find(id int64) (int, bool) {
	for i := range s.habits {
		if s.habits[i].ID == id {
			return i, true
		}
	}
	return -1, false
}

// promptHabit asks for an id and resolves it. ok is false when the user
// was already told why no habit was selected.
func (s *Shell) promptHabit() (idx int, ok bool, err error) {
	raw, err := s.prompt(promptID)
	if err != nil {
		return -1, false, err
	}
	id, err := validation.ParseID(raw)
	if err != nil {
		s.println(msgInvalidID)
		return -1, false, nil
	}
	idx, found := s.find(id)
	if !found {
		s.println(msgNotFound)
		return -1, false, nil
	}
	return idx, true, nil
}

func (s *Shell) createHabit() error {
	name, err := s.prompt(promptName)
	if err != nil {
		return err
	}
	if validation.ValidateName(name) != nil {
		s.println(msgNameLength)
		return nil
	}

	raw, err := s.prompt(promptFrequency)
	if err != nil {
		return err
	}
	frequency, err := validation.ParseFrequency(raw)
	if err != nil {
		s.println(msgInvalidFrequency)
		return nil
	}

	habit, err := s.store.CreateHabit(name, frequency)
	if err != nil {
		return err
	}
	s.habits = append(s.habits, habit)
	logger.Info("Habit created", "id", habit.ID, "frequency", habit.Frequency)
	s.printf("Habit '%s' added.", name)
	return nil
}

func (s *Shell) deleteHabit() error {
	idx, ok, err := s.promptHabit()
	if err != nil || !ok {
		return err
	}

	habit := s.habits[idx]
	if err := s.store.DeleteHabit(habit.ID); err != nil {
		return err
	}
	s.habits = append(s.habits[:idx], s.habits[idx+1:]...)
	logger.Info("Habit deleted", "id", habit.ID)
	s.printf("Habit '%s' deleted.", habit.Name)
	return nil
}

func (s *Shell) checkHabits() {
	now := s.now()
	s.println("\nHabits:")
	for i := range s.habits {
		h := &s.habits[i]
		status := "Not completed"
		if h.IsCompletedForPeriod(now) {
			status = "Completed"
		}
		s.printf("%d: %s (%s) - %s", h.ID, h.Name, h.Frequency.Title(), status)
	}
}

func (s *Shell) completeHabit() error {
	idx, ok, err := s.promptHabit()
	if err != nil || !ok {
		return err
	}

	habit := &s.habits[idx]
	now := s.now()
	if !habit.Complete(now) {
		s.println(msgAlreadyDone)
		return nil
	}
	if err := s.store.RecordCompletion(habit.ID, now); err != nil {
		habit.Completions = habit.Completions[:len(habit.Completions)-1]
		return err
	}
	logger.Info("Habit completed", "id", habit.ID)
	s.printf("Habit '%s' completed.", habit.Name)
	return nil
}

func (s *Shell) analyze() error {
	s.println(analysisMenu)
	choice, err := s.prompt(promptChoice)
	if err != nil {
		return err
	}

	switch strings.TrimSpace(choice) {
	case "1":
		s.println("All habits:")
		for _, h := range analytics.AllHabits(s.habits) {
			s.printf("%d: %s (%s)", h.ID, h.Name, h.Frequency.Title())
		}
	case "2":
		s.println("Daily habits:")
		for _, h := range analytics.HabitsByFrequency(s.habits, models.FrequencyDaily) {
			s.printf("%d: %s", h.ID, h.Name)
		}
		s.println("\nWeekly habits:")
		for _, h := range analytics.HabitsByFrequency(s.habits, models.FrequencyWeekly) {
			s.printf("%d: %s", h.ID, h.Name)
		}
	case "3":
		best, streak, found := analytics.LongestStreakAcrossHabits(s.habits)
		if !found {
			s.println(msgNoHabits)
			return nil
		}
		s.printf("Longest streak of all habits: '%s' (%s, %d %s)", best.Name, best.Frequency, streak, best.Frequency.PeriodUnit())
	case "4":
		idx, ok, err := s.promptHabit()
		if err != nil || !ok {
			return err
		}
		h := s.habits[idx]
		s.printf("Longest streak for habit '%s': %d %s", h.Name, analytics.LongestStreak(h), h.Frequency.PeriodUnit())
	default:
		s.println(msgInvalidChoice)
	}
	return nil
}

// Habits returns the session's current collection.
func (s *Shell) Habits() []models.Habit {
	return s.habits
}
