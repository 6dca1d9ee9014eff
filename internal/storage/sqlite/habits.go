package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/habitual/internal/models"
	"github.com/julianstephens/habitual/internal/storage"
	"github.com/julianstephens/habitual/internal/utils"
)

func (s *Store) CreateHabit(name string, frequency models.Frequency) (models.Habit, error) {
	createdAt := s.now()
	result, err := s.db.Exec(`
		INSERT INTO habits (name, frequency, creation_date) VALUES (?, ?, ?)`,
		name, string(frequency), utils.FormatTimestamp(createdAt))
	if err != nil {
		return models.Habit{}, storage.WrapHabitErr("create", 0, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return models.Habit{}, storage.WrapHabitErr("create", 0, err)
	}

	return models.Habit{
		ID:        id,
		Name:      name,
		Frequency: frequency,
		CreatedAt: createdAt,
	}, nil
}

func (s *Store) GetHabit(id int64) (models.Habit, error) {
	row := s.db.QueryRow(`
		SELECT id, name, frequency, creation_date
		FROM habits WHERE id = ?`, id)

	h, err := scanHabit(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Habit{}, storage.WrapHabitErr("get", id, storage.ErrNotFound)
	}
	if err != nil {
		return models.Habit{}, storage.WrapHabitErr("get", id, err)
	}

	h.Completions, err = s.completionsFor(id)
	if err != nil {
		return models.Habit{}, storage.WrapHabitErr("get", id, err)
	}
	return h, nil
}

func (s *Store) ListHabits() ([]models.Habit, error) {
	// Check if table exists so a half-initialized database lists nothing
	exists, err := s.tableExists("habits")
	if err != nil {
		return nil, storage.WrapHabitErr("list", 0, err)
	}
	if !exists {
		return []models.Habit{}, nil
	}

	rows, err := s.db.Query(`
		SELECT id, name, frequency, creation_date
		FROM habits ORDER BY id`)
	if err != nil {
		return nil, storage.WrapHabitErr("list", 0, err)
	}

	var habits []models.Habit
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			rows.Close()
			return nil, storage.WrapHabitErr("list", 0, err)
		}
		habits = append(habits, h)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, storage.WrapHabitErr("list", 0, err)
	}
	// Release the single connection before querying completions.
	rows.Close()

	byID, err := s.allCompletions()
	if err != nil {
		return nil, storage.WrapHabitErr("list", 0, err)
	}
	for i := range habits {
		habits[i].Completions = byID[habits[i].ID]
	}

	return habits, nil
}

func (s *Store) DeleteHabit(id int64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return storage.WrapHabitErr("delete", id, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM completions WHERE habit_id = ?", id); err != nil {
		return storage.WrapHabitErr("delete", id, err)
	}
	if _, err := tx.Exec("DELETE FROM habits WHERE id = ?", id); err != nil {
		return storage.WrapHabitErr("delete", id, err)
	}

	return storage.WrapHabitErr("delete", id, tx.Commit())
}

func (s *Store) RecordCompletion(habitID int64, at time.Time) error {
	_, err := s.db.Exec(`
		INSERT INTO completions (habit_id, completion_date) VALUES (?, ?)`,
		habitID, utils.FormatTimestamp(at))
	return storage.WrapCompletionErr("record", habitID, err)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanHabit(row scanner) (models.Habit, error) {
	var h models.Habit
	var frequency, createdAt string

	if err := row.Scan(&h.ID, &h.Name, &frequency, &createdAt); err != nil {
		return models.Habit{}, err
	}

	var err error
	h.Frequency, err = models.ParseFrequency(frequency)
	if err != nil {
		return models.Habit{}, fmt.Errorf("habit %d: %w", h.ID, err)
	}
	h.CreatedAt, err = utils.ParseTimestamp(createdAt)
	if err != nil {
		return models.Habit{}, fmt.Errorf("failed to parse creation_date for habit %d: %w", h.ID, err)
	}
	return h, nil
}

func (s *Store) completionsFor(habitID int64) ([]time.Time, error) {
	rows, err := s.db.Query(`
		SELECT completion_date FROM completions WHERE habit_id = ? ORDER BY id`, habitID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		t, err := utils.ParseTimestamp(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse completion_date for habit %d: %w", habitID, err)
		}
		dates = append(dates, t)
	}
	return dates, rows.Err()
}

func (s *Store) allCompletions() (map[int64][]time.Time, error) {
	rows, err := s.db.Query(`SELECT habit_id, completion_date FROM completions ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byID := make(map[int64][]time.Time)
	for rows.Next() {
		var habitID int64
		var raw string
		if err := rows.Scan(&habitID, &raw); err != nil {
			return nil, err
		}
		t, err := utils.ParseTimestamp(raw)
		if err != nil {
			return nil, fmt.Errorf("failed to parse completion_date for habit %d: %w", habitID, err)
		}
		byID[habitID] = append(byID[habitID], t)
	}
	return byID, rows.Err()
}
