package postgres

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

	var id int64
	err := s.db.QueryRow(`
		INSERT INTO habits (name, frequency, creation_date) VALUES ($1, $2, $3)
		RETURNING id`,
		name, string(frequency), utils.FormatTimestamp(createdAt)).Scan(&id)
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
	var h models.Habit
	var frequency, createdAt string
	err := s.db.QueryRow(`
		SELECT id, name, frequency, creation_date
		FROM habits WHERE id = $1`, id).Scan(&h.ID, &h.Name, &frequency, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Habit{}, storage.WrapHabitErr("get", id, storage.ErrNotFound)
	}
	if err != nil {
		return models.Habit{}, storage.WrapHabitErr("get", id, err)
	}
	if err := decodeHabit(&h, frequency, createdAt); err != nil {
		return models.Habit{}, storage.WrapHabitErr("get", id, err)
	}

	rows, err := s.db.Query(`
		SELECT completion_date FROM completions WHERE habit_id = $1 ORDER BY id`, id)
	if err != nil {
		return models.Habit{}, storage.WrapHabitErr("get", id, err)
	}
	defer rows.Close()

	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return models.Habit{}, storage.WrapHabitErr("get", id, err)
		}
		t, err := utils.ParseTimestamp(raw)
		if err != nil {
			return models.Habit{}, storage.WrapHabitErr("get", id, err)
		}
		h.Completions = append(h.Completions, t)
	}
	if err := rows.Err(); err != nil {
		return models.Habit{}, storage.WrapHabitErr("get", id, err)
	}
	return h, nil
}

func (s *Store) ListHabits() ([]models.Habit, error) {
	rows, err := s.db.Query(`
		SELECT h.id, h.name, h.frequency, h.creation_date, c.completion_date
		FROM habits h
		LEFT JOIN completions c ON c.habit_id = h.id
		ORDER BY h.id, c.id`)
	if err != nil {
		return nil, storage.WrapHabitErr("list", 0, err)
	}
	defer rows.Close()

	var habits []models.Habit
	for rows.Next() {
		var h models.Habit
		var frequency, createdAt string
		var completion sql.NullString
		if err := rows.Scan(&h.ID, &h.Name, &frequency, &createdAt, &completion); err != nil {
			return nil, storage.WrapHabitErr("list", 0, err)
		}

		if n := len(habits); n == 0 || habits[n-1].ID != h.ID {
			if err := decodeHabit(&h, frequency, createdAt); err != nil {
				return nil, storage.WrapHabitErr("list", 0, err)
			}
			habits = append(habits, h)
		}
		if completion.Valid {
			t, err := utils.ParseTimestamp(completion.String)
			if err != nil {
				return nil, storage.WrapHabitErr("list", 0, err)
			}
			last := &habits[len(habits)-1]
			last.Completions = append(last.Completions, t)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, storage.WrapHabitErr("list", 0, err)
	}
	return habits, nil
}

func (s *Store) DeleteHabit(id int64) error {
	tx, err := s.db.Begin()
	if err != nil {
		return storage.WrapHabitErr("delete", id, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM completions WHERE habit_id = $1", id); err != nil {
		return storage.WrapHabitErr("delete", id, err)
	}
	if _, err := tx.Exec("DELETE FROM habits WHERE id = $1", id); err != nil {
		return storage.WrapHabitErr("delete", id, err)
	}
	return storage.WrapHabitErr("delete", id, tx.Commit())
}

func (s *Store) RecordCompletion(habitID int64, at time.Time) error {
	_, err := s.db.Exec(`
		INSERT INTO completions (habit_id, completion_date) VALUES ($1, $2)`,
		habitID, utils.FormatTimestamp(at))
	return storage.WrapCompletionErr("record", habitID, err)
}

func decodeHabit(h *models.Habit, frequency, createdAt string) error {
	var err error
	if h.Frequency, err = models.ParseFrequency(frequency); err != nil {
		return fmt.Errorf("habit %d: %w", h.ID, err)
	}
	if h.CreatedAt, err = utils.ParseTimestamp(createdAt); err != nil {
		return fmt.Errorf("failed to parse creation_date for habit %d: %w", h.ID, err)
	}
	return nil
}
