package storage

import (
	"time"

	"github.com/julianstephens/habitual/internal/models"
)

//go:generate mockgen -destination=mock/provider.go -package=mock github.com/julianstephens/habitual/internal/storage Provider

// Provider persists habits and their completions.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Habits
	CreateHabit(name string, frequency models.Frequency) (models.Habit, error)
	GetHabit(id int64) (models.Habit, error)
	ListHabits() ([]models.Habit, error)
	// DeleteHabit removes the habit and all of its completions. Deleting an
	// id that does not exist is not an error.
	DeleteHabit(id int64) error

	// Completions
	RecordCompletion(habitID int64, at time.Time) error

	// Utils
	GetConfigPath() string
}
