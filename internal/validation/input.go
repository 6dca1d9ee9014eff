package validation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/julianstephens/habitual/internal/constants"
	"github.com/julianstephens/habitual/internal/models"
)

var (
	ErrNameLength       = fmt.Errorf("habit name must be between %d and %d characters", constants.MinHabitNameLen, constants.MaxHabitNameLen)
	ErrInvalidFrequency = errors.New("invalid frequency, expected 'daily' or 'weekly'")
	ErrInvalidID        = errors.New("habit id must be a whole number")
)

// ValidateName checks the name length in characters, not bytes.
func ValidateName(name string) error {
	n := utf8.RuneCountInString(name)
	if n < constants.MinHabitNameLen || n > constants.MaxHabitNameLen {
		return ErrNameLength
	}
	return nil
}

// ParseFrequency accepts user input in any case and surrounding whitespace.
func ParseFrequency(input string) (models.Frequency, error) {
	f, err := models.ParseFrequency(strings.ToLower(strings.TrimSpace(input)))
	if err != nil {
		return "", ErrInvalidFrequency
	}
	return f, nil
}

func ParseID(input string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(input), 10, 64)
	if err != nil {
		return 0, ErrInvalidID
	}
	return id, nil
}
