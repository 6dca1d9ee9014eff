// Package keyring stores the PostgreSQL connection string for a habitual
// profile in the OS keyring so it never lands in config.yaml.
package keyring

import (
	"errors"
	"fmt"
	"strings"

	"github.com/zalando/go-keyring"

	"github.com/julianstephens/habitual/internal/constants"
)

var (
	ErrNotFound           = errors.New("credentials not found in keyring")
	ErrKeyringUnavailable = errors.New("OS keyring is not available")
)

func account(profile string) string {
	profile = strings.TrimSpace(profile)
	if profile == "" {
		return constants.DefaultKeyringUser
	}
	return profile
}

// GetConnectionString returns the stored connection string for profile,
// or ErrNotFound. An empty profile selects the default entry.
func GetConnectionString(profile string) (string, error) {
	connStr, err := keyring.Get(constants.AppName, account(profile))
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrKeyringUnavailable, err)
	}
	return connStr, nil
}

func SetConnectionString(profile, connStr string) error {
	if strings.TrimSpace(connStr) == "" {
		return errors.New("connection string cannot be empty")
	}
	if err := keyring.Set(constants.AppName, account(profile), connStr); err != nil {
		return fmt.Errorf("failed to store credentials in keyring: %w", err)
	}
	return nil
}

func DeleteConnectionString(profile string) error {
	err := keyring.Delete(constants.AppName, account(profile))
	if errors.Is(err, keyring.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete credentials from keyring: %w", err)
	}
	return nil
}

// IsAvailable is a best-effort probe: a lookup that fails with anything
// other than "not found" means there is no usable keyring.
func IsAvailable() bool {
	_, err := keyring.Get(constants.AppName, "availability-probe")
	return err == nil || errors.Is(err, keyring.ErrNotFound)
}
