package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/config"

	"github.com/julianstephens/habitual/internal/constants"
)

type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Logging LoggingConfig `yaml:"logging"`
	Backup  BackupConfig  `yaml:"backup"`
}

type StorageConfig struct {
	// Path is a SQLite file path or a postgres:// URL.
	Path string `yaml:"path"`
	// KeyringProfile names the keyring entry holding the Postgres
	// connection string when Path is empty or "keyring".
	KeyringProfile string `yaml:"keyring_profile"`
}

type LoggingConfig struct {
	Debug bool   `yaml:"debug"`
	Dir   string `yaml:"dir"`
}

type BackupConfig struct {
	MaxBackups int  `yaml:"max_backups"`
	Auto       bool `yaml:"auto"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Storage: StorageConfig{
			Path: constants.DefaultConfigPath,
		},
		Logging: LoggingConfig{
			Dir: filepath.Join(constants.DefaultConfigDir, constants.LogDirName),
		},
		Backup: BackupConfig{
			MaxBackups: constants.MaxBackups,
			Auto:       true,
		},
	}
}

// Load reads path (or the default config file when path is empty) over the
// built-in defaults. A missing file is not an error. A .env file next to
// the config file is loaded first so ${VAR} references in the YAML and the
// HABITUAL_* overrides can come from it.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = constants.DefaultConfigFile
	}
	path, err := ExpandPath(path)
	if err != nil {
		return nil, err
	}

	if err := loadDotEnv(filepath.Join(filepath.Dir(path), ".env")); err != nil {
		return nil, err
	}

	opts := []config.YAMLOption{
		config.Static(Default()),
		config.Expand(os.LookupEnv),
	}
	if _, err := os.Stat(path); err == nil {
		opts = append(opts, config.File(path))
	} else if explicit || !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	provider, err := config.NewYAML(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create config provider: %w", err)
	}

	var cfg Config
	if err := provider.Get(config.Root).Populate(&cfg); err != nil {
		return nil, fmt.Errorf("failed to populate config: %w", err)
	}

	cfg.overrideFromEnv()

	if err := cfg.expandPaths(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadDotEnv(path string) error {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	// godotenv.Load never overrides variables already set in the process.
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// overrideFromEnv overrides config values with environment variables if present
func (c *Config) overrideFromEnv() {
	if val := os.Getenv(constants.EnvDatabase); val != "" {
		c.Storage.Path = val
	}
	if val := os.Getenv(constants.EnvDebug); val != "" {
		if debug, err := strconv.ParseBool(val); err == nil {
			c.Logging.Debug = debug
		}
	}
	if val := os.Getenv(constants.EnvBackupMax); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			c.Backup.MaxBackups = n
		}
	}
}

func (c *Config) expandPaths() error {
	var err error
	if !IsConnString(c.Storage.Path) {
		if c.Storage.Path, err = ExpandPath(c.Storage.Path); err != nil {
			return err
		}
	}
	c.Logging.Dir, err = ExpandPath(c.Logging.Dir)
	return err
}

// ExpandPath replaces a leading "~" with the user's home directory.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// IsConnString reports whether value is a PostgreSQL URL.
func IsConnString(value string) bool {
	return strings.HasPrefix(value, "postgres://") || strings.HasPrefix(value, "postgresql://")
}
