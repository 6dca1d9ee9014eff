package constants

const (
	AppName            = "habitual"
	DefaultKeyringUser = "database-connection"
	DefaultConfigDir   = "~/.config/habitual"
	DefaultConfigPath  = "~/.config/habitual/habitual.db"
	DefaultConfigFile  = "~/.config/habitual/config.yaml"
	Version            = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// Habit name bounds, inclusive
	MinHabitNameLen = 3
	MaxHabitNameLen = 20

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "habitual-"
	BackupFileSuffix = ".db"

	// LockFileName marks a running interactive session next to the database
	LockFileName = "habitual.lock"

	// Log constants
	LogDirName   = "logs"
	LogFileName  = "habitual.log"
	LogMaxSizeMB = 10
	LogMaxAgeDay = 28

	// Environment overrides
	EnvDatabase   = "HABITUAL_DB"
	EnvDebug      = "HABITUAL_DEBUG"
	EnvBackupMax  = "HABITUAL_BACKUP_MAX"
	EnvConnection = "HABITUAL_DB_CONNECTION"
)
