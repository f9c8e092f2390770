package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration options for the challenge tracker
type Config struct {
	Storage     StorageConfig     `yaml:"storage"`
	Validation  ValidationConfig  `yaml:"validation"`
	Display     DisplayConfig     `yaml:"display"`
	Export      ExportConfig      `yaml:"export"`
	Application ApplicationConfig `yaml:"application"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// StorageConfig holds persistence-related configuration
type StorageConfig struct {
	Dir            string        `yaml:"dir" env:"CT_DB_DIR"`
	Filename       string        `yaml:"filename" env:"CT_DB_FILENAME"`
	Key            string        `yaml:"key" env:"CT_STORAGE_KEY"`
	QueryTimeout   time.Duration `yaml:"query_timeout" env:"CT_DB_QUERY_TIMEOUT"`
	WriteTimeout   time.Duration `yaml:"write_timeout" env:"CT_DB_WRITE_TIMEOUT"`
	DirPermissions uint32        `yaml:"dir_permissions" env:"CT_DB_DIR_PERMISSIONS"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	ActivityNameMinLength int `yaml:"activity_name_min_length" env:"CT_VALIDATION_NAME_MIN"`
	ActivityNameMaxLength int `yaml:"activity_name_max_length" env:"CT_VALIDATION_NAME_MAX"`
}

// DisplayConfig holds terminal rendering configuration
type DisplayConfig struct {
	Colors        bool   `yaml:"colors" env:"CT_DISPLAY_COLORS"`
	CompletedMark string `yaml:"completed_mark" env:"CT_DISPLAY_COMPLETED_MARK"`
	CellWidth     int    `yaml:"cell_width" env:"CT_DISPLAY_CELL_WIDTH"`
}

// ExportConfig holds CSV export configuration
type ExportConfig struct {
	Dir string `yaml:"dir" env:"CT_EXPORT_DIR"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Timeout time.Duration `yaml:"timeout" env:"CT_APP_TIMEOUT"`
	Verbose bool          `yaml:"verbose" env:"CT_APP_VERBOSE"`
}

// LoggingConfig holds logger configuration
type LoggingConfig struct {
	Level  string `yaml:"level" env:"CT_LOG_LEVEL"`
	Format string `yaml:"format" env:"CT_LOG_FORMAT"`
}

// DefaultStorageKey is the fixed key the tracker snapshot is stored under
const DefaultStorageKey = "challenge_tracker_data"

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDir := filepath.Join(homeDir, ".ct")

	return &Config{
		Storage: StorageConfig{
			Dir:            defaultDir,
			Filename:       "ct.db",
			Key:            DefaultStorageKey,
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0755,
		},
		Validation: ValidationConfig{
			ActivityNameMinLength: 1,
			ActivityNameMaxLength: 100,
		},
		Display: DisplayConfig{
			Colors:        true,
			CompletedMark: "✓",
			CellWidth:     4,
		},
		Export: ExportConfig{
			Dir: ".",
		},
		Application: ApplicationConfig{
			Timeout: 60 * time.Second,
			Verbose: false,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// GetDatabasePath returns the full path to the database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Storage.Dir, c.Storage.Filename)
}

// GetQueryTimeout returns the database query timeout
func (c *Config) GetQueryTimeout() time.Duration {
	return c.Storage.QueryTimeout
}

// GetWriteTimeout returns the database write timeout
func (c *Config) GetWriteTimeout() time.Duration {
	return c.Storage.WriteTimeout
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Storage configuration
	if dir := os.Getenv("CT_DB_DIR"); dir != "" {
		c.Storage.Dir = dir
	}
	if filename := os.Getenv("CT_DB_FILENAME"); filename != "" {
		c.Storage.Filename = filename
	}
	if key := os.Getenv("CT_STORAGE_KEY"); key != "" {
		c.Storage.Key = key
	}
	if timeout := os.Getenv("CT_DB_QUERY_TIMEOUT"); timeout != "" {
		c.Storage.QueryTimeout = ParseDurationWithFallback(timeout, c.Storage.QueryTimeout)
	}
	if timeout := os.Getenv("CT_DB_WRITE_TIMEOUT"); timeout != "" {
		c.Storage.WriteTimeout = ParseDurationWithFallback(timeout, c.Storage.WriteTimeout)
	}
	if perms := os.Getenv("CT_DB_DIR_PERMISSIONS"); perms != "" {
		c.Storage.DirPermissions = ParseUint32WithFallback(perms, 8, c.Storage.DirPermissions)
	}

	// Validation configuration
	if minLen := os.Getenv("CT_VALIDATION_NAME_MIN"); minLen != "" {
		c.Validation.ActivityNameMinLength = ParseIntWithFallback(minLen, c.Validation.ActivityNameMinLength)
	}
	if maxLen := os.Getenv("CT_VALIDATION_NAME_MAX"); maxLen != "" {
		c.Validation.ActivityNameMaxLength = ParseIntWithFallback(maxLen, c.Validation.ActivityNameMaxLength)
	}

	// Display configuration
	if colors := os.Getenv("CT_DISPLAY_COLORS"); colors != "" {
		c.Display.Colors = ParseBoolWithFallback(colors, c.Display.Colors)
	}
	if _, noColor := os.LookupEnv("NO_COLOR"); noColor {
		c.Display.Colors = false
	}
	if mark := os.Getenv("CT_DISPLAY_COMPLETED_MARK"); mark != "" {
		c.Display.CompletedMark = mark
	}
	if width := os.Getenv("CT_DISPLAY_CELL_WIDTH"); width != "" {
		c.Display.CellWidth = ParseIntWithFallback(width, c.Display.CellWidth)
	}

	// Export configuration
	if dir := os.Getenv("CT_EXPORT_DIR"); dir != "" {
		c.Export.Dir = dir
	}

	// Application configuration
	if timeout := os.Getenv("CT_APP_TIMEOUT"); timeout != "" {
		c.Application.Timeout = ParseDurationWithFallback(timeout, c.Application.Timeout)
	}
	if verbose := os.Getenv("CT_APP_VERBOSE"); verbose != "" {
		c.Application.Verbose = ParseBoolWithFallback(verbose, c.Application.Verbose)
	}

	// Logging configuration
	if level := os.Getenv("CT_LOG_LEVEL"); level != "" {
		c.Logging.Level = strings.ToLower(level)
	}
	if format := os.Getenv("CT_LOG_FORMAT"); format != "" {
		c.Logging.Format = strings.ToLower(format)
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Storage.Dir == "" {
		return &ConfigError{Field: "storage.dir", Message: "storage directory cannot be empty"}
	}
	if c.Storage.Filename == "" {
		return &ConfigError{Field: "storage.filename", Message: "storage filename cannot be empty"}
	}
	if c.Storage.Key == "" {
		return &ConfigError{Field: "storage.key", Message: "storage key cannot be empty"}
	}
	if c.Storage.QueryTimeout <= 0 {
		return &ConfigError{Field: "storage.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Storage.WriteTimeout <= 0 {
		return &ConfigError{Field: "storage.write_timeout", Message: "write timeout must be positive"}
	}

	if c.Validation.ActivityNameMinLength < 1 {
		return &ConfigError{Field: "validation.activity_name_min_length", Message: "activity name minimum length must be at least 1"}
	}
	if c.Validation.ActivityNameMaxLength < c.Validation.ActivityNameMinLength {
		return &ConfigError{Field: "validation.activity_name_max_length", Message: "activity name maximum length must be greater than minimum length"}
	}

	if c.Display.CompletedMark == "" {
		return &ConfigError{Field: "display.completed_mark", Message: "completed mark cannot be empty"}
	}
	if c.Display.CellWidth < 2 {
		return &ConfigError{Field: "display.cell_width", Message: "cell width must be at least 2"}
	}

	if c.Export.Dir == "" {
		return &ConfigError{Field: "export.dir", Message: "export directory cannot be empty"}
	}

	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return &ConfigError{Field: "logging.level", Message: "log level must be one of debug, info, warn, error"}
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return &ConfigError{Field: "logging.format", Message: "log format must be console or json"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}

// ParseDurationWithFallback parses a duration string with a fallback value
func ParseDurationWithFallback(s string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return fallback
}

// ParseIntWithFallback parses an integer string with a fallback value
func ParseIntWithFallback(s string, fallback int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return fallback
}

// ParseBoolWithFallback parses a boolean string with a fallback value
func ParseBoolWithFallback(s string, fallback bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return fallback
}

// ParseUint32WithFallback parses a uint32 string with a fallback value
func ParseUint32WithFallback(s string, base int, fallback uint32) uint32 {
	if u, err := strconv.ParseUint(s, base, 32); err == nil {
		return uint32(u)
	}
	return fallback
}
