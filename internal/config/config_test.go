package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, "ct.db", cfg.Storage.Filename)
	assert.Equal(t, DefaultStorageKey, cfg.Storage.Key)
	assert.Equal(t, 10*time.Second, cfg.GetQueryTimeout())
	assert.Equal(t, 5*time.Second, cfg.GetWriteTimeout())
	assert.Equal(t, "✓", cfg.Display.CompletedMark)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CT_DB_DIR", dir)
	t.Setenv("CT_DB_FILENAME", "habits.db")
	t.Setenv("CT_STORAGE_KEY", "other_key")
	t.Setenv("CT_DB_WRITE_TIMEOUT", "2s")
	t.Setenv("CT_DB_QUERY_TIMEOUT", "not-a-duration")
	t.Setenv("CT_VALIDATION_NAME_MAX", "40")
	t.Setenv("CT_DISPLAY_COLORS", "false")
	t.Setenv("CT_APP_VERBOSE", "true")
	t.Setenv("CT_LOG_LEVEL", "DEBUG")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())

	assert.Equal(t, dir, cfg.Storage.Dir)
	assert.Equal(t, "habits.db", cfg.Storage.Filename)
	assert.Equal(t, "other_key", cfg.Storage.Key)
	assert.Equal(t, 2*time.Second, cfg.Storage.WriteTimeout)
	assert.Equal(t, 10*time.Second, cfg.Storage.QueryTimeout, "unparsable values keep the default")
	assert.Equal(t, 40, cfg.Validation.ActivityNameMaxLength)
	assert.False(t, cfg.Display.Colors)
	assert.True(t, cfg.Application.Verbose)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadFromEnvironment_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	cfg := NewConfig()
	require.NoError(t, cfg.LoadFromEnvironment())
	assert.False(t, cfg.Display.Colors)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"empty dir", func(c *Config) { c.Storage.Dir = "" }, "storage.dir"},
		{"empty filename", func(c *Config) { c.Storage.Filename = "" }, "storage.filename"},
		{"empty key", func(c *Config) { c.Storage.Key = "" }, "storage.key"},
		{"zero write timeout", func(c *Config) { c.Storage.WriteTimeout = 0 }, "storage.write_timeout"},
		{"min length zero", func(c *Config) { c.Validation.ActivityNameMinLength = 0 }, "validation.activity_name_min_length"},
		{"max below min", func(c *Config) { c.Validation.ActivityNameMaxLength = 0 }, "validation.activity_name_max_length"},
		{"narrow cells", func(c *Config) { c.Display.CellWidth = 1 }, "display.cell_width"},
		{"bad level", func(c *Config) { c.Logging.Level = "chatty" }, "logging.level"},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.field, cfgErr.Field)
		})
	}
}

func TestParseWithFallback(t *testing.T) {
	assert.Equal(t, 3*time.Second, ParseDurationWithFallback("3s", time.Second))
	assert.Equal(t, time.Second, ParseDurationWithFallback("3", time.Second))
	assert.Equal(t, 7, ParseIntWithFallback("7", 1))
	assert.Equal(t, 1, ParseIntWithFallback("seven", 1))
	assert.False(t, ParseBoolWithFallback("false", true))
	assert.True(t, ParseBoolWithFallback("yes", true))
	assert.Equal(t, uint32(0700), ParseUint32WithFallback("700", 8, 0755))
	assert.Equal(t, uint32(0755), ParseUint32WithFallback("999", 8, 0755))
}
