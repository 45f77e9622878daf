package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Oleksiy-Zhukov/studentsai/internal/config"
)

func validConfig() config.Config {
	return config.Config{
		Addr:                   ":8080",
		DBPath:                 "test.db",
		LogLevel:               "INFO",
		GraderEnabled:          true,
		GraderModel:            "gpt-4o-mini",
		GraderTimeoutSec:       10,
		ArchiveScanIntervalMin: 60,
		ArchiveMinRepetitions:  5,
		ArchiveWorkerCount:     1,
		ArchiveQueueSize:       16,
		DueLimitDefault:        20,
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())
}

func TestValidate_EmptyAddr(t *testing.T) {
	cfg := validConfig()
	cfg.Addr = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ADDR cannot be empty")
}

func TestValidate_EmptyDBPath(t *testing.T) {
	cfg := validConfig()
	cfg.DBPath = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PATH cannot be empty")
}

func TestValidate_LogLevels(t *testing.T) {
	tests := []struct {
		level string
		ok    bool
	}{
		{"DEBUG", true},
		{"INFO", true},
		{"WARN", true},
		{"ERROR", true},
		{"debug", true}, // case-insensitive
		{"INVALID", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run("level "+tt.level, func(t *testing.T) {
			cfg := validConfig()
			cfg.LogLevel = tt.level

			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "LOG_LEVEL")
			}
		})
	}
}

func TestValidate_GraderTimeout(t *testing.T) {
	for _, timeout := range []int{0, -5} {
		cfg := validConfig()
		cfg.GraderTimeoutSec = timeout

		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "GRADER_TIMEOUT_SECONDS")
	}
}

func TestValidate_ArchiveSettings(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*config.Config)
		expected string
	}{
		{
			name:     "negative scan interval",
			mutate:   func(c *config.Config) { c.ArchiveScanIntervalMin = -1 },
			expected: "ARCHIVE_SCAN_INTERVAL_MINUTES",
		},
		{
			name:     "zero min repetitions",
			mutate:   func(c *config.Config) { c.ArchiveMinRepetitions = 0 },
			expected: "ARCHIVE_MIN_REPETITIONS",
		},
		{
			name:     "zero workers",
			mutate:   func(c *config.Config) { c.ArchiveWorkerCount = 0 },
			expected: "ARCHIVE_WORKER_COUNT",
		},
		{
			name:     "zero queue size",
			mutate:   func(c *config.Config) { c.ArchiveQueueSize = 0 },
			expected: "ARCHIVE_QUEUE_SIZE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.expected)
		})
	}
}

func TestValidate_MultipleErrors(t *testing.T) {
	cfg := config.Config{
		Addr:     "",
		DBPath:   "",
		LogLevel: "INVALID",
	}

	err := cfg.Validate()
	require.Error(t, err)

	errStr := err.Error()
	assert.Contains(t, errStr, "ADDR cannot be empty")
	assert.Contains(t, errStr, "DB_PATH cannot be empty")
	assert.Contains(t, errStr, "LOG_LEVEL")
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("DB_PATH", "custom.db")
	t.Setenv("GRADER_ENABLED", "false")
	t.Setenv("DUE_LIMIT_DEFAULT", "5")

	cfg := config.Load()

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "custom.db", cfg.DBPath)
	assert.False(t, cfg.GraderEnabled)
	assert.Equal(t, 5, cfg.DueLimitDefault)
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"ADDR", "DB_PATH", "LOG_LEVEL", "GRADER_ENABLED", "GRADER_MODEL",
		"GRADER_TIMEOUT_SECONDS", "ARCHIVE_SCAN_INTERVAL_MINUTES",
		"ARCHIVE_MIN_REPETITIONS", "DUE_LIMIT_DEFAULT",
	} {
		if v := os.Getenv(key); v != "" {
			t.Setenv(key, "")
			os.Unsetenv(key)
		}
	}

	cfg := config.Load()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.True(t, cfg.GraderEnabled)
	assert.Equal(t, "gpt-4o-mini", cfg.GraderModel)
	assert.Equal(t, 10, cfg.GraderTimeoutSec)
	assert.Equal(t, 20, cfg.DueLimitDefault)
	assert.NoError(t, cfg.Validate())
}
