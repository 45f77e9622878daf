package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr     string
	DBPath   string
	LogLevel string

	// Optional LLM grader. Disabled when GraderEnabled is false or the
	// API key is empty.
	GraderEnabled    bool
	OpenAIAPIKey     string
	GraderModel      string
	GraderTimeoutSec int

	// Background scan tagging mastered cards.
	ArchiveScanIntervalMin int
	ArchiveMinRepetitions  int
	ArchiveWorkerCount     int
	ArchiveQueueSize       int

	// Default page size for the due-card queue.
	DueLimitDefault int
}

// Load reads configuration from a .env file (if present) and environment
// variables, applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:                   envOr("ADDR", ":8080"),
		DBPath:                 envOr("DB_PATH", "file:studentsai.db"),
		LogLevel:               envOr("LOG_LEVEL", "INFO"),
		GraderEnabled:          envBoolOr("GRADER_ENABLED", true),
		OpenAIAPIKey:           envOr("OPENAI_API_KEY", ""),
		GraderModel:            envOr("GRADER_MODEL", "gpt-4o-mini"),
		GraderTimeoutSec:       envIntOr("GRADER_TIMEOUT_SECONDS", 10),
		ArchiveScanIntervalMin: envIntOr("ARCHIVE_SCAN_INTERVAL_MINUTES", 60),
		ArchiveMinRepetitions:  envIntOr("ARCHIVE_MIN_REPETITIONS", 5),
		ArchiveWorkerCount:     envIntOr("ARCHIVE_WORKER_COUNT", 1),
		ArchiveQueueSize:       envIntOr("ARCHIVE_QUEUE_SIZE", 16),
		DueLimitDefault:        envIntOr("DUE_LIMIT_DEFAULT", 20),
	}
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var problems []string

	if c.Addr == "" {
		problems = append(problems, "ADDR cannot be empty")
	}
	if c.DBPath == "" {
		problems = append(problems, "DB_PATH cannot be empty")
	}
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "WARNING", "ERROR":
	default:
		problems = append(problems, fmt.Sprintf("LOG_LEVEL %q is not a valid level", c.LogLevel))
	}
	if c.GraderTimeoutSec <= 0 {
		problems = append(problems, "GRADER_TIMEOUT_SECONDS must be positive")
	}
	if c.ArchiveScanIntervalMin < 0 {
		problems = append(problems, "ARCHIVE_SCAN_INTERVAL_MINUTES cannot be negative")
	}
	if c.ArchiveMinRepetitions < 1 {
		problems = append(problems, "ARCHIVE_MIN_REPETITIONS must be at least 1")
	}
	if c.ArchiveWorkerCount < 1 {
		problems = append(problems, "ARCHIVE_WORKER_COUNT must be at least 1")
	}
	if c.ArchiveQueueSize < 1 {
		problems = append(problems, "ARCHIVE_QUEUE_SIZE must be at least 1")
	}
	if c.DueLimitDefault < 1 {
		problems = append(problems, "DUE_LIMIT_DEFAULT must be at least 1")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}

func envBoolOr(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		log.Printf("invalid value for %s=%q, using default %t", key, v, def)
	}
	return def
}
