package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	GitHub   GitHubConfig
	Gemini   GeminiConfig
	Report   ReportConfig
	History  HistoryConfig
}

type ServerConfig struct {
	Port         string
	Mode         string
	ReadTimeout  int
	WriteTimeout int
}

type DatabaseConfig struct {
	Path string
}

type GitHubConfig struct {
	Token                string
	APIURL               string
	PerPage              int
	MaxCommits           int
	HTTPTimeout          int
	PropagateFetchErrors bool
}

type GeminiConfig struct {
	APIKey      string
	Model       string
	APIURL      string
	HTTPTimeout int
}

type ReportConfig struct {
	MaxPRDetails     int
	MaxCommitDetails int
}

type HistoryConfig struct {
	RetentionDays      int
	PruneIntervalHours int
}

// Load loads configuration from .env file and environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			Mode:         getEnv("GIN_MODE", "release"),
			ReadTimeout:  getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("WRITE_TIMEOUT", 120),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./standup.db"),
		},
		GitHub: GitHubConfig{
			Token:                getEnv("GITHUB_TOKEN", ""),
			APIURL:               getEnv("GITHUB_API_URL", "https://api.github.com"),
			PerPage:              getEnvAsInt("GITHUB_PER_PAGE", 100),
			MaxCommits:           getEnvAsInt("GITHUB_MAX_COMMITS", 500),
			HTTPTimeout:          getEnvAsInt("HTTP_TIMEOUT_SECONDS", 30),
			PropagateFetchErrors: getEnvAsBool("GITHUB_PROPAGATE_FETCH_ERRORS", false),
		},
		Gemini: GeminiConfig{
			APIKey:      getEnv("GEMINI_API_KEY", ""),
			Model:       getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
			APIURL:      getEnv("GEMINI_API_URL", "https://generativelanguage.googleapis.com"),
			HTTPTimeout: getEnvAsInt("HTTP_TIMEOUT_SECONDS", 30),
		},
		Report: ReportConfig{
			MaxPRDetails:     getEnvAsInt("REPORT_MAX_PR_DETAILS", 10),
			MaxCommitDetails: getEnvAsInt("REPORT_MAX_COMMIT_DETAILS", 20),
		},
		History: HistoryConfig{
			RetentionDays:      getEnvAsInt("HISTORY_RETENTION_DAYS", 90),
			PruneIntervalHours: getEnvAsInt("HISTORY_PRUNE_INTERVAL_HOURS", 24),
		},
	}

	return cfg, nil
}

// GitHubConfigured reports whether a GitHub credential is present
func (c *Config) GitHubConfigured() bool {
	return c.GitHub.Token != ""
}

// GeminiConfigured reports whether a Gemini credential is present
func (c *Config) GeminiConfigured() bool {
	return c.Gemini.APIKey != ""
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBool gets an environment variable as boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
