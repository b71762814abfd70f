package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// AI modes understood by ai.New.
const (
	ModeMock   = "mock"
	ModeOpenAI = "openai"
	ModeGemini = "gemini"
)

// Report store backends.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// Config holds all the configuration variables for the application
type Config struct {
	Env         string
	Port        string
	LogLevel    string
	CORSOrigins []string

	AIMode        string
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string
	GeminiAPIKey  string
	GeminiModel   string
	TavilyAPIKey  string

	// MockDelay is how long mock AI calls take; InstantDelay is the pause
	// before a featured hackathon is shown.
	MockDelay    time.Duration
	InstantDelay time.Duration
	SessionTTL   time.Duration

	ReportStore string
	DBHost      string
	DBUser      string
	DBPass      string
	DBName      string
	DBPort      string
}

// Load reads the application configuration from environment variables
// and the .env file if it exists.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, using system environment variables")
	}

	return &Config{
		Env:         getEnvOrDefault("ENV", "development"),
		Port:        getEnvOrDefault("PORT", "8080"),
		LogLevel:    getEnvOrDefault("LOG_LEVEL", ""),
		CORSOrigins: splitList(getEnvOrDefault("CORS_ORIGINS", "http://localhost:3000")),

		AIMode:        strings.ToLower(getEnvOrDefault("AI_MODE", ModeMock)),
		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL: getEnvOrDefault("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		OpenAIModel:   getEnvOrDefault("OPENAI_MODEL", "gpt-4-turbo-preview"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   getEnvOrDefault("GEMINI_MODEL", "gemini-2.5-flash"),
		TavilyAPIKey:  os.Getenv("TAVILY_API_KEY"),

		MockDelay:    getDurationOrDefault("MOCK_DELAY", time.Second),
		InstantDelay: getDurationOrDefault("INSTANT_DELAY", 800*time.Millisecond),
		SessionTTL:   getDurationOrDefault("SESSION_TTL", 2*time.Hour),

		ReportStore: strings.ToLower(getEnvOrDefault("REPORT_STORE", StoreMemory)),
		// For Docker Desktop, host.docker.internal connects to the host machine's localhost
		DBHost: getEnvOrDefault("DB_HOST", "host.docker.internal"),
		DBUser: getEnvOrDefault("DB_USER", "whattohack"),
		DBPass: getEnvOrDefault("DB_PASSWORD", "supersecretpassword"),
		DBName: getEnvOrDefault("DB_NAME", "whattohack"),
		DBPort: getEnvOrDefault("DB_PORT", "5432"),
	}
}

// IsProduction reports whether the service runs with production defaults.
func (c *Config) IsProduction() bool {
	return c.Env == "production" || c.Env == "prod"
}

// APIKey returns the credential of the selected AI backend.
func (c *Config) APIKey() string {
	switch c.AIMode {
	case ModeOpenAI:
		return c.OpenAIAPIKey
	case ModeGemini:
		return c.GeminiAPIKey
	default:
		return ""
	}
}

// Model returns the model name of the selected AI backend.
func (c *Config) Model() string {
	switch c.AIMode {
	case ModeOpenAI:
		return c.OpenAIModel
	case ModeGemini:
		return c.GeminiModel
	default:
		return ModeMock
	}
}

func getEnvOrDefault(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}
	return value
}

func getDurationOrDefault(key string, fallback time.Duration) time.Duration {
	raw := getEnvOrDefault(key, "")
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		slog.Warn("Invalid duration in environment, using default", "key", key, "value", raw, "default", fallback)
		return fallback
	}
	return d
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
