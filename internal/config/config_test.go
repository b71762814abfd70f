package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// region Load tests

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"ENV", "PORT", "AI_MODE", "MOCK_DELAY", "INSTANT_DELAY", "REPORT_STORE", "CORS_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ModeMock, cfg.AIMode)
	assert.Equal(t, time.Second, cfg.MockDelay)
	assert.Equal(t, 800*time.Millisecond, cfg.InstantDelay)
	assert.Equal(t, StoreMemory, cfg.ReportStore)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("ENV", "prod")
	t.Setenv("AI_MODE", "OpenAI")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("MOCK_DELAY", "50ms")
	t.Setenv("CORS_ORIGINS", "http://a.test, ,http://b.test")

	cfg := Load()

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, ModeOpenAI, cfg.AIMode)
	assert.Equal(t, "sk-test", cfg.APIKey())
	assert.Equal(t, cfg.OpenAIModel, cfg.Model())
	assert.Equal(t, 50*time.Millisecond, cfg.MockDelay)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
}

func TestLoad_InvalidDurationFallsBack(t *testing.T) {
	t.Setenv("SESSION_TTL", "forever")

	cfg := Load()

	assert.Equal(t, 2*time.Hour, cfg.SessionTTL)
}

// endregion

func TestAPIKey_MockHasNone(t *testing.T) {
	cfg := &Config{AIMode: ModeMock, OpenAIAPIKey: "sk", GeminiAPIKey: "g"}

	assert.Empty(t, cfg.APIKey())
	assert.Equal(t, ModeMock, cfg.Model())
}
