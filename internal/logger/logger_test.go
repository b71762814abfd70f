package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_ProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "production", "")

	log.Debug("hidden")
	log.Info("search finished", "query", "HackMIT 2025")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "search finished", entry["msg"])
	assert.Equal(t, "HackMIT 2025", entry["query"])
}

func TestNew_DevelopmentWritesTextAtDebug(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "development", "")

	log.Debug("sponsor analyzed", "sponsor", "Figma")

	assert.Contains(t, buf.String(), "sponsor=Figma")
	assert.Contains(t, buf.String(), "level=DEBUG")
}

func TestNew_LevelOverride(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "development", "warn")

	log.Info("dropped")
	assert.Empty(t, buf.String())

	log.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}
