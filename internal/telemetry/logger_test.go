package telemetry

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/LinusU/go-xorshift128plus/config"
	"github.com/stretchr/testify/require"
)

// TestNewLogger_JSON verifies that json format emits one structured event per line.
func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(config.LogsCfg{Level: "info", Format: config.LogsFormatJSON}, &buf)
	require.NoError(t, err)

	logger.Info().Str("seed", "u32").Msg("seeded")

	var event map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &event))
	require.Equal(t, "info", event["level"])
	require.Equal(t, "seeded", event["message"])
	require.Equal(t, "u32", event["seed"])
}

// TestNewLogger_LevelFilter verifies that events below the configured level are dropped.
func TestNewLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(config.LogsCfg{Level: "WARN", Format: config.LogsFormatJSON}, &buf)
	require.NoError(t, err)

	logger.Info().Msg("hidden")
	require.Zero(t, buf.Len())

	logger.Warn().Msg("shown")
	require.Contains(t, buf.String(), "shown")
}

// TestNewLogger_Console verifies the human readable writer and its level labels.
func TestNewLogger_Console(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(config.LogsCfg{Format: config.LogsFormatConsole}, &buf)
	require.NoError(t, err)

	logger.Info().Msg("ready")
	require.Contains(t, buf.String(), "INF")
	require.Contains(t, buf.String(), "ready")
}

// TestNewLogger_Errors verifies that unknown levels and formats are rejected.
func TestNewLogger_Errors(t *testing.T) {
	_, err := NewLogger(config.LogsCfg{Level: "loud"}, &bytes.Buffer{})
	require.Error(t, err)

	_, err = NewLogger(config.LogsCfg{Format: "xml"}, &bytes.Buffer{})
	require.Error(t, err)
}

// TestConsoleFormatLevel_NoColor verifies plain labels when colors are disabled.
func TestConsoleFormatLevel_NoColor(t *testing.T) {
	f := consoleFormatLevel(true)
	require.Equal(t, "DBG", f("debug"))
	require.Equal(t, "ERR", f("error"))
	require.Equal(t, "???", f(42))
}
