package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"":      zerolog.InfoLevel,
		"debug": zerolog.DebugLevel,
		"WARN":  zerolog.WarnLevel,
		"error": zerolog.ErrorLevel,
	}
	for name, expected := range cases {
		level, err := ParseLevel(name)
		require.NoError(t, err, name)
		require.Equal(t, expected, level, name)
	}

	_, err := ParseLevel("loud")
	require.Error(t, err)
}

func TestJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "warn", Format: FormatJSON, Output: &buf})
	require.NoError(t, err)

	logger.Info().Msg("dropped")
	require.Zero(t, buf.Len(), "info is below warn")

	logger.Warn().Str("circuit", "multiplier2").Msg("kept")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "warn", entry["level"])
	require.Equal(t, "kept", entry["message"])
	require.Equal(t, "multiplier2", entry["circuit"])
}

func TestConsoleLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "debug", Output: &buf})
	require.NoError(t, err)

	logger.Debug().Msg("setup done")
	require.Contains(t, buf.String(), "setup done")

	_, err = New(Config{Level: "verbose"})
	require.Error(t, err)
}
