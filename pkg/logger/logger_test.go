package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func restoreGlobals(t *testing.T) {
	level, logger := zerolog.GlobalLevel(), log.Logger
	t.Cleanup(func() {
		zerolog.SetGlobalLevel(level)
		log.Logger = logger
	})
}

func TestInitWriter_Levels(t *testing.T) {
	restoreGlobals(t)

	for level, want := range map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"INFO":    zerolog.InfoLevel,
		"warn":    zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"verbose": zerolog.InfoLevel,
	} {
		InitWriter(&bytes.Buffer{}, level, "console")
		assert.Equal(t, want, zerolog.GlobalLevel(), level)
	}
}

func TestInitWriter_JSON(t *testing.T) {
	restoreGlobals(t)

	var buf bytes.Buffer
	InitWriter(&buf, "warn", "json")
	log.Info().Msg("hidden")
	log.Warn().Str("term", "485sp21").Msg("no department given")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "485sp21", entry["term"])
	assert.Equal(t, "no department given", entry["message"])
}
