package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitJSON(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{LogLevel: zerolog.InfoLevel, Type: JSONLogger, Out: &buf})

	Contract.Debug().Msg("hidden")
	Contract.Info().Str("code", "NotAuthorized").Msg("call rejected")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "contract", entry["component"])
	assert.Equal(t, "NotAuthorized", entry["code"])
	assert.Equal(t, "call rejected", entry["message"])
}

func TestInitConsole(t *testing.T) {
	var buf bytes.Buffer
	Init(Options{LogLevel: zerolog.DebugLevel, Type: ConsoleLogger, Out: &buf})

	Host.Debug().Msg("executing")
	assert.Contains(t, buf.String(), `message: "executing"`)
	assert.Contains(t, buf.String(), "| DEBUG |")
}

func TestParse(t *testing.T) {
	lvl, err := ParseLogLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, lvl)

	typ, err := ParseLoggerType("JSON")
	require.NoError(t, err)
	assert.Equal(t, JSONLogger, typ)

	_, err = ParseLoggerType("xml")
	assert.Error(t, err)
}
