package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	loc := time.FixedZone("WIB", 7*60*60)

	log := Component(NewWithWriter(&buf, "info", loc), "database")
	log.Error().Err(errors.New("boom")).Str("event", "db_query_failed").Msg("query failed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "database", entry["component"])
	assert.Equal(t, "db_query_failed", entry["event"])
	assert.Equal(t, "boom", entry[ErrorField])

	ts, err := time.Parse(time.RFC3339Nano, entry[TimestampField].(string))
	require.NoError(t, err)
	_, offset := ts.Zone()
	assert.Equal(t, 7*60*60, offset)
}

func TestNewWithWriter_Level(t *testing.T) {
	var buf bytes.Buffer

	log := NewWithWriter(&buf, "warn", nil)
	log.Info().Msg("hidden")
	assert.Zero(t, buf.Len())

	log.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	fallback := NewWithWriter(&buf, "nonsense", nil)
	fallback.Debug().Msg("hidden")
	fallback.Info().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
	assert.NotContains(t, buf.String(), "hidden")
}
