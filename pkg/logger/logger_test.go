package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/Gthulhu/topology/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLoggerWithWriter(t *testing.T) {
	defer func() {
		zerolog.DefaultContextLogger = nil
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	}()

	var buf bytes.Buffer
	InitLoggerWithWriter(config.LoggingConfig{Level: "warn"}, &buf)

	Logger(context.Background()).Info().Msg("dropped")
	Logger(context.Background()).Warn().Str("stage", "render").Msg("kept")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, "render", entry["stage"])
	assert.Equal(t, "warn", entry["level"])
}

func TestLoggerFromContext(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf).With().Str("req_id", "abc").Logger()
	ctx := base.WithContext(context.Background())

	Logger(ctx).Info().Msg("hello")
	assert.Contains(t, buf.String(), `"req_id":"abc"`)
}
