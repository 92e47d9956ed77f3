package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/htmxkit/pkg/logger"
)

type ctxKey struct{}

func requestID(ctx context.Context) (slog.Attr, bool) {
	if v, ok := ctx.Value(ctxKey{}).(string); ok {
		return slog.String("request_id", v), true
	}
	return slog.Attr{}, false
}

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json with extractors", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithExtractors(requestID, nil))

		ctx := context.WithValue(context.Background(), ctxKey{}, "req-1")
		log.InfoContext(ctx, "hello", "n", 1)

		entry := decode(t, &buf)
		assert.Equal(t, "hello", entry["msg"])
		assert.Equal(t, "req-1", entry["request_id"])
		assert.InDelta(t, 1, entry["n"], 0)
	})

	t.Run("extractor miss adds nothing", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithExtractors(requestID))
		log.InfoContext(context.Background(), "hello")

		assert.NotContains(t, decode(t, &buf), "request_id")
	})

	t.Run("empty group key is inlined", func(t *testing.T) {
		t.Parallel()

		multi := func(context.Context) (slog.Attr, bool) {
			return slog.Attr{Value: slog.GroupValue(
				slog.String("htmx_target", "rows"),
				slog.Bool("htmx_boosted", true),
			)}, true
		}

		var buf bytes.Buffer
		logger.New(logger.WithOutput(&buf), logger.WithExtractors(multi)).Info("swap")

		entry := decode(t, &buf)
		assert.Equal(t, "rows", entry["htmx_target"])
		assert.Equal(t, true, entry["htmx_boosted"])
	})

	t.Run("level and text format", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithText(), logger.WithLevel(slog.LevelWarn))
		log.Info("dropped")
		log.Warn("kept", "k", "v")

		out := buf.String()
		assert.NotContains(t, out, "dropped")
		assert.Contains(t, out, "msg=kept")
		assert.Contains(t, out, "k=v")
	})

	t.Run("extractors survive With", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf), logger.WithExtractors(requestID)).
			With("component", "web").WithGroup("g")

		ctx := context.WithValue(context.Background(), ctxKey{}, "req-2")
		log.InfoContext(ctx, "hello")

		entry := decode(t, &buf)
		assert.Equal(t, "web", entry["component"])
		assert.Contains(t, buf.String(), "req-2")
	})
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	l, err := logger.ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, l)

	l, err = logger.ParseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, l)

	_, err = logger.ParseLevel("loud")
	require.Error(t, err)
}

func TestFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("text at debug without sentry", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		log, err := logger.FromConfig(logger.Config{Level: "debug", Format: "text"}, logger.WithOutput(&buf))
		require.NoError(t, err)

		log.Debug("visible")
		assert.True(t, strings.Contains(buf.String(), "msg=visible"))
	})

	t.Run("invalid level", func(t *testing.T) {
		t.Parallel()

		_, err := logger.FromConfig(logger.Config{Level: "loud"})
		require.Error(t, err)
	})

	t.Run("invalid format", func(t *testing.T) {
		t.Parallel()

		_, err := logger.FromConfig(logger.Config{Format: "xml"})
		require.Error(t, err)
	})
}

func TestNewNope(t *testing.T) {
	t.Parallel()

	log := logger.NewNope()
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
}
