package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContextHandler_InjectsExtractedAttrs(t *testing.T) {
	t.Parallel()

	type sendIDKey struct{}

	extractor := func(ctx context.Context) (slog.Attr, bool) {
		if id, ok := ctx.Value(sendIDKey{}).(string); ok && id != "" {
			return slog.String("send_id", id), true
		}
		return slog.Attr{}, false
	}

	var buf bytes.Buffer
	log := slog.New(newContextHandler(slog.NewJSONHandler(&buf, nil), extractor))

	ctx := context.WithValue(context.Background(), sendIDKey{}, "abc-123")
	log.InfoContext(ctx, "email sent")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	require.Equal(t, "abc-123", record["send_id"])
	require.Equal(t, "email sent", record["msg"])
}

func TestContextHandler_SkipsNilExtractors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(newContextHandler(slog.NewJSONHandler(&buf, nil), nil))

	require.NotPanics(t, func() {
		log.Info("still works")
	})
	require.Contains(t, buf.String(), "still works")
}

func TestNewWithSentry_EmptyDSNFallsBack(t *testing.T) {
	t.Parallel()

	log := NewWithSentry(SentryConfig{})

	require.NotNil(t, log)
	require.NotPanics(t, func() {
		log.Info("stdout only")
	})
}

func TestNewNope_Discards(t *testing.T) {
	t.Parallel()

	log := NewNope()

	require.NotPanics(t, func() {
		log.Error("goes nowhere")
	})
}
