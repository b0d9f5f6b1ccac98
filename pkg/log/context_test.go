package log_test

import (
	"context"
	"testing"

	"intent-chatbot/pkg/log"
)

func TestRequestIDContext(t *testing.T) {
	t.Run("Round trip", func(t *testing.T) {
		ctx := log.WithRequestID(context.Background(), "req-1")
		if got := log.RequestIDFromContext(ctx); got != "req-1" {
			t.Errorf("expected req-1, got %q", got)
		}
	})

	t.Run("Missing", func(t *testing.T) {
		if got := log.RequestIDFromContext(context.Background()); got != "" {
			t.Errorf("expected empty request id, got %q", got)
		}
	})

	t.Run("Logging with request id does not panic", func(t *testing.T) {
		l := log.Init(log.ZapConfig{Level: "error", Mode: "production", Encoding: "json"})
		ctx := log.WithRequestID(context.Background(), "req-2")
		l.Debugf(ctx, "dropped below level: %d", 1)
		log.NewNop().Infof(ctx, "discarded")
	})
}
