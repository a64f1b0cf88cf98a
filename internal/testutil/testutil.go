// Package testutil holds helpers shared by tests across packages.
package testutil

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/avtostrahovanie/landing/internal/estimator"
	"github.com/avtostrahovanie/landing/internal/model"
)

// RequireEnv returns an environment variable or skips the test if missing.
func RequireEnv(t testing.TB, key string) string {
	t.Helper()
	value := os.Getenv(key)
	if value == "" {
		t.Skipf("%s not set", key)
	}
	return value
}

// FlushRedis clears the current Redis database.
func FlushRedis(ctx context.Context, client *redis.Client) error {
	return client.FlushDB(ctx).Err()
}

// ProjectRoot returns the project root directory.
func ProjectRoot() (string, error) {
	_, filename, _, ok := runtime.Caller(0)
	if !ok {
		return "", fmt.Errorf("failed to resolve testutil path")
	}
	root := filepath.Clean(filepath.Join(filepath.Dir(filename), "..", ".."))
	return root, nil
}

// NewLogger returns a JSON logger writing into buf, for assertions on log output.
func NewLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// DiscardLogger returns a logger that drops everything.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ============================================================================
// Test Data Factories
// ============================================================================

// NewTestForm returns a complete calculator form priced at 40 320 ₽.
func NewTestForm(t testing.TB) estimator.Form {
	t.Helper()
	return estimator.Form{Power: "151", Age: "11", Experience: "2", Region: "moscow"}
}

// NewTestContact returns a contact request with every field filled in.
func NewTestContact(t testing.TB) model.ContactRequest {
	t.Helper()
	return model.ContactRequest{
		Name:    "Анна",
		Phone:   "+7 900 123-45-67",
		Email:   fmt.Sprintf("anna-%d@example.com", time.Now().UnixNano()),
		Message: "Хочу оформить ОСАГО",
	}
}
