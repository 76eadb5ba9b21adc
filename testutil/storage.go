// Package testutil provides shared helpers for tests that need a real
// on-disk store. Unit tests should prefer the in-memory KV backend; these
// helpers are for exercising the SQLite backend and its migrations.
package testutil

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/globetrekker/globetrekker/internal/storage"
)

// NewSQLiteKV opens a migrated SQLite store in a per-test temp directory.
// The database file and directory are removed automatically when the test
// (and all its subtests) finish.
func NewSQLiteKV(t *testing.T) *storage.SQLite {
	t.Helper()

	path := filepath.Join(t.TempDir(), "globetrekker.db")
	kv, err := storage.OpenSQLite(path)
	if err != nil {
		t.Fatalf("testutil.NewSQLiteKV: open: %v", err)
	}

	t.Cleanup(func() { kv.Close() })
	return kv
}

// NewStore wraps a fresh in-memory KV in a typed storage.Store with logging
// silenced. Most storage and state tests start here.
func NewStore(t *testing.T) *storage.Store {
	t.Helper()
	return storage.New(storage.NewMemory(), DiscardLogger())
}

// DiscardLogger returns a logger that drops everything, keeping test output
// readable while still exercising logging call sites.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
