package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"github.com/globetrekker/globetrekker/internal/domain"
)

// Fixed record keys. Each key holds one JSON document; the app prefix keeps
// the records recognizable in a raw database dump.
const (
	keyTrips         = "globetrekker_trips"
	keyPackingLists  = "globetrekker_packing_lists"
	keyPreferences   = "globetrekker_preferences"
	keySchemaVersion = "globetrekker_schema_version"
)

// schemaVersion tags the persisted layout so a future format change has a
// migration hook. Bump it together with a read-side upgrade path.
const schemaVersion = 1

// Store layers the trip planner's typed records over a KV backend.
//
// Read policy is fail-soft: an absent key, a backend read error, or a corrupt
// JSON record all degrade to the caller's default value and are logged, never
// surfaced as errors. Write failures are returned wrapping domain.ErrStorage
// so callers decide how to react.
//
// Every mutation rewrites a whole record (read, modify, write back), so mu
// serializes mutators: two interleaved read-modify-write cycles on the same
// record would silently drop one of the writes. Reads take no lock — each KV
// Set is atomic per key, so a concurrent read sees either the old or the new
// record, never a torn one.
type Store struct {
	kv  KV
	log *slog.Logger

	mu sync.Mutex // held for the full read-modify-write of any mutation
}

// New wraps kv with the typed record helpers. The schema version key is
// written on first use; a failure there is logged and ignored, matching the
// fail-soft policy for bookkeeping records.
func New(kv KV, log *slog.Logger) *Store {
	if log == nil {
		log = slog.Default()
	}
	s := &Store{kv: kv, log: log}
	ctx := context.Background()
	if v := getJSON(s, ctx, keySchemaVersion, 0); v == 0 {
		if err := s.setJSON(ctx, keySchemaVersion, schemaVersion); err != nil {
			log.Warn("could not write schema version", "error", err)
		}
	}
	return s
}

// getJSON reads and unmarshals the record under key, degrading to def on any
// failure. Generic so each record type gets a typed read without casts.
func getJSON[T any](s *Store, ctx context.Context, key string, def T) T {
	raw, err := s.kv.Get(ctx, key)
	if err != nil {
		s.log.Warn("storage read failed, using default", "key", key, "error", err)
		return def
	}
	if raw == nil {
		return def
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		s.log.Warn("corrupt storage record, using default", "key", key, "error", err)
		return def
	}
	return v
}

// setJSON marshals v and writes it under key.
func (s *Store) setJSON(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: marshal %s: %v", domain.ErrStorage, key, err)
	}
	if err := s.kv.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("%w: write %s: %v", domain.ErrStorage, key, err)
	}
	return nil
}
