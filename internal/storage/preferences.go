package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/globetrekker/globetrekker/internal/domain"
)

// defaultPreferences are used until the user saves their own settings.
// The time zone defaults to whatever the host process resolved as local.
func defaultPreferences() domain.Preferences {
	return domain.Preferences{
		Theme:           "light",
		DefaultCurrency: "USD",
		DefaultTimeZone: time.Local.String(),
		Notifications:   true,
	}
}

// Preferences returns the persisted user preferences, or the defaults when
// none have been saved.
func (s *Store) Preferences(ctx context.Context) domain.Preferences {
	return getJSON(s, ctx, keyPreferences, defaultPreferences())
}

// SavePreferences merges patch into the current preferences and persists the
// result. Returns the stored record.
func (s *Store) SavePreferences(ctx context.Context, patch domain.PreferencesPatch) (domain.Preferences, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefs := patch.Apply(s.Preferences(ctx))
	if err := s.setJSON(ctx, keyPreferences, prefs); err != nil {
		return domain.Preferences{}, fmt.Errorf("storage.Store.SavePreferences: %w", err)
	}
	return prefs, nil
}
