package domain

// Preferences holds per-installation user settings.
// Persisted as a single record; unknown fields survive round-trips only if
// added here, so keep this in sync with the settings UI.
type Preferences struct {
	Theme           string `json:"theme"`
	DefaultCurrency string `json:"defaultCurrency"`
	DefaultTimeZone string `json:"defaultTimeZone"`
	Notifications   bool   `json:"notifications"`
}

// PreferencesPatch is a partial update for Preferences.
// Nil fields are left unchanged.
type PreferencesPatch struct {
	Theme           *string `json:"theme,omitempty"`
	DefaultCurrency *string `json:"defaultCurrency,omitempty"`
	DefaultTimeZone *string `json:"defaultTimeZone,omitempty"`
	Notifications   *bool   `json:"notifications,omitempty"`
}

// Apply returns a copy of prefs with the non-nil patch fields merged in.
func (p PreferencesPatch) Apply(prefs Preferences) Preferences {
	if p.Theme != nil {
		prefs.Theme = *p.Theme
	}
	if p.DefaultCurrency != nil {
		prefs.DefaultCurrency = *p.DefaultCurrency
	}
	if p.DefaultTimeZone != nil {
		prefs.DefaultTimeZone = *p.DefaultTimeZone
	}
	if p.Notifications != nil {
		prefs.Notifications = *p.Notifications
	}
	return prefs
}
