package model

import "time"

// SettingsID is the fixed primary key of the single settings row.
const SettingsID = "app_settings"

// AppSettings holds integration preferences. It is a singleton record:
// every read and write targets the row with id SettingsID.
type AppSettings struct {
	ID              string    `gorm:"primarykey" json:"-"`
	GeminiAPIKey    string    `json:"geminiApiKey,omitempty"`
	GeminiConnected bool      `json:"geminiConnected"`
	UpdatedAt       time.Time `json:"-"`
}

// DefaultSettings is the state reported before anything was ever saved.
func DefaultSettings() AppSettings {
	return AppSettings{ID: SettingsID}
}

// SettingsPatch is a partial settings update. Nil fields keep the stored
// value, so callers can flip one flag without knowing the rest.
type SettingsPatch struct {
	GeminiAPIKey    *string `json:"geminiApiKey"`
	GeminiConnected *bool   `json:"geminiConnected"`
}

// Apply merges the patch into s, field by field.
func (p SettingsPatch) Apply(s *AppSettings) {
	if p.GeminiAPIKey != nil {
		s.GeminiAPIKey = *p.GeminiAPIKey
	}
	if p.GeminiConnected != nil {
		s.GeminiConnected = *p.GeminiConnected
	}
}
