package model

// Flat store keys with fixed meanings. BackupKey is reserved for the
// snapshot itself and is never treated as a user preference; the others
// are the ancillary preferences folded into backups as localStorageData.
const (
	BackupKey      = "hirely_backup_data"
	ThemeKey       = "app_theme"
	AccentColorKey = "accent_color"

	// CandidateQuestionsPrefix is the legacy per-candidate key family
	// from before question lists moved onto the candidate record.
	CandidateQuestionsPrefix = "candidate_questions_"
)

// FlatEntry is one row of the schemaless key/value side store. Values
// are opaque strings; any JSON interpretation happens in the backup
// layer, not here.
type FlatEntry struct {
	Key   string `gorm:"primarykey;column:key" json:"key"`
	Value string `json:"value" gorm:"type:text"`
}

func (FlatEntry) TableName() string {
	return "flat_entries"
}
