package dto

// BackupInfoResponse describes the stored snapshot without touching it.
// Exists is false both when no snapshot was ever written and when the
// stored one cannot be parsed.
type BackupInfoResponse struct {
	Exists     bool    `json:"exists"`
	LastBackup *string `json:"lastBackup,omitempty"`
}

// BackupStatusResponse acknowledges a freshly written snapshot.
type BackupStatusResponse struct {
	LastBackup string `json:"lastBackup"`
	// Degraded is set when one or more collections could not be read
	// and were written into the snapshot empty.
	Degraded bool `json:"degraded,omitempty"`
}

// RestoreResponse reports whether stored data was replaced. Restored is
// false when there was no usable snapshot to restore from.
type RestoreResponse struct {
	Restored bool   `json:"restored"`
	Message  string `json:"message,omitempty"`
}

// BackupCompletenessResponse lists the top-level fields the stored
// snapshot is missing relative to the current export layout.
type BackupCompletenessResponse struct {
	Exists        bool     `json:"exists"`
	Complete      bool     `json:"complete"`
	MissingFields []string `json:"missingFields"`
}
