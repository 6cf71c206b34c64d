package model

import (
	"bytes"
	"encoding/json"
)

// SnapshotVersion marks exports produced by the current schema. Files
// without a version are treated as the legacy layout.
const SnapshotVersion = "2.0"

// ThemeSettings mirrors the display preferences kept in the flat store
// so they travel inside backups.
type ThemeSettings struct {
	Theme       string `json:"theme"`
	AccentColor string `json:"accentColor"`
}

// PositionNameList is the wire form of positions inside a snapshot: a
// plain name array. Decoding also accepts the older object form
// [{"id":..,"name":..}] and keeps just the names.
type PositionNameList []string

func (p *PositionNameList) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err == nil {
		*p = names
		return nil
	}
	var rows []struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &rows); err != nil {
		return err
	}
	names = make([]string, 0, len(rows))
	for _, r := range rows {
		names = append(names, r.Name)
	}
	*p = names
	return nil
}

// BackupSnapshot is the full application state as written to the
// reserved flat key and to export files. Current exports carry every
// field; legacy files stop after interviewResults plus exportedAt.
type BackupSnapshot struct {
	Candidates        []Candidate                `json:"candidates"`
	QuestionTemplates []QuestionTemplate         `json:"questionTemplates"`
	Positions         PositionNameList           `json:"positions"`
	JobDescriptions   []JobDescription           `json:"jobDescriptions"`
	InterviewResults  []InterviewResult          `json:"interviewResults"`
	ThemeSettings     *ThemeSettings             `json:"themeSettings"`
	AISettings        *AppSettings               `json:"aiSettings"`
	LocalStorageData  map[string]json.RawMessage `json:"localStorageData"`
	ExportedAt        string                     `json:"exportedAt"`
	Version           string                     `json:"version"`
}

// IsLegacy reports whether the snapshot came from the old export layout,
// recognised by the absence of every post-1.x field.
func (s *BackupSnapshot) IsLegacy() bool {
	return s.Version == "" && s.ThemeSettings == nil &&
		s.AISettings == nil && s.LocalStorageData == nil
}

// DecodeSnapshot parses a stored or uploaded snapshot. Collection fields
// that are absent or null come back as empty slices so callers can
// range over them without nil checks.
func DecodeSnapshot(raw []byte) (*BackupSnapshot, error) {
	var snap BackupSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, err
	}
	if snap.Candidates == nil {
		snap.Candidates = []Candidate{}
	}
	if snap.QuestionTemplates == nil {
		snap.QuestionTemplates = []QuestionTemplate{}
	}
	if snap.Positions == nil {
		snap.Positions = PositionNameList{}
	}
	if snap.JobDescriptions == nil {
		snap.JobDescriptions = []JobDescription{}
	}
	if snap.InterviewResults == nil {
		snap.InterviewResults = []InterviewResult{}
	}
	return &snap, nil
}

// snapshotFields is every top-level field a current export carries, in
// document order. Completeness checks report against this list.
var snapshotFields = []string{
	"candidates",
	"questionTemplates",
	"positions",
	"jobDescriptions",
	"interviewResults",
	"themeSettings",
	"aiSettings",
	"localStorageData",
	"exportedAt",
	"version",
}

// MissingSnapshotFields reports which expected top-level fields the raw
// snapshot lacks. A parse failure is returned as an error; an empty
// result means the file is structurally complete.
func MissingSnapshotFields(raw []byte) ([]string, error) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return nil, err
	}
	var missing []string
	for _, f := range snapshotFields {
		if _, ok := probe[f]; !ok {
			missing = append(missing, f)
		}
	}
	return missing, nil
}

// importRequiredCollections must be present as arrays before an import
// is allowed to touch stored data.
var importRequiredCollections = []string{
	"candidates",
	"questionTemplates",
	"positions",
	"jobDescriptions",
}

// ValidateImport checks the structural preconditions for an import and
// returns the list of problems found. The file must be a JSON object
// whose core collections exist and are arrays; anything else would only
// fail halfway through a restore, after data was already cleared.
func ValidateImport(raw []byte) []string {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		return []string{"file is not a JSON object"}
	}
	var problems []string
	for _, f := range importRequiredCollections {
		v, ok := probe[f]
		if !ok {
			problems = append(problems, "missing field "+f)
			continue
		}
		if !isJSONArray(v) {
			problems = append(problems, "field "+f+" is not an array")
		}
	}
	return problems
}

func isJSONArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '['
}

// EncodeFlatValue converts a raw flat-store string into its snapshot
// representation: values that already parse as JSON are embedded as-is,
// everything else is wrapped as a JSON string.
func EncodeFlatValue(value string) json.RawMessage {
	if json.Valid([]byte(value)) {
		return json.RawMessage(value)
	}
	quoted, _ := json.Marshal(value)
	return quoted
}

// DecodeFlatValue is the inverse of EncodeFlatValue: JSON strings come
// back as their content, any other JSON value as its literal text.
func DecodeFlatValue(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
