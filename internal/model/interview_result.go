package model

import "time"

type Verdict string

const (
	VerdictPassed   Verdict = "Passed"
	VerdictRejected Verdict = "Rejected"
	VerdictMaybe    Verdict = "Maybe"
)

// Valid reports whether v is one of the recognised outcomes.
func (v Verdict) Valid() bool {
	switch v {
	case VerdictPassed, VerdictRejected, VerdictMaybe:
		return true
	}
	return false
}

// InterviewResult is the frozen outcome of one candidate's interview.
// Questions hold a point-in-time copy of the candidate's question list,
// judgements included, so later edits to the candidate do not rewrite
// history. A candidate has at most one result; saving again replaces the
// content but keeps the record id.
type InterviewResult struct {
	ID          string     `gorm:"primarykey" json:"id"`
	CandidateID string     `json:"candidateId" gorm:"not null;index"`
	Description string     `json:"description" gorm:"type:text"`
	Result      Verdict    `json:"result" gorm:"not null"` // "Passed", "Rejected", "Maybe"
	Questions   []Question `json:"questions" gorm:"type:jsonb;serializer:json"`
	CreatedAt   time.Time  `json:"createdAt" gorm:"index"`
}
