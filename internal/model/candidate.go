package model

import "time"

type CandidateStatus string

const (
	StatusNotInterviewed CandidateStatus = "Not Interviewed"
	StatusPassed         CandidateStatus = "Passed"
	StatusRejected       CandidateStatus = "Rejected"
	StatusMaybe          CandidateStatus = "Maybe"
)

// Valid reports whether s is one of the recognised pipeline states.
func (s CandidateStatus) Valid() bool {
	switch s {
	case StatusNotInterviewed, StatusPassed, StatusRejected, StatusMaybe:
		return true
	}
	return false
}

// Experience is a duration split into whole years plus leftover months,
// so months must stay below twelve.
type Experience struct {
	Years  int `json:"years"`
	Months int `json:"months"`
}

// Valid reports whether the duration is non-negative with months in 0..11.
func (e Experience) Valid() bool {
	return e.Years >= 0 && e.Months >= 0 && e.Months < 12
}

// Candidate is a tracked applicant together with the questions asked so
// far. InterviewDate stays a plain date string so values round-trip
// through export files unchanged.
type Candidate struct {
	ID            string          `gorm:"primarykey" json:"id"`
	FullName      string          `json:"fullName" gorm:"not null"`
	Position      string          `json:"position"`
	Status        CandidateStatus `json:"status" gorm:"not null"` // "Not Interviewed", "Passed", "Rejected", "Maybe"
	Experience    Experience      `json:"experience" gorm:"embedded;embeddedPrefix:experience_"`
	Questions     []Question      `json:"questions" gorm:"type:jsonb;serializer:json"`
	InterviewDate *string         `json:"interviewDate,omitempty"`
	MatchScore    *int            `json:"matchScore,omitempty"`
	CreatedAt     time.Time       `json:"createdAt" gorm:"index"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// QuestionByID returns a pointer into the candidate's question list, or
// nil when the id is absent. Mutations through the pointer must be
// persisted by saving the candidate.
func (c *Candidate) QuestionByID(id string) *Question {
	for i := range c.Questions {
		if c.Questions[i].ID == id {
			return &c.Questions[i]
		}
	}
	return nil
}

// RemoveQuestion drops the question with the given id, reporting whether
// anything was removed.
func (c *Candidate) RemoveQuestion(id string) bool {
	for i := range c.Questions {
		if c.Questions[i].ID == id {
			c.Questions = append(c.Questions[:i], c.Questions[i+1:]...)
			return true
		}
	}
	return false
}
