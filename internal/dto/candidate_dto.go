package dto

import "time"

// ExperienceDTO carries experience as whole years plus leftover months.
type ExperienceDTO struct {
	Years  int `json:"years" binding:"gte=0"`
	Months int `json:"months" binding:"gte=0,lte=11"`
}

// QuestionDTO mirrors a stored interview question, judgement included.
type QuestionDTO struct {
	ID             string `json:"id"`
	Question       string `json:"question"`
	Section        string `json:"section"`
	ExpectedAnswer string `json:"expectedAnswer,omitempty"`
	IsCorrect      *bool  `json:"isCorrect,omitempty"`
	IsAnswered     bool   `json:"isAnswered"`
}

// CandidateRequest creates or fully replaces a candidate. An empty id on
// create is filled in by the server.
type CandidateRequest struct {
	ID            string        `json:"id"`
	FullName      string        `json:"fullName" binding:"required"`
	Position      string        `json:"position"`
	Status        string        `json:"status" binding:"omitempty,oneof='Not Interviewed' Passed Rejected Maybe"`
	Experience    ExperienceDTO `json:"experience"`
	InterviewDate *string       `json:"interviewDate"`
}

type CandidateResponse struct {
	ID            string        `json:"id"`
	FullName      string        `json:"fullName"`
	Position      string        `json:"position"`
	Status        string        `json:"status"`
	Experience    ExperienceDTO `json:"experience"`
	Questions     []QuestionDTO `json:"questions"`
	InterviewDate *string       `json:"interviewDate,omitempty"`
	MatchScore    *int          `json:"matchScore,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// QuestionRequest adds one question to a candidate.
type QuestionRequest struct {
	Question       string `json:"question" binding:"required"`
	Section        string `json:"section"`
	ExpectedAnswer string `json:"expectedAnswer"`
}

// ImportQuestionsRequest copies questions from a template into a
// candidate. The template id in the route wins over one in the body.
// With no section ids, every section is imported.
type ImportQuestionsRequest struct {
	TemplateID string   `json:"templateId"`
	SectionIDs []string `json:"sectionIds"`
}

// MatchScoreRequest asks for a fit score between a candidate and a
// stored job description.
type MatchScoreRequest struct {
	JobDescriptionID string `json:"jobDescriptionId" binding:"required"`
}

type MatchScoreResponse struct {
	CandidateID      string `json:"candidateId"`
	JobDescriptionID string `json:"jobDescriptionId"`
	MatchScore       int    `json:"matchScore"`
}
