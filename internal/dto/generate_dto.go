package dto

// GenerateRequest is the raw text-generation entry point. TimeoutMs
// bounds the upstream call; zero or absent falls back to the default.
type GenerateRequest struct {
	Prompt    string `json:"prompt" binding:"required"`
	TimeoutMs int    `json:"timeoutMs" binding:"omitempty,gte=0"`
}

// GenerateResponse mirrors the upstream wire shape so existing clients
// can consume it unchanged.
type GenerateResponse struct {
	Candidates []GenerateCandidate `json:"candidates"`
}

type GenerateCandidate struct {
	Content GenerateContent `json:"content"`
}

type GenerateContent struct {
	Parts []GeneratePart `json:"parts"`
}

type GeneratePart struct {
	Text string `json:"text"`
}

// DraftQuestionsRequest asks for interview questions for a position.
type DraftQuestionsRequest struct {
	Position string `json:"position" binding:"required"`
	Count    int    `json:"count" binding:"omitempty,gte=1,lte=25"`
	Section  string `json:"section"`
}

type DraftQuestionsResponse struct {
	Questions []string `json:"questions"`
}

// DraftJobDescriptionRequest asks for a full posting text for a title.
type DraftJobDescriptionRequest struct {
	Title           string   `json:"title" binding:"required"`
	Skills          []string `json:"skills"`
	ExperienceYears *int     `json:"experienceYears" binding:"omitempty,gte=0"`
}

// DraftSummaryRequest asks for a hiring summary of a candidate's
// recorded answers.
type DraftSummaryRequest struct {
	CandidateID string `json:"candidateId" binding:"required"`
}

// DraftTextResponse carries any single-text generation result.
type DraftTextResponse struct {
	Text string `json:"text"`
}
