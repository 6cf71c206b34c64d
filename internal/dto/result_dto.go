package dto

import "time"

// InterviewResultRequest records the outcome of a candidate's interview.
// Saving again for the same candidate replaces the earlier outcome while
// keeping the stored record id. When Questions is omitted the service
// snapshots the candidate's current question list instead.
type InterviewResultRequest struct {
	CandidateID string        `json:"candidateId" binding:"required"`
	Description string        `json:"description"`
	Result      string        `json:"result" binding:"required,oneof=Passed Rejected Maybe"`
	Questions   []QuestionDTO `json:"questions"`
}

type InterviewResultResponse struct {
	ID          string        `json:"id"`
	CandidateID string        `json:"candidateId"`
	Description string        `json:"description"`
	Result      string        `json:"result"`
	Questions   []QuestionDTO `json:"questions"`
	CreatedAt   time.Time     `json:"createdAt"`
}
