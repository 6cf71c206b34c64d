package dto

import "time"

// TemplateQuestionRequest is one question inside a submitted section.
type TemplateQuestionRequest struct {
	ID             string `json:"id"`
	Question       string `json:"question" binding:"required"`
	ExpectedAnswer string `json:"expectedAnswer"`
}

// TemplateSectionRequest groups submitted questions under a heading.
// A blank name becomes "Other".
type TemplateSectionRequest struct {
	ID        string                    `json:"id"`
	Name      string                    `json:"name"`
	Questions []TemplateQuestionRequest `json:"questions" binding:"omitempty,dive"`
}

// QuestionTemplateRequest creates or fully replaces a question template.
type QuestionTemplateRequest struct {
	ID       string                   `json:"id"`
	Name     string                   `json:"name" binding:"required"`
	Sections []TemplateSectionRequest `json:"sections" binding:"omitempty,dive"`
}

type TemplateSectionResponse struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Questions []QuestionDTO `json:"questions"`
}

type QuestionTemplateResponse struct {
	ID        string                    `json:"id"`
	Name      string                    `json:"name"`
	Sections  []TemplateSectionResponse `json:"sections"`
	CreatedAt time.Time                 `json:"createdAt"`
	UpdatedAt time.Time                 `json:"updatedAt"`
}
