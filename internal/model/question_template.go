package model

import "time"

// QuestionSection groups template questions under a heading such as
// "Data Structures" or "Behavioral". Sections without a name fall back
// to "Other" at creation time.
type QuestionSection struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Questions []Question `json:"questions"`
}

// QuestionTemplate is a reusable bank of sectioned questions that can be
// imported into a candidate wholesale or section by section.
type QuestionTemplate struct {
	ID        string            `gorm:"primarykey" json:"id"`
	Name      string            `json:"name" gorm:"not null;index"`
	Sections  []QuestionSection `json:"sections" gorm:"type:jsonb;serializer:json"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
}

// SectionByID returns the section with the given id, or nil.
func (t *QuestionTemplate) SectionByID(id string) *QuestionSection {
	for i := range t.Sections {
		if t.Sections[i].ID == id {
			return &t.Sections[i]
		}
	}
	return nil
}
