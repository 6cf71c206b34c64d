package service

import (
	"errors"
	"fmt"

	"github.com/ManishJangid007/hirely-sub000/internal/apperr"
	"github.com/ManishJangid007/hirely-sub000/internal/dto"
	"github.com/ManishJangid007/hirely-sub000/internal/model"
	"github.com/ManishJangid007/hirely-sub000/internal/repository"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

type QuestionTemplateService interface {
	CreateTemplate(req dto.QuestionTemplateRequest) (*dto.QuestionTemplateResponse, error)
	// GetTemplate returns nil without error when the id is unknown.
	GetTemplate(id string) (*dto.QuestionTemplateResponse, error)
	GetAllTemplates() ([]dto.QuestionTemplateResponse, error)
	UpdateTemplate(id string, req dto.QuestionTemplateRequest) (*dto.QuestionTemplateResponse, error)
	DeleteTemplate(id string) error
}

type questionTemplateService struct {
	repo      repository.QuestionTemplateRepository
	scheduler BackupScheduler
}

func NewQuestionTemplateService(repo repository.QuestionTemplateRepository, scheduler BackupScheduler) QuestionTemplateService {
	return &questionTemplateService{repo: repo, scheduler: scheduler}
}

func (s *questionTemplateService) CreateTemplate(req dto.QuestionTemplateRequest) (*dto.QuestionTemplateResponse, error) {
	template := model.QuestionTemplate{
		ID:       req.ID,
		Name:     req.Name,
		Sections: sectionsFromRequest(req.Sections),
	}
	if template.ID == "" {
		template.ID = uuid.NewString()
	}

	if err := s.repo.Create(&template); err != nil {
		log.Error().Err(err).Str("templateID", template.ID).Msg("Failed to create question template")
		return nil, err
	}
	s.scheduler.Schedule()
	return templateToResponse(&template)
}

func (s *questionTemplateService) GetTemplate(id string) (*dto.QuestionTemplateResponse, error) {
	template, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return templateToResponse(template)
}

func (s *questionTemplateService) GetAllTemplates() ([]dto.QuestionTemplateResponse, error) {
	templates, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	resp := make([]dto.QuestionTemplateResponse, 0, len(templates))
	for i := range templates {
		one, err := templateToResponse(&templates[i])
		if err != nil {
			return nil, err
		}
		resp = append(resp, *one)
	}
	return resp, nil
}

// UpdateTemplate has put semantics: the submitted sections replace the
// stored ones wholesale, and an unknown id inserts a fresh record.
func (s *questionTemplateService) UpdateTemplate(id string, req dto.QuestionTemplateRequest) (*dto.QuestionTemplateResponse, error) {
	template, err := s.repo.FindByID(id)
	if err != nil {
		if !errors.Is(err, apperr.ErrNotFound) {
			return nil, err
		}
		template = &model.QuestionTemplate{ID: id}
	}
	template.Name = req.Name
	template.Sections = sectionsFromRequest(req.Sections)

	if err := s.repo.Save(template); err != nil {
		log.Error().Err(err).Str("templateID", id).Msg("Failed to save question template")
		return nil, err
	}
	s.scheduler.Schedule()
	return templateToResponse(template)
}

func (s *questionTemplateService) DeleteTemplate(id string) error {
	if err := s.repo.Delete(id); err != nil {
		log.Error().Err(err).Str("templateID", id).Msg("Failed to delete question template")
		return err
	}
	s.scheduler.Schedule()
	return nil
}

// sectionsFromRequest fills in the ids and names the client left blank:
// sections and questions get fresh uuids, unnamed sections become
// "Other".
func sectionsFromRequest(reqs []dto.TemplateSectionRequest) []model.QuestionSection {
	sections := make([]model.QuestionSection, 0, len(reqs))
	for _, sec := range reqs {
		section := model.QuestionSection{
			ID:        sec.ID,
			Name:      sec.Name,
			Questions: make([]model.Question, 0, len(sec.Questions)),
		}
		if section.ID == "" {
			section.ID = uuid.NewString()
		}
		if section.Name == "" {
			section.Name = "Other"
		}
		for _, q := range sec.Questions {
			question := model.Question{
				ID:             q.ID,
				Question:       q.Question,
				Section:        section.Name,
				ExpectedAnswer: q.ExpectedAnswer,
			}
			if question.ID == "" {
				question.ID = uuid.NewString()
			}
			section.Questions = append(section.Questions, question)
		}
		sections = append(sections, section)
	}
	return sections
}

func templateToResponse(template *model.QuestionTemplate) (*dto.QuestionTemplateResponse, error) {
	var resp dto.QuestionTemplateResponse
	if err := copier.Copy(&resp, template); err != nil {
		log.Error().Err(err).Msg("Error copying template to DTO")
		return nil, fmt.Errorf("error preparing response: %w", err)
	}
	if resp.Sections == nil {
		resp.Sections = []dto.TemplateSectionResponse{}
	}
	return &resp, nil
}
