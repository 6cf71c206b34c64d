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

type CandidateService interface {
	CreateCandidate(req dto.CandidateRequest) (*dto.CandidateResponse, error)
	// GetCandidate returns nil without error when the id is unknown.
	GetCandidate(id string) (*dto.CandidateResponse, error)
	GetAllCandidates() ([]dto.CandidateResponse, error)
	UpdateCandidate(id string, req dto.CandidateRequest) (*dto.CandidateResponse, error)
	DeleteCandidate(id string) error

	AddQuestion(candidateID string, req dto.QuestionRequest) (*dto.CandidateResponse, error)
	RemoveQuestion(candidateID, questionID string) (*dto.CandidateResponse, error)
	ImportTemplateQuestions(candidateID string, req dto.ImportQuestionsRequest) (*dto.CandidateResponse, error)
	MarkQuestionCorrect(candidateID, questionID string) (*dto.CandidateResponse, error)
	MarkQuestionWrong(candidateID, questionID string) (*dto.CandidateResponse, error)
	UndoQuestionAnswer(candidateID, questionID string) (*dto.CandidateResponse, error)

	SetMatchScore(candidateID string, score int) (*dto.CandidateResponse, error)
	// GetCandidateResult returns nil without error when the candidate
	// has no recorded outcome yet.
	GetCandidateResult(candidateID string) (*dto.InterviewResultResponse, error)
}

type candidateService struct {
	repo         repository.CandidateRepository
	templateRepo repository.QuestionTemplateRepository
	resultRepo   repository.InterviewResultRepository
	flatRepo     repository.FlatRepository
	scheduler    BackupScheduler
}

func NewCandidateService(
	repo repository.CandidateRepository,
	templateRepo repository.QuestionTemplateRepository,
	resultRepo repository.InterviewResultRepository,
	flatRepo repository.FlatRepository,
	scheduler BackupScheduler,
) CandidateService {
	return &candidateService{
		repo:         repo,
		templateRepo: templateRepo,
		resultRepo:   resultRepo,
		flatRepo:     flatRepo,
		scheduler:    scheduler,
	}
}

func (s *candidateService) CreateCandidate(req dto.CandidateRequest) (*dto.CandidateResponse, error) {
	candidate := model.Candidate{
		ID:            req.ID,
		FullName:      req.FullName,
		Position:      req.Position,
		Status:        model.StatusNotInterviewed,
		Experience:    model.Experience{Years: req.Experience.Years, Months: req.Experience.Months},
		Questions:     []model.Question{},
		InterviewDate: req.InterviewDate,
	}
	if candidate.ID == "" {
		candidate.ID = uuid.NewString()
	}
	if req.Status != "" {
		candidate.Status = model.CandidateStatus(req.Status)
	}
	if !candidate.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", apperr.ErrInvalidInput, req.Status)
	}
	if !candidate.Experience.Valid() {
		return nil, fmt.Errorf("%w: experience years must be >= 0 and months in 0..11", apperr.ErrInvalidInput)
	}

	if err := s.repo.Create(&candidate); err != nil {
		log.Error().Err(err).Str("candidateID", candidate.ID).Msg("Failed to create candidate")
		return nil, err
	}
	s.scheduler.Schedule()
	return candidateToResponse(&candidate)
}

func (s *candidateService) GetCandidate(id string) (*dto.CandidateResponse, error) {
	candidate, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return candidateToResponse(candidate)
}

func (s *candidateService) GetAllCandidates() ([]dto.CandidateResponse, error) {
	candidates, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	resp := make([]dto.CandidateResponse, 0, len(candidates))
	for i := range candidates {
		one, err := candidateToResponse(&candidates[i])
		if err != nil {
			return nil, err
		}
		resp = append(resp, *one)
	}
	return resp, nil
}

// UpdateCandidate has put semantics: an unknown id inserts a fresh
// record under that id instead of failing. Questions, match score and
// creation time survive updates untouched.
func (s *candidateService) UpdateCandidate(id string, req dto.CandidateRequest) (*dto.CandidateResponse, error) {
	status := model.CandidateStatus(req.Status)
	if req.Status == "" {
		status = model.StatusNotInterviewed
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", apperr.ErrInvalidInput, req.Status)
	}
	experience := model.Experience{Years: req.Experience.Years, Months: req.Experience.Months}
	if !experience.Valid() {
		return nil, fmt.Errorf("%w: experience years must be >= 0 and months in 0..11", apperr.ErrInvalidInput)
	}

	candidate, err := s.repo.FindByID(id)
	if err != nil {
		if !errors.Is(err, apperr.ErrNotFound) {
			return nil, err
		}
		candidate = &model.Candidate{ID: id, Questions: []model.Question{}}
	}
	candidate.FullName = req.FullName
	candidate.Position = req.Position
	candidate.Status = status
	candidate.Experience = experience
	candidate.InterviewDate = req.InterviewDate

	if err := s.repo.Save(candidate); err != nil {
		log.Error().Err(err).Str("candidateID", id).Msg("Failed to save candidate")
		return nil, err
	}
	s.scheduler.Schedule()
	return candidateToResponse(candidate)
}

// DeleteCandidate removes the record and its legacy per-candidate flat
// key. Deleting an unknown id succeeds quietly; recorded interview
// results stay behind as history.
func (s *candidateService) DeleteCandidate(id string) error {
	if err := s.repo.Delete(id); err != nil {
		log.Error().Err(err).Str("candidateID", id).Msg("Failed to delete candidate")
		return err
	}
	if err := s.flatRepo.Delete(model.CandidateQuestionsPrefix + id); err != nil {
		log.Warn().Err(err).Str("candidateID", id).Msg("Failed to delete legacy question key")
	}
	s.scheduler.Schedule()
	return nil
}

func (s *candidateService) AddQuestion(candidateID string, req dto.QuestionRequest) (*dto.CandidateResponse, error) {
	candidate, err := s.repo.FindByID(candidateID)
	if err != nil {
		return nil, err
	}
	section := req.Section
	if section == "" {
		section = "Other"
	}
	candidate.Questions = append(candidate.Questions, model.Question{
		ID:             uuid.NewString(),
		Question:       req.Question,
		Section:        section,
		ExpectedAnswer: req.ExpectedAnswer,
	})
	return s.saveAndRespond(candidate)
}

func (s *candidateService) RemoveQuestion(candidateID, questionID string) (*dto.CandidateResponse, error) {
	candidate, err := s.repo.FindByID(candidateID)
	if err != nil {
		return nil, err
	}
	// Removing an id that is already gone is a no-op, not an error.
	if !candidate.RemoveQuestion(questionID) {
		return candidateToResponse(candidate)
	}
	return s.saveAndRespond(candidate)
}

// ImportTemplateQuestions copies questions from a template into the
// candidate under fresh ids, so importing twice yields distinct rows.
// With no section ids every section is imported; unknown ids are
// ignored.
func (s *candidateService) ImportTemplateQuestions(candidateID string, req dto.ImportQuestionsRequest) (*dto.CandidateResponse, error) {
	candidate, err := s.repo.FindByID(candidateID)
	if err != nil {
		return nil, err
	}
	template, err := s.templateRepo.FindByID(req.TemplateID)
	if err != nil {
		return nil, fmt.Errorf("template %s: %w", req.TemplateID, err)
	}

	wanted := make(map[string]bool, len(req.SectionIDs))
	for _, id := range req.SectionIDs {
		wanted[id] = true
	}

	imported := 0
	for _, section := range template.Sections {
		if len(wanted) > 0 && !wanted[section.ID] {
			continue
		}
		for _, q := range section.Questions {
			candidate.Questions = append(candidate.Questions, model.Question{
				ID:             uuid.NewString(),
				Question:       q.Question,
				Section:        section.Name,
				ExpectedAnswer: q.ExpectedAnswer,
			})
			imported++
		}
	}
	log.Info().Str("candidateID", candidateID).Str("templateID", req.TemplateID).
		Int("count", imported).Msg("Imported template questions")
	return s.saveAndRespond(candidate)
}

func (s *candidateService) MarkQuestionCorrect(candidateID, questionID string) (*dto.CandidateResponse, error) {
	return s.judgeQuestion(candidateID, questionID, func(q *model.Question) error {
		return q.MarkCorrect()
	})
}

func (s *candidateService) MarkQuestionWrong(candidateID, questionID string) (*dto.CandidateResponse, error) {
	return s.judgeQuestion(candidateID, questionID, func(q *model.Question) error {
		return q.MarkWrong()
	})
}

func (s *candidateService) UndoQuestionAnswer(candidateID, questionID string) (*dto.CandidateResponse, error) {
	return s.judgeQuestion(candidateID, questionID, func(q *model.Question) error {
		return q.UndoAnswer()
	})
}

func (s *candidateService) judgeQuestion(candidateID, questionID string, apply func(*model.Question) error) (*dto.CandidateResponse, error) {
	candidate, err := s.repo.FindByID(candidateID)
	if err != nil {
		return nil, err
	}
	question := candidate.QuestionByID(questionID)
	if question == nil {
		return nil, fmt.Errorf("question %s: %w", questionID, apperr.ErrNotFound)
	}
	if err := apply(question); err != nil {
		return nil, err
	}
	return s.saveAndRespond(candidate)
}

func (s *candidateService) SetMatchScore(candidateID string, score int) (*dto.CandidateResponse, error) {
	if score < 0 || score > 100 {
		return nil, fmt.Errorf("%w: match score must be in 0..100", apperr.ErrInvalidInput)
	}
	candidate, err := s.repo.FindByID(candidateID)
	if err != nil {
		return nil, err
	}
	candidate.MatchScore = &score
	return s.saveAndRespond(candidate)
}

func (s *candidateService) GetCandidateResult(candidateID string) (*dto.InterviewResultResponse, error) {
	result, err := s.resultRepo.FindByCandidateID(candidateID)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return resultToResponse(result)
}

func (s *candidateService) saveAndRespond(candidate *model.Candidate) (*dto.CandidateResponse, error) {
	if err := s.repo.Save(candidate); err != nil {
		log.Error().Err(err).Str("candidateID", candidate.ID).Msg("Failed to save candidate")
		return nil, err
	}
	s.scheduler.Schedule()
	return candidateToResponse(candidate)
}

func candidateToResponse(candidate *model.Candidate) (*dto.CandidateResponse, error) {
	var resp dto.CandidateResponse
	if err := copier.Copy(&resp, candidate); err != nil {
		log.Error().Err(err).Msg("Error copying candidate to DTO")
		return nil, fmt.Errorf("error preparing response: %w", err)
	}
	resp.Status = string(candidate.Status)
	if resp.Questions == nil {
		resp.Questions = []dto.QuestionDTO{}
	}
	return &resp, nil
}
