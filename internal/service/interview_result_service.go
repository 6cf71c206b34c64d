package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/ManishJangid007/hirely-sub000/internal/apperr"
	"github.com/ManishJangid007/hirely-sub000/internal/dto"
	"github.com/ManishJangid007/hirely-sub000/internal/model"
	"github.com/ManishJangid007/hirely-sub000/internal/repository"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

type InterviewResultService interface {
	// SaveResult records a candidate's outcome. A candidate holds at
	// most one result: saving again replaces the content under the
	// original record id with a fresh timestamp.
	SaveResult(req dto.InterviewResultRequest) (*dto.InterviewResultResponse, error)
	GetAllResults() ([]dto.InterviewResultResponse, error)
	DeleteResult(id string) error
}

type interviewResultService struct {
	repo          repository.InterviewResultRepository
	candidateRepo repository.CandidateRepository
	scheduler     BackupScheduler
}

func NewInterviewResultService(
	repo repository.InterviewResultRepository,
	candidateRepo repository.CandidateRepository,
	scheduler BackupScheduler,
) InterviewResultService {
	return &interviewResultService{repo: repo, candidateRepo: candidateRepo, scheduler: scheduler}
}

func (s *interviewResultService) SaveResult(req dto.InterviewResultRequest) (*dto.InterviewResultResponse, error) {
	verdict := model.Verdict(req.Result)
	if !verdict.Valid() {
		return nil, fmt.Errorf("%w: unknown result %q", apperr.ErrInvalidInput, req.Result)
	}

	candidate, err := s.candidateRepo.FindByID(req.CandidateID)
	if err != nil {
		return nil, fmt.Errorf("candidate %s: %w", req.CandidateID, err)
	}

	questions := questionsFromDTO(req.Questions)
	if questions == nil {
		// No explicit list submitted: freeze the candidate's current
		// questions, judgements included.
		questions = model.CloneQuestions(candidate.Questions)
		if questions == nil {
			questions = []model.Question{}
		}
	}

	result := &model.InterviewResult{
		ID:          uuid.NewString(),
		CandidateID: req.CandidateID,
		Description: req.Description,
		Result:      verdict,
		Questions:   questions,
		CreatedAt:   time.Now(),
	}
	if existing, err := s.repo.FindByCandidateID(req.CandidateID); err == nil {
		result.ID = existing.ID
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}

	if err := s.repo.Save(result); err != nil {
		log.Error().Err(err).Str("candidateID", req.CandidateID).Msg("Failed to save interview result")
		return nil, err
	}
	s.scheduler.Schedule()
	return resultToResponse(result)
}

func (s *interviewResultService) GetAllResults() ([]dto.InterviewResultResponse, error) {
	results, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	resp := make([]dto.InterviewResultResponse, 0, len(results))
	for i := range results {
		one, err := resultToResponse(&results[i])
		if err != nil {
			return nil, err
		}
		resp = append(resp, *one)
	}
	return resp, nil
}

func (s *interviewResultService) DeleteResult(id string) error {
	if err := s.repo.Delete(id); err != nil {
		log.Error().Err(err).Str("resultID", id).Msg("Failed to delete interview result")
		return err
	}
	s.scheduler.Schedule()
	return nil
}

func questionsFromDTO(dtos []dto.QuestionDTO) []model.Question {
	if dtos == nil {
		return nil
	}
	questions := make([]model.Question, 0, len(dtos))
	for _, q := range dtos {
		questions = append(questions, model.Question{
			ID:             q.ID,
			Question:       q.Question,
			Section:        q.Section,
			ExpectedAnswer: q.ExpectedAnswer,
			IsCorrect:      q.IsCorrect,
			IsAnswered:     q.IsAnswered,
		})
	}
	return questions
}

func resultToResponse(result *model.InterviewResult) (*dto.InterviewResultResponse, error) {
	var resp dto.InterviewResultResponse
	if err := copier.Copy(&resp, result); err != nil {
		log.Error().Err(err).Msg("Error copying interview result to DTO")
		return nil, fmt.Errorf("error preparing response: %w", err)
	}
	resp.Result = string(result.Result)
	if resp.Questions == nil {
		resp.Questions = []dto.QuestionDTO{}
	}
	return &resp, nil
}
