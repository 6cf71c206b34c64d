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

type JobDescriptionService interface {
	CreateJobDescription(req dto.JobDescriptionRequest) (*dto.JobDescriptionResponse, error)
	// GetJobDescription returns nil without error when the id is unknown.
	GetJobDescription(id string) (*dto.JobDescriptionResponse, error)
	GetAllJobDescriptions() ([]dto.JobDescriptionResponse, error)
	UpdateJobDescription(id string, req dto.JobDescriptionRequest) (*dto.JobDescriptionResponse, error)
	DeleteJobDescription(id string) error
}

type jobDescriptionService struct {
	repo      repository.JobDescriptionRepository
	scheduler BackupScheduler
}

func NewJobDescriptionService(repo repository.JobDescriptionRepository, scheduler BackupScheduler) JobDescriptionService {
	return &jobDescriptionService{repo: repo, scheduler: scheduler}
}

func (s *jobDescriptionService) CreateJobDescription(req dto.JobDescriptionRequest) (*dto.JobDescriptionResponse, error) {
	jd := model.JobDescription{
		ID:          req.ID,
		Title:       req.Title,
		Description: req.Description,
	}
	if jd.ID == "" {
		jd.ID = uuid.NewString()
	}

	if err := s.repo.Create(&jd); err != nil {
		log.Error().Err(err).Str("jobDescriptionID", jd.ID).Msg("Failed to create job description")
		return nil, err
	}
	s.scheduler.Schedule()
	return jobDescriptionToResponse(&jd)
}

func (s *jobDescriptionService) GetJobDescription(id string) (*dto.JobDescriptionResponse, error) {
	jd, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return jobDescriptionToResponse(jd)
}

func (s *jobDescriptionService) GetAllJobDescriptions() ([]dto.JobDescriptionResponse, error) {
	jds, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	resp := make([]dto.JobDescriptionResponse, 0, len(jds))
	for i := range jds {
		one, err := jobDescriptionToResponse(&jds[i])
		if err != nil {
			return nil, err
		}
		resp = append(resp, *one)
	}
	return resp, nil
}

func (s *jobDescriptionService) UpdateJobDescription(id string, req dto.JobDescriptionRequest) (*dto.JobDescriptionResponse, error) {
	jd, err := s.repo.FindByID(id)
	if err != nil {
		if !errors.Is(err, apperr.ErrNotFound) {
			return nil, err
		}
		jd = &model.JobDescription{ID: id}
	}
	jd.Title = req.Title
	jd.Description = req.Description

	if err := s.repo.Save(jd); err != nil {
		log.Error().Err(err).Str("jobDescriptionID", id).Msg("Failed to save job description")
		return nil, err
	}
	s.scheduler.Schedule()
	return jobDescriptionToResponse(jd)
}

func (s *jobDescriptionService) DeleteJobDescription(id string) error {
	if err := s.repo.Delete(id); err != nil {
		log.Error().Err(err).Str("jobDescriptionID", id).Msg("Failed to delete job description")
		return err
	}
	s.scheduler.Schedule()
	return nil
}

func jobDescriptionToResponse(jd *model.JobDescription) (*dto.JobDescriptionResponse, error) {
	var resp dto.JobDescriptionResponse
	if err := copier.Copy(&resp, jd); err != nil {
		log.Error().Err(err).Msg("Error copying job description to DTO")
		return nil, fmt.Errorf("error preparing response: %w", err)
	}
	return &resp, nil
}
