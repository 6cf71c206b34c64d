package service

import (
	"fmt"

	"github.com/ManishJangid007/hirely-sub000/internal/apperr"
	"github.com/ManishJangid007/hirely-sub000/internal/dto"
	"github.com/ManishJangid007/hirely-sub000/internal/model"
	"github.com/ManishJangid007/hirely-sub000/internal/repository"
	"github.com/rs/zerolog/log"
)

type PositionService interface {
	GetPositions() ([]dto.PositionResponse, error)
	// ReplacePositions swaps the entire list atomically. Duplicate names
	// collapse to their first occurrence; ids are renumbered from one.
	ReplacePositions(req dto.ReplacePositionsRequest) ([]dto.PositionResponse, error)
	AddPosition(req dto.AddPositionRequest) (*dto.PositionResponse, error)
}

type positionService struct {
	repo      repository.PositionRepository
	scheduler BackupScheduler
}

func NewPositionService(repo repository.PositionRepository, scheduler BackupScheduler) PositionService {
	return &positionService{repo: repo, scheduler: scheduler}
}

func (s *positionService) GetPositions() ([]dto.PositionResponse, error) {
	positions, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	return positionsToResponse(positions), nil
}

func (s *positionService) ReplacePositions(req dto.ReplacePositionsRequest) ([]dto.PositionResponse, error) {
	positions := model.PositionsFromNames(req.Positions)
	if err := s.repo.ReplaceAll(positions); err != nil {
		log.Error().Err(err).Int("count", len(positions)).Msg("Failed to replace positions")
		return nil, err
	}
	s.scheduler.Schedule()
	return positionsToResponse(positions), nil
}

func (s *positionService) AddPosition(req dto.AddPositionRequest) (*dto.PositionResponse, error) {
	existing, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	for _, p := range existing {
		if p.Name == req.Name {
			return nil, fmt.Errorf("position %q: %w", req.Name, apperr.ErrDuplicateID)
		}
	}

	position := model.Position{ID: nextPositionID(existing), Name: req.Name}
	if err := s.repo.Create(&position); err != nil {
		log.Error().Err(err).Str("name", req.Name).Msg("Failed to add position")
		return nil, err
	}
	s.scheduler.Schedule()
	return &dto.PositionResponse{ID: position.ID, Name: position.Name}, nil
}

func nextPositionID(positions []model.Position) int {
	next := 1
	for _, p := range positions {
		if p.ID >= next {
			next = p.ID + 1
		}
	}
	return next
}

func positionsToResponse(positions []model.Position) []dto.PositionResponse {
	resp := make([]dto.PositionResponse, 0, len(positions))
	for _, p := range positions {
		resp = append(resp, dto.PositionResponse{ID: p.ID, Name: p.Name})
	}
	return resp
}
