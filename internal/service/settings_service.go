package service

import (
	"errors"

	"github.com/ManishJangid007/hirely-sub000/internal/apperr"
	"github.com/ManishJangid007/hirely-sub000/internal/dto"
	"github.com/ManishJangid007/hirely-sub000/internal/model"
	"github.com/ManishJangid007/hirely-sub000/internal/repository"
	"github.com/rs/zerolog/log"
)

type SettingsService interface {
	// GetSettings never fails on an empty store: before the first save
	// it reports the defaults.
	GetSettings() (*dto.SettingsResponse, error)
	// UpdateSettings merges the patch over the stored record; fields the
	// patch leaves nil keep their current value.
	UpdateSettings(req dto.UpdateSettingsRequest) (*dto.SettingsResponse, error)
}

type settingsService struct {
	repo      repository.SettingsRepository
	scheduler BackupScheduler
}

func NewSettingsService(repo repository.SettingsRepository, scheduler BackupScheduler) SettingsService {
	return &settingsService{repo: repo, scheduler: scheduler}
}

func (s *settingsService) GetSettings() (*dto.SettingsResponse, error) {
	settings, err := s.loadOrDefault()
	if err != nil {
		return nil, err
	}
	return settingsToResponse(settings), nil
}

func (s *settingsService) UpdateSettings(req dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	settings, err := s.loadOrDefault()
	if err != nil {
		return nil, err
	}

	patch := model.SettingsPatch{
		GeminiAPIKey:    req.GeminiApiKey,
		GeminiConnected: req.GeminiConnected,
	}
	patch.Apply(settings)

	if err := s.repo.Save(settings); err != nil {
		log.Error().Err(err).Msg("Failed to save settings")
		return nil, err
	}
	s.scheduler.Schedule()
	return settingsToResponse(settings), nil
}

func (s *settingsService) loadOrDefault() (*model.AppSettings, error) {
	settings, err := s.repo.Get()
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			defaults := model.DefaultSettings()
			return &defaults, nil
		}
		return nil, err
	}
	return settings, nil
}

func settingsToResponse(settings *model.AppSettings) *dto.SettingsResponse {
	return &dto.SettingsResponse{
		GeminiApiKey:    settings.GeminiAPIKey,
		GeminiConnected: settings.GeminiConnected,
	}
}
