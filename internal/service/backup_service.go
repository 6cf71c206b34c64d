package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/ManishJangid007/hirely-sub000/internal/apperr"
	"github.com/ManishJangid007/hirely-sub000/internal/dto"
	"github.com/ManishJangid007/hirely-sub000/internal/model"
	"github.com/ManishJangid007/hirely-sub000/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// BackupService owns the reserved snapshot key: writing full-state
// snapshots, restoring from them, and moving them in and out of the
// application as export/import files.
type BackupService interface {
	// CreateBackup assembles a snapshot of everything and writes it to
	// the reserved flat key. Collections that fail to read are written
	// empty and flagged as degraded; a failed write of the snapshot
	// itself is an error.
	CreateBackup() (*dto.BackupStatusResponse, error)
	// GetBackupInfo reports on the stored snapshot without parsing more
	// than it has to. A corrupt snapshot reads as "no backup".
	GetBackupInfo() (*dto.BackupInfoResponse, error)
	// RestoreFromBackup replaces stored records with the snapshot's
	// contents in one transaction. A missing or unreadable snapshot is
	// not an error: the response just says nothing was restored.
	RestoreFromBackup() (*dto.RestoreResponse, error)
	// ClearAllData wipes every collection and every preference key but
	// leaves the reserved snapshot untouched, so a restore can undo it.
	ClearAllData() error
	ExportData() (*model.BackupSnapshot, error)
	// ImportData validates the uploaded file before touching anything,
	// then applies it like a restore. Current and legacy export layouts
	// are both accepted.
	ImportData(raw []byte) error
	ImportJobDescriptions(raw []byte) (*dto.ImportJobDescriptionsResponse, error)
	// VerifyBackupCompleteness lists the top-level fields the stored
	// snapshot lacks. Read-only.
	VerifyBackupCompleteness() (*dto.BackupCompletenessResponse, error)
}

type backupService struct {
	store repository.Store
}

func NewBackupService(store repository.Store) BackupService {
	return &backupService{store: store}
}

// collectionLoad carries one collection's read outcome out of the
// assembly goroutines.
type collectionLoad struct {
	name string
	err  error
}

// assembleSnapshot reads all collections in parallel plus the flat
// preferences, and reports whether anything had to be left empty.
func (s *backupService) assembleSnapshot() (*model.BackupSnapshot, bool) {
	snap := &model.BackupSnapshot{
		Candidates:        []model.Candidate{},
		QuestionTemplates: []model.QuestionTemplate{},
		Positions:         model.PositionNameList{},
		JobDescriptions:   []model.JobDescription{},
		InterviewResults:  []model.InterviewResult{},
		ThemeSettings:     &model.ThemeSettings{},
		AISettings:        &model.AppSettings{},
		LocalStorageData:  map[string]json.RawMessage{},
		ExportedAt:        time.Now().UTC().Format(time.RFC3339),
		Version:           model.SnapshotVersion,
	}

	// Each goroutine owns a distinct snapshot field.
	loads := make(chan collectionLoad, 6)
	var wg sync.WaitGroup
	wg.Add(6)
	go func() {
		defer wg.Done()
		candidates, err := s.store.Candidates().FindAll()
		if err == nil {
			snap.Candidates = candidates
		}
		loads <- collectionLoad{name: "candidates", err: err}
	}()
	go func() {
		defer wg.Done()
		templates, err := s.store.Templates().FindAll()
		if err == nil {
			snap.QuestionTemplates = templates
		}
		loads <- collectionLoad{name: "questionTemplates", err: err}
	}()
	go func() {
		defer wg.Done()
		positions, err := s.store.Positions().FindAll()
		if err == nil {
			snap.Positions = model.PositionNameList(model.PositionNames(positions))
		}
		loads <- collectionLoad{name: "positions", err: err}
	}()
	go func() {
		defer wg.Done()
		jds, err := s.store.JobDescriptions().FindAll()
		if err == nil {
			snap.JobDescriptions = jds
		}
		loads <- collectionLoad{name: "jobDescriptions", err: err}
	}()
	go func() {
		defer wg.Done()
		results, err := s.store.Results().FindAll()
		if err == nil {
			snap.InterviewResults = results
		}
		loads <- collectionLoad{name: "interviewResults", err: err}
	}()
	go func() {
		defer wg.Done()
		settings, err := s.store.Settings().Get()
		if err == nil {
			snap.AISettings = settings
		}
		loads <- collectionLoad{name: "aiSettings", err: err}
	}()
	wg.Wait()
	close(loads)

	degraded := false
	for load := range loads {
		// An empty collection is a normal state, not a degradation.
		if load.err != nil && !errors.Is(load.err, apperr.ErrNotFound) {
			degraded = true
			log.Warn().Err(load.err).Str("collection", load.name).
				Msg("Snapshot assembly: collection unreadable, writing it empty")
		}
	}

	flat := s.store.Flat()
	if theme, err := flat.Get(model.ThemeKey); err == nil {
		snap.ThemeSettings.Theme = theme
	} else if !errors.Is(err, apperr.ErrNotFound) {
		log.Warn().Err(err).Msg("Snapshot assembly: theme preference unreadable")
	}
	if accent, err := flat.Get(model.AccentColorKey); err == nil {
		snap.ThemeSettings.AccentColor = accent
	} else if !errors.Is(err, apperr.ErrNotFound) {
		log.Warn().Err(err).Msg("Snapshot assembly: accent color preference unreadable")
	}

	keys, err := flat.Keys()
	if err != nil {
		log.Warn().Err(err).Msg("Snapshot assembly: preference keys unreadable")
		return snap, degraded
	}
	for _, key := range keys {
		value, err := flat.Get(key)
		if err != nil {
			log.Warn().Err(err).Str("key", key).Msg("Snapshot assembly: preference unreadable, skipping")
			continue
		}
		snap.LocalStorageData[key] = model.EncodeFlatValue(value)
	}
	return snap, degraded
}

func (s *backupService) CreateBackup() (*dto.BackupStatusResponse, error) {
	snap, degraded := s.assembleSnapshot()

	raw, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := s.store.Flat().Set(model.BackupKey, string(raw)); err != nil {
		log.Error().Err(err).Msg("Failed to write backup snapshot")
		return nil, err
	}

	log.Info().Int("candidates", len(snap.Candidates)).Int("templates", len(snap.QuestionTemplates)).
		Bool("degraded", degraded).Msg("Backup snapshot written")
	return &dto.BackupStatusResponse{LastBackup: snap.ExportedAt, Degraded: degraded}, nil
}

func (s *backupService) GetBackupInfo() (*dto.BackupInfoResponse, error) {
	raw, err := s.store.Flat().Get(model.BackupKey)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return &dto.BackupInfoResponse{Exists: false}, nil
		}
		return nil, err
	}
	snap, err := model.DecodeSnapshot([]byte(raw))
	if err != nil {
		log.Warn().Err(err).Msg("Stored backup is unreadable, reporting no backup")
		return &dto.BackupInfoResponse{Exists: false}, nil
	}
	return &dto.BackupInfoResponse{Exists: true, LastBackup: &snap.ExportedAt}, nil
}

func (s *backupService) RestoreFromBackup() (*dto.RestoreResponse, error) {
	raw, err := s.store.Flat().Get(model.BackupKey)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return &dto.RestoreResponse{Restored: false, Message: "no backup found"}, nil
		}
		return nil, err
	}
	snap, err := model.DecodeSnapshot([]byte(raw))
	if err != nil {
		log.Warn().Err(err).Msg("Stored backup is unreadable, nothing restored")
		return &dto.RestoreResponse{Restored: false, Message: "stored backup is unreadable"}, nil
	}

	if err := s.applySnapshot(snap); err != nil {
		log.Error().Err(err).Msg("Restore failed, stored data left unchanged")
		return nil, err
	}
	s.applyFlatExtras(snap)

	log.Info().Str("exportedAt", snap.ExportedAt).Msg("Restore completed")
	return &dto.RestoreResponse{Restored: true}, nil
}

// applySnapshot replaces the record collections with the snapshot's
// contents. Everything runs in a single transaction: a failure on any
// row rolls the whole replacement back. The settings record is merged
// rather than replaced, so snapshots from before a settings field
// existed cannot blank it out.
func (s *backupService) applySnapshot(snap *model.BackupSnapshot) error {
	return s.store.InTransaction(func(tx repository.Store) error {
		if err := tx.Candidates().DeleteAll(); err != nil {
			return err
		}
		if err := tx.Templates().DeleteAll(); err != nil {
			return err
		}
		if err := tx.JobDescriptions().DeleteAll(); err != nil {
			return err
		}
		if err := tx.Results().DeleteAll(); err != nil {
			return err
		}

		for i := range snap.Candidates {
			candidate := snap.Candidates[i]
			if candidate.ID == "" {
				candidate.ID = uuid.NewString()
			}
			if candidate.Questions == nil {
				candidate.Questions = []model.Question{}
			}
			if !candidate.Status.Valid() {
				candidate.Status = model.StatusNotInterviewed
			}
			if err := tx.Candidates().Save(&candidate); err != nil {
				return fmt.Errorf("candidate %s: %w", candidate.ID, err)
			}
		}
		for i := range snap.QuestionTemplates {
			template := snap.QuestionTemplates[i]
			if template.ID == "" {
				template.ID = uuid.NewString()
			}
			if err := tx.Templates().Save(&template); err != nil {
				return fmt.Errorf("template %s: %w", template.ID, err)
			}
		}
		for i := range snap.JobDescriptions {
			jd := snap.JobDescriptions[i]
			if jd.ID == "" {
				jd.ID = uuid.NewString()
			}
			if err := tx.JobDescriptions().Save(&jd); err != nil {
				return fmt.Errorf("job description %s: %w", jd.ID, err)
			}
		}
		for i := range snap.InterviewResults {
			result := snap.InterviewResults[i]
			if result.ID == "" {
				result.ID = uuid.NewString()
			}
			if err := tx.Results().Save(&result); err != nil {
				return fmt.Errorf("interview result %s: %w", result.ID, err)
			}
		}

		if err := tx.Positions().ReplaceAll(model.PositionsFromNames(snap.Positions)); err != nil {
			return err
		}

		if snap.AISettings != nil {
			settings, err := tx.Settings().Get()
			if err != nil {
				if !errors.Is(err, apperr.ErrNotFound) {
					return err
				}
				defaults := model.DefaultSettings()
				settings = &defaults
			}
			settings.GeminiAPIKey = snap.AISettings.GeminiAPIKey
			settings.GeminiConnected = snap.AISettings.GeminiConnected
			if err := tx.Settings().Save(settings); err != nil {
				return err
			}
		}
		return nil
	})
}

// applyFlatExtras writes the snapshot's preference keys after the
// record transaction has committed. The flat store has no transaction
// shared with the record store, so these writes are best effort:
// failures are logged and the restore still counts as done.
func (s *backupService) applyFlatExtras(snap *model.BackupSnapshot) {
	flat := s.store.Flat()
	for key, value := range snap.LocalStorageData {
		if key == model.BackupKey {
			continue
		}
		if err := flat.Set(key, model.DecodeFlatValue(value)); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("Restore: preference write failed")
		}
	}
	if snap.ThemeSettings != nil {
		if snap.ThemeSettings.Theme != "" {
			if err := flat.Set(model.ThemeKey, snap.ThemeSettings.Theme); err != nil {
				log.Warn().Err(err).Msg("Restore: theme write failed")
			}
		}
		if snap.ThemeSettings.AccentColor != "" {
			if err := flat.Set(model.AccentColorKey, snap.ThemeSettings.AccentColor); err != nil {
				log.Warn().Err(err).Msg("Restore: accent color write failed")
			}
		}
	}
}

func (s *backupService) ClearAllData() error {
	err := s.store.InTransaction(func(tx repository.Store) error {
		if err := tx.Candidates().DeleteAll(); err != nil {
			return err
		}
		if err := tx.Templates().DeleteAll(); err != nil {
			return err
		}
		if err := tx.Positions().DeleteAll(); err != nil {
			return err
		}
		if err := tx.JobDescriptions().DeleteAll(); err != nil {
			return err
		}
		if err := tx.Results().DeleteAll(); err != nil {
			return err
		}
		return tx.Settings().Delete()
	})
	if err != nil {
		log.Error().Err(err).Msg("Clear all data failed")
		return err
	}

	if err := s.store.Flat().DeleteAllExcept(model.BackupKey); err != nil {
		log.Error().Err(err).Msg("Clear all data: preference wipe failed")
		return err
	}
	log.Info().Msg("All application data cleared, backup snapshot preserved")
	return nil
}

func (s *backupService) ExportData() (*model.BackupSnapshot, error) {
	snap, degraded := s.assembleSnapshot()
	if degraded {
		log.Warn().Msg("Export assembled with one or more collections empty")
	}
	return snap, nil
}

func (s *backupService) ImportData(raw []byte) error {
	if problems := model.ValidateImport(raw); len(problems) > 0 {
		return fmt.Errorf("%w: %s", apperr.ErrImportValidation, strings.Join(problems, "; "))
	}
	snap, err := model.DecodeSnapshot(raw)
	if err != nil {
		return fmt.Errorf("%w: %v", apperr.ErrImportValidation, err)
	}

	if snap.IsLegacy() {
		log.Info().Msg("Importing legacy-format export file")
	}
	if err := s.applySnapshot(snap); err != nil {
		log.Error().Err(err).Msg("Import failed, stored data left unchanged")
		return err
	}
	s.applyFlatExtras(snap)

	log.Info().Int("candidates", len(snap.Candidates)).Int("templates", len(snap.QuestionTemplates)).
		Bool("legacy", snap.IsLegacy()).Msg("Import completed")
	return nil
}

// jdImportEntry is one row of a job description import file.
type jdImportEntry struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ImportJobDescriptions loads a bare array of {title, description}
// rows, also accepting the wrapped {"jobDescriptions": [...]} form.
// Rows are inserted one at a time and failures skip just that row, so a
// bad entry in the middle costs only itself.
func (s *backupService) ImportJobDescriptions(raw []byte) (*dto.ImportJobDescriptionsResponse, error) {
	var entries []jdImportEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		var wrapper struct {
			JobDescriptions []jdImportEntry `json:"jobDescriptions"`
		}
		if err := json.Unmarshal(raw, &wrapper); err != nil || wrapper.JobDescriptions == nil {
			return nil, fmt.Errorf("%w: expected an array of {title, description}", apperr.ErrImportValidation)
		}
		entries = wrapper.JobDescriptions
	}

	resp := &dto.ImportJobDescriptionsResponse{}
	for i, entry := range entries {
		if entry.Title == "" {
			log.Warn().Int("index", i).Msg("Job description import: entry without title skipped")
			resp.Skipped++
			continue
		}
		jd := model.JobDescription{
			ID:          uuid.NewString(),
			Title:       entry.Title,
			Description: entry.Description,
		}
		if err := s.store.JobDescriptions().Create(&jd); err != nil {
			log.Warn().Err(err).Int("index", i).Str("title", entry.Title).
				Msg("Job description import: insert failed, entry skipped")
			resp.Skipped++
			continue
		}
		resp.Imported++
	}

	log.Info().Int("imported", resp.Imported).Int("skipped", resp.Skipped).Msg("Job description import finished")
	return resp, nil
}

func (s *backupService) VerifyBackupCompleteness() (*dto.BackupCompletenessResponse, error) {
	raw, err := s.store.Flat().Get(model.BackupKey)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return &dto.BackupCompletenessResponse{Exists: false, MissingFields: []string{}}, nil
		}
		return nil, err
	}
	missing, err := model.MissingSnapshotFields([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrBackupCorrupt, err)
	}
	if missing == nil {
		missing = []string{}
	}
	return &dto.BackupCompletenessResponse{
		Exists:        true,
		Complete:      len(missing) == 0,
		MissingFields: missing,
	}, nil
}
