package database

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ManishJangid007/hirely-sub000/internal/model"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// schemaInfo is the single-row bookkeeping table recording which
// versioned migrations have already run.
type schemaInfo struct {
	ID        int `gorm:"primarykey"`
	Version   int `gorm:"not null"`
	UpdatedAt time.Time
}

func (schemaInfo) TableName() string { return "schema_info" }

type migration struct {
	version int
	name    string
	run     func(tx *gorm.DB) error
}

// Migrations are additive only: new tables, new columns, backfills.
// Nothing here may drop or rewrite data that an older build could still
// be reading.
var migrations = []migration{
	{version: 1, name: "baseline collections", run: func(tx *gorm.DB) error {
		// Tables and indexes come from AutoMigrate; the step just
		// brings pre-versioning databases under version tracking.
		return nil
	}},
	{version: 2, name: "adopt legacy candidate question keys", run: migrateCandidateQuestions},
	{version: 3, name: "backfill candidate status", run: migrateCandidateStatus},
}

// Migrate creates any missing tables and columns, then applies the
// pending versioned steps in order. Each step runs in its own
// transaction together with the schema_info bump, so a crash leaves the
// database on a consistent version.
func (d *Database) Migrate(ctx context.Context) error {
	db, err := d.Gorm()
	if err != nil {
		return err
	}
	db = db.WithContext(ctx)

	log.Info().Msg("Running database migrations...")
	if err := db.AutoMigrate(
		&schemaInfo{},
		&model.Candidate{},
		&model.QuestionTemplate{},
		&model.Position{},
		&model.JobDescription{},
		&model.InterviewResult{},
		&model.AppSettings{},
		&model.FlatEntry{},
	); err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}

	var info schemaInfo
	if err := db.Where(schemaInfo{ID: 1}).FirstOrCreate(&info).Error; err != nil {
		return err
	}

	for _, m := range migrations {
		if m.version <= info.Version {
			continue
		}
		step := m
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := step.run(tx); err != nil {
				return err
			}
			return tx.Model(&schemaInfo{}).Where("id = ?", 1).
				Updates(map[string]interface{}{"version": step.version, "updated_at": time.Now()}).Error
		})
		if err != nil {
			log.Error().Err(err).Int("version", step.version).Str("step", step.name).Msg("Migration step failed")
			return err
		}
		info.Version = step.version
		log.Info().Int("version", step.version).Str("step", step.name).Msg("Migration step applied")
	}

	log.Info().Int("schema_version", info.Version).Msg("Database migration completed successfully")
	return nil
}

// migrateCandidateQuestions moves question lists that older builds kept
// under per-candidate flat keys onto the candidate rows themselves.
// Candidates without a legacy key get an empty list. The flat keys stay
// behind untouched for anything still reading them.
func migrateCandidateQuestions(tx *gorm.DB) error {
	var candidates []model.Candidate
	if err := tx.Where("questions IS NULL").Find(&candidates).Error; err != nil {
		return err
	}
	for i := range candidates {
		questions := []model.Question{}
		var entry model.FlatEntry
		err := tx.First(&entry, "key = ?", model.CandidateQuestionsPrefix+candidates[i].ID).Error
		if err == nil {
			if jsonErr := json.Unmarshal([]byte(entry.Value), &questions); jsonErr != nil {
				log.Warn().Str("candidate_id", candidates[i].ID).Err(jsonErr).
					Msg("Legacy question key unreadable, starting candidate with empty list")
				questions = []model.Question{}
			}
		}
		candidates[i].Questions = questions
		if err := tx.Save(&candidates[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

// migrateCandidateStatus gives rows from before the pipeline-status
// column their implicit default.
func migrateCandidateStatus(tx *gorm.DB) error {
	return tx.Model(&model.Candidate{}).
		Where("status IS NULL OR status = ?", "").
		Update("status", string(model.StatusNotInterviewed)).Error
}
