package repository

import (
	"github.com/ManishJangid007/hirely-sub000/internal/model"
	"gorm.io/gorm/clause"
)

type SettingsRepository interface {
	// Get returns the singleton settings row, or ErrNotFound before the
	// first save.
	Get() (*model.AppSettings, error)
	Save(settings *model.AppSettings) error
	Delete() error
}

type settingsRepository struct {
	conn Conn
}

func NewSettingsRepository(conn Conn) SettingsRepository {
	return &settingsRepository{conn: conn}
}

func (r *settingsRepository) Get() (*model.AppSettings, error) {
	db, err := r.conn.Gorm()
	if err != nil {
		return nil, err
	}
	var settings model.AppSettings
	if err := db.First(&settings, "id = ?", model.SettingsID).Error; err != nil {
		return nil, translate(err)
	}
	return &settings, nil
}

func (r *settingsRepository) Save(settings *model.AppSettings) error {
	db, err := r.conn.Gorm()
	if err != nil {
		return err
	}
	settings.ID = model.SettingsID
	return translate(db.Clauses(clause.OnConflict{UpdateAll: true}).Create(settings).Error)
}

func (r *settingsRepository) Delete() error {
	db, err := r.conn.Gorm()
	if err != nil {
		return err
	}
	return translate(db.Delete(&model.AppSettings{}, "id = ?", model.SettingsID).Error)
}
