package repository

import (
	"github.com/ManishJangid007/hirely-sub000/internal/model"
	"gorm.io/gorm/clause"
)

// FlatRepository is the schemaless key/value side store. The reserved
// backup key lives here alongside user preferences, so enumeration
// always leaves it out; callers address it explicitly via model.BackupKey.
type FlatRepository interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
	// Keys lists every stored key except the reserved backup key, in
	// stable order.
	Keys() ([]string, error)
	// DeleteAllExcept removes every entry whose key is not listed.
	DeleteAllExcept(keep ...string) error
}

type flatRepository struct {
	conn Conn
}

func NewFlatRepository(conn Conn) FlatRepository {
	return &flatRepository{conn: conn}
}

func (r *flatRepository) Get(key string) (string, error) {
	db, err := r.conn.Gorm()
	if err != nil {
		return "", err
	}
	var entry model.FlatEntry
	if err := db.First(&entry, "key = ?", key).Error; err != nil {
		return "", translate(err)
	}
	return entry.Value, nil
}

func (r *flatRepository) Set(key, value string) error {
	db, err := r.conn.Gorm()
	if err != nil {
		return err
	}
	entry := model.FlatEntry{Key: key, Value: value}
	return translate(db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&entry).Error)
}

func (r *flatRepository) Delete(key string) error {
	db, err := r.conn.Gorm()
	if err != nil {
		return err
	}
	return translate(db.Delete(&model.FlatEntry{}, "key = ?", key).Error)
}

func (r *flatRepository) Keys() ([]string, error) {
	db, err := r.conn.Gorm()
	if err != nil {
		return nil, err
	}
	var keys []string
	err = db.Model(&model.FlatEntry{}).
		Where("key <> ?", model.BackupKey).
		Order("key ASC").
		Pluck("key", &keys).Error
	if err != nil {
		return nil, translate(err)
	}
	return keys, nil
}

func (r *flatRepository) DeleteAllExcept(keep ...string) error {
	db, err := r.conn.Gorm()
	if err != nil {
		return err
	}
	q := db.Model(&model.FlatEntry{})
	if len(keep) > 0 {
		q = q.Where("key NOT IN ?", keep)
	} else {
		q = q.Where("1 = 1")
	}
	return translate(q.Delete(&model.FlatEntry{}).Error)
}
