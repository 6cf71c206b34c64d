package repository

import (
	"errors"

	"github.com/ManishJangid007/hirely-sub000/internal/apperr"
	"github.com/ManishJangid007/hirely-sub000/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CandidateRepository interface {
	Create(candidate *model.Candidate) error
	Save(candidate *model.Candidate) error
	FindByID(id string) (*model.Candidate, error)
	FindAll() ([]model.Candidate, error)
	Delete(id string) error
	DeleteAll() error
}

type candidateRepository struct {
	conn Conn
}

func NewCandidateRepository(conn Conn) CandidateRepository {
	return &candidateRepository{conn: conn}
}

func (r *candidateRepository) Create(candidate *model.Candidate) error {
	db, err := r.conn.Gorm()
	if err != nil {
		return err
	}
	return translate(db.Create(candidate).Error)
}

// Save writes the full record, inserting when the id is new.
func (r *candidateRepository) Save(candidate *model.Candidate) error {
	db, err := r.conn.Gorm()
	if err != nil {
		return err
	}
	return translate(db.Clauses(clause.OnConflict{UpdateAll: true}).Create(candidate).Error)
}

func (r *candidateRepository) FindByID(id string) (*model.Candidate, error) {
	db, err := r.conn.Gorm()
	if err != nil {
		return nil, err
	}
	var candidate model.Candidate
	if err := db.First(&candidate, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &candidate, nil
}

func (r *candidateRepository) FindAll() ([]model.Candidate, error) {
	db, err := r.conn.Gorm()
	if err != nil {
		return nil, err
	}
	var candidates []model.Candidate
	if err := db.Order("created_at ASC").Find(&candidates).Error; err != nil {
		return nil, translate(err)
	}
	return candidates, nil
}

// Delete is a no-op for ids that are already gone.
func (r *candidateRepository) Delete(id string) error {
	db, err := r.conn.Gorm()
	if err != nil {
		return err
	}
	err = db.Delete(&model.Candidate{}, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, apperr.ErrNotFound) {
		return nil
	}
	return translate(err)
}

func (r *candidateRepository) DeleteAll() error {
	db, err := r.conn.Gorm()
	if err != nil {
		return err
	}
	return translate(db.Where("1 = 1").Delete(&model.Candidate{}).Error)
}
