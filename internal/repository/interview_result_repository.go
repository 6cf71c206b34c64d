package repository

import (
	"github.com/ManishJangid007/hirely-sub000/internal/model"
	"gorm.io/gorm/clause"
)

type InterviewResultRepository interface {
	Create(result *model.InterviewResult) error
	Save(result *model.InterviewResult) error
	FindByID(id string) (*model.InterviewResult, error)
	// FindByCandidateID returns the candidate's single result, or
	// ErrNotFound when the candidate has never been concluded.
	FindByCandidateID(candidateID string) (*model.InterviewResult, error)
	FindAll() ([]model.InterviewResult, error)
	Delete(id string) error
	DeleteByCandidateID(candidateID string) error
	DeleteAll() error
}

type interviewResultRepository struct {
	conn Conn
}

func NewInterviewResultRepository(conn Conn) InterviewResultRepository {
	return &interviewResultRepository{conn: conn}
}

func (r *interviewResultRepository) Create(result *model.InterviewResult) error {
	db, err := r.conn.Gorm()
	if err != nil {
		return err
	}
	return translate(db.Create(result).Error)
}

func (r *interviewResultRepository) Save(result *model.InterviewResult) error {
	db, err := r.conn.Gorm()
	if err != nil {
		return err
	}
	return translate(db.Clauses(clause.OnConflict{UpdateAll: true}).Create(result).Error)
}

func (r *interviewResultRepository) FindByID(id string) (*model.InterviewResult, error) {
	db, err := r.conn.Gorm()
	if err != nil {
		return nil, err
	}
	var result model.InterviewResult
	if err := db.First(&result, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &result, nil
}

func (r *interviewResultRepository) FindByCandidateID(candidateID string) (*model.InterviewResult, error) {
	db, err := r.conn.Gorm()
	if err != nil {
		return nil, err
	}
	var result model.InterviewResult
	if err := db.First(&result, "candidate_id = ?", candidateID).Error; err != nil {
		return nil, translate(err)
	}
	return &result, nil
}

func (r *interviewResultRepository) FindAll() ([]model.InterviewResult, error) {
	db, err := r.conn.Gorm()
	if err != nil {
		return nil, err
	}
	var results []model.InterviewResult
	if err := db.Order("created_at ASC").Find(&results).Error; err != nil {
		return nil, translate(err)
	}
	return results, nil
}

func (r *interviewResultRepository) Delete(id string) error {
	db, err := r.conn.Gorm()
	if err != nil {
		return err
	}
	return translate(db.Delete(&model.InterviewResult{}, "id = ?", id).Error)
}

func (r *interviewResultRepository) DeleteByCandidateID(candidateID string) error {
	db, err := r.conn.Gorm()
	if err != nil {
		return err
	}
	return translate(db.Delete(&model.InterviewResult{}, "candidate_id = ?", candidateID).Error)
}

func (r *interviewResultRepository) DeleteAll() error {
	db, err := r.conn.Gorm()
	if err != nil {
		return err
	}
	return translate(db.Where("1 = 1").Delete(&model.InterviewResult{}).Error)
}
