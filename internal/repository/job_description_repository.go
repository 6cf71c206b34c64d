package repository

import (
	"github.com/ManishJangid007/hirely-sub000/internal/model"
	"gorm.io/gorm/clause"
)

type JobDescriptionRepository interface {
	Create(jd *model.JobDescription) error
	Save(jd *model.JobDescription) error
	FindByID(id string) (*model.JobDescription, error)
	FindAll() ([]model.JobDescription, error)
	Delete(id string) error
	DeleteAll() error
}

type jobDescriptionRepository struct {
	conn Conn
}

func NewJobDescriptionRepository(conn Conn) JobDescriptionRepository {
	return &jobDescriptionRepository{conn: conn}
}

func (r *jobDescriptionRepository) Create(jd *model.JobDescription) error {
	db, err := r.conn.Gorm()
	if err != nil {
		return err
	}
	return translate(db.Create(jd).Error)
}

func (r *jobDescriptionRepository) Save(jd *model.JobDescription) error {
	db, err := r.conn.Gorm()
	if err != nil {
		return err
	}
	return translate(db.Clauses(clause.OnConflict{UpdateAll: true}).Create(jd).Error)
}

func (r *jobDescriptionRepository) FindByID(id string) (*model.JobDescription, error) {
	db, err := r.conn.Gorm()
	if err != nil {
		return nil, err
	}
	var jd model.JobDescription
	if err := db.First(&jd, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &jd, nil
}

func (r *jobDescriptionRepository) FindAll() ([]model.JobDescription, error) {
	db, err := r.conn.Gorm()
	if err != nil {
		return nil, err
	}
	var jds []model.JobDescription
	if err := db.Order("created_at ASC").Find(&jds).Error; err != nil {
		return nil, translate(err)
	}
	return jds, nil
}

func (r *jobDescriptionRepository) Delete(id string) error {
	db, err := r.conn.Gorm()
	if err != nil {
		return err
	}
	return translate(db.Delete(&model.JobDescription{}, "id = ?", id).Error)
}

func (r *jobDescriptionRepository) DeleteAll() error {
	db, err := r.conn.Gorm()
	if err != nil {
		return err
	}
	return translate(db.Where("1 = 1").Delete(&model.JobDescription{}).Error)
}
