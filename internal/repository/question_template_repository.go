package repository

import (
	"github.com/ManishJangid007/hirely-sub000/internal/model"
	"gorm.io/gorm/clause"
)

type QuestionTemplateRepository interface {
	Create(template *model.QuestionTemplate) error
	Save(template *model.QuestionTemplate) error
	FindByID(id string) (*model.QuestionTemplate, error)
	FindAll() ([]model.QuestionTemplate, error)
	Delete(id string) error
	DeleteAll() error
}

type questionTemplateRepository struct {
	conn Conn
}

func NewQuestionTemplateRepository(conn Conn) QuestionTemplateRepository {
	return &questionTemplateRepository{conn: conn}
}

func (r *questionTemplateRepository) Create(template *model.QuestionTemplate) error {
	db, err := r.conn.Gorm()
	if err != nil {
		return err
	}
	return translate(db.Create(template).Error)
}

func (r *questionTemplateRepository) Save(template *model.QuestionTemplate) error {
	db, err := r.conn.Gorm()
	if err != nil {
		return err
	}
	return translate(db.Clauses(clause.OnConflict{UpdateAll: true}).Create(template).Error)
}

func (r *questionTemplateRepository) FindByID(id string) (*model.QuestionTemplate, error) {
	db, err := r.conn.Gorm()
	if err != nil {
		return nil, err
	}
	var template model.QuestionTemplate
	if err := db.First(&template, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &template, nil
}

func (r *questionTemplateRepository) FindAll() ([]model.QuestionTemplate, error) {
	db, err := r.conn.Gorm()
	if err != nil {
		return nil, err
	}
	var templates []model.QuestionTemplate
	if err := db.Order("created_at ASC").Find(&templates).Error; err != nil {
		return nil, translate(err)
	}
	return templates, nil
}

func (r *questionTemplateRepository) Delete(id string) error {
	db, err := r.conn.Gorm()
	if err != nil {
		return err
	}
	return translate(db.Delete(&model.QuestionTemplate{}, "id = ?", id).Error)
}

func (r *questionTemplateRepository) DeleteAll() error {
	db, err := r.conn.Gorm()
	if err != nil {
		return err
	}
	return translate(db.Where("1 = 1").Delete(&model.QuestionTemplate{}).Error)
}
