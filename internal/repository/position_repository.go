package repository

import (
	"github.com/ManishJangid007/hirely-sub000/internal/model"
	"gorm.io/gorm"
)

type PositionRepository interface {
	FindAll() ([]model.Position, error)
	Create(position *model.Position) error
	// ReplaceAll swaps the entire position list in one transaction, so
	// readers never observe a half-replaced set.
	ReplaceAll(positions []model.Position) error
	DeleteAll() error
}

type positionRepository struct {
	conn Conn
}

func NewPositionRepository(conn Conn) PositionRepository {
	return &positionRepository{conn: conn}
}

func (r *positionRepository) FindAll() ([]model.Position, error) {
	db, err := r.conn.Gorm()
	if err != nil {
		return nil, err
	}
	var positions []model.Position
	if err := db.Order("id ASC").Find(&positions).Error; err != nil {
		return nil, translate(err)
	}
	return positions, nil
}

func (r *positionRepository) Create(position *model.Position) error {
	db, err := r.conn.Gorm()
	if err != nil {
		return err
	}
	return translate(db.Create(position).Error)
}

func (r *positionRepository) ReplaceAll(positions []model.Position) error {
	db, err := r.conn.Gorm()
	if err != nil {
		return err
	}
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.Position{}).Error; err != nil {
			return translate(err)
		}
		if len(positions) == 0 {
			return nil
		}
		return translate(tx.Create(&positions).Error)
	})
}

func (r *positionRepository) DeleteAll() error {
	db, err := r.conn.Gorm()
	if err != nil {
		return err
	}
	return translate(db.Where("1 = 1").Delete(&model.Position{}).Error)
}
