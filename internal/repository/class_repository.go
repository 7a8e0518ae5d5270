package repository

import (
	"github.com/gcertilab/certilab-api/internal/model"
	"gorm.io/gorm"
)

type ClassRepository interface {
	Create(class *model.Class) error
	FindByID(id uint) (*model.Class, error)
	FindByIDWithPeriod(id uint) (*model.Class, error)
	FindAll() ([]model.Class, error)
	FindByPeriodID(periodID uint) ([]model.Class, error)
	FindByPeriodIDAndType(periodID uint, classType string) ([]model.Class, error)
	Update(class *model.Class) error
	Delete(id uint) error
}

type classRepository struct {
	db *gorm.DB
}

func NewClassRepository(db *gorm.DB) ClassRepository {
	return &classRepository{db: db}
}

func (r *classRepository) Create(class *model.Class) error {
	return r.db.Create(class).Error
}

func (r *classRepository) FindByID(id uint) (*model.Class, error) {
	var class model.Class
	if err := r.db.First(&class, id).Error; err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *classRepository) FindByIDWithPeriod(id uint) (*model.Class, error) {
	var class model.Class
	if err := r.db.Preload("Period").First(&class, id).Error; err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *classRepository) FindAll() ([]model.Class, error) {
	var classes []model.Class
	if err := r.db.Order("created_at DESC").Find(&classes).Error; err != nil {
		return nil, err
	}
	return classes, nil
}

func (r *classRepository) FindByPeriodID(periodID uint) ([]model.Class, error) {
	var classes []model.Class
	if err := r.db.Where("period_id = ?", periodID).Order("start_date ASC").Find(&classes).Error; err != nil {
		return nil, err
	}
	return classes, nil
}

func (r *classRepository) FindByPeriodIDAndType(periodID uint, classType string) ([]model.Class, error) {
	var classes []model.Class
	if err := r.db.Where("period_id = ? AND type = ?", periodID, classType).Order("start_date ASC").Find(&classes).Error; err != nil {
		return nil, err
	}
	return classes, nil
}

func (r *classRepository) Update(class *model.Class) error {
	return r.db.Save(class).Error
}

func (r *classRepository) Delete(id uint) error {
	return r.db.Delete(&model.Class{}, id).Error
}
