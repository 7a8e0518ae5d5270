package repository

import (
	"github.com/gcertilab/certilab-api/internal/model"
	"gorm.io/gorm"
)

type PeriodRepository interface {
	Create(period *model.Period) error
	FindByID(id uint) (*model.Period, error)
	FindAll() ([]model.Period, error)
	FindByCompanyID(companyID uint) ([]model.Period, error)
	Update(period *model.Period) error
	Delete(id uint) error
}

type periodRepository struct {
	db *gorm.DB
}

func NewPeriodRepository(db *gorm.DB) PeriodRepository {
	return &periodRepository{db: db}
}

func (r *periodRepository) Create(period *model.Period) error {
	return r.db.Create(period).Error
}

func (r *periodRepository) FindByID(id uint) (*model.Period, error) {
	var period model.Period
	if err := r.db.First(&period, id).Error; err != nil {
		return nil, err
	}
	return &period, nil
}

func (r *periodRepository) FindAll() ([]model.Period, error) {
	var periods []model.Period
	if err := r.db.Order("created_at DESC").Find(&periods).Error; err != nil {
		return nil, err
	}
	return periods, nil
}

func (r *periodRepository) FindByCompanyID(companyID uint) ([]model.Period, error) {
	var periods []model.Period
	if err := r.db.Where("company_id = ?", companyID).Order("created_at DESC").Find(&periods).Error; err != nil {
		return nil, err
	}
	return periods, nil
}

func (r *periodRepository) Update(period *model.Period) error {
	return r.db.Save(period).Error
}

func (r *periodRepository) Delete(id uint) error {
	return r.db.Delete(&model.Period{}, id).Error
}
