package repository

import (
	"github.com/gcertilab/certilab-api/internal/model"
	"gorm.io/gorm"
)

type WorkerRepository interface {
	Create(worker *model.Worker) error
	FindByID(id uint) (*model.Worker, error)
	FindByDNI(dni string) (*model.Worker, error)
	FindByCompanyID(companyID uint) ([]model.Worker, error)
	Update(worker *model.Worker) error
	Delete(id uint) error
}

type workerRepository struct {
	db *gorm.DB
}

func NewWorkerRepository(db *gorm.DB) WorkerRepository {
	return &workerRepository{db: db}
}

func (r *workerRepository) Create(worker *model.Worker) error {
	return r.db.Create(worker).Error
}

func (r *workerRepository) FindByID(id uint) (*model.Worker, error) {
	var worker model.Worker
	if err := r.db.First(&worker, id).Error; err != nil {
		return nil, err
	}
	return &worker, nil
}

func (r *workerRepository) FindByDNI(dni string) (*model.Worker, error) {
	var worker model.Worker
	if err := r.db.Where("dni = ?", dni).First(&worker).Error; err != nil {
		return nil, err
	}
	return &worker, nil
}

func (r *workerRepository) FindByCompanyID(companyID uint) ([]model.Worker, error) {
	var workers []model.Worker
	if err := r.db.Where("company_id = ?", companyID).Order("last_name ASC, first_name ASC").Find(&workers).Error; err != nil {
		return nil, err
	}
	return workers, nil
}

func (r *workerRepository) Update(worker *model.Worker) error {
	return r.db.Save(worker).Error
}

func (r *workerRepository) Delete(id uint) error {
	return r.db.Delete(&model.Worker{}, id).Error
}
