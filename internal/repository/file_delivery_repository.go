package repository

import (
	"github.com/gcertilab/certilab-api/internal/model"
	"gorm.io/gorm"
)

type FileDeliveryRepository interface {
	Create(delivery *model.FileDelivery) error
	FindByID(id uint) (*model.FileDelivery, error)
	FindByFileID(fileID uint) ([]model.FileDelivery, error)
	FindByWorkerID(workerID uint) ([]model.FileDelivery, error)
	Update(delivery *model.FileDelivery) error
	Delete(id uint) error
}

type fileDeliveryRepository struct {
	db *gorm.DB
}

func NewFileDeliveryRepository(db *gorm.DB) FileDeliveryRepository {
	return &fileDeliveryRepository{db: db}
}

func (r *fileDeliveryRepository) Create(delivery *model.FileDelivery) error {
	return r.db.Create(delivery).Error
}

func (r *fileDeliveryRepository) FindByID(id uint) (*model.FileDelivery, error) {
	var delivery model.FileDelivery
	if err := r.db.First(&delivery, id).Error; err != nil {
		return nil, err
	}
	return &delivery, nil
}

func (r *fileDeliveryRepository) FindByFileID(fileID uint) ([]model.FileDelivery, error) {
	var deliveries []model.FileDelivery
	if err := r.db.Preload("Worker").Where("class_file_id = ?", fileID).Find(&deliveries).Error; err != nil {
		return nil, err
	}
	return deliveries, nil
}

func (r *fileDeliveryRepository) FindByWorkerID(workerID uint) ([]model.FileDelivery, error) {
	var deliveries []model.FileDelivery
	if err := r.db.Preload("ClassFile").Where("worker_id = ?", workerID).Find(&deliveries).Error; err != nil {
		return nil, err
	}
	return deliveries, nil
}

func (r *fileDeliveryRepository) Update(delivery *model.FileDelivery) error {
	return r.db.Save(delivery).Error
}

func (r *fileDeliveryRepository) Delete(id uint) error {
	return r.db.Delete(&model.FileDelivery{}, id).Error
}
