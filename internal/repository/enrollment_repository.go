package repository

import (
	"github.com/gcertilab/certilab-api/internal/model"
	"gorm.io/gorm"
)

type EnrollmentRepository interface {
	Create(enrollment *model.Enrollment) error
	FindByID(id uint) (*model.Enrollment, error)
	FindByIDWithClassAndWorker(id uint) (*model.Enrollment, error)
	FindByClassID(classID uint) ([]model.Enrollment, error)
	FindByWorkerID(workerID uint) ([]model.Enrollment, error)
	HasActiveEnrollment(workerID uint) (bool, error)
	Update(enrollment *model.Enrollment) error
	Delete(id uint) error
}

type enrollmentRepository struct {
	db *gorm.DB
}

func NewEnrollmentRepository(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

func (r *enrollmentRepository) Create(enrollment *model.Enrollment) error {
	return r.db.Create(enrollment).Error
}

func (r *enrollmentRepository) FindByID(id uint) (*model.Enrollment, error) {
	var enrollment model.Enrollment
	if err := r.db.First(&enrollment, id).Error; err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (r *enrollmentRepository) FindByIDWithClassAndWorker(id uint) (*model.Enrollment, error) {
	var enrollment model.Enrollment
	if err := r.db.Preload("Class").Preload("Worker").First(&enrollment, id).Error; err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (r *enrollmentRepository) FindByClassID(classID uint) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	if err := r.db.Preload("Worker").Where("class_id = ?", classID).Find(&enrollments).Error; err != nil {
		return nil, err
	}
	return enrollments, nil
}

func (r *enrollmentRepository) FindByWorkerID(workerID uint) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	if err := r.db.Preload("Class").Where("worker_id = ?", workerID).Find(&enrollments).Error; err != nil {
		return nil, err
	}
	return enrollments, nil
}

// HasActiveEnrollment reports whether the worker is enrolled in at least one
// class whose period is currently active. Worker logins are rejected without
// one.
func (r *enrollmentRepository) HasActiveEnrollment(workerID uint) (bool, error) {
	var count int64
	err := r.db.Model(&model.Enrollment{}).
		Joins("JOIN classes ON classes.id = enrollments.class_id").
		Joins("JOIN periods ON periods.id = classes.period_id").
		Where("enrollments.worker_id = ? AND periods.active = ?", workerID, true).
		Count(&count).Error
	return count > 0, err
}

func (r *enrollmentRepository) Update(enrollment *model.Enrollment) error {
	return r.db.Save(enrollment).Error
}

func (r *enrollmentRepository) Delete(id uint) error {
	return r.db.Delete(&model.Enrollment{}, id).Error
}
