package repository

import (
	"github.com/gcertilab/certilab-api/internal/model"
	"gorm.io/gorm"
)

type ExamAttemptRepository interface {
	// Create inserts the attempt and its frozen question rows in one
	// transaction; a partially created attempt must never be readable.
	Create(attempt *model.ExamAttempt) error
	Update(attempt *model.ExamAttempt) error
	SaveQuestion(question *model.ExamAttemptQuestion) error
	FindByID(id uint) (*model.ExamAttempt, error)
	FindByIDWithQuestions(id uint) (*model.ExamAttempt, error)
	FindLatestByEnrollment(enrollmentID uint) (*model.ExamAttempt, error)
	CountByEnrollment(enrollmentID uint) (int, error)
	FindAll() ([]model.ExamAttempt, error)
	FindApprovedWithoutCertificate() ([]model.ExamAttempt, error)
	Delete(id uint) error
}

type examAttemptRepository struct {
	db *gorm.DB
}

func NewExamAttemptRepository(db *gorm.DB) ExamAttemptRepository {
	return &examAttemptRepository{db: db}
}

func (r *examAttemptRepository) Create(attempt *model.ExamAttempt) error {
	// gorm wraps the attempt and its associated question rows in a single
	// transaction, so creation is atomic.
	return r.db.Create(attempt).Error
}

func (r *examAttemptRepository) Update(attempt *model.ExamAttempt) error {
	return r.db.Save(attempt).Error
}

func (r *examAttemptRepository) SaveQuestion(question *model.ExamAttemptQuestion) error {
	return r.db.Save(question).Error
}

func (r *examAttemptRepository) FindByID(id uint) (*model.ExamAttempt, error) {
	var attempt model.ExamAttempt
	if err := r.db.First(&attempt, id).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *examAttemptRepository) FindByIDWithQuestions(id uint) (*model.ExamAttempt, error) {
	var attempt model.ExamAttempt
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("exam_attempt_questions.id ASC")
		}).
		First(&attempt, id).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *examAttemptRepository) FindLatestByEnrollment(enrollmentID uint) (*model.ExamAttempt, error) {
	var attempt model.ExamAttempt
	err := r.db.Where("enrollment_id = ?", enrollmentID).Order("attempt_number DESC").First(&attempt).Error
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

func (r *examAttemptRepository) CountByEnrollment(enrollmentID uint) (int, error) {
	var count int64
	err := r.db.Model(&model.ExamAttempt{}).Where("enrollment_id = ?", enrollmentID).Count(&count).Error
	return int(count), err
}

func (r *examAttemptRepository) FindAll() ([]model.ExamAttempt, error) {
	var attempts []model.ExamAttempt
	if err := r.db.Order("taken_at DESC").Find(&attempts).Error; err != nil {
		return nil, err
	}
	return attempts, nil
}

// FindApprovedWithoutCertificate feeds the certificate retry job.
func (r *examAttemptRepository) FindApprovedWithoutCertificate() ([]model.ExamAttempt, error) {
	var attempts []model.ExamAttempt
	err := r.db.
		Preload("Enrollment.Class").
		Preload("Enrollment.Worker").
		Where("outcome = ? AND certificate_url IS NULL", model.OutcomeApproved).
		Find(&attempts).Error
	if err != nil {
		return nil, err
	}
	return attempts, nil
}

func (r *examAttemptRepository) Delete(id uint) error {
	return r.db.Delete(&model.ExamAttempt{}, id).Error
}
