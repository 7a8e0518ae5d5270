package service

import (
	"errors"
	"fmt"

	"github.com/gcertilab/certilab-api/internal/dto"
	"github.com/gcertilab/certilab-api/internal/model"
	"github.com/gcertilab/certilab-api/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type EnrollmentService interface {
	Create(req dto.EnrollmentRequest) (*model.Enrollment, error)
	Get(id uint) (*model.Enrollment, error)
	ListByClass(classID uint) ([]model.Enrollment, error)
	ListByWorker(workerID uint) ([]model.Enrollment, error)
	Update(id uint, req dto.EnrollmentRequest) (*model.Enrollment, error)
	Delete(id uint) error
}

type enrollmentService struct {
	enrollmentRepo repository.EnrollmentRepository
	classRepo      repository.ClassRepository
	workerRepo     repository.WorkerRepository
}

func NewEnrollmentService(enrollmentRepo repository.EnrollmentRepository, classRepo repository.ClassRepository, workerRepo repository.WorkerRepository) EnrollmentService {
	return &enrollmentService{enrollmentRepo: enrollmentRepo, classRepo: classRepo, workerRepo: workerRepo}
}

func (s *enrollmentService) Create(req dto.EnrollmentRequest) (*model.Enrollment, error) {
	if _, err := s.classRepo.FindByID(req.ClassID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("class %d: %w", req.ClassID, ErrNotFound)
		}
		return nil, fmt.Errorf("loading class %d: %w", req.ClassID, err)
	}
	if _, err := s.workerRepo.FindByID(req.WorkerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("worker %d: %w", req.WorkerID, ErrNotFound)
		}
		return nil, fmt.Errorf("loading worker %d: %w", req.WorkerID, err)
	}

	var enrollment model.Enrollment
	if err := copier.Copy(&enrollment, &req); err != nil {
		return nil, fmt.Errorf("mapping enrollment request: %w", err)
	}
	if err := s.enrollmentRepo.Create(&enrollment); err != nil {
		return nil, fmt.Errorf("creating enrollment: %w", err)
	}

	log.Info().Uint("enrollmentID", enrollment.ID).Uint("classID", req.ClassID).Uint("workerID", req.WorkerID).Msg("Worker enrolled")
	return &enrollment, nil
}

func (s *enrollmentService) Get(id uint) (*model.Enrollment, error) {
	enrollment, err := s.enrollmentRepo.FindByIDWithClassAndWorker(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("enrollment %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("loading enrollment %d: %w", id, err)
	}
	return enrollment, nil
}

func (s *enrollmentService) ListByClass(classID uint) ([]model.Enrollment, error) {
	enrollments, err := s.enrollmentRepo.FindByClassID(classID)
	if err != nil {
		return nil, fmt.Errorf("listing enrollments of class %d: %w", classID, err)
	}
	return enrollments, nil
}

func (s *enrollmentService) ListByWorker(workerID uint) ([]model.Enrollment, error) {
	enrollments, err := s.enrollmentRepo.FindByWorkerID(workerID)
	if err != nil {
		return nil, fmt.Errorf("listing enrollments of worker %d: %w", workerID, err)
	}
	return enrollments, nil
}

func (s *enrollmentService) Update(id uint, req dto.EnrollmentRequest) (*model.Enrollment, error) {
	enrollment, err := s.enrollmentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("enrollment %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("loading enrollment %d: %w", id, err)
	}
	if err := copier.Copy(enrollment, &req); err != nil {
		return nil, fmt.Errorf("mapping enrollment request: %w", err)
	}
	if err := s.enrollmentRepo.Update(enrollment); err != nil {
		return nil, fmt.Errorf("updating enrollment %d: %w", id, err)
	}
	return enrollment, nil
}

func (s *enrollmentService) Delete(id uint) error {
	if _, err := s.enrollmentRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("enrollment %d: %w", id, ErrNotFound)
		}
		return fmt.Errorf("loading enrollment %d: %w", id, err)
	}
	if err := s.enrollmentRepo.Delete(id); err != nil {
		return fmt.Errorf("deleting enrollment %d: %w", id, err)
	}
	return nil
}
