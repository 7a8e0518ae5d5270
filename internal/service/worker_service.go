package service

import (
	"errors"
	"fmt"

	"github.com/gcertilab/certilab-api/internal/dto"
	"github.com/gcertilab/certilab-api/internal/model"
	"github.com/gcertilab/certilab-api/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type WorkerService interface {
	Create(req dto.WorkerRequest) (*model.Worker, error)
	Get(id uint) (*model.Worker, error)
	GetByDNI(dni string) (*model.Worker, error)
	ListByCompany(companyID uint) ([]model.Worker, error)
	Update(id uint, req dto.WorkerRequest) (*model.Worker, error)
	Delete(id uint) error
}

type workerService struct {
	workerRepo  repository.WorkerRepository
	companyRepo repository.CompanyRepository
	userRepo    repository.UserRepository
}

func NewWorkerService(workerRepo repository.WorkerRepository, companyRepo repository.CompanyRepository, userRepo repository.UserRepository) WorkerService {
	return &workerService{workerRepo: workerRepo, companyRepo: companyRepo, userRepo: userRepo}
}

func (s *workerService) Create(req dto.WorkerRequest) (*model.Worker, error) {
	if _, err := s.companyRepo.FindByID(req.CompanyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("company %d: %w", req.CompanyID, ErrNotFound)
		}
		return nil, fmt.Errorf("loading company %d: %w", req.CompanyID, err)
	}

	var worker model.Worker
	if err := copier.Copy(&worker, &req); err != nil {
		return nil, fmt.Errorf("mapping worker request: %w", err)
	}
	if err := s.workerRepo.Create(&worker); err != nil {
		return nil, fmt.Errorf("creating worker: %w", err)
	}

	// Same convention as the roster import: the DNI is both username and
	// initial password.
	hash, err := bcrypt.GenerateFromPassword([]byte(worker.DNI), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing initial password for %s: %w", worker.DNI, err)
	}
	user := model.User{
		WorkerID:     &worker.ID,
		FirstName:    worker.FirstName,
		LastName:     worker.LastName,
		Username:     worker.DNI,
		PasswordHash: string(hash),
		Role:         model.RoleWorker,
		Active:       true,
	}
	if err := s.userRepo.Create(&user); err != nil {
		return nil, fmt.Errorf("creating user for worker %s: %w", worker.DNI, err)
	}

	log.Info().Uint("workerID", worker.ID).Str("dni", worker.DNI).Msg("Worker registered")
	return &worker, nil
}

func (s *workerService) Get(id uint) (*model.Worker, error) {
	worker, err := s.workerRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("worker %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("loading worker %d: %w", id, err)
	}
	return worker, nil
}

func (s *workerService) GetByDNI(dni string) (*model.Worker, error) {
	worker, err := s.workerRepo.FindByDNI(dni)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("worker with DNI %s: %w", dni, ErrNotFound)
		}
		return nil, fmt.Errorf("loading worker by DNI %s: %w", dni, err)
	}
	return worker, nil
}

func (s *workerService) ListByCompany(companyID uint) ([]model.Worker, error) {
	workers, err := s.workerRepo.FindByCompanyID(companyID)
	if err != nil {
		return nil, fmt.Errorf("listing workers of company %d: %w", companyID, err)
	}
	return workers, nil
}

func (s *workerService) Update(id uint, req dto.WorkerRequest) (*model.Worker, error) {
	worker, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := copier.Copy(worker, &req); err != nil {
		return nil, fmt.Errorf("mapping worker request: %w", err)
	}
	if err := s.workerRepo.Update(worker); err != nil {
		return nil, fmt.Errorf("updating worker %d: %w", id, err)
	}
	return worker, nil
}

func (s *workerService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.workerRepo.Delete(id); err != nil {
		return fmt.Errorf("deleting worker %d: %w", id, err)
	}
	return nil
}
