package service

import (
	"errors"
	"fmt"

	"github.com/gcertilab/certilab-api/internal/dto"
	"github.com/gcertilab/certilab-api/internal/model"
	"github.com/gcertilab/certilab-api/internal/repository"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

type PeriodService interface {
	Create(req dto.PeriodRequest) (*model.Period, error)
	Get(id uint) (*model.Period, error)
	List() ([]model.Period, error)
	ListByCompany(companyID uint) ([]model.Period, error)
	Update(id uint, req dto.PeriodRequest) (*model.Period, error)
	Delete(id uint) error
}

type periodService struct {
	periodRepo  repository.PeriodRepository
	companyRepo repository.CompanyRepository
}

func NewPeriodService(periodRepo repository.PeriodRepository, companyRepo repository.CompanyRepository) PeriodService {
	return &periodService{periodRepo: periodRepo, companyRepo: companyRepo}
}

func (s *periodService) Create(req dto.PeriodRequest) (*model.Period, error) {
	if _, err := s.companyRepo.FindByID(req.CompanyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("company %d: %w", req.CompanyID, ErrNotFound)
		}
		return nil, fmt.Errorf("loading company %d: %w", req.CompanyID, err)
	}

	var period model.Period
	if err := copier.Copy(&period, &req); err != nil {
		return nil, fmt.Errorf("mapping period request: %w", err)
	}
	if err := s.periodRepo.Create(&period); err != nil {
		return nil, fmt.Errorf("creating period: %w", err)
	}
	return &period, nil
}

func (s *periodService) Get(id uint) (*model.Period, error) {
	period, err := s.periodRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("period %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("loading period %d: %w", id, err)
	}
	return period, nil
}

func (s *periodService) List() ([]model.Period, error) {
	periods, err := s.periodRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("listing periods: %w", err)
	}
	return periods, nil
}

func (s *periodService) ListByCompany(companyID uint) ([]model.Period, error) {
	periods, err := s.periodRepo.FindByCompanyID(companyID)
	if err != nil {
		return nil, fmt.Errorf("listing periods of company %d: %w", companyID, err)
	}
	return periods, nil
}

func (s *periodService) Update(id uint, req dto.PeriodRequest) (*model.Period, error) {
	period, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := copier.Copy(period, &req); err != nil {
		return nil, fmt.Errorf("mapping period request: %w", err)
	}
	// copier skips false booleans, so the active flag is set explicitly to
	// let a period be closed through an update.
	period.Active = req.Active
	if err := s.periodRepo.Update(period); err != nil {
		return nil, fmt.Errorf("updating period %d: %w", id, err)
	}
	return period, nil
}

func (s *periodService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.periodRepo.Delete(id); err != nil {
		return fmt.Errorf("deleting period %d: %w", id, err)
	}
	return nil
}
