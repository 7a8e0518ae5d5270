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

type CompanyService interface {
	Create(req dto.CompanyRequest) (*model.Company, error)
	Get(id uint) (*model.Company, error)
	List() ([]model.Company, error)
	Update(id uint, req dto.CompanyRequest) (*model.Company, error)
	Delete(id uint) error
}

type companyService struct {
	companyRepo repository.CompanyRepository
}

func NewCompanyService(companyRepo repository.CompanyRepository) CompanyService {
	return &companyService{companyRepo: companyRepo}
}

func (s *companyService) Create(req dto.CompanyRequest) (*model.Company, error) {
	var company model.Company
	if err := copier.Copy(&company, &req); err != nil {
		return nil, fmt.Errorf("mapping company request: %w", err)
	}
	if err := s.companyRepo.Create(&company); err != nil {
		log.Error().Err(err).Str("ruc", req.RUC).Msg("Failed to create company")
		return nil, fmt.Errorf("creating company: %w", err)
	}
	return &company, nil
}

func (s *companyService) Get(id uint) (*model.Company, error) {
	company, err := s.companyRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("company %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("loading company %d: %w", id, err)
	}
	return company, nil
}

func (s *companyService) List() ([]model.Company, error) {
	companies, err := s.companyRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("listing companies: %w", err)
	}
	return companies, nil
}

func (s *companyService) Update(id uint, req dto.CompanyRequest) (*model.Company, error) {
	company, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := copier.Copy(company, &req); err != nil {
		return nil, fmt.Errorf("mapping company request: %w", err)
	}
	if err := s.companyRepo.Update(company); err != nil {
		return nil, fmt.Errorf("updating company %d: %w", id, err)
	}
	return company, nil
}

func (s *companyService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.companyRepo.Delete(id); err != nil {
		return fmt.Errorf("deleting company %d: %w", id, err)
	}
	return nil
}
