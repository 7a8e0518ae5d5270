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

type ClassService interface {
	Create(req dto.ClassRequest) (*model.Class, error)
	Get(id uint) (*model.Class, error)
	List() ([]model.Class, error)
	ListByPeriod(periodID uint) ([]model.Class, error)
	ListByPeriodAndType(periodID uint, classType string) ([]model.Class, error)
	Update(id uint, req dto.ClassRequest) (*model.Class, error)
	Delete(id uint) error
}

type classService struct {
	classRepo  repository.ClassRepository
	periodRepo repository.PeriodRepository
}

func NewClassService(classRepo repository.ClassRepository, periodRepo repository.PeriodRepository) ClassService {
	return &classService{classRepo: classRepo, periodRepo: periodRepo}
}

func (s *classService) Create(req dto.ClassRequest) (*model.Class, error) {
	if _, err := s.periodRepo.FindByID(req.PeriodID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("period %d: %w", req.PeriodID, ErrNotFound)
		}
		return nil, fmt.Errorf("loading period %d: %w", req.PeriodID, err)
	}

	var class model.Class
	if err := copier.Copy(&class, &req); err != nil {
		return nil, fmt.Errorf("mapping class request: %w", err)
	}
	if err := s.classRepo.Create(&class); err != nil {
		return nil, fmt.Errorf("creating class: %w", err)
	}
	return &class, nil
}

func (s *classService) Get(id uint) (*model.Class, error) {
	class, err := s.classRepo.FindByIDWithPeriod(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("class %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("loading class %d: %w", id, err)
	}
	return class, nil
}

func (s *classService) List() ([]model.Class, error) {
	classes, err := s.classRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("listing classes: %w", err)
	}
	return classes, nil
}

func (s *classService) ListByPeriod(periodID uint) ([]model.Class, error) {
	classes, err := s.classRepo.FindByPeriodID(periodID)
	if err != nil {
		return nil, fmt.Errorf("listing classes of period %d: %w", periodID, err)
	}
	return classes, nil
}

func (s *classService) ListByPeriodAndType(periodID uint, classType string) ([]model.Class, error) {
	classes, err := s.classRepo.FindByPeriodIDAndType(periodID, classType)
	if err != nil {
		return nil, fmt.Errorf("listing %s classes of period %d: %w", classType, periodID, err)
	}
	return classes, nil
}

func (s *classService) Update(id uint, req dto.ClassRequest) (*model.Class, error) {
	class, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if err := copier.Copy(class, &req); err != nil {
		return nil, fmt.Errorf("mapping class request: %w", err)
	}
	if err := s.classRepo.Update(class); err != nil {
		return nil, fmt.Errorf("updating class %d: %w", id, err)
	}
	return class, nil
}

func (s *classService) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	if err := s.classRepo.Delete(id); err != nil {
		return fmt.Errorf("deleting class %d: %w", id, err)
	}
	return nil
}
