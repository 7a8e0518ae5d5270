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

// FileService manages documentation files attached to classes and the
// per-worker delivery rows that track download and acceptance.
type FileService interface {
	CreateFile(req dto.ClassFileRequest) (*model.ClassFile, error)
	GetFile(id uint) (*model.ClassFile, error)
	ListFilesByClass(classID uint) ([]model.ClassFile, error)
	UpdateFile(id uint, req dto.ClassFileRequest) (*model.ClassFile, error)
	DeleteFile(id uint) error

	AssignFile(req dto.FileDeliveryRequest) (*model.FileDelivery, error)
	ListDeliveriesByWorker(workerID uint) ([]model.FileDelivery, error)
	SetDeliveryFlags(id uint, req dto.FileDeliveryFlagRequest) (*model.FileDelivery, error)
}

type fileService struct {
	fileRepo     repository.ClassFileRepository
	deliveryRepo repository.FileDeliveryRepository
	classRepo    repository.ClassRepository
	workerRepo   repository.WorkerRepository
}

func NewFileService(
	fileRepo repository.ClassFileRepository,
	deliveryRepo repository.FileDeliveryRepository,
	classRepo repository.ClassRepository,
	workerRepo repository.WorkerRepository,
) FileService {
	return &fileService{
		fileRepo:     fileRepo,
		deliveryRepo: deliveryRepo,
		classRepo:    classRepo,
		workerRepo:   workerRepo,
	}
}

func (s *fileService) CreateFile(req dto.ClassFileRequest) (*model.ClassFile, error) {
	if _, err := s.classRepo.FindByID(req.ClassID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("class %d: %w", req.ClassID, ErrNotFound)
		}
		return nil, fmt.Errorf("loading class %d: %w", req.ClassID, err)
	}

	var file model.ClassFile
	if err := copier.Copy(&file, &req); err != nil {
		return nil, fmt.Errorf("mapping file request: %w", err)
	}
	if err := s.fileRepo.Create(&file); err != nil {
		return nil, fmt.Errorf("creating class file: %w", err)
	}
	return &file, nil
}

func (s *fileService) GetFile(id uint) (*model.ClassFile, error) {
	file, err := s.fileRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("class file %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("loading class file %d: %w", id, err)
	}
	return file, nil
}

func (s *fileService) ListFilesByClass(classID uint) ([]model.ClassFile, error) {
	files, err := s.fileRepo.FindByClassID(classID)
	if err != nil {
		return nil, fmt.Errorf("listing files of class %d: %w", classID, err)
	}
	return files, nil
}

func (s *fileService) UpdateFile(id uint, req dto.ClassFileRequest) (*model.ClassFile, error) {
	file, err := s.GetFile(id)
	if err != nil {
		return nil, err
	}
	if err := copier.Copy(file, &req); err != nil {
		return nil, fmt.Errorf("mapping file request: %w", err)
	}
	if err := s.fileRepo.Update(file); err != nil {
		return nil, fmt.Errorf("updating class file %d: %w", id, err)
	}
	return file, nil
}

func (s *fileService) DeleteFile(id uint) error {
	if _, err := s.GetFile(id); err != nil {
		return err
	}
	if err := s.fileRepo.Delete(id); err != nil {
		return fmt.Errorf("deleting class file %d: %w", id, err)
	}
	return nil
}

func (s *fileService) AssignFile(req dto.FileDeliveryRequest) (*model.FileDelivery, error) {
	if _, err := s.GetFile(req.ClassFileID); err != nil {
		return nil, err
	}
	if _, err := s.workerRepo.FindByID(req.WorkerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("worker %d: %w", req.WorkerID, ErrNotFound)
		}
		return nil, fmt.Errorf("loading worker %d: %w", req.WorkerID, err)
	}

	delivery := model.FileDelivery{ClassFileID: req.ClassFileID, WorkerID: req.WorkerID}
	if err := s.deliveryRepo.Create(&delivery); err != nil {
		return nil, fmt.Errorf("assigning file %d to worker %d: %w", req.ClassFileID, req.WorkerID, err)
	}

	log.Info().Uint("fileID", req.ClassFileID).Uint("workerID", req.WorkerID).Msg("File assigned")
	return &delivery, nil
}

func (s *fileService) ListDeliveriesByWorker(workerID uint) ([]model.FileDelivery, error) {
	deliveries, err := s.deliveryRepo.FindByWorkerID(workerID)
	if err != nil {
		return nil, fmt.Errorf("listing deliveries of worker %d: %w", workerID, err)
	}
	return deliveries, nil
}

// SetDeliveryFlags flips the download or acceptance flag. Flags only move
// forward; a worker cannot un-accept a document.
func (s *fileService) SetDeliveryFlags(id uint, req dto.FileDeliveryFlagRequest) (*model.FileDelivery, error) {
	delivery, err := s.deliveryRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("file delivery %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("loading file delivery %d: %w", id, err)
	}

	if req.Downloaded != nil && *req.Downloaded {
		delivery.Downloaded = true
	}
	if req.Accepted != nil && *req.Accepted {
		delivery.Accepted = true
	}
	if err := s.deliveryRepo.Update(delivery); err != nil {
		return nil, fmt.Errorf("updating file delivery %d: %w", id, err)
	}
	return delivery, nil
}
