package repository

import (
	"github.com/gcertilab/certilab-api/internal/model"
	"gorm.io/gorm"
)

type ClassFileRepository interface {
	Create(file *model.ClassFile) error
	FindByID(id uint) (*model.ClassFile, error)
	FindByClassID(classID uint) ([]model.ClassFile, error)
	Update(file *model.ClassFile) error
	Delete(id uint) error
}

type classFileRepository struct {
	db *gorm.DB
}

func NewClassFileRepository(db *gorm.DB) ClassFileRepository {
	return &classFileRepository{db: db}
}

func (r *classFileRepository) Create(file *model.ClassFile) error {
	return r.db.Create(file).Error
}

func (r *classFileRepository) FindByID(id uint) (*model.ClassFile, error) {
	var file model.ClassFile
	if err := r.db.First(&file, id).Error; err != nil {
		return nil, err
	}
	return &file, nil
}

func (r *classFileRepository) FindByClassID(classID uint) ([]model.ClassFile, error) {
	var files []model.ClassFile
	if err := r.db.Where("class_id = ?", classID).Order("created_at ASC").Find(&files).Error; err != nil {
		return nil, err
	}
	return files, nil
}

func (r *classFileRepository) Update(file *model.ClassFile) error {
	return r.db.Save(file).Error
}

func (r *classFileRepository) Delete(id uint) error {
	return r.db.Delete(&model.ClassFile{}, id).Error
}
