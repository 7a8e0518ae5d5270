package repository

import (
	"github.com/gcertilab/certilab-api/internal/model"
	"gorm.io/gorm"
)

type QuestionBankRepository interface {
	Create(bank *model.QuestionBank) error
	FindByID(id uint) (*model.QuestionBank, error)
	FindByClassID(classID uint) (*model.QuestionBank, error)
	FindByClassIDWithQuestions(classID uint) (*model.QuestionBank, error)
	FindAll() ([]model.QuestionBank, error)
	Update(bank *model.QuestionBank) error
	Delete(id uint) error
}

type questionBankRepository struct {
	db *gorm.DB
}

func NewQuestionBankRepository(db *gorm.DB) QuestionBankRepository {
	return &questionBankRepository{db: db}
}

func (r *questionBankRepository) Create(bank *model.QuestionBank) error {
	return r.db.Create(bank).Error
}

func (r *questionBankRepository) FindByID(id uint) (*model.QuestionBank, error) {
	var bank model.QuestionBank
	if err := r.db.Preload("Questions.Answers").First(&bank, id).Error; err != nil {
		return nil, err
	}
	return &bank, nil
}

func (r *questionBankRepository) FindByClassID(classID uint) (*model.QuestionBank, error) {
	var bank model.QuestionBank
	if err := r.db.Where("class_id = ?", classID).First(&bank).Error; err != nil {
		return nil, err
	}
	return &bank, nil
}

// FindByClassIDWithQuestions loads the full pool with answers; question
// order is the stable authoring order so ordinal sampling is reproducible.
func (r *questionBankRepository) FindByClassIDWithQuestions(classID uint) (*model.QuestionBank, error) {
	var bank model.QuestionBank
	err := r.db.
		Preload("Questions", func(db *gorm.DB) *gorm.DB {
			return db.Order("questions.id ASC")
		}).
		Preload("Questions.Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("answers.id ASC")
		}).
		Where("class_id = ?", classID).First(&bank).Error
	if err != nil {
		return nil, err
	}
	return &bank, nil
}

func (r *questionBankRepository) FindAll() ([]model.QuestionBank, error) {
	var banks []model.QuestionBank
	if err := r.db.Order("created_at DESC").Find(&banks).Error; err != nil {
		return nil, err
	}
	return banks, nil
}

func (r *questionBankRepository) Update(bank *model.QuestionBank) error {
	return r.db.Save(bank).Error
}

func (r *questionBankRepository) Delete(id uint) error {
	return r.db.Delete(&model.QuestionBank{}, id).Error
}
