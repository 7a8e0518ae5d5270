package model

import (
	"time"

	"gorm.io/gorm"
)

// QuestionBank is the pool of questions belonging to one class, used to
// source randomized exams.
type QuestionBank struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	ClassID     uint           `json:"class_id" gorm:"not null;uniqueIndex"`
	Name        string         `json:"name" gorm:"not null"`
	Description string         `json:"description,omitempty"`
	Questions   []Question     `json:"questions,omitempty" gorm:"foreignKey:QuestionBankID"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
