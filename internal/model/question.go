package model

import (
	"time"

	"gorm.io/gorm"
)

// AnswersPerQuestion is fixed by the bank import format: every question
// carries exactly four candidate answers, exactly one of them correct.
const AnswersPerQuestion = 4

type Question struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	QuestionBankID uint           `json:"question_bank_id" gorm:"not null;index"`
	Text           string         `json:"text" gorm:"type:text;not null"`
	Comment        string         `json:"comment,omitempty" gorm:"type:text"`
	Points         float64        `json:"points" gorm:"not null"` // nota contributed when answered correctly
	Answers        []Answer       `json:"answers,omitempty" gorm:"foreignKey:QuestionID"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
