package model

import (
	"time"

	"gorm.io/gorm"
)

// Answer is one of the four candidate answers of a question. Correct is a
// write-once authoring fact; it is stripped from every payload an exam
// taker sees before grading (json "-", DTOs never carry it).
type Answer struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	QuestionID uint           `json:"question_id" gorm:"not null;index"`
	Text       string         `json:"text" gorm:"type:text;not null"`
	Correct    bool           `json:"-" gorm:"not null;default:false"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
