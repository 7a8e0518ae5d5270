package model

import (
	"time"

	"gorm.io/gorm"
)

// ExamAttemptQuestion is one slot of an attempt's frozen question set.
// ChosenAnswerID stays nil until grading records the worker's choice.
type ExamAttemptQuestion struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	ExamAttemptID  uint           `json:"exam_attempt_id" gorm:"not null;index"`
	QuestionID     uint           `json:"question_id" gorm:"not null;index"`
	Question       Question       `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	ChosenAnswerID *uint          `json:"chosen_answer_id,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
