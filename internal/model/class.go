package model

import (
	"time"

	"gorm.io/gorm"
)

// Class types. Documentation classes distribute files; induction and
// training classes carry a question bank and a randomized exam.
const (
	ClassTypeInduction     = "induction"
	ClassTypeTraining      = "training"
	ClassTypeDocumentation = "documentation"
)

type Class struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	PeriodID     uint           `json:"period_id" gorm:"not null;index"`
	Period       Period         `json:"period,omitempty" gorm:"foreignKey:PeriodID"`
	Title        string         `json:"title" gorm:"not null"`
	Description  string         `json:"description,omitempty"`
	Type         string         `json:"type" gorm:"not null;index"` // induction, training, documentation
	StartDate    *time.Time     `json:"start_date,omitempty"`
	EndDate      *time.Time     `json:"end_date,omitempty"`
	ImageURL     string         `json:"image_url,omitempty"`
	QuestionBank *QuestionBank  `json:"question_bank,omitempty" gorm:"foreignKey:ClassID"`
	Files        []ClassFile    `json:"files,omitempty" gorm:"foreignKey:ClassID"`
	Enrollments  []Enrollment   `json:"enrollments,omitempty" gorm:"foreignKey:ClassID"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
