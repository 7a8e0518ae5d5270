package model

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment binds one worker to one class and carries the attempt policy.
// MaxAttempts is read at attempt-creation time and never cached elsewhere.
type Enrollment struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	ClassID     uint           `json:"class_id" gorm:"not null;index"`
	Class       Class          `json:"class,omitempty" gorm:"foreignKey:ClassID"`
	WorkerID    uint           `json:"worker_id" gorm:"not null;index"`
	Worker      Worker         `json:"worker,omitempty" gorm:"foreignKey:WorkerID"`
	UserID      uint           `json:"user_id" gorm:"not null"` // issuing user
	MaxAttempts int            `json:"max_attempts" gorm:"not null;default:1"`
	Attempts    []ExamAttempt  `json:"attempts,omitempty" gorm:"foreignKey:EnrollmentID"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
