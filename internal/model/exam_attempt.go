package model

import (
	"time"

	"gorm.io/gorm"
)

// ExamAttempt is one randomized-exam instance for an enrollment. Its
// question set is frozen at creation; outcome moves from pending to exactly
// one terminal state and never changes afterwards.
type ExamAttempt struct {
	ID                    uint                 `gorm:"primarykey" json:"id"`
	EnrollmentID          uint                 `json:"enrollment_id" gorm:"not null;index"`
	Enrollment            Enrollment           `json:"enrollment,omitempty" gorm:"foreignKey:EnrollmentID"`
	AttemptNumber         int                  `json:"attempt_number" gorm:"not null"`
	TakenAt               time.Time            `json:"taken_at"`
	Outcome               Outcome              `json:"outcome" gorm:"not null;default:-1"`
	CorrectCount          int                  `json:"correct_count"`
	IncorrectCount        int                  `json:"incorrect_count"`
	Score                 float64              `json:"score"`
	CertificateURL        *string              `json:"certificate_url,omitempty"`
	CertificateDownloaded bool                 `json:"certificate_downloaded" gorm:"default:false"`
	Questions             []ExamAttemptQuestion `json:"questions,omitempty" gorm:"foreignKey:ExamAttemptID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt             time.Time            `json:"created_at"`
	UpdatedAt             time.Time            `json:"updated_at"`
	DeletedAt             gorm.DeletedAt       `gorm:"index" json:"-"`
}
