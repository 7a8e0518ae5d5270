package model

import (
	"time"

	"gorm.io/gorm"
)

type Worker struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	CompanyID    uint           `json:"company_id" gorm:"not null;index"`
	Company      Company        `json:"company,omitempty" gorm:"foreignKey:CompanyID"`
	FirstName    string         `json:"first_name" gorm:"not null"`
	LastName     string         `json:"last_name" gorm:"not null"`
	DNI          string         `json:"dni" gorm:"column:dni;not null;index"`
	Area         string         `json:"area,omitempty"`
	Position     string         `json:"position,omitempty"`
	Site         string         `json:"site,omitempty"`
	BirthDate    *time.Time     `json:"birth_date,omitempty"`
	SignatureURL string         `json:"signature_url,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// FullName is the display name used on certificates and reports.
func (w Worker) FullName() string {
	return w.FirstName + " " + w.LastName
}
