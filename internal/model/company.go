package model

import (
	"time"

	"gorm.io/gorm"
)

// Company is a client company whose workers take classes and exams.
type Company struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Name        string         `json:"name" gorm:"not null"` // razón social
	Address     string         `json:"address,omitempty"`
	Phone       string         `json:"phone,omitempty"`
	RUC         string         `json:"ruc" gorm:"column:ruc;index"`
	Email       string         `json:"email,omitempty"`
	WorkerCount int            `json:"worker_count,omitempty"`
	ContactName string         `json:"contact_name,omitempty"`
	LogoURL     string         `json:"logo_url,omitempty"`
	Periods     []Period       `json:"periods,omitempty" gorm:"foreignKey:CompanyID"`
	Workers     []Worker       `json:"workers,omitempty" gorm:"foreignKey:CompanyID"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
