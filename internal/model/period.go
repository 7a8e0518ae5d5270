package model

import (
	"time"

	"gorm.io/gorm"
)

// Period is an enrollment cycle for one client company.
type Period struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	CompanyID   uint           `json:"company_id" gorm:"not null;index"`
	Code        string         `json:"code" gorm:"not null"`
	Description string         `json:"description,omitempty"`
	Active      bool           `json:"active" gorm:"default:false"`
	StartDate   *time.Time     `json:"start_date,omitempty"`
	EndDate     *time.Time     `json:"end_date,omitempty"`
	Classes     []Class        `json:"classes,omitempty" gorm:"foreignKey:PeriodID"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
