package model

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleAdmin   = "admin"
	RoleCompany = "company"
	RoleWorker  = "worker"
)

type User struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	WorkerID     *uint          `json:"worker_id,omitempty" gorm:"index"`
	Worker       *Worker        `json:"worker,omitempty" gorm:"foreignKey:WorkerID"`
	FirstName    string         `json:"first_name"`
	LastName     string         `json:"last_name"`
	Username     string         `json:"username" gorm:"not null;uniqueIndex"`
	PasswordHash string         `json:"-" gorm:"not null"`
	Role         string         `json:"role" gorm:"not null"` // admin, company, worker
	Active       bool           `json:"active" gorm:"default:true"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
