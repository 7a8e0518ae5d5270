package model

import (
	"time"

	"gorm.io/gorm"
)

// ClassFile is distributed course material (document, video, image).
type ClassFile struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	ClassID     uint           `json:"class_id" gorm:"not null;index"`
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description,omitempty"`
	URL         string         `json:"url" gorm:"not null"`
	Extension   string         `json:"extension,omitempty"`
	Type        string         `json:"type,omitempty"`
	ImageURL    string         `json:"image_url,omitempty"`
	Viewed      bool           `json:"viewed" gorm:"default:false"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
