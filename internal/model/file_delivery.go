package model

import (
	"time"

	"gorm.io/gorm"
)

// FileDelivery tracks one worker's acknowledgement of one class file.
type FileDelivery struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	ClassFileID uint           `json:"class_file_id" gorm:"not null;index"`
	ClassFile   ClassFile      `json:"class_file,omitempty" gorm:"foreignKey:ClassFileID"`
	WorkerID    uint           `json:"worker_id" gorm:"not null;index"`
	Worker      Worker         `json:"worker,omitempty" gorm:"foreignKey:WorkerID"`
	Downloaded  bool           `json:"downloaded" gorm:"default:false"`
	Accepted    bool           `json:"accepted" gorm:"default:false"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
