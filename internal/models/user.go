package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID           uint64         `gorm:"primarykey" json:"id"`
	DisplayName  string         `gorm:"type:varchar(255);not null" json:"display_name"`
	Username     *string        `gorm:"type:varchar(255);uniqueIndex" json:"username"`
	Email        string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string         `gorm:"type:varchar(255);not null" json:"-"`
	Birthday     *time.Time     `json:"birthday"`
	IsAdmin      bool           `gorm:"not null;default:false" json:"is_admin"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	ShiftTypes  []ShiftType       `gorm:"foreignKey:UserID" json:"-"`
	Assignments []ShiftAssignment `gorm:"foreignKey:UserID" json:"-"`
}
