package models

import (
	"time"

	"gorm.io/gorm"
)

// ShiftType is a user-defined category of work shift. ShortName is derived
// from LongName once at creation and is not kept in sync on rename.
type ShiftType struct {
	ID        uint64         `gorm:"primarykey" json:"id"`
	LongName  string         `gorm:"type:varchar(100);not null" json:"long_name"`
	ShortName string         `gorm:"type:varchar(20);not null" json:"short_name"`
	UserID    uint64         `gorm:"not null;index" json:"user_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	User        User              `gorm:"foreignKey:UserID" json:"-"`
	Assignments []ShiftAssignment `gorm:"foreignKey:ShiftTypeID" json:"-"`
}
