package models

import "time"

// ShiftAssignment places one shift type on one calendar date for one user.
// Date is stored at midnight UTC; there is no uniqueness constraint on
// (user, date), so split shifts are representable as multiple rows.
type ShiftAssignment struct {
	ID          uint64    `gorm:"primarykey" json:"id"`
	ShiftTypeID uint64    `gorm:"not null;index" json:"shift_type_id"`
	UserID      uint64    `gorm:"not null;index:idx_shift_assignments_user_date,priority:1" json:"user_id"`
	Date        time.Time `gorm:"not null;index:idx_shift_assignments_user_date,priority:2" json:"date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Relations
	ShiftType ShiftType `gorm:"foreignKey:ShiftTypeID" json:"shift_type,omitempty"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
}
