package models

import "time"

// Share is a directed calendar-visibility edge: the receiver sees the
// sender's shifts, never the other way around. The unique indexes on both
// columns cap each user at one outgoing and one incoming share.
type Share struct {
	ID         uint64    `gorm:"primarykey" json:"id"`
	SenderID   uint64    `gorm:"not null;uniqueIndex" json:"sender_id"`
	ReceiverID uint64    `gorm:"not null;uniqueIndex" json:"receiver_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relations
	Sender   User `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	Receiver User `gorm:"foreignKey:ReceiverID" json:"receiver,omitempty"`
}
