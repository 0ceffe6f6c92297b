package dto

import (
	"time"

	"github.com/markoco14/ennytime-sub000/internal/models"
)

// ShareDTO represents a partner link in API responses
type ShareDTO struct {
	ID         uint64         `json:"id"`
	SenderID   uint64         `json:"sender_id"`
	ReceiverID uint64         `json:"receiver_id"`
	Sender     *PublicUserDTO `json:"sender,omitempty"`
	Receiver   *PublicUserDTO `json:"receiver,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

// ToShareDTO converts a Share model to ShareDTO
func ToShareDTO(share models.Share) ShareDTO {
	dto := ShareDTO{
		ID:         share.ID,
		SenderID:   share.SenderID,
		ReceiverID: share.ReceiverID,
		CreatedAt:  share.CreatedAt,
	}

	if share.Sender.ID != 0 {
		sender := ToPublicUserDTO(share.Sender)
		dto.Sender = &sender
	}
	if share.Receiver.ID != 0 {
		receiver := ToPublicUserDTO(share.Receiver)
		dto.Receiver = &receiver
	}

	return dto
}
