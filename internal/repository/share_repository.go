package repository

import (
	"github.com/markoco14/ennytime-sub000/internal/models"
	"gorm.io/gorm"
)

// GormShareRepository is a GORM implementation of ShareRepository
type GormShareRepository struct {
	db *gorm.DB
}

// NewShareRepository creates a new ShareRepository
func NewShareRepository(db *gorm.DB) ShareRepository {
	return &GormShareRepository{db: db}
}

// Create creates a new share
func (r *GormShareRepository) Create(share *models.Share) error {
	return r.db.Create(share).Error
}

// FindByID finds a share by ID
func (r *GormShareRepository) FindByID(id uint64) (*models.Share, error) {
	var share models.Share
	if err := r.db.First(&share, id).Error; err != nil {
		return nil, err
	}
	return &share, nil
}

// FindBySenderID finds the share where the user is the sender
func (r *GormShareRepository) FindBySenderID(senderID uint64) (*models.Share, error) {
	var share models.Share
	if err := r.db.Preload("Receiver").Where("sender_id = ?", senderID).First(&share).Error; err != nil {
		return nil, err
	}
	return &share, nil
}

// FindByReceiverID finds the share where the user is the receiver. The
// sender is preloaded because "whose calendar do I see" always needs it.
func (r *GormShareRepository) FindByReceiverID(receiverID uint64) (*models.Share, error) {
	var share models.Share
	if err := r.db.Preload("Sender").Where("receiver_id = ?", receiverID).First(&share).Error; err != nil {
		return nil, err
	}
	return &share, nil
}

// Delete removes a share
func (r *GormShareRepository) Delete(id uint64) error {
	return r.db.Delete(&models.Share{}, id).Error
}
