package services

import (
	"errors"
	"fmt"

	"github.com/markoco14/ennytime-sub000/internal/models"
	"github.com/markoco14/ennytime-sub000/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrShareNotFound       = errors.New("share not found")
	ErrReceiverNotFound    = errors.New("no user with that username")
	ErrCannotShareWithSelf = errors.New("cannot share a calendar with yourself")
	ErrAlreadySharing      = errors.New("you are already sharing your calendar")
	ErrReceiverTaken       = errors.New("that user already receives a shared calendar")
)

// ShareService handles the one-directional partner link.
type ShareService struct {
	shareRepo repository.ShareRepository
	userRepo  repository.UserRepository
}

// NewShareService creates a new ShareService.
func NewShareService(shareRepo repository.ShareRepository, userRepo repository.UserRepository) *ShareService {
	return &ShareService{
		shareRepo: shareRepo,
		userRepo:  userRepo,
	}
}

// CreateShare grants the named receiver visibility of the sender's
// calendar. Each user can hold each role at most once; a second share in
// either role is a conflict and leaves the existing one untouched.
func (s *ShareService) CreateShare(senderID uint64, receiverUsername string) (*models.Share, error) {
	receiver, err := s.userRepo.FindByUsername(receiverUsername)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReceiverNotFound
		}
		return nil, fmt.Errorf("failed to find receiver: %w", err)
	}

	if receiver.ID == senderID {
		return nil, ErrCannotShareWithSelf
	}

	if _, err := s.shareRepo.FindBySenderID(senderID); err == nil {
		return nil, ErrAlreadySharing
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check sender share: %w", err)
	}

	if _, err := s.shareRepo.FindByReceiverID(receiver.ID); err == nil {
		return nil, ErrReceiverTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check receiver share: %w", err)
	}

	share := &models.Share{
		SenderID:   senderID,
		ReceiverID: receiver.ID,
	}

	// The unique indexes on sender_id and receiver_id backstop the checks
	// above against concurrent creates.
	if err := s.shareRepo.Create(share); err != nil {
		return nil, fmt.Errorf("failed to create share: %w", err)
	}

	share.Receiver = *receiver
	return share, nil
}

// GetOutgoingShare returns the share the user sends, or nil when the user
// is not sharing.
func (s *ShareService) GetOutgoingShare(userID uint64) (*models.Share, error) {
	share, err := s.shareRepo.FindBySenderID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find share: %w", err)
	}
	return share, nil
}

// GetPartnerFor resolves whose calendar the user sees: the sender of the
// share where the user is the receiver. Absent is not an error.
func (s *ShareService) GetPartnerFor(userID uint64) (*models.User, error) {
	share, err := s.shareRepo.FindByReceiverID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find share: %w", err)
	}
	return &share.Sender, nil
}

// DeleteShare severs the link. Either end may do it; anyone else gets the
// same answer as a missing share.
func (s *ShareService) DeleteShare(shareID, actorID uint64) error {
	share, err := s.shareRepo.FindByID(shareID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrShareNotFound
		}
		return fmt.Errorf("failed to find share: %w", err)
	}

	if share.SenderID != actorID && share.ReceiverID != actorID {
		return ErrShareNotFound
	}

	if err := s.shareRepo.Delete(shareID); err != nil {
		return fmt.Errorf("failed to delete share: %w", err)
	}

	return nil
}
