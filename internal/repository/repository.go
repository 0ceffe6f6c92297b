package repository

import (
	"time"

	"github.com/markoco14/ennytime-sub000/internal/models"
	"github.com/markoco14/ennytime-sub000/internal/utils"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// Update persists changes to a user
	Update(user *models.User) error
}

// ShiftTypeRepository defines the interface for shift catalog data access
type ShiftTypeRepository interface {
	// Create creates a new shift type
	Create(shiftType *models.ShiftType) error

	// FindByID finds a shift type by ID
	FindByID(id uint64) (*models.ShiftType, error)

	// ListByUserID lists all shift types owned by a user
	ListByUserID(userID uint64) ([]models.ShiftType, error)

	// CountByUserID counts the shift types owned by a user
	CountByUserID(userID uint64) (int64, error)

	// Update persists changes to a shift type
	Update(shiftType *models.ShiftType) error

	// DeleteWithAssignments deletes a shift type and every assignment
	// referencing it within a single transaction
	DeleteWithAssignments(id uint64) error
}

// ShiftAssignmentRepository defines the interface for schedule data access
type ShiftAssignmentRepository interface {
	// Create creates a new assignment
	Create(assignment *models.ShiftAssignment) error

	// FindByID finds an assignment by ID
	FindByID(id uint64) (*models.ShiftAssignment, error)

	// FindByTypeUserDate finds one assignment matching a shift type, user
	// and date (the toggle lookup)
	FindByTypeUserDate(shiftTypeID, userID uint64, date time.Time) (*models.ShiftAssignment, error)

	// Delete removes an assignment
	Delete(id uint64) error

	// ListForUserInRange lists a user's assignments with dates in
	// [from, to], ordered by date, with shift types preloaded
	ListForUserInRange(userID uint64, from, to time.Time) ([]models.ShiftAssignment, error)

	// ListForUsersInRange is ListForUserInRange over several users in one
	// query, ordered by (user_id, date)
	ListForUsersInRange(userIDs []uint64, from, to time.Time) ([]models.ShiftAssignment, error)

	// ListByUser lists a user's full assignment history, newest first,
	// paginated
	ListByUser(userID uint64, params utils.PaginationParams) ([]models.ShiftAssignment, int64, error)
}

// ShareRepository defines the interface for partner link data access
type ShareRepository interface {
	// Create creates a new share
	Create(share *models.Share) error

	// FindByID finds a share by ID
	FindByID(id uint64) (*models.Share, error)

	// FindBySenderID finds the share where the user is the sender
	FindBySenderID(senderID uint64) (*models.Share, error)

	// FindByReceiverID finds the share where the user is the receiver,
	// with the sender preloaded
	FindByReceiverID(receiverID uint64) (*models.Share, error)

	// Delete removes a share
	Delete(id uint64) error
}

// SessionRepository defines the interface for login session data access
type SessionRepository interface {
	// Create creates a new session
	Create(session *models.Session) error

	// FindByToken finds a session by its opaque token
	FindByToken(token string) (*models.Session, error)

	// DeleteByToken removes a session by token
	DeleteByToken(token string) error

	// DeleteExpired removes all sessions that expired before the cutoff
	DeleteExpired(cutoff time.Time) error
}
