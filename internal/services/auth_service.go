package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/markoco14/ennytime-sub000/internal/calendar"
	"github.com/markoco14/ennytime-sub000/internal/constants"
	"github.com/markoco14/ennytime-sub000/internal/models"
	"github.com/markoco14/ennytime-sub000/internal/repository"
	"github.com/markoco14/ennytime-sub000/internal/utils"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken           = errors.New("email already registered")
	ErrUsernameTaken        = errors.New("username already taken")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrPasswordTooShort     = errors.New("password too short")
	ErrUserNotFound         = errors.New("user not found")
	ErrSessionInvalid       = errors.New("session is missing or expired")
	ErrDisplayNameRequired  = errors.New("display name cannot be empty")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// AuthService handles signup, login and session resolution.
type AuthService struct {
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, sessionRepo repository.SessionRepository) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
	}
}

// SignupInput represents the required information to create a new user.
type SignupInput struct {
	Email       string
	Password    string
	DisplayName string
}

// Signup creates a new user and an initial session.
func (s *AuthService) Signup(input SignupInput) (*models.User, *models.Session, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" {
		return nil, nil, fmt.Errorf("email is required")
	}
	if len(input.Password) < constants.MinPasswordLength {
		return nil, nil, ErrPasswordTooShort
	}

	displayName := strings.TrimSpace(input.DisplayName)
	if displayName == "" {
		// Default to the mailbox part of the email.
		displayName = strings.SplitN(email, "@", 2)[0]
	}

	if _, err := s.userRepo.FindByEmail(email); err == nil {
		return nil, nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, fmt.Errorf("failed to check email: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, ErrFailedToHashPassword
	}

	user := &models.User{
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: string(hashedPassword),
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, nil, fmt.Errorf("failed to create user: %w", err)
	}

	session, err := s.CreateSession(user.ID)
	if err != nil {
		return nil, nil, err
	}

	return user, session, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// Login verifies credentials and opens a new session.
func (s *AuthService) Login(input LoginInput) (*models.User, *models.Session, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	session, err := s.CreateSession(user.ID)
	if err != nil {
		return nil, nil, err
	}

	return user, session, nil
}

// CreateSession opens a session row for a user.
func (s *AuthService) CreateSession(userID uint64) (*models.Session, error) {
	session := &models.Session{
		Token:     utils.GenerateSessionToken(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(constants.SessionLifetime),
	}

	if err := s.sessionRepo.Create(session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return session, nil
}

// ResolveSession maps an opaque session token to its user. An expired row
// is treated exactly like a missing one, and removed on the way.
func (s *AuthService) ResolveSession(token string) (*models.User, error) {
	if token == "" {
		return nil, ErrSessionInvalid
	}

	session, err := s.sessionRepo.FindByToken(token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionInvalid
		}
		return nil, fmt.Errorf("failed to find session: %w", err)
	}

	if session.Expired(time.Now()) {
		_ = s.sessionRepo.DeleteByToken(token)
		return nil, ErrSessionInvalid
	}

	user, err := s.userRepo.FindByID(session.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionInvalid
		}
		return nil, fmt.Errorf("failed to load session user: %w", err)
	}

	return user, nil
}

// Logout deletes the session row for a token.
func (s *AuthService) Logout(token string) error {
	if token == "" {
		return nil
	}
	return s.sessionRepo.DeleteByToken(token)
}

// PurgeExpiredSessions removes every session past its expiry. Expired
// rows are also cleaned up lazily on resolution; this catches the ones
// nobody ever presented again.
func (s *AuthService) PurgeExpiredSessions() error {
	return s.sessionRepo.DeleteExpired(time.Now())
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}

// UpdateProfileInput carries the explicitly mutable profile fields. Nil
// means "leave unchanged".
type UpdateProfileInput struct {
	DisplayName   *string
	Username      *string
	Birthday      *time.Time
	ClearBirthday bool
}

// UpdateProfile applies typed profile updates to a user.
func (s *AuthService) UpdateProfile(userID uint64, input UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if input.DisplayName != nil {
		name := strings.TrimSpace(*input.DisplayName)
		if name == "" {
			return nil, ErrDisplayNameRequired
		}
		user.DisplayName = name
	}

	if input.Username != nil {
		username := strings.TrimSpace(*input.Username)
		if username == "" {
			user.Username = nil
		} else {
			if existing, err := s.userRepo.FindByUsername(username); err == nil && existing.ID != userID {
				return nil, ErrUsernameTaken
			} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("failed to check username: %w", err)
			}
			user.Username = &username
		}
	}

	if input.ClearBirthday {
		user.Birthday = nil
	} else if input.Birthday != nil {
		birthday := calendar.DateOnly(*input.Birthday)
		user.Birthday = &birthday
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}
