package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/markoco14/ennytime-sub000/internal/calendar"
	"github.com/markoco14/ennytime-sub000/internal/constants"
	"github.com/markoco14/ennytime-sub000/internal/models"
	"github.com/markoco14/ennytime-sub000/internal/repository"
	"github.com/markoco14/ennytime-sub000/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrShiftNameRequired  = errors.New("shift name cannot be empty")
	ErrShiftNameTooLong   = errors.New("shift name too long")
	ErrShiftTypeNotFound  = errors.New("shift type not found")
	ErrAssignmentNotFound = errors.New("shift assignment not found")
)

// ShiftService handles the shift catalog and schedule entries.
type ShiftService struct {
	shiftTypeRepo  repository.ShiftTypeRepository
	assignmentRepo repository.ShiftAssignmentRepository
}

// NewShiftService creates a new ShiftService.
func NewShiftService(shiftTypeRepo repository.ShiftTypeRepository, assignmentRepo repository.ShiftAssignmentRepository) *ShiftService {
	return &ShiftService{
		shiftTypeRepo:  shiftTypeRepo,
		assignmentRepo: assignmentRepo,
	}
}

// CreateShiftType creates a shift type for a user. The long name is
// whitespace-normalized and the short name derived from it once, here.
func (s *ShiftService) CreateShiftType(userID uint64, longName string) (*models.ShiftType, error) {
	longName = utils.NormalizeShiftName(longName)
	if longName == "" {
		return nil, ErrShiftNameRequired
	}
	if len(longName) > constants.MaxShiftNameLen {
		return nil, ErrShiftNameTooLong
	}

	shiftType := &models.ShiftType{
		LongName:  longName,
		ShortName: utils.DeriveShortName(longName),
		UserID:    userID,
	}

	if err := s.shiftTypeRepo.Create(shiftType); err != nil {
		return nil, fmt.Errorf("failed to create shift type: %w", err)
	}

	return shiftType, nil
}

// ListShiftTypes returns all shift types owned by a user.
func (s *ShiftService) ListShiftTypes(userID uint64) ([]models.ShiftType, error) {
	shiftTypes, err := s.shiftTypeRepo.ListByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shift types: %w", err)
	}
	return shiftTypes, nil
}

// RenameShiftType updates both names of a shift type. The short name is
// taken verbatim, not re-derived. Types owned by other users answer
// not-found.
func (s *ShiftService) RenameShiftType(shiftTypeID, actorID uint64, longName, shortName string) (*models.ShiftType, error) {
	shiftType, err := s.findOwnedShiftType(shiftTypeID, actorID)
	if err != nil {
		return nil, err
	}

	longName = utils.NormalizeShiftName(longName)
	shortName = utils.NormalizeShiftName(shortName)
	if longName == "" || shortName == "" {
		return nil, ErrShiftNameRequired
	}
	if len(longName) > constants.MaxShiftNameLen {
		return nil, ErrShiftNameTooLong
	}

	shiftType.LongName = longName
	shiftType.ShortName = shortName

	if err := s.shiftTypeRepo.Update(shiftType); err != nil {
		return nil, fmt.Errorf("failed to rename shift type: %w", err)
	}

	return shiftType, nil
}

// DeleteShiftType removes a shift type together with every assignment
// referencing it, in one transaction. The returned flag reports whether
// the catalog is now empty so callers can route the user back to setup.
func (s *ShiftService) DeleteShiftType(shiftTypeID, actorID uint64) (bool, error) {
	if _, err := s.findOwnedShiftType(shiftTypeID, actorID); err != nil {
		return false, err
	}

	if err := s.shiftTypeRepo.DeleteWithAssignments(shiftTypeID); err != nil {
		return false, fmt.Errorf("failed to delete shift type: %w", err)
	}

	remaining, err := s.shiftTypeRepo.CountByUserID(actorID)
	if err != nil {
		return false, fmt.Errorf("failed to count shift types: %w", err)
	}

	return remaining == 0, nil
}

// CreateAssignment schedules a shift type on a date for its owner.
// Duplicate assignments on the same date are allowed (split shifts).
func (s *ShiftService) CreateAssignment(actorID, shiftTypeID uint64, date time.Time) (*models.ShiftAssignment, error) {
	if _, err := s.findOwnedShiftType(shiftTypeID, actorID); err != nil {
		return nil, err
	}

	assignment := &models.ShiftAssignment{
		ShiftTypeID: shiftTypeID,
		UserID:      actorID,
		Date:        calendar.DateOnly(date),
	}

	if err := s.assignmentRepo.Create(assignment); err != nil {
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}

	return s.assignmentRepo.FindByID(assignment.ID)
}

// ToggleAssignment implements the click-to-add, click-again-to-remove UI
// pattern. It returns the created assignment, or nil when an existing one
// was removed instead.
func (s *ShiftService) ToggleAssignment(actorID, shiftTypeID uint64, date time.Time) (*models.ShiftAssignment, error) {
	if _, err := s.findOwnedShiftType(shiftTypeID, actorID); err != nil {
		return nil, err
	}

	day := calendar.DateOnly(date)

	existing, err := s.assignmentRepo.FindByTypeUserDate(shiftTypeID, actorID, day)
	if err == nil {
		if err := s.assignmentRepo.Delete(existing.ID); err != nil {
			return nil, fmt.Errorf("failed to remove assignment: %w", err)
		}
		return nil, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check assignment: %w", err)
	}

	assignment := &models.ShiftAssignment{
		ShiftTypeID: shiftTypeID,
		UserID:      actorID,
		Date:        day,
	}
	if err := s.assignmentRepo.Create(assignment); err != nil {
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}

	return s.assignmentRepo.FindByID(assignment.ID)
}

// DeleteAssignment removes one schedule entry owned by the actor.
func (s *ShiftService) DeleteAssignment(assignmentID, actorID uint64) error {
	assignment, err := s.assignmentRepo.FindByID(assignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAssignmentNotFound
		}
		return fmt.Errorf("failed to find assignment: %w", err)
	}

	// Same answer as a missing row so other users' entry ids don't leak.
	if assignment.UserID != actorID {
		return ErrAssignmentNotFound
	}

	if err := s.assignmentRepo.Delete(assignmentID); err != nil {
		return fmt.Errorf("failed to delete assignment: %w", err)
	}

	return nil
}

// ListAssignments returns a user's assignments in [from, to], by date.
func (s *ShiftService) ListAssignments(userID uint64, from, to time.Time) ([]models.ShiftAssignment, error) {
	assignments, err := s.assignmentRepo.ListForUserInRange(userID, calendar.DateOnly(from), calendar.DateOnly(to))
	if err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	return assignments, nil
}

// ListAssignmentHistory returns a user's full schedule history, newest
// first, paginated.
func (s *ShiftService) ListAssignmentHistory(userID uint64, params utils.PaginationParams) ([]models.ShiftAssignment, int64, error) {
	assignments, total, err := s.assignmentRepo.ListByUser(userID, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list assignments: %w", err)
	}
	return assignments, total, nil
}

func (s *ShiftService) findOwnedShiftType(shiftTypeID, actorID uint64) (*models.ShiftType, error) {
	shiftType, err := s.shiftTypeRepo.FindByID(shiftTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShiftTypeNotFound
		}
		return nil, fmt.Errorf("failed to find shift type: %w", err)
	}

	if shiftType.UserID != actorID {
		return nil, ErrShiftTypeNotFound
	}

	return shiftType, nil
}
