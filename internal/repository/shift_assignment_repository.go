package repository

import (
	"time"

	"github.com/markoco14/ennytime-sub000/internal/database"
	"github.com/markoco14/ennytime-sub000/internal/models"
	"github.com/markoco14/ennytime-sub000/internal/utils"
	"gorm.io/gorm"
)

// GormShiftAssignmentRepository is a GORM implementation of ShiftAssignmentRepository
type GormShiftAssignmentRepository struct {
	db *gorm.DB
}

// NewShiftAssignmentRepository creates a new ShiftAssignmentRepository
func NewShiftAssignmentRepository(db *gorm.DB) ShiftAssignmentRepository {
	return &GormShiftAssignmentRepository{db: db}
}

// Create creates a new assignment
func (r *GormShiftAssignmentRepository) Create(assignment *models.ShiftAssignment) error {
	return r.db.Create(assignment).Error
}

// FindByID finds an assignment by ID with its shift type preloaded
func (r *GormShiftAssignmentRepository) FindByID(id uint64) (*models.ShiftAssignment, error) {
	var assignment models.ShiftAssignment
	if err := r.db.Preload("ShiftType").First(&assignment, id).Error; err != nil {
		return nil, err
	}
	return &assignment, nil
}

// FindByTypeUserDate finds one assignment matching a shift type, user and date
func (r *GormShiftAssignmentRepository) FindByTypeUserDate(shiftTypeID, userID uint64, date time.Time) (*models.ShiftAssignment, error) {
	var assignment models.ShiftAssignment
	err := r.db.
		Where("shift_type_id = ? AND user_id = ? AND date = ?", shiftTypeID, userID, date).
		First(&assignment).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// Delete removes an assignment
func (r *GormShiftAssignmentRepository) Delete(id uint64) error {
	return r.db.Delete(&models.ShiftAssignment{}, id).Error
}

// ListForUserInRange lists a user's assignments with dates in [from, to],
// ordered by date. Shift types are preloaded so presentation never
// re-fetches them.
func (r *GormShiftAssignmentRepository) ListForUserInRange(userID uint64, from, to time.Time) ([]models.ShiftAssignment, error) {
	var assignments []models.ShiftAssignment
	err := r.db.
		Preload("ShiftType").
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Order("date").
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

// ListByUser lists a user's full assignment history, newest first.
func (r *GormShiftAssignmentRepository) ListByUser(userID uint64, params utils.PaginationParams) ([]models.ShiftAssignment, int64, error) {
	query := r.db.Model(&models.ShiftAssignment{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var assignments []models.ShiftAssignment
	err := query.
		Preload("ShiftType").
		Order("date DESC, id DESC").
		Scopes(database.Paginate(params)).
		Find(&assignments).Error
	if err != nil {
		return nil, 0, err
	}
	return assignments, total, nil
}

// ListForUsersInRange fetches several users' assignments in one query,
// ordered by (user_id, date).
func (r *GormShiftAssignmentRepository) ListForUsersInRange(userIDs []uint64, from, to time.Time) ([]models.ShiftAssignment, error) {
	if len(userIDs) == 0 {
		return []models.ShiftAssignment{}, nil
	}

	var assignments []models.ShiftAssignment
	err := r.db.
		Preload("ShiftType").
		Where("user_id IN ? AND date >= ? AND date <= ?", userIDs, from, to).
		Order("user_id, date").
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}
