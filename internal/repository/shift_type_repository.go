package repository

import (
	"github.com/markoco14/ennytime-sub000/internal/models"
	"gorm.io/gorm"
)

// GormShiftTypeRepository is a GORM implementation of ShiftTypeRepository
type GormShiftTypeRepository struct {
	db *gorm.DB
}

// NewShiftTypeRepository creates a new ShiftTypeRepository
func NewShiftTypeRepository(db *gorm.DB) ShiftTypeRepository {
	return &GormShiftTypeRepository{db: db}
}

// Create creates a new shift type
func (r *GormShiftTypeRepository) Create(shiftType *models.ShiftType) error {
	return r.db.Create(shiftType).Error
}

// FindByID finds a shift type by ID
func (r *GormShiftTypeRepository) FindByID(id uint64) (*models.ShiftType, error) {
	var shiftType models.ShiftType
	if err := r.db.First(&shiftType, id).Error; err != nil {
		return nil, err
	}
	return &shiftType, nil
}

// ListByUserID lists all shift types owned by a user in insertion order
func (r *GormShiftTypeRepository) ListByUserID(userID uint64) ([]models.ShiftType, error) {
	var shiftTypes []models.ShiftType
	if err := r.db.Where("user_id = ?", userID).Order("id").Find(&shiftTypes).Error; err != nil {
		return nil, err
	}
	return shiftTypes, nil
}

// CountByUserID counts the shift types owned by a user
func (r *GormShiftTypeRepository) CountByUserID(userID uint64) (int64, error) {
	var count int64
	err := r.db.Model(&models.ShiftType{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

// Update persists changes to a shift type
func (r *GormShiftTypeRepository) Update(shiftType *models.ShiftType) error {
	return r.db.Save(shiftType).Error
}

// DeleteWithAssignments deletes the assignments referencing a shift type,
// then the type itself, as one transaction.
func (r *GormShiftTypeRepository) DeleteWithAssignments(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("shift_type_id = ?", id).Delete(&models.ShiftAssignment{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.ShiftType{}, id).Error
	})
}
