package dto

import (
	"github.com/markoco14/ennytime-sub000/internal/constants"
	"github.com/markoco14/ennytime-sub000/internal/models"
)

// ShiftTypeDTO represents a shift type in API responses
type ShiftTypeDTO struct {
	ID        uint64 `json:"id"`
	LongName  string `json:"long_name"`
	ShortName string `json:"short_name"`
}

// ShiftAssignmentDTO represents one scheduled shift. The type's names are
// always included so clients never re-fetch the catalog.
type ShiftAssignmentDTO struct {
	ID          uint64 `json:"id"`
	ShiftTypeID uint64 `json:"shift_type_id"`
	UserID      uint64 `json:"user_id"`
	Date        string `json:"date"`
	LongName    string `json:"long_name"`
	ShortName   string `json:"short_name"`
}

// ToShiftTypeDTO converts a ShiftType model to ShiftTypeDTO
func ToShiftTypeDTO(shiftType models.ShiftType) ShiftTypeDTO {
	return ShiftTypeDTO{
		ID:        shiftType.ID,
		LongName:  shiftType.LongName,
		ShortName: shiftType.ShortName,
	}
}

// ToShiftTypeDTOs converts a slice of ShiftType models
func ToShiftTypeDTOs(shiftTypes []models.ShiftType) []ShiftTypeDTO {
	dtos := make([]ShiftTypeDTO, len(shiftTypes))
	for i, shiftType := range shiftTypes {
		dtos[i] = ToShiftTypeDTO(shiftType)
	}
	return dtos
}

// ToShiftAssignmentDTO converts a ShiftAssignment model (with its type
// preloaded) to ShiftAssignmentDTO
func ToShiftAssignmentDTO(assignment models.ShiftAssignment) ShiftAssignmentDTO {
	return ShiftAssignmentDTO{
		ID:          assignment.ID,
		ShiftTypeID: assignment.ShiftTypeID,
		UserID:      assignment.UserID,
		Date:        assignment.Date.Format(constants.DateFormat),
		LongName:    assignment.ShiftType.LongName,
		ShortName:   assignment.ShiftType.ShortName,
	}
}

// ToShiftAssignmentDTOs converts a slice of ShiftAssignment models
func ToShiftAssignmentDTOs(assignments []models.ShiftAssignment) []ShiftAssignmentDTO {
	dtos := make([]ShiftAssignmentDTO, len(assignments))
	for i, assignment := range assignments {
		dtos[i] = ToShiftAssignmentDTO(assignment)
	}
	return dtos
}
