package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/markoco14/ennytime-sub000/internal/dto"
	apierrors "github.com/markoco14/ennytime-sub000/internal/errors"
	"github.com/markoco14/ennytime-sub000/internal/middleware"
	"github.com/markoco14/ennytime-sub000/internal/services"
)

// ShiftTypeHandler coordinates shift catalog HTTP handlers.
type ShiftTypeHandler struct {
	shiftService *services.ShiftService
}

// NewShiftTypeHandler creates a new ShiftTypeHandler.
func NewShiftTypeHandler(shiftService *services.ShiftService) *ShiftTypeHandler {
	return &ShiftTypeHandler{
		shiftService: shiftService,
	}
}

// CreateShiftType adds a shift type to the caller's catalog. The short
// name is derived server-side from the long name.
func (h *ShiftTypeHandler) CreateShiftType(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateShiftTypeRequest struct {
		LongName string `json:"long_name" binding:"required"`
	}

	var req CreateShiftTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	shiftType, err := h.shiftService.CreateShiftType(userID, req.LongName)
	if err != nil {
		respondShiftError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToShiftTypeDTO(*shiftType))
}

// ListShiftTypes returns the caller's catalog.
func (h *ShiftTypeHandler) ListShiftTypes(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	shiftTypes, err := h.shiftService.ListShiftTypes(userID)
	if err != nil {
		respondShiftError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"shift_types": dto.ToShiftTypeDTOs(shiftTypes),
	})
}

// RenameShiftType updates both names of a shift type. Both are taken as
// given; the short name is not re-derived.
func (h *ShiftTypeHandler) RenameShiftType(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	shiftTypeID, err := parseIDParam(c, "id")
	if err != nil {
		apierrors.BadRequest(c, "Invalid shift type ID")
		return
	}

	type RenameShiftTypeRequest struct {
		LongName  string `json:"long_name" binding:"required"`
		ShortName string `json:"short_name" binding:"required"`
	}

	var req RenameShiftTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	shiftType, err := h.shiftService.RenameShiftType(shiftTypeID, userID, req.LongName, req.ShortName)
	if err != nil {
		respondShiftError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToShiftTypeDTO(*shiftType))
}

// DeleteShiftType removes a shift type and all of its scheduled
// assignments. The response flags an emptied catalog so the client can
// send the user back to setup.
func (h *ShiftTypeHandler) DeleteShiftType(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	shiftTypeID, err := parseIDParam(c, "id")
	if err != nil {
		apierrors.BadRequest(c, "Invalid shift type ID")
		return
	}

	catalogEmpty, err := h.shiftService.DeleteShiftType(shiftTypeID, userID)
	if err != nil {
		respondShiftError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Shift type deleted",
		"catalog_empty": catalogEmpty,
	})
}

func parseIDParam(c *gin.Context, name string) (uint64, error) {
	return strconv.ParseUint(c.Param(name), 10, 64)
}

func respondShiftError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrShiftNameRequired),
		errors.Is(err, services.ErrShiftNameTooLong):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrShiftTypeNotFound),
		errors.Is(err, services.ErrAssignmentNotFound):
		apierrors.NotFound(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
