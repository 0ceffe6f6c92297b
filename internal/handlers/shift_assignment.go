package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/markoco14/ennytime-sub000/internal/constants"
	"github.com/markoco14/ennytime-sub000/internal/dto"
	apierrors "github.com/markoco14/ennytime-sub000/internal/errors"
	"github.com/markoco14/ennytime-sub000/internal/middleware"
	"github.com/markoco14/ennytime-sub000/internal/services"
	"github.com/markoco14/ennytime-sub000/internal/utils"
)

// ShiftAssignmentHandler coordinates schedule HTTP handlers.
type ShiftAssignmentHandler struct {
	shiftService *services.ShiftService
}

// NewShiftAssignmentHandler creates a new ShiftAssignmentHandler.
func NewShiftAssignmentHandler(shiftService *services.ShiftService) *ShiftAssignmentHandler {
	return &ShiftAssignmentHandler{
		shiftService: shiftService,
	}
}

// CreateAssignment schedules a shift on a date.
func (h *ShiftAssignmentHandler) CreateAssignment(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	req, ok := bindAssignmentRequest(c)
	if !ok {
		return
	}

	assignment, err := h.shiftService.CreateAssignment(userID, req.shiftTypeID, req.date)
	if err != nil {
		respondShiftError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToShiftAssignmentDTO(*assignment))
}

// ToggleAssignment adds the shift on the date, or removes it when it is
// already there.
func (h *ShiftAssignmentHandler) ToggleAssignment(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	req, ok := bindAssignmentRequest(c)
	if !ok {
		return
	}

	assignment, err := h.shiftService.ToggleAssignment(userID, req.shiftTypeID, req.date)
	if err != nil {
		respondShiftError(c, err)
		return
	}

	if assignment == nil {
		c.JSON(http.StatusOK, gin.H{
			"toggled":    "removed",
			"assignment": nil,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"toggled":    "added",
		"assignment": dto.ToShiftAssignmentDTO(*assignment),
	})
}

// DeleteAssignment removes one schedule entry.
func (h *ShiftAssignmentHandler) DeleteAssignment(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	assignmentID, err := parseIDParam(c, "id")
	if err != nil {
		apierrors.BadRequest(c, "Invalid assignment ID")
		return
	}

	if err := h.shiftService.DeleteAssignment(assignmentID, userID); err != nil {
		respondShiftError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Assignment deleted",
	})
}

// ListAssignments returns the caller's schedule. With from/to it is the
// inclusive date range ordered by date; without, the paginated full
// history, newest first.
func (h *ShiftAssignmentHandler) ListAssignments(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	fromStr := c.Query("from")
	toStr := c.Query("to")

	if fromStr == "" && toStr == "" {
		params := utils.GetPaginationParams(c)
		assignments, total, err := h.shiftService.ListAssignmentHistory(userID, params)
		if err != nil {
			respondShiftError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"assignments": dto.ToShiftAssignmentDTOs(assignments),
			"pagination": utils.PaginationResponse{
				Page:  params.Page,
				Limit: params.Limit,
				Total: total,
			},
		})
		return
	}

	from, err := time.Parse(constants.DateFormat, fromStr)
	if err != nil {
		apierrors.BadRequest(c, "Invalid from date, expected YYYY-MM-DD")
		return
	}
	to, err := time.Parse(constants.DateFormat, toStr)
	if err != nil {
		apierrors.BadRequest(c, "Invalid to date, expected YYYY-MM-DD")
		return
	}
	if to.Before(from) {
		apierrors.BadRequest(c, "Range end precedes range start")
		return
	}

	assignments, err := h.shiftService.ListAssignments(userID, from, to)
	if err != nil {
		respondShiftError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"assignments": dto.ToShiftAssignmentDTOs(assignments),
	})
}

type assignmentRequest struct {
	shiftTypeID uint64
	date        time.Time
}

func bindAssignmentRequest(c *gin.Context) (assignmentRequest, bool) {
	type AssignmentRequest struct {
		ShiftTypeID uint64 `json:"shift_type_id" binding:"required"`
		Date        string `json:"date" binding:"required"`
	}

	var req AssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return assignmentRequest{}, false
	}

	date, err := time.Parse(constants.DateFormat, req.Date)
	if err != nil {
		apierrors.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return assignmentRequest{}, false
	}

	return assignmentRequest{shiftTypeID: req.ShiftTypeID, date: date}, true
}
