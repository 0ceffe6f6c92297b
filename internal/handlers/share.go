package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/markoco14/ennytime-sub000/internal/dto"
	apierrors "github.com/markoco14/ennytime-sub000/internal/errors"
	"github.com/markoco14/ennytime-sub000/internal/middleware"
	"github.com/markoco14/ennytime-sub000/internal/services"
)

// ShareHandler coordinates partner link HTTP handlers.
type ShareHandler struct {
	shareService *services.ShareService
}

// NewShareHandler creates a new ShareHandler.
func NewShareHandler(shareService *services.ShareService) *ShareHandler {
	return &ShareHandler{
		shareService: shareService,
	}
}

// CreateShare shares the caller's calendar with the named user.
func (h *ShareHandler) CreateShare(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateShareRequest struct {
		ReceiverUsername string `json:"receiver_username" binding:"required"`
	}

	var req CreateShareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	share, err := h.shareService.CreateShare(userID, req.ReceiverUsername)
	if err != nil {
		respondShareError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToShareDTO(*share))
}

// GetOutgoingShare returns the share the caller sends, if any.
func (h *ShareHandler) GetOutgoingShare(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	share, err := h.shareService.GetOutgoingShare(userID)
	if err != nil {
		respondShareError(c, err)
		return
	}

	if share == nil {
		c.JSON(http.StatusOK, gin.H{"share": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"share": dto.ToShareDTO(*share)})
}

// GetPartner returns the user whose calendar the caller sees, if any.
func (h *ShareHandler) GetPartner(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	partner, err := h.shareService.GetPartnerFor(userID)
	if err != nil {
		respondShareError(c, err)
		return
	}

	if partner == nil {
		c.JSON(http.StatusOK, gin.H{"partner": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"partner": dto.ToPublicUserDTO(*partner)})
}

// DeleteShare severs the partner link from either end.
func (h *ShareHandler) DeleteShare(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	shareID, err := parseIDParam(c, "id")
	if err != nil {
		apierrors.BadRequest(c, "Invalid share ID")
		return
	}

	if err := h.shareService.DeleteShare(shareID, userID); err != nil {
		respondShareError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Share deleted",
	})
}

func respondShareError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrCannotShareWithSelf):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrReceiverNotFound),
		errors.Is(err, services.ErrShareNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrAlreadySharing),
		errors.Is(err, services.ErrReceiverTaken):
		apierrors.Conflict(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
