package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/markoco14/ennytime-sub000/internal/calendar"
	"github.com/markoco14/ennytime-sub000/internal/dto"
	apierrors "github.com/markoco14/ennytime-sub000/internal/errors"
	"github.com/markoco14/ennytime-sub000/internal/middleware"
	"github.com/markoco14/ennytime-sub000/internal/services"
)

// CalendarHandler serves the aggregated month view.
type CalendarHandler struct {
	calendarService  *services.CalendarService
	defaultWeekStart time.Weekday
}

// NewCalendarHandler creates a new CalendarHandler.
func NewCalendarHandler(calendarService *services.CalendarService, defaultWeekStart time.Weekday) *CalendarHandler {
	return &CalendarHandler{
		calendarService:  calendarService,
		defaultWeekStart: defaultWeekStart,
	}
}

// GetMonthView returns the month grid with the caller's own shifts and,
// when a partner shares with them, the partner's.
func (h *CalendarHandler) GetMonthView(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1 || year > 9999 {
		apierrors.BadRequest(c, "Invalid year")
		return
	}

	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		apierrors.BadRequest(c, "Invalid month")
		return
	}

	weekStart := h.defaultWeekStart
	if override := c.Query("week_start"); override != "" {
		weekStart, err = calendar.ParseWeekStart(override)
		if err != nil {
			apierrors.BadRequest(c, "Invalid week_start")
			return
		}
	}

	view, err := h.calendarService.GetMonthView(userID, year, time.Month(month), weekStart)
	if err != nil {
		if errors.Is(err, services.ErrInvalidMonth) {
			apierrors.BadRequest(c, err.Error())
			return
		}
		apierrors.InternalError(c, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, dto.ToMonthViewDTO(*view))
}
