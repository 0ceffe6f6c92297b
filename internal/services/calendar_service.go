package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/markoco14/ennytime-sub000/internal/calendar"
	"github.com/markoco14/ennytime-sub000/internal/models"
	"github.com/markoco14/ennytime-sub000/internal/repository"
)

var ErrInvalidMonth = errors.New("month must be between 1 and 12")

// DayView is one cell of the month grid. Own and Partner are always
// non-nil; padding cells from adjacent months keep them empty.
type DayView struct {
	Date    time.Time
	InMonth bool
	Own     []models.ShiftAssignment
	Partner []models.ShiftAssignment
}

// MonthView is the aggregate handed to presentation: the full grid in
// render order plus the partner whose shifts appear in it, if any.
type MonthView struct {
	Year      int
	Month     time.Month
	WeekStart time.Weekday
	Partner   *models.User
	Days      []DayView
}

// CalendarService aggregates the month grid with both partners' shifts.
type CalendarService struct {
	assignmentRepo repository.ShiftAssignmentRepository
	shareService   *ShareService
}

// NewCalendarService creates a new CalendarService.
func NewCalendarService(assignmentRepo repository.ShiftAssignmentRepository, shareService *ShareService) *CalendarService {
	return &CalendarService{
		assignmentRepo: assignmentRepo,
		shareService:   shareService,
	}
}

// GetMonthView builds the calendar for (year, month) as seen by userID:
// the padded week grid with the viewer's own assignments and, when a
// partner shares with them, the partner's. Only in-month days are queried;
// grid padding days stay empty.
func (s *CalendarService) GetMonthView(userID uint64, year int, month time.Month, weekStart time.Weekday) (*MonthView, error) {
	if month < time.January || month > time.December {
		return nil, ErrInvalidMonth
	}

	grid := calendar.MonthGrid(year, month, weekStart)

	partner, err := s.shareService.GetPartnerFor(userID)
	if err != nil {
		return nil, err
	}

	userIDs := []uint64{userID}
	if partner != nil {
		userIDs = append(userIDs, partner.ID)
	}

	first, last := calendar.MonthBounds(year, month)
	assignments, err := s.assignmentRepo.ListForUsersInRange(userIDs, first, last)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch assignments: %w", err)
	}

	days := make([]DayView, len(grid))
	index := make(map[time.Time]*DayView, len(grid))
	for i, date := range grid {
		days[i] = DayView{
			Date:    date,
			InMonth: date.Month() == month,
			Own:     []models.ShiftAssignment{},
			Partner: []models.ShiftAssignment{},
		}
		index[date] = &days[i]
	}

	for _, assignment := range assignments {
		day, ok := index[calendar.DateOnly(assignment.Date)]
		if !ok {
			continue
		}
		if assignment.UserID == userID {
			day.Own = append(day.Own, assignment)
		} else {
			day.Partner = append(day.Partner, assignment)
		}
	}

	return &MonthView{
		Year:      year,
		Month:     month,
		WeekStart: weekStart,
		Partner:   partner,
		Days:      days,
	}, nil
}
