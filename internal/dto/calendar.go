package dto

import (
	"strings"

	"github.com/markoco14/ennytime-sub000/internal/calendar"
	"github.com/markoco14/ennytime-sub000/internal/constants"
	"github.com/markoco14/ennytime-sub000/internal/services"
)

// MonthRefDTO is a (year, month) pair for calendar navigation
type MonthRefDTO struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// DayViewDTO is one cell of the rendered month grid
type DayViewDTO struct {
	Date    string               `json:"date"`
	InMonth bool                 `json:"in_month"`
	Own     []ShiftAssignmentDTO `json:"own"`
	Partner []ShiftAssignmentDTO `json:"partner"`
}

// MonthViewDTO is the aggregated month calendar for presentation
type MonthViewDTO struct {
	Year      int            `json:"year"`
	Month     int            `json:"month"`
	WeekStart string         `json:"week_start"`
	Partner   *PublicUserDTO `json:"partner"`
	Days      []DayViewDTO   `json:"days"`
	Prev      MonthRefDTO    `json:"prev"`
	Next      MonthRefDTO    `json:"next"`
}

// ToMonthViewDTO converts a MonthView aggregate to MonthViewDTO
func ToMonthViewDTO(view services.MonthView) MonthViewDTO {
	days := make([]DayViewDTO, len(view.Days))
	for i, day := range view.Days {
		days[i] = DayViewDTO{
			Date:    day.Date.Format(constants.DateFormat),
			InMonth: day.InMonth,
			Own:     ToShiftAssignmentDTOs(day.Own),
			Partner: ToShiftAssignmentDTOs(day.Partner),
		}
	}

	prevYear, prevMonth := calendar.PrevMonth(view.Year, view.Month)
	nextYear, nextMonth := calendar.NextMonth(view.Year, view.Month)

	dto := MonthViewDTO{
		Year:      view.Year,
		Month:     int(view.Month),
		WeekStart: strings.ToLower(view.WeekStart.String()),
		Days:      days,
		Prev:      MonthRefDTO{Year: prevYear, Month: int(prevMonth)},
		Next:      MonthRefDTO{Year: nextYear, Month: int(nextMonth)},
	}

	if view.Partner != nil {
		partner := ToPublicUserDTO(*view.Partner)
		dto.Partner = &partner
	}

	return dto
}
