package services

import (
	"testing"
	"time"

	"github.com/markoco14/ennytime-sub000/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type calendarTestEnv struct {
	db           *gorm.DB
	shiftService *ShiftService
	shareService *ShareService
	calendar     *CalendarService
}

func setupCalendarTestEnv(t *testing.T) calendarTestEnv {
	t.Helper()

	db := setupTestDB(t)
	assignmentRepo := repository.NewShiftAssignmentRepository(db)
	shareService := newShareService(db)

	return calendarTestEnv{
		db:           db,
		shiftService: newShiftService(db),
		shareService: shareService,
		calendar:     NewCalendarService(assignmentRepo, shareService),
	}
}

func findDay(t *testing.T, view *MonthView, date time.Time) *DayView {
	t.Helper()
	for i := range view.Days {
		if view.Days[i].Date.Equal(date) {
			return &view.Days[i]
		}
	}
	t.Fatalf("date %s not in month view", date.Format("2006-01-02"))
	return nil
}

func TestCalendarService_GetMonthView_OwnShifts(t *testing.T) {
	env := setupCalendarTestEnv(t)
	user := createTestUser(t, env.db, "alice")

	dayType, err := env.shiftService.CreateShiftType(user.ID, "Day")
	require.NoError(t, err)
	_, err = env.shiftService.CreateAssignment(user.ID, dayType.ID, time.Date(2024, time.February, 14, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	view, err := env.calendar.GetMonthView(user.ID, 2024, time.February, time.Sunday)
	require.NoError(t, err)
	require.Len(t, view.Days, 35)
	require.Nil(t, view.Partner)

	day := findDay(t, view, time.Date(2024, time.February, 14, 0, 0, 0, 0, time.UTC))
	require.True(t, day.InMonth)
	require.Len(t, day.Own, 1)
	require.Equal(t, "D", day.Own[0].ShiftType.ShortName)
	require.Empty(t, day.Partner)
}

func TestCalendarService_GetMonthView_PartnerBucketing(t *testing.T) {
	env := setupCalendarTestEnv(t)
	alice := createTestUser(t, env.db, "alice")
	bob := createTestUser(t, env.db, "bob")

	// Bob shares with Alice: Bob is sender, Alice is receiver.
	_, err := env.shareService.CreateShare(bob.ID, "alice")
	require.NoError(t, err)

	aliceType, err := env.shiftService.CreateShiftType(alice.ID, "Day")
	require.NoError(t, err)
	bobType, err := env.shiftService.CreateShiftType(bob.ID, "Night")
	require.NoError(t, err)

	feb14 := time.Date(2024, time.February, 14, 0, 0, 0, 0, time.UTC)
	_, err = env.shiftService.CreateAssignment(alice.ID, aliceType.ID, feb14)
	require.NoError(t, err)
	_, err = env.shiftService.CreateAssignment(bob.ID, bobType.ID, feb14)
	require.NoError(t, err)

	view, err := env.calendar.GetMonthView(alice.ID, 2024, time.February, time.Sunday)
	require.NoError(t, err)
	require.NotNil(t, view.Partner)
	require.Equal(t, bob.ID, view.Partner.ID)

	day := findDay(t, view, feb14)
	require.Len(t, day.Own, 1)
	require.Equal(t, alice.ID, day.Own[0].UserID)
	require.Len(t, day.Partner, 1)
	require.Equal(t, bob.ID, day.Partner[0].UserID)
	require.Equal(t, "N", day.Partner[0].ShiftType.ShortName)

	// Sharing is one-directional: Bob does not see Alice.
	bobView, err := env.calendar.GetMonthView(bob.ID, 2024, time.February, time.Sunday)
	require.NoError(t, err)
	require.Nil(t, bobView.Partner)
	for _, d := range bobView.Days {
		require.Empty(t, d.Partner)
	}
}

func TestCalendarService_GetMonthView_EveryInMonthDayPresent(t *testing.T) {
	env := setupCalendarTestEnv(t)
	user := createTestUser(t, env.db, "alice")

	view, err := env.calendar.GetMonthView(user.ID, 2024, time.February, time.Sunday)
	require.NoError(t, err)

	inMonth := 0
	for _, day := range view.Days {
		require.NotNil(t, day.Own)
		require.NotNil(t, day.Partner)
		if day.InMonth {
			inMonth++
		}
	}
	require.Equal(t, 29, inMonth, "leap February has 29 in-month days")
}

func TestCalendarService_GetMonthView_PaddingDaysNeverPopulated(t *testing.T) {
	env := setupCalendarTestEnv(t)
	user := createTestUser(t, env.db, "alice")

	shiftType, err := env.shiftService.CreateShiftType(user.ID, "Day")
	require.NoError(t, err)

	// 2024-01-28 is on the February grid but belongs to January.
	jan28 := time.Date(2024, time.January, 28, 0, 0, 0, 0, time.UTC)
	_, err = env.shiftService.CreateAssignment(user.ID, shiftType.ID, jan28)
	require.NoError(t, err)

	view, err := env.calendar.GetMonthView(user.ID, 2024, time.February, time.Sunday)
	require.NoError(t, err)

	day := findDay(t, view, jan28)
	require.False(t, day.InMonth)
	require.Empty(t, day.Own, "padding cells stay empty even when assignments exist there")
}

func TestCalendarService_GetMonthView_Idempotent(t *testing.T) {
	env := setupCalendarTestEnv(t)
	user := createTestUser(t, env.db, "alice")

	shiftType, err := env.shiftService.CreateShiftType(user.ID, "Day")
	require.NoError(t, err)
	_, err = env.shiftService.CreateAssignment(user.ID, shiftType.ID, time.Date(2024, time.February, 14, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	first, err := env.calendar.GetMonthView(user.ID, 2024, time.February, time.Sunday)
	require.NoError(t, err)
	second, err := env.calendar.GetMonthView(user.ID, 2024, time.February, time.Sunday)
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestCalendarService_GetMonthView_InvalidMonth(t *testing.T) {
	env := setupCalendarTestEnv(t)
	user := createTestUser(t, env.db, "alice")

	_, err := env.calendar.GetMonthView(user.ID, 2024, time.Month(13), time.Sunday)
	require.ErrorIs(t, err, ErrInvalidMonth)

	_, err = env.calendar.GetMonthView(user.ID, 2024, time.Month(0), time.Sunday)
	require.ErrorIs(t, err, ErrInvalidMonth)
}
