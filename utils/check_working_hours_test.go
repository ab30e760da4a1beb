package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/glowdesk/glowdesk-api/models"
)

func strPtr(s string) *string { return &s }

// 2026-09-15 is a Tuesday.
func tuesdayAt(hour, minute int) time.Time {
	return time.Date(2026, time.September, 15, hour, minute, 0, 0, time.UTC)
}

func tuesdayHours() []models.WorkingHours {
	return []models.WorkingHours{
		{
			DayOfWeek: models.Tuesday,
			StartTime: "10:00",
			EndTime:   "16:00",
			IsWorkDay: true,
		},
	}
}

func TestWithinWorkingHours_InsideWindow(t *testing.T) {
	ok, err := WithinWorkingHours(tuesdayHours(), tuesdayAt(10, 0))
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = WithinWorkingHours(tuesdayHours(), tuesdayAt(15, 30))
	require.NoError(t, err)
	require.True(t, ok)
}

func TestWithinWorkingHours_OutsideWindow(t *testing.T) {
	ok, err := WithinWorkingHours(tuesdayHours(), tuesdayAt(9, 30))
	require.NoError(t, err)
	require.False(t, ok)

	// Closing time itself is not bookable
	ok, err = WithinWorkingHours(tuesdayHours(), tuesdayAt(16, 0))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestWithinWorkingHours_NonWorkDay(t *testing.T) {
	hours := tuesdayHours()
	hours[0].IsWorkDay = false

	ok, err := WithinWorkingHours(hours, tuesdayAt(12, 0))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestWithinWorkingHours_DayWithoutRowIsClosed(t *testing.T) {
	// Wednesday has no row, so it is closed
	wednesday := tuesdayAt(12, 0).AddDate(0, 0, 1)

	ok, err := WithinWorkingHours(tuesdayHours(), wednesday)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestWithinWorkingHours_BreakWindow(t *testing.T) {
	hours := tuesdayHours()
	hours[0].BreakStart = strPtr("13:00")
	hours[0].BreakEnd = strPtr("14:00")

	ok, err := WithinWorkingHours(hours, tuesdayAt(13, 30))
	require.NoError(t, err)
	require.False(t, ok)

	// The break end boundary is bookable again
	ok, err = WithinWorkingHours(hours, tuesdayAt(14, 0))
	require.NoError(t, err)
	require.True(t, ok)
}

func TestWithinWorkingHours_NoConfigurationIsUnrestricted(t *testing.T) {
	ok, err := WithinWorkingHours(nil, tuesdayAt(3, 0))
	require.NoError(t, err)
	require.True(t, ok)
}

func TestWithinWorkingHours_MalformedClockErrors(t *testing.T) {
	hours := tuesdayHours()
	hours[0].StartTime = "ten o'clock"

	_, err := WithinWorkingHours(hours, tuesdayAt(12, 0))
	require.Error(t, err)
}

func TestCheckWorkingHours_UsesConfiguredRows(t *testing.T) {
	mock := newConnMock(t)
	mock.ExpectQuery(`SELECT \* FROM "working_hours"`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"business_id", "day_of_week", "start_time", "end_time", "is_work_day"}).
			AddRow(1, int(models.Tuesday), "10:00", "16:00", true))

	ok, err := CheckWorkingHours(1, tuesdayAt(9, 0))
	require.NoError(t, err)
	require.False(t, ok)
}

func TestCheckWorkingHours_QueryErrorPropagates(t *testing.T) {
	mock := newConnMock(t)
	mock.ExpectQuery(`SELECT \* FROM "working_hours"`).
		WillReturnError(errors.New("connection reset"))

	_, err := CheckWorkingHours(1, tuesdayAt(12, 0))
	require.Error(t, err)
}
