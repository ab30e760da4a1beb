package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/glowdesk/glowdesk-api/db"
)

// newConnMock swaps the package-level connection for a sqlmock-backed one
// for the duration of the test.
func newConnMock(t *testing.T) sqlmock.Sqlmock {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	prev := db.DB
	db.DB = gormDB
	t.Cleanup(func() {
		db.DB = prev
		sqlDB.Close()
	})
	return mock
}

var slotStart = time.Date(2026, time.September, 15, 10, 0, 0, 0, time.UTC)

func TestCheckStaffAvailability_ConflictingBooking(t *testing.T) {
	mock := newConnMock(t)
	mock.ExpectQuery(`SELECT \* FROM bookings`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

	available, err := CheckStaffAvailability(7, slotStart, time.Hour)
	require.NoError(t, err)
	require.False(t, available)
}

func TestCheckStaffAvailability_NoConflict(t *testing.T) {
	mock := newConnMock(t)
	mock.ExpectQuery(`SELECT \* FROM bookings`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	available, err := CheckStaffAvailability(7, slotStart, time.Hour)
	require.NoError(t, err)
	require.True(t, available)
}

func TestCheckStaffAvailability_QueryErrorIsNotAvailability(t *testing.T) {
	mock := newConnMock(t)
	mock.ExpectQuery(`SELECT \* FROM bookings`).
		WillReturnError(errors.New("connection reset"))

	available, err := CheckStaffAvailability(7, slotStart, time.Hour)
	require.Error(t, err)
	require.False(t, available)
}
