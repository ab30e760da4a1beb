package availability

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowdesk/glowdesk-api/models"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type fakeBooking struct {
	staffID *uint
	start   time.Time
	end     time.Time
	status  models.BookingStatus
}

// fakeStore mirrors the query semantics of GormStore: only active staff are
// returned, and cancelled/no-show bookings are filtered out.
type fakeStore struct {
	service         *ServiceInfo
	serviceStaffIDs []uint
	business        *BusinessInfo
	staff           []StaffInfo
	bookings        []fakeBooking

	serviceErr  error
	businessErr error
	staffErr    error
	bookingsErr error
}

func (s *fakeStore) GetService(businessID, serviceID uint) (*ServiceInfo, []uint, error) {
	if s.serviceErr != nil {
		return nil, nil, s.serviceErr
	}
	return s.service, s.serviceStaffIDs, nil
}

func (s *fakeStore) GetBusiness(businessID uint) (*BusinessInfo, error) {
	if s.businessErr != nil {
		return nil, s.businessErr
	}
	if s.business != nil {
		return s.business, nil
	}
	return &BusinessInfo{ID: businessID, Name: "Test Salon"}, nil
}

func (s *fakeStore) GetActiveStaff(businessID uint, ids []uint) ([]StaffInfo, error) {
	if s.staffErr != nil {
		return nil, s.staffErr
	}
	if len(ids) == 0 {
		return s.staff, nil
	}
	result := make([]StaffInfo, 0)
	for _, member := range s.staff {
		for _, id := range ids {
			if member.ID == id {
				result = append(result, member)
				break
			}
		}
	}
	return result, nil
}

func (s *fakeStore) GetBookings(businessID uint, dayStart, dayEnd time.Time) ([]BookingInfo, error) {
	if s.bookingsErr != nil {
		return nil, s.bookingsErr
	}
	result := make([]BookingInfo, 0)
	for i, b := range s.bookings {
		if b.status == models.StatusCancelled || b.status == models.StatusNoShow {
			continue
		}
		if b.start.Before(dayStart) || b.start.After(dayEnd) {
			continue
		}
		result = append(result, BookingInfo{
			ID:        uint(i + 1),
			StaffID:   b.staffID,
			StartTime: b.start,
			EndTime:   b.end,
		})
	}
	return result, nil
}

func ptr(id uint) *uint {
	return &id
}

// today is a fixed reference day, with the clock pinned to noon
var (
	today    = time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC)
	tomorrow = today.AddDate(0, 0, 1)
	noon     = today.Add(12 * time.Hour)
)

func at(day time.Time, hour, minute int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
}

func newTestCalculator(store *fakeStore, now time.Time) *Calculator {
	return NewCalculatorWithClock(store, fixedClock{now: now})
}

func oneStaffStore() *fakeStore {
	return &fakeStore{
		service: &ServiceInfo{ID: 1, BusinessID: 1, Name: "Haircut", DurationMinutes: 60},
		staff:   []StaffInfo{{ID: 10, Name: "Ava"}},
	}
}

func TestCalculateAvailability_FullDayTomorrow(t *testing.T) {
	calc := newTestCalculator(oneStaffStore(), noon)

	slots, err := calc.CalculateAvailability(1, 1, tomorrow, nil)
	require.NoError(t, err)

	// 60-minute service on the 09:00-18:00 window: starts 09:00 through 17:00
	// on the 30-minute grid, since a 17:30 start would end past closing.
	require.Len(t, slots, 17)
	assert.True(t, slots[0].Time.Equal(at(tomorrow, 9, 0)))
	assert.True(t, slots[len(slots)-1].Time.Equal(at(tomorrow, 17, 0)))

	for _, slot := range slots {
		assert.True(t, slot.Available, "slot %s should be free", slot.Time)
		require.NotNil(t, slot.StaffID)
		assert.Equal(t, uint(10), *slot.StaffID)
		assert.Equal(t, "Ava", slot.StaffName)
	}
}

func TestCalculateAvailability_ClosingBoundary(t *testing.T) {
	store := oneStaffStore()
	store.service.DurationMinutes = 90
	calc := newTestCalculator(store, noon)

	slots, err := calc.CalculateAvailability(1, 1, tomorrow, nil)
	require.NoError(t, err)

	closing := at(tomorrow, 18, 0)
	for _, slot := range slots {
		end := slot.Time.Add(90 * time.Minute)
		assert.False(t, end.After(closing), "slot %s ends past closing", slot.Time)
	}
	// Last possible 90-minute start is 16:30.
	assert.True(t, slots[len(slots)-1].Time.Equal(at(tomorrow, 16, 30)))
}

func TestCalculateAvailability_NoPastSlotsToday(t *testing.T) {
	now := at(today, 13, 15)
	calc := newTestCalculator(oneStaffStore(), now)

	slots, err := calc.CalculateAvailability(1, 1, today, nil)
	require.NoError(t, err)

	require.NotEmpty(t, slots)
	for _, slot := range slots {
		assert.True(t, slot.Time.After(now), "slot %s is not after now", slot.Time)
	}
	// First slot after 13:15 on the grid is 13:30.
	assert.True(t, slots[0].Time.Equal(at(today, 13, 30)))
}

func TestCalculateAvailability_SlotExactlyAtNowIsSkipped(t *testing.T) {
	now := at(today, 13, 30)
	calc := newTestCalculator(oneStaffStore(), now)

	slots, err := calc.CalculateAvailability(1, 1, today, nil)
	require.NoError(t, err)

	require.NotEmpty(t, slots)
	// Strictly after now: 13:30 itself is out, 14:00 is the first.
	assert.True(t, slots[0].Time.Equal(at(today, 14, 0)))
}

func TestCalculateAvailability_BookingConflicts(t *testing.T) {
	store := oneStaffStore()
	store.bookings = []fakeBooking{
		{staffID: ptr(10), start: at(tomorrow, 10, 0), end: at(tomorrow, 11, 0), status: models.StatusConfirmed},
	}
	calc := newTestCalculator(store, noon)

	slots, err := calc.CalculateAvailability(1, 1, tomorrow, nil)
	require.NoError(t, err)

	byTime := make(map[string]TimeSlot)
	for _, slot := range slots {
		byTime[slot.Time.Format("15:04")] = slot
	}

	// 09:00 ends exactly at 10:00 and does not overlap the half-open booking.
	assert.True(t, byTime["09:00"].Available)
	// 09:30 ends 10:30, 10:00 and 10:30 start inside or extend into the booking.
	assert.False(t, byTime["09:30"].Available)
	assert.False(t, byTime["10:00"].Available)
	assert.False(t, byTime["10:30"].Available)
	// 11:00 starts exactly at the booking's end.
	assert.True(t, byTime["11:00"].Available)

	// Unavailable slots carry no staff assignment but are still listed.
	assert.Nil(t, byTime["10:00"].StaffID)
	assert.Empty(t, byTime["10:00"].StaffName)
}

func TestCalculateAvailability_CancelledBookingsDoNotBlock(t *testing.T) {
	store := oneStaffStore()
	store.bookings = []fakeBooking{
		{staffID: ptr(10), start: at(tomorrow, 10, 0), end: at(tomorrow, 11, 0), status: models.StatusCancelled},
		{staffID: ptr(10), start: at(tomorrow, 14, 0), end: at(tomorrow, 15, 0), status: models.StatusNoShow},
	}
	calc := newTestCalculator(store, noon)

	slots, err := calc.CalculateAvailability(1, 1, tomorrow, nil)
	require.NoError(t, err)

	for _, slot := range slots {
		assert.True(t, slot.Available, "slot %s blocked by inactive booking", slot.Time)
	}
}

func TestCalculateAvailability_SlotContainingBookingConflicts(t *testing.T) {
	store := oneStaffStore()
	store.service.DurationMinutes = 120
	store.bookings = []fakeBooking{
		// Short booking fully inside a 120-minute slot starting 10:00.
		{staffID: ptr(10), start: at(tomorrow, 10, 30), end: at(tomorrow, 11, 0), status: models.StatusConfirmed},
	}
	calc := newTestCalculator(store, noon)

	slots, err := calc.CalculateAvailability(1, 1, tomorrow, nil)
	require.NoError(t, err)

	for _, slot := range slots {
		if slot.Time.Equal(at(tomorrow, 10, 0)) {
			assert.False(t, slot.Available)
		}
		if slot.Time.Equal(at(tomorrow, 11, 0)) {
			assert.True(t, slot.Available)
		}
	}
}

func TestCalculateAvailability_FirstFitAssignment(t *testing.T) {
	store := oneStaffStore()
	store.staff = []StaffInfo{{ID: 10, Name: "Ava"}, {ID: 20, Name: "Mia"}}
	store.bookings = []fakeBooking{
		{staffID: ptr(10), start: at(tomorrow, 10, 0), end: at(tomorrow, 11, 0), status: models.StatusConfirmed},
	}
	calc := newTestCalculator(store, noon)

	slots, err := calc.CalculateAvailability(1, 1, tomorrow, nil)
	require.NoError(t, err)

	for _, slot := range slots {
		require.True(t, slot.Available)
		require.NotNil(t, slot.StaffID)
		if slot.Time.Equal(at(tomorrow, 10, 0)) {
			// Ava is booked, Mia takes the slot.
			assert.Equal(t, uint(20), *slot.StaffID)
		}
		if slot.Time.Equal(at(tomorrow, 9, 0)) {
			// Both free: first in lookup order wins.
			assert.Equal(t, uint(10), *slot.StaffID)
		}
	}
}

func TestCalculateAvailability_QualifiedStaffOnly(t *testing.T) {
	store := oneStaffStore()
	store.staff = []StaffInfo{{ID: 10, Name: "Ava"}, {ID: 20, Name: "Mia"}}
	// Only Mia is qualified for the service.
	store.serviceStaffIDs = []uint{20}
	calc := newTestCalculator(store, noon)

	slots, err := calc.CalculateAvailability(1, 1, tomorrow, nil)
	require.NoError(t, err)

	for _, slot := range slots {
		require.NotNil(t, slot.StaffID)
		assert.Equal(t, uint(20), *slot.StaffID)
	}
}

func TestCalculateAvailability_RequestedStaffRestriction(t *testing.T) {
	store := oneStaffStore()
	store.staff = []StaffInfo{{ID: 10, Name: "Ava"}, {ID: 20, Name: "Mia"}}
	calc := newTestCalculator(store, noon)

	slots, err := calc.CalculateAvailability(1, 1, tomorrow, ptr(20))
	require.NoError(t, err)
	for _, slot := range slots {
		require.NotNil(t, slot.StaffID)
		assert.Equal(t, uint(20), *slot.StaffID)
	}
}

func TestCalculateAvailability_UnknownStaffYieldsEmpty(t *testing.T) {
	calc := newTestCalculator(oneStaffStore(), noon)

	slots, err := calc.CalculateAvailability(1, 1, tomorrow, ptr(99))
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestCalculateAvailability_NoStaffSoftEmpty(t *testing.T) {
	store := oneStaffStore()
	store.staff = nil
	calc := newTestCalculator(store, noon)

	slots, err := calc.CalculateAvailability(1, 1, tomorrow, nil)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestCalculateAvailability_ServiceNotFound(t *testing.T) {
	store := oneStaffStore()
	store.serviceErr = ErrServiceNotFound
	calc := newTestCalculator(store, noon)

	slots, err := calc.CalculateAvailability(1, 99, tomorrow, nil)
	require.ErrorIs(t, err, ErrServiceNotFound)
	assert.Nil(t, slots)
}

func TestCalculateAvailability_StoreErrorsPropagate(t *testing.T) {
	bookingsErr := errors.New("connection refused")
	store := oneStaffStore()
	store.bookingsErr = bookingsErr
	calc := newTestCalculator(store, noon)

	_, err := calc.CalculateAvailability(1, 1, tomorrow, nil)
	require.ErrorIs(t, err, bookingsErr)
}

func TestCalculateAvailability_DefaultDuration(t *testing.T) {
	store := oneStaffStore()
	store.service.DurationMinutes = 0
	calc := newTestCalculator(store, noon)

	slots, err := calc.CalculateAvailability(1, 1, tomorrow, nil)
	require.NoError(t, err)
	// Treated as 60 minutes: 17 starts, same as an explicit one-hour service.
	assert.Len(t, slots, 17)
}

func TestAvailableDates_IncludesOnlyDaysWithFreeSlots(t *testing.T) {
	store := oneStaffStore()
	// Fully book the staff member two days out.
	blocked := today.AddDate(0, 0, 2)
	store.bookings = []fakeBooking{
		{staffID: ptr(10), start: at(blocked, 9, 0), end: at(blocked, 18, 0), status: models.StatusConfirmed},
	}
	calc := newTestCalculator(store, noon)

	dates, err := calc.AvailableDates(1, 1)
	require.NoError(t, err)

	// Today at noon still has afternoon slots, so all 30 days minus the
	// fully-booked one are present.
	assert.Len(t, dates, 29)
	assert.Contains(t, dates, today.Format("2006-01-02"))
	assert.Contains(t, dates, tomorrow.Format("2006-01-02"))
	assert.NotContains(t, dates, blocked.Format("2006-01-02"))
	assert.Contains(t, dates, today.AddDate(0, 0, 29).Format("2006-01-02"))
	assert.NotContains(t, dates, today.AddDate(0, 0, 30).Format("2006-01-02"))
}

func TestAvailableDates_MatchesPerDayCalculation(t *testing.T) {
	store := oneStaffStore()
	blocked := today.AddDate(0, 0, 5)
	store.bookings = []fakeBooking{
		{staffID: ptr(10), start: at(blocked, 9, 0), end: at(blocked, 18, 0), status: models.StatusConfirmed},
	}
	calc := newTestCalculator(store, noon)

	dates, err := calc.AvailableDates(1, 1)
	require.NoError(t, err)

	listed := make(map[string]bool)
	for _, d := range dates {
		listed[d] = true
	}

	for i := 0; i < 30; i++ {
		day := today.AddDate(0, 0, i)
		slots, err := calc.CalculateAvailability(1, 1, day, nil)
		require.NoError(t, err)

		anyFree := false
		for _, slot := range slots {
			if slot.Available {
				anyFree = true
				break
			}
		}
		assert.Equal(t, anyFree, listed[day.Format("2006-01-02")], "day %s", day.Format("2006-01-02"))
	}
}

func TestAvailableDates_EmptyWhenNoStaff(t *testing.T) {
	store := oneStaffStore()
	store.staff = nil
	calc := newTestCalculator(store, noon)

	dates, err := calc.AvailableDates(1, 1)
	require.NoError(t, err)
	assert.Empty(t, dates)
}

func TestAvailableDates_FailsFastOnError(t *testing.T) {
	store := oneStaffStore()
	store.serviceErr = ErrServiceNotFound
	calc := newTestCalculator(store, noon)

	dates, err := calc.AvailableDates(1, 99)
	require.ErrorIs(t, err, ErrServiceNotFound)
	assert.Nil(t, dates)
}

func TestOverlaps(t *testing.T) {
	base := at(today, 10, 0)
	cases := []struct {
		name        string
		slotStart   time.Time
		slotEnd     time.Time
		wantOverlap bool
	}{
		{"identical", base, base.Add(time.Hour), true},
		{"slot starts inside", base.Add(30 * time.Minute), base.Add(90 * time.Minute), true},
		{"slot ends inside", base.Add(-30 * time.Minute), base.Add(30 * time.Minute), true},
		{"slot contains booking", base.Add(-time.Hour), base.Add(2 * time.Hour), true},
		{"slot inside booking", base.Add(15 * time.Minute), base.Add(45 * time.Minute), true},
		{"touching before", base.Add(-time.Hour), base, false},
		{"touching after", base.Add(time.Hour), base.Add(2 * time.Hour), false},
		{"disjoint before", base.Add(-2 * time.Hour), base.Add(-time.Hour), false},
		{"disjoint after", base.Add(2 * time.Hour), base.Add(3 * time.Hour), false},
	}

	bookingStart, bookingEnd := base, base.Add(time.Hour)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.wantOverlap, overlaps(tc.slotStart, tc.slotEnd, bookingStart, bookingEnd))
		})
	}
}

func TestHasConflict_IgnoresOtherStaffAndUnassigned(t *testing.T) {
	bookings := []BookingInfo{
		{ID: 1, StaffID: ptr(20), StartTime: at(today, 10, 0), EndTime: at(today, 11, 0)},
		{ID: 2, StaffID: nil, StartTime: at(today, 10, 0), EndTime: at(today, 11, 0)},
	}

	assert.False(t, hasConflict(10, at(today, 10, 0), at(today, 11, 0), bookings))
	assert.True(t, hasConflict(20, at(today, 10, 0), at(today, 11, 0), bookings))
}
