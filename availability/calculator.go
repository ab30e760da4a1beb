package availability

import (
	"time"
)

const (
	// Default operating window applied to every business. Per-business hours
	// live in the working_hours table but are not consulted yet.
	openHour  = 9
	closeHour = 18

	// Slots start every 30 minutes regardless of service duration. A long
	// service therefore yields overlapping slot windows 30 minutes apart;
	// callers want every possible start time, so these are not deduplicated.
	slotStepMinutes = 30

	defaultDurationMinutes = 60

	// AvailableDates scans today plus the following days up to this total
	scanDays = 30
)

// Calculator derives bookable time slots from the business's services, staff
// and existing bookings. It only reads; every call recomputes from scratch.
type Calculator struct {
	store Store
	clock Clock
}

func NewCalculator(store Store) *Calculator {
	return &Calculator{store: store, clock: realClock{}}
}

// NewCalculatorWithClock is used by tests to pin the wall clock
func NewCalculatorWithClock(store Store, clock Clock) *Calculator {
	return &Calculator{store: store, clock: clock}
}

// CalculateAvailability returns one slot per 30-minute step across the
// operating window of the given date, each marked available when at least one
// qualified, active staff member has no conflicting booking. The first free
// staff member in lookup order is assigned to the slot. Passing a staffID
// restricts the calculation to that one staff member.
//
// "No qualified staff" yields an empty result, not an error. An unknown
// service is the one hard failure (ErrServiceNotFound).
func (c *Calculator) CalculateAvailability(businessID, serviceID uint, date time.Time, staffID *uint) ([]TimeSlot, error) {
	service, serviceStaffIDs, err := c.store.GetService(businessID, serviceID)
	if err != nil {
		return nil, err
	}

	// Fetched for future per-business operating hours; the window below is
	// still the fixed default.
	if _, err := c.store.GetBusiness(businessID); err != nil {
		return nil, err
	}

	staff, err := c.resolveStaff(businessID, serviceStaffIDs, staffID)
	if err != nil {
		return nil, err
	}
	if len(staff) == 0 {
		return []TimeSlot{}, nil
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	dayEnd := time.Date(date.Year(), date.Month(), date.Day(), 23, 59, 59, 0, date.Location())

	bookings, err := c.store.GetBookings(businessID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	return c.generateSlots(date, service.Duration(), staff, bookings), nil
}

// resolveStaff builds the qualified staff set. A requested staff member must
// be active and belong to the business; otherwise the set is the service's
// explicit staff list, or every active staff member when the service lists none.
func (c *Calculator) resolveStaff(businessID uint, serviceStaffIDs []uint, staffID *uint) ([]StaffInfo, error) {
	if staffID != nil {
		return c.store.GetActiveStaff(businessID, []uint{*staffID})
	}
	if len(serviceStaffIDs) > 0 {
		return c.store.GetActiveStaff(businessID, serviceStaffIDs)
	}
	return c.store.GetActiveStaff(businessID, nil)
}

// generateSlots walks the 30-minute grid across the operating window. Past
// slots and slots that would run beyond closing are omitted entirely rather
// than reported as unavailable.
func (c *Calculator) generateSlots(date time.Time, duration time.Duration, staff []StaffInfo, bookings []BookingInfo) []TimeSlot {
	now := c.clock.Now()
	closing := time.Date(date.Year(), date.Month(), date.Day(), closeHour, 0, 0, 0, date.Location())

	slots := make([]TimeSlot, 0)
	for hour := openHour; hour < closeHour; hour++ {
		for minute := 0; minute < 60; minute += slotStepMinutes {
			start := time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location())
			if !start.After(now) {
				continue
			}
			end := start.Add(duration)
			if end.After(closing) {
				continue
			}

			slot := TimeSlot{Time: start}
			// First-fit: staff are tried in lookup order and the first one
			// without a conflicting booking takes the slot.
			for i := range staff {
				if hasConflict(staff[i].ID, start, end, bookings) {
					continue
				}
				id := staff[i].ID
				slot.Available = true
				slot.StaffID = &id
				slot.StaffName = staff[i].Name
				break
			}
			slots = append(slots, slot)
		}
	}
	return slots
}

// hasConflict reports whether the staff member has a booking overlapping the
// candidate slot [slotStart, slotEnd).
func hasConflict(staffID uint, slotStart, slotEnd time.Time, bookings []BookingInfo) bool {
	for i := range bookings {
		b := &bookings[i]
		if b.StaffID == nil || *b.StaffID != staffID {
			continue
		}
		if overlaps(slotStart, slotEnd, b.StartTime, b.EndTime) {
			return true
		}
	}
	return false
}

// overlaps applies the half-open interval test: the slot conflicts when its
// start falls inside the booking, its end falls inside the booking, or it
// contains the booking entirely. Intervals that merely touch do not overlap.
func overlaps(slotStart, slotEnd, bookingStart, bookingEnd time.Time) bool {
	if !slotStart.Before(bookingStart) && slotStart.Before(bookingEnd) {
		return true
	}
	if slotEnd.After(bookingStart) && !slotEnd.After(bookingEnd) {
		return true
	}
	if !slotStart.After(bookingStart) && !slotEnd.Before(bookingEnd) {
		return true
	}
	return false
}

// AvailableDates scans the next 30 calendar days (today inclusive) and returns
// the dates, formatted YYYY-MM-DD, on which the service has at least one
// available slot. The scan is sequential and fails fast: the first day that
// errors aborts the whole scan.
func (c *Calculator) AvailableDates(businessID, serviceID uint) ([]string, error) {
	now := c.clock.Now()

	dates := make([]string, 0)
	for i := 0; i < scanDays; i++ {
		d := now.AddDate(0, 0, i)
		day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())

		slots, err := c.CalculateAvailability(businessID, serviceID, day, nil)
		if err != nil {
			return nil, err
		}
		for j := range slots {
			if slots[j].Available {
				dates = append(dates, day.Format("2006-01-02"))
				break
			}
		}
	}
	return dates, nil
}
