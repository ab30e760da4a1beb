package availability

import (
	"errors"
	"time"
)

// ErrServiceNotFound is the only domain failure this package raises. Everything
// else coming out of the store is an infrastructure error and is passed through
// untouched.
var ErrServiceNotFound = errors.New("service not found")

// TimeSlot is a candidate bookable start time with its computed availability.
// StaffID and StaffName are set only when the slot is available.
type TimeSlot struct {
	Time      time.Time `json:"time"`
	Available bool      `json:"available"`
	StaffID   *uint     `json:"staff_id,omitempty"`
	StaffName string    `json:"staff_name,omitempty"`
}

// ServiceInfo is the slice of a service the calculator needs. StaffIDs lists
// the staff explicitly qualified for the service; an empty list means every
// active staff member of the business qualifies.
type ServiceInfo struct {
	ID              uint
	BusinessID      uint
	Name            string
	DurationMinutes uint
}

// Duration returns the service duration with the default applied
func (s *ServiceInfo) Duration() time.Duration {
	minutes := s.DurationMinutes
	if minutes == 0 {
		minutes = defaultDurationMinutes
	}
	return time.Duration(minutes) * time.Minute
}

type BusinessInfo struct {
	ID   uint
	Name string
}

type StaffInfo struct {
	ID   uint
	Name string
}

// BookingInfo is an existing booking occupying [StartTime, EndTime). Bookings
// without an assigned staff member never conflict with a specific staff member.
type BookingInfo struct {
	ID        uint
	StaffID   *uint
	StartTime time.Time
	EndTime   time.Time
}

// Store provides the read-only collaborator lookups the calculator is built on.
type Store interface {
	// GetService returns the service for the given business, the qualified
	// staff ids alongside it, or ErrServiceNotFound.
	GetService(businessID, serviceID uint) (*ServiceInfo, []uint, error)

	// GetBusiness returns the business record. Operating hours are still the
	// fixed default window; the record is fetched so per-business hours can
	// take over without changing this interface.
	GetBusiness(businessID uint) (*BusinessInfo, error)

	// GetActiveStaff returns active staff of the business in stable order.
	// A non-empty ids filter restricts the result to those staff members.
	GetActiveStaff(businessID uint, ids []uint) ([]StaffInfo, error)

	// GetBookings returns all slot-blocking bookings of the business whose
	// start time falls within [dayStart, dayEnd], both ends inclusive.
	GetBookings(businessID uint, dayStart, dayEnd time.Time) ([]BookingInfo, error)
}
