package utils

import (
	"time"

	"github.com/glowdesk/glowdesk-api/db"
	"github.com/glowdesk/glowdesk-api/models"
)

// CheckStaffAvailability checks if a staff member is free for a given time slot
func CheckStaffAvailability(staffID uint, startTime time.Time, duration time.Duration) (bool, error) {
	endTime := startTime.Add(duration)

	// Check if any conflicting bookings exist and lock them
	var existingBooking models.Booking
	err := db.DB.Raw(`
		SELECT *
		FROM bookings
		WHERE staff_id = ? AND status NOT IN ('cancelled', 'no_show') AND (
			(start_time < ? AND end_time > ?) OR
			(start_time >= ? AND start_time < ?)
		) FOR UPDATE
		LIMIT 1
	`, staffID, endTime, startTime, startTime, endTime).
		Scan(&existingBooking).Error
	if err != nil {
		return false, err
	}

	// If there is any conflicting booking, return false
	if existingBooking.ID != 0 {
		return false, nil
	}

	// No conflict, slot is available
	return true, nil
}
