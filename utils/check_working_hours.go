package utils

import (
	"fmt"
	"time"

	"github.com/glowdesk/glowdesk-api/db"
	"github.com/glowdesk/glowdesk-api/models"
)

// CheckWorkingHours reports whether a booking starting at start falls inside
// the business's configured working hours. A business that has not configured
// any working hours is treated as unrestricted.
func CheckWorkingHours(businessID uint, start time.Time) (bool, error) {
	var hours []models.WorkingHours
	if err := db.DB.Where("business_id = ?", businessID).Find(&hours).Error; err != nil {
		return false, err
	}
	return WithinWorkingHours(hours, start)
}

// WithinWorkingHours checks start against per-weekday opening windows,
// including the optional break window. A day without a work-day row is closed.
func WithinWorkingHours(hours []models.WorkingHours, start time.Time) (bool, error) {
	if len(hours) == 0 {
		return true, nil
	}

	weekday := models.DayOfWeek(start.Weekday())
	var dayHours *models.WorkingHours
	for i := range hours {
		if hours[i].DayOfWeek == weekday && hours[i].IsWorkDay {
			dayHours = &hours[i]
			break
		}
	}
	if dayHours == nil {
		return false, nil
	}

	opening, err := minuteOfDay(dayHours.StartTime)
	if err != nil {
		return false, err
	}
	closing, err := minuteOfDay(dayHours.EndTime)
	if err != nil {
		return false, err
	}

	at := start.Hour()*60 + start.Minute()
	if at < opening || at >= closing {
		return false, nil
	}

	if dayHours.BreakStart != nil && dayHours.BreakEnd != nil {
		breakStart, err := minuteOfDay(*dayHours.BreakStart)
		if err != nil {
			return false, err
		}
		breakEnd, err := minuteOfDay(*dayHours.BreakEnd)
		if err != nil {
			return false, err
		}
		if at >= breakStart && at < breakEnd {
			return false, nil
		}
	}

	return true, nil
}

// minuteOfDay parses an "HH:MM" clock string into minutes since midnight.
func minuteOfDay(clock string) (int, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return 0, fmt.Errorf("invalid working hour %q: expected HH:MM", clock)
	}
	return t.Hour()*60 + t.Minute(), nil
}
