package models

import (
	"gorm.io/gorm"
)

type DayOfWeek int

const (
	Sunday DayOfWeek = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// WorkingHours stores a business's opening window per day of week, with an
// optional mid-day break. Booking creation validates start times against these
// rows; slot calculation uses a fixed window (see availability package).
type WorkingHours struct {
	gorm.Model
	BusinessID uint      `json:"business_id"`
	Business   Business  `json:"business,omitempty" gorm:"foreignKey:BusinessID"`
	DayOfWeek  DayOfWeek `json:"day_of_week"`
	StartTime  string    `json:"start_time"` // Format "HH:MM" in 24h
	EndTime    string    `json:"end_time"`   // Format "HH:MM" in 24h
	BreakStart *string   `json:"break_start,omitempty"` // Format "HH:MM", nil when no break
	BreakEnd   *string   `json:"break_end,omitempty"`
	IsWorkDay  bool      `json:"is_work_day" gorm:"default:true"`
}
