package models

import (
	"time"

	"gorm.io/gorm"
)

// DefaultServiceDurationMinutes is used when a service has no duration set
const DefaultServiceDurationMinutes = 60

type Service struct {
	gorm.Model
	BusinessID      uint          `json:"business_id"`
	Business        Business      `json:"business,omitempty" gorm:"foreignKey:BusinessID"`
	Name            string        `json:"name"`
	Description     string        `json:"description"`
	DurationMinutes uint          `json:"duration_minutes"`
	Price           float64       `json:"price"`
	Staff           []StaffMember `json:"staff,omitempty" gorm:"many2many:service_staff;"`
}

// EffectiveDuration returns the service duration, falling back to the default
// when no duration was configured.
func (s *Service) EffectiveDuration() time.Duration {
	minutes := s.DurationMinutes
	if minutes == 0 {
		minutes = DefaultServiceDurationMinutes
	}
	return time.Duration(minutes) * time.Minute
}
