package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
	StatusNoShow    BookingStatus = "no_show"
)

// InactiveStatuses are booking states that never block a time slot
var InactiveStatuses = []BookingStatus{StatusCancelled, StatusNoShow}

type Booking struct {
	gorm.Model
	BusinessID uint          `json:"business_id"`
	Business   Business      `json:"business,omitempty" gorm:"foreignKey:BusinessID"`
	ServiceID  uint          `json:"service_id"`
	Service    Service       `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	ClientID   uint          `json:"client_id"`
	Client     Client        `json:"client,omitempty" gorm:"foreignKey:ClientID"`
	StaffID    *uint         `json:"staff_id"`
	Staff      *StaffMember  `json:"staff,omitempty" gorm:"foreignKey:StaffID"`
	StartTime  time.Time     `json:"start_time"`
	EndTime    time.Time     `json:"end_time"` // half-open: the booking occupies [start_time, end_time)
	Status     BookingStatus `json:"status"`
	Reference  string        `json:"reference"`
	Notes      string        `json:"notes"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.Status == "" {
		b.Status = StatusPending
	}
	if b.Reference == "" {
		b.Reference = GenerateReference()
	}
	return nil
}

// IsActive reports whether the booking still occupies its time slot
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled && b.Status != StatusNoShow
}

// UpdateStatus moves the booking through its lifecycle and persists the change
func (b *Booking) UpdateStatus(tx *gorm.DB, newStatus BookingStatus) error {
	switch b.Status {
	case StatusPending:
		if newStatus != StatusConfirmed && newStatus != StatusCancelled {
			return fmt.Errorf("invalid transition from pending to %s", newStatus)
		}
	case StatusConfirmed:
		if newStatus != StatusCompleted && newStatus != StatusCancelled && newStatus != StatusNoShow {
			return fmt.Errorf("invalid transition from confirmed to %s", newStatus)
		}
	case StatusCompleted, StatusCancelled, StatusNoShow:
		return fmt.Errorf("no transitions allowed from %s", b.Status)
	}

	b.Status = newStatus
	return tx.Save(b).Error
}
