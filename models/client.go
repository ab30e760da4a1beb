package models

import (
	"gorm.io/gorm"
)

type Client struct {
	gorm.Model
	BusinessID uint      `json:"business_id"`
	Business   Business  `json:"business,omitempty" gorm:"foreignKey:BusinessID"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Notes      string    `json:"notes"`
	Bookings   []Booking `json:"bookings,omitempty" gorm:"foreignKey:ClientID"`
}
