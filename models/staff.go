package models

import (
	"gorm.io/gorm"
)

// StaffMember is a beautician or other employee of a business. A staff member
// is qualified for a service either through an explicit entry in service_staff
// or, when a service lists no staff at all, by simply being active.
type StaffMember struct {
	gorm.Model
	BusinessID uint      `json:"business_id"`
	Business   Business  `json:"business,omitempty" gorm:"foreignKey:BusinessID"`
	UserID     *uint     `json:"user_id"` // set when the staff member has a login
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Active     bool      `json:"active" gorm:"default:true"`
	Services   []Service `json:"services,omitempty" gorm:"many2many:service_staff;"`
}
