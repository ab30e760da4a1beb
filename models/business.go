package models

import (
	"gorm.io/gorm"
)

type SubscriptionPlan string

const (
	PlanFree SubscriptionPlan = "free"
	PlanPro  SubscriptionPlan = "pro"
)

// FreePlanStaffLimit is the maximum number of staff members a free-plan business can have
const FreePlanStaffLimit = 3

// Business is the tenant root. Every service, staff member, client and booking
// belongs to exactly one business.
type Business struct {
	gorm.Model
	Name        string           `json:"name"`
	Slug        string           `json:"slug" gorm:"unique"`
	Description string           `json:"description"`
	Address     string           `json:"address"`
	City        string           `json:"city"`
	PhoneNumber string           `json:"phone_number"`
	Email       string           `json:"email"`
	LogoURL     string           `json:"logo_url"`
	Plan        SubscriptionPlan `json:"plan" gorm:"default:free"`
	OwnerID     uint             `json:"owner_id"`
	Owner       User             `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Services    []Service        `json:"services,omitempty" gorm:"foreignKey:BusinessID"`
	Staff       []StaffMember    `json:"staff,omitempty" gorm:"foreignKey:BusinessID"`
}

func (b *Business) BeforeCreate(tx *gorm.DB) error {
	if b.Plan == "" {
		b.Plan = PlanFree
	}
	return nil
}

// CanAddStaff checks the plan limit before a new staff member is created
func (b *Business) CanAddStaff(tx *gorm.DB) (bool, error) {
	if b.Plan == PlanPro {
		return true, nil
	}
	var count int64
	if err := tx.Model(&StaffMember{}).Where("business_id = ?", b.ID).Count(&count).Error; err != nil {
		return false, err
	}
	return count < FreePlanStaffLimit, nil
}
