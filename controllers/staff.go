package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/glowdesk/glowdesk-api/db"
	"github.com/glowdesk/glowdesk-api/models"
)

// GetAllStaff returns all staff members of a business
func GetAllStaff(c *fiber.Ctx) error {
	businessID := c.Params("businessId")

	var staff []models.StaffMember
	query := db.DB.Where("business_id = ?", businessID).Order("id asc")

	// Optional filter: only active staff
	if c.Query("active") == "true" {
		query = query.Where("active = ?", true)
	}

	if err := query.Find(&staff).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch staff",
		})
	}
	return c.JSON(staff)
}

// GetStaffMember returns a single staff member with their services
func GetStaffMember(c *fiber.Ctx) error {
	businessID := c.Params("businessId")
	id := c.Params("id")

	var member models.StaffMember
	if err := db.DB.Preload("Services").
		Where("business_id = ?", businessID).
		First(&member, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Staff member not found",
		})
	}
	return c.JSON(member)
}

// CreateStaffMember creates a staff member, enforcing the plan's staff limit
func CreateStaffMember(c *fiber.Ctx) error {
	businessID, err := c.ParamsInt("businessId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid business ID",
		})
	}

	var business models.Business
	if err := db.DB.First(&business, businessID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Business not found",
		})
	}

	allowed, err := business.CanAddStaff(db.DB)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to check plan limits",
		})
	}
	if !allowed {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Staff limit reached for the free plan. Upgrade to add more staff.",
		})
	}

	member := new(models.StaffMember)
	if err := c.BodyParser(member); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	member.BusinessID = uint(businessID)

	if err := db.DB.Create(member).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create staff member",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(member)
}

// UpdateStaffMember updates a staff member (including the active flag)
func UpdateStaffMember(c *fiber.Ctx) error {
	businessID := c.Params("businessId")
	id := c.Params("id")

	var member models.StaffMember
	if err := db.DB.Where("business_id = ?", businessID).First(&member, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Staff member not found",
		})
	}

	type StaffInput struct {
		Name   *string `json:"name"`
		Email  *string `json:"email"`
		Active *bool   `json:"active"`
	}

	input := new(StaffInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}

	if input.Name != nil {
		member.Name = *input.Name
	}
	if input.Email != nil {
		member.Email = *input.Email
	}
	if input.Active != nil {
		member.Active = *input.Active
	}

	if err := db.DB.Save(&member).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update staff member",
		})
	}
	return c.JSON(member)
}

// DeleteStaffMember deletes a staff member
func DeleteStaffMember(c *fiber.Ctx) error {
	businessID := c.Params("businessId")
	id := c.Params("id")

	var member models.StaffMember
	if db.DB.Where("business_id = ?", businessID).First(&member, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Staff member not found",
		})
	}
	if err := db.DB.Delete(&member).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete staff member",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
