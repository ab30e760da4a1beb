package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/glowdesk/glowdesk-api/db"
	"github.com/glowdesk/glowdesk-api/models"
)

// GetAllServices returns all services of a business
func GetAllServices(c *fiber.Ctx) error {
	businessID := c.Params("businessId")

	var services []models.Service
	if err := db.DB.Preload("Staff").
		Where("business_id = ?", businessID).
		Find(&services).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(services)
}

// GetService returns a single service of a business
func GetService(c *fiber.Ctx) error {
	businessID := c.Params("businessId")
	id := c.Params("id")

	var service models.Service
	if err := db.DB.Preload("Staff").
		Where("business_id = ?", businessID).
		First(&service, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}
	return c.JSON(service)
}

// CreateService creates a new service for a business, optionally assigning staff
func CreateService(c *fiber.Ctx) error {
	businessID, err := c.ParamsInt("businessId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid business ID",
		})
	}

	type ServiceInput struct {
		Name            string  `json:"name"`
		Description     string  `json:"description"`
		DurationMinutes uint    `json:"duration_minutes"`
		Price           float64 `json:"price"`
		StaffIDs        []uint  `json:"staff_ids"`
	}

	input := new(ServiceInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	service := models.Service{
		BusinessID:      uint(businessID),
		Name:            input.Name,
		Description:     input.Description,
		DurationMinutes: input.DurationMinutes,
		Price:           input.Price,
	}

	// Staff assignments must belong to the same business
	if len(input.StaffIDs) > 0 {
		var staff []models.StaffMember
		if err := db.DB.Where("business_id = ? AND id IN ?", businessID, input.StaffIDs).
			Find(&staff).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to resolve staff assignments",
			})
		}
		if len(staff) != len(input.StaffIDs) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "One or more staff members do not belong to this business",
			})
		}
		service.Staff = staff
	}

	if err := db.DB.Create(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create service",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(service)
}

// UpdateService updates a service and its staff assignments
func UpdateService(c *fiber.Ctx) error {
	businessID := c.Params("businessId")
	id := c.Params("id")

	var service models.Service
	if err := db.DB.Where("business_id = ?", businessID).First(&service, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}

	type ServiceInput struct {
		Name            *string  `json:"name"`
		Description     *string  `json:"description"`
		DurationMinutes *uint    `json:"duration_minutes"`
		Price           *float64 `json:"price"`
		StaffIDs        []uint   `json:"staff_ids"`
	}

	input := new(ServiceInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if input.Name != nil {
		service.Name = *input.Name
	}
	if input.Description != nil {
		service.Description = *input.Description
	}
	if input.DurationMinutes != nil {
		service.DurationMinutes = *input.DurationMinutes
	}
	if input.Price != nil {
		service.Price = *input.Price
	}

	if err := db.DB.Save(&service).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update service",
		})
	}

	// Replace staff assignments when a list is provided
	if input.StaffIDs != nil {
		var staff []models.StaffMember
		if err := db.DB.Where("business_id = ? AND id IN ?", service.BusinessID, input.StaffIDs).
			Find(&staff).Error; err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to resolve staff assignments",
			})
		}
		if err := db.DB.Model(&service).Association("Staff").Replace(staff); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to update staff assignments",
			})
		}
	}

	return c.JSON(service)
}

// DeleteService deletes a service
func DeleteService(c *fiber.Ctx) error {
	businessID := c.Params("businessId")
	id := c.Params("id")

	var service models.Service
	if db.DB.Where("business_id = ?", businessID).First(&service, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Service not found",
		})
	}
	db.DB.Delete(&service)
	return c.SendStatus(fiber.StatusNoContent)
}
