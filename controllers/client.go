package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/glowdesk/glowdesk-api/db"
	"github.com/glowdesk/glowdesk-api/models"
)

// GetAllClients returns all clients of a business with pagination
func GetAllClients(c *fiber.Ctx) error {
	businessID := c.Params("businessId")

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	offset := (page - 1) * limit

	query := db.DB.Where("business_id = ?", businessID)

	// Optional name/email search
	if search := c.Query("search"); search != "" {
		query = query.Where("name ILIKE ? OR email ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	var clients []models.Client
	if err := query.Limit(limit).Offset(offset).Order("name asc").Find(&clients).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch clients",
		})
	}

	var count int64
	db.DB.Model(&models.Client{}).Where("business_id = ?", businessID).Count(&count)

	return c.JSON(fiber.Map{
		"clients": clients,
		"total":   count,
		"page":    page,
		"limit":   limit,
		"pages":   (int(count) + limit - 1) / limit,
	})
}

// GetClient returns a single client with their booking history
func GetClient(c *fiber.Ctx) error {
	businessID := c.Params("businessId")
	id := c.Params("id")

	var client models.Client
	if err := db.DB.Preload("Bookings.Service").
		Where("business_id = ?", businessID).
		First(&client, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Client not found",
		})
	}
	return c.JSON(client)
}

// CreateClient creates a client record for a business
func CreateClient(c *fiber.Ctx) error {
	businessID, err := c.ParamsInt("businessId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid business ID",
		})
	}

	client := new(models.Client)
	if err := c.BodyParser(client); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	client.BusinessID = uint(businessID)

	if err := db.DB.Create(client).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create client",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(client)
}

// UpdateClient updates a client record
func UpdateClient(c *fiber.Ctx) error {
	businessID := c.Params("businessId")
	id := c.Params("id")

	var client models.Client
	if err := db.DB.Where("business_id = ?", businessID).First(&client, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Client not found",
		})
	}
	if err := c.BodyParser(&client); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := db.DB.Save(&client).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update client",
		})
	}
	return c.JSON(client)
}

// DeleteClient deletes a client record
func DeleteClient(c *fiber.Ctx) error {
	businessID := c.Params("businessId")
	id := c.Params("id")

	var client models.Client
	if db.DB.Where("business_id = ?", businessID).First(&client, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Client not found",
		})
	}
	if err := db.DB.Delete(&client).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete client",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
