package controllers

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/glowdesk/glowdesk-api/db"
	"github.com/glowdesk/glowdesk-api/models"
	"github.com/glowdesk/glowdesk-api/utils"
)

// GetAllBusinesses returns all businesses with pagination
func GetAllBusinesses(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	offset := (page - 1) * limit

	var businesses []models.Business
	if err := db.DB.Limit(limit).Offset(offset).Find(&businesses).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch businesses",
			Error:   err.Error(),
		})
	}

	var count int64
	db.DB.Model(&models.Business{}).Count(&count)

	return c.JSON(fiber.Map{
		"businesses": businesses,
		"total":      count,
		"page":       page,
		"limit":      limit,
		"pages":      (int(count) + limit - 1) / limit,
	})
}

// GetBusiness returns a business by ID with its services and staff
func GetBusiness(c *fiber.Ctx) error {
	id := c.Params("id")
	var business models.Business
	if err := db.DB.Preload("Services").Preload("Staff").First(&business, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Business not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(business)
}

// CreateBusiness creates a new business owned by the logged-in user
func CreateBusiness(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	business := new(models.Business)
	if err := c.BodyParser(business); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	business.OwnerID = userID

	// Check slug uniqueness up front for a friendlier error
	var existing models.Business
	if db.DB.Where("slug = ?", business.Slug).First(&existing).RowsAffected > 0 {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "A business with this slug already exists",
		})
	}

	if err := db.DB.Create(&business).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create business",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(business)
}

// UpdateBusiness updates a business by ID
func UpdateBusiness(c *fiber.Ctx) error {
	id := c.Params("id")
	var business models.Business
	if err := db.DB.First(&business, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Business not found",
		})
	}
	if err := c.BodyParser(&business); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Failed to parse request body",
		})
	}
	if err := db.DB.Save(&business).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update business",
		})
	}
	return c.JSON(business)
}

// DeleteBusiness deletes a business by ID
func DeleteBusiness(c *fiber.Ctx) error {
	id := c.Params("id")
	var business models.Business
	if db.DB.First(&business, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Business not found",
		})
	}
	if err := db.DB.Delete(&business).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete business",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UploadBusinessLogo uploads a logo image and stores its URL on the business
func UploadBusinessLogo(c *fiber.Ctx) error {
	id := c.Params("id")
	var business models.Business
	if err := db.DB.First(&business, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Business not found",
		})
	}

	fileHeader, err := c.FormFile("logo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Logo file is required",
		})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to read uploaded file",
		})
	}
	defer file.Close()

	url, err := utils.UploadLogo(file, fmt.Sprintf("business-%d", business.ID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to upload logo",
			Error:   err.Error(),
		})
	}

	business.LogoURL = url
	if err := db.DB.Save(&business).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save logo URL",
		})
	}

	return c.JSON(fiber.Map{
		"logo_url": url,
	})
}
