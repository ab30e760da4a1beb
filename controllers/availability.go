package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/glowdesk/glowdesk-api/availability"
	"github.com/glowdesk/glowdesk-api/db"
	"github.com/glowdesk/glowdesk-api/utils"
)

// GetAvailability returns the time slots for a service on a given date.
// Query params: serviceId (required), date (YYYY-MM-DD, required), staffId (optional).
func GetAvailability(c *fiber.Ctx) error {
	businessID, err := c.ParamsInt("businessId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid business ID",
		})
	}

	serviceID := c.QueryInt("serviceId")
	if serviceID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "serviceId query parameter is required",
		})
	}

	dateParam := c.Query("date")
	if dateParam == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "date query parameter is required",
		})
	}
	date, err := time.ParseInLocation("2006-01-02", dateParam, time.Local)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid date format. Please use YYYY-MM-DD.",
		})
	}

	var staffID *uint
	if id := c.QueryInt("staffId"); id > 0 {
		v := uint(id)
		staffID = &v
	}

	calculator := availability.NewCalculator(availability.NewGormStore(db.DB))
	slots, err := calculator.CalculateAvailability(uint(businessID), uint(serviceID), date, staffID)
	if err != nil {
		if errors.Is(err, availability.ErrServiceNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Service not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to calculate availability",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"date":  date.Format("2006-01-02"),
		"slots": slots,
	})
}

// GetAvailableDates returns the dates within the next 30 days that still have
// at least one bookable slot for the service.
func GetAvailableDates(c *fiber.Ctx) error {
	businessID, err := c.ParamsInt("businessId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid business ID",
		})
	}

	serviceID := c.QueryInt("serviceId")
	if serviceID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "serviceId query parameter is required",
		})
	}

	calculator := availability.NewCalculator(availability.NewGormStore(db.DB))
	dates, err := calculator.AvailableDates(uint(businessID), uint(serviceID))
	if err != nil {
		if errors.Is(err, availability.ErrServiceNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Service not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to calculate available dates",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"dates": dates,
	})
}
