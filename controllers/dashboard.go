package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/glowdesk/glowdesk-api/db"
	"github.com/glowdesk/glowdesk-api/models"
)

// GetDashboardOverview returns booking and revenue statistics for a business
func GetDashboardOverview(c *fiber.Ctx) error {
	businessID := c.Params("businessId")

	var statistics struct {
		TotalBookings  int64     `json:"total_bookings"`
		PendingCount   int64     `json:"pending_count"`
		ConfirmedCount int64     `json:"confirmed_count"`
		CompletedCount int64     `json:"completed_count"`
		CancelledCount int64     `json:"cancelled_count"`
		NoShowCount    int64     `json:"no_show_count"`
		TotalServices  int64     `json:"total_services"`
		TotalClients   int64     `json:"total_clients"`
		TotalRevenue   float64   `json:"total_revenue"`
		LastUpdated    time.Time `json:"last_updated"`
	}

	countByStatus := func(status models.BookingStatus, dest *int64) {
		db.DB.Model(&models.Booking{}).
			Where("business_id = ?", businessID).
			Where("status = ?", status).
			Count(dest)
	}

	db.DB.Model(&models.Booking{}).Where("business_id = ?", businessID).Count(&statistics.TotalBookings)
	countByStatus(models.StatusPending, &statistics.PendingCount)
	countByStatus(models.StatusConfirmed, &statistics.ConfirmedCount)
	countByStatus(models.StatusCompleted, &statistics.CompletedCount)
	countByStatus(models.StatusCancelled, &statistics.CancelledCount)
	countByStatus(models.StatusNoShow, &statistics.NoShowCount)

	db.DB.Model(&models.Service{}).Where("business_id = ?", businessID).Count(&statistics.TotalServices)
	db.DB.Model(&models.Client{}).Where("business_id = ?", businessID).Count(&statistics.TotalClients)

	// Revenue from completed bookings
	type RevenueResult struct {
		TotalRevenue float64
	}
	var revenueResult RevenueResult

	db.DB.Table("bookings").
		Joins("JOIN services ON bookings.service_id = services.id").
		Where("bookings.business_id = ?", businessID).
		Where("bookings.status = ?", models.StatusCompleted).
		Select("COALESCE(SUM(services.price), 0) as total_revenue").
		Scan(&revenueResult)
	statistics.TotalRevenue = revenueResult.TotalRevenue

	statistics.LastUpdated = time.Now()

	return c.JSON(statistics)
}

// GetUpcomingBookings returns the next bookings for a business
func GetUpcomingBookings(c *fiber.Ctx) error {
	businessID := c.Params("businessId")

	limit := 10
	if c.Query("limit") != "" {
		if parsedLimit := c.QueryInt("limit"); parsedLimit > 0 {
			limit = parsedLimit
		}
	}

	var bookings []models.Booking
	if err := db.DB.
		Preload("Service").
		Preload("Client").
		Preload("Staff").
		Where("business_id = ?", businessID).
		Where("start_time >= ?", time.Now()).
		Where("status IN ?", []models.BookingStatus{models.StatusPending, models.StatusConfirmed}).
		Order("start_time asc").
		Limit(limit).
		Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"bookings": bookings,
		"count":    len(bookings),
	})
}
