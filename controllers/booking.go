package controllers

import (
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/glowdesk/glowdesk-api/db"
	"github.com/glowdesk/glowdesk-api/models"
	"github.com/glowdesk/glowdesk-api/utils"
)

// GetAllBookings returns bookings of a business, filterable by status and date
func GetAllBookings(c *fiber.Ctx) error {
	businessID := c.Params("businessId")

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "10"))
	offset := (page - 1) * limit

	query := db.DB.
		Preload("Service").
		Preload("Client").
		Preload("Staff").
		Where("business_id = ?", businessID)

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	// Optional single-day filter (YYYY-MM-DD)
	if date := c.Query("date"); date != "" {
		day, err := time.ParseInLocation("2006-01-02", date, time.Local)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Invalid date format. Please use YYYY-MM-DD.",
			})
		}
		dayEnd := day.Add(24*time.Hour - time.Second)
		query = query.Where("start_time BETWEEN ? AND ?", day, dayEnd)
	}

	var bookings []models.Booking
	if err := query.Order("start_time asc").Limit(limit).Offset(offset).Find(&bookings).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch bookings",
			Error:   err.Error(),
		})
	}

	var count int64
	db.DB.Model(&models.Booking{}).Where("business_id = ?", businessID).Count(&count)

	return c.JSON(fiber.Map{
		"bookings": bookings,
		"total":    count,
		"page":     page,
		"limit":    limit,
	})
}

// GetBooking returns a single booking
func GetBooking(c *fiber.Ctx) error {
	businessID := c.Params("businessId")
	id := c.Params("id")

	var booking models.Booking
	if err := db.DB.
		Preload("Service").
		Preload("Client").
		Preload("Staff").
		Where("business_id = ?", businessID).
		First(&booking, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Booking not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(booking)
}

// CreateBooking creates a booking, re-checking the staff member's calendar for
// conflicts before committing. The end time is derived from the service duration.
func CreateBooking(c *fiber.Ctx) error {
	businessID, err := c.ParamsInt("businessId")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid business ID",
		})
	}

	booking := new(models.Booking)
	if err := c.BodyParser(booking); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	booking.BusinessID = uint(businessID)

	// Get the service to calculate duration
	var service models.Service
	if err := db.DB.Where("business_id = ?", businessID).
		First(&service, booking.ServiceID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Service not found",
			Error:   err.Error(),
		})
	}

	var client models.Client
	if err := db.DB.Where("business_id = ?", businessID).
		First(&client, booking.ClientID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Client not found",
			Error:   err.Error(),
		})
	}

	if booking.StartTime.Before(time.Now()) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot book an appointment in the past",
		})
	}

	withinHours, err := utils.CheckWorkingHours(uint(businessID), booking.StartTime)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Error checking working hours",
			Error:   err.Error(),
		})
	}
	if !withinHours {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Requested time is outside business working hours",
		})
	}

	booking.EndTime = booking.StartTime.Add(service.EffectiveDuration())

	// Staff conflict check when a staff member was requested. The availability
	// endpoint suggests a free staff member, but the calendar may have changed
	// since the client saw it.
	if booking.StaffID != nil {
		var member models.StaffMember
		if err := db.DB.Where("business_id = ? AND active = ?", businessID, true).
			First(&member, *booking.StaffID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Staff member not found or inactive",
			})
		}

		available, err := utils.CheckStaffAvailability(*booking.StaffID, booking.StartTime, service.EffectiveDuration())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Error checking availability",
				Error:   err.Error(),
			})
		}
		if !available {
			return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
				Message: "Time slot not available",
			})
		}
	}

	if err := db.DB.Create(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create booking",
			Error:   err.Error(),
		})
	}

	// Send confirmation email to the client; booking stands even if email fails
	if client.Email != "" {
		if err := sendBookingConfirmation(booking, &service, &client); err != nil {
			log.Printf("Failed to send confirmation for booking %d: %v", booking.ID, err)
		}
	}

	return c.Status(fiber.StatusCreated).JSON(booking)
}

// UpdateBookingStatus moves a booking through its lifecycle (confirm/cancel/complete/no-show)
func UpdateBookingStatus(c *fiber.Ctx) error {
	businessID := c.Params("businessId")
	id := c.Params("id")

	var updateData struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&updateData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	newStatus := models.BookingStatus(updateData.Status)
	switch newStatus {
	case models.StatusConfirmed, models.StatusCancelled, models.StatusCompleted, models.StatusNoShow:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid status. Must be 'confirmed', 'cancelled', 'completed', or 'no_show'.",
		})
	}

	var booking models.Booking
	if err := db.DB.Where("business_id = ?", businessID).First(&booking, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Booking not found",
		})
	}

	if err := booking.UpdateStatus(db.DB, newStatus); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Booking status updated successfully",
		"booking": booking,
	})
}

// RescheduleBooking moves a booking to a new start time
func RescheduleBooking(c *fiber.Ctx) error {
	businessID := c.Params("businessId")
	id := c.Params("id")

	var rescheduleData struct {
		StartTime string `json:"start_time"`
	}
	if err := c.BodyParser(&rescheduleData); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	startTime, err := time.Parse(time.RFC3339, rescheduleData.StartTime)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid start time format. Please use RFC3339 format.",
		})
	}

	if startTime.Before(time.Now()) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot schedule a booking in the past",
		})
	}

	var booking models.Booking
	if err := db.DB.Preload("Service").
		Where("business_id = ?", businessID).
		First(&booking, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Booking not found",
		})
	}

	if booking.Status != models.StatusPending && booking.Status != models.StatusConfirmed {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Only pending or confirmed bookings can be rescheduled",
		})
	}

	withinHours, err := utils.CheckWorkingHours(booking.BusinessID, startTime)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Error checking working hours",
			Error:   err.Error(),
		})
	}
	if !withinHours {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Requested time is outside business working hours",
		})
	}

	endTime := startTime.Add(booking.Service.EffectiveDuration())

	// Check for scheduling conflicts on the same staff member
	if booking.StaffID != nil {
		var conflictCount int64
		db.DB.Model(&models.Booking{}).
			Where("staff_id = ? AND id != ?", *booking.StaffID, booking.ID).
			Where("status NOT IN ?", models.InactiveStatuses).
			Where("(start_time < ? AND end_time > ?) OR (start_time >= ? AND start_time < ?)",
				endTime, startTime, startTime, endTime).
			Count(&conflictCount)

		if conflictCount > 0 {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "The requested time slot conflicts with existing bookings",
			})
		}
	}

	booking.StartTime = startTime
	booking.EndTime = endTime

	if err := db.DB.Save(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to reschedule booking",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Booking rescheduled successfully",
		"booking": booking,
	})
}

// DeleteBooking removes a booking record entirely
func DeleteBooking(c *fiber.Ctx) error {
	businessID := c.Params("businessId")
	id := c.Params("id")

	var booking models.Booking
	if db.DB.Where("business_id = ?", businessID).First(&booking, id).RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Booking not found",
		})
	}
	if err := db.DB.Delete(&booking).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete booking",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// sendBookingConfirmation constructs and sends the confirmation email
func sendBookingConfirmation(booking *models.Booking, service *models.Service, client *models.Client) error {
	subject := fmt.Sprintf("Booking Confirmed - %s", service.Name)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Your booking has been received.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Service:</strong> %s</li>
			<li><strong>Start Time:</strong> %s</li>
			<li><strong>End Time:</strong> %s</li>
			<li><strong>Reference:</strong> %s</li>
		</ul>
		<p>If you need to reschedule or cancel, contact us as soon as possible.</p>
		<p>Best regards,</p>
		<p>Your Booking Team</p>
	`, client.Name, service.Name,
		booking.StartTime.Format("2006-01-02 15:04:05"),
		booking.EndTime.Format("2006-01-02 15:04:05"),
		booking.Reference)

	return utils.SendEmail(client.Email, subject, body)
}
