package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/glowdesk/glowdesk-api/controllers"
	"github.com/glowdesk/glowdesk-api/middleware"
)

// SetupBookingRoutes configures booking and availability routes
func SetupBookingRoutes(app *fiber.App) {
	booking := app.Group("/businesses/:businessId/bookings")
	booking.Get("/", middleware.Protected(), middleware.RequirePermission("bookings", "read"), controllers.GetAllBookings)
	booking.Get("/:id", middleware.Protected(), middleware.RequirePermission("bookings", "read"), controllers.GetBooking)
	booking.Post("/", middleware.Protected(), middleware.RequirePermission("bookings", "create"), controllers.CreateBooking)
	booking.Patch("/:id/status", middleware.Protected(), middleware.RequirePermission("bookings", "update"), controllers.UpdateBookingStatus)
	booking.Patch("/:id/reschedule", middleware.Protected(), middleware.RequirePermission("bookings", "update"), controllers.RescheduleBooking)
	booking.Delete("/:id", middleware.Protected(), middleware.RequirePermission("bookings", "delete"), controllers.DeleteBooking)

	// Availability is public: the booking flow shows slots before login
	availability := app.Group("/businesses/:businessId/availability")
	availability.Get("/", controllers.GetAvailability)
	availability.Get("/dates", controllers.GetAvailableDates)
}
