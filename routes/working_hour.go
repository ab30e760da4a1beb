package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/glowdesk/glowdesk-api/controllers"
	"github.com/glowdesk/glowdesk-api/middleware"
)

// SetupWorkingHourRoutes configures all working hour related routes
func SetupWorkingHourRoutes(app *fiber.App) {
	workingHour := app.Group("/businesses/:businessId/working-hours")
	workingHour.Get("/", controllers.GetAllWorkingHours)
	workingHour.Post("/", middleware.Protected(), middleware.RequirePermission("working-hours", "create"), controllers.CreateWorkingHour)
	workingHour.Patch("/:id", middleware.Protected(), middleware.RequirePermission("working-hours", "update"), controllers.UpdateWorkingHour)
	workingHour.Delete("/:id", middleware.Protected(), middleware.RequirePermission("working-hours", "delete"), controllers.DeleteWorkingHour)
}
