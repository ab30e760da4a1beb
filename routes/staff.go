package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/glowdesk/glowdesk-api/controllers"
	"github.com/glowdesk/glowdesk-api/middleware"
)

// SetupStaffRoutes configures staff roster routes
func SetupStaffRoutes(app *fiber.App) {
	staff := app.Group("/businesses/:businessId/staff")
	staff.Get("/", controllers.GetAllStaff)
	staff.Get("/:id", controllers.GetStaffMember)
	staff.Post("/", middleware.Protected(), middleware.RequirePermission("staff", "create"), controllers.CreateStaffMember)
	staff.Patch("/:id", middleware.Protected(), middleware.RequirePermission("staff", "update"), controllers.UpdateStaffMember)
	staff.Delete("/:id", middleware.Protected(), middleware.RequirePermission("staff", "delete"), controllers.DeleteStaffMember)
}
