package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/glowdesk/glowdesk-api/controllers"
	"github.com/glowdesk/glowdesk-api/middleware"
)

// SetupClientRoutes configures client records routes
func SetupClientRoutes(app *fiber.App) {
	client := app.Group("/businesses/:businessId/clients", middleware.Protected())
	client.Get("/", middleware.RequirePermission("clients", "read"), controllers.GetAllClients)
	client.Get("/:id", middleware.RequirePermission("clients", "read"), controllers.GetClient)
	client.Post("/", middleware.RequirePermission("clients", "create"), controllers.CreateClient)
	client.Patch("/:id", middleware.RequirePermission("clients", "update"), controllers.UpdateClient)
	client.Delete("/:id", middleware.RequirePermission("clients", "delete"), controllers.DeleteClient)
}
