package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/glowdesk/glowdesk-api/controllers"
	"github.com/glowdesk/glowdesk-api/middleware"
)

// SetupRBACRoutes configures role and permission management routes.
// The whole group is admin-only.
func SetupRBACRoutes(app *fiber.App) {
	rbac := app.Group("/rbac", middleware.Protected(), middleware.RequireRole("admin"))

	rbac.Get("/roles", controllers.GetRoles)
	rbac.Post("/roles", controllers.CreateRole)

	rbac.Get("/permissions", controllers.GetPermissions)
	rbac.Post("/permissions", controllers.CreatePermission)

	rbac.Post("/users/role", controllers.AssignRole)
	rbac.Post("/roles/permission", controllers.GrantPermission)
}
