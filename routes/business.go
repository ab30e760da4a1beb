package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/glowdesk/glowdesk-api/controllers"
	"github.com/glowdesk/glowdesk-api/middleware"
)

// SetupBusinessRoutes configures business CRUD and nested resource routes
func SetupBusinessRoutes(app *fiber.App) {
	business := app.Group("/businesses")
	business.Get("/", controllers.GetAllBusinesses)
	business.Get("/:id", controllers.GetBusiness)
	business.Post("/", middleware.Protected(), middleware.RequirePermission("businesses", "create"), controllers.CreateBusiness)
	business.Patch("/:id", middleware.Protected(), middleware.RequirePermission("businesses", "update"), controllers.UpdateBusiness)
	business.Delete("/:id", middleware.Protected(), middleware.RequirePermission("businesses", "delete"), controllers.DeleteBusiness)
	business.Post("/:id/logo", middleware.Protected(), middleware.RequirePermission("businesses", "update"), controllers.UploadBusinessLogo)

	// Dashboard for a single business
	business.Get("/:businessId/dashboard/overview", middleware.Protected(), controllers.GetDashboardOverview)
	business.Get("/:businessId/dashboard/upcoming", middleware.Protected(), controllers.GetUpcomingBookings)
}
