package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/glowdesk/glowdesk-api/cron"
	"github.com/glowdesk/glowdesk-api/db"
	"github.com/glowdesk/glowdesk-api/redis"
	"github.com/glowdesk/glowdesk-api/routes"
)

func main() {
	app := fiber.New()
	db.Init()
	redis.InitRedis()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	routes.SetupAuthRoutes(app)
	routes.SetupBusinessRoutes(app)
	routes.SetupServiceRoutes(app)
	routes.SetupStaffRoutes(app)
	routes.SetupClientRoutes(app)
	routes.SetupBookingRoutes(app)
	routes.SetupWorkingHourRoutes(app)
	routes.SetupRBACRoutes(app)

	cron.StartCronJobs()

	log.Fatal(app.Listen(":8000"))
}
