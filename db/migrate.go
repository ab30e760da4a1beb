package db

import (
	"fmt"
	"log"

	"github.com/glowdesk/glowdesk-api/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	// Run AutoMigrate only when explicitly called
	err := DB.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.Permission{},
		&models.Business{},
		&models.StaffMember{},
		&models.Service{},
		&models.Client{},
		&models.Booking{},
		&models.WorkingHours{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	seedDefaultRolesAndPermissions()

	fmt.Println("✅ Migrations applied successfully!")
}

// seedDefaultRolesAndPermissions creates the built-in roles and their permissions
func seedDefaultRolesAndPermissions() {
	roles := []models.Role{
		{Name: "admin", Description: "Administrator with full access"},
		{Name: "owner", Description: "Business owner managing their salon"},
		{Name: "staff", Description: "Staff member managing their own schedule"},
		{Name: "client", Description: "Client who can book appointments"},
	}

	for _, role := range roles {
		var existingRole models.Role
		if DB.Where("name = ?", role.Name).First(&existingRole).RowsAffected == 0 {
			DB.Create(&role)
		}
	}

	resources := []string{"businesses", "services", "staff", "clients", "bookings", "working-hours"}
	actions := []string{"create", "read", "update", "delete"}

	for _, resource := range resources {
		for _, action := range actions {
			name := fmt.Sprintf("%s_%s", action, resource)
			var existing models.Permission
			if DB.Where("name = ?", name).First(&existing).RowsAffected == 0 {
				DB.Create(&models.Permission{
					Name:        name,
					Description: fmt.Sprintf("%s %s", action, resource),
					Resource:    resource,
					Action:      action,
				})
			}
		}
	}

	// Admin and owner get everything; staff can read and update bookings;
	// clients can read services and manage their own bookings.
	var allPermissions []models.Permission
	DB.Find(&allPermissions)

	for _, roleName := range []string{"admin", "owner"} {
		var role models.Role
		if DB.Where("name = ?", roleName).First(&role).RowsAffected > 0 {
			DB.Model(&role).Association("Permissions").Clear()
			DB.Model(&role).Association("Permissions").Append(allPermissions)
		}
	}

	var staffRole models.Role
	if DB.Where("name = ?", "staff").First(&staffRole).RowsAffected > 0 {
		var staffPermissions []models.Permission
		DB.Where("resource IN (?)", []string{"bookings", "working-hours", "clients"}).
			Where("action IN (?)", []string{"read", "update"}).
			Find(&staffPermissions)

		DB.Model(&staffRole).Association("Permissions").Clear()
		DB.Model(&staffRole).Association("Permissions").Append(staffPermissions)
	}

	var clientRole models.Role
	if DB.Where("name = ?", "client").First(&clientRole).RowsAffected > 0 {
		var clientPermissions []models.Permission
		DB.Where("name IN (?)", []string{
			"create_bookings",
			"read_bookings",
			"update_bookings",
			"read_services",
		}).Find(&clientPermissions)

		DB.Model(&clientRole).Association("Permissions").Clear()
		DB.Model(&clientRole).Association("Permissions").Append(clientPermissions)
	}
}
