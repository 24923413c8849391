package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dashboardController "perpusku_backend/internals/features/library/dashboard/controller"
)

// Panggil dengan: route.DashboardAdminRoutes(app.Group("/api/a"), db)
// Hasil endpoint: /api/a/dashboard
func DashboardAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := dashboardController.NewDashboardController(db)

	r.Get("/dashboard", ctl.Data)
}
