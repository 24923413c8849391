package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	importController "perpusku_backend/internals/features/library/imports/controller"
)

// Panggil dengan: route.ImportAdminRoutes(app.Group("/api/a"), db)
// Hasil endpoint: /api/a/import-books
func ImportAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := importController.NewImportController(db)

	r.Post("/import-books", ctl.ImportBooks)
}
