package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	txController "perpusku_backend/internals/features/library/transactions/controller"
)

// Panggil dengan: route.TransactionAdminRoutes(app.Group("/api/a"), db)
// Hasil endpoint: /api/a/transactions
func TransactionAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := txController.NewTransactionController(db)

	transactions := r.Group("/transactions")
	transactions.Get("/", ctl.List)
	transactions.Post("/", ctl.Create)
}
