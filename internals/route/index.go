// internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bookRoute "perpusku_backend/internals/features/library/books/route"
	dashboardRoute "perpusku_backend/internals/features/library/dashboard/route"
	importRoute "perpusku_backend/internals/features/library/imports/route"
	memberRoute "perpusku_backend/internals/features/library/members/route"
	txRoute "perpusku_backend/internals/features/library/transactions/route"
	authRoute "perpusku_backend/internals/features/users/auth/route"
	authMiddleware "perpusku_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db)

	// ===================== ADMIN (pustakawan) =====================
	log.Println("[INFO] Setting up ADMIN group (JWT guard)...")
	admin := app.Group("/api/a", authMiddleware.AuthMiddleware())

	bookRoute.BookAdminRoutes(admin, db)
	memberRoute.MemberAdminRoutes(admin, db)
	txRoute.TransactionAdminRoutes(admin, db)
	dashboardRoute.DashboardAdminRoutes(admin, db)
	importRoute.ImportAdminRoutes(admin, db)
}
