package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "perpusku_backend/internals/features/users/auth/controller"
	"perpusku_backend/internals/middlewares"
)

// AuthRoutes memasang endpoint publik login (rate limit lebih ketat).
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctl := &authController.AuthController{DB: db}

	app.Post("/api/login", middlewares.LoginRateLimiter(), ctl.Login)
}
