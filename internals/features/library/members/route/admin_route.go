package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	memberController "perpusku_backend/internals/features/library/members/controller"
)

// Panggil dengan: route.MemberAdminRoutes(app.Group("/api/a"), db)
// Hasil endpoint: /api/a/members
func MemberAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &memberController.MemberController{DB: db}

	members := r.Group("/members")
	members.Get("/", ctl.List)
	members.Get("/:id", ctl.GetByID)
	members.Post("/", ctl.Create)
	members.Put("/:id", ctl.Update)
	members.Delete("/:id", ctl.Delete)
}
