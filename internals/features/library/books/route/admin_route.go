package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	bookController "perpusku_backend/internals/features/library/books/controller"
)

// Panggil dengan: route.BookAdminRoutes(app.Group("/api/a"), db)
// Hasil endpoint: /api/a/books
func BookAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := &bookController.BookController{DB: db}

	books := r.Group("/books")
	books.Get("/", ctl.List)
	books.Get("/:id", ctl.GetByID)
	books.Post("/", ctl.Create)
	books.Put("/:id", ctl.Update)
	books.Delete("/:id", ctl.Delete)
}
