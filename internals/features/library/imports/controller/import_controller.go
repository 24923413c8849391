// internals/features/library/imports/controller/import_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"perpusku_backend/internals/configs"
	dto "perpusku_backend/internals/features/library/imports/dto"
	service "perpusku_backend/internals/features/library/imports/service"
	helper "perpusku_backend/internals/helpers"
)

type ImportController struct {
	Service *service.ImportService
}

func NewImportController(db *gorm.DB) *ImportController {
	return &ImportController{Service: service.NewImportService(db, configs.BookAPIURL)}
}

var validate = validator.New()

// =========================================================
// IMPORT - POST /api/a/import-books
// Body: {num_books, title?, authors?, isbn?, publisher?}
// Sumber gagal di tengah → tetap lapor jumlah yang berhasil.
// =========================================================
func (h *ImportController) ImportBooks(c *fiber.Ctx) error {
	var req dto.ImportBooksRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	imported, err := h.Service.ImportBooks(c.UserContext(), req.NumBooks, service.Filters{
		Title:     req.Title,
		Authors:   req.Authors,
		ISBN:      req.ISBN,
		Publisher: req.Publisher,
	})
	if err != nil {
		if errors.Is(err, service.ErrSourceUnavailable) {
			return helper.JsonOK(c, "Import berhenti: sumber eksternal tidak tersedia",
				dto.ImportBooksResponse{Imported: imported})
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan buku hasil import")
	}

	return helper.JsonOK(c, "Import buku selesai", dto.ImportBooksResponse{Imported: imported})
}
