// internals/features/library/books/controller/book_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "perpusku_backend/internals/features/library/books/dto"
	model "perpusku_backend/internals/features/library/books/model"
	helper "perpusku_backend/internals/helpers"
)

type BookController struct {
	DB *gorm.DB
}

var validate = validator.New()

// =========================================================
// LIST - GET /api/a/books?q=&page=&per_page=
// q mencari di judul + pengarang
// =========================================================
func (h *BookController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := h.DB.WithContext(c.UserContext()).Model(&model.BookModel{})
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		tx = tx.Where("lower(book_title) LIKE ? OR lower(book_authors) LIKE ?", like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data buku")
	}

	var books []model.BookModel
	if err := tx.Order("book_title ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&books).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data buku")
	}

	pg := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Daftar buku", dto.ToBookResponses(books), &pg)
}

// =========================================================
// DETAIL - GET /api/a/books/:id
// =========================================================
func (h *BookController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.BookModel
	if err := h.DB.WithContext(c.UserContext()).First(&m, "book_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Buku tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data buku")
	}
	return helper.JsonOK(c, "Detail buku", dto.ToBookResponse(&m))
}

// =========================================================
// CREATE - POST /api/a/books
// =========================================================
func (h *BookController) Create(c *fiber.Ctx) error {
	var req dto.BookCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.WithContext(c.UserContext()).Create(m).Error; err != nil {
		if isDuplicateErr(err) {
			return helper.JsonError(c, fiber.StatusConflict, "ISBN sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat data buku")
	}
	return helper.JsonCreated(c, "Buku berhasil ditambahkan", dto.ToBookResponse(m))
}

// =========================================================
// UPDATE - PUT /api/a/books/:id
// =========================================================
func (h *BookController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.BookUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.BookModel
	if err := h.DB.WithContext(c.UserContext()).First(&m, "book_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Buku tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data buku")
	}

	req.ApplyToModel(&m)
	if err := h.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		if isDuplicateErr(err) {
			return helper.JsonError(c, fiber.StatusConflict, "ISBN sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui data buku")
	}
	return helper.JsonOK(c, "Buku berhasil diperbarui", dto.ToBookResponse(&m))
}

// =========================================================
// DELETE - DELETE /api/a/books/:id?confirm=true
// Hapus buku ikut menghapus transaksinya (cascade)
// =========================================================
func (h *BookController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	if !c.QueryBool("confirm") {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tambahkan ?confirm=true untuk menghapus buku")
	}

	res := h.DB.WithContext(c.UserContext()).Delete(&model.BookModel{}, "book_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus buku")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Buku tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Buku berhasil dihapus", fiber.Map{"book_id": id})
}

func isDuplicateErr(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique")
}
