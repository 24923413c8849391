// internals/features/library/members/controller/member_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dto "perpusku_backend/internals/features/library/members/dto"
	model "perpusku_backend/internals/features/library/members/model"
	helper "perpusku_backend/internals/helpers"
)

type MemberController struct {
	DB *gorm.DB
}

var validate = validator.New()

// =========================================================
// LIST - GET /api/a/members?q=&page=&per_page=
// q mencari di nama + email
// =========================================================
func (h *MemberController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	tx := h.DB.WithContext(c.UserContext()).Model(&model.MemberModel{})
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		like := "%" + strings.ToLower(q) + "%"
		tx = tx.Where("lower(member_name) LIKE ? OR lower(member_email) LIKE ?", like, like)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung data anggota")
	}

	var members []model.MemberModel
	if err := tx.Order("member_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&members).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data anggota")
	}

	pg := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Daftar anggota", dto.ToMemberResponses(members), &pg)
}

// =========================================================
// DETAIL - GET /api/a/members/:id
// =========================================================
func (h *MemberController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.MemberModel
	if err := h.DB.WithContext(c.UserContext()).First(&m, "member_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Anggota tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data anggota")
	}
	return helper.JsonOK(c, "Detail anggota", dto.ToMemberResponse(&m))
}

// =========================================================
// CREATE - POST /api/a/members
// =========================================================
func (h *MemberController) Create(c *fiber.Ctx) error {
	var req dto.MemberCreateRequest
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
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat data anggota")
	}
	return helper.JsonCreated(c, "Anggota berhasil ditambahkan", dto.ToMemberResponse(m))
}

// =========================================================
// UPDATE - PUT /api/a/members/:id
// =========================================================
func (h *MemberController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.MemberUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var m model.MemberModel
	if err := h.DB.WithContext(c.UserContext()).First(&m, "member_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Anggota tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data anggota")
	}

	req.ApplyToModel(&m)
	if err := h.DB.WithContext(c.UserContext()).Save(&m).Error; err != nil {
		if isDuplicateErr(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui data anggota")
	}
	return helper.JsonOK(c, "Anggota berhasil diperbarui", dto.ToMemberResponse(&m))
}

// =========================================================
// DELETE - DELETE /api/a/members/:id?confirm=true
// Hapus anggota ikut menghapus transaksinya (cascade)
// =========================================================
func (h *MemberController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}
	if !c.QueryBool("confirm") {
		return helper.JsonError(c, fiber.StatusBadRequest, "Tambahkan ?confirm=true untuk menghapus anggota")
	}

	res := h.DB.WithContext(c.UserContext()).Delete(&model.MemberModel{}, "member_id = ?", id)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus anggota")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Anggota tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Anggota berhasil dihapus", fiber.Map{"member_id": id})
}

func isDuplicateErr(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique")
}
