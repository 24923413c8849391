// internals/features/library/transactions/controller/transaction_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "perpusku_backend/internals/features/library/transactions/dto"
	model "perpusku_backend/internals/features/library/transactions/model"
	service "perpusku_backend/internals/features/library/transactions/service"
	helper "perpusku_backend/internals/helpers"
)

type TransactionController struct {
	DB      *gorm.DB
	Service *service.TransactionService
}

func NewTransactionController(db *gorm.DB) *TransactionController {
	return &TransactionController{DB: db, Service: service.NewTransactionService(db)}
}

var validate = validator.New()

// =========================================================
// LIST - GET /api/a/transactions?transaction_type=&start_date=&end_date=
// Terbaru dulu, resolve judul buku + nama anggota.
// =========================================================
func (h *TransactionController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var q dto.TransactionListQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Query tidak valid")
	}

	tx := h.DB.WithContext(c.UserContext()).Model(&model.TransactionModel{}).
		Joins("JOIN books ON books.book_id = transactions.transaction_book_id").
		Joins("JOIN members ON members.member_id = transactions.transaction_member_id")

	if t := strings.TrimSpace(q.TransactionType); t != "" {
		if t != model.TypeIssue && t != model.TypeReturn {
			return helper.JsonError(c, fiber.StatusBadRequest, "transaction_type harus 'issue' atau 'return'")
		}
		tx = tx.Where("transaction_type = ?", t)
	}
	if q.StartDate != "" {
		start, err := time.Parse("2006-01-02", q.StartDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "start_date harus format YYYY-MM-DD")
		}
		tx = tx.Where("transaction_date >= ?", start)
	}
	if q.EndDate != "" {
		end, err := time.Parse("2006-01-02", q.EndDate)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "end_date harus format YYYY-MM-DD")
		}
		tx = tx.Where("transaction_date < ?", end.AddDate(0, 0, 1)) // inklusif sampai akhir hari
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghitung transaksi")
	}

	var rows []dto.TransactionListItem
	if err := tx.
		Select("transactions.transaction_id, transactions.transaction_type, transactions.transaction_date, transactions.transaction_due_date, transactions.transaction_fee_charged, books.book_title AS book_title, members.member_name AS member_name").
		Order("transactions.transaction_date DESC").
		Order("transactions.transaction_id DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Scan(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil transaksi")
	}

	pg := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Daftar transaksi", rows, &pg)
}

// =========================================================
// CREATE - POST /api/a/transactions
// Body: {member_id, book_id, transaction_type}
// =========================================================
func (h *TransactionController) Create(c *fiber.Ctx) error {
	var req dto.TransactionCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	rec, err := h.Service.RecordTransaction(c.UserContext(), req.MemberID, req.BookID, req.TransactionType, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMemberNotFound), errors.Is(err, service.ErrBookNotFound):
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrOutOfStock),
			errors.Is(err, service.ErrDebtLimitExceeded),
			errors.Is(err, service.ErrBookOnLoan),
			errors.Is(err, service.ErrNoMatchingIssue):
			return helper.JsonError(c, fiber.StatusConflict, err.Error())
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mencatat transaksi")
		}
	}

	msg := "Transaksi berhasil dicatat"
	if rec.TransactionFeeCharged > 0 {
		msg = "Buku dikembalikan dengan denda"
	}
	return helper.JsonCreated(c, msg, dto.ToTransactionResponse(rec))
}
