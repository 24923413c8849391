// internals/features/library/dashboard/controller/dashboard_controller.go
package controller

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	service "perpusku_backend/internals/features/library/dashboard/service"
	txModel "perpusku_backend/internals/features/library/transactions/model"
	helper "perpusku_backend/internals/helpers"
)

type DashboardController struct {
	Service *service.DashboardService
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{Service: service.NewDashboardService(db)}
}

const recentLimit = 20

// =========================================================
// DATA - GET /api/a/dashboard?graph=1&report=1
//        &transaction_type=&start_date=&end_date=
// Selalu mengirim total_books/total_members/total_transactions;
// graph → transactions_by_day, report → recent_transactions.
// =========================================================
func (h *DashboardController) Data(c *fiber.Ctx) error {
	txType := strings.TrimSpace(c.Query("transaction_type"))
	if txType != "" && txType != txModel.TypeIssue && txType != txModel.TypeReturn {
		return helper.JsonError(c, fiber.StatusBadRequest, "transaction_type harus 'issue' atau 'return'")
	}

	var start, end *time.Time
	if v := strings.TrimSpace(c.Query("start_date")); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "start_date harus format YYYY-MM-DD")
		}
		start = &t
	}
	if v := strings.TrimSpace(c.Query("end_date")); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "end_date harus format YYYY-MM-DD")
		}
		end = &t
	}

	counts, err := h.Service.Counts(c.UserContext())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil ringkasan")
	}

	// endpoint data dashboard: key top-level, tanpa amplop standar
	body := fiber.Map{
		"total_books":        counts.TotalBooks,
		"total_members":      counts.TotalMembers,
		"total_transactions": counts.TotalTransactions,
	}

	if c.QueryBool("graph") {
		since := time.Now().AddDate(0, 0, -30) // default: 30 hari terakhir
		if start != nil {
			since = *start
		}
		byDay, err := h.Service.ActivityByDay(c.UserContext(), since, txType, end)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data grafik")
		}
		body["transactions_by_day"] = byDay
	}

	if c.QueryBool("report") {
		recent, err := h.Service.Recent(c.UserContext(), recentLimit, txType, start, end)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil laporan")
		}
		body["recent_transactions"] = recent
	}

	return c.Status(fiber.StatusOK).JSON(body)
}
