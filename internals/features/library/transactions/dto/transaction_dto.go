// internals/features/library/transactions/dto/transaction_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	model "perpusku_backend/internals/features/library/transactions/model"
)

/* =========================
   REQUEST
   ========================= */

type TransactionCreateRequest struct {
	MemberID        uuid.UUID `json:"member_id"        validate:"required"`
	BookID          uuid.UUID `json:"book_id"          validate:"required"`
	TransactionType string    `json:"transaction_type" validate:"required,oneof=issue return"`
}

// Query untuk listing (filter opsional, tanggal format YYYY-MM-DD)
type TransactionListQuery struct {
	TransactionType string `query:"transaction_type"`
	StartDate       string `query:"start_date"`
	EndDate         string `query:"end_date"`
}

/* =========================
   RESPONSE
   ========================= */

type TransactionResponse struct {
	TransactionID         int64      `json:"transaction_id"`
	TransactionMemberID   uuid.UUID  `json:"transaction_member_id"`
	TransactionBookID     uuid.UUID  `json:"transaction_book_id"`
	TransactionType       string     `json:"transaction_type"`
	TransactionDate       time.Time  `json:"transaction_date"`
	TransactionDueDate    *string    `json:"transaction_due_date,omitempty"`
	TransactionFeeCharged float64    `json:"transaction_fee_charged"`
}

func ToTransactionResponse(m *model.TransactionModel) TransactionResponse {
	resp := TransactionResponse{
		TransactionID:         m.TransactionID,
		TransactionMemberID:   m.TransactionMemberID,
		TransactionBookID:     m.TransactionBookID,
		TransactionType:       m.TransactionType,
		TransactionDate:       m.TransactionDate,
		TransactionFeeCharged: m.TransactionFeeCharged,
	}
	if m.TransactionDueDate != nil {
		d := m.TransactionDueDate.Format("2006-01-02")
		resp.TransactionDueDate = &d
	}
	return resp
}

// Item listing: baris ledger yang sudah di-resolve judul buku + nama anggota
type TransactionListItem struct {
	TransactionID         int64      `json:"transaction_id"         gorm:"column:transaction_id"`
	TransactionType       string     `json:"transaction_type"       gorm:"column:transaction_type"`
	TransactionDate       time.Time  `json:"transaction_date"       gorm:"column:transaction_date"`
	TransactionDueDate    *time.Time `json:"transaction_due_date"   gorm:"column:transaction_due_date"`
	TransactionFeeCharged float64    `json:"transaction_fee_charged" gorm:"column:transaction_fee_charged"`
	BookTitle             string     `json:"book_title"             gorm:"column:book_title"`
	MemberName            string     `json:"member_name"            gorm:"column:member_name"`
}
