// internals/features/library/transactions/model/transaction_model.go
package model

import (
	"time"

	"github.com/google/uuid"

	bookModel "perpusku_backend/internals/features/library/books/model"
	memberModel "perpusku_backend/internals/features/library/members/model"
)

const (
	TypeIssue  = "issue"
	TypeReturn = "return"
)

type TransactionModel struct {
	// PK: nomor urut ledger
	TransactionID int64 `json:"transaction_id" gorm:"column:transaction_id;primaryKey;autoIncrement"`

	// FKs (cascade: hapus buku/anggota ikut menghapus transaksinya)
	TransactionMemberID uuid.UUID `json:"transaction_member_id" gorm:"column:transaction_member_id;type:uuid;not null;index:idx_transactions_member"`
	TransactionBookID   uuid.UUID `json:"transaction_book_id"   gorm:"column:transaction_book_id;type:uuid;not null;index:idx_transactions_book"`

	// issue | return
	TransactionType string `json:"transaction_type" gorm:"column:transaction_type;type:varchar(6);not null;check:chk_transactions_type,transaction_type IN ('issue','return')"`

	TransactionDate time.Time `json:"transaction_date" gorm:"column:transaction_date;not null;autoCreateTime;index:idx_transactions_date"`

	// hanya terisi untuk issue (tanggal issue + 14 hari)
	TransactionDueDate *time.Time `json:"transaction_due_date,omitempty" gorm:"column:transaction_due_date;type:date"`

	// denda yang dibebankan saat return terlambat
	TransactionFeeCharged float64 `json:"transaction_fee_charged" gorm:"column:transaction_fee_charged;type:numeric(6,2);not null;default:0"`

	Member memberModel.MemberModel `json:"-" gorm:"foreignKey:TransactionMemberID;references:MemberID;constraint:OnDelete:CASCADE"`
	Book   bookModel.BookModel     `json:"-" gorm:"foreignKey:TransactionBookID;references:BookID;constraint:OnDelete:CASCADE"`
}

func (TransactionModel) TableName() string { return "transactions" }
