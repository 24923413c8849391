// internals/features/library/transactions/service/transaction_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	bookModel "perpusku_backend/internals/features/library/books/model"
	memberModel "perpusku_backend/internals/features/library/members/model"
	model "perpusku_backend/internals/features/library/transactions/model"
)

// Kebijakan peminjaman
const (
	LoanPeriodDays = 14    // jatuh tempo = tanggal issue + 14 hari
	DailyLateFee   = 10.0  // Rs.10 per hari keterlambatan
	DebtLimit      = 500.0 // anggota dengan hutang > 500 tidak boleh pinjam
)

var (
	ErrMemberNotFound    = errors.New("anggota tidak ditemukan")
	ErrBookNotFound      = errors.New("buku tidak ditemukan")
	ErrOutOfStock        = errors.New("stok buku habis")
	ErrDebtLimitExceeded = errors.New("hutang anggota melebihi batas Rs.500")
	ErrBookOnLoan        = errors.New("anggota masih meminjam buku ini")
	ErrNoMatchingIssue   = errors.New("tidak ada transaksi issue yang cocok")
)

type TransactionService struct {
	DB *gorm.DB
}

func NewTransactionService(db *gorm.DB) *TransactionService {
	return &TransactionService{DB: db}
}

// RecordTransaction menjalankan satu permintaan issue/return.
// Semua mutasi (stok buku, hutang anggota, baris ledger baru) commit dalam
// satu transaksi DB; gagal di titik mana pun = rollback total.
// `now` di-inject supaya perhitungan jatuh tempo/denda bisa dites.
func (s *TransactionService) RecordTransaction(ctx context.Context, memberID, bookID uuid.UUID, txType string, now time.Time) (*model.TransactionModel, error) {
	var created *model.TransactionModel

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		switch txType {
		case model.TypeIssue:
			rec, err := s.issue(tx, memberID, bookID, now)
			if err != nil {
				return err
			}
			created = rec
			return nil
		case model.TypeReturn:
			rec, err := s.returnBook(tx, memberID, bookID, now)
			if err != nil {
				return err
			}
			created = rec
			return nil
		default:
			return errors.New("transaction_type harus 'issue' atau 'return'")
		}
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *TransactionService) issue(tx *gorm.DB, memberID, bookID uuid.UUID, now time.Time) (*model.TransactionModel, error) {
	var member memberModel.MemberModel
	if err := tx.First(&member, "member_id = ?", memberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	// Stok dicek duluan sebelum hutang: kalau dua-duanya gagal, yang
	// dilaporkan adalah stok habis.
	var book bookModel.BookModel
	if err := tx.First(&book, "book_id = ?", bookID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	if book.BookStock < 1 {
		return nil, ErrOutOfStock
	}

	if member.MemberOutstandingDebt > DebtLimit {
		return nil, ErrDebtLimitExceeded
	}

	// Satu anggota tidak boleh pinjam judul yang sama dua kali sebelum dikembalikan.
	open, err := openLoanCount(tx, memberID, bookID)
	if err != nil {
		return nil, err
	}
	if open > 0 {
		return nil, ErrBookOnLoan
	}

	// Decrement kondisional tetap jadi penjaga terakhir: aman terhadap
	// issue bersamaan pada stok terakhir meski precheck di atas lolos.
	res := tx.Model(&bookModel.BookModel{}).
		Where("book_id = ? AND book_stock >= 1", bookID).
		UpdateColumn("book_stock", gorm.Expr("book_stock - 1"))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrOutOfStock
	}

	due := dateOnly(now).AddDate(0, 0, LoanPeriodDays)
	rec := &model.TransactionModel{
		TransactionMemberID: memberID,
		TransactionBookID:   bookID,
		TransactionType:     model.TypeIssue,
		TransactionDate:     now,
		TransactionDueDate:  &due,
	}
	if err := tx.Create(rec).Error; err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *TransactionService) returnBook(tx *gorm.DB, memberID, bookID uuid.UUID, now time.Time) (*model.TransactionModel, error) {
	var member memberModel.MemberModel
	if err := tx.First(&member, "member_id = ?", memberID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}

	var bookCnt int64
	if err := tx.Model(&bookModel.BookModel{}).Where("book_id = ?", bookID).Count(&bookCnt).Error; err != nil {
		return nil, err
	}
	if bookCnt == 0 {
		return nil, ErrBookNotFound
	}

	// Tanpa pinjaman terbuka, return kedua untuk issue lama ditolak
	// (mencegah stok menggelembung lewat return ganda).
	open, err := openLoanCount(tx, memberID, bookID)
	if err != nil {
		return nil, err
	}
	if open <= 0 {
		return nil, ErrNoMatchingIssue
	}

	// Ambil issue belum-berdenda yang paling baru → match deterministik.
	var issued model.TransactionModel
	if err := tx.Where(
		"transaction_member_id = ? AND transaction_book_id = ? AND transaction_type = ? AND transaction_fee_charged = 0",
		memberID, bookID, model.TypeIssue,
	).Order("transaction_date DESC").Order("transaction_id DESC").
		First(&issued).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoMatchingIssue
		}
		return nil, err
	}

	fee := 0.0
	if issued.TransactionDueDate != nil {
		if daysOverdue := daysBetween(*issued.TransactionDueDate, now); daysOverdue > 0 {
			fee = float64(daysOverdue) * DailyLateFee
		}
	}
	if fee > 0 {
		if err := tx.Model(&memberModel.MemberModel{}).
			Where("member_id = ?", memberID).
			UpdateColumn("member_outstanding_debt", gorm.Expr("member_outstanding_debt + ?", fee)).Error; err != nil {
			return nil, err
		}
	}

	// Stok naik 1 terlepas dari telat atau tidak.
	if err := tx.Model(&bookModel.BookModel{}).
		Where("book_id = ?", bookID).
		UpdateColumn("book_stock", gorm.Expr("book_stock + 1")).Error; err != nil {
		return nil, err
	}

	rec := &model.TransactionModel{
		TransactionMemberID:   memberID,
		TransactionBookID:     bookID,
		TransactionType:       model.TypeReturn,
		TransactionDate:       now,
		TransactionFeeCharged: fee,
	}
	if err := tx.Create(rec).Error; err != nil {
		return nil, err
	}
	return rec, nil
}

// openLoanCount = jumlah issue dikurangi jumlah return untuk pasangan (anggota, buku).
func openLoanCount(tx *gorm.DB, memberID, bookID uuid.UUID) (int64, error) {
	var issues, returns int64
	if err := tx.Model(&model.TransactionModel{}).
		Where("transaction_member_id = ? AND transaction_book_id = ? AND transaction_type = ?", memberID, bookID, model.TypeIssue).
		Count(&issues).Error; err != nil {
		return 0, err
	}
	if err := tx.Model(&model.TransactionModel{}).
		Where("transaction_member_id = ? AND transaction_book_id = ? AND transaction_type = ?", memberID, bookID, model.TypeReturn).
		Count(&returns).Error; err != nil {
		return 0, err
	}
	return issues - returns, nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween = selisih hari kalender (bisa negatif kalau dikembalikan lebih awal).
func daysBetween(due, now time.Time) int {
	return int(dateOnly(now).Sub(dateOnly(due)).Hours() / 24)
}
