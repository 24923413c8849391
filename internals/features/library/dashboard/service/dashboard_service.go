// internals/features/library/dashboard/service/dashboard_service.go
package service

import (
	"context"
	"sort"
	"time"

	"gorm.io/gorm"

	bookModel "perpusku_backend/internals/features/library/books/model"
	dto "perpusku_backend/internals/features/library/dashboard/dto"
	memberModel "perpusku_backend/internals/features/library/members/model"
	txModel "perpusku_backend/internals/features/library/transactions/model"
)

// DashboardService hanya membaca; tidak pernah memutasi state.
type DashboardService struct {
	DB *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{DB: db}
}

func (s *DashboardService) Counts(ctx context.Context) (dto.Counts, error) {
	var out dto.Counts
	db := s.DB.WithContext(ctx)
	if err := db.Model(&bookModel.BookModel{}).Count(&out.TotalBooks).Error; err != nil {
		return out, err
	}
	if err := db.Model(&memberModel.MemberModel{}).Count(&out.TotalMembers).Error; err != nil {
		return out, err
	}
	if err := db.Model(&txModel.TransactionModel{}).Count(&out.TotalTransactions).Error; err != nil {
		return out, err
	}
	return out, nil
}

// ActivityByDay mengelompokkan transaksi per tanggal kalender (ascending).
// Tanggal kosong tidak di-zero-fill.
func (s *DashboardService) ActivityByDay(ctx context.Context, since time.Time, txType string, until *time.Time) ([]dto.DayCount, error) {
	tx := s.DB.WithContext(ctx).Model(&txModel.TransactionModel{}).
		Where("transaction_date >= ?", since)
	if txType != "" {
		tx = tx.Where("transaction_type = ?", txType)
	}
	if until != nil {
		tx = tx.Where("transaction_date < ?", until.AddDate(0, 0, 1))
	}

	var dates []time.Time
	if err := tx.Order("transaction_date ASC").Pluck("transaction_date", &dates).Error; err != nil {
		return nil, err
	}

	buckets := map[string]int64{}
	for _, d := range dates {
		buckets[d.Format("2006-01-02")]++
	}

	days := make([]string, 0, len(buckets))
	for day := range buckets {
		days = append(days, day)
	}
	sort.Strings(days)

	out := make([]dto.DayCount, 0, len(days))
	for _, day := range days {
		out = append(out, dto.DayCount{Day: day, Count: buckets[day]})
	}
	return out, nil
}

// Recent mengambil N transaksi terbaru + judul buku & nama anggota.
func (s *DashboardService) Recent(ctx context.Context, limit int, txType string, start, end *time.Time) ([]dto.RecentTransaction, error) {
	if limit <= 0 {
		limit = 20
	}

	tx := s.DB.WithContext(ctx).Model(&txModel.TransactionModel{}).
		Joins("JOIN books ON books.book_id = transactions.transaction_book_id").
		Joins("JOIN members ON members.member_id = transactions.transaction_member_id")
	if txType != "" {
		tx = tx.Where("transaction_type = ?", txType)
	}
	if start != nil {
		tx = tx.Where("transaction_date >= ?", *start)
	}
	if end != nil {
		tx = tx.Where("transaction_date < ?", end.AddDate(0, 0, 1))
	}

	var rows []struct {
		TransactionDate time.Time `gorm:"column:transaction_date"`
		TransactionType string    `gorm:"column:transaction_type"`
		BookTitle       string    `gorm:"column:book_title"`
		MemberName      string    `gorm:"column:member_name"`
	}
	if err := tx.
		Select("transactions.transaction_date, transactions.transaction_type, books.book_title AS book_title, members.member_name AS member_name").
		Order("transactions.transaction_date DESC").
		Order("transactions.transaction_id DESC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]dto.RecentTransaction, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.RecentTransaction{
			Date:   r.TransactionDate.Format("2006-01-02 15:04"),
			Type:   r.TransactionType,
			Book:   r.BookTitle,
			Member: r.MemberName,
		})
	}
	return out, nil
}
