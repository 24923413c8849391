package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	bookModel "perpusku_backend/internals/features/library/books/model"
	memberModel "perpusku_backend/internals/features/library/members/model"
	txModel "perpusku_backend/internals/features/library/transactions/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "perpus.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&bookModel.BookModel{},
		&memberModel.MemberModel{},
		&txModel.TransactionModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedCatalog(t *testing.T, db *gorm.DB) (*bookModel.BookModel, *memberModel.MemberModel) {
	t.Helper()
	b := &bookModel.BookModel{
		BookTitle:     "Bumi Manusia",
		BookAuthors:   "Pramoedya Ananta Toer",
		BookISBN:      "9789799731234",
		BookPublisher: "Hasta Mitra",
		BookNumPages:  535,
		BookStock:     3,
	}
	if err := db.Create(b).Error; err != nil {
		t.Fatalf("seed book: %v", err)
	}
	m := &memberModel.MemberModel{
		MemberName:  "Sari",
		MemberEmail: "sari@mail.com",
	}
	if err := db.Create(m).Error; err != nil {
		t.Fatalf("seed member: %v", err)
	}
	return b, m
}

func seedTx(t *testing.T, db *gorm.DB, b *bookModel.BookModel, m *memberModel.MemberModel, typ string, at time.Time) {
	t.Helper()
	rec := txModel.TransactionModel{
		TransactionMemberID: m.MemberID,
		TransactionBookID:   b.BookID,
		TransactionType:     typ,
		TransactionDate:     at,
	}
	if err := db.Create(&rec).Error; err != nil {
		t.Fatalf("seed tx: %v", err)
	}
}

func at(d, hour int) time.Time {
	return time.Date(2026, 4, 1, hour, 0, 0, 0, time.UTC).AddDate(0, 0, d)
}

func TestCounts(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(db)
	b, m := seedCatalog(t, db)
	seedTx(t, db, b, m, txModel.TypeIssue, at(0, 9))
	seedTx(t, db, b, m, txModel.TypeReturn, at(2, 9))

	counts, err := svc.Counts(context.Background())
	if err != nil {
		t.Fatalf("counts: %v", err)
	}
	if counts.TotalBooks != 1 || counts.TotalMembers != 1 || counts.TotalTransactions != 2 {
		t.Fatalf("counts = %+v, want 1/1/2", counts)
	}
}

func TestActivityByDayGroupsAndSorts(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(db)
	b, m := seedCatalog(t, db)

	// hari-0 dua transaksi, hari-2 satu; hari-1 sengaja kosong
	seedTx(t, db, b, m, txModel.TypeIssue, at(0, 9))
	seedTx(t, db, b, m, txModel.TypeReturn, at(0, 15))
	seedTx(t, db, b, m, txModel.TypeIssue, at(2, 11))

	days, err := svc.ActivityByDay(context.Background(), at(0, 0).AddDate(0, 0, -30), "", nil)
	if err != nil {
		t.Fatalf("activity: %v", err)
	}
	if len(days) != 2 {
		t.Fatalf("len = %d, want 2 (hari kosong tidak di-zero-fill)", len(days))
	}
	if days[0].Day != "2026-04-01" || days[0].Count != 2 {
		t.Fatalf("days[0] = %+v, want 2026-04-01/2", days[0])
	}
	if days[1].Day != "2026-04-03" || days[1].Count != 1 {
		t.Fatalf("days[1] = %+v, want 2026-04-03/1", days[1])
	}
}

func TestActivityByDayFiltersTypeAndWindow(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(db)
	b, m := seedCatalog(t, db)

	seedTx(t, db, b, m, txModel.TypeIssue, at(0, 9))
	seedTx(t, db, b, m, txModel.TypeReturn, at(1, 9))
	seedTx(t, db, b, m, txModel.TypeIssue, at(5, 9))

	// hanya issue
	days, err := svc.ActivityByDay(context.Background(), at(0, 0), txModel.TypeIssue, nil)
	if err != nil {
		t.Fatalf("activity: %v", err)
	}
	if len(days) != 2 {
		t.Fatalf("issue days = %d, want 2", len(days))
	}

	// window tutup di hari-1 (inklusif)
	until := at(1, 0)
	days, err = svc.ActivityByDay(context.Background(), at(0, 0), "", &until)
	if err != nil {
		t.Fatalf("activity: %v", err)
	}
	if len(days) != 2 {
		t.Fatalf("windowed days = %d, want 2", len(days))
	}
	for _, d := range days {
		if d.Day == "2026-04-06" {
			t.Fatalf("hari di luar window ikut terhitung: %+v", d)
		}
	}
}

func TestRecentNewestFirstWithJoinedNames(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(db)
	b, m := seedCatalog(t, db)

	seedTx(t, db, b, m, txModel.TypeIssue, at(0, 9))
	seedTx(t, db, b, m, txModel.TypeReturn, at(3, 14))

	recent, err := svc.Recent(context.Background(), 20, "", nil, nil)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("len = %d, want 2", len(recent))
	}
	first := recent[0]
	if first.Type != txModel.TypeReturn {
		t.Fatalf("first type = %s, want return (terbaru dulu)", first.Type)
	}
	if first.Date != "2026-04-04 14:00" {
		t.Fatalf("first date = %q, want %q", first.Date, "2026-04-04 14:00")
	}
	if first.Book != "Bumi Manusia" || first.Member != "Sari" {
		t.Fatalf("join salah: book=%q member=%q", first.Book, first.Member)
	}
}

func TestRecentHonorsLimit(t *testing.T) {
	db := newTestDB(t)
	svc := NewDashboardService(db)
	b, m := seedCatalog(t, db)

	for i := 0; i < 5; i++ {
		seedTx(t, db, b, m, txModel.TypeIssue, at(i, 9))
	}
	recent, err := svc.Recent(context.Background(), 3, "", nil, nil)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("len = %d, want 3", len(recent))
	}
}
