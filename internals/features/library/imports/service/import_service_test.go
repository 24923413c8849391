package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	bookModel "perpusku_backend/internals/features/library/books/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "perpus.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&bookModel.BookModel{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newService(db *gorm.DB, srv *httptest.Server) *ImportService {
	s := NewImportService(db, srv.URL)
	s.Client = srv.Client()
	return s
}

// fakeSource melayani halaman-halaman katalog seperti API frappe-library:
// batch di bawah key "message", halaman habis = array kosong.
func fakeSource(t *testing.T, pages map[string][]SourceBook) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		batch := pages[page]
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"message":[`)
		for i, b := range batch {
			if i > 0 {
				fmt.Fprint(w, ",")
			}
			fmt.Fprintf(w, `{"title":%q,"authors":%q,"isbn":%q,"publisher":%q,"num_pages":%d}`,
				b.Title, b.Authors, b.ISBN, b.Publisher, b.NumPages)
		}
		fmt.Fprint(w, `]}`)
	}))
}

func countBooks(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	if err := db.Model(&bookModel.BookModel{}).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}

func TestImportCountsOnlyNewISBNs(t *testing.T) {
	db := newTestDB(t)

	// dua ISBN sudah ada di katalog → harus di-update, bukan dihitung
	for _, isbn := range []string{"1111111111111", "2222222222222"} {
		if err := db.Create(&bookModel.BookModel{
			BookTitle: "Lama", BookAuthors: "Lama", BookISBN: isbn,
			BookPublisher: "Lama", BookNumPages: 100, BookStock: 1,
		}).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	srv := fakeSource(t, map[string][]SourceBook{
		"1": {
			{Title: "Buku A", Authors: "A", ISBN: "3333333333333", Publisher: "P", NumPages: 120},
			{Title: "Buku B", Authors: "B", ISBN: "1111111111111", Publisher: "P", NumPages: 130},
			{Title: "Buku C", Authors: "C", ISBN: "4444444444444", Publisher: "P", NumPages: 140},
		},
		"2": {
			{Title: "Buku D", Authors: "D", ISBN: "2222222222222", Publisher: "P", NumPages: 150},
			{Title: "Buku E", Authors: "E", ISBN: "5555555555555", Publisher: "P", NumPages: 160},
		},
		// page 3 kosong → sumber habis
	})
	defer srv.Close()

	svc := newService(db, srv)
	created, err := svc.ImportBooks(context.Background(), 5, Filters{})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if created != 3 {
		t.Fatalf("created = %d, want 3", created)
	}
	if n := countBooks(t, db); n != 5 {
		t.Fatalf("total books = %d, want 5", n)
	}

	// duplikat harus ter-update
	var dup bookModel.BookModel
	if err := db.First(&dup, "book_isbn = ?", "1111111111111").Error; err != nil {
		t.Fatalf("reload dup: %v", err)
	}
	if dup.BookTitle != "Buku B" {
		t.Fatalf("dup title = %q, want %q", dup.BookTitle, "Buku B")
	}
	if dup.BookStock != 1 {
		t.Fatalf("dup stock = %d, want unchanged 1", dup.BookStock)
	}
}

func TestImportStopsAtRequestedCount(t *testing.T) {
	db := newTestDB(t)
	srv := fakeSource(t, map[string][]SourceBook{
		"1": {
			{Title: "Buku A", Authors: "A", ISBN: "3333333333333", Publisher: "P", NumPages: 120},
			{Title: "Buku B", Authors: "B", ISBN: "4444444444444", Publisher: "P", NumPages: 130},
		},
	})
	defer srv.Close()

	svc := newService(db, srv)
	created, err := svc.ImportBooks(context.Background(), 1, Filters{})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if created != 1 {
		t.Fatalf("created = %d, want 1", created)
	}
	if n := countBooks(t, db); n != 1 {
		t.Fatalf("total books = %d, want 1", n)
	}
}

func TestImportAbortsOnSourceError(t *testing.T) {
	db := newTestDB(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") != "1" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"message":[{"title":"Buku A","authors":"A","isbn":"3333333333333","publisher":"P","num_pages":120}]}`)
	}))
	defer srv.Close()

	svc := newService(db, srv)
	created, err := svc.ImportBooks(context.Background(), 5, Filters{})
	if !errors.Is(err, ErrSourceUnavailable) {
		t.Fatalf("err = %v, want ErrSourceUnavailable", err)
	}
	// sebagian yang berhasil tetap dilaporkan
	if created != 1 {
		t.Fatalf("created = %d, want 1", created)
	}
	if n := countBooks(t, db); n != 1 {
		t.Fatalf("total books = %d, want 1", n)
	}
}

func TestImportForwardsFilters(t *testing.T) {
	db := newTestDB(t)

	var gotTitle, gotISBN string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTitle = r.URL.Query().Get("title")
		gotISBN = r.URL.Query().Get("isbn")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"message":[]}`)
	}))
	defer srv.Close()

	svc := newService(db, srv)
	created, err := svc.ImportBooks(context.Background(), 3, Filters{Title: "harry", ISBN: "9780747532743"})
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if created != 0 {
		t.Fatalf("created = %d, want 0", created)
	}
	if gotTitle != "harry" || gotISBN != "9780747532743" {
		t.Fatalf("filters not forwarded: title=%q isbn=%q", gotTitle, gotISBN)
	}
}
