// internals/features/library/imports/service/import_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	bookModel "perpusku_backend/internals/features/library/books/model"
)

var ErrSourceUnavailable = errors.New("sumber katalog eksternal tidak tersedia")

// Filter yang diteruskan ke API katalog eksternal.
type Filters struct {
	Title     string
	Authors   string
	ISBN      string
	Publisher string
}

// Record buku dari API eksternal (payload di bawah key "message").
type SourceBook struct {
	Title     string `json:"title"`
	Authors   string `json:"authors"`
	ISBN      string `json:"isbn"`
	Publisher string `json:"publisher"`
	NumPages  int    `json:"num_pages"`
}

type sourcePayload struct {
	Message []SourceBook `json:"message"`
}

type ImportService struct {
	DB      *gorm.DB
	BaseURL string
	Client  *http.Client
}

func NewImportService(db *gorm.DB, baseURL string) *ImportService {
	return &ImportService{
		DB:      db,
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 15 * time.Second},
	}
}

/* =========================
   Page iterator
   ========================= */

// pageIterator menelusuri API katalog per halaman (lazy, finite, restartable
// lewat newPageIterator baru). Halaman kosong = sumber habis.
type pageIterator struct {
	svc     *ImportService
	filters Filters
	page    int
	done    bool
}

func (s *ImportService) newPageIterator(f Filters) *pageIterator {
	return &pageIterator{svc: s, filters: f, page: 1}
}

func (it *pageIterator) Next(ctx context.Context) ([]SourceBook, error) {
	if it.done {
		return nil, nil
	}

	batch, err := it.svc.fetchPage(ctx, it.page, it.filters)
	if err != nil {
		it.done = true
		return nil, err
	}
	if len(batch) == 0 {
		it.done = true
		return nil, nil
	}
	it.page++
	return batch, nil
}

func (s *ImportService) fetchPage(ctx context.Context, page int, f Filters) ([]SourceBook, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page))
	if f.Title != "" {
		params.Set("title", f.Title)
	}
	if f.Authors != "" {
		params.Set("authors", f.Authors)
	}
	if f.ISBN != "" {
		params.Set("isbn", f.ISBN)
	}
	if f.Publisher != "" {
		params.Set("publisher", f.Publisher)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrSourceUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	var payload sourcePayload
	if err := sonic.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: payload tidak valid", ErrSourceUnavailable)
	}
	return payload.Message, nil
}

/* =========================
   Import
   ========================= */

// ImportBooks menarik buku dari sumber eksternal sampai `want` buku BARU
// dibuat atau sumber habis. Record dengan ISBN yang sudah ada di katalog
// di-update dan tidak dihitung. Kalau sumber gagal di tengah jalan,
// jumlah yang sudah berhasil tetap dilaporkan bersama errornya.
func (s *ImportService) ImportBooks(ctx context.Context, want int, f Filters) (int, error) {
	created := 0
	it := s.newPageIterator(f)

	for created < want {
		batch, err := it.Next(ctx)
		if err != nil {
			return created, err
		}
		if len(batch) == 0 {
			break
		}
		for i := range batch {
			if created >= want {
				break
			}
			madeNew, err := s.upsertBook(ctx, &batch[i])
			if err != nil {
				return created, err
			}
			if madeNew {
				created++
			}
		}
	}
	return created, nil
}

// upsertBook: create-or-update berdasarkan ISBN. Return true hanya untuk create.
func (s *ImportService) upsertBook(ctx context.Context, src *SourceBook) (bool, error) {
	isbn := strings.TrimSpace(src.ISBN)
	if isbn == "" {
		return false, nil // record tanpa ISBN tidak bisa di-upsert
	}

	title := strings.TrimSpace(src.Title)
	if title == "" {
		title = "No Title"
	}
	authors := strings.TrimSpace(src.Authors)
	if authors == "" {
		authors = "Unknown"
	}
	publisher := strings.TrimSpace(src.Publisher)
	if publisher == "" {
		publisher = "Unknown"
	}
	numPages := src.NumPages
	if numPages < 1 {
		numPages = 1
	}

	db := s.DB.WithContext(ctx)

	var existing bookModel.BookModel
	err := db.First(&existing, "book_isbn = ?", isbn).Error
	if err == nil {
		return false, db.Model(&existing).Updates(map[string]any{
			"book_title":     title,
			"book_authors":   authors,
			"book_publisher": publisher,
			"book_num_pages": numPages,
		}).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	m := bookModel.BookModel{
		BookTitle:     title,
		BookAuthors:   authors,
		BookISBN:      isbn,
		BookPublisher: publisher,
		BookNumPages:  numPages,
		BookStock:     1, // stok default untuk buku hasil import
	}
	if err := db.Create(&m).Error; err != nil {
		return false, err
	}
	return true, nil
}
