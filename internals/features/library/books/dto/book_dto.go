// internals/features/library/books/dto/book_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "perpusku_backend/internals/features/library/books/model"
)

/* =========================
   REQUEST
   ========================= */

type BookCreateRequest struct {
	BookTitle     string `json:"book_title"     validate:"required,max=255"`
	BookAuthors   string `json:"book_authors"   validate:"required,max=255"`
	BookISBN      string `json:"book_isbn"      validate:"required,max=13"`
	BookPublisher string `json:"book_publisher" validate:"required,max=255"`
	BookNumPages  int    `json:"book_num_pages" validate:"required,gt=0"`
	BookStock     *int   `json:"book_stock"     validate:"omitempty,gte=0"`
}

type BookUpdateRequest struct {
	BookTitle     *string `json:"book_title"     validate:"omitempty,max=255"`
	BookAuthors   *string `json:"book_authors"   validate:"omitempty,max=255"`
	BookISBN      *string `json:"book_isbn"      validate:"omitempty,max=13"`
	BookPublisher *string `json:"book_publisher" validate:"omitempty,max=255"`
	BookNumPages  *int    `json:"book_num_pages" validate:"omitempty,gt=0"`
	BookStock     *int    `json:"book_stock"     validate:"omitempty,gte=0"`
}

/* =========================
   NORMALIZER
   ========================= */

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

func (r *BookCreateRequest) Normalize() {
	r.BookTitle = strings.TrimSpace(r.BookTitle)
	r.BookAuthors = strings.TrimSpace(r.BookAuthors)
	r.BookISBN = strings.TrimSpace(r.BookISBN)
	r.BookPublisher = strings.TrimSpace(r.BookPublisher)
}

func (r *BookUpdateRequest) Normalize() {
	r.BookTitle = trimPtr(r.BookTitle)
	r.BookAuthors = trimPtr(r.BookAuthors)
	r.BookISBN = trimPtr(r.BookISBN)
	r.BookPublisher = trimPtr(r.BookPublisher)
}

/* =========================
   MAPPER
   ========================= */

func (r *BookCreateRequest) ToModel() *model.BookModel {
	stock := 1
	if r.BookStock != nil {
		stock = *r.BookStock
	}
	return &model.BookModel{
		BookTitle:     r.BookTitle,
		BookAuthors:   r.BookAuthors,
		BookISBN:      r.BookISBN,
		BookPublisher: r.BookPublisher,
		BookNumPages:  r.BookNumPages,
		BookStock:     stock,
	}
}

func (r *BookUpdateRequest) ApplyToModel(m *model.BookModel) {
	if r.BookTitle != nil {
		m.BookTitle = *r.BookTitle
	}
	if r.BookAuthors != nil {
		m.BookAuthors = *r.BookAuthors
	}
	if r.BookISBN != nil {
		m.BookISBN = *r.BookISBN
	}
	if r.BookPublisher != nil {
		m.BookPublisher = *r.BookPublisher
	}
	if r.BookNumPages != nil {
		m.BookNumPages = *r.BookNumPages
	}
	if r.BookStock != nil {
		m.BookStock = *r.BookStock
	}
}

/* =========================
   RESPONSE
   ========================= */

type BookResponse struct {
	BookID        uuid.UUID `json:"book_id"`
	BookTitle     string    `json:"book_title"`
	BookAuthors   string    `json:"book_authors"`
	BookISBN      string    `json:"book_isbn"`
	BookPublisher string    `json:"book_publisher"`
	BookNumPages  int       `json:"book_num_pages"`
	BookStock     int       `json:"book_stock"`
	BookCreatedAt time.Time `json:"book_created_at"`
}

func ToBookResponse(m *model.BookModel) BookResponse {
	return BookResponse{
		BookID:        m.BookID,
		BookTitle:     m.BookTitle,
		BookAuthors:   m.BookAuthors,
		BookISBN:      m.BookISBN,
		BookPublisher: m.BookPublisher,
		BookNumPages:  m.BookNumPages,
		BookStock:     m.BookStock,
		BookCreatedAt: m.BookCreatedAt,
	}
}

func ToBookResponses(ms []model.BookModel) []BookResponse {
	out := make([]BookResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToBookResponse(&ms[i]))
	}
	return out
}
