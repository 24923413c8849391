// internals/features/library/books/model/book_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookModel struct {
	// PK
	BookID uuid.UUID `json:"book_id" gorm:"column:book_id;type:uuid;primaryKey"`

	// Identitas katalog (ISBN unik, max 13 digit)
	BookTitle     string `json:"book_title"     gorm:"column:book_title;type:varchar(255);not null"`
	BookAuthors   string `json:"book_authors"   gorm:"column:book_authors;type:varchar(255);not null"`
	BookISBN      string `json:"book_isbn"      gorm:"column:book_isbn;type:varchar(13);not null;uniqueIndex:uq_books_isbn"`
	BookPublisher string `json:"book_publisher" gorm:"column:book_publisher;type:varchar(255);not null"`
	BookNumPages  int    `json:"book_num_pages" gorm:"column:book_num_pages;not null;check:chk_books_num_pages,book_num_pages > 0"`

	// Stok tidak boleh negatif (issue menurunkan, return menaikkan)
	BookStock int `json:"book_stock" gorm:"column:book_stock;not null;default:1;check:chk_books_stock,book_stock >= 0"`

	BookCreatedAt time.Time `json:"book_created_at" gorm:"column:book_created_at;not null;autoCreateTime"`
	BookUpdatedAt time.Time `json:"book_updated_at" gorm:"column:book_updated_at;not null;autoUpdateTime"`
}

func (BookModel) TableName() string { return "books" }

func (m *BookModel) BeforeCreate(tx *gorm.DB) error {
	if m.BookID == uuid.Nil {
		m.BookID = uuid.New()
	}
	return nil
}
