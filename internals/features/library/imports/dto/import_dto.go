// internals/features/library/imports/dto/import_dto.go
package dto

import "strings"

type ImportBooksRequest struct {
	NumBooks  int    `json:"num_books" validate:"required,gte=1,lte=100"`
	Title     string `json:"title"     validate:"omitempty,max=255"`
	Authors   string `json:"authors"   validate:"omitempty,max=255"`
	ISBN      string `json:"isbn"      validate:"omitempty,max=13"`
	Publisher string `json:"publisher" validate:"omitempty,max=255"`
}

func (r *ImportBooksRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Authors = strings.TrimSpace(r.Authors)
	r.ISBN = strings.TrimSpace(r.ISBN)
	r.Publisher = strings.TrimSpace(r.Publisher)
}

type ImportBooksResponse struct {
	Imported int `json:"imported"`
}
