// internals/features/users/auth/dto/auth_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "perpusku_backend/internals/features/users/auth/model"
)

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func (r *LoginRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
}

type LibrarianResponse struct {
	LibrarianID    uuid.UUID `json:"librarian_id"`
	LibrarianName  string    `json:"librarian_name"`
	LibrarianEmail string    `json:"librarian_email"`
}

type LoginResponse struct {
	Token     string            `json:"token"`
	ExpiresAt time.Time         `json:"expires_at"`
	Librarian LibrarianResponse `json:"librarian"`
}

func ToLibrarianResponse(m *model.LibrarianModel) LibrarianResponse {
	return LibrarianResponse{
		LibrarianID:    m.LibrarianID,
		LibrarianName:  m.LibrarianName,
		LibrarianEmail: m.LibrarianEmail,
	}
}
