// internals/features/users/auth/model/librarian_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LibrarianModel struct {
	LibrarianID uuid.UUID `json:"librarian_id" gorm:"column:librarian_id;type:uuid;primaryKey"`

	LibrarianName  string `json:"librarian_name"  gorm:"column:librarian_name;type:varchar(255);not null"`
	LibrarianEmail string `json:"librarian_email" gorm:"column:librarian_email;type:varchar(255);not null;uniqueIndex:uq_librarians_email"`

	// bcrypt hash, tidak pernah keluar lewat JSON
	LibrarianPassword string `json:"-" gorm:"column:librarian_password;type:varchar(255);not null"`

	LibrarianCreatedAt time.Time `json:"librarian_created_at" gorm:"column:librarian_created_at;not null;autoCreateTime"`
	LibrarianUpdatedAt time.Time `json:"librarian_updated_at" gorm:"column:librarian_updated_at;not null;autoUpdateTime"`
}

func (LibrarianModel) TableName() string { return "librarians" }

func (m *LibrarianModel) BeforeCreate(tx *gorm.DB) error {
	if m.LibrarianID == uuid.Nil {
		m.LibrarianID = uuid.New()
	}
	return nil
}
