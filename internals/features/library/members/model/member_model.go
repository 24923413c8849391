// internals/features/library/members/model/member_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MemberModel struct {
	// PK
	MemberID uuid.UUID `json:"member_id" gorm:"column:member_id;type:uuid;primaryKey"`

	MemberName  string `json:"member_name"  gorm:"column:member_name;type:varchar(255);not null"`
	MemberEmail string `json:"member_email" gorm:"column:member_email;type:varchar(255);not null;uniqueIndex:uq_members_email"`

	// Akumulasi denda keterlambatan (hanya naik lewat return-fee)
	MemberOutstandingDebt float64 `json:"member_outstanding_debt" gorm:"column:member_outstanding_debt;type:numeric(6,2);not null;default:0;check:chk_members_debt,member_outstanding_debt >= 0"`

	MemberCreatedAt time.Time `json:"member_created_at" gorm:"column:member_created_at;not null;autoCreateTime"`
	MemberUpdatedAt time.Time `json:"member_updated_at" gorm:"column:member_updated_at;not null;autoUpdateTime"`
}

func (MemberModel) TableName() string { return "members" }

func (m *MemberModel) BeforeCreate(tx *gorm.DB) error {
	if m.MemberID == uuid.Nil {
		m.MemberID = uuid.New()
	}
	return nil
}
