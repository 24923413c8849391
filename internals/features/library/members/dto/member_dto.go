// internals/features/library/members/dto/member_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "perpusku_backend/internals/features/library/members/model"
)

/* =========================
   REQUEST
   ========================= */

type MemberCreateRequest struct {
	MemberName  string `json:"member_name"  validate:"required,max=255"`
	MemberEmail string `json:"member_email" validate:"required,email,max=255"`
}

type MemberUpdateRequest struct {
	MemberName  *string `json:"member_name"  validate:"omitempty,max=255"`
	MemberEmail *string `json:"member_email" validate:"omitempty,email,max=255"`
}

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

func (r *MemberCreateRequest) Normalize() {
	r.MemberName = strings.TrimSpace(r.MemberName)
	r.MemberEmail = strings.ToLower(strings.TrimSpace(r.MemberEmail))
}

func (r *MemberUpdateRequest) Normalize() {
	r.MemberName = trimPtr(r.MemberName)
	if r.MemberEmail != nil {
		e := strings.ToLower(strings.TrimSpace(*r.MemberEmail))
		if e == "" {
			r.MemberEmail = nil
		} else {
			r.MemberEmail = &e
		}
	}
}

/* =========================
   MAPPER
   ========================= */

func (r *MemberCreateRequest) ToModel() *model.MemberModel {
	return &model.MemberModel{
		MemberName:  r.MemberName,
		MemberEmail: r.MemberEmail,
	}
}

func (r *MemberUpdateRequest) ApplyToModel(m *model.MemberModel) {
	if r.MemberName != nil {
		m.MemberName = *r.MemberName
	}
	if r.MemberEmail != nil {
		m.MemberEmail = *r.MemberEmail
	}
}

/* =========================
   RESPONSE
   ========================= */

type MemberResponse struct {
	MemberID              uuid.UUID `json:"member_id"`
	MemberName            string    `json:"member_name"`
	MemberEmail           string    `json:"member_email"`
	MemberOutstandingDebt float64   `json:"member_outstanding_debt"`
	MemberCreatedAt       time.Time `json:"member_created_at"`
}

func ToMemberResponse(m *model.MemberModel) MemberResponse {
	return MemberResponse{
		MemberID:              m.MemberID,
		MemberName:            m.MemberName,
		MemberEmail:           m.MemberEmail,
		MemberOutstandingDebt: m.MemberOutstandingDebt,
		MemberCreatedAt:       m.MemberCreatedAt,
	}
}

func ToMemberResponses(ms []model.MemberModel) []MemberResponse {
	out := make([]MemberResponse, 0, len(ms))
	for i := range ms {
		out = append(out, ToMemberResponse(&ms[i]))
	}
	return out
}
