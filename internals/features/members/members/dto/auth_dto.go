// file: internals/features/members/members/dto/auth_dto.go
package dto

import (
	"time"

	memberModel "fitclub_backend/internals/features/members/members/model"

	"github.com/google/uuid"
)

// POST /api/auth/register
type RegisterRequest struct {
	ClubID   uuid.UUID `json:"members_club_id" validate:"required"`
	FullName string    `json:"members_full_name" validate:"required,min=2,max=120"`
	Email    string    `json:"members_email" validate:"required,email"`
	Phone    *string   `json:"members_phone" validate:"omitempty,max=30"`
	Gender   string    `json:"members_gender" validate:"required,oneof=male female"`
	Password string    `json:"password" validate:"required,min=8,max=72"`
}

// POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"members_email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type MemberResponse struct {
	MemberID  uuid.UUID `json:"members_id"`
	ClubID    uuid.UUID `json:"members_club_id"`
	FullName  string    `json:"members_full_name"`
	Email     string    `json:"members_email"`
	Phone     *string   `json:"members_phone,omitempty"`
	Gender    string    `json:"members_gender"`
	Role      string    `json:"members_role"`
	CreatedAt time.Time `json:"members_created_at"`
}

type LoginResponse struct {
	AccessToken string         `json:"access_token"`
	Member      MemberResponse `json:"member"`
}

func FromMemberModel(m *memberModel.MemberModel) MemberResponse {
	return MemberResponse{
		MemberID:  m.MembersID,
		ClubID:    m.MembersClubID,
		FullName:  m.MembersFullName,
		Email:     m.MembersEmail,
		Phone:     m.MembersPhone,
		Gender:    m.MembersGender,
		Role:      m.MembersRole,
		CreatedAt: m.MembersCreatedAt,
	}
}
