// file: internals/features/memberships/class_packs/dto/class_pack_dto.go
package dto

import (
	"time"

	packModel "fitclub_backend/internals/features/memberships/class_packs/model"

	"github.com/google/uuid"
)

// POST /api/a/class-packs — admin grant paket ke member
type CreateClassPackRequest struct {
	MemberID uuid.UUID `json:"class_pack_balances_member_id" validate:"required"`
	ClubID   uuid.UUID `json:"class_pack_balances_club_id" validate:"required"`

	PackName string `json:"class_pack_balances_pack_name" validate:"required,min=2,max=120"`

	ValidClassIDs   []string `json:"class_pack_balances_valid_class_ids"`
	ValidCategories []string `json:"class_pack_balances_valid_categories"`

	ClassesPurchased int       `json:"class_pack_balances_classes_purchased" validate:"required,gt=0"`
	ExpiresAt        time.Time `json:"class_pack_balances_expires_at" validate:"required"`
}

type ClassPackResponse struct {
	BalanceID uuid.UUID `json:"class_pack_balances_id"`
	MemberID  uuid.UUID `json:"class_pack_balances_member_id"`
	ClubID    uuid.UUID `json:"class_pack_balances_club_id"`

	PackName string `json:"class_pack_balances_pack_name"`

	ValidClassIDs   []string `json:"class_pack_balances_valid_class_ids"`
	ValidCategories []string `json:"class_pack_balances_valid_categories"`

	ClassesPurchased int `json:"class_pack_balances_classes_purchased"`
	ClassesRemaining int `json:"class_pack_balances_classes_remaining"`

	Status    packModel.ClassPackStatus `json:"class_pack_balances_status"`
	ExpiresAt time.Time                 `json:"class_pack_balances_expires_at"`
}

func FromClassPackModel(m *packModel.ClassPackBalanceModel) ClassPackResponse {
	return ClassPackResponse{
		BalanceID:        m.ClassPackBalancesID,
		MemberID:         m.ClassPackBalancesMemberID,
		ClubID:           m.ClassPackBalancesClubID,
		PackName:         m.ClassPackBalancesPackName,
		ValidClassIDs:    m.ClassPackBalancesValidClassIDs,
		ValidCategories:  m.ClassPackBalancesValidCategories,
		ClassesPurchased: m.ClassPackBalancesClassesPurchased,
		ClassesRemaining: m.ClassPackBalancesClassesRemaining,
		Status:           m.ClassPackBalancesStatus,
		ExpiresAt:        m.ClassPackBalancesExpiresAt,
	}
}

func FromClassPackModels(ms []packModel.ClassPackBalanceModel) []ClassPackResponse {
	out := make([]ClassPackResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromClassPackModel(&ms[i]))
	}
	return out
}
