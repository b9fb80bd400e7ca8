// file: internals/features/memberships/subscriptions/dto/subscription_dto.go
package dto

import (
	"time"

	subsModel "fitclub_backend/internals/features/memberships/subscriptions/model"

	"github.com/google/uuid"
)

// POST /api/a/subscriptions — admin grant plan ke member
type CreateSubscriptionRequest struct {
	MemberID uuid.UUID `json:"member_subscriptions_member_id" validate:"required"`
	ClubID   uuid.UUID `json:"member_subscriptions_club_id" validate:"required"`

	PlanName        string   `json:"member_subscriptions_plan_name" validate:"required,min=2,max=120"`
	ClassCategories []string `json:"member_subscriptions_class_categories"`

	// nil = unlimited
	ClassQuotaPerPeriod *int `json:"member_subscriptions_class_quota_per_period" validate:"omitempty,gt=0"`

	StartsAt time.Time `json:"member_subscriptions_starts_at" validate:"required"`
	EndsAt   time.Time `json:"member_subscriptions_ends_at" validate:"required,gtfield=StartsAt"`
}

// PATCH /api/a/subscriptions/:id/status
type UpdateSubscriptionStatusRequest struct {
	Status subsModel.SubscriptionStatus `json:"member_subscriptions_status" validate:"required,oneof=active frozen expired cancelled"`
}

type SubscriptionResponse struct {
	SubscriptionID uuid.UUID `json:"member_subscriptions_id"`
	MemberID       uuid.UUID `json:"member_subscriptions_member_id"`
	ClubID         uuid.UUID `json:"member_subscriptions_club_id"`

	PlanName        string   `json:"member_subscriptions_plan_name"`
	ClassCategories []string `json:"member_subscriptions_class_categories"`

	Unlimited           bool `json:"member_subscriptions_unlimited"`
	ClassQuotaPerPeriod *int `json:"member_subscriptions_class_quota_per_period,omitempty"`
	ClassesUsed         int  `json:"member_subscriptions_classes_used_this_period"`
	ClassesRemaining    int  `json:"member_subscriptions_classes_remaining"`

	Status   subsModel.SubscriptionStatus `json:"member_subscriptions_status"`
	StartsAt time.Time                    `json:"member_subscriptions_starts_at"`
	EndsAt   time.Time                    `json:"member_subscriptions_ends_at"`
}

func FromSubscriptionModel(m *subsModel.MemberSubscriptionModel) SubscriptionResponse {
	return SubscriptionResponse{
		SubscriptionID:      m.MemberSubscriptionsID,
		MemberID:            m.MemberSubscriptionsMemberID,
		ClubID:              m.MemberSubscriptionsClubID,
		PlanName:            m.MemberSubscriptionsPlanName,
		ClassCategories:     m.MemberSubscriptionsClassCategories,
		Unlimited:           m.Unlimited(),
		ClassQuotaPerPeriod: m.MemberSubscriptionsClassQuotaPerPeriod,
		ClassesUsed:         m.MemberSubscriptionsClassesUsedThisPeriod,
		ClassesRemaining:    m.ClassesRemaining(),
		Status:              m.MemberSubscriptionsStatus,
		StartsAt:            m.MemberSubscriptionsStartsAt,
		EndsAt:              m.MemberSubscriptionsEndsAt,
	}
}

func FromSubscriptionModels(ms []subsModel.MemberSubscriptionModel) []SubscriptionResponse {
	out := make([]SubscriptionResponse, 0, len(ms))
	for i := range ms {
		out = append(out, FromSubscriptionModel(&ms[i]))
	}
	return out
}
