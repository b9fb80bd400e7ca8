// file: internals/features/memberships/subscriptions/model/member_subscription_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

/* ======================================================
   ENUM: member_subscription_status
====================================================== */

type SubscriptionStatus string

const (
	SubscriptionActive    SubscriptionStatus = "active"
	SubscriptionFrozen    SubscriptionStatus = "frozen"
	SubscriptionExpired   SubscriptionStatus = "expired"
	SubscriptionCancelled SubscriptionStatus = "cancelled"
)

/* ======================================================
   Model: member_subscriptions
   Entitlement kelas dari membership plan. Quota nil = unlimited.
   classes_used_this_period HANYA dimutasi lewat service
   (ConsumeClass/RestoreClass) dengan row lock.
====================================================== */

type MemberSubscriptionModel struct {
	MemberSubscriptionsID       uuid.UUID `gorm:"column:member_subscriptions_id;type:uuid;default:gen_random_uuid();primaryKey" json:"member_subscriptions_id"`
	MemberSubscriptionsMemberID uuid.UUID `gorm:"column:member_subscriptions_member_id;type:uuid;not null;index" json:"member_subscriptions_member_id"`
	MemberSubscriptionsClubID   uuid.UUID `gorm:"column:member_subscriptions_club_id;type:uuid;not null;index" json:"member_subscriptions_club_id"`

	MemberSubscriptionsPlanName string `gorm:"column:member_subscriptions_plan_name;type:varchar(120);not null" json:"member_subscriptions_plan_name"`

	// Kategori kelas yang tercakup plan. Kosong = semua kategori.
	MemberSubscriptionsClassCategories pq.StringArray `gorm:"column:member_subscriptions_class_categories;type:text[]" json:"member_subscriptions_class_categories"`

	// nil = unlimited classes
	MemberSubscriptionsClassQuotaPerPeriod *int `gorm:"column:member_subscriptions_class_quota_per_period;type:int" json:"member_subscriptions_class_quota_per_period,omitempty"`
	MemberSubscriptionsClassesUsedThisPeriod int `gorm:"column:member_subscriptions_classes_used_this_period;type:int;not null;default:0" json:"member_subscriptions_classes_used_this_period"`

	MemberSubscriptionsStatus SubscriptionStatus `gorm:"column:member_subscriptions_status;type:member_subscription_status;not null;default:'active'" json:"member_subscriptions_status"`

	MemberSubscriptionsStartsAt time.Time `gorm:"column:member_subscriptions_starts_at;type:timestamptz;not null" json:"member_subscriptions_starts_at"`
	MemberSubscriptionsEndsAt   time.Time `gorm:"column:member_subscriptions_ends_at;type:timestamptz;not null;index" json:"member_subscriptions_ends_at"`

	MemberSubscriptionsCreatedAt time.Time      `gorm:"column:member_subscriptions_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"member_subscriptions_created_at"`
	MemberSubscriptionsUpdatedAt time.Time      `gorm:"column:member_subscriptions_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"member_subscriptions_updated_at"`
	MemberSubscriptionsDeletedAt gorm.DeletedAt `gorm:"column:member_subscriptions_deleted_at;index" json:"member_subscriptions_deleted_at,omitempty"`
}

func (MemberSubscriptionModel) TableName() string {
	return "member_subscriptions"
}

// CoversCategory: plan tanpa daftar kategori mencakup semua.
func (s *MemberSubscriptionModel) CoversCategory(category string) bool {
	if len(s.MemberSubscriptionsClassCategories) == 0 {
		return true
	}
	for _, c := range s.MemberSubscriptionsClassCategories {
		if c == category {
			return true
		}
	}
	return false
}

// Unlimited: quota nil berarti tidak dihitung.
func (s *MemberSubscriptionModel) Unlimited() bool {
	return s.MemberSubscriptionsClassQuotaPerPeriod == nil
}

// ClassesRemaining: sisa jatah periode ini (0 kalau unlimited — cek Unlimited dulu).
func (s *MemberSubscriptionModel) ClassesRemaining() int {
	if s.MemberSubscriptionsClassQuotaPerPeriod == nil {
		return 0
	}
	n := *s.MemberSubscriptionsClassQuotaPerPeriod - s.MemberSubscriptionsClassesUsedThisPeriod
	if n < 0 {
		return 0
	}
	return n
}
