// file: internals/features/memberships/class_packs/model/class_pack_balance_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

/* ======================================================
   ENUM: class_pack_balance_status
====================================================== */

type ClassPackStatus string

const (
	ClassPackActive    ClassPackStatus = "active"
	ClassPackExpired   ClassPackStatus = "expired"
	ClassPackExhausted ClassPackStatus = "exhausted"
)

/* ======================================================
   Model: class_pack_balances
   Paket kredit kelas prabayar (mis. "10x Yoga"). classes_remaining
   HANYA dimutasi lewat service (Decrement/Increment) dengan row lock.
====================================================== */

type ClassPackBalanceModel struct {
	ClassPackBalancesID       uuid.UUID `gorm:"column:class_pack_balances_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_pack_balances_id"`
	ClassPackBalancesMemberID uuid.UUID `gorm:"column:class_pack_balances_member_id;type:uuid;not null;index" json:"class_pack_balances_member_id"`
	ClassPackBalancesClubID   uuid.UUID `gorm:"column:class_pack_balances_club_id;type:uuid;not null;index" json:"class_pack_balances_club_id"`

	ClassPackBalancesPackName string `gorm:"column:class_pack_balances_pack_name;type:varchar(120);not null" json:"class_pack_balances_pack_name"`

	// Scope paket. Dua-duanya kosong = berlaku untuk semua kelas.
	ClassPackBalancesValidClassIDs    pq.StringArray `gorm:"column:class_pack_balances_valid_class_ids;type:text[]" json:"class_pack_balances_valid_class_ids"`
	ClassPackBalancesValidCategories  pq.StringArray `gorm:"column:class_pack_balances_valid_categories;type:text[]" json:"class_pack_balances_valid_categories"`

	ClassPackBalancesClassesPurchased int `gorm:"column:class_pack_balances_classes_purchased;type:int;not null" json:"class_pack_balances_classes_purchased"`
	ClassPackBalancesClassesRemaining int `gorm:"column:class_pack_balances_classes_remaining;type:int;not null" json:"class_pack_balances_classes_remaining"`

	ClassPackBalancesStatus    ClassPackStatus `gorm:"column:class_pack_balances_status;type:class_pack_balance_status;not null;default:'active'" json:"class_pack_balances_status"`
	ClassPackBalancesExpiresAt time.Time       `gorm:"column:class_pack_balances_expires_at;type:timestamptz;not null;index" json:"class_pack_balances_expires_at"`

	ClassPackBalancesCreatedAt time.Time      `gorm:"column:class_pack_balances_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"class_pack_balances_created_at"`
	ClassPackBalancesUpdatedAt time.Time      `gorm:"column:class_pack_balances_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"class_pack_balances_updated_at"`
	ClassPackBalancesDeletedAt gorm.DeletedAt `gorm:"column:class_pack_balances_deleted_at;index" json:"class_pack_balances_deleted_at,omitempty"`
}

func (ClassPackBalanceModel) TableName() string {
	return "class_pack_balances"
}

// CoversClass: valid untuk classID/kategori ini? Scope kosong = semua.
func (b *ClassPackBalanceModel) CoversClass(classID uuid.UUID, category string) bool {
	if len(b.ClassPackBalancesValidClassIDs) == 0 && len(b.ClassPackBalancesValidCategories) == 0 {
		return true
	}
	for _, id := range b.ClassPackBalancesValidClassIDs {
		if id == classID.String() {
			return true
		}
	}
	for _, c := range b.ClassPackBalancesValidCategories {
		if c == category {
			return true
		}
	}
	return false
}
