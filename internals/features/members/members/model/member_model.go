// file: internals/features/members/members/model/member_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ======================================================
   Model: members
====================================================== */

type MemberModel struct {
	MembersID     uuid.UUID `gorm:"column:members_id;type:uuid;default:gen_random_uuid();primaryKey" json:"members_id"`
	MembersClubID uuid.UUID `gorm:"column:members_club_id;type:uuid;not null;index" json:"members_club_id"`

	MembersFullName string `gorm:"column:members_full_name;type:varchar(120);not null" json:"members_full_name"`
	MembersEmail    string `gorm:"column:members_email;type:varchar(255);not null;uniqueIndex" json:"members_email"`
	MembersPhone    *string `gorm:"column:members_phone;type:varchar(30)" json:"members_phone,omitempty"`

	// "male" / "female" — dipakai gender-access policy
	MembersGender string `gorm:"column:members_gender;type:varchar(10);not null" json:"members_gender"`

	MembersPasswordHash string `gorm:"column:members_password_hash;type:varchar(100);not null" json:"-"`
	MembersRole         string `gorm:"column:members_role;type:varchar(20);not null;default:'member'" json:"members_role"`

	MembersCreatedAt time.Time      `gorm:"column:members_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"members_created_at"`
	MembersUpdatedAt time.Time      `gorm:"column:members_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"members_updated_at"`
	MembersDeletedAt gorm.DeletedAt `gorm:"column:members_deleted_at;index" json:"members_deleted_at,omitempty"`
}

func (MemberModel) TableName() string {
	return "members"
}
