// file: internals/features/notifications/model/notification_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ======================================================
   Model: notifications
   Inbox in-app member. Kind mengikuti konstanta booking
   engine (booking_confirmed, waitlist_promoted, dst).
====================================================== */

type NotificationModel struct {
	NotificationsID       uuid.UUID `gorm:"column:notifications_id;type:uuid;default:gen_random_uuid();primaryKey" json:"notifications_id"`
	NotificationsMemberID uuid.UUID `gorm:"column:notifications_member_id;type:uuid;not null;index" json:"notifications_member_id"`

	NotificationsKind  string `gorm:"column:notifications_kind;type:varchar(50);not null" json:"notifications_kind"`
	NotificationsTitle string `gorm:"column:notifications_title;type:varchar(120);not null" json:"notifications_title"`
	NotificationsBody  string `gorm:"column:notifications_body;type:text;not null" json:"notifications_body"`

	NotificationsReadAt *time.Time `gorm:"column:notifications_read_at;type:timestamptz" json:"notifications_read_at,omitempty"`

	NotificationsCreatedAt time.Time      `gorm:"column:notifications_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"notifications_created_at"`
	NotificationsDeletedAt gorm.DeletedAt `gorm:"column:notifications_deleted_at;index" json:"notifications_deleted_at,omitempty"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
