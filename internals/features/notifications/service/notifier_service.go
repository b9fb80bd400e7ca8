// file: internals/features/notifications/service/notifier_service.go
package service

import (
	"log"

	notifModel "fitclub_backend/internals/features/notifications/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* ======================================================
   NotifierService — fire-and-forget, tidak boleh memblokir
   atau menggagalkan flow booking. Insert jalan di goroutine,
   error hanya di-log.
====================================================== */

type NotifierService struct {
	DB *gorm.DB
}

func NewNotifierService(db *gorm.DB) *NotifierService {
	return &NotifierService{DB: db}
}

func (s *NotifierService) Notify(memberID uuid.UUID, kind, title, body string) {
	n := notifModel.NotificationModel{
		NotificationsMemberID: memberID,
		NotificationsKind:     kind,
		NotificationsTitle:    title,
		NotificationsBody:     body,
	}
	go func() {
		if err := s.DB.Create(&n).Error; err != nil {
			log.Printf("[Notifier] gagal simpan notifikasi %s untuk %s: %v", kind, memberID, err)
		}
	}()
}
