// file: internals/features/notifications/controller/notification_controller.go
package controller

import (
	"strings"
	"time"

	notifModel "fitclub_backend/internals/features/notifications/model"
	helper "fitclub_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// GET /api/m/notifications
func (ctl *NotificationController) ListMine(c *fiber.Ctx) error {
	memberID, err := helper.GetMemberIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.WithContext(c.UserContext()).
		Model(&notifModel.NotificationModel{}).
		Where("notifications_member_id = ?", memberID)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count notifications")
	}

	var rows []notifModel.NotificationModel
	if err := tx.
		Order("notifications_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load notifications")
	}

	return helper.JsonList(c, "", rows, helper.BuildPagination(paging, total))
}

// POST /api/m/notifications/:id/read
func (ctl *NotificationController) MarkRead(c *fiber.Ctx) error {
	memberID, err := helper.GetMemberIDFromToken(c)
	if err != nil {
		return err
	}
	notifID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil || notifID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "notification id tidak valid")
	}

	now := time.Now()
	res := ctl.DB.WithContext(c.UserContext()).
		Model(&notifModel.NotificationModel{}).
		Where("notifications_id = ? AND notifications_member_id = ?", notifID, memberID).
		Where("notifications_read_at IS NULL").
		Update("notifications_read_at", &now)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update notification")
	}

	return helper.JsonUpdated(c, "Notifikasi ditandai dibaca", fiber.Map{"notifications_id": notifID})
}
