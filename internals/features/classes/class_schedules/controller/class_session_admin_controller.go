// file: internals/features/classes/class_schedules/controller/class_session_admin_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	scheduleDTO "fitclub_backend/internals/features/classes/class_schedules/dto"
	scheduleModel "fitclub_backend/internals/features/classes/class_schedules/model"
	helper "fitclub_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassSessionController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewClassSessionController(db *gorm.DB) *ClassSessionController {
	return &ClassSessionController{
		DB:        db,
		Validator: validator.New(),
	}
}

// POST /api/a/sessions
func (ctl *ClassSessionController) Create(c *fiber.Ctx) error {
	var body scheduleDTO.CreateClassSessionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if err := ctl.Validator.Struct(body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// Club diturunkan dari class, bukan dari body
	var gc scheduleModel.GymClassModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("gym_classes_id = ?", body.ClassID).
		First(&gc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Class tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load class")
	}

	sess := scheduleModel.ClassSessionModel{
		ClassSessionsClubID:      gc.GymClassesClubID,
		ClassSessionsClassID:     gc.GymClassesID,
		ClassSessionsTrainerID:   body.TrainerID,
		ClassSessionsStartAt:     body.StartAt,
		ClassSessionsEndAt:       body.EndAt,
		ClassSessionsMaxCapacity: body.MaxCapacity,
		ClassSessionsStatus:      scheduleModel.ClassSessionScheduled,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&sess).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create session")
	}

	return helper.JsonCreated(c, "Session berhasil dibuat", scheduleDTO.FromClassSessionModel(&sess))
}

// PATCH /api/a/sessions/:id/status
// Hanya untuk transisi manual (in_progress, cancelled). Counter TIDAK
// disentuh di sini — pembatalan session massal tetap lewat booking engine.
func (ctl *ClassSessionController) UpdateStatus(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil || sessionID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "session id tidak valid")
	}

	var body scheduleDTO.UpdateClassSessionStatusRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if err := ctl.Validator.Struct(body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var sess scheduleModel.ClassSessionModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("class_sessions_id = ?", sessionID).
		First(&sess).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Session tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load session")
	}

	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&scheduleModel.ClassSessionModel{}).
		Where("class_sessions_id = ?", sessionID).
		Update("class_sessions_status", body.Status).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update session")
	}
	sess.ClassSessionsStatus = body.Status

	return helper.JsonUpdated(c, "Status session diperbarui", scheduleDTO.FromClassSessionModel(&sess))
}

// GET /api/a/sessions/:id — snapshot okupansi untuk dashboard
func (ctl *ClassSessionController) GetByID(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil || sessionID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "session id tidak valid")
	}

	var sess scheduleModel.ClassSessionModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("class_sessions_id = ?", sessionID).
		First(&sess).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Session tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load session")
	}
	return helper.JsonOK(c, "", scheduleDTO.FromClassSessionModel(&sess))
}

// GET /api/m/sessions — jadwal yang bisa dibooking member
func (ctl *ClassSessionController) List(c *fiber.Ctx) error {
	var q scheduleDTO.ListClassSessionQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "query tidak valid")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.WithContext(c.UserContext()).
		Model(&scheduleModel.ClassSessionModel{})

	if q.ClassID != nil {
		tx = tx.Where("class_sessions_class_id = ?", *q.ClassID)
	}
	if q.DateFrom != nil {
		tx = tx.Where("class_sessions_start_at >= ?", *q.DateFrom)
	} else {
		tx = tx.Where("class_sessions_start_at >= ?", time.Now())
	}
	if q.DateTo != nil {
		tx = tx.Where("class_sessions_start_at < ?", *q.DateTo)
	}
	if q.OnlyOpen != nil && *q.OnlyOpen {
		tx = tx.Where("class_sessions_status = ?", scheduleModel.ClassSessionScheduled).
			Where("class_sessions_current_bookings < class_sessions_max_capacity")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count sessions")
	}

	var rows []scheduleModel.ClassSessionModel
	if err := tx.
		Order("class_sessions_start_at ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load sessions")
	}

	return helper.JsonList(c, "", scheduleDTO.FromClassSessionModels(rows), helper.BuildPagination(paging, total))
}
