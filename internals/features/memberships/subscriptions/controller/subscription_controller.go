// file: internals/features/memberships/subscriptions/controller/subscription_controller.go
package controller

import (
	"errors"
	"strings"

	subsDTO "fitclub_backend/internals/features/memberships/subscriptions/dto"
	subsModel "fitclub_backend/internals/features/memberships/subscriptions/model"
	helper "fitclub_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubscriptionController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewSubscriptionController(db *gorm.DB) *SubscriptionController {
	return &SubscriptionController{DB: db, Validator: validator.New()}
}

// POST /api/a/subscriptions
func (ctl *SubscriptionController) Create(c *fiber.Ctx) error {
	var body subsDTO.CreateSubscriptionRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if err := ctl.Validator.Struct(body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	sub := subsModel.MemberSubscriptionModel{
		MemberSubscriptionsMemberID:            body.MemberID,
		MemberSubscriptionsClubID:              body.ClubID,
		MemberSubscriptionsPlanName:            body.PlanName,
		MemberSubscriptionsClassCategories:     body.ClassCategories,
		MemberSubscriptionsClassQuotaPerPeriod: body.ClassQuotaPerPeriod,
		MemberSubscriptionsStatus:              subsModel.SubscriptionActive,
		MemberSubscriptionsStartsAt:            body.StartsAt,
		MemberSubscriptionsEndsAt:              body.EndsAt,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&sub).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create subscription")
	}
	return helper.JsonCreated(c, "Subscription berhasil dibuat", subsDTO.FromSubscriptionModel(&sub))
}

// PATCH /api/a/subscriptions/:id/status — freeze/cancel manual
func (ctl *SubscriptionController) UpdateStatus(c *fiber.Ctx) error {
	subID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil || subID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "subscription id tidak valid")
	}

	var body subsDTO.UpdateSubscriptionStatusRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if err := ctl.Validator.Struct(body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var sub subsModel.MemberSubscriptionModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("member_subscriptions_id = ?", subID).
		First(&sub).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Subscription tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load subscription")
	}

	if err := ctl.DB.WithContext(c.UserContext()).
		Model(&subsModel.MemberSubscriptionModel{}).
		Where("member_subscriptions_id = ?", subID).
		Update("member_subscriptions_status", body.Status).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to update subscription")
	}
	sub.MemberSubscriptionsStatus = body.Status

	return helper.JsonUpdated(c, "Status subscription diperbarui", subsDTO.FromSubscriptionModel(&sub))
}

// GET /api/m/subscriptions — subscription milik member sendiri
func (ctl *SubscriptionController) ListMine(c *fiber.Ctx) error {
	memberID, err := helper.GetMemberIDFromToken(c)
	if err != nil {
		return err
	}

	var rows []subsModel.MemberSubscriptionModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("member_subscriptions_member_id = ?", memberID).
		Order("member_subscriptions_ends_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load subscriptions")
	}
	return helper.JsonOK(c, "", subsDTO.FromSubscriptionModels(rows))
}
