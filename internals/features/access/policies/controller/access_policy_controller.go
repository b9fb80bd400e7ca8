// file: internals/features/access/policies/controller/access_policy_controller.go
package controller

import (
	"strings"

	policyDTO "fitclub_backend/internals/features/access/policies/dto"
	policyModel "fitclub_backend/internals/features/access/policies/model"
	helper "fitclub_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AccessPolicyController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAccessPolicyController(db *gorm.DB) *AccessPolicyController {
	return &AccessPolicyController{DB: db, Validator: validator.New()}
}

// POST /api/a/access-rules
func (ctl *AccessPolicyController) CreateAccessRule(c *fiber.Ctx) error {
	var body policyDTO.CreateAccessRuleRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if err := ctl.Validator.Struct(body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	r := policyModel.LocationAccessRuleModel{
		LocationAccessRulesLocationID:  body.LocationID,
		LocationAccessRulesGender:      body.Gender,
		LocationAccessRulesDayOfWeek:   body.DayOfWeek,
		LocationAccessRulesStartMinute: body.StartMinute,
		LocationAccessRulesEndMinute:   body.EndMinute,
	}
	if tz := strings.TrimSpace(body.Timezone); tz != "" {
		r.LocationAccessRulesTimezone = tz
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&r).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create access rule")
	}
	return helper.JsonCreated(c, "Access rule berhasil dibuat", r)
}

// GET /api/a/locations/:id/access-rules
func (ctl *AccessPolicyController) ListAccessRules(c *fiber.Ctx) error {
	locationID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil || locationID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "location id tidak valid")
	}

	var rows []policyModel.LocationAccessRuleModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("location_access_rules_location_id = ?", locationID).
		Order("location_access_rules_day_of_week ASC, location_access_rules_start_minute ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load access rules")
	}
	return helper.JsonOK(c, "", rows)
}

// DELETE /api/a/access-rules/:id
func (ctl *AccessPolicyController) DeleteAccessRule(c *fiber.Ctx) error {
	ruleID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil || ruleID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "rule id tidak valid")
	}
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("location_access_rules_id = ?", ruleID).
		Delete(&policyModel.LocationAccessRuleModel{}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete access rule")
	}
	return helper.JsonOK(c, "Access rule dihapus", fiber.Map{"location_access_rules_id": ruleID})
}

// POST /api/a/prayer-blocks
func (ctl *AccessPolicyController) CreatePrayerBlock(c *fiber.Ctx) error {
	var body policyDTO.CreatePrayerBlockRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if err := ctl.Validator.Struct(body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	b := policyModel.PrayerTimeBlockModel{
		PrayerTimeBlocksLocationID:  body.LocationID,
		PrayerTimeBlocksName:        body.Name,
		PrayerTimeBlocksDayOfWeek:   body.DayOfWeek,
		PrayerTimeBlocksStartMinute: body.StartMinute,
		PrayerTimeBlocksEndMinute:   body.EndMinute,
	}
	if tz := strings.TrimSpace(body.Timezone); tz != "" {
		b.PrayerTimeBlocksTimezone = tz
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&b).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create prayer block")
	}
	return helper.JsonCreated(c, "Prayer block berhasil dibuat", b)
}

// GET /api/a/locations/:id/prayer-blocks
func (ctl *AccessPolicyController) ListPrayerBlocks(c *fiber.Ctx) error {
	locationID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil || locationID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "location id tidak valid")
	}

	var rows []policyModel.PrayerTimeBlockModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("prayer_time_blocks_location_id = ?", locationID).
		Order("prayer_time_blocks_start_minute ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load prayer blocks")
	}
	return helper.JsonOK(c, "", rows)
}

// DELETE /api/a/prayer-blocks/:id
func (ctl *AccessPolicyController) DeletePrayerBlock(c *fiber.Ctx) error {
	blockID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil || blockID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "block id tidak valid")
	}
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("prayer_time_blocks_id = ?", blockID).
		Delete(&policyModel.PrayerTimeBlockModel{}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to delete prayer block")
	}
	return helper.JsonOK(c, "Prayer block dihapus", fiber.Map{"prayer_time_blocks_id": blockID})
}
