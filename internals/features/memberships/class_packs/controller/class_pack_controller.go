// file: internals/features/memberships/class_packs/controller/class_pack_controller.go
package controller

import (
	packDTO "fitclub_backend/internals/features/memberships/class_packs/dto"
	packModel "fitclub_backend/internals/features/memberships/class_packs/model"
	helper "fitclub_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ClassPackController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewClassPackController(db *gorm.DB) *ClassPackController {
	return &ClassPackController{DB: db, Validator: validator.New()}
}

// POST /api/a/class-packs
func (ctl *ClassPackController) Create(c *fiber.Ctx) error {
	var body packDTO.CreateClassPackRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if err := ctl.Validator.Struct(body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	b := packModel.ClassPackBalanceModel{
		ClassPackBalancesMemberID:         body.MemberID,
		ClassPackBalancesClubID:           body.ClubID,
		ClassPackBalancesPackName:         body.PackName,
		ClassPackBalancesValidClassIDs:    body.ValidClassIDs,
		ClassPackBalancesValidCategories:  body.ValidCategories,
		ClassPackBalancesClassesPurchased: body.ClassesPurchased,
		ClassPackBalancesClassesRemaining: body.ClassesPurchased,
		ClassPackBalancesStatus:           packModel.ClassPackActive,
		ClassPackBalancesExpiresAt:        body.ExpiresAt,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&b).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create class pack")
	}
	return helper.JsonCreated(c, "Class pack berhasil dibuat", packDTO.FromClassPackModel(&b))
}

// GET /api/m/class-packs — saldo paket milik member sendiri
func (ctl *ClassPackController) ListMine(c *fiber.Ctx) error {
	memberID, err := helper.GetMemberIDFromToken(c)
	if err != nil {
		return err
	}

	var rows []packModel.ClassPackBalanceModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("class_pack_balances_member_id = ?", memberID).
		Order("class_pack_balances_expires_at ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load class packs")
	}
	return helper.JsonOK(c, "", packDTO.FromClassPackModels(rows))
}
