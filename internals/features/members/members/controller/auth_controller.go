// file: internals/features/members/members/controller/auth_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"fitclub_backend/internals/configs"
	"fitclub_backend/internals/constants"
	memberDTO "fitclub_backend/internals/features/members/members/dto"
	memberModel "fitclub_backend/internals/features/members/members/model"
	helper "fitclub_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validator: validator.New()}
}

// POST /api/auth/register
func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var body memberDTO.RegisterRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if err := ctl.Validator.Struct(body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	email := strings.ToLower(strings.TrimSpace(body.Email))

	var existing memberModel.MemberModel
	err := ctl.DB.WithContext(c.UserContext()).
		Where("members_email = ?", email).
		First(&existing).Error
	if err == nil {
		return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to check email")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[AuthController] bcrypt gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to hash password")
	}

	m := memberModel.MemberModel{
		MembersClubID:       body.ClubID,
		MembersFullName:     strings.TrimSpace(body.FullName),
		MembersEmail:        email,
		MembersPhone:        body.Phone,
		MembersGender:       body.Gender,
		MembersPasswordHash: string(hash),
		MembersRole:         constants.RoleMember,
	}
	if err := ctl.DB.WithContext(c.UserContext()).Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to create member")
	}

	return helper.JsonCreated(c, "Registrasi berhasil", memberDTO.FromMemberModel(&m))
}

// POST /api/auth/login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var body memberDTO.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if err := ctl.Validator.Struct(body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	email := strings.ToLower(strings.TrimSpace(body.Email))

	var m memberModel.MemberModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("members_email = ?", email).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load member")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(m.MembersPasswordHash), []byte(body.Password)); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	token, err := signAccessToken(&m)
	if err != nil {
		log.Printf("[AuthController] gagal sign token: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to sign token")
	}

	return helper.JsonOK(c, "Login berhasil", memberDTO.LoginResponse{
		AccessToken: token,
		Member:      memberDTO.FromMemberModel(&m),
	})
}

// GET /api/m/profile
func (ctl *AuthController) Profile(c *fiber.Ctx) error {
	memberID, err := helper.GetMemberIDFromToken(c)
	if err != nil {
		return err
	}

	var m memberModel.MemberModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("members_id = ?", memberID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Member tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load member")
	}
	return helper.JsonOK(c, "", memberDTO.FromMemberModel(&m))
}

// signAccessToken: HMAC, claims minimal yang dibaca AuthMiddleware.
func signAccessToken(m *memberModel.MemberModel) (string, error) {
	if configs.JWTSecret == "" {
		return "", errors.New("JWT secret not configured")
	}
	now := time.Now()
	claims := jwt.MapClaims{
		"member_id": m.MembersID.String(),
		"role":      m.MembersRole,
		"iat":       now.Unix(),
		"exp":       now.Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}
