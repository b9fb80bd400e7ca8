// file: internals/helpers/get_member_id.go
package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetMemberIDFromToken membaca member_id yang diset AuthMiddleware di Locals.
func GetMemberIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw := c.Locals("member_id")
	if raw == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "member_id tidak ditemukan di token")
	}

	switch v := raw.(type) {
	case uuid.UUID:
		return v, nil
	case string:
		id, err := uuid.Parse(v)
		if err != nil || id == uuid.Nil {
			return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "member_id tidak valid")
		}
		return id, nil
	default:
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "member_id tidak valid")
	}
}

// GetRoleFromToken membaca role dari Locals (diset AuthMiddleware).
func GetRoleFromToken(c *fiber.Ctx) string {
	if v, ok := c.Locals("role").(string); ok {
		return v
	}
	return ""
}
