// internals/middlewares/auth/role_middleware.go
package auth

import (
	"github.com/gofiber/fiber/v2"

	helper "fitclub_backend/internals/helpers"
)

// OnlyRoles membatasi akses route berdasarkan role di token.
func OnlyRoles(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role := helper.GetRoleFromToken(c)
		if _, ok := allowed[role]; !ok {
			return helper.JsonError(c, fiber.StatusForbidden, "Role tidak diizinkan mengakses resource ini")
		}
		return c.Next()
	}
}
