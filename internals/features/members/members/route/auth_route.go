// file: internals/features/members/members/route/auth_route.go
package route

import (
	memberCtrl "fitclub_backend/internals/features/members/members/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AuthRoutes di-mount TANPA auth middleware.
func AuthRoutes(r fiber.Router, db *gorm.DB) {
	ctl := memberCtrl.NewAuthController(db)

	auth := r.Group("/auth")
	{
		// POST /api/auth/register
		auth.Post("/register", ctl.Register)

		// POST /api/auth/login
		auth.Post("/login", ctl.Login)
	}
}

// MemberProfileRoutes di-mount di group member (dengan auth).
func MemberProfileRoutes(r fiber.Router, db *gorm.DB) {
	ctl := memberCtrl.NewAuthController(db)

	// GET /api/m/profile
	r.Get("/profile", ctl.Profile)
}
