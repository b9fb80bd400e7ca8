// file: internals/features/memberships/class_packs/route/class_pack_route.go
package route

import (
	packCtrl "fitclub_backend/internals/features/memberships/class_packs/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ClassPackAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := packCtrl.NewClassPackController(db)

	// POST /api/a/class-packs
	r.Post("/class-packs", ctl.Create)
}

func ClassPackUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := packCtrl.NewClassPackController(db)

	// GET /api/m/class-packs
	r.Get("/class-packs", ctl.ListMine)
}
