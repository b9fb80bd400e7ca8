// file: internals/features/access/policies/route/admin_route.go
package route

import (
	policyCtrl "fitclub_backend/internals/features/access/policies/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AccessPolicyAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := policyCtrl.NewAccessPolicyController(db)

	// Gender access rules
	r.Post("/access-rules", ctl.CreateAccessRule)
	r.Delete("/access-rules/:id", ctl.DeleteAccessRule)
	r.Get("/locations/:id/access-rules", ctl.ListAccessRules)

	// Prayer time blocks
	r.Post("/prayer-blocks", ctl.CreatePrayerBlock)
	r.Delete("/prayer-blocks/:id", ctl.DeletePrayerBlock)
	r.Get("/locations/:id/prayer-blocks", ctl.ListPrayerBlocks)
}
