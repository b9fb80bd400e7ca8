// file: internals/features/memberships/subscriptions/route/subscription_route.go
package route

import (
	subsCtrl "fitclub_backend/internals/features/memberships/subscriptions/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SubscriptionAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := subsCtrl.NewSubscriptionController(db)

	subs := r.Group("/subscriptions")
	{
		// POST /api/a/subscriptions
		subs.Post("/", ctl.Create)

		// PATCH /api/a/subscriptions/:id/status
		subs.Patch("/:id/status", ctl.UpdateStatus)
	}
}

func SubscriptionUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := subsCtrl.NewSubscriptionController(db)

	// GET /api/m/subscriptions
	r.Get("/subscriptions", ctl.ListMine)
}
