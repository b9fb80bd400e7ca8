// file: internals/features/notifications/route/user_route.go
package route

import (
	notifCtrl "fitclub_backend/internals/features/notifications/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func NotificationUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := notifCtrl.NewNotificationController(db)

	notifs := r.Group("/notifications")
	{
		// GET /api/m/notifications
		notifs.Get("/", ctl.ListMine)

		// POST /api/m/notifications/:id/read
		notifs.Post("/:id/read", ctl.MarkRead)
	}
}
