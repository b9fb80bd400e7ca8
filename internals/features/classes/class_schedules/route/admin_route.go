// file: internals/features/classes/class_schedules/route/admin_route.go
package route

import (
	scheduleCtrl "fitclub_backend/internals/features/classes/class_schedules/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ClassScheduleAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := scheduleCtrl.NewClassSessionController(db)

	sessions := r.Group("/sessions")
	{
		// POST /api/a/sessions
		sessions.Post("/", ctl.Create)

		// GET /api/a/sessions/:id — snapshot okupansi
		sessions.Get("/:id", ctl.GetByID)

		// PATCH /api/a/sessions/:id/status
		sessions.Patch("/:id/status", ctl.UpdateStatus)
	}
}
