// file: internals/features/classes/class_schedules/route/user_route.go
package route

import (
	scheduleCtrl "fitclub_backend/internals/features/classes/class_schedules/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ClassScheduleUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := scheduleCtrl.NewClassSessionController(db)

	// GET /api/m/sessions — jadwal upcoming
	r.Get("/sessions", ctl.List)
}
