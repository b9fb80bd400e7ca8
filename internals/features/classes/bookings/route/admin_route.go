// file: internals/features/classes/bookings/route/admin_route.go
package route

import (
	bookingCtrl "fitclub_backend/internals/features/classes/bookings/controller"
	bookingSvc "fitclub_backend/internals/features/classes/bookings/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func BookingAdminRoutes(r fiber.Router, db *gorm.DB, svc *bookingSvc.BookingService) {
	ctl := bookingCtrl.NewBookingController(db, svc)

	bookings := r.Group("/bookings")
	{
		// POST /api/a/bookings/:id/no-show
		bookings.Post("/:id/no-show", ctl.MarkNoShow)

		// POST /api/a/bookings/:id/complete
		bookings.Post("/:id/complete", ctl.Complete)
	}

	// GET /api/a/sessions/:id/bookings
	r.Get("/sessions/:id/bookings", ctl.ListBySession)
}
