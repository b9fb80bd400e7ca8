// file: internals/features/classes/bookings/route/user_route.go
package route

import (
	bookingCtrl "fitclub_backend/internals/features/classes/bookings/controller"
	bookingSvc "fitclub_backend/internals/features/classes/bookings/service"
	"fitclub_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func BookingUserRoutes(r fiber.Router, db *gorm.DB, svc *bookingSvc.BookingService) {
	ctl := bookingCtrl.NewBookingController(db, svc)

	bookings := r.Group("/bookings")
	{
		// POST /api/m/bookings — limiter ketat, endpoint rebutan slot
		bookings.Post("/", middlewares.BookingRateLimiter(), ctl.Create)

		// GET /api/m/bookings
		bookings.Get("/", ctl.ListMine)

		// GET /api/m/bookings/:id
		bookings.Get("/:id", ctl.GetByID)

		// POST /api/m/bookings/:id/cancel
		bookings.Post("/:id/cancel", ctl.Cancel)

		// POST /api/m/bookings/:id/check-in
		bookings.Post("/:id/check-in", ctl.CheckIn)
	}
}
