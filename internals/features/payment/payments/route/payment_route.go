// file: internals/features/payment/payments/route/payment_route.go
package route

import (
	paymentCtrl "fitclub_backend/internals/features/payment/payments/controller"
	paymentSvc "fitclub_backend/internals/features/payment/payments/service"

	"github.com/gofiber/fiber/v2"
)

// PaymentPublicRoutes di-mount TANPA auth — webhook gateway.
func PaymentPublicRoutes(r fiber.Router, svc *paymentSvc.PaymentService) {
	ctl := paymentCtrl.NewPaymentController(svc)

	// POST /api/payments/notification
	r.Post("/payments/notification", ctl.HandleNotification)
}

func PaymentUserRoutes(r fiber.Router, svc *paymentSvc.PaymentService) {
	ctl := paymentCtrl.NewPaymentController(svc)

	// GET /api/m/payments
	r.Get("/payments", ctl.ListMine)
}
