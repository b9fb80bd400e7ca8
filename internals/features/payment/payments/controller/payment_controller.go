// file: internals/features/payment/payments/controller/payment_controller.go
package controller

import (
	"errors"
	"log"

	paymentModel "fitclub_backend/internals/features/payment/payments/model"
	paymentSvc "fitclub_backend/internals/features/payment/payments/service"
	helper "fitclub_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
)

type PaymentController struct {
	Service *paymentSvc.PaymentService
}

func NewPaymentController(svc *paymentSvc.PaymentService) *PaymentController {
	return &PaymentController{Service: svc}
}

// POST /api/payments/notification — webhook gateway (tanpa auth, di-skip
// oleh AuthMiddleware). Selalu balas 200 kecuali payload rusak, supaya
// gateway tidak retry terus untuk order yang memang tidak kita kenal.
func (ctl *PaymentController) HandleNotification(c *fiber.Ctx) error {
	var notif paymentSvc.GatewayNotification
	if err := c.BodyParser(&notif); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid notification payload")
	}
	if notif.OrderID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "order_id is required")
	}

	if err := ctl.Service.HandleNotification(c.UserContext(), &notif); err != nil {
		if errors.Is(err, paymentSvc.ErrPaymentNotFound) {
			log.Printf("[PaymentController] notifikasi untuk order tak dikenal: %s", notif.OrderID)
			return helper.JsonOK(c, "ignored", fiber.Map{"order_id": notif.OrderID})
		}
		log.Printf("[PaymentController] gagal proses notifikasi %s: %v", notif.OrderID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to process notification")
	}

	return helper.JsonOK(c, "ok", fiber.Map{"order_id": notif.OrderID})
}

// GET /api/m/payments — riwayat tagihan member
func (ctl *PaymentController) ListMine(c *fiber.Ctx) error {
	memberID, err := helper.GetMemberIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctl.Service.DB.WithContext(c.UserContext()).
		Model(&paymentModel.PaymentModel{}).
		Where("payments_member_id = ?", memberID)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count payments")
	}

	var rows []paymentModel.PaymentModel
	if err := tx.
		Order("payments_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load payments")
	}

	return helper.JsonList(c, "", rows, helper.BuildPagination(paging, total))
}
