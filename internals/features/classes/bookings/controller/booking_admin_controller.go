// file: internals/features/classes/bookings/controller/booking_admin_controller.go
package controller

import (
	"strings"

	bookingDTO "fitclub_backend/internals/features/classes/bookings/dto"
	bookingModel "fitclub_backend/internals/features/classes/bookings/model"
	helper "fitclub_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

/* ======================================================
   Admin: no-show, complete, snapshot booking per session
====================================================== */

// POST /api/a/bookings/:id/no-show
func (ctl *BookingController) MarkNoShow(c *fiber.Ctx) error {
	bookingID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil || bookingID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "booking id tidak valid")
	}

	var body bookingDTO.MarkNoShowRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&body); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
		}
	}

	b, err := ctl.Service.MarkNoShow(c.UserContext(), bookingID, body.Override)
	if err != nil {
		return mapBookingError(c, err)
	}
	return helper.JsonUpdated(c, "Booking ditandai no-show", bookingDTO.FromBookingModel(b))
}

// POST /api/a/bookings/:id/complete
func (ctl *BookingController) Complete(c *fiber.Ctx) error {
	bookingID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil || bookingID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "booking id tidak valid")
	}

	b, err := ctl.Service.Complete(c.UserContext(), bookingID)
	if err != nil {
		return mapBookingError(c, err)
	}
	return helper.JsonUpdated(c, "Booking completed", bookingDTO.FromBookingModel(b))
}

// GET /api/a/sessions/:id/bookings — snapshot read-only untuk dashboard
func (ctl *BookingController) ListBySession(c *fiber.Ctx) error {
	sessionID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil || sessionID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "session id tidak valid")
	}

	paging := helper.ResolvePaging(c, 50, 200)

	tx := ctl.DB.WithContext(c.UserContext()).
		Model(&bookingModel.BookingModel{}).
		Where("bookings_session_id = ?", sessionID)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count bookings")
	}

	var rows []bookingModel.BookingModel
	if err := tx.
		Order("bookings_status ASC, bookings_waitlist_position ASC NULLS FIRST, bookings_booked_at ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load bookings")
	}

	return helper.JsonList(c, "", bookingDTO.FromBookingModels(rows), helper.BuildPagination(paging, total))
}
