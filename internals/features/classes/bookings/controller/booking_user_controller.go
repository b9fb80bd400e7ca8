// file: internals/features/classes/bookings/controller/booking_user_controller.go
package controller

import (
	"errors"
	"log"
	"strings"

	bookingDTO "fitclub_backend/internals/features/classes/bookings/dto"
	bookingModel "fitclub_backend/internals/features/classes/bookings/model"
	bookingSvc "fitclub_backend/internals/features/classes/bookings/service"
	helper "fitclub_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingController struct {
	DB        *gorm.DB
	Service   *bookingSvc.BookingService
	Validator *validator.Validate
}

func NewBookingController(db *gorm.DB, svc *bookingSvc.BookingService) *BookingController {
	return &BookingController{
		DB:        db,
		Service:   svc,
		Validator: validator.New(),
	}
}

// mapBookingError menerjemahkan error taxonomy engine ke envelope JSON
// dengan kode spesifik — setiap penolakan harus bisa dirender FE,
// silent failure tidak boleh.
func mapBookingError(c *fiber.Ctx, err error) error {
	if ne, ok := bookingSvc.IsNotEligible(err); ok {
		return helper.JsonErrorWithCode(c, fiber.StatusForbidden, "NOT_ELIGIBLE", ne.Reason)
	}
	switch {
	case errors.Is(err, bookingSvc.ErrSessionNotBookable):
		return helper.JsonErrorWithCode(c, fiber.StatusBadRequest, "SESSION_NOT_BOOKABLE", "Session tidak bisa dibooking (status/window)")
	case errors.Is(err, bookingSvc.ErrAlreadyBooked):
		return helper.JsonErrorWithCode(c, fiber.StatusConflict, "ALREADY_BOOKED", "Kamu sudah punya booking aktif untuk session ini")
	case errors.Is(err, bookingSvc.ErrNoPaymentSource):
		return helper.JsonErrorWithCode(c, fiber.StatusBadRequest, "NO_PAYMENT_SOURCE", "Tidak ada payment source yang bisa dipakai")
	case errors.Is(err, bookingSvc.ErrPaymentSourceUnavailable):
		return helper.JsonErrorWithCode(c, fiber.StatusBadRequest, "PAYMENT_SOURCE_UNAVAILABLE", "Payment source pilihanmu tidak tersedia")
	case errors.Is(err, bookingSvc.ErrConcurrentModification):
		return helper.JsonErrorWithCode(c, fiber.StatusConflict, "CONCURRENT_MODIFICATION", "Session sedang ramai, coba lagi")
	case errors.Is(err, bookingSvc.ErrInvalidTransition):
		// programming/race fault → log, surface generic
		log.Printf("[BookingController] invalid transition: %v", err)
		return helper.JsonErrorWithCode(c, fiber.StatusConflict, "INVALID_TRANSITION", "Status booking tidak mengizinkan aksi ini")
	case errors.Is(err, bookingSvc.ErrSessionNotEnded):
		return helper.JsonErrorWithCode(c, fiber.StatusBadRequest, "SESSION_NOT_ENDED", "Session belum berakhir")
	case errors.Is(err, bookingSvc.ErrBookingNotFound), errors.Is(err, bookingSvc.ErrSessionNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
	default:
		log.Printf("[BookingController] internal error: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Internal server error")
	}
}

// POST /api/m/bookings
func (ctl *BookingController) Create(c *fiber.Ctx) error {
	memberID, err := helper.GetMemberIDFromToken(c)
	if err != nil {
		return err
	}

	var body bookingDTO.CreateBookingRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
	}
	if err := ctl.Validator.Struct(body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var pref *bookingModel.PaymentSource
	if body.PaymentPreference != nil {
		p := bookingModel.PaymentSource(strings.TrimSpace(*body.PaymentPreference))
		if !bookingModel.ValidPaymentSource(p) {
			return helper.JsonError(c, fiber.StatusBadRequest, "payment preference tidak valid")
		}
		pref = &p
	}

	b, err := ctl.Service.CreateBooking(c.UserContext(), body.SessionID, memberID, pref)
	if err != nil {
		return mapBookingError(c, err)
	}

	msg := "Booking confirmed"
	if b.BookingsStatus == bookingModel.BookingWaitlisted {
		msg = "Session penuh, kamu masuk waitlist"
	}
	return helper.JsonCreated(c, msg, bookingDTO.FromBookingModel(b))
}

// POST /api/m/bookings/:id/cancel
func (ctl *BookingController) Cancel(c *fiber.Ctx) error {
	memberID, err := helper.GetMemberIDFromToken(c)
	if err != nil {
		return err
	}
	bookingID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil || bookingID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "booking id tidak valid")
	}

	var body bookingDTO.CancelBookingRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&body); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "invalid body")
		}
		if err := ctl.Validator.Struct(body); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
	}

	b, err := ctl.Service.Cancel(c.UserContext(), bookingID, &memberID, body.Reason)
	if err != nil {
		return mapBookingError(c, err)
	}
	return helper.JsonUpdated(c, "Booking dibatalkan", bookingDTO.FromBookingModel(b))
}

// POST /api/m/bookings/:id/check-in
func (ctl *BookingController) CheckIn(c *fiber.Ctx) error {
	memberID, err := helper.GetMemberIDFromToken(c)
	if err != nil {
		return err
	}
	bookingID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil || bookingID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "booking id tidak valid")
	}

	b, err := ctl.Service.CheckIn(c.UserContext(), bookingID, &memberID)
	if err != nil {
		return mapBookingError(c, err)
	}
	return helper.JsonUpdated(c, "Check-in berhasil", bookingDTO.FromBookingModel(b))
}

// GET /api/m/bookings
func (ctl *BookingController) ListMine(c *fiber.Ctx) error {
	memberID, err := helper.GetMemberIDFromToken(c)
	if err != nil {
		return err
	}

	var q bookingDTO.ListBookingQuery
	if err := c.QueryParser(&q); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "query tidak valid")
	}

	paging := helper.ResolvePaging(c, 20, 100)

	tx := ctl.DB.WithContext(c.UserContext()).
		Model(&bookingModel.BookingModel{}).
		Where("bookings_member_id = ?", memberID)
	if q.SessionID != nil {
		tx = tx.Where("bookings_session_id = ?", *q.SessionID)
	}
	if q.Status != nil {
		tx = tx.Where("bookings_status = ?", *q.Status)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to count bookings")
	}

	var rows []bookingModel.BookingModel
	if err := tx.
		Order("bookings_booked_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load bookings")
	}

	return helper.JsonList(c, "", bookingDTO.FromBookingModels(rows), helper.BuildPagination(paging, total))
}

// GET /api/m/bookings/:id
func (ctl *BookingController) GetByID(c *fiber.Ctx) error {
	memberID, err := helper.GetMemberIDFromToken(c)
	if err != nil {
		return err
	}
	bookingID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil || bookingID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "booking id tidak valid")
	}

	var b bookingModel.BookingModel
	if err := ctl.DB.WithContext(c.UserContext()).
		Where("bookings_id = ? AND bookings_member_id = ?", bookingID, memberID).
		First(&b).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Booking tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "failed to load booking")
	}
	return helper.JsonOK(c, "", bookingDTO.FromBookingModel(&b))
}
