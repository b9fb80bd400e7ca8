// file: internals/features/payment/payments/service/payment_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	paymentModel "fitclub_backend/internals/features/payment/payments/model"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ErrPaymentNotFound = errors.New("payment not found")

/* ======================================================
   PaymentService — tagihan pay-per-entry via Snap.
   Booking engine memanggil ChargePayPerEntry lewat interface
   PayPerEntryCharger; status settlement masuk lewat callback
   gateway (HandleNotification).
====================================================== */

type PaymentService struct {
	DB *gorm.DB
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{DB: db}
}

// ChargePayPerEntry membuat tagihan drop-in untuk satu booking.
// OrderID deterministik per booking ("ppe-<bookingID>") supaya retry
// tidak menggandakan tagihan di gateway.
func (s *PaymentService) ChargePayPerEntry(ctx context.Context, memberID, bookingID uuid.UUID, price paymentModel.PriceBreakdown) (string, error) {
	orderID := fmt.Sprintf("ppe-%s", bookingID)

	p := paymentModel.PaymentModel{
		PaymentsMemberID:     memberID,
		PaymentsBookingID:    bookingID,
		PaymentsOrderID:      orderID,
		PaymentsNetCents:     price.Net.AmountCents,
		PaymentsTaxCents:     price.Tax.AmountCents,
		PaymentsGrossCents:   price.Gross.AmountCents,
		PaymentsChargedCents: gatewayAmount(price.Gross.AmountCents) * 100,
		PaymentsCurrency:     price.Gross.Currency,
		PaymentsStatus:       paymentModel.PaymentPending,
	}
	if err := s.DB.WithContext(ctx).Create(&p).Error; err != nil {
		return "", err
	}

	token, _, err := GenerateSnapToken(orderID, "Drop-in class", price.Gross.AmountCents)
	if err != nil {
		// Tagihan tetap tercatat pending; token bisa digenerate ulang
		log.Printf("[PaymentService] snap token gagal untuk %s: %v", orderID, err)
		return "", err
	}

	if err := s.DB.WithContext(ctx).
		Model(&paymentModel.PaymentModel{}).
		Where("payments_order_id = ?", orderID).
		Update("payments_snap_token", token).Error; err != nil {
		log.Printf("[PaymentService] gagal simpan snap token %s: %v", orderID, err)
	}

	return orderID, nil
}

// VoidPayPerEntry menandai tagihan failed — dipanggil engine sebagai
// kompensasi saat transaksi booking gagal commit setelah charge.
func (s *PaymentService) VoidPayPerEntry(ctx context.Context, orderID string) error {
	return s.DB.WithContext(ctx).
		Model(&paymentModel.PaymentModel{}).
		Where("payments_order_id = ?", orderID).
		Where("payments_status = ?", paymentModel.PaymentPending).
		Update("payments_status", paymentModel.PaymentFailed).Error
}

/* ======================================================
   Gateway notification
====================================================== */

type GatewayNotification struct {
	OrderID           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	PaymentType       string `json:"payment_type"`
	TransactionTime   string `json:"transaction_time"`
	SignatureKey      string `json:"signature_key"`
}

// HandleNotification menerapkan status dari gateway ke row payment.
// Idempotent: notifikasi ulang dengan status sama tidak mengubah apa-apa.
func (s *PaymentService) HandleNotification(ctx context.Context, notif *GatewayNotification) error {
	var p paymentModel.PaymentModel
	if err := s.DB.WithContext(ctx).
		Where("payments_order_id = ?", notif.OrderID).
		First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPaymentNotFound
		}
		return err
	}

	var newStatus paymentModel.PaymentStatus
	switch notif.TransactionStatus {
	case "capture", "settlement":
		if notif.FraudStatus == "challenge" {
			newStatus = paymentModel.PaymentPending
		} else {
			newStatus = paymentModel.PaymentPaid
		}
	case "deny", "cancel", "failure":
		newStatus = paymentModel.PaymentFailed
	case "expire":
		newStatus = paymentModel.PaymentExpired
	default:
		newStatus = paymentModel.PaymentPending
	}

	raw, err := sonic.Marshal(notif)
	if err != nil {
		raw = nil
	}

	updates := map[string]interface{}{
		"payments_status":           newStatus,
		"payments_gateway_snapshot": datatypes.JSON(raw),
	}
	if newStatus == paymentModel.PaymentPaid && p.PaymentsPaidAt == nil {
		now := time.Now()
		updates["payments_paid_at"] = &now
	}

	return s.DB.WithContext(ctx).
		Model(&paymentModel.PaymentModel{}).
		Where("payments_order_id = ?", notif.OrderID).
		Updates(updates).Error
}
