package service

import (
	"context"
	"errors"
	"testing"

	bookingModel "fitclub_backend/internals/features/classes/bookings/model"
	paymentModel "fitclub_backend/internals/features/payment/payments/model"

	"github.com/google/uuid"
)

type fakeCharger struct {
	orderID   string
	chargeErr error
	charges   int
	voided    []string
}

func (f *fakeCharger) ChargePayPerEntry(_ context.Context, _, _ uuid.UUID, _ paymentModel.PriceBreakdown) (string, error) {
	f.charges++
	if f.chargeErr != nil {
		return "", f.chargeErr
	}
	return f.orderID, nil
}

func (f *fakeCharger) VoidPayPerEntry(_ context.Context, orderID string) error {
	f.voided = append(f.voided, orderID)
	return nil
}

func payPerEntryFixture(charger *fakeCharger) (*BookingService, *bookingModel.BookingModel, *PaymentOption) {
	svc := &BookingService{Charger: charger}
	b := &bookingModel.BookingModel{
		BookingsID:       uuid.New(),
		BookingsMemberID: uuid.New(),
	}
	price := paymentModel.ComputePrice(10000, "SAR", 15)
	opt := &PaymentOption{Source: bookingModel.SourcePayPerEntry, Price: &price}
	return svc, b, opt
}

func TestApplyPayPerEntryCompensationVoidsCharge(t *testing.T) {
	charger := &fakeCharger{orderID: "ppe-abc"}
	svc, b, opt := payPerEntryFixture(charger)

	compensate, err := svc.applyPaymentOption(context.Background(), b, opt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if charger.charges != 1 {
		t.Fatalf("expected 1 charge, got %d", charger.charges)
	}
	if b.BookingsPaidGrossCents == nil || *b.BookingsPaidGrossCents != 11500 {
		t.Fatalf("expected paid gross 11500, got %v", b.BookingsPaidGrossCents)
	}
	if b.BookingsClassDeducted {
		t.Fatal("pay-per-entry must not deduct class credit")
	}
	if len(charger.voided) != 0 {
		t.Fatalf("void before compensation: %v", charger.voided)
	}

	compensate()
	if len(charger.voided) != 1 || charger.voided[0] != "ppe-abc" {
		t.Fatalf("expected void for ppe-abc, got %v", charger.voided)
	}
}

func TestApplyPayPerEntryChargeFailureVoidsNothing(t *testing.T) {
	boom := errors.New("gateway down")
	charger := &fakeCharger{chargeErr: boom}
	svc, b, opt := payPerEntryFixture(charger)

	compensate, err := svc.applyPaymentOption(context.Background(), b, opt)
	if !errors.Is(err, boom) {
		t.Fatalf("expected charge error, got %v", err)
	}

	compensate()
	if len(charger.voided) != 0 {
		t.Fatalf("nothing was charged, nothing to void, got %v", charger.voided)
	}
}
