// file: internals/features/classes/bookings/service/payment_source.go
package service

import (
	"context"
	"sort"
	"time"

	bookingModel "fitclub_backend/internals/features/classes/bookings/model"
	scheduleModel "fitclub_backend/internals/features/classes/class_schedules/model"
	paymentModel "fitclub_backend/internals/features/payment/payments/model"

	"github.com/google/uuid"
)

/* ======================================================
   Boundary collaborators (capability interfaces).
   Engine tidak tahu bagaimana entitlement/saldo dihitung —
   hanya menerima verdict. Implementasi default ada di
   features/memberships & features/payment.
====================================================== */

type Entitlement struct {
	SubscriptionID   uuid.UUID
	Unlimited        bool
	ClassesRemaining int
}

type EntitlementReader interface {
	// nil, nil = member tidak punya entitlement aktif untuk kategori ini
	GetActiveEntitlement(ctx context.Context, memberID uuid.UUID, classCategory string) (*Entitlement, error)
}

type EntitlementMutator interface {
	ConsumeClass(ctx context.Context, subscriptionID uuid.UUID) error
	RestoreClass(ctx context.Context, subscriptionID uuid.UUID) error
}

type PackBalance struct {
	BalanceID        uuid.UUID
	ClassesRemaining int
	ExpiresAt        time.Time
}

type ClassPackReader interface {
	GetEligibleBalances(ctx context.Context, memberID, classID uuid.UUID, classCategory string) ([]PackBalance, error)
}

type ClassPackMutator interface {
	Decrement(ctx context.Context, balanceID uuid.UUID) error
	Increment(ctx context.Context, balanceID uuid.UUID) error
}

type PayPerEntryCharger interface {
	ChargePayPerEntry(ctx context.Context, memberID, bookingID uuid.UUID, price paymentModel.PriceBreakdown) (orderID string, err error)
	// Kompensasi: membatalkan tagihan yang booking-nya gagal commit
	VoidPayPerEntry(ctx context.Context, orderID string) error
}

/* ======================================================
   PaymentSourceResolver.
   Urutan prioritas: membership → class-pack (expiry tercepat
   dulu, use-it-or-lose-it) → pay-per-entry. Konsumsi yang
   sudah dibayar sebelum menagih yang baru.
====================================================== */

type PaymentOption struct {
	Source         bookingModel.PaymentSource
	SubscriptionID *uuid.UUID
	BalanceID      *uuid.UUID

	// Hanya terisi untuk pay-per-entry
	Price *paymentModel.PriceBreakdown
}

type PaymentSourceResolver struct {
	Entitlements EntitlementReader
	Packs        ClassPackReader
}

// Options membangun daftar payment source yang usable, terurut prioritas.
func (r *PaymentSourceResolver) Options(
	ctx context.Context,
	memberID uuid.UUID,
	class *scheduleModel.GymClassModel,
	club *scheduleModel.ClubModel,
) ([]PaymentOption, error) {
	var opts []PaymentOption

	// 1) Membership entitlement
	ent, err := r.Entitlements.GetActiveEntitlement(ctx, memberID, class.GymClassesCategory)
	if err != nil {
		return nil, err
	}
	if ent != nil && (ent.Unlimited || ent.ClassesRemaining > 0) {
		subID := ent.SubscriptionID
		opts = append(opts, PaymentOption{
			Source:         bookingModel.SourceMembership,
			SubscriptionID: &subID,
		})
	}

	// 2) Class-pack balances, expiry tercepat dulu
	balances, err := r.Packs.GetEligibleBalances(ctx, memberID, class.GymClassesID, class.GymClassesCategory)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(balances, func(i, j int) bool {
		return balances[i].ExpiresAt.Before(balances[j].ExpiresAt)
	})
	for _, b := range balances {
		if b.ClassesRemaining <= 0 {
			continue
		}
		balID := b.BalanceID
		opts = append(opts, PaymentOption{
			Source:    bookingModel.SourceClassPack,
			BalanceID: &balID,
		})
	}

	// 3) Pay-per-entry, kalau kelas menerima non-subscriber
	if class.GymClassesAllowDropIn {
		price := paymentModel.ComputePrice(
			class.GymClassesDropInPriceCents,
			club.ClubsCurrency,
			club.ClubsTaxRatePercent,
		)
		opts = append(opts, PaymentOption{
			Source: bookingModel.SourcePayPerEntry,
			Price:  &price,
		})
	}

	return opts, nil
}

// Resolve memilih payment source: preference caller kalau eligible
// (ErrPaymentSourceUnavailable kalau tidak), default urutan prioritas.
func (r *PaymentSourceResolver) Resolve(
	ctx context.Context,
	memberID uuid.UUID,
	class *scheduleModel.GymClassModel,
	club *scheduleModel.ClubModel,
	preference *bookingModel.PaymentSource,
) (*PaymentOption, error) {
	opts, err := r.Options(ctx, memberID, class, club)
	if err != nil {
		return nil, err
	}
	if len(opts) == 0 {
		return nil, ErrNoPaymentSource
	}

	if preference != nil {
		for i := range opts {
			if opts[i].Source == *preference {
				return &opts[i], nil
			}
		}
		return nil, ErrPaymentSourceUnavailable
	}

	return &opts[0], nil
}
