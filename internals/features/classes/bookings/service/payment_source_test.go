package service

import (
	"context"
	"errors"
	"testing"
	"time"

	bookingModel "fitclub_backend/internals/features/classes/bookings/model"
	scheduleModel "fitclub_backend/internals/features/classes/class_schedules/model"

	"github.com/google/uuid"
)

type fakeEntitlements struct {
	ent *Entitlement
	err error
}

func (f *fakeEntitlements) GetActiveEntitlement(_ context.Context, _ uuid.UUID, _ string) (*Entitlement, error) {
	return f.ent, f.err
}

type fakePacks struct {
	balances []PackBalance
	err      error
}

func (f *fakePacks) GetEligibleBalances(_ context.Context, _, _ uuid.UUID, _ string) ([]PackBalance, error) {
	return f.balances, f.err
}

func resolverFixture(ent *Entitlement, balances []PackBalance) (*PaymentSourceResolver, *scheduleModel.GymClassModel, *scheduleModel.ClubModel) {
	r := &PaymentSourceResolver{
		Entitlements: &fakeEntitlements{ent: ent},
		Packs:        &fakePacks{balances: balances},
	}
	class := &scheduleModel.GymClassModel{
		GymClassesID:               uuid.New(),
		GymClassesCategory:         "yoga",
		GymClassesAllowDropIn:      true,
		GymClassesDropInPriceCents: 10000,
	}
	club := &scheduleModel.ClubModel{
		ClubsCurrency:       "SAR",
		ClubsTaxRatePercent: 15,
	}
	return r, class, club
}

func TestResolveDefaultsToMembershipFirst(t *testing.T) {
	subID := uuid.New()
	balance := PackBalance{BalanceID: uuid.New(), ClassesRemaining: 3, ExpiresAt: time.Now().Add(48 * time.Hour)}
	r, class, club := resolverFixture(&Entitlement{SubscriptionID: subID, Unlimited: true}, []PackBalance{balance})

	opt, err := r.Resolve(context.Background(), uuid.New(), class, club, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opt.Source != bookingModel.SourceMembership {
		t.Fatalf("expected membership, got %s", opt.Source)
	}
	if opt.SubscriptionID == nil || *opt.SubscriptionID != subID {
		t.Fatalf("expected subscription %s", subID)
	}
}

func TestResolvePacksRankedBySoonestExpiry(t *testing.T) {
	soon := PackBalance{BalanceID: uuid.New(), ClassesRemaining: 1, ExpiresAt: time.Now().Add(24 * time.Hour)}
	later := PackBalance{BalanceID: uuid.New(), ClassesRemaining: 5, ExpiresAt: time.Now().Add(30 * 24 * time.Hour)}
	r, class, club := resolverFixture(nil, []PackBalance{later, soon})

	opt, err := r.Resolve(context.Background(), uuid.New(), class, club, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opt.Source != bookingModel.SourceClassPack {
		t.Fatalf("expected class_pack, got %s", opt.Source)
	}
	if opt.BalanceID == nil || *opt.BalanceID != soon.BalanceID {
		t.Fatal("expected soonest-expiring balance first")
	}
}

func TestResolvePayPerEntryPrice(t *testing.T) {
	r, class, club := resolverFixture(nil, nil)

	opt, err := r.Resolve(context.Background(), uuid.New(), class, club, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opt.Source != bookingModel.SourcePayPerEntry {
		t.Fatalf("expected pay_per_entry, got %s", opt.Source)
	}
	if opt.Price == nil {
		t.Fatal("expected price breakdown")
	}
	if opt.Price.Gross.AmountCents != 11500 {
		t.Fatalf("expected gross 11500 (115.00 SAR), got %d", opt.Price.Gross.AmountCents)
	}
}

func TestResolvePreference(t *testing.T) {
	subID := uuid.New()
	balance := PackBalance{BalanceID: uuid.New(), ClassesRemaining: 2, ExpiresAt: time.Now().Add(time.Hour)}
	r, class, club := resolverFixture(&Entitlement{SubscriptionID: subID, ClassesRemaining: 4}, []PackBalance{balance})

	pref := bookingModel.SourceClassPack
	opt, err := r.Resolve(context.Background(), uuid.New(), class, club, &pref)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opt.Source != bookingModel.SourceClassPack {
		t.Fatalf("expected class_pack via preference, got %s", opt.Source)
	}
}

func TestResolvePreferenceUnavailable(t *testing.T) {
	r, class, club := resolverFixture(nil, nil)

	pref := bookingModel.SourceMembership
	if _, err := r.Resolve(context.Background(), uuid.New(), class, club, &pref); !errors.Is(err, ErrPaymentSourceUnavailable) {
		t.Fatalf("expected ErrPaymentSourceUnavailable, got %v", err)
	}
}

func TestResolveNoSourceAtAll(t *testing.T) {
	r, class, club := resolverFixture(nil, nil)
	class.GymClassesAllowDropIn = false

	if _, err := r.Resolve(context.Background(), uuid.New(), class, club, nil); !errors.Is(err, ErrNoPaymentSource) {
		t.Fatalf("expected ErrNoPaymentSource, got %v", err)
	}
}

func TestOptionsSkipExhaustedEntitlementAndPacks(t *testing.T) {
	empty := PackBalance{BalanceID: uuid.New(), ClassesRemaining: 0, ExpiresAt: time.Now().Add(time.Hour)}
	r, class, club := resolverFixture(&Entitlement{SubscriptionID: uuid.New(), ClassesRemaining: 0}, []PackBalance{empty})

	opts, err := r.Options(context.Background(), uuid.New(), class, club)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(opts) != 1 || opts[0].Source != bookingModel.SourcePayPerEntry {
		t.Fatalf("expected only pay_per_entry, got %+v", opts)
	}
}
