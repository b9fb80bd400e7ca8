package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

type stubGender struct {
	eligible bool
	err      error
}

func (s *stubGender) IsEligible(_ context.Context, _ uuid.UUID, _ string, _ time.Time) (bool, error) {
	return s.eligible, s.err
}

type stubPrayer struct {
	blocked bool
	err     error
}

func (s *stubPrayer) IsBlocked(_ context.Context, _ uuid.UUID, _ time.Time) (bool, error) {
	return s.blocked, s.err
}

func TestEligibilityGate(t *testing.T) {
	tests := []struct {
		name       string
		gender     *stubGender
		prayer     *stubPrayer
		wantReason string
	}{
		{name: "allowed", gender: &stubGender{eligible: true}, prayer: &stubPrayer{}, wantReason: ""},
		{name: "gender policy denies", gender: &stubGender{eligible: false}, prayer: &stubPrayer{}, wantReason: ReasonGenderPolicy},
		{name: "prayer time blocks", gender: &stubGender{eligible: true}, prayer: &stubPrayer{blocked: true}, wantReason: ReasonPrayerTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate := &EligibilityGate{Gender: tt.gender, Prayer: tt.prayer}
			err := gate.Check(context.Background(), uuid.New(), "female", time.Now())
			if tt.wantReason == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			ne, ok := IsNotEligible(err)
			if !ok {
				t.Fatalf("expected NotEligibleError, got %v", err)
			}
			if ne.Reason != tt.wantReason {
				t.Fatalf("reason = %s, want %s", ne.Reason, tt.wantReason)
			}
		})
	}
}

func TestEligibilityGateInfraErrorPropagates(t *testing.T) {
	boom := errors.New("policy service down")
	gate := &EligibilityGate{Gender: &stubGender{err: boom}, Prayer: &stubPrayer{}}
	if err := gate.Check(context.Background(), uuid.New(), "male", time.Now()); !errors.Is(err, boom) {
		t.Fatalf("expected infra error to propagate, got %v", err)
	}
	if _, ok := IsNotEligible(errors.New("x")); ok {
		t.Fatal("plain error must not match NotEligibleError")
	}
}
