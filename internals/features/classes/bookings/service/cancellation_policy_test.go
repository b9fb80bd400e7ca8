package service

import (
	"testing"
	"time"

	scheduleModel "fitclub_backend/internals/features/classes/class_schedules/model"
)

func testPolicy() FeePolicy {
	return FeePolicy{
		DeadlineHours:      4,
		LateFeeCents:       2500,
		NoShowFeeCents:     5000,
		Currency:           "SAR",
		RefundCreditOnLate: false,
	}
}

func TestEvaluateCancellation(t *testing.T) {
	// Session jam 18:00, deadline 4 jam → batas cancel 14:00
	start := time.Date(2025, 6, 10, 18, 0, 0, 0, time.UTC)
	p := testPolicy()

	tests := []struct {
		name         string
		now          time.Time
		wantLate     bool
		wantFee      int64
		wantRefund   bool
	}{
		{name: "13:00 is on time", now: start.Add(-5 * time.Hour), wantLate: false, wantFee: 0, wantRefund: true},
		{name: "exactly at deadline is on time", now: start.Add(-4 * time.Hour), wantLate: false, wantFee: 0, wantRefund: true},
		{name: "15:30 is late", now: start.Add(-2*time.Hour - 30*time.Minute), wantLate: true, wantFee: 2500, wantRefund: false},
		{name: "after start is late", now: start.Add(10 * time.Minute), wantLate: true, wantFee: 2500, wantRefund: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := p.EvaluateCancellation(tt.now, start)
			if out.Late != tt.wantLate {
				t.Fatalf("late = %v, want %v", out.Late, tt.wantLate)
			}
			if out.FeeCents != tt.wantFee {
				t.Fatalf("fee = %d, want %d", out.FeeCents, tt.wantFee)
			}
			if out.RefundCredit != tt.wantRefund {
				t.Fatalf("refund = %v, want %v", out.RefundCredit, tt.wantRefund)
			}
		})
	}
}

func TestEvaluateCancellationRefundOnLateConfigurable(t *testing.T) {
	start := time.Date(2025, 6, 10, 18, 0, 0, 0, time.UTC)
	p := testPolicy()
	p.RefundCreditOnLate = true

	out := p.EvaluateCancellation(start.Add(-1*time.Hour), start)
	if !out.Late {
		t.Fatal("expected late")
	}
	if !out.RefundCredit {
		t.Fatal("expected refund allowed when club opts in")
	}
	if out.FeeCents != 2500 {
		t.Fatalf("fee = %d, want 2500", out.FeeCents)
	}
}

func TestEvaluateNoShow(t *testing.T) {
	end := time.Date(2025, 6, 10, 19, 0, 0, 0, time.UTC)
	p := testPolicy()

	// 19:05 → sah
	out, err := p.EvaluateNoShow(end.Add(5*time.Minute), end, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.FeeCents != 5000 {
		t.Fatalf("fee = %d, want 5000", out.FeeCents)
	}
	if out.RefundCredit {
		t.Fatal("no-show never refunds credit")
	}

	// Sebelum berakhir → ditolak
	if _, err := p.EvaluateNoShow(end.Add(-5*time.Minute), end, false); err != ErrSessionNotEnded {
		t.Fatalf("expected ErrSessionNotEnded, got %v", err)
	}

	// Override admin boleh lebih awal
	if _, err := p.EvaluateNoShow(end.Add(-5*time.Minute), end, true); err != nil {
		t.Fatalf("unexpected error with override: %v", err)
	}
}

func TestBuildFeePolicyFallback(t *testing.T) {
	club := &scheduleModel.ClubModel{
		ClubsCurrency:                        "SAR",
		ClubsDefaultLateCancellationFeeCents: 1000,
		ClubsDefaultNoShowFeeCents:           2000,
	}
	class := &scheduleModel.GymClassModel{GymClassesCancellationDeadlineHours: 6}

	p := BuildFeePolicy(club, class)
	if p.LateFeeCents != 1000 || p.NoShowFeeCents != 2000 {
		t.Fatalf("expected club defaults, got late=%d noshow=%d", p.LateFeeCents, p.NoShowFeeCents)
	}
	if p.DeadlineHours != 6 {
		t.Fatalf("deadline = %d, want 6", p.DeadlineHours)
	}

	override := int64(3500)
	class.GymClassesLateCancellationFeeCents = &override
	p = BuildFeePolicy(club, class)
	if p.LateFeeCents != 3500 {
		t.Fatalf("expected class override 3500, got %d", p.LateFeeCents)
	}
}
