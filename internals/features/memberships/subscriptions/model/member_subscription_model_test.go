package model

import "testing"

func intPtr(n int) *int { return &n }

func TestCoversCategory(t *testing.T) {
	tests := []struct {
		name       string
		categories []string
		category   string
		want       bool
	}{
		{"empty scope covers everything", nil, "yoga", true},
		{"listed category", []string{"yoga", "pilates"}, "yoga", true},
		{"unlisted category", []string{"yoga", "pilates"}, "crossfit", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := MemberSubscriptionModel{MemberSubscriptionsClassCategories: tt.categories}
			if got := s.CoversCategory(tt.category); got != tt.want {
				t.Fatalf("CoversCategory(%q) = %v, want %v", tt.category, got, tt.want)
			}
		})
	}
}

func TestClassesRemaining(t *testing.T) {
	tests := []struct {
		name  string
		quota *int
		used  int
		want  int
	}{
		{"unlimited reports zero", nil, 10, 0},
		{"quota minus used", intPtr(8), 3, 5},
		{"fully used", intPtr(8), 8, 0},
		{"overused floors at zero", intPtr(8), 9, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := MemberSubscriptionModel{
				MemberSubscriptionsClassQuotaPerPeriod:   tt.quota,
				MemberSubscriptionsClassesUsedThisPeriod: tt.used,
			}
			if got := s.ClassesRemaining(); got != tt.want {
				t.Fatalf("ClassesRemaining() = %d, want %d", got, tt.want)
			}
			if s.Unlimited() != (tt.quota == nil) {
				t.Fatalf("Unlimited() = %v with quota %v", s.Unlimited(), tt.quota)
			}
		})
	}
}
