package model

import (
	"testing"

	"github.com/google/uuid"
)

func TestCoversClass(t *testing.T) {
	yogaID := uuid.New()
	otherID := uuid.New()

	tests := []struct {
		name       string
		classIDs   []string
		categories []string
		classID    uuid.UUID
		category   string
		want       bool
	}{
		{"empty scope covers everything", nil, nil, otherID, "crossfit", true},
		{"listed class id", []string{yogaID.String()}, nil, yogaID, "yoga", true},
		{"unlisted class id", []string{yogaID.String()}, nil, otherID, "yoga", false},
		{"listed category", nil, []string{"yoga"}, otherID, "yoga", true},
		{"unlisted category", nil, []string{"yoga"}, otherID, "pilates", false},
		{"category match wins even if id unlisted", []string{yogaID.String()}, []string{"pilates"}, otherID, "pilates", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := ClassPackBalanceModel{
				ClassPackBalancesValidClassIDs:   tt.classIDs,
				ClassPackBalancesValidCategories: tt.categories,
			}
			if got := b.CoversClass(tt.classID, tt.category); got != tt.want {
				t.Fatalf("CoversClass(%s, %q) = %v, want %v", tt.classID, tt.category, got, tt.want)
			}
		})
	}
}
