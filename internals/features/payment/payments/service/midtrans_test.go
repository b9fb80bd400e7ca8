package service

import "testing"

func TestGatewayAmount(t *testing.T) {
	tests := []struct {
		name       string
		grossCents int64
		want       int64
	}{
		{"whole amount passes through", 11500, 115},
		{"fractional amount rounds up", 11550, 116},
		{"single cent rounds up to one unit", 1, 1},
		{"just under one unit", 99, 1},
		{"exactly one unit", 100, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := gatewayAmount(tt.grossCents); got != tt.want {
				t.Fatalf("gatewayAmount(%d) = %d, want %d", tt.grossCents, got, tt.want)
			}
		})
	}
}
