package service

import (
	"testing"

	bookingModel "fitclub_backend/internals/features/classes/bookings/model"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from bookingModel.BookingStatus
		to   bookingModel.BookingStatus
		want bool
	}{
		{name: "waitlisted promotes to confirmed", from: bookingModel.BookingWaitlisted, to: bookingModel.BookingConfirmed, want: true},
		{name: "waitlisted can cancel", from: bookingModel.BookingWaitlisted, to: bookingModel.BookingCancelled, want: true},
		{name: "waitlisted cannot check in", from: bookingModel.BookingWaitlisted, to: bookingModel.BookingCheckedIn, want: false},
		{name: "confirmed checks in", from: bookingModel.BookingConfirmed, to: bookingModel.BookingCheckedIn, want: true},
		{name: "confirmed can cancel", from: bookingModel.BookingConfirmed, to: bookingModel.BookingCancelled, want: true},
		{name: "confirmed can no-show", from: bookingModel.BookingConfirmed, to: bookingModel.BookingNoShow, want: true},
		{name: "confirmed cannot complete directly", from: bookingModel.BookingConfirmed, to: bookingModel.BookingCompleted, want: false},
		{name: "checked in completes", from: bookingModel.BookingCheckedIn, to: bookingModel.BookingCompleted, want: true},
		{name: "checked in cannot cancel", from: bookingModel.BookingCheckedIn, to: bookingModel.BookingCancelled, want: false},
		{name: "cancelled is terminal", from: bookingModel.BookingCancelled, to: bookingModel.BookingConfirmed, want: false},
		{name: "cancelled cannot cancel again", from: bookingModel.BookingCancelled, to: bookingModel.BookingCancelled, want: false},
		{name: "completed is terminal", from: bookingModel.BookingCompleted, to: bookingModel.BookingCancelled, want: false},
		{name: "no-show is terminal", from: bookingModel.BookingNoShow, to: bookingModel.BookingConfirmed, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanTransition(tt.from, tt.to); got != tt.want {
				t.Fatalf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestIsTerminal(t *testing.T) {
	terminal := []bookingModel.BookingStatus{
		bookingModel.BookingCompleted,
		bookingModel.BookingCancelled,
		bookingModel.BookingNoShow,
	}
	for _, s := range terminal {
		if !IsTerminal(s) {
			t.Fatalf("expected %s terminal", s)
		}
	}
	active := []bookingModel.BookingStatus{
		bookingModel.BookingWaitlisted,
		bookingModel.BookingConfirmed,
		bookingModel.BookingCheckedIn,
	}
	for _, s := range active {
		if IsTerminal(s) {
			t.Fatalf("expected %s not terminal", s)
		}
	}
}

func TestEnsureTransition(t *testing.T) {
	if err := ensureTransition(bookingModel.BookingConfirmed, bookingModel.BookingCheckedIn); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ensureTransition(bookingModel.BookingCancelled, bookingModel.BookingCancelled); err != ErrInvalidTransition {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}
