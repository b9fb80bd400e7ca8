package service

import (
	"errors"
	"fmt"
	"testing"

	bookingModel "fitclub_backend/internals/features/classes/bookings/model"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsRetriableConflict(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"version conflict", ErrConcurrentModification, true},
		{"wrapped version conflict", fmt.Errorf("cancel: %w", ErrConcurrentModification), true},
		{"deadlock detected", &pgconn.PgError{Code: "40P01"}, true},
		{"serialization failure", &pgconn.PgError{Code: "40001"}, true},
		{"unique violation is not retriable", &pgconn.PgError{Code: "23505"}, false},
		{"unrelated error", ErrSessionNotFound, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isRetriableConflict(tt.err); got != tt.want {
				t.Fatalf("isRetriableConflict(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestRetryOnceRetriesDeadlock(t *testing.T) {
	calls := 0
	want := &bookingModel.BookingModel{}
	b, err := retryOnce(func() (*bookingModel.BookingModel, error) {
		calls++
		if calls == 1 {
			return nil, &pgconn.PgError{Code: "40P01"}
		}
		return want, nil
	})
	if err != nil {
		t.Fatalf("expected success after retry, got %v", err)
	}
	if b != want {
		t.Fatal("expected booking from second attempt")
	}
	if calls != 2 {
		t.Fatalf("expected 2 attempts, got %d", calls)
	}
}

func TestRetryOnceSurfacesConflictAfterSecondFailure(t *testing.T) {
	calls := 0
	_, err := retryOnce(func() (*bookingModel.BookingModel, error) {
		calls++
		return nil, &pgconn.PgError{Code: "40P01"}
	})
	if !errors.Is(err, ErrConcurrentModification) {
		t.Fatalf("expected ErrConcurrentModification, got %v", err)
	}
	if calls != 2 {
		t.Fatalf("expected exactly 2 attempts, got %d", calls)
	}
}

func TestRetryOnceSkipsNonRetriableErrors(t *testing.T) {
	calls := 0
	_, err := retryOnce(func() (*bookingModel.BookingModel, error) {
		calls++
		return nil, ErrSessionNotBookable
	})
	if !errors.Is(err, ErrSessionNotBookable) {
		t.Fatalf("expected ErrSessionNotBookable, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected 1 attempt, got %d", calls)
	}
}
