// file: internals/features/classes/bookings/service/state_machine.go
package service

import (
	bookingModel "fitclub_backend/internals/features/classes/bookings/model"
)

/* ======================================================
   Transition table booking.
   Semua aturan legalitas transisi dipusatkan di sini, bukan
   tersebar di method entity — supaya bisa dites terpisah.

   waitlisted → confirmed (promote) | cancelled
   confirmed  → checked_in | cancelled | no_show
   checked_in → completed
   completed/cancelled/no_show = terminal
====================================================== */

var transitions = map[bookingModel.BookingStatus][]bookingModel.BookingStatus{
	bookingModel.BookingWaitlisted: {bookingModel.BookingConfirmed, bookingModel.BookingCancelled},
	bookingModel.BookingConfirmed:  {bookingModel.BookingCheckedIn, bookingModel.BookingCancelled, bookingModel.BookingNoShow},
	bookingModel.BookingCheckedIn:  {bookingModel.BookingCompleted},
	bookingModel.BookingCompleted:  {},
	bookingModel.BookingCancelled:  {},
	bookingModel.BookingNoShow:     {},
}

// CanTransition melaporkan apakah from → to legal.
func CanTransition(from, to bookingModel.BookingStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// IsTerminal: status yang tidak punya transisi keluar.
func IsTerminal(s bookingModel.BookingStatus) bool {
	return len(transitions[s]) == 0
}

// ensureTransition: ErrInvalidTransition kalau tidak legal.
func ensureTransition(from, to bookingModel.BookingStatus) error {
	if !CanTransition(from, to) {
		return ErrInvalidTransition
	}
	return nil
}
