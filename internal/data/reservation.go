package data

import (
	"time"

	"github.com/google/uuid"

	"github.com/jaupventur/bertoti/internal/validator"
)

// loanTerm is how long a reservation runs before the copy is due back.
const loanTerm = 7 * 24 * time.Hour

// ReservationStatus is the lifecycle state of a reservation. A reservation
// starts out active and moves exactly once into one of the two terminal
// states; it is never deleted, so cancelled and returned reservations remain
// visible as history.
type ReservationStatus string

const (
	StatusActive    ReservationStatus = "active"
	StatusCancelled ReservationStatus = "cancelled"
	StatusReturned  ReservationStatus = "returned"
)

// Reservation is a claim on one copy of a book by a holder. While active it
// counts against the book's total_copies.
type Reservation struct {
	ID          uuid.UUID         `json:"id"`
	BookID      uuid.UUID         `json:"book_id"` // Reference only; the book record is owned by the store
	HolderID    uuid.UUID         `json:"holder_id"`
	HolderName  string            `json:"holder_name"`
	CreatedAt   time.Time         `json:"created_at"`
	DueAt       time.Time         `json:"due_at"`                 // CreatedAt plus the loan term
	CancelledAt *time.Time        `json:"cancelled_at,omitempty"` // Set when the reservation is cancelled
	ReturnedAt  *time.Time        `json:"returned_at,omitempty"`  // Set when the copy comes back
	Status      ReservationStatus `json:"status"`
}

// ReservationInput holds the holder details a client supplies when reserving
// a book. The book is identified by the URL, not the payload.
type ReservationInput struct {
	HolderID   uuid.UUID `json:"holder_id"`
	HolderName string    `json:"holder_name"`
}

// ValidateReservationInput records field-level validation failures on v.
func ValidateReservationInput(v *validator.Validator, input *ReservationInput) {
	v.Check(input.HolderID != uuid.Nil, "holder_id", "must be provided")
	v.Check(input.HolderName != "", "holder_name", "must be provided")
}
