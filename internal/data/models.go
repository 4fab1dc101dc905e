package data

import "errors"

// Sentinel errors returned by the model layer. Handlers match on these with
// errors.Is to choose a transport status code; the models themselves never
// log or swallow an error.
var (
	// ErrRecordNotFound is returned when a lookup finds no matching record.
	ErrRecordNotFound = errors.New("record not found")

	// ErrNoCopiesAvailable is returned when every copy of a book is already
	// claimed by an active reservation.
	ErrNoCopiesAvailable = errors.New("no copies available for reservation")

	// ErrAlreadyCancelled is returned when a transition is attempted on a
	// reservation that was cancelled.
	ErrAlreadyCancelled = errors.New("reservation already cancelled")

	// ErrAlreadyReturned is returned when a transition is attempted on a
	// reservation whose copy already came back.
	ErrAlreadyReturned = errors.New("reservation already returned")

	// ErrReservationsExist is returned when deleting a book that still has
	// reservations on record that were not cancelled.
	ErrReservationsExist = errors.New("book has reservations that are not cancelled")
)

// Models is a top-level container that groups the model types together.
// It is passed around the application via applicationDependencies so every
// handler has access to the store without touching it directly.
type Models struct {
	Books        BookModel        // Catalog operations
	Reservations ReservationModel // Reservation lifecycle operations
}

// NewModels constructs a Models value backed by a single fresh in-memory
// store. Call this once during application startup; both models share the
// store so that reservation checks and catalog mutations see the same state.
func NewModels() Models {
	st := newStore()
	return Models{
		Books:        BookModel{store: st},
		Reservations: ReservationModel{store: st},
	}
}
