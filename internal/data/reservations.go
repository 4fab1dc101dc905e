package data

import (
	"time"

	"github.com/google/uuid"
)

// ReservationModel provides the reservation lifecycle: creating a claim on a
// book copy while capacity allows, and moving the claim into one of its two
// terminal states.
type ReservationModel struct {
	store *store
}

// Insert creates an active reservation for one copy of the given book.
// Returns ErrRecordNotFound if the book does not exist, or
// ErrNoCopiesAvailable when every copy is already claimed.
//
// The capacity check and the insert happen under one write-lock hold, so two
// concurrent requests can never both take the last copy.
func (m ReservationModel) Insert(bookID, holderID uuid.UUID, holderName string) (*Reservation, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	book, ok := m.store.books[bookID]
	if !ok {
		return nil, ErrRecordNotFound
	}

	if m.store.activeCount(bookID) >= book.TotalCopies {
		return nil, ErrNoCopiesAvailable
	}

	now := time.Now()
	r := &Reservation{
		ID:         uuid.New(),
		BookID:     bookID,
		HolderID:   holderID,
		HolderName: holderName,
		CreatedAt:  now,
		DueAt:      now.Add(loanTerm),
		Status:     StatusActive,
	}
	m.store.insertReservation(r)

	return r, nil
}

// Get retrieves a single reservation by ID.
// Returns ErrRecordNotFound if no reservation with the given ID exists.
func (m ReservationModel) Get(id uuid.UUID) (*Reservation, error) {
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()

	r, ok := m.store.reservations[id]
	if !ok {
		return nil, ErrRecordNotFound
	}

	clone := *r
	return &clone, nil
}

// List returns reservations in insertion order. Pass uuid.Nil to list every
// reservation, or a holder ID to list only that holder's.
func (m ReservationModel) List(holderID uuid.UUID) []*Reservation {
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()

	reservations := []*Reservation{}
	for _, id := range m.store.reservationOrder {
		r := m.store.reservations[id]
		if holderID != uuid.Nil && r.HolderID != holderID {
			continue
		}
		clone := *r
		reservations = append(reservations, &clone)
	}
	return reservations
}

// Cancel moves a reservation into the cancelled state and records the time.
// Returns ErrRecordNotFound if the reservation does not exist, or
// ErrAlreadyReturned if the copy already came back.
//
// Cancelling an already-cancelled reservation succeeds and stamps a fresh
// CancelledAt. The guard only rejects returned reservations; this matches
// the behavior clients of the original service observe, so it stays.
func (m ReservationModel) Cancel(id uuid.UUID) (*Reservation, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	r, ok := m.store.reservations[id]
	if !ok {
		return nil, ErrRecordNotFound
	}

	if r.Status == StatusReturned {
		return nil, ErrAlreadyReturned
	}

	now := time.Now()
	r.Status = StatusCancelled
	r.CancelledAt = &now

	clone := *r
	return &clone, nil
}

// Return moves a reservation into the returned state and records the time.
// Returns ErrRecordNotFound if the reservation does not exist,
// ErrAlreadyCancelled if it was cancelled, or ErrAlreadyReturned if the copy
// already came back.
func (m ReservationModel) Return(id uuid.UUID) (*Reservation, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	r, ok := m.store.reservations[id]
	if !ok {
		return nil, ErrRecordNotFound
	}

	switch r.Status {
	case StatusCancelled:
		return nil, ErrAlreadyCancelled
	case StatusReturned:
		return nil, ErrAlreadyReturned
	}

	now := time.Now()
	r.Status = StatusReturned
	r.ReturnedAt = &now

	clone := *r
	return &clone, nil
}
