package data

import (
	"sync"

	"github.com/google/uuid"
)

// store holds every book and reservation record for the lifetime of the
// process. It is the only owner of those records: callers always receive
// copies, never pointers into the maps, so nothing outside the store can
// mutate shared state without holding the lock.
//
// A single RWMutex guards everything. Reads (get, search, list) take the
// read lock; every mutation holds the write lock across its whole
// check-then-act section. That makes "count active reservations + insert"
// and "check blocking reservations + delete" atomic, which is what keeps an
// over-committed book from ever being observable.
type store struct {
	mu sync.RWMutex

	books     map[uuid.UUID]*Book
	bookOrder []uuid.UUID // Insertion order, drives list/search iteration

	reservations     map[uuid.UUID]*Reservation
	reservationOrder []uuid.UUID
}

func newStore() *store {
	return &store{
		books:        make(map[uuid.UUID]*Book),
		reservations: make(map[uuid.UUID]*Reservation),
	}
}

// activeCount reports how many reservations currently claim a copy of the
// given book. Callers must hold the lock.
func (st *store) activeCount(bookID uuid.UUID) int {
	n := 0
	for _, r := range st.reservations {
		if r.BookID == bookID && r.Status == StatusActive {
			n++
		}
	}
	return n
}

// hasBlockingReservations reports whether any reservation for the book
// blocks its deletion. Returned reservations block as well as active ones:
// only a cancelled reservation frees the book. Callers must hold the lock.
func (st *store) hasBlockingReservations(bookID uuid.UUID) bool {
	for _, r := range st.reservations {
		if r.BookID == bookID && r.Status != StatusCancelled {
			return true
		}
	}
	return false
}

// insertBook adds a copy of book to the store, preserving insertion order.
// Callers must hold the write lock.
func (st *store) insertBook(book *Book) {
	clone := *book
	st.books[book.ID] = &clone
	st.bookOrder = append(st.bookOrder, book.ID)
}

// removeBook deletes the book from both the map and the order slice.
// Callers must hold the write lock.
func (st *store) removeBook(id uuid.UUID) {
	delete(st.books, id)
	for i, bid := range st.bookOrder {
		if bid == id {
			st.bookOrder = append(st.bookOrder[:i], st.bookOrder[i+1:]...)
			break
		}
	}
}

// insertReservation adds a copy of r to the store, preserving insertion
// order. Callers must hold the write lock.
func (st *store) insertReservation(r *Reservation) {
	clone := *r
	st.reservations[r.ID] = &clone
	st.reservationOrder = append(st.reservationOrder, r.ID)
}
