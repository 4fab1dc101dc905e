package data

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservationInsert(t *testing.T) {
	models := NewModels()
	book := models.Books.Insert(testBookInput("1984", "George Orwell", "Ficção Científica", 4))

	holderID := uuid.New()
	before := time.Now()
	r, err := models.Reservations.Insert(book.ID, holderID, "Winston Smith")
	after := time.Now()

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, r.ID)
	assert.Equal(t, book.ID, r.BookID)
	assert.Equal(t, holderID, r.HolderID)
	assert.Equal(t, "Winston Smith", r.HolderName)
	assert.Equal(t, StatusActive, r.Status)
	assert.Nil(t, r.CancelledAt)
	assert.Nil(t, r.ReturnedAt)

	assert.False(t, r.CreatedAt.Before(before))
	assert.False(t, r.CreatedAt.After(after))
	assert.Equal(t, r.CreatedAt.Add(7*24*time.Hour), r.DueAt)
}

func TestReservationInsertUnknownBook(t *testing.T) {
	models := NewModels()

	_, err := models.Reservations.Insert(uuid.New(), uuid.New(), "Winston Smith")
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestReservationCapacity(t *testing.T) {
	models := NewModels()
	book := models.Books.Insert(testBookInput("1984", "George Orwell", "Ficção Científica", 4))

	reservations := make([]*Reservation, 0, 4)
	for i := 0; i < 4; i++ {
		r, err := models.Reservations.Insert(book.ID, uuid.New(), "Holder")
		require.NoError(t, err)
		reservations = append(reservations, r)
	}

	// The fifth claim must be refused: all copies are taken.
	_, err := models.Reservations.Insert(book.ID, uuid.New(), "Latecomer")
	assert.ErrorIs(t, err, ErrNoCopiesAvailable)

	// Cancelling one reservation frees exactly one copy.
	_, err = models.Reservations.Cancel(reservations[0].ID)
	require.NoError(t, err)

	_, err = models.Reservations.Insert(book.ID, uuid.New(), "Latecomer")
	assert.NoError(t, err)

	_, err = models.Reservations.Insert(book.ID, uuid.New(), "Too late")
	assert.ErrorIs(t, err, ErrNoCopiesAvailable)
}

func TestReservationReturnFreesCopy(t *testing.T) {
	models := NewModels()
	book := models.Books.Insert(testBookInput("Crime e Castigo", "Fiódor Dostoiévski", "Romance", 1))

	r, err := models.Reservations.Insert(book.ID, uuid.New(), "Raskolnikov")
	require.NoError(t, err)

	_, err = models.Reservations.Insert(book.ID, uuid.New(), "Sonia")
	assert.ErrorIs(t, err, ErrNoCopiesAvailable)

	_, err = models.Reservations.Return(r.ID)
	require.NoError(t, err)

	_, err = models.Reservations.Insert(book.ID, uuid.New(), "Sonia")
	assert.NoError(t, err)
}

func TestReservationZeroCopies(t *testing.T) {
	models := NewModels()
	book := models.Books.Insert(testBookInput("Manuscrito Raro", "Anônimo", "História", 0))

	_, err := models.Reservations.Insert(book.ID, uuid.New(), "Researcher")
	assert.ErrorIs(t, err, ErrNoCopiesAvailable)
}

func TestReservationCancel(t *testing.T) {
	models := NewModels()
	book := models.Books.Insert(testBookInput("1984", "George Orwell", "Ficção Científica", 4))

	r, err := models.Reservations.Insert(book.ID, uuid.New(), "Winston Smith")
	require.NoError(t, err)

	cancelled, err := models.Reservations.Cancel(r.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, cancelled.Status)
	require.NotNil(t, cancelled.CancelledAt)
	assert.Nil(t, cancelled.ReturnedAt)

	// Cancelling again succeeds: the guard only rejects returned
	// reservations. This mirrors what deployed clients already rely on.
	again, err := models.Reservations.Cancel(r.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, again.Status)
}

func TestReservationCancelAfterReturn(t *testing.T) {
	models := NewModels()
	book := models.Books.Insert(testBookInput("1984", "George Orwell", "Ficção Científica", 4))

	r, err := models.Reservations.Insert(book.ID, uuid.New(), "Winston Smith")
	require.NoError(t, err)

	returned, err := models.Reservations.Return(r.ID)
	require.NoError(t, err)
	require.NotNil(t, returned.ReturnedAt)

	_, err = models.Reservations.Cancel(r.ID)
	assert.ErrorIs(t, err, ErrAlreadyReturned)
}

func TestReservationReturnGuards(t *testing.T) {
	models := NewModels()
	book := models.Books.Insert(testBookInput("1984", "George Orwell", "Ficção Científica", 4))

	cancelled, err := models.Reservations.Insert(book.ID, uuid.New(), "Winston Smith")
	require.NoError(t, err)
	_, err = models.Reservations.Cancel(cancelled.ID)
	require.NoError(t, err)

	_, err = models.Reservations.Return(cancelled.ID)
	assert.ErrorIs(t, err, ErrAlreadyCancelled)

	returned, err := models.Reservations.Insert(book.ID, uuid.New(), "Julia")
	require.NoError(t, err)
	_, err = models.Reservations.Return(returned.ID)
	require.NoError(t, err)

	_, err = models.Reservations.Return(returned.ID)
	assert.ErrorIs(t, err, ErrAlreadyReturned)
}

func TestReservationUnknownID(t *testing.T) {
	models := NewModels()

	_, err := models.Reservations.Get(uuid.New())
	assert.ErrorIs(t, err, ErrRecordNotFound)

	_, err = models.Reservations.Cancel(uuid.New())
	assert.ErrorIs(t, err, ErrRecordNotFound)

	_, err = models.Reservations.Return(uuid.New())
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestReservationList(t *testing.T) {
	models := NewModels()
	book := models.Books.Insert(testBookInput("1984", "George Orwell", "Ficção Científica", 4))

	winston := uuid.New()
	julia := uuid.New()

	first, err := models.Reservations.Insert(book.ID, winston, "Winston Smith")
	require.NoError(t, err)
	second, err := models.Reservations.Insert(book.ID, julia, "Julia")
	require.NoError(t, err)
	third, err := models.Reservations.Insert(book.ID, winston, "Winston Smith")
	require.NoError(t, err)

	// Terminal reservations stay listed: they are history, not garbage.
	_, err = models.Reservations.Cancel(first.ID)
	require.NoError(t, err)

	all := models.Reservations.List(uuid.Nil)
	require.Len(t, all, 3)
	assert.Equal(t, []uuid.UUID{first.ID, second.ID, third.ID},
		[]uuid.UUID{all[0].ID, all[1].ID, all[2].ID})

	mine := models.Reservations.List(winston)
	require.Len(t, mine, 2)
	assert.Equal(t, first.ID, mine[0].ID)
	assert.Equal(t, third.ID, mine[1].ID)
}

// TestReservationConcurrentInsert hammers one book from many goroutines and
// checks that exactly TotalCopies claims succeed. Run with -race.
func TestReservationConcurrentInsert(t *testing.T) {
	models := NewModels()
	book := models.Books.Insert(testBookInput("1984", "George Orwell", "Ficção Científica", 4))

	const attempts = 32

	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := models.Reservations.Insert(book.ID, uuid.New(), "Holder")
			errs[i] = err
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ErrNoCopiesAvailable)
		}
	}
	assert.Equal(t, book.TotalCopies, succeeded)

	active := 0
	for _, r := range models.Reservations.List(uuid.Nil) {
		if r.Status == StatusActive {
			active++
		}
	}
	assert.Equal(t, book.TotalCopies, active)
}

// TestReservationConcurrentDelete races book deletion against reservation
// creation: whatever interleaving happens, a deleted book must not end up
// with a live reservation pointing at it.
func TestReservationConcurrentDelete(t *testing.T) {
	for i := 0; i < 50; i++ {
		models := NewModels()
		book := models.Books.Insert(testBookInput("Dom Quixote", "Miguel de Cervantes", "Romance", 1))

		var wg sync.WaitGroup
		var insertErr, deleteErr error
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, insertErr = models.Reservations.Insert(book.ID, uuid.New(), "Sancho")
		}()
		go func() {
			defer wg.Done()
			_, deleteErr = models.Books.Delete(book.ID)
		}()
		wg.Wait()

		if deleteErr == nil {
			// The book is gone; the reservation must have lost the race
			// one way or the other.
			if insertErr == nil {
				t.Fatal("book deleted while holding an active reservation")
			}
		} else {
			assert.ErrorIs(t, deleteErr, ErrReservationsExist)
			assert.NoError(t, insertErr)
		}
	}
}
