package data

import (
	"testing"

	"github.com/google/uuid"
	"pgregory.net/rapid"
)

// TestNoOverbookingInvariant drives the models with random operation
// sequences and checks after every step that no book ever has more active
// reservations than copies.
func TestNoOverbookingInvariant(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		models := NewModels()

		var bookIDs []uuid.UUID
		var reservationIDs []uuid.UUID

		pickBook := func(t *rapid.T) uuid.UUID {
			if len(bookIDs) == 0 || rapid.Bool().Draw(t, "unknownBook") {
				return uuid.New()
			}
			return rapid.SampledFrom(bookIDs).Draw(t, "bookID")
		}
		pickReservation := func(t *rapid.T) uuid.UUID {
			if len(reservationIDs) == 0 || rapid.Bool().Draw(t, "unknownReservation") {
				return uuid.New()
			}
			return rapid.SampledFrom(reservationIDs).Draw(t, "reservationID")
		}

		steps := rapid.IntRange(1, 60).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			switch rapid.IntRange(0, 4).Draw(t, "op") {
			case 0: // add a book
				copies := rapid.IntRange(0, 3).Draw(t, "copies")
				book := models.Books.Insert(&BookInput{Title: "Book", TotalCopies: copies})
				bookIDs = append(bookIDs, book.ID)
			case 1: // reserve
				r, err := models.Reservations.Insert(pickBook(t), uuid.New(), "Holder")
				if err == nil {
					reservationIDs = append(reservationIDs, r.ID)
				}
			case 2: // cancel
				models.Reservations.Cancel(pickReservation(t))
			case 3: // return
				models.Reservations.Return(pickReservation(t))
			case 4: // delete a book
				models.Books.Delete(pickBook(t))
			}

			active := map[uuid.UUID]int{}
			for _, r := range models.Reservations.List(uuid.Nil) {
				if r.Status == StatusActive {
					active[r.BookID]++
				}
			}
			for _, book := range models.Books.Search("", "", "") {
				if active[book.ID] > book.TotalCopies {
					t.Fatalf("book %s holds %d active reservations with only %d copies",
						book.ID, active[book.ID], book.TotalCopies)
				}
			}
		}
	})
}
