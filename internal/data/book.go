// Package data provides the data models and in-memory store for the
// library reservation system.
package data

import (
	"time"

	"github.com/google/uuid"

	"github.com/jaupventur/bertoti/internal/validator"
)

// Book represents a single catalog entry: a lendable work with a finite
// number of copies.
type Book struct {
	ID          uuid.UUID `json:"id"`           // Unique identifier assigned at creation
	Title       string    `json:"title"`        // Title of the book
	Author      string    `json:"author"`       // Author of the book
	Genre       string    `json:"genre"`        // Genre or category label
	PublishedAt time.Time `json:"published_at"` // Original publication date
	TotalCopies int       `json:"total_copies"` // Maximum number of simultaneous active reservations
}

// BookInput holds the fields a client supplies when creating or replacing a
// book. The ID is never taken from the payload: on create it is generated,
// on update it is forced to the value in the URL.
type BookInput struct {
	ID          uuid.UUID `json:"id"` // Accepted so round-tripped records decode, but always ignored
	Title       string    `json:"title"`
	Author      string    `json:"author"`
	Genre       string    `json:"genre"`
	PublishedAt time.Time `json:"published_at"`
	TotalCopies int       `json:"total_copies"`
}

// ValidateBookInput records field-level validation failures on v.
// A negative copy count would make the capacity check meaningless, so it is
// rejected before the record ever reaches the store.
func ValidateBookInput(v *validator.Validator, input *BookInput) {
	v.Check(input.Title != "", "title", "must be provided")
	v.Check(input.TotalCopies >= 0, "total_copies", "must not be negative")
}
