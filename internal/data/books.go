package data

import (
	"strings"

	"github.com/google/uuid"
)

// BookModel provides the catalog operations: create, read, search, update
// and delete of books. Deletion is gated on the reservation history so a
// book with live claims cannot disappear from under them.
type BookModel struct {
	store *store
}

// Load bulk-inserts seed books, assigning each a fresh ID. It is meant to be
// called once at startup, before the server accepts requests; the assigned
// IDs are written back into the given structs.
func (m BookModel) Load(books []*Book) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	for _, book := range books {
		book.ID = uuid.New()
		m.store.insertBook(book)
	}
}

// Insert adds a new book built from input to the catalog and returns it.
// The ID is generated here and cannot be chosen by the caller.
func (m BookModel) Insert(input *BookInput) *Book {
	book := &Book{
		ID:          uuid.New(),
		Title:       input.Title,
		Author:      input.Author,
		Genre:       input.Genre,
		PublishedAt: input.PublishedAt,
		TotalCopies: input.TotalCopies,
	}

	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	m.store.insertBook(book)
	return book
}

// Get retrieves a single book by ID.
// Returns ErrRecordNotFound if no book with the given ID exists.
func (m BookModel) Get(id uuid.UUID) (*Book, error) {
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()

	book, ok := m.store.books[id]
	if !ok {
		return nil, ErrRecordNotFound
	}

	clone := *book
	return &clone, nil
}

// Search returns every book matching all of the provided filters, in
// insertion order. Each filter is a case-insensitive substring match on the
// corresponding field; an empty filter matches everything, so calling Search
// with three empty strings lists the whole catalog.
func (m BookModel) Search(title, author, genre string) []*Book {
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()

	matches := []*Book{}
	for _, id := range m.store.bookOrder {
		book := m.store.books[id]
		if !matchField(book.Title, title) ||
			!matchField(book.Author, author) ||
			!matchField(book.Genre, genre) {
			continue
		}
		clone := *book
		matches = append(matches, &clone)
	}
	return matches
}

// matchField reports whether value contains filter, ignoring case.
// An empty filter always matches.
func matchField(value, filter string) bool {
	if filter == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(filter))
}

// Update replaces every field of the book except its ID, which keeps the
// value from the URL regardless of what the payload carried.
// Returns ErrRecordNotFound if no book with the given ID exists.
func (m BookModel) Update(id uuid.UUID, input *BookInput) (*Book, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	if _, ok := m.store.books[id]; !ok {
		return nil, ErrRecordNotFound
	}

	book := &Book{
		ID:          id,
		Title:       input.Title,
		Author:      input.Author,
		Genre:       input.Genre,
		PublishedAt: input.PublishedAt,
		TotalCopies: input.TotalCopies,
	}
	clone := *book
	m.store.books[id] = &clone

	return book, nil
}

// Delete removes the book with the given ID and returns the removed record.
// Returns ErrRecordNotFound if the book does not exist, or
// ErrReservationsExist while any non-cancelled reservation references it.
// Returned reservations intentionally block deletion too; see
// hasBlockingReservations.
func (m BookModel) Delete(id uuid.UUID) (*Book, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	book, ok := m.store.books[id]
	if !ok {
		return nil, ErrRecordNotFound
	}

	if m.store.hasBlockingReservations(id) {
		return nil, ErrReservationsExist
	}

	clone := *book
	m.store.removeBook(id)
	return &clone, nil
}
