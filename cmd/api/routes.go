// cmd/api/routes.go
package main

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// routes registers all HTTP endpoints and returns the configured router
// wrapped in the middleware chain (outermost → innermost):
//
//	recoverPanic → enableCORS → rateLimit → router
//
// Current endpoints:
//
//	POST   /v1/books                        – create a new book
//	GET    /v1/books                        – search books (title/author/genre filters)
//	GET    /v1/books/:id                    – retrieve a single book by ID
//	PUT    /v1/books/:id                    – replace an existing book
//	DELETE /v1/books/:id                    – delete a book with no blocking reservations
//	POST   /v1/books/:id/reservations       – reserve a copy of a book
//	GET    /v1/reservations                 – list reservations (holder_id filter)
//	GET    /v1/reservations/:id             – retrieve a single reservation by ID
//	PUT    /v1/reservations/:id/cancel      – cancel a reservation
//	PUT    /v1/reservations/:id/return      – return a reserved copy
func (app *applicationDependencies) routes() http.Handler {
	router := httprouter.New()

	// Override the default httprouter error handlers to return JSON responses.
	router.NotFound = http.HandlerFunc(app.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedResponse)

	// Book catalog routes
	router.HandlerFunc(http.MethodPost, "/v1/books", app.createBookHandler)
	router.HandlerFunc(http.MethodGet, "/v1/books", app.listBooksHandler)
	router.HandlerFunc(http.MethodGet, "/v1/books/:id", app.showBookHandler)
	router.HandlerFunc(http.MethodPut, "/v1/books/:id", app.updateBookHandler)
	router.HandlerFunc(http.MethodDelete, "/v1/books/:id", app.deleteBookHandler)

	// Reservation routes
	router.HandlerFunc(http.MethodPost, "/v1/books/:id/reservations", app.createReservationHandler)
	router.HandlerFunc(http.MethodGet, "/v1/reservations", app.listReservationsHandler)
	router.HandlerFunc(http.MethodGet, "/v1/reservations/:id", app.showReservationHandler)
	router.HandlerFunc(http.MethodPut, "/v1/reservations/:id/cancel", app.cancelReservationHandler)
	router.HandlerFunc(http.MethodPut, "/v1/reservations/:id/return", app.returnReservationHandler)

	// recoverPanic is outermost so it catches panics from the other
	// middlewares and the router alike.
	return app.recoverPanic(app.enableCORS(app.rateLimit(router)))
}
