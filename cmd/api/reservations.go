// cmd/api/reservations.go
// This file contains the HTTP request handlers for the reservations resource.
package main

import (
	"errors"
	"net/http"

	"github.com/jaupventur/bertoti/internal/data"
	"github.com/jaupventur/bertoti/internal/validator"
)

// createReservationHandler handles POST /v1/books/:id/reservations.
// It claims one copy of the book for the holder in the request body.
// Responds 404 if the book does not exist and 409 when every copy is
// already claimed by an active reservation.
func (app *applicationDependencies) createReservationHandler(w http.ResponseWriter, r *http.Request) {
	bookID, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	var input data.ReservationInput
	err = app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	data.ValidateReservationInput(v, &input)
	if !v.Valid() {
		app.failedValidationResponse(w, r, v.Errors)
		return
	}

	reservation, err := app.models.Reservations.Insert(bookID, input.HolderID, input.HolderName)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, data.ErrNoCopiesAvailable):
			app.conflictResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusCreated, envelope{"reservation": reservation}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// listReservationsHandler handles GET /v1/reservations.
// The optional holder_id query parameter narrows the list to one holder;
// without it every reservation is returned, terminal ones included, since
// reservations are kept as history.
func (app *applicationDependencies) listReservationsHandler(w http.ResponseWriter, r *http.Request) {
	holderID, err := app.readUUID(r.URL.Query(), "holder_id")
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	reservations := app.models.Reservations.List(holderID)

	err = app.writeJSON(w, http.StatusOK, envelope{"reservations": reservations}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// showReservationHandler handles GET /v1/reservations/:id.
// Responds 404 if no reservation with that ID exists.
func (app *applicationDependencies) showReservationHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	reservation, err := app.models.Reservations.Get(id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"reservation": reservation}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// cancelReservationHandler handles PUT /v1/reservations/:id/cancel.
// Responds 404 if the reservation does not exist and 409 if the copy was
// already returned.
func (app *applicationDependencies) cancelReservationHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	reservation, err := app.models.Reservations.Cancel(id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, data.ErrAlreadyReturned):
			app.conflictResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"reservation": reservation}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// returnReservationHandler handles PUT /v1/reservations/:id/return.
// Responds 404 if the reservation does not exist and 409 if it was already
// cancelled or already returned.
func (app *applicationDependencies) returnReservationHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	reservation, err := app.models.Reservations.Return(id)
	if err != nil {
		switch {
		case errors.Is(err, data.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, data.ErrAlreadyCancelled), errors.Is(err, data.ErrAlreadyReturned):
			app.conflictResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"reservation": reservation}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
