package main

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/myrjola/fitlog/internal/errors"
	"github.com/myrjola/fitlog/internal/workout"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// readJSON decodes the request body into dst. Unknown fields are rejected so
// that client typos surface as errors instead of silently dropped data.
func readJSON(r *http.Request, dst any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return errors.Wrap(err, "decode request body")
	}
	return nil
}

func (app *application) serverError(w http.ResponseWriter, r *http.Request, err error) {
	app.logger.LogAttrs(r.Context(), slog.LevelError, "server error", errors.SlogError(err))
	writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}

// serviceError maps the workout error taxonomy to HTTP status codes.
// Validation failures carry their message to the client; everything else
// stays opaque.
func (app *application) serviceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, workout.ErrValidation):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	case errors.Is(err, workout.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "workout not found"})
	default:
		app.serverError(w, r, err)
	}
}

func (app *application) badRequest(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
}
