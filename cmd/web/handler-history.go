package main

import (
	"net/http"
	"time"

	"github.com/myrjola/fitlog/internal/errors"
	"github.com/myrjola/fitlog/internal/workout"
)

// workoutsGET serves the workout history narrowed to the requested time
// window. The window defaults to all; a custom window reads its bounds from
// the start and end query parameters as YYYY-MM-DD dates.
func (app *application) workoutsGET(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	windowParam := query.Get("window")
	if windowParam == "" {
		windowParam = string(workout.WindowAll)
	}
	window, err := workout.ParseWindow(windowParam)
	if err != nil {
		app.badRequest(w, err)
		return
	}

	var start, end time.Time
	if startParam := query.Get("start"); startParam != "" {
		if start, err = time.ParseInLocation(time.DateOnly, startParam, time.Local); err != nil {
			app.badRequest(w, errors.Wrap(err, "parse start date"))
			return
		}
	}
	if endParam := query.Get("end"); endParam != "" {
		if end, err = time.ParseInLocation(time.DateOnly, endParam, time.Local); err != nil {
			app.badRequest(w, errors.Wrap(err, "parse end date"))
			return
		}
	}

	history, err := app.workoutService.History(r.Context(), window, start, end)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, history)
}

type deleteWorkoutsRequest struct {
	IDs []string `json:"ids"`
}

type deleteWorkoutsResponse struct {
	Failures []workout.DeleteFailure `json:"failures"`
}

// workoutsDeletePOST deletes the given records. The batch always runs to the
// end; the response names every identifier that could not be removed.
func (app *application) workoutsDeletePOST(w http.ResponseWriter, r *http.Request) {
	var req deleteWorkoutsRequest
	if err := readJSON(r, &req); err != nil {
		app.badRequest(w, err)
		return
	}
	if len(req.IDs) == 0 {
		app.badRequest(w, errors.New("ids must not be empty"))
		return
	}

	failures, err := app.workoutService.RemoveAll(r.Context(), req.IDs)
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, deleteWorkoutsResponse{Failures: failures})
}
