package main

import (
	"net/http"
)

// weeklySummaryGET serves the muscle-activation summary of the current
// calendar week.
func (app *application) weeklySummaryGET(w http.ResponseWriter, r *http.Request) {
	summary, err := app.workoutService.WeeklySummary(r.Context())
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}
