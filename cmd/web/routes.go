package main

import (
	"net/http"
)

func (app *application) routes() *http.ServeMux {
	mux := http.NewServeMux()

	api := func(next http.Handler) http.Handler {
		return app.recoverPanic(app.logAndTraceRequest(secureHeaders(app.crossOriginProtection(
			app.timeout(next)))))
	}

	mux.Handle("POST /api/workouts/strength", api(http.HandlerFunc(app.strengthWorkoutPOST)))
	mux.Handle("POST /api/workouts/cardio", api(http.HandlerFunc(app.cardioWorkoutPOST)))
	mux.Handle("GET /api/workouts", api(http.HandlerFunc(app.workoutsGET)))
	mux.Handle("POST /api/workouts/delete", api(http.HandlerFunc(app.workoutsDeletePOST)))

	mux.Handle("GET /api/summary/weekly", api(http.HandlerFunc(app.weeklySummaryGET)))
	mux.Handle("GET /api/suggestions", api(http.HandlerFunc(app.suggestionsGET)))
	mux.Handle("GET /api/exercises", api(http.HandlerFunc(app.exercisesGET)))

	mux.Handle("GET /api/healthy", api(http.HandlerFunc(app.healthy)))

	return mux
}
