package main

import (
	"net/http"
	"time"

	"github.com/myrjola/fitlog/internal/workout"
)

type strengthWorkoutRequest struct {
	Exercise     string    `json:"exercise"`
	Sets         int       `json:"sets"`
	Reps         int       `json:"reps"`
	MuscleGroups []string  `json:"muscleGroups"`
	Date         time.Time `json:"date"`
}

// strengthWorkoutPOST logs a strength workout. A zero date means now.
func (app *application) strengthWorkoutPOST(w http.ResponseWriter, r *http.Request) {
	var req strengthWorkoutRequest
	if err := readJSON(r, &req); err != nil {
		app.badRequest(w, err)
		return
	}

	created, err := app.workoutService.LogStrength(r.Context(), workout.Record{ //nolint:exhaustruct // cardio fields unset.
		Exercise:     req.Exercise,
		Sets:         req.Sets,
		Reps:         req.Reps,
		MuscleGroups: req.MuscleGroups,
		Date:         req.Date,
	})
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

type cardioWorkoutRequest struct {
	Exercise        string    `json:"exercise"`
	DurationMinutes float64   `json:"duration"`
	SpeedKmh        *float64  `json:"speed"`
	InclinePercent  *int      `json:"incline"`
	DistanceKm      *float64  `json:"distance"`
	Date            time.Time `json:"date"`
}

type cardioWorkoutResponse struct {
	workout.Record
	Calories float64 `json:"calories"`
}

// cardioWorkoutPOST logs a cardio activity and reports its estimated energy
// expenditure.
func (app *application) cardioWorkoutPOST(w http.ResponseWriter, r *http.Request) {
	var req cardioWorkoutRequest
	if err := readJSON(r, &req); err != nil {
		app.badRequest(w, err)
		return
	}

	created, err := app.workoutService.LogCardio(r.Context(), workout.Record{ //nolint:exhaustruct // strength fields unset.
		Exercise:        req.Exercise,
		DurationMinutes: req.DurationMinutes,
		SpeedKmh:        req.SpeedKmh,
		InclinePercent:  req.InclinePercent,
		DistanceKm:      req.DistanceKm,
		Date:            req.Date,
	})
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, cardioWorkoutResponse{
		Record:   created,
		Calories: workout.EstimateCalories(created, app.bodyWeightKg),
	})
}
