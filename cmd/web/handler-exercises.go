package main

import (
	"net/http"
)

type exercisesResponse struct {
	Exercises map[string][]string `json:"exercises"`
	Muscles   []string            `json:"muscles"`
}

// exercisesGET serves the exercise catalog with the muscle groups each
// exercise targets.
func (app *application) exercisesGET(w http.ResponseWriter, _ *http.Request) {
	catalog := app.workoutService.Catalog()

	exercises := make(map[string][]string)
	for _, name := range catalog.Exercises() {
		muscles, _ := catalog.Lookup(name)
		exercises[name] = muscles
	}

	writeJSON(w, http.StatusOK, exercisesResponse{
		Exercises: exercises,
		Muscles:   catalog.AllMuscleGroups(),
	})
}
