package main

import (
	"net/http"
)

type suggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
	Message     string   `json:"message,omitempty"`
}

// suggestionsGET proposes exercises for underworked muscle groups.
func (app *application) suggestionsGET(w http.ResponseWriter, r *http.Request) {
	suggestions, err := app.workoutService.Suggestions(r.Context())
	if err != nil {
		app.serviceError(w, r, err)
		return
	}

	resp := suggestionsResponse{Suggestions: suggestions, Message: ""}
	if len(suggestions) == 0 {
		resp.Message = "all muscle groups are well-worked"
	}
	writeJSON(w, http.StatusOK, resp)
}
