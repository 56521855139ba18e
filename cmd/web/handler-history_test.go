package main

import (
	"net/http"
	"testing"

	"github.com/myrjola/fitlog/internal/e2etest"
	"github.com/myrjola/fitlog/internal/testhelpers"
	"github.com/myrjola/fitlog/internal/workout"
)

func Test_application_deleteWorkouts(t *testing.T) {
	ctx := t.Context()
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), testLookupEnv, run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}
	client := server.Client()

	var first, second workout.Record
	if _, err = client.PostJSON(ctx, "/api/workouts/strength", map[string]any{
		"exercise": "squat", "sets": 3, "reps": 8,
	}, &first); err != nil {
		t.Fatalf("Failed to log first workout: %v", err)
	}
	if _, err = client.PostJSON(ctx, "/api/workouts/strength", map[string]any{
		"exercise": "deadlift", "sets": 3, "reps": 5,
	}, &second); err != nil {
		t.Fatalf("Failed to log second workout: %v", err)
	}

	// Delete one real record together with an id that does not exist. The
	// batch must run to the end and report only the bogus id.
	var resp struct {
		Failures []workout.DeleteFailure `json:"failures"`
	}
	status, err := client.PostJSON(ctx, "/api/workouts/delete", map[string]any{
		"ids": []string{first.ID, "no-such-id"},
	}, &resp)
	if err != nil {
		t.Fatalf("Failed to delete workouts: %v", err)
	}
	if status != http.StatusOK {
		t.Fatalf("status = %d, want %d", status, http.StatusOK)
	}
	if len(resp.Failures) != 1 || resp.Failures[0].ID != "no-such-id" {
		t.Errorf("failures = %+v, want exactly the bogus id", resp.Failures)
	}

	var history workout.History
	if _, err = client.GetJSON(ctx, "/api/workouts", &history); err != nil {
		t.Fatalf("Failed to get workouts: %v", err)
	}
	if len(history.Strength) != 1 || len(history.Strength[0].Records) != 1 {
		t.Fatalf("expected one surviving record, got %+v", history.Strength)
	}
	if got := history.Strength[0].Records[0].ID; got != second.ID {
		t.Errorf("surviving record id = %q, want %q", got, second.ID)
	}
}

func Test_application_workoutsGETRejectsBadWindow(t *testing.T) {
	ctx := t.Context()
	server, err := e2etest.StartServer(t, testhelpers.NewWriter(t), testLookupEnv, run)
	if err != nil {
		t.Fatalf("Failed to start server: %v", err)
	}
	client := server.Client()

	var resp struct {
		Error string `json:"error"`
	}
	status, err := client.GetJSON(ctx, "/api/workouts?window=fortnightly", &resp)
	if err != nil {
		t.Fatalf("Failed to get workouts: %v", err)
	}
	if status != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", status, http.StatusBadRequest)
	}
	if resp.Error == "" {
		t.Error("expected an error message in the response")
	}
}
