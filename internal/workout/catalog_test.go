package workout_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/myrjola/fitlog/internal/workout"
)

func TestCatalogLookupIsCaseInsensitive(t *testing.T) {
	catalog := workout.DefaultCatalog()

	for _, name := range []string{"bench press", "Bench Press", "BENCH PRESS"} {
		muscles, ok := catalog.Lookup(name)
		if !ok {
			t.Fatalf("Lookup(%q) not found", name)
		}
		want := []string{"chest", "triceps", "front-deltoids"}
		if diff := cmp.Diff(want, muscles); diff != "" {
			t.Errorf("Lookup(%q) mismatch (-want +got):\n%s", name, diff)
		}
	}

	if _, ok := catalog.Lookup("underwater basket weaving"); ok {
		t.Error("expected unknown exercise to report not found")
	}
}

func TestCatalogAllMuscleGroups(t *testing.T) {
	catalog := workout.NewCatalog(map[string][]string{
		"Bench Press": {"chest", "triceps"},
		"tricep dip":  {"triceps", "chest"},
		"plank":       {"abs"},
	})

	want := []string{"abs", "chest", "triceps"}
	if diff := cmp.Diff(want, catalog.AllMuscleGroups()); diff != "" {
		t.Errorf("AllMuscleGroups() mismatch (-want +got):\n%s", diff)
	}

	wantNames := []string{"bench press", "plank", "tricep dip"}
	if diff := cmp.Diff(wantNames, catalog.Exercises()); diff != "" {
		t.Errorf("Exercises() mismatch (-want +got):\n%s", diff)
	}
}

func TestCatalogCopiesEntries(t *testing.T) {
	entries := map[string][]string{"row": {"upper-back", "biceps"}}
	catalog := workout.NewCatalog(entries)

	entries["row"][0] = "mutated"
	muscles, _ := catalog.Lookup("row")
	if muscles[0] != "upper-back" {
		t.Errorf("catalog leaked the caller's slice, got %v", muscles)
	}

	muscles[0] = "mutated"
	again, _ := catalog.Lookup("row")
	if again[0] != "upper-back" {
		t.Errorf("Lookup leaked internal state, got %v", again)
	}
}
