package workout_test

import (
	"fmt"
	"testing"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/myrjola/fitlog/internal/errors"
	"github.com/myrjola/fitlog/internal/ptr"
	"github.com/myrjola/fitlog/internal/sqlite"
	"github.com/myrjola/fitlog/internal/testhelpers"
	"github.com/myrjola/fitlog/internal/workout"
)

func newTestService(t *testing.T) *workout.Service {
	t.Helper()
	ctx := t.Context()
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))

	db, err := sqlite.NewDatabase(ctx, ":memory:", logger)
	if err != nil {
		t.Fatalf("create test database: %v", err)
	}
	t.Cleanup(func() {
		if err = db.Close(); err != nil {
			t.Errorf("close database: %v", err)
		}
	})

	return workout.NewService(db, workout.DefaultCatalog(), logger)
}

func TestLogStrengthRoundTrip(t *testing.T) {
	ctx := t.Context()
	svc := newTestService(t)

	submitted := workout.Record{
		Date:     time.Date(2026, time.August, 20, 18, 0, 0, 0, time.UTC),
		Exercise: "Bench Press",
		Sets:     5,
		Reps:     10,
	}
	created, err := svc.LogStrength(ctx, submitted)
	if err != nil {
		t.Fatalf("LogStrength: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected a freshly assigned id")
	}
	// Known exercises get their muscle groups from the catalog.
	wantMuscles := []string{"chest", "triceps", "front-deltoids"}
	if diff := cmp.Diff(wantMuscles, created.MuscleGroups); diff != "" {
		t.Errorf("muscle groups mismatch (-want +got):\n%s", diff)
	}

	records, err := svc.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if diff := cmp.Diff(created, records[0]); diff != "" {
		t.Errorf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLogCardioRoundTrip(t *testing.T) {
	ctx := t.Context()
	svc := newTestService(t)

	created, err := svc.LogCardio(ctx, workout.Record{
		DurationMinutes: 30,
		SpeedKmh:        ptr.Ref(8.5),
		InclinePercent:  ptr.Ref(2),
		DistanceKm:      ptr.Ref(4.25),
	})
	if err != nil {
		t.Fatalf("LogCardio: %v", err)
	}
	if created.Exercise != "Running" {
		t.Errorf("exercise = %q, want default Running", created.Exercise)
	}
	if created.Kind != workout.KindCardio {
		t.Errorf("kind = %q, want cardio", created.Kind)
	}
	if created.Date.IsZero() {
		t.Error("expected date to default to the current time")
	}

	records, err := svc.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	// Timestamps are persisted with millisecond precision in UTC.
	opts := cmpopts.EquateApproxTime(time.Millisecond)
	if diff := cmp.Diff(created.Date.UTC(), records[0].Date, opts); diff != "" {
		t.Errorf("date mismatch (-want +got):\n%s", diff)
	}
	records[0].Date = created.Date
	if diff := cmp.Diff(created, records[0]); diff != "" {
		t.Errorf("round-trip mismatch (-want +got):\n%s", diff)
	}
}

func TestValidationRejectsBeforePersisting(t *testing.T) {
	ctx := t.Context()
	svc := newTestService(t)

	tests := []struct {
		name string
		log  func() error
	}{
		{
			name: "strength without sets",
			log: func() error {
				_, err := svc.LogStrength(ctx, workout.Record{Exercise: "squat", Reps: 8})
				return err
			},
		},
		{
			name: "strength without reps",
			log: func() error {
				_, err := svc.LogStrength(ctx, workout.Record{Exercise: "squat", Sets: 3})
				return err
			},
		},
		{
			name: "strength without exercise",
			log: func() error {
				_, err := svc.LogStrength(ctx, workout.Record{Sets: 3, Reps: 8})
				return err
			},
		},
		{
			name: "custom exercise without muscle groups",
			log: func() error {
				_, err := svc.LogStrength(ctx, workout.Record{Exercise: "zercher squat", Sets: 3, Reps: 8})
				return err
			},
		},
		{
			name: "cardio without duration",
			log: func() error {
				_, err := svc.LogCardio(ctx, workout.Record{SpeedKmh: ptr.Ref(8.0)})
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.log(); !errors.Is(err, workout.ErrValidation) {
				t.Errorf("expected ErrValidation, got %v", err)
			}
		})
	}

	// No partial writes: the store must still be empty.
	records, err := svc.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected empty store after rejected submissions, got %d records", len(records))
	}
}

func TestCustomExerciseKeepsChosenMuscleGroups(t *testing.T) {
	ctx := t.Context()
	svc := newTestService(t)

	created, err := svc.LogStrength(ctx, workout.Record{
		Exercise:     "zercher squat",
		Sets:         3,
		Reps:         5,
		MuscleGroups: []string{"quadriceps", "upper-back"},
	})
	if err != nil {
		t.Fatalf("LogStrength: %v", err)
	}
	if diff := cmp.Diff([]string{"quadriceps", "upper-back"}, created.MuscleGroups); diff != "" {
		t.Errorf("muscle groups mismatch (-want +got):\n%s", diff)
	}
}

func TestSnapshotGrowsByOnePerAdd(t *testing.T) {
	ctx := t.Context()
	svc := newTestService(t)

	const n = 25
	for i := range n {
		if _, err := svc.LogStrength(ctx, workout.Record{Exercise: "squat", Sets: 1 + i%5, Reps: 8}); err != nil {
			t.Fatalf("LogStrength #%d: %v", i, err)
		}
		// Reload timing must not matter.
		if i%3 == 0 {
			if _, err := svc.LoadAll(ctx); err != nil {
				t.Fatalf("LoadAll #%d: %v", i, err)
			}
		}
		if got := len(svc.Snapshot()); got != i+1 {
			t.Fatalf("snapshot size = %d after %d adds", got, i+1)
		}
	}

	records, err := svc.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(records) != n {
		t.Errorf("expected %d persisted records, got %d", n, len(records))
	}
}

func TestConcurrentAddsAssignUniqueIDs(t *testing.T) {
	ctx := t.Context()
	svc := newTestService(t)

	var g errgroup.Group
	const workers = 20
	for i := range workers {
		g.Go(func() error {
			_, err := svc.LogStrength(ctx, workout.Record{Exercise: "deadlift", Sets: 1 + i%3, Reps: 5})
			return err
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent adds: %v", err)
	}

	records, err := svc.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(records) != workers {
		t.Fatalf("expected %d records, got %d", workers, len(records))
	}
	seen := make(map[string]bool)
	for _, rec := range records {
		if seen[rec.ID] {
			t.Errorf("duplicate id %s", rec.ID)
		}
		seen[rec.ID] = true
	}
}

func TestRemoveMissingRecordIsNotFound(t *testing.T) {
	ctx := t.Context()
	svc := newTestService(t)

	err := svc.Remove(ctx, "01ARZ3NDEKTSV4RRFFQ69G5FAV")
	if !errors.Is(err, workout.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestRemoveAllReportsFailuresWithoutAborting(t *testing.T) {
	ctx := t.Context()
	svc := newTestService(t)

	first, err := svc.LogStrength(ctx, workout.Record{Exercise: "squat", Sets: 3, Reps: 8})
	if err != nil {
		t.Fatalf("LogStrength: %v", err)
	}
	second, err := svc.LogStrength(ctx, workout.Record{Exercise: "row", Sets: 3, Reps: 8})
	if err != nil {
		t.Fatalf("LogStrength: %v", err)
	}

	failures, err := svc.RemoveAll(ctx, []string{first.ID, "bogus-id", second.ID})
	if err != nil {
		t.Fatalf("RemoveAll: %v", err)
	}
	if len(failures) != 1 || failures[0].ID != "bogus-id" {
		t.Fatalf("failures = %v, want exactly bogus-id", failures)
	}

	// Both real records are gone even though the middle delete failed.
	if got := len(svc.Snapshot()); got != 0 {
		t.Errorf("snapshot size = %d after bulk delete, want 0", got)
	}
}

func TestHistoryPartitionsAndGroups(t *testing.T) {
	ctx := t.Context()
	svc := newTestService(t)

	now := time.Now()
	if _, err := svc.LogStrength(ctx, workout.Record{Date: now, Exercise: "squat", Sets: 3, Reps: 8}); err != nil {
		t.Fatalf("LogStrength: %v", err)
	}
	if _, err := svc.LogCardio(ctx, workout.Record{Date: now, DurationMinutes: 30}); err != nil {
		t.Fatalf("LogCardio: %v", err)
	}

	history, err := svc.History(ctx, workout.WindowDaily, time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(history.Strength) != 1 || len(history.Strength[0].Records) != 1 {
		t.Errorf("strength history = %+v, want one group with one record", history.Strength)
	}
	if len(history.Cardio) != 1 || len(history.Cardio[0].Records) != 1 {
		t.Errorf("cardio history = %+v, want one group with one record", history.Cardio)
	}
}

func TestWeeklySummaryAndSuggestions(t *testing.T) {
	ctx := t.Context()
	svc := newTestService(t)

	for range 2 {
		if _, err := svc.LogStrength(ctx, workout.Record{Exercise: "bench press", Sets: 5, Reps: 10}); err != nil {
			t.Fatalf("LogStrength: %v", err)
		}
	}

	summary, err := svc.WeeklySummary(ctx)
	if err != nil {
		t.Fatalf("WeeklySummary: %v", err)
	}
	if got := summary.Exercises["bench press"].Frequency; got != 2 {
		t.Errorf("bench press frequency = %d, want 2", got)
	}
	if got := summary.MuscleFrequencies["chest"]; got != 2 {
		t.Errorf("chest frequency = %d, want 2", got)
	}
	if got := summary.MuscleFrequencies["calves"]; got != 0 {
		t.Errorf("calves frequency = %d, want 0", got)
	}

	suggestions, err := svc.Suggestions(ctx)
	if err != nil {
		t.Fatalf("Suggestions: %v", err)
	}
	// Chest is now worked twice, above the threshold, so exercises touching
	// only well-worked muscles disappear from the suggestions.
	for _, s := range suggestions {
		if s == "bench press" {
			t.Errorf("bench press should not be suggested anymore: %v", suggestions)
		}
	}
	if len(suggestions) == 0 {
		t.Error("expected suggestions for the untouched muscle groups")
	}
}

func TestSuggestionsOnEmptyLog(t *testing.T) {
	ctx := t.Context()
	svc := newTestService(t)

	suggestions, err := svc.Suggestions(ctx)
	if err != nil {
		t.Fatalf("Suggestions: %v", err)
	}
	want := workout.DefaultCatalog().Exercises()
	if diff := cmp.Diff(want, suggestions); diff != "" {
		t.Errorf("Suggestions() on empty log mismatch (-want +got):\n%s", diff)
	}
}

func TestIDsAreUniqueAcrossSequentialAdds(t *testing.T) {
	ctx := t.Context()
	svc := newTestService(t)

	seen := make(map[string]bool)
	for i := range 50 {
		created, err := svc.LogStrength(ctx, workout.Record{
			Exercise: fmt.Sprintf("custom %d", i),
			Sets:     1, Reps: 1,
			MuscleGroups: []string{"abs"},
		})
		if err != nil {
			t.Fatalf("LogStrength #%d: %v", i, err)
		}
		if seen[created.ID] {
			t.Fatalf("id %s assigned twice", created.ID)
		}
		seen[created.ID] = true
	}
}
