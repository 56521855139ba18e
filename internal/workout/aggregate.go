package workout

import (
	"context"
	"log/slog"
	"strings"
)

// Aggregate folds a workout collection into per-exercise frequency counts
// keyed by lowercase exercise name. Records without an exercise are skipped;
// records whose exercise is not in the catalog are skipped with a diagnostic
// and never fail the aggregation. The result is order-independent: permuting
// the input yields the same mapping.
func Aggregate(ctx context.Context, catalog Catalog, records []Record, logger *slog.Logger) map[string]MuscleAggregate {
	aggregates := make(map[string]MuscleAggregate)
	for _, r := range records {
		if r.Exercise == "" {
			continue
		}
		name := strings.ToLower(r.Exercise)
		muscles, ok := catalog.Lookup(name)
		if !ok {
			logger.LogAttrs(ctx, slog.LevelWarn, "unknown exercise", slog.String("exercise", name))
			continue
		}
		aggregate, seen := aggregates[name]
		if !seen {
			aggregate = MuscleAggregate{Muscles: muscles, Frequency: 0}
		}
		aggregate.Frequency++
		aggregates[name] = aggregate
	}
	return aggregates
}

// MuscleFrequencies derives muscle-level counts from a workout collection.
// Every muscle group in the catalog starts at zero so muscles with no
// workouts show up as zero rather than being absent. One record contributes
// +1 to every muscle its exercise activates, not fractionally divided.
func MuscleFrequencies(catalog Catalog, records []Record) map[string]int {
	frequencies := make(map[string]int)
	for _, muscle := range catalog.AllMuscleGroups() {
		frequencies[muscle] = 0
	}
	for _, r := range records {
		muscles, ok := catalog.Lookup(r.Exercise)
		if !ok {
			continue
		}
		for _, muscle := range muscles {
			frequencies[muscle]++
		}
	}
	return frequencies
}
