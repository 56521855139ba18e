package workout

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/myrjola/fitlog/internal/errors"
	"github.com/myrjola/fitlog/internal/sqlite"
)

// Service handles the business logic for the workout log. It owns the
// in-memory snapshot of persisted records; the snapshot is guarded by a
// mutex, appended to only after a create has durably completed, and replaced
// wholesale on reload so readers never observe a partial update.
type Service struct {
	repo    recordRepository
	catalog Catalog
	logger  *slog.Logger

	mu       sync.Mutex
	snapshot []Record
}

// NewService creates a workout service backed by the given database.
func NewService(db *sqlite.Database, catalog Catalog, logger *slog.Logger) *Service {
	return &Service{
		repo:     newSQLiteRecordRepository(db, logger),
		catalog:  catalog,
		logger:   logger,
		mu:       sync.Mutex{},
		snapshot: []Record{},
	}
}

// LogStrength validates and persists a strength workout. Known exercises get
// their muscle groups filled in from the catalog; custom exercises must name
// their own. The record joins the snapshot only after the write succeeded.
func (s *Service) LogStrength(ctx context.Context, rec Record) (Record, error) {
	rec.Kind = KindStrength
	rec.DurationMinutes = 0
	rec.SpeedKmh = nil
	rec.InclinePercent = nil
	rec.DistanceKm = nil

	if err := validateStrength(s.catalog, rec); err != nil {
		return Record{}, err
	}
	if muscles, ok := s.catalog.Lookup(rec.Exercise); ok {
		rec.MuscleGroups = muscles
	}

	return s.persist(ctx, rec)
}

// LogCardio validates and persists a cardio activity. The exercise name
// defaults to Running.
func (s *Service) LogCardio(ctx context.Context, rec Record) (Record, error) {
	rec.Kind = KindCardio
	if rec.Exercise == "" {
		rec.Exercise = "Running"
	}
	rec.Sets = 0
	rec.Reps = 0
	rec.MuscleGroups = nil

	if err := validateCardio(rec); err != nil {
		return Record{}, err
	}

	return s.persist(ctx, rec)
}

func (s *Service) persist(ctx context.Context, rec Record) (Record, error) {
	if rec.Date.IsZero() {
		rec.Date = time.Now()
	}

	created, err := s.repo.Create(ctx, rec)
	if err != nil {
		// The snapshot stays untouched so a failed write never shows up.
		return Record{}, errors.Wrap(err, "persist workout")
	}

	s.mu.Lock()
	s.snapshot = append(s.snapshot, created)
	s.mu.Unlock()

	s.logger.LogAttrs(ctx, slog.LevelInfo, "logged workout",
		slog.String("id", created.ID), slog.String("kind", string(created.Kind)))

	return created, nil
}

// LoadAll replaces the in-memory snapshot with the full set of persisted
// records and returns it.
func (s *Service) LoadAll(ctx context.Context) ([]Record, error) {
	records, err := s.repo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load workouts")
	}

	s.mu.Lock()
	s.snapshot = records
	s.mu.Unlock()

	return slices.Clone(records), nil
}

// Snapshot returns a copy of the current in-memory snapshot without touching
// the persistence collaborator.
func (s *Service) Snapshot() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.snapshot)
}

// Remove deletes a single record by id. Callers reload the snapshot
// afterwards; Remove itself does not update it.
func (s *Service) Remove(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "remove workout")
	}
	return nil
}

// DeleteFailure reports one identifier that a bulk delete could not remove.
type DeleteFailure struct {
	ID  string `json:"id"`
	Err string `json:"error"`
}

// RemoveAll deletes the given identifiers one by one. A failing identifier
// never aborts the batch; every failure is reported so the caller can tell
// the user exactly which deletions did not happen. The snapshot is reloaded
// once at the end.
func (s *Service) RemoveAll(ctx context.Context, ids []string) ([]DeleteFailure, error) {
	failures := []DeleteFailure{}
	for _, id := range ids {
		if err := s.repo.Delete(ctx, id); err != nil {
			s.logger.LogAttrs(ctx, slog.LevelWarn, "bulk delete failure",
				slog.String("id", id), errors.SlogError(err))
			failures = append(failures, DeleteFailure{ID: id, Err: err.Error()})
		}
	}

	if _, err := s.LoadAll(ctx); err != nil {
		return failures, errors.Wrap(err, "reload after bulk delete")
	}
	return failures, nil
}

// History is a day-grouped, kind-partitioned view of the workout log.
type History struct {
	Strength []DayGroup `json:"strength"`
	Cardio   []DayGroup `json:"cardio"`
}

// History loads the log and narrows it to the requested time window.
func (s *Service) History(ctx context.Context, window Window, start, end time.Time) (History, error) {
	records, err := s.LoadAll(ctx)
	if err != nil {
		return History{}, errors.Wrap(err, "load history")
	}

	filtered := FilterByWindow(records, window, start, end, time.Now())
	strength, cardio := PartitionByKind(filtered)

	return History{
		Strength: GroupByDate(strength),
		Cardio:   GroupByDate(cardio),
	}, nil
}

// WeeklySummary is the muscle-activation summary of the current calendar
// week.
type WeeklySummary struct {
	Exercises         map[string]MuscleAggregate `json:"exercises"`
	MuscleFrequencies map[string]int             `json:"muscleFrequencies"`
}

// WeeklySummary aggregates the current Sunday-to-Saturday week.
func (s *Service) WeeklySummary(ctx context.Context) (WeeklySummary, error) {
	records, err := s.LoadAll(ctx)
	if err != nil {
		return WeeklySummary{}, errors.Wrap(err, "load weekly summary")
	}

	weekly := FilterByCalendarWeek(records, time.Now())
	return WeeklySummary{
		Exercises:         Aggregate(ctx, s.catalog, weekly, s.logger),
		MuscleFrequencies: MuscleFrequencies(s.catalog, weekly),
	}, nil
}

// Suggestions proposes exercises for underworked muscle groups based on the
// whole log. An empty result means every muscle is well-worked.
func (s *Service) Suggestions(ctx context.Context) ([]string, error) {
	records, err := s.LoadAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load suggestions")
	}
	return Suggest(s.catalog, records), nil
}

// Catalog exposes the injected exercise catalog.
func (s *Service) Catalog() Catalog {
	return s.catalog
}

func validateStrength(catalog Catalog, rec Record) error {
	if rec.Exercise == "" {
		return errors.Wrap(ErrValidation, "exercise name is required")
	}
	if rec.Sets < 1 {
		return errors.Wrap(ErrValidation, "sets must be at least 1", slog.Int("sets", rec.Sets))
	}
	if rec.Reps < 1 {
		return errors.Wrap(ErrValidation, "reps must be at least 1", slog.Int("reps", rec.Reps))
	}
	if !catalog.Contains(rec.Exercise) && len(rec.MuscleGroups) == 0 {
		return errors.Wrap(ErrValidation, "custom exercise needs muscle groups",
			slog.String("exercise", rec.Exercise))
	}
	return nil
}

func validateCardio(rec Record) error {
	if rec.DurationMinutes < 1 {
		return errors.Wrap(ErrValidation, "duration must be at least 1 minute",
			slog.Float64("duration", rec.DurationMinutes))
	}
	return nil
}
