package workout

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/myrjola/fitlog/internal/errors"
	"github.com/myrjola/fitlog/internal/sqlite"
)

const timestampFormat = "2006-01-02T15:04:05.000Z"

// recordRepository is the persistence collaborator consumed by Service.
// Create assigns the identifier; List returns records in whatever order the
// store produces, so consumers sort explicitly when order matters.
type recordRepository interface {
	Create(ctx context.Context, rec Record) (Record, error)
	List(ctx context.Context) ([]Record, error)
	Delete(ctx context.Context, id string) error
}

// sqliteRecordRepository stores workout records in a single workouts table.
type sqliteRecordRepository struct {
	db     *sqlite.Database
	logger *slog.Logger

	// Identifier assignment must stay unique under concurrent creates, so
	// the monotonic entropy source is guarded by a mutex.
	idMu    sync.Mutex
	entropy *ulid.MonotonicEntropy
}

func newSQLiteRecordRepository(db *sqlite.Database, logger *slog.Logger) *sqliteRecordRepository {
	return &sqliteRecordRepository{
		db:      db,
		logger:  logger,
		idMu:    sync.Mutex{},
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

func (r *sqliteRecordRepository) nextID() (string, error) {
	r.idMu.Lock()
	defer r.idMu.Unlock()
	id, err := ulid.New(ulid.Timestamp(time.Now()), r.entropy)
	if err != nil {
		return "", errors.Wrap(err, "generate record id")
	}
	return id.String(), nil
}

// Create persists the record and returns it with the freshly assigned id.
func (r *sqliteRecordRepository) Create(ctx context.Context, rec Record) (Record, error) {
	id, err := r.nextID()
	if err != nil {
		return Record{}, err
	}
	rec.ID = id

	var muscleGroups sql.NullString
	if len(rec.MuscleGroups) > 0 {
		encoded, marshalErr := json.Marshal(rec.MuscleGroups)
		if marshalErr != nil {
			return Record{}, errors.Wrap(marshalErr, "marshal muscle groups")
		}
		muscleGroups = sql.NullString{String: string(encoded), Valid: true}
	}

	_, err = r.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO workouts (
			id, workout_date, kind, exercise, sets, reps, muscle_groups,
			duration_minutes, speed_kmh, incline_percent, distance_km
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.Date.UTC().Format(timestampFormat),
		nullableString(string(rec.Kind)),
		nullableString(rec.Exercise),
		nullableInt(rec.Sets),
		nullableInt(rec.Reps),
		muscleGroups,
		nullableFloat(rec.DurationMinutes),
		rec.SpeedKmh,
		rec.InclinePercent,
		rec.DistanceKm,
	)
	if err != nil {
		return Record{}, errors.Wrap(err, "insert workout", slog.String("id", rec.ID))
	}

	return rec, nil
}

// List returns every persisted record. Identifiers are time-ordered ULIDs,
// so ordering by id approximates insertion order without promising it.
func (r *sqliteRecordRepository) List(ctx context.Context) (_ []Record, err error) {
	rows, err := r.db.ReadOnly.QueryContext(ctx, `
		SELECT id, workout_date, kind, exercise, sets, reps, muscle_groups,
		       duration_minutes, speed_kmh, incline_percent, distance_km
		FROM workouts
		ORDER BY id`)
	if err != nil {
		return nil, errors.Wrap(err, "query workouts")
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			r.logger.LogAttrs(ctx, slog.LevelError, "close rows", slog.Any("error", closeErr))
		}
	}()

	records := []Record{}
	for rows.Next() {
		var rec Record
		if rec, err = scanRecord(rows); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterate workouts")
	}
	return records, nil
}

// Delete removes a record by id. Deleting a missing id surfaces ErrNotFound
// rather than succeeding silently, so bulk-delete callers can report exactly
// which identifiers failed.
func (r *sqliteRecordRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ReadWrite.ExecContext(ctx, "DELETE FROM workouts WHERE id = ?", id)
	if err != nil {
		return errors.Wrap(err, "delete workout", slog.String("id", id))
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "rows affected", slog.String("id", id))
	}
	if affected == 0 {
		return errors.Wrap(ErrNotFound, "delete workout", slog.String("id", id))
	}
	return nil
}

func scanRecord(rows *sql.Rows) (Record, error) {
	var (
		rec          Record
		dateStr      string
		kind         sql.NullString
		exercise     sql.NullString
		sets         sql.NullInt64
		reps         sql.NullInt64
		muscleGroups sql.NullString
		duration     sql.NullFloat64
	)
	err := rows.Scan(
		&rec.ID, &dateStr, &kind, &exercise, &sets, &reps, &muscleGroups,
		&duration, &rec.SpeedKmh, &rec.InclinePercent, &rec.DistanceKm)
	if err != nil {
		return Record{}, errors.Wrap(err, "scan workout")
	}

	if rec.Date, err = time.Parse(timestampFormat, dateStr); err != nil {
		return Record{}, errors.Wrap(err, "parse workout date", slog.String("date", dateStr))
	}
	rec.Kind = Kind(kind.String)
	rec.Exercise = exercise.String
	rec.Sets = int(sets.Int64)
	rec.Reps = int(reps.Int64)
	rec.DurationMinutes = duration.Float64

	if muscleGroups.Valid {
		if err = json.Unmarshal([]byte(muscleGroups.String), &rec.MuscleGroups); err != nil {
			return Record{}, errors.Wrap(err, "unmarshal muscle groups", slog.String("id", rec.ID))
		}
	}

	return rec, nil
}

func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullableInt(i int) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(i), Valid: i != 0}
}

func nullableFloat(f float64) sql.NullFloat64 {
	return sql.NullFloat64{Float64: f, Valid: f != 0}
}
