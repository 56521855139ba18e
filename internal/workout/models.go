// Package workout implements the workout log: persistence of strength and
// cardio records, time-window filtering, muscle-activation aggregation and
// underworked-muscle suggestions.
package workout

import (
	"time"

	"github.com/myrjola/fitlog/internal/errors"
)

// Kind discriminates strength and cardio records.
type Kind string

const (
	KindStrength Kind = "strength"
	KindCardio   Kind = "cardio"
)

// Sentinel errors surfaced by the service and repository.
var (
	// ErrNotFound is returned when a record with the given id does not exist.
	ErrNotFound = errors.NewSentinel("workout record not found")
	// ErrValidation is returned when a submitted record is rejected before
	// any persistence call.
	ErrValidation = errors.NewSentinel("invalid workout record")
)

// Record is one logged activity. The id is assigned by the repository on
// create and is stable thereafter; records are never mutated in place, so
// corrections are a delete followed by a re-add.
type Record struct {
	ID   string    `json:"id"`
	Date time.Time `json:"date"`
	// Kind is empty for records persisted before the discriminator existed;
	// IsStrength and IsCardio fall back to field-presence inference for them.
	Kind     Kind   `json:"kind,omitempty"`
	Exercise string `json:"exercise,omitempty"`

	// Strength fields.
	Sets         int      `json:"sets,omitempty"`
	Reps         int      `json:"reps,omitempty"`
	MuscleGroups []string `json:"muscleGroups,omitempty"`

	// Cardio fields.
	DurationMinutes float64  `json:"duration,omitempty"`
	SpeedKmh        *float64 `json:"speed,omitempty"`
	InclinePercent  *int     `json:"incline,omitempty"`
	DistanceKm      *float64 `json:"distance,omitempty"`
}

// IsCardio reports whether the record is a cardio activity. Legacy records
// without a kind were only ever tagged cardio explicitly, so absence means
// not cardio.
func (r Record) IsCardio() bool {
	return r.Kind == KindCardio
}

// IsStrength reports whether the record is a strength workout. Legacy
// records count as strength when they name an exercise and have no
// duration. Records matching neither rule belong to neither partition.
func (r Record) IsStrength() bool {
	if r.Kind != "" {
		return r.Kind == KindStrength
	}
	return r.Exercise != "" && r.DurationMinutes == 0
}

// MuscleAggregate is the per-exercise slice of a muscle-activation summary.
type MuscleAggregate struct {
	Muscles   []string `json:"muscles"`
	Frequency int      `json:"frequency"`
}
