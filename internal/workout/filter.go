package workout

import (
	"slices"
	"strings"
	"time"

	"github.com/myrjola/fitlog/internal/errors"
)

// Window selects the time range of a history view.
type Window string

const (
	WindowAll    Window = "all"
	WindowDaily  Window = "daily"
	WindowWeekly Window = "weekly"
	WindowCustom Window = "custom"
)

// ParseWindow validates a window name coming from the outside.
func ParseWindow(s string) (Window, error) {
	switch w := Window(s); w {
	case WindowAll, WindowDaily, WindowWeekly, WindowCustom:
		return w, nil
	default:
		return "", errors.Wrap(ErrValidation, "unknown time window "+s)
	}
}

const daysPerWeek = 7

// FilterByWindow returns the records whose date falls inside the window,
// evaluated relative to now in now's location. The input is never mutated.
//
// The custom window spans [start 00:00:00.000, end 23:59:59.999] inclusive;
// when either bound is zero it behaves like WindowAll.
func FilterByWindow(records []Record, window Window, start, end, now time.Time) []Record {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch window {
	case WindowDaily:
		return filter(records, func(r Record) bool {
			return !r.Date.Before(midnight)
		})
	case WindowWeekly:
		weekAgo := midnight.AddDate(0, 0, -daysPerWeek)
		return filter(records, func(r Record) bool {
			return !r.Date.Before(weekAgo)
		})
	case WindowCustom:
		if start.IsZero() || end.IsZero() {
			return filter(records, func(Record) bool { return true })
		}
		lower := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, now.Location())
		upper := time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 999_000_000, now.Location())
		return filter(records, func(r Record) bool {
			return !r.Date.Before(lower) && !r.Date.After(upper)
		})
	case WindowAll:
		fallthrough
	default:
		return filter(records, func(Record) bool { return true })
	}
}

// FilterByCalendarWeek returns the records of the current Sunday-to-Saturday
// week: Sunday 00:00:00 inclusive up to next Sunday 00:00:00 exclusive. This
// backs the weekly summary view and is distinct from the trailing-7-day
// WindowWeekly used in history.
func FilterByCalendarWeek(records []Record, now time.Time) []Record {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfWeek := midnight.AddDate(0, 0, -int(midnight.Weekday()))
	endOfWeek := startOfWeek.AddDate(0, 0, daysPerWeek)

	return filter(records, func(r Record) bool {
		return !r.Date.Before(startOfWeek) && r.Date.Before(endOfWeek)
	})
}

// PartitionByKind splits records into strength and cardio. A record matching
// neither rule is excluded from both partitions.
func PartitionByKind(records []Record) (strength, cardio []Record) {
	for _, r := range records {
		switch {
		case r.IsCardio():
			cardio = append(cardio, r)
		case r.IsStrength():
			strength = append(strength, r)
		}
	}
	return strength, cardio
}

// DayGroup holds the records logged on one local calendar date, in input
// order.
type DayGroup struct {
	Date    string   `json:"date"`
	Records []Record `json:"records"`
}

// GroupByDate buckets records by their local calendar date. Groups are
// returned sorted by date descending for display; records inside a group
// keep input order.
func GroupByDate(records []Record) []DayGroup {
	index := make(map[string]int)
	var groups []DayGroup
	for _, r := range records {
		date := r.Date.Local().Format(time.DateOnly)
		i, ok := index[date]
		if !ok {
			i = len(groups)
			index[date] = i
			groups = append(groups, DayGroup{Date: date, Records: nil})
		}
		groups[i].Records = append(groups[i].Records, r)
	}

	// Date keys are ISO dates so lexicographic order is chronological.
	slices.SortStableFunc(groups, func(a, b DayGroup) int {
		return strings.Compare(b.Date, a.Date)
	})
	return groups
}

func filter(records []Record, keep func(Record) bool) []Record {
	var kept []Record
	for _, r := range records {
		if keep(r) {
			kept = append(kept, r)
		}
	}
	return kept
}
