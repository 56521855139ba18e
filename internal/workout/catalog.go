package workout

import (
	"slices"
	"strings"
)

// Catalog is the read-only mapping from exercise name to the muscle groups
// the exercise activates. It is constructed once at startup and injected
// into the components that need lookups, so tests can substitute their own.
type Catalog struct {
	entries map[string][]string
	names   []string
}

// NewCatalog builds a catalog from the given entries. Names are matched
// case-insensitively; the entries are copied so later mutation of the input
// cannot leak into the catalog.
func NewCatalog(entries map[string][]string) Catalog {
	normalized := make(map[string][]string, len(entries))
	names := make([]string, 0, len(entries))
	for name, muscles := range entries {
		name = strings.ToLower(name)
		normalized[name] = slices.Clone(muscles)
		names = append(names, name)
	}
	slices.Sort(names)
	return Catalog{entries: normalized, names: names}
}

// Lookup returns the muscle groups for the exercise. The name is normalized
// to lowercase before matching. An unknown name is a valid input that simply
// reports ok == false; callers degrade gracefully instead of failing.
func (c Catalog) Lookup(exercise string) ([]string, bool) {
	muscles, ok := c.entries[strings.ToLower(exercise)]
	if !ok {
		return nil, false
	}
	return slices.Clone(muscles), true
}

// Contains reports whether the exercise is a known catalog entry.
func (c Catalog) Contains(exercise string) bool {
	_, ok := c.entries[strings.ToLower(exercise)]
	return ok
}

// Exercises returns every catalog exercise name in lexicographic order.
func (c Catalog) Exercises() []string {
	return slices.Clone(c.names)
}

// AllMuscleGroups returns the deduplicated union of every muscle group in
// the catalog, sorted lexicographically. Used to populate the muscle-group
// picker for custom exercises.
func (c Catalog) AllMuscleGroups() []string {
	seen := make(map[string]bool)
	var groups []string
	for _, muscles := range c.entries {
		for _, muscle := range muscles {
			if !seen[muscle] {
				seen[muscle] = true
				groups = append(groups, muscle)
			}
		}
	}
	slices.Sort(groups)
	return groups
}

// DefaultCatalog returns the compiled-in exercise catalog.
func DefaultCatalog() Catalog {
	return NewCatalog(map[string][]string{
		"bench press":    {"chest", "triceps", "front-deltoids"},
		"push up":        {"chest", "triceps", "front-deltoids", "abs"},
		"pull up":        {"upper-back", "biceps", "back-deltoids"},
		"deadlift":       {"lower-back", "gluteal", "hamstring"},
		"squat":          {"quadriceps", "gluteal", "hamstring"},
		"bicep curl":     {"biceps"},
		"tricep dip":     {"triceps", "chest"},
		"shoulder press": {"front-deltoids", "triceps"},
		"plank":          {"abs"},
		"sit up":         {"abs"},
		"row":            {"upper-back", "biceps"},
		"lat pulldown":   {"upper-back", "biceps"},
		"calf raise":     {"calves"},
		"lateral raise":  {"front-deltoids"},
		"hip thrust":     {"gluteal"},
		"leg press":      {"quadriceps", "gluteal", "hamstring"},
		"leg curl":       {"hamstring"},
		"leg extension":  {"quadriceps"},
		"shrug":          {"trapezius"},
		"sprinting": {"quadriceps", "hamstring", "gluteal", "calves", "abs", "obliques", "lower-back",
			"front-deltoids", "back-deltoids", "biceps", "triceps"},
		"running": {"quadriceps", "hamstring", "gluteal", "calves", "abs", "obliques",
			"front-deltoids", "back-deltoids"},
		"jogging": {"quadriceps", "hamstring", "gluteal", "calves", "abs", "front-deltoids"},
		"walking": {"quadriceps", "hamstring", "gluteal", "calves"},
	})
}
