package workout

// underworkedThreshold is the muscle frequency at or below which a muscle
// counts as underworked within the considered time window.
const underworkedThreshold = 1

// Suggest proposes catalog exercises targeting underworked muscle groups.
//
// Muscle frequency is computed with MuscleFrequencies, so muscles that never
// appear in the log are underworked, not merely absent. Every catalog
// exercise that targets at least one underworked muscle is returned once, in
// lexicographic catalog order. When every muscle exceeds the threshold the
// result is empty, which callers present as an all-muscles-well-worked
// message rather than an error.
func Suggest(catalog Catalog, records []Record) []string {
	frequencies := MuscleFrequencies(catalog, records)

	underworked := make(map[string]bool)
	for muscle, frequency := range frequencies {
		if frequency <= underworkedThreshold {
			underworked[muscle] = true
		}
	}

	suggestions := []string{}
	for _, exercise := range catalog.Exercises() {
		muscles, _ := catalog.Lookup(exercise)
		for _, muscle := range muscles {
			if underworked[muscle] {
				suggestions = append(suggestions, exercise)
				break
			}
		}
	}
	return suggestions
}
