package workout

// MET constants per intensity band, from the Compendium of Physical
// Activities. The band is chosen by treadmill speed; the upper bound of each
// band is inclusive except for sprinting which is open-ended.
const (
	metWalking   = 3.5  // < 5 km/h
	metJogging   = 7.0  // 5-8 km/h
	metRunning   = 9.8  // >8-10 km/h
	metSprinting = 12.8 // > 10 km/h
)

const minutesPerHour = 60

// EstimateCalories estimates the energy expenditure of a cardio record in
// kilocalories: MET x bodyweight (kg) x duration (hours). Pure and total; a
// record without a speed falls back to jogging intensity.
func EstimateCalories(r Record, bodyWeightKg float64) float64 {
	met := metJogging
	if r.SpeedKmh != nil {
		switch speed := *r.SpeedKmh; {
		case speed < 5:
			met = metWalking
		case speed <= 8:
			met = metJogging
		case speed <= 10:
			met = metRunning
		default:
			met = metSprinting
		}
	}
	return met * bodyWeightKg * (r.DurationMinutes / minutesPerHour)
}
