package greymark

// MasteryBoost returns the proficiency increment granted by one boost at
// the given running level. The function is pure and non-increasing: the
// higher the level, the smaller the boost.
func MasteryBoost(level int) int {
	switch {
	case level <= 39:
		return 10
	case level <= 44:
		return 9
	case level <= 49:
		return 8
	case level <= 59:
		return 7
	case level <= 69:
		return 6
	case level <= 79:
		return 5
	case level <= 99:
		return 4
	default:
		return 3
	}
}

// ApplyBoosts applies boosts successive boost steps to base. Each step
// recomputes MasteryBoost against the already-boosted running value, so
// boosts compound against the post-boost level rather than the original.
// The result is clamped to maxTarget when maxTarget is positive.
func ApplyBoosts(base, boosts, maxTarget int) int {
	value := base
	for i := 0; i < boosts; i++ {
		value += MasteryBoost(value)
	}
	if maxTarget > 0 && value > maxTarget {
		value = maxTarget
	}
	return value
}
