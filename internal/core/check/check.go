// Package check resolves success tests against a target threshold.
//
// A success test compares a percentile roll against a derived target
// value. The roll must strictly exceed the target: ties fail. Margin is
// always rollTotal - target, so a positive margin means success.
package check

// Beats reports whether rollTotal strictly exceeds target.
func Beats(rollTotal, target int) bool {
	return rollTotal > target
}

// Margin calculates the margin of success or failure.
// Positive values indicate success, negative or zero indicate failure.
func Margin(rollTotal, target int) int {
	return rollTotal - target
}

// Result represents the outcome of a success test.
// Result values are created once and never mutated.
type Result struct {
	Target    int
	RollTotal int
	Success   bool
	Margin    int
}

// Resolve performs a success test and returns the result.
func Resolve(target, rollTotal int) Result {
	return Result{
		Target:    target,
		RollTotal: rollTotal,
		Success:   Beats(rollTotal, target),
		Margin:    Margin(rollTotal, target),
	}
}
