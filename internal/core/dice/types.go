package dice

import "errors"

// ErrMissingDice indicates a roll request had no dice specified.
var ErrMissingDice = errors.New("at least one die must be provided")

// ErrInvalidDiceSpec indicates a die specification has invalid fields.
var ErrInvalidDiceSpec = errors.New("dice must have positive sides and count")

// Spec describes a die to roll and how many times to roll it.
type Spec struct {
	Sides int
	Count int
}

// D100 is the percentile die used by success tests.
var D100 = Spec{Sides: 100, Count: 1}

// Roll captures the results for a single dice spec.
type Roll struct {
	Sides   int
	Results []int
	Total   int
}

// Request describes a request to roll one or more dice.
type Request struct {
	Dice []Spec
	Seed int64
}

// Result captures the results from rolling multiple dice.
type Result struct {
	Rolls []Roll
	Total int
}
