// Package derive runs the three-phase derivation pass over a set of
// computation units.
//
// Each unit moves through a linear status machine: uninitialized →
// initialized → evaluated → finalized. Run drives every unit through
// Initialize, then Evaluate, then Finalize with a full barrier between
// phases: no unit starts a phase until every unit has completed the
// previous one. The barrier is what lets one unit's Finalize read values
// another unit produced during Evaluate regardless of iteration order.
//
// Units are built fresh for every pass; a unit that has already been run
// cannot be run again.
package derive

import (
	"errors"
	"fmt"
)

// Status is a unit's position in the derivation status machine.
type Status int

const (
	StatusUninitialized Status = iota
	StatusInitialized
	StatusEvaluated
	StatusFinalized
)

func (s Status) String() string {
	switch s {
	case StatusUninitialized:
		return "uninitialized"
	case StatusInitialized:
		return "initialized"
	case StatusEvaluated:
		return "evaluated"
	case StatusFinalized:
		return "finalized"
	default:
		return "unknown"
	}
}

// ErrOutOfOrder indicates a unit was asked to run a phase it is not ready
// for, either by skipping a phase or by re-running a completed pass.
var ErrOutOfOrder = errors.New("derivation step out of order")

// Unit is a single derivation unit parameterized over the pass context.
// Implementations embed State to satisfy the status methods; the
// unexported method keeps status transitions under Run's control.
type Unit[Ctx any] interface {
	Initialize(ctx Ctx) error
	Evaluate(ctx Ctx) error
	Finalize(ctx Ctx) error

	DeriveStatus() Status
	transition(to Status) error
}

// State tracks derivation progress. Embed it in unit implementations.
type State struct {
	status Status
}

// DeriveStatus returns the unit's current status.
func (s *State) DeriveStatus() Status {
	return s.status
}

func (s *State) transition(to Status) error {
	if to != s.status+1 {
		return fmt.Errorf("%w: %s -> %s", ErrOutOfOrder, s.status, to)
	}
	s.status = to
	return nil
}

// Run executes a full derivation pass over units.
//
// The pass aborts on the first error; all statuses reached so far are left
// as-is and the caller must discard the units. Iteration order within a
// phase is unspecified as far as unit logic is concerned: unit computations
// must not depend on it.
func Run[Ctx any](ctx Ctx, units []Unit[Ctx]) error {
	phases := []struct {
		target Status
		step   func(Unit[Ctx]) error
	}{
		{StatusInitialized, func(u Unit[Ctx]) error { return u.Initialize(ctx) }},
		{StatusEvaluated, func(u Unit[Ctx]) error { return u.Evaluate(ctx) }},
		{StatusFinalized, func(u Unit[Ctx]) error { return u.Finalize(ctx) }},
	}

	for _, phase := range phases {
		for _, u := range units {
			if u.DeriveStatus() != phase.target-1 {
				return fmt.Errorf("%w: unit is %s, cannot reach %s",
					ErrOutOfOrder, u.DeriveStatus(), phase.target)
			}
			if err := phase.step(u); err != nil {
				return fmt.Errorf("%s: %w", phase.target, err)
			}
			if err := u.transition(phase.target); err != nil {
				return err
			}
		}
	}
	return nil
}
