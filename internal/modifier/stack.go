// Package modifier implements named-contribution value stacks.
//
// A Stack accumulates a base value plus an ordered list of named integer
// contributions and exposes a single derived effective value. Stacks can be
// disabled with a displayable reason; while disabled the effective value is
// unavailable but the audit trail keeps recording.
package modifier

// Contribution is a single named delta applied to a stack.
// Contributions are immutable once appended.
type Contribution struct {
	Source string   `json:"source"`
	Delta  int      `json:"delta"`
	Tags   []string `json:"tags,omitempty"`
}

// TagMerged marks a contribution that carries another stack's folded value.
const TagMerged = "merged"

// Stack is a base value plus ordered named contributions.
//
// Stacks are owned by a single computation unit and must not be shared by
// reference across units; cross-unit composition goes through Merge, which
// copies the source stack's effective value in as one contribution.
type Stack struct {
	name           string
	base           int
	contributions  []Contribution
	disabledReason string
	disabled       bool

	cached     int
	cacheValid bool
}

// New creates an empty stack. The name identifies the stack when its value
// is merged into another stack and in audit output.
func New(name string) *Stack {
	return &Stack{name: name}
}

// Name returns the stack identity.
func (s *Stack) Name() string {
	return s.name
}

// SetBase sets the base value. A repeated call overwrites the previous base
// silently; any cached effective value is invalidated.
func (s *Stack) SetBase(value int) {
	s.base = value
	s.cacheValid = false
}

// Base returns the base value.
func (s *Stack) Base() int {
	return s.base
}

// Add appends a named contribution. Contributions are recorded even while
// the stack is disabled so the audit trail is never dropped; they are simply
// excluded from the effective value until the stack is enabled again by a
// fresh rebuild.
func (s *Stack) Add(source string, delta int, tags ...string) {
	s.contributions = append(s.contributions, Contribution{
		Source: source,
		Delta:  delta,
		Tags:   tags,
	})
	s.cacheValid = false
}

// Merge folds another stack's effective value in as a single contribution
// named after the source stack. When includeBase is false only the source's
// contribution sum (effective minus base) is carried over. A disabled source
// has no trustworthy value and contributes nothing.
func (s *Stack) Merge(other *Stack, includeBase bool) {
	if other == nil {
		return
	}
	value, ok := other.Effective()
	if !ok {
		return
	}
	if !includeBase {
		value -= other.base
	}
	s.Add(other.name, value, TagMerged)
}

// Disable marks the stack disabled with a displayable reason. The first
// reason wins: once disabled, later calls are no-ops, so the earliest phase
// that detects a disabling condition owns the reason shown to the player.
func (s *Stack) Disable(reason string) {
	if s.disabled {
		return
	}
	s.disabled = true
	s.disabledReason = reason
	s.cacheValid = false
}

// Disabled reports whether the stack is disabled.
func (s *Stack) Disabled() bool {
	return s.disabled
}

// DisabledReason returns the displayable reason, or "" when enabled.
func (s *Stack) DisabledReason() string {
	return s.disabledReason
}

// Effective returns base plus the sum of all contributions. The value is
// computed lazily and cached until the next mutation. The second return is
// false while the stack is disabled; the numeric value is then unspecified.
func (s *Stack) Effective() (int, bool) {
	if s.disabled {
		return 0, false
	}
	if !s.cacheValid {
		total := s.base
		for _, c := range s.contributions {
			total += c.Delta
		}
		s.cached = total
		s.cacheValid = true
	}
	return s.cached, true
}

// Contributions returns the audit trail in insertion order. The returned
// slice is a copy; mutating it does not affect the stack.
func (s *Stack) Contributions() []Contribution {
	out := make([]Contribution, len(s.contributions))
	copy(out, s.contributions)
	return out
}
