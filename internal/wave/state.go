package wave

import (
	"fmt"

	"wavefield/pkg/core"
)

// Updater transforms a parameter bundle. State replaces its bundle with the
// updater's result wholesale; merging untouched fields is up to the updater.
type Updater func(Parameters) Parameters

// State owns the current wave parameters and tracks whether they changed
// since the last calculation. It is not safe for concurrent use.
type State struct {
	id     uint32
	params Parameters
	eval   Evaluator
	dirty  bool
}

// NewState validates p and returns a State for it. A nil rng draws the
// identity token from the global source. New states start dirty.
func NewState(p Parameters, rng *core.RNG) (*State, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	p = p.Clone()
	return &State{
		id:     rng.Token(),
		params: p,
		eval:   Build(p),
		dirty:  true,
	}, nil
}

// ID returns the opaque identity token assigned at construction. Tokens are
// not unique and must not be used for equality.
func (s *State) ID() uint32 { return s.id }

// Parameters returns a copy of the current bundle.
func (s *State) Parameters() Parameters { return s.params.Clone() }

// Dirty reports whether parameters changed since the last Calculate.
func (s *State) Dirty() bool { return s.dirty }

// Calculate evaluates the height at (x, y) and clears the dirty flag.
func (s *State) Calculate(x, y float64) float64 {
	s.dirty = false
	return s.eval(x, y)
}

// Evaluator returns the evaluator for the current parameters and clears the
// dirty flag. The returned function shares no state with s and may be called
// from several goroutines.
func (s *State) Evaluator() Evaluator {
	s.dirty = false
	return s.eval
}

// SetParameters applies fn to a copy of the current bundle and adopts the
// result. An invalid result is rejected and leaves the state unchanged.
func (s *State) SetParameters(fn Updater) error {
	if fn == nil {
		return fmt.Errorf("%w: nil updater", ErrInvalidParameter)
	}
	next := fn(s.params.Clone())
	if err := next.Validate(); err != nil {
		return err
	}
	s.params = next.Clone()
	s.eval = Build(s.params)
	s.dirty = true
	return nil
}
