package wave

import (
	"errors"
	"fmt"

	"github.com/jinzhu/copier"
)

// Defaults applied to WaveParameters fields that are left unset.
const (
	DefaultHorizontalDisplacement = 0.0
	DefaultVerticalDisplacement   = 0.0
	DefaultAmplitude              = 1.0
	DefaultPeriod                 = 10.0
)

// ErrInvalidParameter reports a parameter value the wave functions cannot
// evaluate, such as an explicit non-positive period.
var ErrInvalidParameter = errors.New("wave: invalid parameter")

// WaveParameters describes a single displaced and scaled sinusoid. Nil fields
// fall back to the package defaults.
type WaveParameters struct {
	HorizontalDisplacement *float64 `toml:"horizontalDisplacement,omitempty" yaml:"horizontalDisplacement,omitempty"`
	VerticalDisplacement   *float64 `toml:"verticalDisplacement,omitempty" yaml:"verticalDisplacement,omitempty"`
	Amplitude              *float64 `toml:"amplitude,omitempty" yaml:"amplitude,omitempty"`
	Period                 *float64 `toml:"period,omitempty" yaml:"period,omitempty"`
}

// WaveFormParameters pairs the sine and cosine components of one axis.
type WaveFormParameters struct {
	Sin *WaveParameters `toml:"sin,omitempty" yaml:"sin,omitempty"`
	Cos *WaveParameters `toml:"cos,omitempty" yaml:"cos,omitempty"`
}

// Parameters is the full per-axis parameter bundle owned by a State.
type Parameters struct {
	X WaveFormParameters `toml:"x" yaml:"x"`
	Y WaveFormParameters `toml:"y" yaml:"y"`
}

// Float returns a pointer to v, for populating optional parameter fields.
func Float(v float64) *float64 { return &v }

// Resolve applies defaults to p. A nil receiver, or a zero period, resolves
// to the default unit wave values.
func (p *WaveParameters) Resolve() Wave {
	w := DefaultWave()
	if p == nil {
		return w
	}
	if p.HorizontalDisplacement != nil {
		w.HorizontalDisplacement = *p.HorizontalDisplacement
	}
	if p.VerticalDisplacement != nil {
		w.VerticalDisplacement = *p.VerticalDisplacement
	}
	if p.Amplitude != nil {
		w.Amplitude = *p.Amplitude
	}
	if p.Period != nil && *p.Period != 0 {
		w.Period = *p.Period
	}
	return w
}

// Validate reports ErrInvalidParameter when an explicit period is not
// positive. Non-finite values are left to propagate through evaluation.
func (p *WaveParameters) Validate() error {
	if p == nil || p.Period == nil {
		return nil
	}
	if *p.Period <= 0 {
		return fmt.Errorf("%w: period must be positive, got %v", ErrInvalidParameter, *p.Period)
	}
	return nil
}

// Validate checks both components of the wave form.
func (f WaveFormParameters) Validate() error {
	if err := f.Sin.Validate(); err != nil {
		return fmt.Errorf("sin: %w", err)
	}
	if err := f.Cos.Validate(); err != nil {
		return fmt.Errorf("cos: %w", err)
	}
	return nil
}

// Validate checks every bucket of the bundle.
func (p Parameters) Validate() error {
	if err := p.X.Validate(); err != nil {
		return fmt.Errorf("x.%w", err)
	}
	if err := p.Y.Validate(); err != nil {
		return fmt.Errorf("y.%w", err)
	}
	return nil
}

// Clone returns a deep copy of p sharing no pointers with it.
func (p Parameters) Clone() Parameters {
	var out Parameters
	if err := copier.CopyWithOption(&out, &p, copier.Option{DeepCopy: true}); err != nil {
		// copier only fails on mismatched kinds, which identical types rule out.
		panic(err)
	}
	return out
}
