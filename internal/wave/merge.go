package wave

import (
	"fmt"
	"strings"
)

// Axis names one of the two grid axes.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisY {
		return "y"
	}
	return "x"
}

// Field names one of the four scalar wave parameters.
type Field uint8

const (
	Period Field = iota
	Amplitude
	VerticalDisplacement
	HorizontalDisplacement
)

var fieldNames = [...]string{
	Period:                 "period",
	Amplitude:              "amplitude",
	VerticalDisplacement:   "verticalDisplacement",
	HorizontalDisplacement: "horizontalDisplacement",
}

func (f Field) String() string {
	if int(f) < len(fieldNames) {
		return fieldNames[f]
	}
	return "unknown"
}

// Key addresses a single scalar in a Parameters bundle, written as
// "x.sin.period".
type Key struct {
	Axis  Axis
	Kind  Kind
	Field Field
}

func (k Key) String() string {
	return k.Axis.String() + "." + k.Kind.String() + "." + k.Field.String()
}

// ParseKey parses the dotted form produced by Key.String.
func ParseKey(s string) (Key, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 3 {
		return Key{}, fmt.Errorf("%w: key %q is not axis.wave.field", ErrInvalidParameter, s)
	}
	var k Key
	switch parts[0] {
	case "x":
		k.Axis = AxisX
	case "y":
		k.Axis = AxisY
	default:
		return Key{}, fmt.Errorf("%w: unknown axis %q in key %q", ErrInvalidParameter, parts[0], s)
	}
	switch parts[1] {
	case "sin":
		k.Kind = Sine
	case "cos":
		k.Kind = Cosine
	default:
		return Key{}, fmt.Errorf("%w: unknown wave %q in key %q", ErrInvalidParameter, parts[1], s)
	}
	found := false
	for i, name := range fieldNames {
		if parts[2] == name {
			k.Field = Field(i)
			found = true
			break
		}
	}
	if !found {
		return Key{}, fmt.Errorf("%w: unknown field %q in key %q", ErrInvalidParameter, parts[2], s)
	}
	return k, nil
}

// Keys lists every addressable scalar, grouped by axis and wave.
func Keys() []Key {
	keys := make([]Key, 0, 16)
	for _, a := range []Axis{AxisX, AxisY} {
		for _, kind := range []Kind{Sine, Cosine} {
			for f := range fieldNames {
				keys = append(keys, Key{Axis: a, Kind: kind, Field: Field(f)})
			}
		}
	}
	return keys
}

func (p *Parameters) form(a Axis) *WaveFormParameters {
	if a == AxisY {
		return &p.Y
	}
	return &p.X
}

func (f *WaveFormParameters) component(k Kind) **WaveParameters {
	if k == Cosine {
		return &f.Cos
	}
	return &f.Sin
}

func (w *WaveParameters) slot(f Field) **float64 {
	switch f {
	case Amplitude:
		return &w.Amplitude
	case VerticalDisplacement:
		return &w.VerticalDisplacement
	case HorizontalDisplacement:
		return &w.HorizontalDisplacement
	default:
		return &w.Period
	}
}

// Value returns the resolved value addressed by k, defaults included.
func (p Parameters) Value(k Key) float64 {
	w := (*p.form(k.Axis).component(k.Kind)).Resolve()
	switch k.Field {
	case Amplitude:
		return w.Amplitude
	case VerticalDisplacement:
		return w.VerticalDisplacement
	case HorizontalDisplacement:
		return w.HorizontalDisplacement
	default:
		return w.Period
	}
}

// Merge returns base overridden by every non-nil field of over. The result
// shares no pointers with either argument.
func Merge(base, over Parameters) Parameters {
	return Parameters{
		X: mergeForm(base.X, over.X),
		Y: mergeForm(base.Y, over.Y),
	}
}

func mergeForm(base, over WaveFormParameters) WaveFormParameters {
	return WaveFormParameters{
		Sin: mergeWave(base.Sin, over.Sin),
		Cos: mergeWave(base.Cos, over.Cos),
	}
}

func mergeWave(base, over *WaveParameters) *WaveParameters {
	if base == nil && over == nil {
		return nil
	}
	out := &WaveParameters{}
	for f := range fieldNames {
		dst := out.slot(Field(f))
		if over != nil {
			if v := *over.slot(Field(f)); v != nil {
				*dst = Float(*v)
				continue
			}
		}
		if base != nil {
			if v := *base.slot(Field(f)); v != nil {
				*dst = Float(*v)
			}
		}
	}
	return out
}

// Identity returns its input unchanged.
func Identity(p Parameters) Parameters { return p }

// With returns an updater that merges over into the current bundle.
func With(over Parameters) Updater {
	return func(p Parameters) Parameters { return Merge(p, over) }
}

// SetValue returns an updater that sets the scalar addressed by k to v and
// keeps every other field.
func SetValue(k Key, v float64) Updater {
	var over Parameters
	comp := over.form(k.Axis).component(k.Kind)
	*comp = &WaveParameters{}
	*(*comp).slot(k.Field) = Float(v)
	return With(over)
}

// Shift returns an updater that adds delta to the resolved value at k.
func Shift(k Key, delta float64) Updater {
	return func(p Parameters) Parameters {
		return SetValue(k, p.Value(k)+delta)(p)
	}
}
