package wave

import "math"

// Kind selects the trigonometric basis of a periodic wave.
type Kind uint8

const (
	Sine Kind = iota
	Cosine
)

func (k Kind) String() string {
	switch k {
	case Sine:
		return "sin"
	case Cosine:
		return "cos"
	default:
		return "unknown"
	}
}

// Func is a single-variable waveform.
type Func func(x float64) float64

// Evaluator is a scalar field over the plane.
type Evaluator func(x, y float64) float64

// Wave holds fully resolved wave parameters.
type Wave struct {
	HorizontalDisplacement float64
	VerticalDisplacement   float64
	Amplitude              float64
	Period                 float64
}

// DefaultWave returns the unit wave used for unset parameters.
func DefaultWave() Wave {
	return Wave{
		HorizontalDisplacement: DefaultHorizontalDisplacement,
		VerticalDisplacement:   DefaultVerticalDisplacement,
		Amplitude:              DefaultAmplitude,
		Period:                 DefaultPeriod,
	}
}

// Eval returns the wave value at x. Period is the number of x units per full
// cycle; a zero period is treated as DefaultPeriod.
func (w Wave) Eval(k Kind, x float64) float64 {
	period := w.Period
	if period == 0 {
		period = DefaultPeriod
	}
	angle := 2 * math.Pi * (x - w.HorizontalDisplacement) / period
	var t float64
	if k == Cosine {
		t = math.Cos(angle)
	} else {
		t = math.Sin(angle)
	}
	return w.VerticalDisplacement + w.Amplitude*t
}

// Periodic builds the waveform of kind k described by p.
func Periodic(k Kind, p *WaveParameters) Func {
	w := p.Resolve()
	return func(x float64) float64 { return w.Eval(k, x) }
}

// Compose sums the sine and cosine components of one axis. A missing
// component contributes the default unit wave, not zero; pass an explicit
// zero amplitude to silence it.
func Compose(f WaveFormParameters) Func {
	sin := f.Sin.Resolve()
	cos := f.Cos.Resolve()
	return func(x float64) float64 {
		return sin.Eval(Sine, x) + cos.Eval(Cosine, x)
	}
}

// Separable multiplies an x waveform by a y waveform.
func Separable(xf, yf Func) Evaluator {
	return func(x, y float64) float64 { return xf(x) * yf(y) }
}

// Build returns the evaluator for a full parameter bundle.
func Build(p Parameters) Evaluator {
	return Separable(Compose(p.X), Compose(p.Y))
}
