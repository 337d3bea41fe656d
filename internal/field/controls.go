package field

import (
	"wavefield/internal/core"
	"wavefield/internal/wave"
)

// Slider bounds for parameter controls.
const (
	controlMin  = 0.0
	controlMax  = 10.0
	controlStep = 0.25
)

// ParameterControls lists one control per wave parameter, grouped by axis
// and wave. Periods stay strictly positive.
func (f *Field) ParameterControls() []core.ParameterControl {
	keys := wave.Keys()
	controls := make([]core.ParameterControl, 0, len(keys))
	for _, k := range keys {
		c := core.ParameterControl{
			Key:    k.String(),
			Label:  k.Field.String(),
			Group:  k.Axis.String() + " " + k.Kind.String(),
			Step:   controlStep,
			Min:    controlMin,
			Max:    controlMax,
			HasMin: true,
			HasMax: true,
		}
		if k.Field == wave.Period {
			c.Min = controlStep
		}
		controls = append(controls, c)
	}
	return controls
}

// FloatParameter returns the resolved value of the parameter named key.
func (f *Field) FloatParameter(key string) (float64, bool) {
	k, err := wave.ParseKey(key)
	if err != nil {
		return 0, false
	}
	return f.state.Parameters().Value(k), true
}

// SetFloatParameter sets the parameter named key, leaving every other
// parameter as is. The field needs a Refresh afterwards.
func (f *Field) SetFloatParameter(key string, value float64) bool {
	k, err := wave.ParseKey(key)
	if err != nil {
		f.log.Warn("unknown parameter", "key", key)
		return false
	}
	if err := f.SetParameters(wave.SetValue(k, value)); err != nil {
		f.log.Warn("parameter rejected", "key", key, "value", value, "err", err)
		return false
	}
	return true
}

// Snapshot groups the current parameter values for display.
func (f *Field) Snapshot() core.ParameterSnapshot {
	p := f.state.Parameters()
	var snap core.ParameterSnapshot
	for _, k := range wave.Keys() {
		name := k.Axis.String() + " " + k.Kind.String()
		if n := len(snap.Groups); n == 0 || snap.Groups[n-1].Name != name {
			snap.Groups = append(snap.Groups, core.ParameterGroup{Name: name})
		}
		g := &snap.Groups[len(snap.Groups)-1]
		g.Params = append(g.Params, core.Parameter{Key: k.String(), Label: k.Field.String(), Value: p.Value(k)})
	}
	return snap
}
