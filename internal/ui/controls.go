package ui

import (
	"image"
	"math"
	"strconv"

	"wavefield/internal/core"
)

// ControlState is the HUD-side view of one adjustable parameter.
type ControlState struct {
	Control  core.ParameterControl
	Value    float64
	HasValue bool

	Top       int
	MinusRect image.Rectangle
	PlusRect  image.Rectangle
}

// Panel tracks parameter controls and forwards adjustments to a setter. It
// holds no ebiten state so it works in headless builds.
type Panel struct {
	controls []ControlState
	getter   core.FloatParameterGetter
	setter   core.FloatParameterSetter
	width    int
}

// NewPanel builds a panel of the given pixel width for target. Controls are
// only populated when target provides them.
func NewPanel(target any, width int) *Panel {
	p := &Panel{width: width}
	if provider, ok := target.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			p.controls = append(p.controls, ControlState{Control: ctrl})
		}
	}
	if g, ok := target.(core.FloatParameterGetter); ok {
		p.getter = g
	}
	if s, ok := target.(core.FloatParameterSetter); ok {
		p.setter = s
	}
	p.layout()
	p.Refresh()
	return p
}

// Controls exposes the control states in display order.
func (p *Panel) Controls() []ControlState { return p.controls }

// Refresh re-reads every control value from the getter.
func (p *Panel) Refresh() {
	for i := range p.controls {
		st := &p.controls[i]
		if p.getter == nil {
			st.HasValue = false
			continue
		}
		st.Value, st.HasValue = p.getter.FloatParameter(st.Control.Key)
	}
}

// Adjust moves control i by direction steps, clamped to its bounds. It
// reports whether the setter accepted a new value.
func (p *Panel) Adjust(i, direction int) bool {
	if i < 0 || i >= len(p.controls) || direction == 0 || p.setter == nil {
		return false
	}
	st := &p.controls[i]
	if !st.HasValue {
		return false
	}
	target := st.Control.Clamp(st.Value + float64(direction)*step(st.Control))
	if math.Abs(target-st.Value) < 1e-9 {
		return false
	}
	if !p.setter.SetFloatParameter(st.Control.Key, target) {
		return false
	}
	st.Value = target
	return true
}

// CanAdjust reports whether control i can move in direction.
func (p *Panel) CanAdjust(i, direction int) bool {
	if i < 0 || i >= len(p.controls) || direction == 0 || p.setter == nil {
		return false
	}
	st := p.controls[i]
	if !st.HasValue {
		return false
	}
	target := st.Value + float64(direction)*step(st.Control)
	if st.Control.HasMin && direction < 0 && target < st.Control.Min-1e-9 {
		return st.Value > st.Control.Min
	}
	if st.Control.HasMax && direction > 0 && target > st.Control.Max+1e-9 {
		return st.Value < st.Control.Max
	}
	return true
}

// Click applies the button under (x, y), in panel coordinates.
func (p *Panel) Click(x, y int) bool {
	for i := range p.controls {
		if pointInRect(x, y, p.controls[i].MinusRect) {
			return p.Adjust(i, -1)
		}
		if pointInRect(x, y, p.controls[i].PlusRect) {
			return p.Adjust(i, 1)
		}
	}
	return false
}

// Height returns the pixel height needed to show every control.
func (p *Panel) Height() int {
	return controlsTop + len(p.controls)*lineHeight + panelPadding
}

// FormatValue renders a control value with precision matched to its step.
func FormatValue(ctrl core.ParameterControl, value float64) string {
	s := step(ctrl)
	precision := 1
	switch {
	case s < 0.001:
		precision = 4
	case s < 0.01:
		precision = 3
	case s < 0.1 || s != math.Trunc(s*10)/10:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

func step(ctrl core.ParameterControl) float64 {
	if ctrl.Step <= 0 {
		return 0.05
	}
	return ctrl.Step
}

func (p *Panel) layout() {
	if p.width <= 0 {
		return
	}
	for i := range p.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plus := image.Rect(p.width-panelPadding-buttonSize, buttonY, p.width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		p.controls[i].Top = top
		p.controls[i].MinusRect = minus
		p.controls[i].PlusRect = plus
	}
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

const (
	panelPadding   = 12
	lineHeight     = 26
	buttonSize     = 20
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 18
	controlsTop    = panelPadding + headerBaseline + 10
)
