package sinewalk

import (
	"fmt"

	"github.com/jbeda/geom"
)

// Panel layout in pixels.
const (
	panelWidth     = 200.0
	panelRowHeight = 22.0
	panelPadding   = 6.0
	sliderBarH     = 6.0
	toggleBoxSize  = 12.0
	debugFontLineH = 16.0
)

var (
	panelBackground = Color{0.15, 0.15, 0.15, 0.85}
	panelTrack      = Color{0.35, 0.35, 0.35, 1}
	panelFill       = Color{0.35, 0.6, 0.9, 1}
	panelOff        = Color{0.25, 0.25, 0.25, 1}
)

// Slider is a labeled numeric control.
type Slider struct {
	Label    string
	Value    float64
	Min, Max float64
	bar      geom.Rect
}

// setFromX maps a screen x over the bar to a value in [Min, Max].
func (s *Slider) setFromX(x float64) {
	w := s.bar.Width()
	if w <= 0 {
		return
	}
	t := clamp01((x - s.bar.Min.X) / w)
	s.Value = s.Min + t*(s.Max-s.Min)
}

// Toggle is a labeled boolean control.
type Toggle struct {
	Label string
	Value bool
	box   geom.Rect
}

// Panel is the on-screen parameter panel. It owns the current Params values.
type Panel struct {
	origin  Vec2
	bounds  geom.Rect
	sliders []*Slider
	toggles []*Toggle

	speed, amplitude, cycles *Slider
	showPath, useImage       *Toggle

	active  *Slider // slider captured by the pointer
	visible bool
}

// NewPanel lays out the panel at origin with p as initial values.
func NewPanel(p Params, origin Vec2) *Panel {
	p = p.Clamp()
	pn := &Panel{origin: origin, visible: true}
	pn.speed = pn.addSlider("Speed", p.Speed, SpeedMin, SpeedMax)
	pn.amplitude = pn.addSlider("Amplitude", p.Amplitude, AmplitudeMin, AmplitudeMax)
	pn.cycles = pn.addSlider("Cycles", p.Cycles, CyclesMin, CyclesMax)
	pn.showPath = pn.addToggle("Show Path", p.ShowPath)
	pn.useImage = pn.addToggle("Use Image", p.UseImage)
	pn.layout()
	return pn
}

func (pn *Panel) addSlider(label string, v, lo, hi float64) *Slider {
	s := &Slider{Label: label, Value: v, Min: lo, Max: hi}
	pn.sliders = append(pn.sliders, s)
	return s
}

func (pn *Panel) addToggle(label string, v bool) *Toggle {
	t := &Toggle{Label: label, Value: v}
	pn.toggles = append(pn.toggles, t)
	return t
}

// layout computes every widget's hit rectangle. Sliders take two rows
// (label, bar); toggles take one.
func (pn *Panel) layout() {
	x0 := pn.origin.X + panelPadding
	x1 := pn.origin.X + panelWidth - panelPadding
	y := pn.origin.Y + panelPadding
	for _, s := range pn.sliders {
		y += debugFontLineH
		barY := y + (panelRowHeight-debugFontLineH-sliderBarH)/2
		s.bar = geom.Rect{
			Min: geom.Coord{X: x0, Y: barY - 4},
			Max: geom.Coord{X: x1, Y: barY + sliderBarH + 4},
		}
		y += panelRowHeight - debugFontLineH + 4
	}
	for _, t := range pn.toggles {
		t.box = geom.Rect{
			Min: geom.Coord{X: x0, Y: y},
			Max: geom.Coord{X: x1, Y: y + toggleBoxSize + 2},
		}
		y += panelRowHeight
	}
	pn.bounds = geom.Rect{
		Min: geom.Coord{X: pn.origin.X, Y: pn.origin.Y},
		Max: geom.Coord{X: pn.origin.X + panelWidth, Y: y + panelPadding},
	}
}

// Params returns the current values.
func (pn *Panel) Params() Params {
	return Params{
		Speed:     pn.speed.Value,
		Amplitude: pn.amplitude.Value,
		Cycles:    pn.cycles.Value,
		ShowPath:  pn.showPath.Value,
		UseImage:  pn.useImage.Value,
	}
}

// SetShowPath sets the Show Path toggle.
func (pn *Panel) SetShowPath(v bool) { pn.showPath.Value = v }

// SetUseImage sets the Use Image toggle.
func (pn *Panel) SetUseImage(v bool) { pn.useImage.Value = v }

// SetVisible shows or hides the panel. A hidden panel ignores the pointer.
func (pn *Panel) SetVisible(v bool) {
	pn.visible = v
	if !v {
		pn.active = nil
	}
}

// Visible reports whether the panel is shown.
func (pn *Panel) Visible() bool { return pn.visible }

// Contains reports whether p is over the panel.
func (pn *Panel) Contains(p Vec2) bool {
	return pn.visible && pn.bounds.ContainsCoord(geom.Coord{X: p.X, Y: p.Y})
}

// PointerDown handles a press. Returns true if the panel consumed it; a
// press on a slider bar captures the pointer until PointerUp.
func (pn *Panel) PointerDown(p Vec2) bool {
	if !pn.Contains(p) {
		return false
	}
	c := geom.Coord{X: p.X, Y: p.Y}
	for _, s := range pn.sliders {
		if s.bar.ContainsCoord(c) {
			pn.active = s
			s.setFromX(p.X)
			return true
		}
	}
	for _, t := range pn.toggles {
		if t.box.ContainsCoord(c) {
			t.Value = !t.Value
			return true
		}
	}
	return true
}

// PointerMove drags the captured slider. Returns true while captured.
func (pn *Panel) PointerMove(p Vec2) bool {
	if pn.active == nil {
		return false
	}
	pn.active.setFromX(p.X)
	return true
}

// PointerUp releases any captured slider. Returns true if one was captured.
func (pn *Panel) PointerUp() bool {
	captured := pn.active != nil
	pn.active = nil
	return captured
}

// Draw renders the panel.
func (pn *Panel) Draw(cv Canvas) {
	if !pn.visible {
		return
	}
	cv.FillRect(pn.bounds, panelBackground)
	for _, s := range pn.sliders {
		cv.DrawText(fmt.Sprintf("%s: %.1f", s.Label, s.Value), s.bar.Min.X, s.bar.Min.Y-debugFontLineH+2)
		track := s.bar
		track.Min.Y += 4
		track.Max.Y = track.Min.Y + sliderBarH
		cv.FillRect(track, panelTrack)
		fill := track
		if s.Max > s.Min {
			fill.Max.X = fill.Min.X + track.Width()*(s.Value-s.Min)/(s.Max-s.Min)
		}
		cv.FillRect(fill, panelFill)
	}
	for _, t := range pn.toggles {
		box := geom.Rect{
			Min: t.box.Min,
			Max: geom.Coord{X: t.box.Min.X + toggleBoxSize, Y: t.box.Min.Y + toggleBoxSize},
		}
		if t.Value {
			cv.FillRect(box, panelFill)
		} else {
			cv.FillRect(box, panelOff)
		}
		cv.DrawText(t.Label, box.Max.X+6, box.Min.Y-2)
	}
}
