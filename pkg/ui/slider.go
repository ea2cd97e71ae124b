package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Slider is a simple UI widget for a bounded float value
type Slider struct {
	Label    string
	Value    float64
	Min, Max float64
	X, Y     float64
	W, H     float64
}

// NewSlider creates a new slider, the value is clamped into [min, max]
func NewSlider(x, y, width float64, label string, min, max, value float64) *Slider {
	s := &Slider{
		Label: label,
		Min:   min,
		Max:   max,
		X:     x,
		Y:     y,
		W:     width,
		H:     12,
	}
	s.SetValue(value)
	return s
}

// SetValue stores v clamped into [Min, Max]
func (s *Slider) SetValue(v float64) {
	if v < s.Min {
		v = s.Min
	}
	if v > s.Max {
		v = s.Max
	}
	s.Value = v
}

// ValueAt converts a horizontal cursor position into a slider value
func (s *Slider) ValueAt(mx float64) float64 {
	if s.W <= 0 {
		return s.Min
	}
	p := (mx - s.X) / s.W
	return s.Min + p*(s.Max-s.Min)
}

// Contains reports whether the point is inside the slider track
func (s *Slider) Contains(mx, my float64) bool {
	return mx >= s.X && mx <= s.X+s.W && my >= s.Y && my <= s.Y+s.H
}

// Update checks for mouse interaction
func (s *Slider) Update() {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return
	}
	x, y := ebiten.CursorPosition()
	mx, my := float64(x), float64(y)
	if s.Contains(mx, my) {
		s.SetValue(s.ValueAt(mx))
	}
}

// Draw renders the slider
func (s *Slider) Draw(screen *ebiten.Image) {
	// Track (Dark Gray)
	vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W), float32(s.H), color.RGBA{R: 80, G: 80, B: 80, A: 255}, true)

	// Value Bar (Light Gray)
	ratio := 0.0
	if s.Max > s.Min {
		ratio = (s.Value - s.Min) / (s.Max - s.Min)
	}
	vector.FillRect(screen, float32(s.X), float32(s.Y), float32(s.W*ratio), float32(s.H), color.RGBA{R: 200, G: 200, B: 200, A: 255}, true)
}
