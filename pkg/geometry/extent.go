package geometry

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidExtent is returned when a world extent is not strictly positive and finite.
var ErrInvalidExtent = errors.New("world extent must be positive and finite")

// Extent is the size of the rectangular, wrap-around world.
// The world covers [0, Width) x [0, Height); its opposite edges are connected.
type Extent struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewExtent creates an Extent.
func NewExtent(width, height float64) Extent {
	return Extent{Width: width, Height: height}
}

// Validate returns ErrInvalidExtent when either side is not usable for wrapping.
func (e Extent) Validate() error {
	if !validSide(e.Width) || !validSide(e.Height) {
		return fmt.Errorf("%w: got %.2fx%.2f", ErrInvalidExtent, e.Width, e.Height)
	}
	return nil
}

func validSide(s float64) bool {
	return s > 0 && !math.IsNaN(s) && !math.IsInf(s, 0)
}

// Contains reports whether p lies in [0, Width) x [0, Height).
func (e Extent) Contains(p Vector2D) bool {
	return p.X >= 0 && p.X < e.Width && p.Y >= 0 && p.Y < e.Height
}

// Wrap moves p back into the world by at most one extent length per axis.
// It is a single correction, not a modulo: a point more than one extent
// outside stays out of bounds until the next call.
func (e Extent) Wrap(p Vector2D) Vector2D {
	return Vector2D{X: wrapAxis(p.X, e.Width), Y: wrapAxis(p.Y, e.Height)}
}

func wrapAxis(c, size float64) float64 {
	if c >= size {
		return c - size
	}
	if c < 0 {
		// -1e-17 + size rounds to size, which is outside [0, size)
		if w := c + size; w < size {
			return w
		}
		return 0
	}
	return c
}

// String implements the fmt.Stringer interface.
func (e Extent) String() string {
	return fmt.Sprintf("%.0fx%.0f", e.Width, e.Height)
}
