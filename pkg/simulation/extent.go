package simulation

import (
	"sync/atomic"

	"github.com/lao-tseu-is-alive/go-flocking-boids/pkg/geometry"
)

// ExtentSource reports the current world size, once per frame.
type ExtentSource interface {
	Extent() geometry.Extent
}

// StaticExtent is a world that never resizes.
type StaticExtent geometry.Extent

// Extent implements ExtentSource.
func (s StaticExtent) Extent() geometry.Extent { return geometry.Extent(s) }

// AtomicExtent lets the UI goroutine publish window resizes to the actor goroutine.
type AtomicExtent struct {
	v atomic.Pointer[geometry.Extent]
}

// NewAtomicExtent creates an AtomicExtent holding initial.
func NewAtomicExtent(initial geometry.Extent) *AtomicExtent {
	a := &AtomicExtent{}
	a.Set(initial)
	return a
}

// Set publishes a new extent.
func (a *AtomicExtent) Set(e geometry.Extent) {
	a.v.Store(&e)
}

// Extent implements ExtentSource.
func (a *AtomicExtent) Extent() geometry.Extent {
	if e := a.v.Load(); e != nil {
		return *e
	}
	return geometry.Extent{}
}
