package flock

import (
	"errors"
	"fmt"
)

// ErrInvalidParameters is wrapped by every Parameters.Validate failure.
var ErrInvalidParameters = errors.New("invalid flock parameters")

// Parameters controls the simulation-wide constants of a flock.
// They are fixed when the Flock is built; agents never carry their own copy.
type Parameters struct {
	Population int // number of boids, fixed for the lifetime of the flock

	Range              float64 // perception radius for cohesion and alignment
	SeparationDistance float64 // personal space radius for separation

	CohesionWeight   float64 // pull toward the local center of mass
	SeparationWeight float64 // push away from close neighbors
	AlignmentWeight  float64 // pull toward the local mean velocity

	Speed float64 // every boid moves at exactly this speed, in units per second
	Size  float64 // sprite size reported to the pose sink

	SpawnExtent float64 // boids start uniformly inside [0, SpawnExtent)²
}

// DefaultParameters returns the reference tuning: 50 boids at 128 px/s.
func DefaultParameters() Parameters {
	return Parameters{
		Population:         50,
		Range:              300,
		SeparationDistance: 30,
		CohesionWeight:     0.005,
		SeparationWeight:   0.2,
		AlignmentWeight:    0.125,
		Speed:              128,
		Size:               32,
		SpawnExtent:        200,
	}
}

// FlockingEnabled is false when every steering weight is zero.
// In that mode boids keep their spawn heading forever.
func (p Parameters) FlockingEnabled() bool {
	return p.CohesionWeight != 0 || p.SeparationWeight != 0 || p.AlignmentWeight != 0
}

// Validate checks that the parameters describe a usable flock.
func (p Parameters) Validate() error {
	switch {
	case p.Population < 0:
		return fmt.Errorf("%w: population %d is negative", ErrInvalidParameters, p.Population)
	case p.Speed <= 0:
		return fmt.Errorf("%w: speed %.2f must be positive", ErrInvalidParameters, p.Speed)
	case p.Size <= 0:
		return fmt.Errorf("%w: size %.2f must be positive", ErrInvalidParameters, p.Size)
	case p.Range < 0 || p.SeparationDistance < 0:
		return fmt.Errorf("%w: range %.2f and separation distance %.2f must not be negative",
			ErrInvalidParameters, p.Range, p.SeparationDistance)
	case p.CohesionWeight < 0 || p.SeparationWeight < 0 || p.AlignmentWeight < 0:
		return fmt.Errorf("%w: steering weights must not be negative", ErrInvalidParameters)
	case p.SpawnExtent <= 0:
		return fmt.Errorf("%w: spawn extent %.2f must be positive", ErrInvalidParameters, p.SpawnExtent)
	}
	return nil
}
