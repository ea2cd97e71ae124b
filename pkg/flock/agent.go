package flock

import (
	"math"

	"github.com/lao-tseu-is-alive/go-flocking-boids/pkg/geometry"
)

// Agent is one boid: a bird-like object steering with its neighbors.
// See Craig Reynolds, "Flocks, Herds, and Schools", SIGGRAPH 1987.
type Agent struct {
	ID       int
	Position geometry.Vector2D
	Velocity geometry.Vector2D
	Heading  float64 // radians, always atan2(Velocity.Y, Velocity.X) after an update
}

// NewAgent creates an agent heading in the given direction at the given speed.
func NewAgent(id int, position geometry.Vector2D, heading, speed float64) *Agent {
	a := &Agent{ID: id, Position: position, Heading: heading}
	a.UpdateVelocity(speed)
	return a
}

// UpdateHeading derives the heading from the current velocity.
func (a *Agent) UpdateHeading() {
	a.Heading = a.Velocity.Angle()
}

// UpdateVelocity derives the velocity from the current heading.
func (a *Agent) UpdateVelocity(speed float64) {
	a.Velocity = geometry.Vector2D{
		X: math.Cos(a.Heading) * speed,
		Y: math.Sin(a.Heading) * speed,
	}
}

// IntegratePosition moves the agent along its velocity for elapsed seconds.
// There is no substepping: a long frame means a long jump.
func (a *Agent) IntegratePosition(elapsed float64) {
	a.Position = a.Position.Add(a.Velocity.Mul(elapsed))
}

// WrapPosition brings the agent back into the world through the opposite edge.
// At most one extent length is corrected per axis and call.
func (a *Agent) WrapPosition(extent geometry.Extent) {
	a.Position = extent.Wrap(a.Position)
}

// Equal reports whether both agents are the same boid.
// Two boids sharing a position and velocity are still different boids.
func (a *Agent) Equal(other *Agent) bool {
	return other != nil && a.ID == other.ID
}

// State freezes the agent kinematics for neighbor queries.
func (a *Agent) State() State {
	return State{ID: a.ID, Position: a.Position, Velocity: a.Velocity}
}

// Pose is what the renderer needs to draw one boid.
func (a *Agent) Pose(size float64) Pose {
	return Pose{
		X:       float32(a.Position.X),
		Y:       float32(a.Position.Y),
		Size:    float32(size),
		Heading: float32(a.Heading),
	}
}
