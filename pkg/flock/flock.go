package flock

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/lao-tseu-is-alive/go-flocking-boids/pkg/geometry"
)

var (
	// ErrNegativeElapsed is returned when a frame is asked to run backwards.
	ErrNegativeElapsed = errors.New("elapsed time must not be negative")
	// ErrInvalidElapsed is returned for a NaN or infinite frame time.
	ErrInvalidElapsed = errors.New("elapsed time must be finite")
)

// Pose is the rendering view of one boid for one frame.
type Pose struct {
	X, Y    float32
	Size    float32
	Heading float32 // radians
}

// PoseSink receives the poses of a frame, once every agent has been updated.
// The flock never depends on what the sink does with them.
type PoseSink interface {
	Submit(p Pose)
}

// PoseSinkFunc adapts a plain function to PoseSink.
type PoseSinkFunc func(p Pose)

// Submit implements PoseSink.
func (f PoseSinkFunc) Submit(p Pose) { f(p) }

// Spawn places one agent when building a flock by hand.
type Spawn struct {
	Position geometry.Vector2D
	Velocity geometry.Vector2D
}

// Stats describes the last completed frame.
type Stats struct {
	Frames        uint64
	Agents        int
	MeanNeighbors float64 // average count of agents within Range
	Preserved     int     // agents whose steered velocity was too small to normalize
}

// Flock owns a fixed population of agents and moves them frame by frame.
// It is not safe for concurrent use: exactly one goroutine drives Update.
type Flock struct {
	params Parameters
	agents []*Agent
	nextID int

	// per-frame buffers, reused to keep Update allocation free
	snapshot Snapshot
	steering []geometry.Vector2D

	stats Stats
}

// New builds a flock of params.Population agents with random positions in
// [0, SpawnExtent)² and random headings in [-π, π].
// A nil rng draws a random seed.
func New(params Parameters, rng *rand.Rand) (*Flock, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	f := newFlock(params)
	for i := 0; i < params.Population; i++ {
		position := geometry.Vector2D{
			X: rng.Float64() * params.SpawnExtent,
			Y: rng.Float64() * params.SpawnExtent,
		}
		heading := -math.Pi + rng.Float64()*2*math.Pi
		f.agents = append(f.agents, NewAgent(f.allocateID(), position, heading, params.Speed))
	}
	return f, nil
}

// NewSeeded is New with a deterministic PCG source.
func NewSeeded(params Parameters, seed uint64) (*Flock, error) {
	return New(params, rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// NewFromSpawns builds a flock with the given initial states, in order.
// params.Population is ignored, the population is len(spawns).
func NewFromSpawns(params Parameters, spawns []Spawn) (*Flock, error) {
	params.Population = len(spawns)
	if err := params.Validate(); err != nil {
		return nil, err
	}

	f := newFlock(params)
	for _, s := range spawns {
		a := &Agent{ID: f.allocateID(), Position: s.Position, Velocity: s.Velocity}
		a.UpdateHeading()
		f.agents = append(f.agents, a)
	}
	return f, nil
}

func newFlock(params Parameters) *Flock {
	return &Flock{
		params:   params,
		agents:   make([]*Agent, 0, params.Population),
		snapshot: make(Snapshot, 0, params.Population),
		steering: make([]geometry.Vector2D, params.Population),
		stats:    Stats{Agents: params.Population},
	}
}

// allocateID hands out the next identifier; IDs are never reused within a flock.
func (f *Flock) allocateID() int {
	id := f.nextID
	f.nextID++
	return id
}

// Parameters returns the constants the flock was built with.
func (f *Flock) Parameters() Parameters { return f.params }

// Len returns the population size.
func (f *Flock) Len() int { return len(f.agents) }

// Agents returns a copy of every agent, in insertion order.
func (f *Flock) Agents() []Agent {
	out := make([]Agent, len(f.agents))
	for i, a := range f.agents {
		out[i] = *a
	}
	return out
}

// Agent returns a copy of the agent with the given ID.
func (f *Flock) Agent(id int) (Agent, bool) {
	for _, a := range f.agents {
		if a.ID == id {
			return *a, true
		}
	}
	return Agent{}, false
}

// Stats returns the statistics of the last completed frame.
func (f *Flock) Stats() Stats { return f.stats }

// Poses submits the current pose of every agent without advancing the simulation.
func (f *Flock) Poses(sink PoseSink) {
	if sink == nil {
		return
	}
	for _, a := range f.agents {
		sink.Submit(a.Pose(f.params.Size))
	}
}

// Update advances the flock by elapsed seconds inside the given world.
//
// All steering is computed against a snapshot frozen at the start of the
// frame, then applied in a second pass, so the result does not depend on
// the order of the agents. Poses are submitted to sink (which may be nil)
// after the last agent moved. Invalid input is rejected and nothing moves.
func (f *Flock) Update(elapsed float64, extent geometry.Extent, sink PoseSink) error {
	if math.IsNaN(elapsed) || math.IsInf(elapsed, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidElapsed, elapsed)
	}
	if elapsed < 0 {
		return fmt.Errorf("%w: got %v", ErrNegativeElapsed, elapsed)
	}
	if err := extent.Validate(); err != nil {
		return err
	}

	neighbors, preserved := 0, 0
	if f.params.FlockingEnabled() {
		neighbors = f.steer()
		preserved = f.applySteering()
	} else {
		// heading driven: nothing to steer, the velocity follows the fixed heading
		for _, a := range f.agents {
			a.UpdateVelocity(f.params.Speed)
		}
	}

	for _, a := range f.agents {
		a.IntegratePosition(elapsed)
		a.WrapPosition(extent)
	}

	f.stats.Frames++
	f.stats.Agents = len(f.agents)
	f.stats.Preserved = preserved
	f.stats.MeanNeighbors = 0
	if len(f.agents) > 0 {
		f.stats.MeanNeighbors = float64(neighbors) / float64(len(f.agents))
	}

	f.Poses(sink)
	return nil
}

// steer is the first pass: every rule reads the frozen snapshot and the
// combined contribution lands in f.steering. It returns the total neighbor count.
func (f *Flock) steer() int {
	f.snapshot = f.snapshot.capture(f.agents)
	if cap(f.steering) < len(f.agents) {
		f.steering = make([]geometry.Vector2D, len(f.agents))
	}
	f.steering = f.steering[:len(f.agents)]

	total := 0
	for i, self := range f.snapshot {
		s := Steer(self, f.snapshot, f.params)
		f.steering[i] = s.Sum()
		total += s.Neighbors
	}
	return total
}

// applySteering is the second pass: velocities are pinned back to Speed and
// headings follow. A steered velocity too small to normalize is discarded and
// the agent keeps the velocity it had. It returns how many agents were kept.
func (f *Flock) applySteering() int {
	preserved := 0
	for i, a := range f.agents {
		v, ok := a.Velocity.Add(f.steering[i]).WithLen(f.params.Speed)
		if ok {
			a.Velocity = v
		} else {
			preserved++
		}
		a.UpdateHeading()
	}
	return preserved
}
