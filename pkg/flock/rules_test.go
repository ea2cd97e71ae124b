package flock

import (
	"math/rand/v2"
	"testing"

	"github.com/lao-tseu-is-alive/go-flocking-boids/pkg/geometry"
	"github.com/stretchr/testify/assert"
)

const tolerance = 1e-9

func vec(x, y float64) geometry.Vector2D { return geometry.Vector2D{X: x, Y: y} }

func assertVector(t *testing.T, want, got geometry.Vector2D, msg string) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tolerance, "%s: X of %v", msg, got)
	assert.InDelta(t, want.Y, got.Y, tolerance, "%s: Y of %v", msg, got)
}

func TestSnapshot_WithinExcludesSelfAndFarAgents(t *testing.T) {
	snap := Snapshot{
		{ID: 0, Position: vec(0, 0)},
		{ID: 1, Position: vec(10, 0)},
		{ID: 2, Position: vec(300, 0)}, // exactly on the radius
		{ID: 3, Position: vec(1000, 1000)},
	}

	var seen []int
	snap.Within(vec(0, 0), 300, 0, func(s State) { seen = append(seen, s.ID) })

	assert.Equal(t, []int{1}, seen)
}

func TestSnapshot_WithinIsSymmetric(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	snap := make(Snapshot, 40)
	for i := range snap {
		snap[i] = State{ID: i, Position: vec(rng.Float64()*800, rng.Float64()*600)}
	}

	const radius = 150.0
	sees := func(from State) map[int]bool {
		out := map[int]bool{}
		snap.Within(from.Position, radius, from.ID, func(s State) { out[s.ID] = true })
		return out
	}

	for _, a := range snap {
		fromA := sees(a)
		for _, b := range snap {
			if a.ID == b.ID {
				continue
			}
			assert.Equal(t, fromA[b.ID], sees(b)[a.ID],
				"agents %d and %d disagree on being neighbors", a.ID, b.ID)
		}
	}
}

func TestCohesion(t *testing.T) {
	p := DefaultParameters()
	me := State{ID: 0, Position: vec(0, 0)}

	t.Run("PullsTowardLocalCenter", func(t *testing.T) {
		snap := Snapshot{me,
			{ID: 1, Position: vec(10, 0)},
			{ID: 2, Position: vec(0, 10)},
		}
		// center (5, 5) scaled by 0.005
		assertVector(t, vec(0.025, 0.025), Cohesion(me, snap, p), "cohesion")
	})

	t.Run("NoNeighborIsZero", func(t *testing.T) {
		snap := Snapshot{me, {ID: 1, Position: vec(500, 0)}}
		got := Cohesion(me, snap, p)
		assert.Equal(t, geometry.Zero, got)
		assert.True(t, got.IsFinite())
	})
}

func TestSeparation(t *testing.T) {
	p := DefaultParameters()
	me := State{ID: 0, Position: vec(0, 0)}

	t.Run("PushesAwayFromCloseNeighbors", func(t *testing.T) {
		snap := Snapshot{me,
			{ID: 1, Position: vec(10, 0)},
			{ID: 2, Position: vec(0, 20)},
			{ID: 3, Position: vec(100, 0)}, // in range, but not too close
		}
		// (-10, 0) + (0, -20) scaled by 0.2
		assertVector(t, vec(-2, -4), Separation(me, snap, p), "separation")
	})

	t.Run("NoCloseNeighborIsZero", func(t *testing.T) {
		snap := Snapshot{me, {ID: 1, Position: vec(100, 0)}}
		assert.Equal(t, geometry.Zero, Separation(me, snap, p))
	})
}

func TestAlignment(t *testing.T) {
	p := DefaultParameters()
	me := State{ID: 0, Position: vec(0, 0), Velocity: vec(128, 0)}

	t.Run("MatchesNeighborVelocity", func(t *testing.T) {
		snap := Snapshot{me,
			{ID: 1, Position: vec(50, 0), Velocity: vec(128, 0)},
			{ID: 2, Position: vec(0, 50), Velocity: vec(0, 128)},
		}
		// mean (64, 64) minus (128, 0), scaled by 0.125
		assertVector(t, vec(-8, 8), Alignment(me, snap, p), "alignment")
	})

	t.Run("NoNeighborIsZero", func(t *testing.T) {
		assert.Equal(t, geometry.Zero, Alignment(me, Snapshot{me}, p))
	})
}

func TestSteer_TwoCloseAgentsWithSameVelocity(t *testing.T) {
	p := DefaultParameters()
	a := State{ID: 0, Position: vec(100, 100), Velocity: vec(128, 0)}
	b := State{ID: 1, Position: vec(100, 110), Velocity: vec(128, 0)}
	snap := Snapshot{a, b}

	sa := Steer(a, snap, p)
	sb := Steer(b, snap, p)

	assert.Equal(t, geometry.Zero, sa.Alignment, "matching velocities need no alignment")
	assert.Equal(t, geometry.Zero, sb.Alignment, "matching velocities need no alignment")
	assert.Greater(t, sa.Separation.Dot(a.Position.Sub(b.Position)), 0.0, "a must be pushed away from b")
	assert.Greater(t, sb.Separation.Dot(b.Position.Sub(a.Position)), 0.0, "b must be pushed away from a")
	assert.Equal(t, 1, sa.Neighbors)
	assert.Equal(t, 1, sb.Neighbors)
}

func TestSteer_ZeroWeightsContributeNothing(t *testing.T) {
	p := DefaultParameters()
	p.CohesionWeight, p.SeparationWeight, p.AlignmentWeight = 0, 0, 0
	a := State{ID: 0, Position: vec(0, 0), Velocity: vec(128, 0)}
	snap := Snapshot{a,
		{ID: 1, Position: vec(5, 5), Velocity: vec(0, -128)},
	}

	assert.Equal(t, geometry.Zero, Steer(a, snap, p).Sum())
}
