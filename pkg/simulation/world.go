package simulation

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/lao-tseu-is-alive/go-flocking-boids/pkg/flock"
	"github.com/lao-tseu-is-alive/go-flocking-boids/pkg/geometry"
	"github.com/tochemey/goakt/v3/actor"
	"github.com/tochemey/goakt/v3/goaktpb"
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Frame is an immutable copy of the flock handed to the UI.
type Frame struct {
	Number uint64
	Extent geometry.Extent
	Poses  []flock.Pose
	Stats  flock.Stats
}

// frameRecorder collects the poses of one frame.
type frameRecorder struct {
	poses []flock.Pose
}

func (r *frameRecorder) Submit(p flock.Pose) {
	r.poses = append(r.poses, p)
}

// FlockActor owns the flock. The mailbox serializes every message, so it is
// the only goroutine that ever mutates the simulation.
//
// Messages:
//   - *durationpb.Duration runs one frame of that length
//   - *emptypb.Empty asks for the stats, answered with a *structpb.Struct
//   - *wrapperspb.UInt64Value respawns the flock with that seed (0 = random)
type FlockActor struct {
	cfg      *Config
	flock    *flock.Flock
	seed     uint64
	extents  ExtentSource
	framesCh chan<- *Frame
	runID    string

	// --- Benchmark Stats ---
	framesSinceLog int
	rejectedFrames int
	lastLogTime    time.Time
}

var _ actor.Actor = (*FlockActor)(nil)

// NewFlockActor creates the simulation logic unit.
// framesCh may be nil when nobody renders the flock.
func NewFlockActor(cfg *Config, extents ExtentSource, framesCh chan<- *Frame) *FlockActor {
	return &FlockActor{
		cfg:         cfg,
		extents:     extents,
		framesCh:    framesCh,
		runID:       uuid.NewString(),
		lastLogTime: time.Now(),
	}
}

func (w *FlockActor) PreStart(ctx *actor.Context) error {
	if err := w.spawn(w.cfg.Seed); err != nil {
		return fmt.Errorf("failed to spawn flock: %w", err)
	}
	ctx.ActorSystem().Logger().Infof("[%s] flock of %d boids spawned (seed %d, flocking %t)",
		w.runID, w.flock.Len(), w.seed, w.cfg.Parameters().FlockingEnabled())
	return nil
}

func (w *FlockActor) Receive(ctx *actor.ReceiveContext) {
	switch msg := ctx.Message().(type) {

	case *goaktpb.PostStart:
		ctx.Logger().Debugf("[%s] flock actor started", w.runID)
		w.pushFrame(w.currentFrame())

	// 1. The Main Simulation Step (Driven by Game Loop)
	case *durationpb.Duration:
		frame, err := w.tick(msg.AsDuration())
		if err != nil {
			w.rejectedFrames++
			ctx.Logger().Warnf("[%s] frame rejected: %v", w.runID, err)
			return
		}
		w.logBenchmarks(ctx)
		w.pushFrame(frame)

	// 2. Stats query
	case *emptypb.Empty:
		reply, err := w.statsReply()
		if err != nil {
			ctx.Err(err)
			return
		}
		ctx.Response(reply)

	// 3. Respawn requested by the UI
	case *wrapperspb.UInt64Value:
		if err := w.spawn(msg.GetValue()); err != nil {
			ctx.Logger().Warnf("[%s] respawn failed: %v", w.runID, err)
			return
		}
		ctx.Logger().Infof("[%s] flock respawned (seed %d)", w.runID, w.seed)
		w.pushFrame(w.currentFrame())

	default:
		ctx.Unhandled()
	}
}

func (w *FlockActor) PostStop(ctx *actor.Context) error {
	ctx.ActorSystem().Logger().Infof("[%s] flock stopped after %d frames", w.runID, w.flock.Stats().Frames)
	return nil
}

// spawn rebuilds the flock. Seed 0 picks a random one.
func (w *FlockActor) spawn(seed uint64) error {
	if seed == 0 {
		seed = rand.Uint64() | 1
	}
	f, err := flock.NewSeeded(w.cfg.Parameters(), seed)
	if err != nil {
		return err
	}
	w.flock = f
	w.seed = seed
	return nil
}

// tick runs one frame against the current world extent.
func (w *FlockActor) tick(elapsed time.Duration) (*Frame, error) {
	extent := w.extents.Extent()
	rec := &frameRecorder{poses: make([]flock.Pose, 0, w.flock.Len())}
	if err := w.flock.Update(elapsed.Seconds(), extent, rec); err != nil {
		return nil, err
	}
	w.framesSinceLog++
	return &Frame{
		Number: w.flock.Stats().Frames,
		Extent: extent,
		Poses:  rec.poses,
		Stats:  w.flock.Stats(),
	}, nil
}

// currentFrame copies the poses without advancing the simulation.
func (w *FlockActor) currentFrame() *Frame {
	rec := &frameRecorder{poses: make([]flock.Pose, 0, w.flock.Len())}
	w.flock.Poses(rec)
	return &Frame{
		Number: w.flock.Stats().Frames,
		Extent: w.extents.Extent(),
		Poses:  rec.poses,
		Stats:  w.flock.Stats(),
	}
}

func (w *FlockActor) pushFrame(frame *Frame) {
	select {
	case w.framesCh <- frame:
	default:
		// UI busy, skip frame
	}
}

func (w *FlockActor) statsReply() (*structpb.Struct, error) {
	s := w.flock.Stats()
	return structpb.NewStruct(map[string]interface{}{
		"frames":        float64(s.Frames),
		"agents":        float64(s.Agents),
		"meanNeighbors": s.MeanNeighbors,
		"preserved":     float64(s.Preserved),
		"rejected":      float64(w.rejectedFrames),
		"seed":          fmt.Sprintf("%d", w.seed),
		"runId":         w.runID,
	})
}

func (w *FlockActor) logBenchmarks(ctx *actor.ReceiveContext) {
	if time.Since(w.lastLogTime) >= time.Second {
		s := w.flock.Stats()
		ctx.Logger().Infof("📊 [%s] FRAMES: %d/sec | Boids: %d | Mean neighbors: %.1f | Preserved: %d | Rejected: %d",
			w.runID, w.framesSinceLog, s.Agents, s.MeanNeighbors, s.Preserved, w.rejectedFrames)
		w.framesSinceLog = 0
		w.lastLogTime = time.Now()
	}
}
