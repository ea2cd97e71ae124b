package render

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lao-tseu-is-alive/go-flocking-boids/pkg/geometry"
	"github.com/lao-tseu-is-alive/go-flocking-boids/pkg/simulation"
	"github.com/lao-tseu-is-alive/go-flocking-boids/pkg/ui"
	"github.com/tochemey/goakt/v3/actor"
	"google.golang.org/protobuf/types/known/durationpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

var (
	backgroundColor = color.RGBA{R: 10, G: 10, B: 30, A: 255}
	perceptionColor = color.RGBA{R: 50, G: 100, B: 255, A: 50}
	separationColor = color.RGBA{R: 255, G: 80, B: 80, A: 120}
)

// Game is the ebiten front end. It never touches the flock: it measures
// frame time, publishes the window size and sends ticks to the flock actor,
// then draws the last frame the actor pushed back.
type Game struct {
	ctx       context.Context
	System    actor.ActorSystem
	flockPID  *actor.PID
	framesCh  chan *simulation.Frame
	lastFrame *simulation.Frame

	extent *simulation.AtomicExtent
	clock  *FrameClock
	batch  *SpriteBatch

	// UI Controls
	panel *ui.UIPanel

	widgetTimeScale         *ui.Slider
	widgetDisplayPerception *ui.Checkbox
	widgetDisplaySeparation *ui.Checkbox
	widgetDisplayStats      *ui.Checkbox

	cfg *simulation.Config

	// Timing instrumentation
	lastUpdateDuration time.Duration
	lastDrawDuration   time.Duration
	updateAvg          float64 // Rolling average in ms
	drawAvg            float64 // Rolling average in ms
}

// NewGame spawns the flock actor in system and builds the UI around it.
func NewGame(ctx context.Context, cfg *simulation.Config, system actor.ActorSystem) (*Game, error) {
	// 1. Channel for frames, buffered to avoid blocking the actor
	framesCh := make(chan *simulation.Frame, 10)
	extent := simulation.NewAtomicExtent(cfg.Extent())

	// 2. Spawn Flock Actor
	flockPID, err := system.Spawn(ctx, "flock", simulation.NewFlockActor(cfg, extent, framesCh))
	if err != nil {
		return nil, fmt.Errorf("failed to spawn flock: %w", err)
	}

	g := &Game{
		ctx:      ctx,
		System:   system,
		flockPID: flockPID,
		framesCh: framesCh,
		lastFrame: &simulation.Frame{
			Extent: cfg.Extent(),
		},
		extent: extent,
		clock:  NewFrameClock(nil, time.Second/time.Duration(ebiten.DefaultTPS)),
		batch:  NewSpriteBatch(),
		cfg:    cfg,
	}

	// 3. Initialize UI Panel
	panel := ui.NewUIPanel("Flock", 10, 10, 240, 260)

	panel.AddSection("Time")
	g.widgetTimeScale = panel.AddSlider("Time Scale", 0, 4, cfg.TimeScale)
	panel.EndSection()

	panel.AddSection("Visualization")
	g.widgetDisplayPerception = panel.AddCheckbox("Show Perception Range", cfg.DisplayPerceptionRange)
	g.widgetDisplaySeparation = panel.AddCheckbox("Show Separation Range", cfg.DisplaySeparationRange)
	g.widgetDisplayStats = panel.AddCheckbox("Show Stats", true)
	panel.EndSection()

	panel.AddSection("Population")
	panel.AddButton("Respawn", g.respawn)
	panel.EndSection()

	g.panel = panel
	return g, nil
}

func (g *Game) respawn() {
	// 0 lets the actor pick a fresh seed
	_ = actor.Tell(g.ctx, g.flockPID, wrapperspb.UInt64(0))
}

func (g *Game) Update() error {
	start := time.Now()
	defer func() {
		g.lastUpdateDuration = time.Since(start)
		// Rolling average (exponential moving average)
		g.updateAvg = g.updateAvg*0.95 + float64(g.lastUpdateDuration.Microseconds())/1000.0*0.05
	}()

	// 1. Toggle the panel with Tab, then update it
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.panel.Hidden = !g.panel.Hidden
	}
	g.panel.Update()

	// 2. Keep only the latest frame (Non-blocking)
	for drained := false; !drained; {
		select {
		case frame := <-g.framesCh:
			g.lastFrame = frame
		default:
			drained = true
		}
	}

	// 3. Trigger Simulation Step
	elapsed := g.clock.Elapsed(g.widgetTimeScale.Value)
	return actor.Tell(g.ctx, g.flockPID, durationpb.New(elapsed))
}

func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	defer func() {
		g.lastDrawDuration = time.Since(start)
		g.drawAvg = g.drawAvg*0.95 + float64(g.lastDrawDuration.Microseconds())/1000.0*0.05
	}()

	screen.Fill(backgroundColor)

	// 1. Optional range rings, below the sprites
	if g.widgetDisplayPerception.Value || g.widgetDisplaySeparation.Value {
		for _, p := range g.lastFrame.Poses {
			if g.widgetDisplayPerception.Value {
				vector.StrokeCircle(screen, p.X, p.Y, float32(g.cfg.Range), 1, perceptionColor, true)
			}
			if g.widgetDisplaySeparation.Value {
				vector.StrokeCircle(screen, p.X, p.Y, float32(g.cfg.SeparationDistance), 1, separationColor, true)
			}
		}
	}

	// 2. Draw all boids from the last known frame
	g.batch.Begin(screen)
	for _, p := range g.lastFrame.Poses {
		g.batch.Submit(p)
	}

	// 3. Draw UI Panel
	g.panel.Draw(screen)

	// 4. Display performance stats on the right side to avoid overlap with panel
	if g.widgetDisplayStats.Value {
		s := g.lastFrame.Stats
		msg := fmt.Sprintf("FPS: %.2f\nTPS: %.2f\n\nUpdate: %.2fms\nDraw:   %.2fms\n\nFrame: %d\nBoids: %d\nNeighbors: %.1f\nWorld: %s",
			ebiten.ActualFPS(),
			ebiten.ActualTPS(),
			g.updateAvg,
			g.drawAvg,
			g.lastFrame.Number,
			g.batch.Count(),
			s.MeanNeighbors,
			g.lastFrame.Extent)
		ebitenutil.DebugPrintAt(screen, msg, screen.Bounds().Dx()-160, 10)
	}
}

// Layout follows the window: the world extent is the window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.extent.Set(geometry.NewExtent(float64(outsideWidth), float64(outsideHeight)))
	}
	return outsideWidth, outsideHeight
}
