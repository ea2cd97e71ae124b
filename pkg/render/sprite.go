package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lao-tseu-is-alive/go-flocking-boids/pkg/flock"
)

// boidDesign faces "Right" (0 radians) so the heading can be used as is.
// Legend:
// . = Transparent
// W = White (Beak)
// C = Cyan (Head)
// B = Blue (Body)
// D = Dark Blue (Wings)
var boidDesign = []string{
	"DD..............",
	".DDD............",
	"..DDBB..........",
	"...DBBBBB.......",
	"....BBBBBBBB....",
	"....BBBBBBBBCCW.",
	"....BBBBBBBBCCWW",
	"....BBBBBBBBCCW.",
	"....BBBBBBBB....",
	"...DBBBBB.......",
	"..DDBB..........",
	".DDD............",
	"DD..............",
}

var boidPalette = map[rune]color.RGBA{
	'W': {R: 255, G: 255, B: 255, A: 255},
	'C': {R: 0, G: 255, B: 255, A: 255},
	'B': {R: 50, G: 150, B: 255, A: 255},
	'D': {R: 0, G: 60, B: 170, A: 255},
}

// generateSprite converts an ASCII grid into an Ebiten image
func generateSprite(design []string, palette map[rune]color.RGBA) *ebiten.Image {
	h := len(design)
	w := 0
	for _, row := range design {
		if len(row) > w {
			w = len(row)
		}
	}
	img := ebiten.NewImage(w, h)

	for y, row := range design {
		for x, char := range row {
			if col, ok := palette[char]; ok {
				img.Set(x, y, col)
			}
		}
	}
	return img
}

// SpriteBatch draws poses as rotated sprites. It implements flock.PoseSink;
// Ebiten batches consecutive DrawImage calls sharing the same source image.
type SpriteBatch struct {
	sprite *ebiten.Image
	screen *ebiten.Image
	op     ebiten.DrawImageOptions
	count  int
}

var _ flock.PoseSink = (*SpriteBatch)(nil)

// NewSpriteBatch creates a batch drawing the built-in boid sprite.
func NewSpriteBatch() *SpriteBatch {
	return &SpriteBatch{sprite: generateSprite(boidDesign, boidPalette)}
}

// Begin targets a new screen and resets the counter.
func (b *SpriteBatch) Begin(screen *ebiten.Image) {
	b.screen = screen
	b.count = 0
}

// Submit implements flock.PoseSink.
func (b *SpriteBatch) Submit(p flock.Pose) {
	if b.screen == nil {
		return
	}
	w, h := b.sprite.Bounds().Dx(), b.sprite.Bounds().Dy()

	b.op.GeoM.Reset()
	// Center the sprite, scale it to Size, then align it with the heading
	b.op.GeoM.Translate(-float64(w)/2, -float64(h)/2)
	b.op.GeoM.Scale(float64(p.Size)/float64(w), float64(p.Size)/float64(w))
	b.op.GeoM.Rotate(float64(p.Heading))
	b.op.GeoM.Translate(float64(p.X), float64(p.Y))

	b.screen.DrawImage(b.sprite, &b.op)
	b.count++
}

// Count returns how many sprites were drawn since Begin.
func (b *SpriteBatch) Count() int { return b.count }
