package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	titleHeight   = 30.0
	sectionHeight = 25.0
	labelHeight   = 15.0
)

// UIWidget is an interface for all UI widgets
type UIWidget interface {
	Update()
	Draw(screen *ebiten.Image)
	GetHeight() float64
	// Caption is the text printed above the widget, empty for none
	Caption() string
	// MoveTo places the widget top-left corner
	MoveTo(x, y float64)
}

// SliderWrapper wraps Slider to implement UIWidget
type SliderWrapper struct {
	*Slider
}

func (s *SliderWrapper) GetHeight() float64  { return s.H + 25 }
func (s *SliderWrapper) Caption() string     { return fmt.Sprintf("%s: %.2f", s.Label, s.Value) }
func (s *SliderWrapper) MoveTo(x, y float64) { s.X, s.Y = x, y }

// CheckboxWrapper wraps Checkbox to implement UIWidget
type CheckboxWrapper struct {
	*Checkbox
}

func (c *CheckboxWrapper) GetHeight() float64  { return c.Size + labelHeight + 5 }
func (c *CheckboxWrapper) Caption() string     { return c.Label }
func (c *CheckboxWrapper) MoveTo(x, y float64) { c.X, c.Y = x, y }

// ButtonWrapper wraps Button to implement UIWidget
type ButtonWrapper struct {
	*Button
}

func (b *ButtonWrapper) GetHeight() float64  { return b.Height + 10 }
func (b *ButtonWrapper) Caption() string     { return "" }
func (b *ButtonWrapper) MoveTo(x, y float64) { b.X, b.Y = x, y }

// UIPanel manages a collection of UI widgets in a scrollable panel
type UIPanel struct {
	Title         string
	X, Y          float64 // Panel position
	Width, Height float64 // Panel dimensions
	Widgets       []UIWidget
	ScrollOffset  float64 // Current scroll position
	Hidden        bool

	// Styling
	BGColor     color.RGBA
	BorderColor color.RGBA

	sections []PanelSection
}

// PanelSection groups consecutive widgets under a header
type PanelSection struct {
	Title      string
	StartIndex int // Widget index where this section starts
	EndIndex   int // Widget index where this section ends (exclusive)
}

// NewUIPanel creates a new UI panel
func NewUIPanel(title string, x, y, width, height float64) *UIPanel {
	return &UIPanel{
		Title:       title,
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		Widgets:     make([]UIWidget, 0),
		BGColor:     color.RGBA{R: 40, G: 40, B: 45, A: 230},
		BorderColor: color.RGBA{R: 100, G: 100, B: 110, A: 255},
		sections:    make([]PanelSection, 0),
	}
}

// AddSection opens a section, widgets added next belong to it
func (p *UIPanel) AddSection(title string) {
	p.EndSection()
	p.sections = append(p.sections, PanelSection{
		Title:      title,
		StartIndex: len(p.Widgets),
		EndIndex:   -1,
	})
}

// EndSection closes the current section
func (p *UIPanel) EndSection() {
	if n := len(p.sections); n > 0 && p.sections[n-1].EndIndex < 0 {
		p.sections[n-1].EndIndex = len(p.Widgets)
	}
}

// AddSlider adds a slider widget to the panel
func (p *UIPanel) AddSlider(label string, min, max, value float64) *Slider {
	slider := NewSlider(0, 0, p.Width-20, label, min, max, value)
	p.add(&SliderWrapper{slider})
	return slider
}

// AddCheckbox adds a checkbox widget to the panel
func (p *UIPanel) AddCheckbox(label string, value bool) *Checkbox {
	checkbox := NewCheckbox(0, 0, label, value)
	p.add(&CheckboxWrapper{checkbox})
	return checkbox
}

// AddButton adds a button widget to the panel
func (p *UIPanel) AddButton(label string, onClick func()) *Button {
	button := NewButton(0, 0, p.Width-20, 22, label, onClick)
	p.add(&ButtonWrapper{button})
	return button
}

func (p *UIPanel) add(w UIWidget) {
	p.Widgets = append(p.Widgets, w)
	p.layout()
}

// layout places every widget according to sections and scroll offset
func (p *UIPanel) layout() {
	currentY := p.Y + titleHeight - p.ScrollOffset
	widgetIdx := 0
	place := func(end int) {
		for ; widgetIdx < end && widgetIdx < len(p.Widgets); widgetIdx++ {
			w := p.Widgets[widgetIdx]
			top := currentY
			if w.Caption() != "" {
				top += labelHeight
			}
			w.MoveTo(p.X+10, top)
			currentY += w.GetHeight()
		}
	}
	for _, section := range p.sections {
		place(section.StartIndex) // widgets added before any section
		currentY += sectionHeight
		end := section.EndIndex
		if end < 0 {
			end = len(p.Widgets)
		}
		place(end)
	}
	place(len(p.Widgets))
}

// Update handles input for all widgets
func (p *UIPanel) Update() {
	if p.Hidden {
		return
	}
	_, dy := ebiten.Wheel()
	if dy != 0 {
		p.Scroll(-dy * 20)
	}
	for _, widget := range p.Widgets {
		widget.Update()
	}
}

// Scroll moves the content by delta, clamped to the content height
func (p *UIPanel) Scroll(delta float64) {
	maxScroll := p.calculateTotalHeight() - p.Height + 40
	if maxScroll < 0 {
		maxScroll = 0
	}
	p.ScrollOffset += delta
	if p.ScrollOffset < 0 {
		p.ScrollOffset = 0
	}
	if p.ScrollOffset > maxScroll {
		p.ScrollOffset = maxScroll
	}
	p.layout()
}

// Draw renders the panel and all visible widgets
func (p *UIPanel) Draw(screen *ebiten.Image) {
	if p.Hidden {
		return
	}
	vector.FillRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		p.BGColor, true)
	vector.StrokeRect(screen,
		float32(p.X), float32(p.Y),
		float32(p.Width), float32(p.Height),
		2, p.BorderColor, true)
	ebitenutil.DebugPrintAt(screen, p.Title, int(p.X+10), int(p.Y+5))

	currentY := p.Y + titleHeight - p.ScrollOffset
	widgetIdx := 0
	draw := func(end int) {
		for ; widgetIdx < end && widgetIdx < len(p.Widgets); widgetIdx++ {
			w := p.Widgets[widgetIdx]
			if p.visible(currentY) {
				if c := w.Caption(); c != "" {
					ebitenutil.DebugPrintAt(screen, c, int(p.X+10), int(currentY))
				}
				w.Draw(screen)
			}
			currentY += w.GetHeight()
		}
	}
	for _, section := range p.sections {
		draw(section.StartIndex)
		if p.visible(currentY) {
			vector.FillRect(screen,
				float32(p.X+5), float32(currentY),
				float32(p.Width-10), 20,
				color.RGBA{R: 60, G: 60, B: 70, A: 255}, true)
			ebitenutil.DebugPrintAt(screen, section.Title, int(p.X+10), int(currentY+3))
		}
		currentY += sectionHeight
		end := section.EndIndex
		if end < 0 {
			end = len(p.Widgets)
		}
		draw(end)
	}
	draw(len(p.Widgets))
}

func (p *UIPanel) visible(y float64) bool {
	return y >= p.Y+titleHeight-5 && y <= p.Y+p.Height-20
}

// calculateTotalHeight calculates the total content height
func (p *UIPanel) calculateTotalHeight() float64 {
	height := titleHeight + float64(len(p.sections))*sectionHeight
	for _, widget := range p.Widgets {
		height += widget.GetHeight()
	}
	return height
}
