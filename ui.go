package gdan

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"
)

// buttonTweenSeconds is how long a button takes to fade between styles.
const buttonTweenSeconds = 0.1

// Anchor picks the screen point a UI element is positioned from.
type Anchor uint8

const (
	AnchorCenter Anchor = iota
	AnchorTopLeft
	AnchorTop
	AnchorTopRight
	AnchorLeft
	AnchorRight
	AnchorBottomLeft
	AnchorBottom
	AnchorBottomRight
)

// Point returns the anchor position on a w x h screen.
func (an Anchor) Point(w, h float64) (x, y float64) {
	switch an {
	case AnchorTopLeft:
		return 0, 0
	case AnchorTop:
		return w / 2, 0
	case AnchorTopRight:
		return w, 0
	case AnchorLeft:
		return 0, h / 2
	case AnchorRight:
		return w, h / 2
	case AnchorBottomLeft:
		return 0, h
	case AnchorBottom:
		return w / 2, h
	case AnchorBottomRight:
		return w, h
	default:
		return w / 2, h / 2
	}
}

// Interaction is the pointer state of a button.
type Interaction uint8

const (
	InteractionNone Interaction = iota
	InteractionHovered
	InteractionPressed
)

func (i Interaction) String() string {
	switch i {
	case InteractionHovered:
		return "Hovered"
	case InteractionPressed:
		return "Pressed"
	default:
		return "None"
	}
}

// ButtonStyle holds the background and border color for each interaction.
type ButtonStyle struct {
	Background [3]Color
	Border     [3]Color
}

// DefaultButtonStyle is dark gray with a black border, lighter with a white
// border when hovered and green with a red border while pressed.
func DefaultButtonStyle() ButtonStyle {
	return ButtonStyle{
		Background: [3]Color{Gray(0.15), Gray(0.25), RGB(0.35, 0.75, 0.35)},
		Border:     [3]Color{ColorBlack, ColorWhite, ColorRed},
	}
}

// ButtonData is a clickable screen-space rectangle centered on its anchor
// point plus offset.
type ButtonData struct {
	Anchor           Anchor
	OffsetX, OffsetY float64
	Width, Height    float64
	Border           float64
	Label            string
	FontSize         float64
	LabelColor       Color
	// Action is reported in ButtonPressed.
	Action string
	Style  ButtonStyle

	Interaction Interaction
	Background  Color
	BorderColor Color

	bgTween, borderTween *TweenGroup
}

// Rect returns the screen rectangle of the button on a w x h screen.
func (b *ButtonData) Rect(w, h float64) Rect {
	ax, ay := b.Anchor.Point(w, h)
	return Rect{
		X:      ax + b.OffsetX - b.Width/2,
		Y:      ay + b.OffsetY - b.Height/2,
		Width:  b.Width,
		Height: b.Height,
	}
}

// HitArea returns the rectangle that reacts to the pointer on a w x h screen.
func (b *ButtonData) HitArea(w, h float64) HitRect {
	r := b.Rect(w, h)
	return HitRect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

func (b *ButtonData) setInteraction(i Interaction) {
	if b.Interaction == i {
		return
	}
	b.Interaction = i
	b.bgTween = TweenColor(&b.Background, b.Style.Background[i], buttonTweenSeconds, ease.Linear)
	b.borderTween = TweenColor(&b.BorderColor, b.Style.Border[i], buttonTweenSeconds, ease.Linear)
}

// TextData is a screen-space label.
type TextData struct {
	Anchor           Anchor
	OffsetX, OffsetY float64
	Content          string
	Size             float64
	Color            Color
	Align            TextAlign
}

var (
	// Button marks clickable UI rectangles.
	Button = donburi.NewComponentType[ButtonData]()
	// Text marks screen-space labels.
	Text = donburi.NewComponentType[TextData]()
)

// SpawnButton creates a button entity carrying the extra components, usually
// a screen tag. Zero style, font size and label color take defaults.
func SpawnButton(w donburi.World, b ButtonData, extra ...donburi.IComponentType) donburi.Entity {
	if b.Style == (ButtonStyle{}) {
		b.Style = DefaultButtonStyle()
	}
	if b.FontSize == 0 {
		b.FontSize = 24
	}
	if b.LabelColor == (Color{}) {
		b.LabelColor = Gray(0.9)
	}
	b.Interaction = InteractionNone
	b.Background = b.Style.Background[InteractionNone]
	b.BorderColor = b.Style.Border[InteractionNone]

	e := w.Create(append([]donburi.IComponentType{Button}, extra...)...)
	Button.SetValue(w.Entry(e), b)
	return e
}

// SpawnText creates a label entity carrying the extra components.
func SpawnText(w donburi.World, t TextData, extra ...donburi.IComponentType) donburi.Entity {
	if t.Size == 0 {
		t.Size = 20
	}
	if t.Color == (Color{}) {
		t.Color = ColorWhite
	}
	e := w.Create(append([]donburi.IComponentType{Text}, extra...)...)
	Text.SetValue(w.Entry(e), t)
	return e
}

// Font returns the default font at size, cached per app.
func (a *App) Font(size float64) *Font {
	if f, ok := a.fonts[size]; ok {
		return f
	}
	f := DefaultFont(size)
	a.fonts[size] = f
	return f
}

var buttonQuery = query.NewQuery(filter.Contains(Button))

func updateButtons(a *App) {
	w, h := a.Size()
	cx, cy := a.Input.Cursor()
	dt := float32(a.Time.Delta())
	buttonQuery.Each(a.World, func(entry *donburi.Entry) {
		b := Button.Get(entry)
		hit := b.HitArea(w, h).Contains(cx, cy)
		switch {
		case hit && a.Input.MousePressed(MouseButtonLeft):
			b.setInteraction(InteractionPressed)
		case hit:
			b.setInteraction(InteractionHovered)
		default:
			b.setInteraction(InteractionNone)
		}
		b.bgTween.Update(dt)
		b.borderTween.Update(dt)
		if hit && a.Input.MouseJustPressed(MouseButtonLeft) {
			ButtonPressedEvent.Publish(a.World, ButtonPressed{Entity: entry.Entity(), Action: b.Action})
		}
	})
}

func drawButtons(a *App, screen *ebiten.Image) {
	w, h := a.Size()
	buttonQuery.Each(a.World, func(entry *donburi.Entry) {
		b := Button.Get(entry)
		r := b.Rect(w, h)
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), b.Background, false)
		if b.Border > 0 {
			bw := b.Border
			vector.StrokeRect(screen, float32(r.X+bw/2), float32(r.Y+bw/2), float32(r.Width-bw), float32(r.Height-bw), float32(bw), b.BorderColor, false)
		}
		if b.Label != "" {
			f := a.Font(b.FontSize)
			_, th := f.MeasureString(b.Label)
			x, y := r.Center()
			DrawText(screen, b.Label, f, x, y-th/2, b.LabelColor, TextAlignCenter)
		}
	})
}

var textQuery = query.NewQuery(filter.Contains(Text))

func drawTexts(a *App, screen *ebiten.Image) {
	w, h := a.Size()
	textQuery.Each(a.World, func(entry *donburi.Entry) {
		t := Text.Get(entry)
		x, y := t.Anchor.Point(w, h)
		DrawText(screen, t.Content, a.Font(t.Size), x+t.OffsetX, y+t.OffsetY, t.Color, t.Align)
	})
}
