// Package menu is the main menu screen and the global Escape handling.
package menu

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
	"github.com/yohamta/donburi/query"

	"github.com/phanxgames/gdan"
)

const (
	buttonWidth   = 150
	buttonHeight  = 65
	buttonBorder  = 5
	buttonSpacing = 20
	titleFadeSecs = 1
)

// MainInfo tags everything the main menu spawns.
var MainInfo = donburi.NewTag().SetName("MainInfo")

// Entry is one main menu button.
type Entry struct {
	Label  string
	Action string
	Target gdan.State
}

// Entries lists the menu buttons top to bottom.
var Entries = []Entry{
	{"Map", "menu:map", gdan.StateMapMenu},
	{"Oper", "menu:oper", gdan.StateOperMenu},
	{"Rule", "menu:rule", gdan.StateRuleMenu},
	{"Scene", "menu:scene", gdan.StateSceneMenu},
	{"Game", "menu:game", gdan.StateGameMenu},
}

type fadeData struct {
	tween *gween.Tween
}

var fade = donburi.NewComponentType[fadeData]()

// Plugin registers the main menu and the Escape key handling.
func Plugin(a *gdan.App) {
	a.AddSystems(gdan.Startup, subscribe)
	a.AddSystems(gdan.OnEnter(gdan.StateMainMenu), setup)
	a.AddSystems(gdan.Update, fadeTitle).RunIf(gdan.InState(gdan.StateMainMenu))
	a.AddSystems(gdan.Update, Back)
	a.AddSystems(gdan.OnExit(gdan.StateMainMenu), gdan.Despawn(MainInfo))
}

func subscribe(a *gdan.App) {
	for _, e := range Entries {
		gdan.OnButton(a.World, e.Action, func(donburi.World) {
			if !a.States.Is(gdan.StateMainMenu) {
				return
			}
			gdan.Logf("menu: %s -> %s", e.Label, e.Target)
			a.States.SetNext(e.Target)
		})
	}
}

// ButtonOffset returns the vertical offset of button i from the screen
// center.
func ButtonOffset(i int) float64 {
	mid := float64(len(Entries)-1) / 2
	return (float64(i) - mid) * (buttonHeight + buttonSpacing)
}

func setup(a *gdan.App) {
	gdan.Logf("menu: setup")
	title := gdan.SpawnText(a.World, gdan.TextData{
		Anchor:  gdan.AnchorTopLeft,
		OffsetX: 10,
		OffsetY: 10,
		Content: "w_game",
		Size:    18,
		Color:   gdan.ColorWhite.WithAlpha(0),
	}, MainInfo, fade)
	fade.SetValue(a.World.Entry(title), fadeData{tween: gween.New(0, 1, titleFadeSecs, ease.OutQuad)})

	for i, e := range Entries {
		gdan.SpawnButton(a.World, gdan.ButtonData{
			Anchor:   gdan.AnchorCenter,
			OffsetY:  ButtonOffset(i),
			Width:    buttonWidth,
			Height:   buttonHeight,
			Border:   buttonBorder,
			Label:    e.Label,
			FontSize: 32,
			Action:   e.Action,
		}, MainInfo)
	}
}

var fadeQuery = query.NewQuery(filter.Contains(fade, gdan.Text))

func fadeTitle(a *gdan.App) {
	dt := float32(a.Time.Delta())
	fadeQuery.Each(a.World, func(e *donburi.Entry) {
		alpha, _ := fade.Get(e).tween.Update(dt)
		gdan.Text.Get(e).Color.A = float64(alpha)
	})
}

// Back handles Escape: it quits from the main menu, leaves the 3D oper view
// for the 2D one and returns to the main menu from everywhere else.
func Back(a *gdan.App) {
	if !a.Input.JustPressed(ebiten.KeyEscape) {
		return
	}
	switch cur := a.States.Current(); cur {
	case gdan.StateMainMenu:
		gdan.Logf("menu: quit")
		a.Quit()
	case gdan.StateOper3D:
		a.States.SetNext(gdan.StateOperMenu)
	default:
		a.States.SetNext(gdan.StateMainMenu)
	}
}
