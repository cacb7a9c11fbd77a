package gdan

import "github.com/hajimehoshi/ebiten/v2"

// System is one unit of per-frame logic.
type System func(a *App)

// Renderer draws part of a frame.
type Renderer func(a *App, screen *ebiten.Image)

// Condition gates systems and renderers.
type Condition func(a *App) bool

// Plugin installs a group of systems, renderers and resources.
type Plugin func(a *App)

// InState is true while state is the active screen.
func InState(state State) Condition {
	return func(a *App) bool { return a.States.Is(state) }
}

// Not inverts a condition.
func Not(c Condition) Condition {
	return func(a *App) bool { return !c(a) }
}

type labelKind uint8

const (
	labelStartup labelKind = iota
	labelUpdate
	labelEnter
	labelExit
)

// Label names the point of the frame a system runs at.
type Label struct {
	kind  labelKind
	state State
}

var (
	// Startup systems run once, before the first frame's Update systems.
	Startup = Label{kind: labelStartup}
	// Update systems run every frame in registration order.
	Update = Label{kind: labelUpdate}
)

// OnEnter systems run when state becomes active, including the initial one.
func OnEnter(state State) Label { return Label{kind: labelEnter, state: state} }

// OnExit systems run when state stops being active.
func OnExit(state State) Label { return Label{kind: labelExit, state: state} }

func (l Label) String() string {
	switch l.kind {
	case labelStartup:
		return "Startup"
	case labelUpdate:
		return "Update"
	case labelEnter:
		return "OnEnter(" + string(l.state) + ")"
	default:
		return "OnExit(" + string(l.state) + ")"
	}
}

// Layer orders renderers within a frame. Gizmos are drawn between
// LayerWorld and LayerUI.
type Layer uint8

const (
	LayerBackground Layer = iota
	LayerWorld
	LayerUI
	LayerOverlay

	layerCount
)

type systemEntry struct {
	fn    System
	conds []Condition
}

type rendererEntry struct {
	fn    Renderer
	conds []Condition
}

func ready(a *App, conds []Condition) bool {
	for _, c := range conds {
		if !c(a) {
			return false
		}
	}
	return true
}

// SystemSet is returned by AddSystems so run conditions can be chained.
type SystemSet struct {
	entries []*systemEntry
}

// RunIf adds a condition every system of the set must pass.
func (s *SystemSet) RunIf(c Condition) *SystemSet {
	for _, e := range s.entries {
		e.conds = append(e.conds, c)
	}
	return s
}

// RenderSet is returned by AddRenderers so run conditions can be chained.
type RenderSet struct {
	entries []*rendererEntry
}

// RunIf adds a condition every renderer of the set must pass.
func (s *RenderSet) RunIf(c Condition) *RenderSet {
	for _, e := range s.entries {
		e.conds = append(e.conds, c)
	}
	return s
}

// AddSystems registers systems under label.
func (a *App) AddSystems(label Label, systems ...System) *SystemSet {
	set := &SystemSet{}
	for _, fn := range systems {
		e := &systemEntry{fn: fn}
		a.systems[label] = append(a.systems[label], e)
		set.entries = append(set.entries, e)
	}
	return set
}

// AddRenderers registers renderers on layer.
func (a *App) AddRenderers(layer Layer, renderers ...Renderer) *RenderSet {
	set := &RenderSet{}
	if layer >= layerCount {
		layer = LayerOverlay
	}
	for _, fn := range renderers {
		e := &rendererEntry{fn: fn}
		a.renderers[layer] = append(a.renderers[layer], e)
		set.entries = append(set.entries, e)
	}
	return set
}

// AddPlugins installs plugins in order.
func (a *App) AddPlugins(plugins ...Plugin) *App {
	for _, p := range plugins {
		p(a)
	}
	return a
}

func (a *App) runLabel(label Label) {
	for _, e := range a.systems[label] {
		if ready(a, e.conds) {
			e.fn(a)
			a.stats.systemsRun++
		}
	}
}

func (a *App) runLayer(layer Layer, screen *ebiten.Image) {
	for _, e := range a.renderers[layer] {
		if ready(a, e.conds) {
			e.fn(a, screen)
			a.stats.renderersRun++
		}
	}
}
