package gdan

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/looplab/fsm"
)

// State names one screen of the app.
type State string

// Screens.
const (
	StateMainMenu  State = "MainMenu"
	StateMapMenu   State = "MapMenu"
	StateOperMenu  State = "OperMenu"
	StateOper3D    State = "Oper3D"
	StateRuleMenu  State = "RuleMenu"
	StateSceneMenu State = "SceneMenu"
	StateGameMenu  State = "GameMenu"
)

// AllStates lists every screen in menu order.
func AllStates() []State {
	return []State{
		StateMainMenu, StateMapMenu, StateOperMenu, StateOper3D,
		StateRuleMenu, StateSceneMenu, StateGameMenu,
	}
}

// ParseState looks a screen up by name, ignoring case.
func ParseState(s string) (State, error) {
	for _, st := range AllStates() {
		if strings.EqualFold(s, string(st)) {
			return st, nil
		}
	}
	return StateMainMenu, fmt.Errorf("gdan: unknown state %q", s)
}

// transition is one completed state change recorded by the fsm callbacks.
type transition struct {
	from, to State
}

// States is the screen state machine. Requests made with SetNext are applied
// at the start of the following frame, so every system of a frame sees the
// same current state.
type States struct {
	fsm     *fsm.FSM
	current State
	next    State
	pending bool
	log     []transition
}

func newStates(initial State) *States {
	all := AllStates()
	src := make([]string, len(all))
	for i, s := range all {
		src[i] = string(s)
	}
	events := make(fsm.Events, 0, len(all))
	for _, s := range all {
		events = append(events, fsm.EventDesc{Name: string(s), Src: src, Dst: string(s)})
	}
	st := &States{current: initial}
	st.fsm = fsm.NewFSM(string(initial), events, fsm.Callbacks{
		"enter_state": func(_ context.Context, e *fsm.Event) {
			st.log = append(st.log, transition{from: State(e.Src), to: State(e.Dst)})
		},
	})
	return st
}

// Current returns the active screen.
func (s *States) Current() State { return s.current }

// Is reports whether state is the active screen.
func (s *States) Is(state State) bool { return s.current == state }

// SetNext requests a switch to state on the next frame. The last request of
// a frame wins.
func (s *States) SetNext(state State) {
	s.next = state
	s.pending = true
}

// Pending returns the requested next state, if any.
func (s *States) Pending() (State, bool) {
	return s.next, s.pending
}

// apply fires the pending transition. changed is false when no request was
// made or when it named the current state.
func (s *States) apply(ctx context.Context) (t transition, changed bool, err error) {
	if !s.pending {
		return transition{}, false, nil
	}
	s.pending = false
	s.log = s.log[:0]
	if err := s.fsm.Event(ctx, string(s.next)); err != nil {
		var same fsm.NoTransitionError
		if errors.As(err, &same) {
			return transition{}, false, nil
		}
		return transition{}, false, fmt.Errorf("gdan: transition %s -> %s: %w", s.current, s.next, err)
	}
	if len(s.log) == 0 {
		return transition{}, false, nil
	}
	t = s.log[len(s.log)-1]
	s.current = t.to
	return t, true, nil
}
