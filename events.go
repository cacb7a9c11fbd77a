package gdan

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// StateChanged is published after a screen transition, once the OnExit
// systems of the old screen have run and before the OnEnter systems of the
// new one.
type StateChanged struct {
	From, To State
}

// ButtonPressed is published when a button is clicked.
type ButtonPressed struct {
	Entity donburi.Entity
	Action string
}

// StateChangedEvent carries StateChanged. Subscribers are called when queued
// events are processed at the end of the frame.
var StateChangedEvent = events.NewEventType[StateChanged]()

// ButtonPressedEvent carries ButtonPressed. Subscribe to this in a Startup
// system to react to menu buttons.
var ButtonPressedEvent = events.NewEventType[ButtonPressed]()

// OnButton subscribes fn to presses of buttons with the given action.
func OnButton(w donburi.World, action string, fn func(w donburi.World)) {
	ButtonPressedEvent.Subscribe(w, func(w donburi.World, e ButtonPressed) {
		if e.Action == action {
			fn(w)
		}
	})
}
