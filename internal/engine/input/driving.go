package input

import "github.com/veandco/go-sdl2/sdl"

// Action is what a key does while driving.
type Action int

const (
	ActionNone Action = iota
	ActionHandbrake
	ActionAccelerate
	ActionReverse
	ActionSteerLeft
	ActionSteerRight
	ActionNextCar
	ActionReset
	ActionScreenshot
	ActionFullscreen
	ActionQuit
)

var keyActions = map[sdl.Scancode]Action{
	sdl.SCANCODE_SPACE:  ActionHandbrake,
	sdl.SCANCODE_UP:     ActionAccelerate,
	sdl.SCANCODE_DOWN:   ActionReverse,
	sdl.SCANCODE_LEFT:   ActionSteerLeft,
	sdl.SCANCODE_RIGHT:  ActionSteerRight,
	sdl.SCANCODE_C:      ActionNextCar,
	sdl.SCANCODE_R:      ActionReset,
	sdl.SCANCODE_F11:    ActionFullscreen,
	sdl.SCANCODE_F12:    ActionScreenshot,
	sdl.SCANCODE_ESCAPE: ActionQuit,
}

// ActionFor returns the action bound to a key.
func ActionFor(key sdl.Scancode) Action {
	return keyActions[key]
}

// Driving turns key events into car inputs. Pressing a key sets its axis
// and releasing any key of that axis zeroes it, so the last press wins.
type Driving struct {
	Accelerate float32 // -1 forward, 1 reverse
	Steer      float32 // 1 left, -1 right
	Handbrake  bool
}

// Handle applies one event and returns the one-shot action it triggers,
// if any. Key repeats never trigger one-shot actions.
func (d *Driving) Handle(e Event) Action {
	action := ActionFor(e.Key)

	switch e.Type {
	case EventKeyDown:
		switch action {
		case ActionHandbrake:
			d.Handbrake = true
		case ActionAccelerate:
			d.Accelerate = -1
		case ActionReverse:
			d.Accelerate = 1
		case ActionSteerLeft:
			d.Steer = 1
		case ActionSteerRight:
			d.Steer = -1
		case ActionNextCar, ActionReset, ActionScreenshot, ActionFullscreen, ActionQuit:
			if !e.Repeat {
				return action
			}
		}

	case EventKeyUp:
		switch action {
		case ActionHandbrake:
			d.Handbrake = false
		case ActionAccelerate, ActionReverse:
			d.Accelerate = 0
		case ActionSteerLeft, ActionSteerRight:
			d.Steer = 0
		}
	}

	return ActionNone
}
