package game

import "snake-battle/game/types"

// Intent is a player request produced by a frontend between ticks.
type Intent int

const (
	MoveUp Intent = iota + 1
	MoveDown
	MoveLeft
	MoveRight
	Pause
	Resume
	TogglePause
	Start
	Restart
	Quit
)

func (i Intent) String() string {
	switch i {
	case MoveUp:
		return "move-up"
	case MoveDown:
		return "move-down"
	case MoveLeft:
		return "move-left"
	case MoveRight:
		return "move-right"
	case Pause:
		return "pause"
	case Resume:
		return "resume"
	case TogglePause:
		return "toggle-pause"
	case Start:
		return "start"
	case Restart:
		return "restart"
	case Quit:
		return "quit"
	default:
		return "none"
	}
}

// Direction returns the heading of a move intent, or types.None.
func (i Intent) Direction() types.Direction {
	switch i {
	case MoveUp:
		return types.Up
	case MoveDown:
		return types.Down
	case MoveLeft:
		return types.Left
	case MoveRight:
		return types.Right
	default:
		return types.None
	}
}

// MoveIntent is the inverse of Direction.
func MoveIntent(d types.Direction) Intent {
	switch d {
	case types.Up:
		return MoveUp
	case types.Down:
		return MoveDown
	case types.Left:
		return MoveLeft
	case types.Right:
		return MoveRight
	default:
		return 0
	}
}
