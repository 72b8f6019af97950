package types

import "fmt"

// Direction is a cardinal heading.
type Direction int

const (
	None Direction = iota
	Up
	Right
	Down
	Left
)

// Directions lists the four headings in the order the wander policy draws from.
var Directions = [4]Direction{Up, Down, Left, Right}

// Delta converts a Direction into a unit step.
func (d Direction) Delta() Cell {
	switch d {
	case Up:
		return Cell{X: 0, Y: -1}
	case Right:
		return Cell{X: 1, Y: 0}
	case Down:
		return Cell{X: 0, Y: 1}
	case Left:
		return Cell{X: -1, Y: 0}
	default:
		return Cell{}
	}
}

// Opposite returns the 180° reversal of d.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	default:
		return None
	}
}

// DirectionTo returns the heading that steps from one cell to an adjacent one,
// or None when the cells are not adjacent.
func DirectionTo(from, to Cell) Direction {
	delta := Cell{X: to.X - from.X, Y: to.Y - from.Y}
	for _, d := range Directions {
		if d.Delta() == delta {
			return d
		}
	}
	return None
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	case None:
		return "none"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
