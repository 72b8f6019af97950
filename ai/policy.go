package ai

import (
	"snake-battle/game/types"

	"golang.org/x/exp/rand"
)

// Toward returns the heading from the first cell of path to its second.
// It reports false for paths shorter than two cells.
func Toward(path []types.Cell) (types.Direction, bool) {
	if len(path) < 2 {
		return types.None, false
	}
	d := types.DirectionTo(path[0], path[1])
	return d, d != types.None
}

// Wander picks uniformly among the three headings that do not reverse current.
func Wander(rng *rand.Rand, current types.Direction) types.Direction {
	reverse := current.Opposite()
	choices := make([]types.Direction, 0, len(types.Directions))
	for _, d := range types.Directions {
		if d != reverse {
			choices = append(choices, d)
		}
	}
	return choices[rng.Intn(len(choices))]
}
