package ai

import (
	"container/heap"
	"maps"

	"snake-battle/game/types"
)

// Blocked is a set of impassable cells.
type Blocked map[types.Cell]struct{}

// neighbours is the expansion order; ties between equal-cost nodes fall back
// to insertion order, so this order also fixes which of two equal paths wins.
var neighbours = [4]types.Cell{
	{X: 0, Y: 1},
	{X: 0, Y: -1},
	{X: 1, Y: 0},
	{X: -1, Y: 0},
}

// Border returns the ring of cells just outside the grid. Treating the ring as
// blocked keeps the search inside the grid without bounds checks.
func Border(grid types.Grid) Blocked {
	ring := make(Blocked, 2*(grid.Width+grid.Height)+4)
	for x := -1; x <= grid.Width; x++ {
		ring[types.Cell{X: x, Y: -1}] = struct{}{}
		ring[types.Cell{X: x, Y: grid.Height}] = struct{}{}
	}
	for y := 0; y < grid.Height; y++ {
		ring[types.Cell{X: -1, Y: y}] = struct{}{}
		ring[types.Cell{X: grid.Width, Y: y}] = struct{}{}
	}
	return ring
}

// Obstacles builds the blocked set for a search: the border ring plus every
// cell of the given bodies.
func Obstacles(grid types.Grid, bodies ...[]types.Cell) Blocked {
	blocked := Border(grid)
	for _, body := range bodies {
		for _, c := range body {
			blocked[c] = struct{}{}
		}
	}
	return blocked
}

// FindPath runs A* from start to goal over a 4-connected grid with unit step
// costs and returns the route including both endpoints, or nil if the goal
// cannot be reached. The start cell itself is never tested against blocked.
//
// blocked must enclose start (Obstacles does this with the border ring);
// otherwise an unreachable goal makes the search unbounded.
func FindPath(start, goal types.Cell, blocked Blocked) []types.Cell {
	if _, ok := blocked[goal]; ok {
		return nil
	}

	var open frontier
	var seq uint64
	heap.Push(&open, node{cell: start, f: types.Manhattan(start, goal)})

	cameFrom := make(map[types.Cell]types.Cell)
	gScore := map[types.Cell]int{start: 0}
	closed := make(map[types.Cell]bool)

	for open.Len() > 0 {
		current := heap.Pop(&open).(node)
		if current.cell == goal {
			return reconstruct(cameFrom, start, goal)
		}
		if closed[current.cell] {
			continue
		}
		closed[current.cell] = true

		for _, d := range neighbours {
			next := current.cell.Add(d)
			if _, ok := blocked[next]; ok || closed[next] {
				continue
			}
			tentative := current.g + 1
			if g, seen := gScore[next]; seen && tentative >= g {
				continue
			}
			cameFrom[next] = current.cell
			gScore[next] = tentative
			seq++
			heap.Push(&open, node{
				cell: next,
				g:    tentative,
				f:    tentative + types.Manhattan(next, goal),
				seq:  seq,
			})
		}
	}
	return nil
}

// FindRoute is FindPath for a mover travelling along heading: the first step
// may not be the reversal of heading, and the route never passes back through
// start. Among the legal first steps the shortest route wins, ties going to
// the neighbour expansion order. A heading of types.None allows every first
// step.
func FindRoute(start, goal types.Cell, heading types.Direction, blocked Blocked) []types.Cell {
	if _, ok := blocked[goal]; ok || start == goal {
		return nil
	}
	back := heading.Opposite().Delta()
	inner := maps.Clone(blocked)
	if inner == nil {
		inner = make(Blocked)
	}
	inner[start] = struct{}{}

	var best []types.Cell
	for _, d := range neighbours {
		if heading != types.None && d == back {
			continue
		}
		next := start.Add(d)
		if _, ok := inner[next]; ok {
			continue
		}
		if next == goal {
			return []types.Cell{start, goal}
		}
		rest := FindPath(next, goal, inner)
		if rest != nil && (best == nil || len(rest)+1 < len(best)) {
			best = append([]types.Cell{start}, rest...)
		}
	}
	return best
}

func reconstruct(cameFrom map[types.Cell]types.Cell, start, goal types.Cell) []types.Cell {
	path := []types.Cell{goal}
	for current := goal; current != start; {
		current = cameFrom[current]
		path = append(path, current)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
