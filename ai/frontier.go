package ai

import "snake-battle/game/types"

type node struct {
	cell types.Cell
	g    int    // steps from start
	f    int    // g + heuristic
	seq  uint64 // insertion order
}

// frontier is a container/heap min-heap ordered by f, then by insertion order.
type frontier []node

func (h frontier) Len() int { return len(h) }
func (h frontier) Less(i, j int) bool {
	if h[i].f != h[j].f {
		return h[i].f < h[j].f
	}
	return h[i].seq < h[j].seq
}
func (h frontier) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *frontier) Push(x any) {
	*h = append(*h, x.(node))
}

func (h *frontier) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
