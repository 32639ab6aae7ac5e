package gridmap

import "github.com/zyedidia/generic/mapset"

// Region finds every passable cell 4-connected to from, from included.
// An out-of-bounds or blocked from yields an empty set.
//
// Time:   O(W·H).
// Memory: O(W·H) for the queue and the result set.
func (g *Grid) Region(from Position) mapset.Set[Position] {
	seen := mapset.New[Position]()
	if !g.IsPassable(from) {
		return seen
	}
	// BFS to collect the component
	queue := []Position{from}
	seen.Put(from)
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for _, d := range Directions {
			v := u.Move(d)
			if !g.IsPassable(v) || seen.Has(v) {
				continue
			}
			seen.Put(v)
			queue = append(queue, v)
		}
	}
	return seen
}
