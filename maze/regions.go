package maze

// Regions finds all contiguous groups of passable cells (any terrain but
// Wall) under 4-connectivity. It returns a label per cell index, -1 for
// Wall cells, and the number of regions found. Labels are assigned in
// row-major order of each region's first cell.
//
// Time:   O(R·C·4).
// Memory: O(R·C) for labels and the queue.
func (g *Grid) Regions() (labels []int, count int) {
	total := g.Size()
	labels = make([]int, total)
	for i := range labels {
		labels[i] = -1
	}

	queue := make([]int, 0, total)
	for i0 := 0; i0 < total; i0++ {
		if g.cells[i0] == Wall || labels[i0] >= 0 {
			continue
		}
		// BFS to label the region
		queue = append(queue[:0], i0)
		labels[i0] = count
		for qi := 0; qi < len(queue); qi++ {
			u := g.Coord(queue[qi])
			for _, d := range Directions {
				v := u.Add(d)
				if !g.Passable(v) {
					continue
				}
				vi := g.Index(v)
				if labels[vi] < 0 {
					labels[vi] = count
					queue = append(queue, vi)
				}
			}
		}
		count++
	}

	return labels, count
}

// Reachable reports whether to can be reached from from by orthogonal
// moves over passable cells. Hazard and Slow cells count as passable.
// Returns false if either endpoint is not passable.
func (g *Grid) Reachable(from, to Coord) bool {
	if !g.Passable(from) || !g.Passable(to) {
		return false
	}
	if from == to {
		return true
	}
	seen := make([]bool, g.Size())
	target := g.Index(to)
	queue := []int{g.Index(from)}
	seen[queue[0]] = true
	for qi := 0; qi < len(queue); qi++ {
		u := g.Coord(queue[qi])
		for _, d := range Directions {
			v := u.Add(d)
			if !g.Passable(v) {
				continue
			}
			vi := g.Index(v)
			if vi == target {
				return true
			}
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}
	return false
}
