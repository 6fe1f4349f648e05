package costmap

import "sort"

// Cell is a map-space coordinate, distinct from the (mx, my) int pair
// GetCost/SetCost take so footprint tracing has a value type to collect
// into slices and sets.
type Cell struct {
	X, Y int
}

// bresenhamLine returns every cell on the line from (x0,y0) to (x1,y1),
// inclusive of both endpoints, the standard integer Bresenham
// algorithm used to rasterize a footprint polygon's edges onto the
// grid.
func bresenhamLine(x0, y0, x1, y1 int) []Cell {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	var cells []Cell
	x, y := x0, y0
	for {
		cells = append(cells, Cell{X: x, Y: y})
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
	return cells
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// TraceFootprintEdges rasterizes the closed polygon described by
// vertices (already in map/cell coordinates) along its edges, returning
// the deduplicated set of cells the perimeter passes through.
func TraceFootprintEdges(vertices []Cell) []Cell {
	if len(vertices) < 2 {
		return append([]Cell(nil), vertices...)
	}
	seen := make(map[Cell]struct{})
	var out []Cell
	add := func(c Cell) {
		if _, ok := seen[c]; !ok {
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}
	for i := range vertices {
		a := vertices[i]
		b := vertices[(i+1)%len(vertices)]
		for _, c := range bresenhamLine(a.X, a.Y, b.X, b.Y) {
			add(c)
		}
	}
	return out
}

// FillPolygon returns every cell inside (and on the boundary of) the
// closed polygon described by vertices, via a standard scanline fill.
// Callers use this for the footprint's interior when a cost function
// needs to check the whole swept area rather than only its perimeter.
func FillPolygon(vertices []Cell) []Cell {
	if len(vertices) < 3 {
		return TraceFootprintEdges(vertices)
	}
	minY, maxY := vertices[0].Y, vertices[0].Y
	for _, v := range vertices {
		if v.Y < minY {
			minY = v.Y
		}
		if v.Y > maxY {
			maxY = v.Y
		}
	}

	var out []Cell
	n := len(vertices)
	for y := minY; y <= maxY; y++ {
		var xs []int
		for i := 0; i < n; i++ {
			a, b := vertices[i], vertices[(i+1)%n]
			if a.Y == b.Y {
				continue
			}
			if (a.Y <= y && y < b.Y) || (b.Y <= y && y < a.Y) {
				t := float64(y-a.Y) / float64(b.Y-a.Y)
				x := float64(a.X) + t*float64(b.X-a.X)
				xs = append(xs, int(x))
			}
		}
		sort.Ints(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for x := xs[i]; x <= xs[i+1]; x++ {
				out = append(out, Cell{X: x, Y: y})
			}
		}
	}
	return append(out, TraceFootprintEdges(vertices)...)
}
