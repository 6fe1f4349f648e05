package costmap

// DirtyRect is a rectangle in cell coordinates meaning "cells in this
// region may differ from the last time the master was stamped."
type DirtyRect struct {
	X, Y, W, H int
	Valid      bool
}

// WholeGrid returns a DirtyRect covering the full extent of g.
func WholeGrid(g *Grid) DirtyRect {
	return DirtyRect{X: 0, Y: 0, W: g.SizeX, H: g.SizeY, Valid: true}
}

// Union returns the smallest DirtyRect containing both r and o. An
// invalid operand is ignored.
func (r DirtyRect) Union(o DirtyRect) DirtyRect {
	if !r.Valid {
		return o
	}
	if !o.Valid {
		return r
	}
	minX, minY := min(r.X, o.X), min(r.Y, o.Y)
	maxX, maxY := max(r.X+r.W, o.X+o.W), max(r.Y+r.H, o.Y+o.H)
	return DirtyRect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY, Valid: true}
}

// WorldBounds converts the rect from cell coordinates to a world-frame
// axis-aligned bounding box on grid g.
func (r DirtyRect) WorldBounds(g *Grid) (minX, minY, maxX, maxY float64) {
	minX = g.OriginX + float64(r.X)*g.Resolution
	minY = g.OriginY + float64(r.Y)*g.Resolution
	maxX = g.OriginX + float64(r.X+r.W)*g.Resolution
	maxY = g.OriginY + float64(r.Y+r.H)*g.Resolution
	return
}
