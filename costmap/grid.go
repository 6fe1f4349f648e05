// Package costmap implements the dense occupancy grid shared by the
// static costmap layer and the layered costmap orchestrator external
// collaborator, following the world/map coordinate conventions of
// go.viam.com/rdk's costmap-adjacent packages (collision/geometry.go's
// axis-aligned box math, spatialmath/box.go's half-size convention).
package costmap

import "github.com/pkg/errors"

// CellValue is a single costmap cell. Any value other than the
// distinguished constants below is an ordinal cost.
type CellValue = byte

// Distinguished cell values.
const (
	Free      CellValue = 0
	Inscribed CellValue = 253
	Lethal    CellValue = 254
	NoInfo    CellValue = 255
)

// Grid is a dense, rectangular occupancy grid with a world origin:
// size_x, size_y, resolution, world origin (ox, oy), and a dense cell
// buffer.
type Grid struct {
	SizeX, SizeY int
	Resolution   float64
	OriginX      float64
	OriginY      float64
	Cells        []CellValue
}

// NewGrid allocates a grid of the given shape, all cells FREE.
func NewGrid(sizeX, sizeY int, resolution, originX, originY float64) *Grid {
	return &Grid{
		SizeX:      sizeX,
		SizeY:      sizeY,
		Resolution: resolution,
		OriginX:    originX,
		OriginY:    originY,
		Cells:      make([]CellValue, sizeX*sizeY),
	}
}

// SameShape reports whether two grids agree on size, resolution, and
// origin. Two nil grids count as the same shape.
func (g *Grid) SameShape(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	return g.SizeX == o.SizeX && g.SizeY == o.SizeY &&
		g.Resolution == o.Resolution && g.OriginX == o.OriginX && g.OriginY == o.OriginY
}

// index returns the row-major cell index for (mx, my), or -1 if out of
// bounds.
func (g *Grid) index(mx, my int) int {
	if mx < 0 || my < 0 || mx >= g.SizeX || my >= g.SizeY {
		return -1
	}
	return my*g.SizeX + mx
}

// InBounds reports whether (mx, my) is a valid cell coordinate.
func (g *Grid) InBounds(mx, my int) bool {
	return g.index(mx, my) >= 0
}

// GetCost returns the cell value at map coordinate (mx, my). Out of
// bounds cells read as NO_INFO, matching the layered costmap's
// treatment of unmapped space.
func (g *Grid) GetCost(mx, my int) CellValue {
	idx := g.index(mx, my)
	if idx < 0 {
		return NoInfo
	}
	return g.Cells[idx]
}

// SetCost writes the cell value at map coordinate (mx, my). Out of
// bounds writes are silently dropped, matching a stamp operation that
// clips to the destination grid.
func (g *Grid) SetCost(mx, my int, v CellValue) {
	idx := g.index(mx, my)
	if idx < 0 {
		return
	}
	g.Cells[idx] = v
}

// WorldToMap converts a world coordinate to a map cell. The second
// return is false if the world point falls outside the grid; the
// round-trip through MapToWorld only holds for in-range cells.
func (g *Grid) WorldToMap(wx, wy float64) (mx, my int, ok bool) {
	if wx < g.OriginX || wy < g.OriginY {
		return 0, 0, false
	}
	mx = int((wx - g.OriginX) / g.Resolution)
	my = int((wy - g.OriginY) / g.Resolution)
	if mx >= g.SizeX || my >= g.SizeY {
		return 0, 0, false
	}
	return mx, my, true
}

// MapToWorld converts a map cell to the world coordinate of its
// center.
func (g *Grid) MapToWorld(mx, my int) (wx, wy float64) {
	wx = g.OriginX + (float64(mx)+0.5)*g.Resolution
	wy = g.OriginY + (float64(my)+0.5)*g.Resolution
	return wx, wy
}

// Resize replaces the grid's shape and origin in place, discarding its
// prior contents (all cells reset to FREE). The static layer does not
// call it directly: it asks the LayeredCostmap to ResizeMap the master
// and allocates a fresh private grid with NewGrid when an incoming
// snapshot's shape, origin, or resolution has changed.
func (g *Grid) Resize(sizeX, sizeY int, resolution, originX, originY float64) {
	g.SizeX = sizeX
	g.SizeY = sizeY
	g.Resolution = resolution
	g.OriginX = originX
	g.OriginY = originY
	g.Cells = make([]CellValue, sizeX*sizeY)
}

// ValidateShape returns an error if the buffer length doesn't match
// sizeX*sizeY, rejecting a malformed snapshot before it corrupts a
// grid.
func ValidateShape(sizeX, sizeY int, bufLen int) error {
	if sizeX*sizeY != bufLen {
		return errors.Errorf("cell buffer length %d does not match declared shape %dx%d", bufLen, sizeX, sizeY)
	}
	return nil
}
