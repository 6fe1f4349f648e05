package geom2d

import (
	"math"

	"github.com/golang/geo/r2"
)

// Footprint is the robot's extent in the plane, expressed as a polygon
// of vertices relative to the robot's origin (0, 0), in the same order
// a caller would trace them (winding order does not matter for the
// rasterization this package supports).
type Footprint struct {
	Vertices []r2.Point
}

// NewRectangularFootprint builds the common rectangular footprint of a
// wheeled base: halfLength along x, halfWidth along y.
func NewRectangularFootprint(halfLength, halfWidth float64) Footprint {
	return Footprint{Vertices: []r2.Point{
		{X: halfLength, Y: halfWidth},
		{X: halfLength, Y: -halfWidth},
		{X: -halfLength, Y: -halfWidth},
		{X: -halfLength, Y: halfWidth},
	}}
}

// TransformedAt returns the footprint's vertices translated and rotated
// to be centered at pose.
func (f Footprint) TransformedAt(pose Pose2D) []r2.Point {
	out := make([]r2.Point, len(f.Vertices))
	sinTh, cosTh := math.Sincos(pose.Theta)
	for i, v := range f.Vertices {
		rx := v.X*cosTh - v.Y*sinTh
		ry := v.X*sinTh + v.Y*cosTh
		out[i] = r2.Point{X: pose.Point.X + rx, Y: pose.Point.Y + ry}
	}
	return out
}
