package geom2d

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestNewRectangularFootprintVertexOrder(t *testing.T) {
	f := NewRectangularFootprint(0.5, 0.25)
	test.That(t, len(f.Vertices), test.ShouldEqual, 4)
	test.That(t, f.Vertices[0].X, test.ShouldAlmostEqual, 0.5, 1e-9)
	test.That(t, f.Vertices[0].Y, test.ShouldAlmostEqual, 0.25, 1e-9)
	test.That(t, f.Vertices[2].X, test.ShouldAlmostEqual, -0.5, 1e-9)
	test.That(t, f.Vertices[2].Y, test.ShouldAlmostEqual, -0.25, 1e-9)
}

func TestTransformedAtTranslatesWithZeroHeading(t *testing.T) {
	f := NewRectangularFootprint(0.5, 0.5)
	verts := f.TransformedAt(NewPose2D(2, 3, 0))
	test.That(t, verts[0].X, test.ShouldAlmostEqual, 2.5, 1e-9)
	test.That(t, verts[0].Y, test.ShouldAlmostEqual, 3.5, 1e-9)
}

func TestTransformedAtRotatesQuarterTurn(t *testing.T) {
	f := NewRectangularFootprint(1.0, 0.5)
	verts := f.TransformedAt(NewPose2D(0, 0, math.Pi/2))
	// the vertex at local (1.0, 0.5) rotates to world (-0.5, 1.0).
	test.That(t, verts[0].X, test.ShouldAlmostEqual, -0.5, 1e-9)
	test.That(t, verts[0].Y, test.ShouldAlmostEqual, 1.0, 1e-9)
}
