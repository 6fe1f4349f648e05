package geom2d

import (
	"math"
	"testing"

	"go.viam.com/test"
)

func TestNormalizeAngleWrapsToHalfOpenInterval(t *testing.T) {
	test.That(t, NormalizeAngle(math.Pi), test.ShouldAlmostEqual, math.Pi, 1e-9)
	test.That(t, NormalizeAngle(-math.Pi), test.ShouldAlmostEqual, math.Pi, 1e-9)
	test.That(t, NormalizeAngle(math.Pi+0.1), test.ShouldAlmostEqual, -math.Pi+0.1, 1e-9)
	test.That(t, NormalizeAngle(-math.Pi-0.1), test.ShouldAlmostEqual, math.Pi-0.1, 1e-9)
	test.That(t, NormalizeAngle(3*math.Pi), test.ShouldAlmostEqual, math.Pi, 1e-9)
	test.That(t, NormalizeAngle(0), test.ShouldAlmostEqual, 0, 1e-9)
}

func TestAngleToNormalizesTheDifference(t *testing.T) {
	p := NewPose2D(0, 0, math.Pi-0.1)
	other := NewPose2D(0, 0, -math.Pi+0.1)
	test.That(t, p.AngleTo(other), test.ShouldAlmostEqual, 0.2, 1e-9)
}

func TestDistanceToIsEuclidean(t *testing.T) {
	p := NewPose2D(0, 0, 0)
	other := NewPose2D(3, 4, 0)
	test.That(t, p.DistanceTo(other), test.ShouldAlmostEqual, 5.0, 1e-9)
}

func TestIntegrateStraightLine(t *testing.T) {
	pose := NewPose2D(0, 0, 0)
	next := Integrate(pose, Velocity2D{Vx: 1.0}, 2.0)
	test.That(t, next.X(), test.ShouldAlmostEqual, 2.0, 1e-9)
	test.That(t, next.Y(), test.ShouldAlmostEqual, 0.0, 1e-9)
	test.That(t, next.Theta, test.ShouldAlmostEqual, 0.0, 1e-9)
}

func TestIntegrateRotatesBodyFrameVelocityIntoWorldFrame(t *testing.T) {
	pose := NewPose2D(0, 0, math.Pi/2)
	next := Integrate(pose, Velocity2D{Vx: 1.0}, 1.0)
	test.That(t, next.X(), test.ShouldAlmostEqual, 0.0, 1e-9)
	test.That(t, next.Y(), test.ShouldAlmostEqual, 1.0, 1e-9)
}

func TestIntegrateAccumulatesHeading(t *testing.T) {
	pose := NewPose2D(0, 0, 0)
	next := Integrate(pose, Velocity2D{Vtheta: 1.0}, 1.0)
	test.That(t, next.Theta, test.ShouldAlmostEqual, 1.0, 1e-9)
}

func TestIntegrateWrapsHeadingAcrossPi(t *testing.T) {
	pose := NewPose2D(0, 0, math.Pi-0.1)
	next := Integrate(pose, Velocity2D{Vtheta: 1.0}, 0.2)
	test.That(t, next.Theta, test.ShouldAlmostEqual, -math.Pi+0.1, 1e-9)
}

func TestVelocity2DStoppedRequiresBothAxesUnderTolerance(t *testing.T) {
	test.That(t, Velocity2D{Vx: 0.01, Vtheta: 0.01}.Stopped(0.02, 0.02), test.ShouldBeTrue)
	test.That(t, Velocity2D{Vx: 0.5, Vtheta: 0.01}.Stopped(0.02, 0.02), test.ShouldBeFalse)
	test.That(t, Velocity2D{Vx: 0.01, Vtheta: 0.5}.Stopped(0.02, 0.02), test.ShouldBeFalse)
}

func TestTransSpeedIsHypotOfVxVy(t *testing.T) {
	v := Velocity2D{Vx: 3, Vy: 4}
	test.That(t, v.TransSpeed(), test.ShouldAlmostEqual, 5.0, 1e-9)
}
