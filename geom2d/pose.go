// Package geom2d holds the planar pose, velocity, and footprint types
// shared by the costmap and trajectory packages. Everything here lives
// in a single world/local reference frame; there is no notion of a 3D
// pose or orientation quaternion the way go.viam.com/rdk/spatialmath
// has, because the local planner core only ever reasons about the
// ground plane.
package geom2d

import (
	"math"

	"github.com/golang/geo/r2"
)

// Pose2D is a robot or path pose in the global planar frame.
type Pose2D struct {
	Point r2.Point
	Theta float64
}

// NewPose2D constructs a Pose2D from raw coordinates.
func NewPose2D(x, y, theta float64) Pose2D {
	return Pose2D{Point: r2.Point{X: x, Y: y}, Theta: theta}
}

// X returns the pose's x coordinate.
func (p Pose2D) X() float64 { return p.Point.X }

// Y returns the pose's y coordinate.
func (p Pose2D) Y() float64 { return p.Point.Y }

// DistanceTo returns the Euclidean distance between two poses' points.
func (p Pose2D) DistanceTo(other Pose2D) float64 {
	return p.Point.Sub(other.Point).Norm()
}

// AngleTo returns the signed angular difference other.Theta - p.Theta,
// normalized to (-pi, pi].
func (p Pose2D) AngleTo(other Pose2D) float64 {
	return NormalizeAngle(other.Theta - p.Theta)
}

// NormalizeAngle wraps an angle in radians to (-pi, pi].
func NormalizeAngle(theta float64) float64 {
	for theta > math.Pi {
		theta -= 2 * math.Pi
	}
	for theta <= -math.Pi {
		theta += 2 * math.Pi
	}
	return theta
}

// Velocity2D is a commanded or observed body-frame velocity.
type Velocity2D struct {
	Vx, Vy, Vtheta float64
}

// TransSpeed returns the translational speed sqrt(vx^2+vy^2).
func (v Velocity2D) TransSpeed() float64 {
	return math.Hypot(v.Vx, v.Vy)
}

// Stopped reports whether v is within the given rotational and
// translational stop tolerances, used by the Arrive state's
// goal-reached check.
func (v Velocity2D) Stopped(rotStoppedVel, transStoppedVel float64) bool {
	return math.Abs(v.Vtheta) <= rotStoppedVel && v.TransSpeed() <= transStoppedVel
}

// Integrate advances pose by velocity v over duration dt using
// unicycle/omnidirectional kinematics: the body-frame vx/vy is rotated
// into the world frame by the pose's current heading, theta accumulates
// vtheta*dt directly.
func Integrate(pose Pose2D, v Velocity2D, dt float64) Pose2D {
	sinTh, cosTh := math.Sincos(pose.Theta)
	dx := (v.Vx*cosTh - v.Vy*sinTh) * dt
	dy := (v.Vx*sinTh + v.Vy*cosTh) * dt
	return Pose2D{
		Point: r2.Point{X: pose.Point.X + dx, Y: pose.Point.Y + dy},
		Theta: NormalizeAngle(pose.Theta + v.Vtheta*dt),
	}
}
