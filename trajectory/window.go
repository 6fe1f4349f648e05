package trajectory

import (
	"math"

	"go.viam.com/localplanner/geom2d"
	"go.viam.com/localplanner/limits"
)

// Window is the axis-aligned box of dynamically reachable velocities.
type Window struct {
	MinVx, MaxVx         float64
	MinVy, MaxVy         float64
	MinVtheta, MaxVtheta float64
}

// ComputeDynamicWindow returns the box [v - a*simPeriod, v + a*simPeriod]
// intersected with the global velocity limits, or, when useDWA is
// false, the entire velocity limit box regardless of current velocity.
func ComputeDynamicWindow(current geom2d.Velocity2D, lim limits.Limits, simPeriod float64, useDWA bool) Window {
	if !useDWA {
		return Window{
			MinVx: lim.MinVelX, MaxVx: lim.MaxVelX,
			MinVy: lim.MinVelY, MaxVy: lim.MaxVelY,
			MinVtheta: lim.MinRotVel, MaxVtheta: lim.MaxRotVel,
		}
	}
	return Window{
		MinVx: math.Max(lim.MinVelX, current.Vx-lim.AccLimX*simPeriod),
		MaxVx: math.Min(lim.MaxVelX, current.Vx+lim.AccLimX*simPeriod),
		MinVy: math.Max(lim.MinVelY, current.Vy-lim.AccLimY*simPeriod),
		MaxVy: math.Min(lim.MaxVelY, current.Vy+lim.AccLimY*simPeriod),
		MinVtheta: math.Max(lim.MinRotVel, current.Vtheta-lim.AccLimTheta*simPeriod),
		MaxVtheta: math.Min(lim.MaxRotVel, current.Vtheta+lim.AccLimTheta*simPeriod),
	}
}

// withinTransDisk reports whether (vx, vy) falls within the annulus
// [MinTransVel, MaxTransVel] of reachable translational speeds.
func withinTransDisk(vx, vy float64, lim limits.Limits) bool {
	speed := math.Hypot(vx, vy)
	return speed <= lim.MaxTransVel && speed >= lim.MinTransVel
}

// axisValue returns the k-th of n uniformly spaced samples over
// [minV, maxV], endpoints included. A single sample lands on the
// window's center.
func axisValue(k, n int, minV, maxV float64) float64 {
	if n <= 1 {
		return (minV + maxV) / 2
	}
	step := (maxV - minV) / float64(n-1)
	return minV + float64(k)*step
}
