package costfn

import (
	"math"

	"go.viam.com/localplanner/geom2d"
	"go.viam.com/localplanner/trajectory"
)

// AlignmentCostFunction penalizes trajectories whose heading diverges
// from a desired orientation at each sampled pose, summed across the
// whole trajectory. It never vetoes: an unset desired heading scores
// every trajectory 0, so it's the Align state's weight table that
// actually makes this cost function dominant.
type AlignmentCostFunction struct {
	desiredTheta float64
	hasDesired   bool
}

// NewAlignmentCostFunction constructs an AlignmentCostFunction with no
// desired heading set.
func NewAlignmentCostFunction() *AlignmentCostFunction {
	return &AlignmentCostFunction{}
}

// SetDesiredHeading sets the orientation, in radians, that every pose
// of a trajectory is scored against for this cycle.
func (a *AlignmentCostFunction) SetDesiredHeading(theta float64) {
	a.desiredTheta = theta
	a.hasDesired = true
}

// ClearDesiredHeading disables the penalty, for states that don't care
// about heading.
func (a *AlignmentCostFunction) ClearDesiredHeading() {
	a.hasDesired = false
}

// Score implements CostFunction, summing the absolute angular
// difference in radians between the desired heading and the trajectory's
// heading at each sampled pose.
func (a *AlignmentCostFunction) Score(traj trajectory.Trajectory) float64 {
	if !a.hasDesired || len(traj.Poses) == 0 {
		return 0
	}
	total := 0.0
	for _, pose := range traj.Poses {
		total += math.Abs(geom2d.NormalizeAngle(a.desiredTheta - pose.Theta))
	}
	return total
}
