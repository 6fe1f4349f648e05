package costfn

import (
	"go.viam.com/localplanner/geom2d"
	"go.viam.com/localplanner/trajectory"
)

// OscillationCostFunction vetoes trajectories that would reverse a
// velocity axis's sign before the robot has traveled resetDist away
// from where it last committed to that sign. Without this, a robot
// sitting at a local obstacle boundary alternates between "move
// forward" and "move backward" every cycle and never makes progress.
type OscillationCostFunction struct {
	resetDist float64

	havePrevPose bool
	resetPose    geom2d.Pose2D

	posXFlag, negXFlag         bool
	posYFlag, negYFlag         bool
	posThetaFlag, negThetaFlag bool
}

// NewOscillationCostFunction constructs an OscillationCostFunction that
// clears its flags once the robot has moved resetDist meters from where
// they were set.
func NewOscillationCostFunction(resetDist float64) *OscillationCostFunction {
	return &OscillationCostFunction{resetDist: resetDist}
}

// UpdateFlags records the sign of the velocity actually commanded this
// cycle at currentPose. Call this once per cycle after a trajectory
// has been selected and published, not once per candidate scored.
func (o *OscillationCostFunction) UpdateFlags(currentPose geom2d.Pose2D, cmd geom2d.Velocity2D) {
	if !o.havePrevPose {
		o.havePrevPose = true
		o.resetPose = currentPose
	} else if currentPose.DistanceTo(o.resetPose) > o.resetDist {
		o.resetFlags()
		o.resetPose = currentPose
	}

	switch {
	case cmd.Vx > 0:
		o.posXFlag = true
	case cmd.Vx < 0:
		o.negXFlag = true
	}
	switch {
	case cmd.Vy > 0:
		o.posYFlag = true
	case cmd.Vy < 0:
		o.negYFlag = true
	}
	switch {
	case cmd.Vtheta > 0:
		o.posThetaFlag = true
	case cmd.Vtheta < 0:
		o.negThetaFlag = true
	}
}

func (o *OscillationCostFunction) resetFlags() {
	o.posXFlag, o.negXFlag = false, false
	o.posYFlag, o.negYFlag = false, false
	o.posThetaFlag, o.negThetaFlag = false, false
}

// Score implements CostFunction, vetoing any trajectory whose commanded
// velocity sign contradicts a flag still in effect.
func (o *OscillationCostFunction) Score(traj trajectory.Trajectory) float64 {
	if (traj.Vx < 0 && o.posXFlag) || (traj.Vx > 0 && o.negXFlag) {
		return -1
	}
	if (traj.Vy < 0 && o.posYFlag) || (traj.Vy > 0 && o.negYFlag) {
		return -1
	}
	if (traj.Vtheta < 0 && o.posThetaFlag) || (traj.Vtheta > 0 && o.negThetaFlag) {
		return -1
	}
	return 0
}
