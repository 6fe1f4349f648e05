package costfn

import (
	"testing"

	"go.viam.com/test"

	"go.viam.com/localplanner/trajectory"
)

func TestCmdVelCostFunctionPenalizesBySignedCoefficient(t *testing.T) {
	c := NewCmdVelCostFunction(1.0, 5.0, 0, 0, 0, 0)

	forward := trajectory.Trajectory{Vx: 1.0}
	reverse := trajectory.Trajectory{Vx: -1.0}

	test.That(t, c.Score(forward), test.ShouldEqual, 1.0)
	test.That(t, c.Score(reverse), test.ShouldEqual, 5.0)
}

func TestCmdVelCostFunctionSumsAllThreeAxes(t *testing.T) {
	c := NewCmdVelCostFunction(1.0, 1.0, 2.0, 2.0, 3.0, 3.0)
	traj := trajectory.Trajectory{Vx: 1.0, Vy: 1.0, Vtheta: -1.0}
	test.That(t, c.Score(traj), test.ShouldEqual, 1.0+2.0+3.0)
}

func TestCmdVelCostFunctionZeroCoefficientsNeverPenalize(t *testing.T) {
	c := NewCmdVelCostFunction(0, 0, 0, 0, 0, 0)
	traj := trajectory.Trajectory{Vx: 5, Vy: -5, Vtheta: 5}
	test.That(t, c.Score(traj), test.ShouldEqual, 0.0)
}
