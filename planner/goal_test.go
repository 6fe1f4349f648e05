package planner

import (
	"math"
	"testing"

	"go.viam.com/test"

	"go.viam.com/localplanner/geom2d"
	"go.viam.com/localplanner/limits"
)

func goalLimits() limits.Limits {
	return limits.Limits{
		XYGoalTol:       0.1,
		YawGoalTol:      0.05,
		TransStoppedVel: 0.02,
		RotStoppedVel:   0.02,
	}
}

func TestGoalReachedAllThreeConditionsHold(t *testing.T) {
	pose := geom2d.NewPose2D(1.0, 1.0, 0)
	goal := geom2d.NewPose2D(1.05, 1.0, 0.01)
	vel := geom2d.Velocity2D{Vx: 0.01, Vtheta: 0.01}
	test.That(t, GoalReached(pose, goal, vel, goalLimits()), test.ShouldBeTrue)
}

func TestGoalReachedFailsOnDistance(t *testing.T) {
	pose := geom2d.NewPose2D(1.0, 1.0, 0)
	goal := geom2d.NewPose2D(2.0, 1.0, 0)
	vel := geom2d.Velocity2D{}
	test.That(t, GoalReached(pose, goal, vel, goalLimits()), test.ShouldBeFalse)
}

func TestGoalReachedFailsOnHeading(t *testing.T) {
	pose := geom2d.NewPose2D(1.0, 1.0, 0)
	goal := geom2d.NewPose2D(1.0, 1.0, math.Pi/2)
	vel := geom2d.Velocity2D{}
	test.That(t, GoalReached(pose, goal, vel, goalLimits()), test.ShouldBeFalse)
}

func TestGoalReachedFailsWhenNotStopped(t *testing.T) {
	pose := geom2d.NewPose2D(1.0, 1.0, 0)
	goal := geom2d.NewPose2D(1.0, 1.0, 0)
	vel := geom2d.Velocity2D{Vx: 1.0}
	test.That(t, GoalReached(pose, goal, vel, goalLimits()), test.ShouldBeFalse)
}
