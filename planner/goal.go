package planner

import (
	"math"

	"go.viam.com/localplanner/geom2d"
	"go.viam.com/localplanner/limits"
)

// GoalReached reports whether pose is close enough to goal, in both
// position and heading, and vel is slow enough, for the Arrive state to
// consider the cycle complete: xy_to_goal <= XYGoalTol, the heading
// error is within YawGoalTol, and the robot is stopped per
// Velocity2D.Stopped.
func GoalReached(pose, goal geom2d.Pose2D, vel geom2d.Velocity2D, lim limits.Limits) bool {
	return pose.DistanceTo(goal) <= lim.XYGoalTol &&
		math.Abs(pose.AngleTo(goal)) <= lim.YawGoalTol &&
		vel.Stopped(lim.RotStoppedVel, lim.TransStoppedVel)
}
