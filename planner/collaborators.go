package planner

import (
	"context"

	"go.viam.com/localplanner/geom2d"
)

// PoseSource supplies the robot's current pose in the global frame.
type PoseSource interface {
	GetRobotPose(ctx context.Context) (geom2d.Pose2D, error)
}

// OdomSource supplies the robot's current body-frame velocity.
type OdomSource interface {
	GetRobotVel(ctx context.Context) (geom2d.Velocity2D, error)
}

// GlobalPlanSource supplies the reference path the local planner
// should track. An empty plan is a recoverable error.
type GlobalPlanSource interface {
	GetLocalPlan(ctx context.Context, robotPose geom2d.Pose2D) ([]geom2d.Pose2D, error)
}

// CmdVelPublisher is the output sink for a cycle's chosen velocity
// command.
type CmdVelPublisher interface {
	PublishCmdVel(vx, vy, vtheta float64)
}

// PathPublisher is the visualization-only output sink for the local
// plan and the chosen trajectory's polyline. A cycle never fails
// because these are unset or drop what they're given.
type PathPublisher interface {
	PublishLocalPlan(path []geom2d.Pose2D)
	PublishTrajectoryPolyline(poses []geom2d.Pose2D)
}
