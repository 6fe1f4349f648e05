// Package trajectory implements the Dynamic Window trajectory
// generator: enumeration of velocity samples within the dynamically
// reachable window and forward simulation of each into a pose
// sequence.
package trajectory

import "go.viam.com/localplanner/geom2d"

// VelocitySample is a candidate (vx, vy, vtheta) command.
type VelocitySample struct {
	Vx, Vy, Vtheta float64
}

// Trajectory is a forward-simulated candidate. Cost is filled in later
// by the scored sampling planner; a negative cost means infeasible.
type Trajectory struct {
	Poses          []geom2d.Pose2D
	Vx, Vy, Vtheta float64
	DT             float64
	Cost           float64
}

// Sample returns the trajectory's originating velocity command.
func (t Trajectory) Sample() VelocitySample {
	return VelocitySample{Vx: t.Vx, Vy: t.Vy, Vtheta: t.Vtheta}
}

// Legal reports whether the trajectory's cost marks it feasible.
func (t Trajectory) Legal() bool {
	return t.Cost >= 0
}
