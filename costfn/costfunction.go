// Package costfn implements the pluggable trajectory cost functions a
// local motion planner scores candidate velocities with: obstacle
// clearance, plan/goal wavefront distance, heading alignment,
// commanded-velocity shaping, and oscillation avoidance. Each carries
// its per-cycle mutable state through an explicit setter rather than a
// hidden global, mirroring go.viam.com/rdk/control's ControlBlock
// interface (Reset/Next/Config) generalized from a signal-flow block to
// a trajectory scorer.
package costfn

import "go.viam.com/localplanner/trajectory"

// CostFunction scores a trajectory. A negative score vetoes the
// trajectory; a non-negative score is later multiplied by the
// function's per-cycle scale.
type CostFunction interface {
	Score(traj trajectory.Trajectory) float64
}
