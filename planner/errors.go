package planner

import (
	"github.com/pkg/errors"
)

// Sentinel error kinds for RunCycle's recoverable failures. Each is
// checkable with errors.Is against the value RunCycle returns.
var (
	// ErrPoseUnavailable means no fresh pose was available from the
	// pose source; the cycle returns without publishing.
	ErrPoseUnavailable = errors.New("local planner: pose unavailable")
	// ErrPlanUnavailable means the global plan source returned no plan.
	ErrPlanUnavailable = errors.New("local planner: plan unavailable")
	// ErrEmptyPlan means the global plan source returned an empty plan.
	ErrEmptyPlan = errors.New("local planner: empty plan")
	// ErrNoLegalTrajectory means every sampled trajectory was vetoed.
	ErrNoLegalTrajectory = errors.New("local planner: no legal trajectory")
)
