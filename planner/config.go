package planner

import (
	"fmt"

	"go.uber.org/multierr"
	"go.viam.com/utils"

	"go.viam.com/localplanner/limits"
	"go.viam.com/localplanner/trajectory"
)

// Config is the full reconfigurable state of a Core: the
// velocity/acceleration limits, one WeightSet per controller state, the
// three state-switch thresholds, and the trajectory sampling
// parameters.
type Config struct {
	Limits  limits.Limits
	Weights map[State]WeightSet

	SwitchYawError     float64
	SwitchPlanDistance float64
	SwitchGoalDistance float64

	// OscillationResetDist is the distance, in meters, the robot must
	// travel from where it last committed to a velocity sign before
	// OscillationCostFunction clears that sign's veto.
	OscillationResetDist float64

	Sampling trajectory.Config
}

// Validate checks the limits, the sampling grid, and that every state
// has a weight row, combining every violation found rather than
// stopping at the first, following limits.Limits.Validate's style.
func (c Config) Validate(path string) error {
	var errs error
	if err := c.Limits.Validate(path + ".limits"); err != nil {
		errs = multierr.Append(errs, err)
	}

	for _, s := range []State{StateDefault, StateAlign, StateArrive} {
		if _, ok := c.Weights[s]; !ok {
			errs = multierr.Append(errs, utils.NewConfigValidationFieldRequiredError(path, "weights."+s.String()))
		}
	}

	if c.Sampling.NX <= 0 || c.Sampling.NY <= 0 || c.Sampling.NTh <= 0 {
		errs = multierr.Append(errs, utils.NewConfigValidationError(path,
			fmt.Errorf("sampling counts (nx, ny, nth) must all be positive")))
	}
	if c.Sampling.SimTime <= 0 {
		errs = multierr.Append(errs, utils.NewConfigValidationError(path,
			fmt.Errorf("sim_time must be positive")))
	}

	return errs
}
