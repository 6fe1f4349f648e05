// Package limits holds the velocity and acceleration limit
// configuration shared by the trajectory generator, the cost
// functions, and the local planner core. It lives in its own package
// so those three can all depend on it without a cycle through planner.
package limits

import (
	"fmt"

	"go.uber.org/multierr"
	"go.viam.com/utils"
)

// Limits bounds the velocities, accelerations, and goal tolerances a
// local motion planner samples and simulates within.
type Limits struct {
	MaxTransVel, MinTransVel float64
	MaxVelX, MinVelX         float64
	MaxVelY, MinVelY         float64
	MaxRotVel, MinRotVel     float64
	AccLimX, AccLimY         float64
	AccLimTheta              float64
	AccLimitTrans            float64
	XYGoalTol                float64
	YawGoalTol               float64
	TransStoppedVel          float64
	RotStoppedVel            float64
	PrunePlan                bool
	LookaheadDistance        float64
}

// Validate checks the pairwise min/max ordering constraints, combining
// every violation found rather than stopping at the first, following
// components/base/wheeled/wheeled_base.go's AttrConfig.Validate style
// combined with go.uber.org/multierr's aggregation idiom.
func (l Limits) Validate(path string) error {
	var errs error
	check := func(field string, minV, maxV float64) {
		if minV > maxV {
			errs = multierr.Append(errs, utils.NewConfigValidationError(path,
				fmt.Errorf("%s: min (%v) must not exceed max (%v)", field, minV, maxV)))
		}
	}
	check("vel_x", l.MinVelX, l.MaxVelX)
	check("vel_y", l.MinVelY, l.MaxVelY)
	check("rot_vel", l.MinRotVel, l.MaxRotVel)
	check("trans_vel", l.MinTransVel, l.MaxTransVel)
	return errs
}
