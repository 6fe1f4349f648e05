package planner

import (
	"context"
	"sync"
	"time"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"

	"go.viam.com/localplanner/costfn"
	"go.viam.com/localplanner/costmap"
	"go.viam.com/localplanner/geom2d"
	"go.viam.com/localplanner/trajectory"
)

// Core is the local planner control loop: it owns the wired cost
// functions, the state machine, and the scored sampler, and runs one
// cycle at a time against its collaborators.
type Core struct {
	logger golog.Logger

	cfgMu sync.RWMutex
	cfg   Config

	footprintMu sync.RWMutex
	footprint   geom2d.Footprint

	poseSource     PoseSource
	odomSource     OdomSource
	planSource     GlobalPlanSource
	layeredCostmap costmap.LayeredCostmap
	cmdPublisher   CmdVelPublisher
	pathPublisher  PathPublisher

	obstacleCost    *costfn.ObstacleCostFunction
	planCost        *costfn.MapGridCostFunction
	goalCost        *costfn.MapGridCostFunction
	alignmentCost   *costfn.AlignmentCostFunction
	cmdVelCost      *costfn.CmdVelCostFunction
	oscillationCost *costfn.OscillationCostFunction

	stateMachine *StateMachine
	metrics      *Metrics
}

// NewCore constructs a Core wired to its collaborators and initial
// configuration. pathPublisher and metrics may be nil.
func NewCore(
	logger golog.Logger,
	cfg Config,
	poseSource PoseSource,
	odomSource OdomSource,
	planSource GlobalPlanSource,
	layeredCostmap costmap.LayeredCostmap,
	cmdPublisher CmdVelPublisher,
	pathPublisher PathPublisher,
	footprint geom2d.Footprint,
	metrics *Metrics,
) *Core {
	grid := layeredCostmap.GetCostmap()
	c := &Core{
		logger:          logger,
		cfg:             cfg,
		footprint:       footprint,
		poseSource:      poseSource,
		odomSource:      odomSource,
		planSource:      planSource,
		layeredCostmap:  layeredCostmap,
		cmdPublisher:    cmdPublisher,
		pathPublisher:   pathPublisher,
		obstacleCost:    costfn.NewObstacleCostFunction(grid, cfg.Limits),
		planCost:        costfn.NewMapGridCostFunction(costfn.AggregationSum),
		goalCost:        costfn.NewMapGridCostFunction(costfn.AggregationLast),
		alignmentCost:   costfn.NewAlignmentCostFunction(),
		cmdVelCost:      costfn.NewCmdVelCostFunction(0, 0, 0, 0, 0, 0),
		oscillationCost: costfn.NewOscillationCostFunction(cfg.OscillationResetDist),
		stateMachine:    NewStateMachine(cfg.SwitchYawError, cfg.SwitchPlanDistance, cfg.SwitchGoalDistance),
		metrics:         metrics,
	}
	return c
}

// Reconfigure atomically replaces the full configuration. It blocks
// until any in-flight cycle completes, and prevents a new cycle from
// starting until it returns.
func (c *Core) Reconfigure(cfg Config) {
	c.cfgMu.Lock()
	defer c.cfgMu.Unlock()
	c.cfg = cfg
	c.obstacleCost.SetLimits(cfg.Limits)
	c.oscillationCost = costfn.NewOscillationCostFunction(cfg.OscillationResetDist)
	c.stateMachine = NewStateMachine(cfg.SwitchYawError, cfg.SwitchPlanDistance, cfg.SwitchGoalDistance)
}

// SetFootprint updates the footprint used for obstacle scoring,
// independent of the reconfigure guard above since it changes
// independently of the weight/limit configuration.
func (c *Core) SetFootprint(fp geom2d.Footprint) {
	c.footprintMu.Lock()
	defer c.footprintMu.Unlock()
	c.footprint = fp
}

// RunCycle executes one control cycle. It returns
// ErrPoseUnavailable, ErrPlanUnavailable, ErrEmptyPlan, or
// ErrNoLegalTrajectory for the corresponding recoverable failures; all
// other errors are unexpected collaborator failures wrapped with
// context.
func (c *Core) RunCycle(ctx context.Context) error {
	c.cfgMu.RLock()
	defer c.cfgMu.RUnlock()
	cfg := c.cfg
	start := time.Now()
	defer func() { c.metrics.observeCycle(time.Since(start)) }()

	// Step 1: read pose, velocity, and reference path.
	pose, err := c.poseSource.GetRobotPose(ctx)
	if err != nil {
		return errors.Wrap(ErrPoseUnavailable, err.Error())
	}
	vel, err := c.odomSource.GetRobotVel(ctx)
	if err != nil {
		return errors.Wrap(ErrPoseUnavailable, err.Error())
	}
	path, err := c.planSource.GetLocalPlan(ctx, pose)
	if err != nil {
		return errors.Wrap(ErrPlanUnavailable, err.Error())
	}
	if len(path) == 0 {
		return ErrEmptyPlan
	}

	// Step 2: geometric error to the path.
	yawError := pose.AngleTo(path[0])
	goalDistance := pose.DistanceTo(path[len(path)-1])

	// Step 3: determine state, logging on transition.
	priorState := c.stateMachine.PrevState()
	state, changed := c.stateMachine.DetermineState(yawError, goalDistance)
	if changed {
		c.logger.Infow("local planner state transition", "from", priorState.String(), "to", state.String())
		c.metrics.recordTransition(priorState, state)
	}

	// Step 4: apply the state's weight table.
	weights, ok := cfg.Weights[state]
	if !ok {
		weights = WeightSet{}
	}
	desiredOrientation := path[0].Theta
	if state == StateArrive {
		desiredOrientation = path[len(path)-1].Theta
	}
	c.alignmentCost.SetDesiredHeading(desiredOrientation)
	c.cmdVelCost.PosX, c.cmdVelCost.NegX = weights.CmdVel.PosX, weights.CmdVel.NegX
	c.cmdVelCost.PosY, c.cmdVelCost.NegY = weights.CmdVel.PosY, weights.CmdVel.NegY
	c.cmdVelCost.PosTheta, c.cmdVelCost.NegTheta = weights.CmdVel.PosTheta, weights.CmdVel.NegTheta

	// Step 5: set plan/goal targets.
	grid := c.layeredCostmap.GetCostmap()
	c.planCost.SetTargets(grid, worldPosesToCells(grid, path))
	c.goalCost.SetTargets(grid, worldPosesToCells(grid, pathFromLookahead(path, cfg.Limits.LookaheadDistance)))

	// Step 6: set the obstacle cost function's footprint.
	c.footprintMu.RLock()
	footprint := c.footprint
	c.footprintMu.RUnlock()
	c.obstacleCost.SetFootprint(footprint)

	// Step 7: compute the dynamic window and run the scored sampler.
	window := trajectory.ComputeDynamicWindow(vel, cfg.Limits, cfg.Sampling.SimPeriod, cfg.Sampling.UseDWA)
	sampler := &ScoredSamplingPlanner{
		Generator: &trajectory.Generator{Config: cfg.Sampling, Limits: cfg.Limits},
		CostFunctions: []ScaledCostFunction{
			{Fn: c.alignmentCost, Scale: weights.AlignScale},
			{Fn: c.planCost, Scale: weights.PlanScale},
			{Fn: c.goalCost, Scale: weights.GoalScale},
			{Fn: c.cmdVelCost, Scale: weights.CmdScale},
			{Fn: c.obstacleCost, Scale: weights.OccScale},
			{Fn: c.oscillationCost, Scale: 1.0},
		},
	}
	best := sampler.FindBestTrajectory(pose, window, nil)

	// Step 8: command the best trajectory, or stop.
	if best.Legal() {
		c.cmdPublisher.PublishCmdVel(best.Vx, best.Vy, best.Vtheta)
		c.oscillationCost.UpdateFlags(pose, geom2d.Velocity2D{Vx: best.Vx, Vy: best.Vy, Vtheta: best.Vtheta})
		c.metrics.recordLegal()
	} else {
		c.cmdPublisher.PublishCmdVel(0, 0, 0)
		c.logger.Warnw("no legal trajectory this cycle, commanding zero velocity")
		c.metrics.recordIllegal()
	}

	// Step 9: publish visualization output.
	if c.pathPublisher != nil {
		c.pathPublisher.PublishLocalPlan(path)
		c.pathPublisher.PublishTrajectoryPolyline(best.Poses)
	}

	if !best.Legal() {
		return ErrNoLegalTrajectory
	}
	return nil
}

// worldPosesToCells projects poses onto grid, dropping any that fall
// outside its bounds.
func worldPosesToCells(grid *costmap.Grid, poses []geom2d.Pose2D) []costmap.Cell {
	cells := make([]costmap.Cell, 0, len(poses))
	for _, p := range poses {
		if mx, my, ok := grid.WorldToMap(p.X(), p.Y()); ok {
			cells = append(cells, costmap.Cell{X: mx, Y: my})
		}
	}
	return cells
}

// pathFromLookahead returns the suffix of path starting at the first
// pose whose cumulative arc length from path[0] is at least lookahead,
// or the final pose alone if the path is shorter than that.
func pathFromLookahead(path []geom2d.Pose2D, lookahead float64) []geom2d.Pose2D {
	if lookahead <= 0 || len(path) == 0 {
		return path
	}
	cum := 0.0
	for i := 1; i < len(path); i++ {
		cum += path[i-1].DistanceTo(path[i])
		if cum >= lookahead {
			return path[i:]
		}
	}
	return path[len(path)-1:]
}
