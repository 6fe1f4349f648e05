package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/edaniels/golog"

	"go.viam.com/localplanner/costmap"
	"go.viam.com/localplanner/geom2d"
	"go.viam.com/localplanner/limits"
	"go.viam.com/localplanner/planner"
	"go.viam.com/localplanner/staticlayer"
	"go.viam.com/localplanner/trajectory"
)

// scenario is the on-disk fixture format localplanner-sim loads: an
// occupancy snapshot, a reference path, a starting pose/velocity, and
// the full planner configuration. This is the harness's stand-in for
// the pub/sub middleware, parameter server, and outer node lifecycle
// that surround the planner core in a real deployment.
type scenario struct {
	Snapshot    costmap.Snapshot   `json:"snapshot"`
	StaticLayer staticlayer.Config `json:"static_layer"`
	Path        []pose2D           `json:"path"`
	Start       struct {
		Pose pose2D `json:"pose"`
		Vel  vel2D  `json:"vel"`
	} `json:"start"`
	Footprint struct {
		HalfLength float64 `json:"half_length"`
		HalfWidth  float64 `json:"half_width"`
	} `json:"footprint"`
	Limits             limits.Limits        `json:"limits"`
	Weights            map[string]weightSet `json:"weights"`
	SwitchYawError     float64              `json:"switch_yaw_error"`
	SwitchPlanDistance float64              `json:"switch_plan_distance"`
	SwitchGoalDistance float64              `json:"switch_goal_distance"`
	Sampling           trajectory.Config    `json:"sampling"`
	Cycles             int                  `json:"cycles"`
}

type pose2D struct {
	X, Y, Theta float64
}

func (p pose2D) toGeom() geom2d.Pose2D {
	return geom2d.NewPose2D(p.X, p.Y, p.Theta)
}

type vel2D struct {
	Vx, Vy, Vtheta float64
}

type weightSet struct {
	AlignScale float64 `json:"align_scale"`
	PlanScale  float64 `json:"plan_scale"`
	GoalScale  float64 `json:"goal_scale"`
	CmdScale   float64 `json:"cmd_scale"`
	OccScale   float64 `json:"occ_scale"`
	CmdVel     struct {
		PosX, NegX float64
		PosY, NegY float64
		PosTheta   float64 `json:"pos_theta"`
		NegTheta   float64 `json:"neg_theta"`
	} `json:"cmd_vel"`
}

func loadScenario(path string) (*scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var s scenario
	if err := json.NewDecoder(f).Decode(&s); err != nil {
		return nil, fmt.Errorf("decoding scenario %s: %w", path, err)
	}
	return &s, nil
}

func stateFromName(name string) planner.State {
	switch name {
	case "align":
		return planner.StateAlign
	case "arrive":
		return planner.StateArrive
	default:
		return planner.StateDefault
	}
}

func (s *scenario) toConfig() planner.Config {
	weights := make(map[planner.State]planner.WeightSet, len(s.Weights))
	for name, w := range s.Weights {
		weights[stateFromName(name)] = planner.WeightSet{
			AlignScale: w.AlignScale,
			PlanScale:  w.PlanScale,
			GoalScale:  w.GoalScale,
			CmdScale:   w.CmdScale,
			OccScale:   w.OccScale,
			CmdVel: planner.CmdVelCoeffs{
				PosX: w.CmdVel.PosX, NegX: w.CmdVel.NegX,
				PosY: w.CmdVel.PosY, NegY: w.CmdVel.NegY,
				PosTheta: w.CmdVel.PosTheta, NegTheta: w.CmdVel.NegTheta,
			},
		}
	}
	return planner.Config{
		Limits:             s.Limits,
		Weights:            weights,
		SwitchYawError:     s.SwitchYawError,
		SwitchPlanDistance: s.SwitchPlanDistance,
		SwitchGoalDistance: s.SwitchGoalDistance,
		Sampling:           s.Sampling,
	}
}

// simLayered is a non-rolling LayeredCostmap test double good enough
// for the sim harness: one master grid, resized in place by ResizeMap.
type simLayered struct {
	master *costmap.Grid
}

func (l *simLayered) IsRolling() bool    { return false }
func (l *simLayered) IsSizeLocked() bool { return true }
func (l *simLayered) GetCostmap() *costmap.Grid {
	return l.master
}
func (l *simLayered) ResizeMap(sizeX, sizeY int, resolution, originX, originY float64, sizeLocked bool) {
	l.master.Resize(sizeX, sizeY, resolution, originX, originY)
}

// simRobot is an in-memory PoseSource/OdomSource/GlobalPlanSource/
// CmdVelPublisher that stands in for the odometry estimator and
// pub/sub transport: RunCycle's commanded velocity is fed straight
// back into unicycle kinematics for the next cycle.
type simRobot struct {
	pose geom2d.Pose2D
	vel  geom2d.Velocity2D
	path []geom2d.Pose2D
	dt   float64
}

func (r *simRobot) GetRobotPose(ctx context.Context) (geom2d.Pose2D, error) {
	return r.pose, nil
}

func (r *simRobot) GetRobotVel(ctx context.Context) (geom2d.Velocity2D, error) {
	return r.vel, nil
}

func (r *simRobot) GetLocalPlan(ctx context.Context, robotPose geom2d.Pose2D) ([]geom2d.Pose2D, error) {
	return r.path, nil
}

func (r *simRobot) PublishCmdVel(vx, vy, vtheta float64) {
	r.vel = geom2d.Velocity2D{Vx: vx, Vy: vy, Vtheta: vtheta}
	r.pose = geom2d.Integrate(r.pose, r.vel, r.dt)
}

// oneShotSnapshotSource is a staticlayer.SnapshotSource that hands back
// a fixed snapshot on its first poll, the sim harness's stand-in for a
// map topic that has already latched its one message.
type oneShotSnapshotSource struct {
	snap costmap.Snapshot
	sent bool
}

func (s *oneShotSnapshotSource) TryGetSnapshot(ctx context.Context) (costmap.Snapshot, bool, error) {
	if s.sent {
		return costmap.Snapshot{}, false, nil
	}
	s.sent = true
	return s.snap, true, nil
}

// runScenario runs cycles control cycles of core against robot,
// printing the robot's pose, the commanded velocity, and the cycle's
// error after each one, and stops early once the goal is reached.
func runScenario(logger golog.Logger, s *scenario, cycles int) error {
	master := costmap.NewGrid(s.Snapshot.Width, s.Snapshot.Height, s.Snapshot.ResolutionM, s.Snapshot.OriginX, s.Snapshot.OriginY)
	layered := &simLayered{master: master}

	layerCfg := s.StaticLayer
	layerCfg.Enabled = true // the harness always exercises the static layer's stamping path
	layer, err := staticlayer.NewLayer(layerCfg, logger)
	if err != nil {
		return fmt.Errorf("static layer config: %w", err)
	}
	source := &oneShotSnapshotSource{snap: s.Snapshot}
	if err := layer.WaitForFirstSnapshot(context.Background(), source, layered); err != nil {
		return fmt.Errorf("loading static snapshot: %w", err)
	}
	layer.UpdateBounds(s.Start.Pose.toGeom(), 0, 0, 0, 0, true)
	if err := layer.UpdateCosts(master, layered, 0, 0, master.SizeX, master.SizeY); err != nil {
		return fmt.Errorf("stamping static layer: %w", err)
	}

	path := make([]geom2d.Pose2D, len(s.Path))
	for i, p := range s.Path {
		path[i] = p.toGeom()
	}

	robot := &simRobot{
		pose: s.Start.Pose.toGeom(),
		vel:  geom2d.Velocity2D{Vx: s.Start.Vel.Vx, Vy: s.Start.Vel.Vy, Vtheta: s.Start.Vel.Vtheta},
		path: path,
		dt:   s.Sampling.SimPeriod,
	}
	if robot.dt <= 0 {
		robot.dt = 0.1
	}

	footprint := geom2d.NewRectangularFootprint(s.Footprint.HalfLength, s.Footprint.HalfWidth)
	core := planner.NewCore(logger, s.toConfig(), robot, robot, robot, layered, robot, nil, footprint, nil)

	if cycles <= 0 {
		cycles = s.Cycles
	}
	if cycles <= 0 {
		cycles = 1
	}

	for i := 0; i < cycles; i++ {
		err := core.RunCycle(context.Background())
		fmt.Printf("cycle %d: pose=(%.3f,%.3f,%.3f) cmd_vel=(%.3f,%.3f,%.3f) err=%v\n",
			i, robot.pose.X(), robot.pose.Y(), robot.pose.Theta,
			robot.vel.Vx, robot.vel.Vy, robot.vel.Vtheta, err)
		if len(path) > 0 && planner.GoalReached(robot.pose, path[len(path)-1], robot.vel, s.Limits) {
			fmt.Printf("goal reached after %d cycles\n", i+1)
			break
		}
	}
	return nil
}
