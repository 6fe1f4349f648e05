package planner

import (
	"context"
	"errors"
	"testing"

	"github.com/edaniels/golog"
	"go.viam.com/test"

	"go.viam.com/localplanner/costmap"
	"go.viam.com/localplanner/geom2d"
	"go.viam.com/localplanner/limits"
	"go.viam.com/localplanner/trajectory"
)

type fakeLayered struct {
	master *costmap.Grid
}

func (f *fakeLayered) IsRolling() bool           { return false }
func (f *fakeLayered) IsSizeLocked() bool        { return true }
func (f *fakeLayered) GetCostmap() *costmap.Grid { return f.master }
func (f *fakeLayered) ResizeMap(sizeX, sizeY int, resolution, originX, originY float64, sizeLocked bool) {
	f.master.Resize(sizeX, sizeY, resolution, originX, originY)
}

type fakePoseSource struct {
	pose geom2d.Pose2D
	err  error
}

func (f *fakePoseSource) GetRobotPose(ctx context.Context) (geom2d.Pose2D, error) {
	return f.pose, f.err
}

type fakeOdomSource struct {
	vel geom2d.Velocity2D
	err error
}

func (f *fakeOdomSource) GetRobotVel(ctx context.Context) (geom2d.Velocity2D, error) {
	return f.vel, f.err
}

type fakePlanSource struct {
	path []geom2d.Pose2D
	err  error
}

func (f *fakePlanSource) GetLocalPlan(ctx context.Context, pose geom2d.Pose2D) ([]geom2d.Pose2D, error) {
	return f.path, f.err
}

type fakeCmdPublisher struct {
	lastVx, lastVy, lastVtheta float64
	calls                      int
}

func (f *fakeCmdPublisher) PublishCmdVel(vx, vy, vtheta float64) {
	f.lastVx, f.lastVy, f.lastVtheta = vx, vy, vtheta
	f.calls++
}

type fakePathPublisher struct {
	published bool
}

func (f *fakePathPublisher) PublishLocalPlan(path []geom2d.Pose2D)           { f.published = true }
func (f *fakePathPublisher) PublishTrajectoryPolyline(poses []geom2d.Pose2D) { f.published = true }

func baseCoreConfig() Config {
	return Config{
		Limits: limits.Limits{
			MaxTransVel: 1.0, MinTransVel: 0,
			MaxVelX: 1.0, MinVelX: -1.0,
			MaxVelY: 0, MinVelY: 0,
			MaxRotVel: 1.0, MinRotVel: -1.0,
			AccLimX: 1.0, AccLimY: 1.0, AccLimTheta: 1.0,
			LookaheadDistance: 1.0,
		},
		Weights: map[State]WeightSet{
			StateDefault: {PlanScale: 1.0, GoalScale: 1.0, OccScale: 1.0},
			StateAlign:   {AlignScale: 1.0},
			StateArrive:  {AlignScale: 1.0, GoalScale: 1.0},
		},
		SwitchYawError:     1.0,
		SwitchGoalDistance: 0.2,
		Sampling: trajectory.Config{
			NX: 3, NY: 1, NTh: 3,
			SimTime: 1.0, SimGranularity: 0.5, AngularSimGranularity: 1.0,
			UseDWA: true,
		},
	}
}

func TestRunCycleCommandsBestTrajectory(t *testing.T) {
	logger := golog.NewTestLogger(t)
	master := costmap.NewGrid(50, 50, 0.1, -2.5, -2.5)
	layered := &fakeLayered{master: master}

	pose := fakePoseSource{pose: geom2d.NewPose2D(0, 0, 0)}
	odom := fakeOdomSource{}
	plan := fakePlanSource{path: []geom2d.Pose2D{
		geom2d.NewPose2D(1, 0, 0),
		geom2d.NewPose2D(2, 0, 0),
	}}
	cmd := &fakeCmdPublisher{}
	pathPub := &fakePathPublisher{}

	core := NewCore(logger, baseCoreConfig(), &pose, &odom, &plan, layered, cmd, pathPub,
		geom2d.NewRectangularFootprint(0.1, 0.1), nil)

	err := core.RunCycle(context.Background())
	test.That(t, err, test.ShouldBeNil)
	test.That(t, cmd.calls, test.ShouldEqual, 1)
	test.That(t, pathPub.published, test.ShouldBeTrue)
}

func TestRunCyclePoseUnavailable(t *testing.T) {
	logger := golog.NewTestLogger(t)
	master := costmap.NewGrid(10, 10, 0.1, 0, 0)
	layered := &fakeLayered{master: master}

	pose := fakePoseSource{err: errors.New("no pose")}
	odom := fakeOdomSource{}
	plan := fakePlanSource{path: []geom2d.Pose2D{geom2d.NewPose2D(1, 0, 0)}}
	cmd := &fakeCmdPublisher{}

	core := NewCore(logger, baseCoreConfig(), &pose, &odom, &plan, layered, cmd, nil,
		geom2d.NewRectangularFootprint(0.1, 0.1), nil)

	err := core.RunCycle(context.Background())
	test.That(t, errors.Is(err, ErrPoseUnavailable), test.ShouldBeTrue)
	test.That(t, cmd.calls, test.ShouldEqual, 0)
}

func TestRunCycleEmptyPlan(t *testing.T) {
	logger := golog.NewTestLogger(t)
	master := costmap.NewGrid(10, 10, 0.1, 0, 0)
	layered := &fakeLayered{master: master}

	pose := fakePoseSource{pose: geom2d.NewPose2D(0, 0, 0)}
	odom := fakeOdomSource{}
	plan := fakePlanSource{path: nil}
	cmd := &fakeCmdPublisher{}

	core := NewCore(logger, baseCoreConfig(), &pose, &odom, &plan, layered, cmd, nil,
		geom2d.NewRectangularFootprint(0.1, 0.1), nil)

	err := core.RunCycle(context.Background())
	test.That(t, errors.Is(err, ErrEmptyPlan), test.ShouldBeTrue)
}

// A lethal wall directly ahead vetoes every reachable forward sample.
func TestRunCycleNoLegalTrajectoryStopsRobot(t *testing.T) {
	logger := golog.NewTestLogger(t)
	master := costmap.NewGrid(50, 50, 0.1, 0, -2.5)
	for y := 0; y < 50; y++ {
		master.SetCost(2, y, costmap.Lethal)
	}
	layered := &fakeLayered{master: master}

	pose := fakePoseSource{pose: geom2d.NewPose2D(0, 0, 0)}
	odom := fakeOdomSource{}
	plan := fakePlanSource{path: []geom2d.Pose2D{
		geom2d.NewPose2D(1.0, 0, 0),
	}}
	cmd := &fakeCmdPublisher{}

	cfg := baseCoreConfig()
	cfg.Limits.MinVelX = 0.3
	cfg.Limits.MaxVelX = 0.6
	cfg.Sampling.NX = 1
	cfg.Sampling.NY = 1
	cfg.Sampling.NTh = 1
	cfg.Sampling.SimTime = 1.0
	cfg.Sampling.SimGranularity = 0.05
	cfg.Sampling.AngularSimGranularity = 1.0

	core := NewCore(logger, cfg, &pose, &odom, &plan, layered, cmd, nil,
		geom2d.NewRectangularFootprint(0.01, 0.01), nil)

	err := core.RunCycle(context.Background())
	test.That(t, errors.Is(err, ErrNoLegalTrajectory), test.ShouldBeTrue)
	test.That(t, cmd.lastVx, test.ShouldEqual, 0.0)
	test.That(t, cmd.lastVy, test.ShouldEqual, 0.0)
	test.That(t, cmd.lastVtheta, test.ShouldEqual, 0.0)
}

func TestReconfigureAppliesNewLimits(t *testing.T) {
	logger := golog.NewTestLogger(t)
	master := costmap.NewGrid(10, 10, 0.1, 0, 0)
	layered := &fakeLayered{master: master}

	pose := fakePoseSource{pose: geom2d.NewPose2D(0, 0, 0)}
	odom := fakeOdomSource{}
	plan := fakePlanSource{path: []geom2d.Pose2D{geom2d.NewPose2D(1, 0, 0)}}
	cmd := &fakeCmdPublisher{}

	core := NewCore(logger, baseCoreConfig(), &pose, &odom, &plan, layered, cmd, nil,
		geom2d.NewRectangularFootprint(0.1, 0.1), nil)

	newCfg := baseCoreConfig()
	newCfg.Limits.MaxVelX = 5.0
	core.Reconfigure(newCfg)
	test.That(t, core.cfg.Limits.MaxVelX, test.ShouldEqual, 5.0)
}
