package costfn

import (
	"testing"

	"go.viam.com/test"

	"go.viam.com/localplanner/costmap"
	"go.viam.com/localplanner/geom2d"
	"go.viam.com/localplanner/limits"
	"go.viam.com/localplanner/trajectory"
)

func straightLineTrajectory(vx float64, poses ...geom2d.Pose2D) trajectory.Trajectory {
	return trajectory.Trajectory{Poses: poses, Vx: vx}
}

func TestObstacleCostFunctionVetoesLethalCenter(t *testing.T) {
	g := costmap.NewGrid(10, 10, 0.1, 0, 0)
	g.SetCost(5, 5, costmap.Lethal)
	o := NewObstacleCostFunction(g, limits.Limits{})
	o.SetFootprint(geom2d.NewRectangularFootprint(0.01, 0.01))

	traj := straightLineTrajectory(0, geom2d.NewPose2D(0.55, 0.55, 0))
	test.That(t, o.Score(traj), test.ShouldEqual, -1.0)
}

func TestObstacleCostFunctionVetoesInscribedCenter(t *testing.T) {
	g := costmap.NewGrid(10, 10, 0.1, 0, 0)
	g.SetCost(5, 5, costmap.Inscribed)
	o := NewObstacleCostFunction(g, limits.Limits{})
	o.SetFootprint(geom2d.NewRectangularFootprint(0.01, 0.01))

	traj := straightLineTrajectory(0, geom2d.NewPose2D(0.55, 0.55, 0))
	test.That(t, o.Score(traj), test.ShouldEqual, -1.0)
}

func TestObstacleCostFunctionVetoesLethalInsideFootprintInterior(t *testing.T) {
	g := costmap.NewGrid(20, 20, 0.1, 0, 0)
	// A footprint centered at (1.0,1.0) spans map cells [5,15]x[5,15];
	// cell (7,7) sits strictly inside that square, on none of its four
	// edges, and is distinct from the center cell (10,10) the pose
	// itself lands on.
	g.SetCost(7, 7, costmap.Lethal)
	o := NewObstacleCostFunction(g, limits.Limits{})
	o.SetFootprint(geom2d.NewRectangularFootprint(0.5, 0.5))

	traj := straightLineTrajectory(0, geom2d.NewPose2D(1.0, 1.0, 0))
	test.That(t, o.Score(traj), test.ShouldEqual, -1.0)
}

func TestObstacleCostFunctionScoresMaxCellCostOtherwise(t *testing.T) {
	g := costmap.NewGrid(10, 10, 0.1, 0, 0)
	g.SetCost(1, 0, 100)
	o := NewObstacleCostFunction(g, limits.Limits{})
	o.SetFootprint(geom2d.NewRectangularFootprint(0.15, 0.05))

	traj := straightLineTrajectory(0, geom2d.NewPose2D(0.05, 0.05, 0))
	score := o.Score(traj)
	test.That(t, score, test.ShouldBeGreaterThanOrEqualTo, 0.0)
}

func TestObstacleCostFunctionClearPathScoresZero(t *testing.T) {
	g := costmap.NewGrid(10, 10, 0.1, 0, 0)
	o := NewObstacleCostFunction(g, limits.Limits{})
	o.SetFootprint(geom2d.NewRectangularFootprint(0.05, 0.05))

	traj := straightLineTrajectory(0, geom2d.NewPose2D(0.05, 0.05, 0))
	test.That(t, o.Score(traj), test.ShouldEqual, 0.0)
}

func TestStoppingDistanceScalesWithSpeedAndClampsAtMaxTransVel(t *testing.T) {
	lim := limits.Limits{AccLimX: 1.0, AccLimY: 1.0, MaxTransVel: 1.0}
	o := NewObstacleCostFunction(nil, lim)

	slow := o.stoppingDistance(trajectory.Trajectory{Vx: 0.5})
	fast := o.stoppingDistance(trajectory.Trajectory{Vx: 1.0})
	overLimit := o.stoppingDistance(trajectory.Trajectory{Vx: 2.0})

	test.That(t, slow, test.ShouldBeLessThan, fast)
	test.That(t, overLimit, test.ShouldEqual, fast)
}

func TestStoppingDistanceZeroWithoutAccelLimits(t *testing.T) {
	o := NewObstacleCostFunction(nil, limits.Limits{})
	test.That(t, o.stoppingDistance(trajectory.Trajectory{Vx: 1.0}), test.ShouldEqual, 0.0)
}
