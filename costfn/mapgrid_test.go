package costfn

import (
	"testing"

	"go.viam.com/test"

	"go.viam.com/localplanner/costmap"
	"go.viam.com/localplanner/geom2d"
	"go.viam.com/localplanner/trajectory"
)

func TestMapGridCostFunctionDistanceIncreasesAwayFromTarget(t *testing.T) {
	g := costmap.NewGrid(10, 10, 1.0, 0, 0)
	m := NewMapGridCostFunction(AggregationLast)
	m.SetTargets(g, []costmap.Cell{{X: 0, Y: 0}})

	near := straightLineTrajectory(0, geom2d.NewPose2D(1.5, 0.5, 0))
	far := straightLineTrajectory(0, geom2d.NewPose2D(5.5, 0.5, 0))

	test.That(t, m.Score(near), test.ShouldBeLessThan, m.Score(far))
}

func TestMapGridCostFunctionWallBlocksWavefront(t *testing.T) {
	g := costmap.NewGrid(5, 5, 1.0, 0, 0)
	for y := 0; y < 5; y++ {
		g.SetCost(2, y, costmap.Lethal)
	}
	m := NewMapGridCostFunction(AggregationLast)
	m.SetTargets(g, []costmap.Cell{{X: 0, Y: 0}})

	blocked := straightLineTrajectory(0, geom2d.NewPose2D(4.5, 4.5, 0))
	test.That(t, m.Score(blocked), test.ShouldEqual, -1.0)
}

func TestMapGridCostFunctionSumAggregatesWholePath(t *testing.T) {
	g := costmap.NewGrid(10, 10, 1.0, 0, 0)
	m := NewMapGridCostFunction(AggregationSum)
	m.SetTargets(g, []costmap.Cell{{X: 0, Y: 0}})

	traj := trajectory.Trajectory{Poses: []geom2d.Pose2D{
		geom2d.NewPose2D(0.5, 0.5, 0),
		geom2d.NewPose2D(1.5, 0.5, 0),
		geom2d.NewPose2D(2.5, 0.5, 0),
	}}
	single := trajectory.Trajectory{Poses: traj.Poses[:1]}
	test.That(t, m.Score(traj), test.ShouldBeGreaterThan, m.Score(single))
}

func TestMapGridCostFunctionNoTargetsLeavesEverythingUnreached(t *testing.T) {
	g := costmap.NewGrid(5, 5, 1.0, 0, 0)
	m := NewMapGridCostFunction(AggregationLast)
	m.SetTargets(g, nil)

	traj := straightLineTrajectory(0, geom2d.NewPose2D(2.5, 2.5, 0))
	test.That(t, m.Score(traj), test.ShouldEqual, -1.0)
}
