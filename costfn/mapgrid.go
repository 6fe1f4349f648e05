package costfn

import (
	"go.viam.com/localplanner/costmap"
	"go.viam.com/localplanner/geom2d"
	"go.viam.com/localplanner/trajectory"
)

// Aggregation selects how MapGridCostFunction folds a trajectory's
// per-pose distance samples into a single score: the plan-following
// mode sums the whole path's samples, the goal-seeking mode takes only
// the last (lookahead-truncated) pose's.
type Aggregation int

// Aggregation modes.
const (
	AggregationSum Aggregation = iota
	AggregationLast
)

// unreached marks a cell the BFS wavefront never touched, i.e. it has
// no path back to any target cell through free space.
const unreached = -1.0

// MapGridCostFunction scores a trajectory by a BFS wavefront distance
// field seeded from a set of target cells (the global plan for
// plan_costs, or the lookahead goal for goal_costs), grounded on the
// same breadth-first grid propagation navigation/, motionplan/ style
// packages use for reachability, generalized here to a single-source
// multi-target distance transform over the occupancy grid rather than
// a path search.
type MapGridCostFunction struct {
	grid        *costmap.Grid
	distances   []float64
	aggregation Aggregation
}

// NewMapGridCostFunction constructs a MapGridCostFunction using the
// given aggregation mode.
func NewMapGridCostFunction(aggregation Aggregation) *MapGridCostFunction {
	return &MapGridCostFunction{aggregation: aggregation}
}

// SetTargets recomputes the wavefront distance field over grid, seeded
// from targets. Cells occupied by LETHAL or INSCRIBED are never
// expanded through, matching the costmap's role as the propagation
// medium.
func (m *MapGridCostFunction) SetTargets(grid *costmap.Grid, targets []costmap.Cell) {
	m.grid = grid
	m.distances = bfsWavefront(grid, targets)
}

// Score implements CostFunction, aggregating the distance field sampled
// along the trajectory's poses.
func (m *MapGridCostFunction) Score(traj trajectory.Trajectory) float64 {
	if m.grid == nil || len(traj.Poses) == 0 {
		return 0
	}

	switch m.aggregation {
	case AggregationLast:
		return m.sampleAt(traj.Poses[len(traj.Poses)-1])
	default:
		total := 0.0
		for _, pose := range traj.Poses {
			d := m.sampleAt(pose)
			if d < 0 {
				return -1
			}
			total += d
		}
		return total
	}
}

// sampleAt returns the wavefront distance at pose's cell, or -1 if the
// pose falls outside the grid or the cell was never reached by the
// wavefront (unreachable from every target).
func (m *MapGridCostFunction) sampleAt(pose geom2d.Pose2D) float64 {
	mx, my, ok := m.grid.WorldToMap(pose.X(), pose.Y())
	if !ok {
		return -1
	}
	idx := my*m.grid.SizeX + mx
	if idx < 0 || idx >= len(m.distances) {
		return -1
	}
	d := m.distances[idx]
	if d == unreached {
		return -1
	}
	return d
}

// bfsWavefront runs a multi-source breadth-first search from targets
// across grid, returning a distance-in-cells field the same length as
// grid.Cells. LETHAL and INSCRIBED cells are treated as walls the
// wavefront cannot cross.
func bfsWavefront(grid *costmap.Grid, targets []costmap.Cell) []float64 {
	n := grid.SizeX * grid.SizeY
	dist := make([]float64, n)
	for i := range dist {
		dist[i] = unreached
	}
	if len(targets) == 0 {
		return dist
	}

	queue := make([]costmap.Cell, 0, len(targets))
	for _, t := range targets {
		if !grid.InBounds(t.X, t.Y) {
			continue
		}
		idx := t.Y*grid.SizeX + t.X
		if dist[idx] != unreached {
			continue
		}
		v := grid.GetCost(t.X, t.Y)
		if v == costmap.Lethal || v == costmap.Inscribed {
			continue
		}
		dist[idx] = 0
		queue = append(queue, t)
	}

	dirs := [4][2]int{
		{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	}
	for head := 0; head < len(queue); head++ {
		c := queue[head]
		curIdx := c.Y*grid.SizeX + c.X
		for _, d := range dirs {
			nx, ny := c.X+d[0], c.Y+d[1]
			if !grid.InBounds(nx, ny) {
				continue
			}
			nIdx := ny*grid.SizeX + nx
			if dist[nIdx] != unreached {
				continue
			}
			v := grid.GetCost(nx, ny)
			if v == costmap.Lethal || v == costmap.Inscribed {
				continue
			}
			dist[nIdx] = dist[curIdx] + 1
			queue = append(queue, costmap.Cell{X: nx, Y: ny})
		}
	}
	return dist
}
