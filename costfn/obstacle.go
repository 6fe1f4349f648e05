package costfn

import (
	"math"

	"go.viam.com/localplanner/costmap"
	"go.viam.com/localplanner/geom2d"
	"go.viam.com/localplanner/limits"
	"go.viam.com/localplanner/trajectory"
)

// ObstacleCostFunction vetoes trajectories that collide with LETHAL
// cells, or whose footprint center passes through an INSCRIBED cell
// (collision regardless of orientation), and otherwise scores by the
// maximum ordinary cell cost the footprint sweeps through.
type ObstacleCostFunction struct {
	grid      *costmap.Grid
	footprint geom2d.Footprint
	lim       limits.Limits
}

// NewObstacleCostFunction constructs an obstacle cost function reading
// from grid under acceleration/velocity limits lim.
func NewObstacleCostFunction(grid *costmap.Grid, lim limits.Limits) *ObstacleCostFunction {
	return &ObstacleCostFunction{grid: grid, lim: lim}
}

// SetFootprint sets the robot footprint for this cycle.
func (o *ObstacleCostFunction) SetFootprint(fp geom2d.Footprint) {
	o.footprint = fp
}

// SetLimits updates the acceleration/velocity limits used to scale the
// stopping-distance inflation, for use after a reconfigure.
func (o *ObstacleCostFunction) SetLimits(lim limits.Limits) {
	o.lim = lim
}

// Score implements CostFunction.
func (o *ObstacleCostFunction) Score(traj trajectory.Trajectory) float64 {
	maxCost := 0.0
	for _, pose := range traj.Poses {
		cx, cy, ok := o.grid.WorldToMap(pose.X(), pose.Y())
		if !ok {
			continue
		}
		center := o.grid.GetCost(cx, cy)
		if center == costmap.Lethal || center == costmap.Inscribed {
			return -1
		}

		poly := o.footprintMapCells(pose, traj)
		for _, c := range poly {
			v := o.grid.GetCost(c.X, c.Y)
			if v == costmap.Lethal {
				return -1
			}
			if v != costmap.NoInfo && float64(v) > maxCost {
				maxCost = float64(v)
			}
		}
	}
	return maxCost
}

// footprintMapCells rasterizes the footprint's full interior at pose
// (edges plus scanline fill, so a lethal cell entirely inside the
// footprint is caught even when it touches no edge) and, for a moving
// trajectory, a second filled copy shifted forward along the pose's
// heading by the stopping distance implied by the acceleration limits
// and max_trans_vel, so higher-speed trajectories demand more
// clearance. The two copies are filled separately: when the shift is
// longer than the footprint, the cells between them are not included.
func (o *ObstacleCostFunction) footprintMapCells(pose geom2d.Pose2D, traj trajectory.Trajectory) []costmap.Cell {
	verts := o.footprint.TransformedAt(pose)
	if len(verts) == 0 {
		x, y, ok := o.grid.WorldToMap(pose.X(), pose.Y())
		if !ok {
			return nil
		}
		return []costmap.Cell{{X: x, Y: y}}
	}

	inflate := o.stoppingDistance(traj)
	if inflate > 0 {
		sinTh, cosTh := math.Sincos(pose.Theta)
		dx, dy := cosTh*inflate, sinTh*inflate
		inflated := make([]struct{ X, Y float64 }, len(verts))
		for i, v := range verts {
			inflated[i] = struct{ X, Y float64 }{v.X + dx, v.Y + dy}
		}
		cells := make([]costmap.Cell, 0, len(verts))
		for _, v := range verts {
			if x, y, ok := o.grid.WorldToMap(v.X, v.Y); ok {
				cells = append(cells, costmap.Cell{X: x, Y: y})
			}
		}
		shifted := make([]costmap.Cell, 0, len(inflated))
		for _, v := range inflated {
			if x, y, ok := o.grid.WorldToMap(v.X, v.Y); ok {
				shifted = append(shifted, costmap.Cell{X: x, Y: y})
			}
		}
		return append(costmap.FillPolygon(cells), costmap.FillPolygon(shifted)...)
	}

	cells := make([]costmap.Cell, 0, len(verts))
	for _, v := range verts {
		if x, y, ok := o.grid.WorldToMap(v.X, v.Y); ok {
			cells = append(cells, costmap.Cell{X: x, Y: y})
		}
	}
	return costmap.FillPolygon(cells)
}

// stoppingDistance returns v^2/(2*a) for the trajectory's commanded
// translational speed, using the larger of AccLimX/AccLimY as the
// available deceleration, clamped at MaxTransVel so a trajectory never
// demands more inflation than the robot's fastest reachable stop
// requires.
func (o *ObstacleCostFunction) stoppingDistance(traj trajectory.Trajectory) float64 {
	speed := math.Hypot(traj.Vx, traj.Vy)
	if speed <= 0 {
		return 0
	}
	accel := math.Max(o.lim.AccLimX, o.lim.AccLimY)
	if accel <= 0 {
		return 0
	}
	d := speed * speed / (2 * accel)
	if o.lim.MaxTransVel > 0 {
		maxD := o.lim.MaxTransVel * o.lim.MaxTransVel / (2 * accel)
		if d > maxD {
			d = maxD
		}
	}
	return d
}
