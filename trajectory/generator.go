package trajectory

import (
	"math"

	"go.viam.com/localplanner/geom2d"
	"go.viam.com/localplanner/limits"
)

const epsSpeed = 1e-3

// Config is the trajectory generator's per-cycle sampling
// configuration.
type Config struct {
	NX, NY, NTh                           int
	SimTime                               float64
	SimPeriod                             float64
	SimGranularity, AngularSimGranularity float64
	UseDWA                                bool
}

// Generator enumerates velocity samples within the dynamic window and
// forward-simulates each into a Trajectory.
type Generator struct {
	Config Config
	Limits limits.Limits
}

// NumSamples returns the total number of samples in the grid.
func (g *Generator) NumSamples() int {
	return g.Config.NX * g.Config.NY * g.Config.NTh
}

// indexToGrid decomposes a flat sample index into its (ix, iy, ith)
// grid coordinates, in a fixed, deterministic order.
func (g *Generator) indexToGrid(index int) (ix, iy, ith int) {
	nx, ny := g.Config.NX, g.Config.NY
	ix = index % nx
	rest := index / nx
	iy = rest % ny
	ith = rest / ny
	return
}

// Sample returns the velocity command for the given sample index over
// window w, deterministic and independent of prior calls.
func (g *Generator) Sample(index int, w Window) VelocitySample {
	ix, iy, ith := g.indexToGrid(index)
	return VelocitySample{
		Vx:     axisValue(ix, g.Config.NX, w.MinVx, w.MaxVx),
		Vy:     axisValue(iy, g.Config.NY, w.MinVy, w.MaxVy),
		Vtheta: axisValue(ith, g.Config.NTh, w.MinVtheta, w.MaxVtheta),
	}
}

// timeStep returns dt = max(simGranularity/max(|v|,eps),
// angularSimGranularity/max(|omega|,eps)).
func (g *Generator) timeStep(v VelocitySample) float64 {
	speed := math.Hypot(v.Vx, v.Vy)
	dtLinear := g.Config.SimGranularity / math.Max(speed, epsSpeed)
	dtAngular := g.Config.AngularSimGranularity / math.Max(math.Abs(v.Vtheta), epsSpeed)
	return math.Max(dtLinear, dtAngular)
}

// Generate forward-simulates the sample at index over window w,
// starting from currentPose, into a Trajectory. Samples that violate
// the translational speed limits are returned as an immediately
// illegal (Cost < 0), single-pose trajectory rather than being rolled
// out, since the max_trans_vel disk is itself part of the dynamic
// window's reachability constraint, not a pluggable cost function.
func (g *Generator) Generate(index int, currentPose geom2d.Pose2D, w Window) Trajectory {
	v := g.Sample(index, w)
	if !withinTransDisk(v.Vx, v.Vy, g.Limits) {
		return Trajectory{Poses: []geom2d.Pose2D{currentPose}, Vx: v.Vx, Vy: v.Vy, Vtheta: v.Vtheta, Cost: -1}
	}

	dt := g.timeStep(v)
	n := int(math.Ceil(g.Config.SimTime / dt))
	if n < 1 {
		n = 1
	}

	poses := make([]geom2d.Pose2D, n)
	pose := currentPose
	poses[0] = pose
	for i := 1; i < n; i++ {
		pose = geom2d.Integrate(pose, geom2d.Velocity2D{Vx: v.Vx, Vy: v.Vy, Vtheta: v.Vtheta}, dt)
		poses[i] = pose
	}

	return Trajectory{Poses: poses, Vx: v.Vx, Vy: v.Vy, Vtheta: v.Vtheta, DT: dt, Cost: 0}
}
