package planner

import (
	"go.viam.com/localplanner/costfn"
	"go.viam.com/localplanner/geom2d"
	"go.viam.com/localplanner/trajectory"
)

// ScaledCostFunction pairs a cost function with the per-cycle scale
// its owning state assigns it.
type ScaledCostFunction struct {
	Fn    costfn.CostFunction
	Scale float64
}

// ScoredSamplingPlanner iterates a trajectory generator's samples,
// scores each against a set of scaled cost functions, and returns the
// best legal trajectory.
type ScoredSamplingPlanner struct {
	Generator     *trajectory.Generator
	CostFunctions []ScaledCostFunction
}

// FindBestTrajectory runs every sample through the generator and cost
// functions, returning the lowest-cost legal trajectory (ties broken by
// earlier sample index) or a Cost=-1 sentinel if none is legal. When
// allExplored is non-nil, every evaluated trajectory — including
// vetoed ones — is appended in evaluation order, for visualization
// only.
func (p *ScoredSamplingPlanner) FindBestTrajectory(
	currentPose geom2d.Pose2D,
	w trajectory.Window,
	allExplored *[]trajectory.Trajectory,
) trajectory.Trajectory {
	best := trajectory.Trajectory{Cost: -1}
	haveBest := false

	n := p.Generator.NumSamples()
	for i := 0; i < n; i++ {
		traj := p.Generator.Generate(i, currentPose, w)
		if traj.Legal() {
			traj.Cost = p.score(traj)
		}

		if allExplored != nil {
			*allExplored = append(*allExplored, traj)
		}

		if !traj.Legal() {
			continue
		}
		if !haveBest || traj.Cost < best.Cost {
			best = traj
			haveBest = true
		}
	}

	if !haveBest {
		return trajectory.Trajectory{Cost: -1}
	}
	return best
}

// score applies every active cost function to traj, returning a
// negative composite if any function vetoes.
func (p *ScoredSamplingPlanner) score(traj trajectory.Trajectory) float64 {
	composite := 0.0
	for _, cf := range p.CostFunctions {
		s := cf.Fn.Score(traj)
		if s < 0 {
			return -1
		}
		composite += cf.Scale * s
	}
	return composite
}
