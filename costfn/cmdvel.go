package costfn

import "go.viam.com/localplanner/trajectory"

// CmdVelCostFunction shapes trajectory selection toward a preferred
// direction of travel using six independent, signed coefficients — one
// per sign of each velocity axis. A positive
// coefficient makes that direction more expensive; a state that wants
// to discourage reversing sets a large PosX/NegX asymmetry rather than
// vetoing reverse motion outright.
type CmdVelCostFunction struct {
	PosX, NegX float64
	PosY, NegY float64
	PosTheta   float64
	NegTheta   float64
}

// NewCmdVelCostFunction constructs a CmdVelCostFunction with the given
// six coefficients.
func NewCmdVelCostFunction(posX, negX, posY, negY, posTheta, negTheta float64) *CmdVelCostFunction {
	return &CmdVelCostFunction{
		PosX: posX, NegX: negX,
		PosY: posY, NegY: negY,
		PosTheta: posTheta, NegTheta: negTheta,
	}
}

// Score implements CostFunction. It never vetoes.
func (c *CmdVelCostFunction) Score(traj trajectory.Trajectory) float64 {
	return signedTerm(traj.Vx, c.PosX, c.NegX) +
		signedTerm(traj.Vy, c.PosY, c.NegY) +
		signedTerm(traj.Vtheta, c.PosTheta, c.NegTheta)
}

func signedTerm(v, posCoeff, negCoeff float64) float64 {
	if v >= 0 {
		return posCoeff * v
	}
	return negCoeff * -v
}
