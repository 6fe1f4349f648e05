package planner

import "math"

// State is one row of the local planner's cost-function weight table.
type State int

// The three controller states.
const (
	StateDefault State = iota
	StateAlign
	StateArrive
)

// String names a state for logging.
func (s State) String() string {
	switch s {
	case StateAlign:
		return "align"
	case StateArrive:
		return "arrive"
	default:
		return "default"
	}
}

// CmdVelCoeffs is the six signed coefficients a state assigns to
// CmdVelCostFunction.
type CmdVelCoeffs struct {
	PosX, NegX float64
	PosY, NegY float64
	PosTheta   float64
	NegTheta   float64
}

// WeightSet is one state's row of the weight table: a scale per active
// cost function, plus the cmd-vel coefficients.
type WeightSet struct {
	AlignScale float64
	PlanScale  float64
	GoalScale  float64
	CmdScale   float64
	OccScale   float64
	CmdVel     CmdVelCoeffs
}

// StateMachine holds the previous state as an explicit field rather
// than a package-level variable, so multiple planner instances never
// share hysteresis state.
type StateMachine struct {
	prevState State

	switchYawError     float64
	switchPlanDistance float64
	switchGoalDistance float64
}

// NewStateMachine constructs a StateMachine starting in StateDefault.
func NewStateMachine(switchYawError, switchPlanDistance, switchGoalDistance float64) *StateMachine {
	return &StateMachine{
		switchYawError:     switchYawError,
		switchPlanDistance: switchPlanDistance,
		switchGoalDistance: switchGoalDistance,
	}
}

// PrevState returns the state selected by the previous call to
// DetermineState (StateDefault before the first call).
func (m *StateMachine) PrevState() State {
	return m.prevState
}

// DetermineState evaluates the state guard table and updates the
// machine's hysteresis-carrying previous state: Arrive takes priority
// once within switchGoalDistance of the goal, Align holds with
// half-threshold hysteresis once entered, otherwise Default.
// switchPlanDistance is part of the configuration surface but does not
// gate any transition here; it is retained for configuration
// completeness only.
func (m *StateMachine) DetermineState(yawError, goalDistance float64) (state State, changed bool) {
	absYaw := math.Abs(yawError)

	switch {
	case goalDistance < m.switchGoalDistance:
		state = StateArrive
	case absYaw > m.switchYawError:
		state = StateAlign
	case m.prevState == StateAlign && absYaw > m.switchYawError/2:
		state = StateAlign
	default:
		state = StateDefault
	}

	changed = state != m.prevState
	m.prevState = state
	return state, changed
}
