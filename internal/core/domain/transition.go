package domain

import (
	"fmt"

	"github.com/SscSPs/adaptation_plan_app/internal/apperrors"
)

// Transition returns a copy of p moved one stage in dir on behalf of role.
// Range violations are reported as apperrors.ErrInvalidState before the
// permission matrix is consulted; matrix denials as apperrors.ErrPermissionDenied.
func (p Plan) Transition(role Role, dir Direction) (Plan, error) {
	if _, err := ParseDirection(string(dir)); err != nil {
		return p, err
	}
	if !p.Stage.IsValid() {
		return p, fmt.Errorf("%w: plan %s holds out-of-range %s", apperrors.ErrInvalidState, p.PlanID, p.Stage)
	}
	if dir == DirectionAdvance && p.Stage == StageComplete {
		return p, fmt.Errorf("%w: cannot advance past the final stage", apperrors.ErrInvalidState)
	}
	if dir == DirectionRetreat && p.Stage == StageEmployeeFilling {
		return p, fmt.Errorf("%w: cannot retreat before the first stage", apperrors.ErrInvalidState)
	}
	if !CanTransition(role, p.Stage, dir) {
		return p, fmt.Errorf("%w: role %q may not %s from %s", apperrors.ErrPermissionDenied, role, dir, p.Stage)
	}

	next := p
	next.Stage = p.Stage + dir.delta()
	return next, nil
}

// DirectionBetween infers the transition needed to go from one stage to
// another. ok is false when the stages are equal. Any distance other than one
// step is apperrors.ErrInvalidState.
func DirectionBetween(from, to Stage) (dir Direction, ok bool, err error) {
	if !to.IsValid() {
		return "", false, fmt.Errorf("%w: %s is out of range", apperrors.ErrInvalidState, to)
	}
	switch to - from {
	case 0:
		return "", false, nil
	case 1:
		return DirectionAdvance, true, nil
	case -1:
		return DirectionRetreat, true, nil
	default:
		return "", false, fmt.Errorf("%w: stage can only change by one step (from %d to %d)", apperrors.ErrInvalidState, from, to)
	}
}
