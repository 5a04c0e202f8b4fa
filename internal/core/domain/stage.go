package domain

import (
	"fmt"

	"github.com/SscSPs/adaptation_plan_app/internal/apperrors"
)

// Stage is a plan's position in the adaptation workflow.
type Stage int

const (
	StageEmployeeFilling Stage = iota
	StagePendingApproval
	StageInExecution
	StageUnderEvaluation
	StageComplete
)

// StageCount is the number of workflow stages.
const StageCount = 5

var stageNames = [StageCount]string{
	"employee filling",
	"pending approval",
	"in execution",
	"under evaluation",
	"complete",
}

// IsValid reports whether s lies in the 0..4 range.
func (s Stage) IsValid() bool {
	return s >= StageEmployeeFilling && s <= StageComplete
}

func (s Stage) String() string {
	if !s.IsValid() {
		return fmt.Sprintf("stage(%d)", int(s))
	}
	return stageNames[s]
}

// Direction is the way a transition moves a plan through the stages.
type Direction string

const (
	DirectionAdvance Direction = "advance"
	DirectionRetreat Direction = "retreat"
)

// ParseDirection validates a direction string.
func ParseDirection(s string) (Direction, error) {
	d := Direction(s)
	switch d {
	case DirectionAdvance, DirectionRetreat:
		return d, nil
	default:
		return "", fmt.Errorf("%w: unknown direction %q", apperrors.ErrValidation, s)
	}
}

// delta is the stage offset applied by the direction.
func (d Direction) delta() Stage {
	if d == DirectionRetreat {
		return -1
	}
	return 1
}
