package domain

// stageTable holds one boolean per (role, stage) pair. Rows follow Roles.
type stageTable [len(Roles)][StageCount]bool

var advanceTable = stageTable{
	{true, false, true, false, false}, // employee
	{false, true, true, true, false},  // supervisor
	{true, true, true, true, false},   // hr
}

var retreatTable = stageTable{
	{false, false, false, false, false}, // employee
	{false, true, false, true, false},   // supervisor
	{false, true, true, true, true},     // hr
}

func (t *stageTable) allows(role Role, stage Stage) bool {
	row := role.index()
	if row < 0 || !stage.IsValid() {
		return false
	}
	return t[row][stage]
}

// CanAdvance reports whether role may move a plan at stage one step forward.
func CanAdvance(role Role, stage Stage) bool {
	return advanceTable.allows(role, stage)
}

// CanRetreat reports whether role may move a plan at stage one step back.
func CanRetreat(role Role, stage Stage) bool {
	return retreatTable.allows(role, stage)
}

// CanTransition dispatches to CanAdvance or CanRetreat by direction.
func CanTransition(role Role, stage Stage, dir Direction) bool {
	switch dir {
	case DirectionAdvance:
		return CanAdvance(role, stage)
	case DirectionRetreat:
		return CanRetreat(role, stage)
	default:
		return false
	}
}

// AllowedTransitions lists the directions role may take from stage.
func AllowedTransitions(role Role, stage Stage) []Direction {
	dirs := make([]Direction, 0, 2)
	if CanRetreat(role, stage) {
		dirs = append(dirs, DirectionRetreat)
	}
	if CanAdvance(role, stage) {
		dirs = append(dirs, DirectionAdvance)
	}
	return dirs
}
