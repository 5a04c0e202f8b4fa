package domain

import "time"

// RateAbsent is the evaluation outcome of a plan that has not been rated yet.
const RateAbsent = "absent"

// DefaultAdaptationPeriod is used when a plan is created without an end date.
const DefaultAdaptationPeriod = 3 // months

// Plan is an employee's adaptation (onboarding) plan.
type Plan struct {
	PlanID          string    `json:"planID"`
	EmployeeID      string    `json:"employeeID"`
	SupervisorID    string    `json:"supervisorID"`
	HRID            string    `json:"hrID"`
	PositionID      string    `json:"positionID"`
	Stage           Stage     `json:"stage"`
	AdaptationStart time.Time `json:"adaptationStart"`
	AdaptationEnd   time.Time `json:"adaptationEnd"`
	Completed       bool      `json:"completed"`
	Rate            string    `json:"rate"`
	TaskIDs         []string  `json:"taskIDs"`
	CommentIDs      []string  `json:"commentIDs"`
	AuditFields               // CreatedAt is the plan's creation date
}

// IsParticipant reports whether userID is named on the plan in any capacity.
func (p Plan) IsParticipant(userID string) bool {
	return userID != "" && (p.EmployeeID == userID || p.SupervisorID == userID || p.HRID == userID)
}

// VisibleTo reports whether a caller sees the plan in listings. hr sees every
// plan; employees and supervisors only see plans they are named on in that role.
func (p Plan) VisibleTo(userID string, role Role) bool {
	switch role {
	case RoleHR:
		return true
	case RoleEmployee:
		return p.EmployeeID == userID
	case RoleSupervisor:
		return p.SupervisorID == userID
	default:
		return false
	}
}

// PlanDetails is a plan with its user and position references resolved.
type PlanDetails struct {
	Plan
	Employee   User
	Supervisor User
	HR         User
	Position   Position
}

// PlanFilter narrows a plan listing.
type PlanFilter struct {
	// ParticipantID restricts results to plans naming this user in ParticipantRole.
	ParticipantID   string
	ParticipantRole Role
	Search          string
	Limit           int
	Offset          int
}
