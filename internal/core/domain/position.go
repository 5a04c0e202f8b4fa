package domain

// Position is a job position an employee is being onboarded into.
type Position struct {
	PositionID  string `json:"positionID"`
	Name        string `json:"name"`
	Description string `json:"description"`
	AuditFields
}
