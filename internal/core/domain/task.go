package domain

// Task is a single onboarding assignment belonging to a plan.
type Task struct {
	TaskID      string `json:"taskID"`
	PlanID      string `json:"planID"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Result      string `json:"result"`
	Completed   bool   `json:"completed"`
	SortOrder   int    `json:"sortOrder"`
	AuditFields
}
