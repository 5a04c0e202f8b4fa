package models

// Task represents a row of the tasks table.
type Task struct {
	TaskID      string `db:"task_id"`
	PlanID      string `db:"plan_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Result      string `db:"result"`
	Completed   bool   `db:"completed"`
	SortOrder   int32  `db:"sort_order"`
	AuditFields
}
