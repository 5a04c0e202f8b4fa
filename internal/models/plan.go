package models

import "time"

// Plan represents a row of the plans table. TaskIDs and CommentIDs are
// aggregated from the child tables when the row is read.
type Plan struct {
	PlanID          string    `db:"plan_id"`
	EmployeeID      string    `db:"employee_id"`
	SupervisorID    string    `db:"supervisor_id"`
	HRID            string    `db:"hr_id"`
	PositionID      string    `db:"position_id"`
	Stage           int16     `db:"stage"`
	AdaptationStart time.Time `db:"adaptation_start"`
	AdaptationEnd   time.Time `db:"adaptation_end"`
	Completed       bool      `db:"completed"`
	Rate            string    `db:"rate"`
	TaskIDs         []string  `db:"task_ids"`
	CommentIDs      []string  `db:"comment_ids"`
	AuditFields
}
