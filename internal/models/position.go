package models

// Position represents a row of the positions table.
type Position struct {
	PositionID  string `db:"position_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	AuditFields
}
