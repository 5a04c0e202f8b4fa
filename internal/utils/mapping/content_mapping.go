package mapping

import (
	"github.com/SscSPs/adaptation_plan_app/internal/core/domain"
	"github.com/SscSPs/adaptation_plan_app/internal/models"
)

// ToModelPosition converts a domain Position to a model Position
func ToModelPosition(d domain.Position) models.Position {
	return models.Position{
		PositionID:  d.PositionID,
		Name:        d.Name,
		Description: d.Description,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPosition converts a model Position to a domain Position
func ToDomainPosition(m models.Position) domain.Position {
	return domain.Position{
		PositionID:  m.PositionID,
		Name:        m.Name,
		Description: m.Description,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelTask converts a domain Task to a model Task
func ToModelTask(d domain.Task) models.Task {
	return models.Task{
		TaskID:      d.TaskID,
		PlanID:      d.PlanID,
		Name:        d.Name,
		Description: d.Description,
		Result:      d.Result,
		Completed:   d.Completed,
		SortOrder:   int32(d.SortOrder),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTask converts a model Task to a domain Task
func ToDomainTask(m models.Task) domain.Task {
	return domain.Task{
		TaskID:      m.TaskID,
		PlanID:      m.PlanID,
		Name:        m.Name,
		Description: m.Description,
		Result:      m.Result,
		Completed:   m.Completed,
		SortOrder:   int(m.SortOrder),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelComment converts a domain Comment to a model Comment
func ToModelComment(d domain.Comment) models.Comment {
	return models.Comment(d)
}

// ToDomainComment converts a model Comment to a domain Comment
func ToDomainComment(m models.Comment) domain.Comment {
	return domain.Comment(m)
}
