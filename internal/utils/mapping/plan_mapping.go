package mapping

import (
	"github.com/SscSPs/adaptation_plan_app/internal/core/domain"
	"github.com/SscSPs/adaptation_plan_app/internal/models"
)

// ToModelPlan converts a domain Plan to a model Plan
func ToModelPlan(d domain.Plan) models.Plan {
	return models.Plan{
		PlanID:          d.PlanID,
		EmployeeID:      d.EmployeeID,
		SupervisorID:    d.SupervisorID,
		HRID:            d.HRID,
		PositionID:      d.PositionID,
		Stage:           int16(d.Stage),
		AdaptationStart: d.AdaptationStart,
		AdaptationEnd:   d.AdaptationEnd,
		Completed:       d.Completed,
		Rate:            d.Rate,
		TaskIDs:         d.TaskIDs,
		CommentIDs:      d.CommentIDs,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPlan converts a model Plan to a domain Plan. Nil id lists become empty.
func ToDomainPlan(m models.Plan) domain.Plan {
	return domain.Plan{
		PlanID:          m.PlanID,
		EmployeeID:      m.EmployeeID,
		SupervisorID:    m.SupervisorID,
		HRID:            m.HRID,
		PositionID:      m.PositionID,
		Stage:           domain.Stage(m.Stage),
		AdaptationStart: m.AdaptationStart,
		AdaptationEnd:   m.AdaptationEnd,
		Completed:       m.Completed,
		Rate:            m.Rate,
		TaskIDs:         nonNil(m.TaskIDs),
		CommentIDs:      nonNil(m.CommentIDs),
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
