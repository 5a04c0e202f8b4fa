package dto

import (
	"time"

	"github.com/SscSPs/adaptation_plan_app/internal/core/domain"
	"github.com/SscSPs/adaptation_plan_app/internal/utils/pagination"
)

// CreatePlanRequest defines data for creating an adaptation plan.
// The hr owner is always the caller and is therefore not part of the request.
type CreatePlanRequest struct {
	EmployeeID      string `json:"employee" binding:"required,uuid"`
	SupervisorID    string `json:"supervisor" binding:"required,uuid"`
	PositionID      string `json:"employeePosition" binding:"required,uuid"`
	AdaptationStart *Date  `json:"adaptationStart" binding:"required"`
	AdaptationEnd   *Date  `json:"adaptationEnd"` // defaults to start + 3 months
}

// UpdatePlanRequest defines a full-field plan edit. Stage, completed and rate
// are kept when omitted; a stage that differs by one is treated as a transition.
type UpdatePlanRequest struct {
	EmployeeID      string  `json:"employee" binding:"required,uuid"`
	SupervisorID    string  `json:"supervisor" binding:"required,uuid"`
	PositionID      string  `json:"employeePosition" binding:"required,uuid"`
	AdaptationStart *Date   `json:"adaptationStart" binding:"required"`
	AdaptationEnd   *Date   `json:"adaptationEnd" binding:"required"`
	Stage           *int    `json:"stage"`
	Completed       *bool   `json:"completed"`
	Rate            *string `json:"rate" binding:"omitempty,max=64"`
}

// TransitionPlanRequest moves a plan one stage forward or back.
type TransitionPlanRequest struct {
	Direction string `json:"direction" binding:"required,oneof=advance retreat"`
	// ExpectedStage, when set, makes the transition fail with 409 if the stored stage differs.
	ExpectedStage *int `json:"expectedStage" binding:"omitempty,min=0,max=4"`
}

// ListPlansParams defines query parameters for listing plans.
type ListPlansParams struct {
	Page   int    `form:"page,default=1" binding:"min=1,max=100000"`
	Limit  int    `form:"limit,default=10" binding:"min=1,max=100"`
	Search string `form:"search" binding:"max=200"`
}

// PlanResponse is a plan with its references resolved.
type PlanResponse struct {
	PlanID             string             `json:"id"`
	Employee           UserResponse       `json:"employee"`
	Supervisor         UserResponse       `json:"supervisor"`
	HR                 UserResponse       `json:"hr"`
	EmployeePosition   PositionResponse   `json:"employeePosition"`
	Stage              int                `json:"stage"`
	StageName          string             `json:"stageName"`
	AdaptationStart    Date               `json:"adaptationStart"`
	AdaptationEnd      Date               `json:"adaptationEnd"`
	Completed          bool               `json:"completed"`
	Rate               string             `json:"rate"`
	Tasks              []string           `json:"tasks"`
	Comments           []string           `json:"comments"`
	Date               time.Time          `json:"date"`
	AllowedTransitions []domain.Direction `json:"allowedTransitions"`
}

// ToPlanResponse converts domain.PlanDetails to DTO. The allowed transitions
// are computed for the given caller role.
func ToPlanResponse(p *domain.PlanDetails, callerRole domain.Role) PlanResponse {
	tasks := p.TaskIDs
	if tasks == nil {
		tasks = []string{}
	}
	comments := p.CommentIDs
	if comments == nil {
		comments = []string{}
	}
	return PlanResponse{
		PlanID:             p.PlanID,
		Employee:           ToUserResponse(&p.Employee),
		Supervisor:         ToUserResponse(&p.Supervisor),
		HR:                 ToUserResponse(&p.HR),
		EmployeePosition:   ToPositionResponse(&p.Position),
		Stage:              int(p.Stage),
		StageName:          p.Stage.String(),
		AdaptationStart:    NewDate(p.AdaptationStart),
		AdaptationEnd:      NewDate(p.AdaptationEnd),
		Completed:          p.Completed,
		Rate:               p.Rate,
		Tasks:              tasks,
		Comments:           comments,
		Date:               p.CreatedAt,
		AllowedTransitions: domain.AllowedTransitions(callerRole, p.Stage),
	}
}

// ListPlansResponse is one page of plans.
type ListPlansResponse struct {
	Plans     []PlanResponse      `json:"plans"`
	PageCount int                 `json:"pageCount"`
	Next      *pagination.PageRef `json:"next,omitempty"`
	Previous  *pagination.PageRef `json:"previous,omitempty"`
}

// ToListPlansResponse builds a page of plans with its navigation links.
func ToListPlansResponse(plans []domain.PlanDetails, total int, params ListPlansParams, callerRole domain.Role) ListPlansResponse {
	list := make([]PlanResponse, len(plans))
	for i := range plans {
		list[i] = ToPlanResponse(&plans[i], callerRole)
	}
	return ListPlansResponse{
		Plans:     list,
		PageCount: pagination.PageCount(total, params.Limit),
		Next:      pagination.Next(params.Page, params.Limit, total),
		Previous:  pagination.Previous(params.Page, params.Limit),
	}
}
