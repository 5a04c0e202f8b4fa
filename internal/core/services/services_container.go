package services

import (
	portsrepo "github.com/SscSPs/adaptation_plan_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/adaptation_plan_app/internal/core/ports/services"
	"github.com/SscSPs/adaptation_plan_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Plan: NewPlanService(
			repos.PlanRepo,
			repos.TaskRepo,
			repos.CommentRepo,
			repos.UserRepo,
			repos.PositionRepo,
		),
		User:     NewUserService(repos.UserRepo),
		Position: NewPositionService(repos.PositionRepo),
		Token:    NewTokenService(cfg),
	}
}
