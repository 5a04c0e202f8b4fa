package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/adaptation_plan_app/internal/apperrors"
	"github.com/SscSPs/adaptation_plan_app/internal/core/domain"
	"github.com/SscSPs/adaptation_plan_app/internal/core/services"
	"github.com/SscSPs/adaptation_plan_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	employeeID   = "0b8c6a3e-6f0e-4c59-9a49-1f3f5d1f0001"
	supervisorID = "0b8c6a3e-6f0e-4c59-9a49-1f3f5d1f0002"
	hrID         = "0b8c6a3e-6f0e-4c59-9a49-1f3f5d1f0003"
	positionID   = "0b8c6a3e-6f0e-4c59-9a49-1f3f5d1f0004"
	planID       = "0b8c6a3e-6f0e-4c59-9a49-1f3f5d1f0005"
	strangerID   = "0b8c6a3e-6f0e-4c59-9a49-1f3f5d1f0006"
)

var (
	employee   = domain.Actor{UserID: employeeID, Role: domain.RoleEmployee}
	supervisor = domain.Actor{UserID: supervisorID, Role: domain.RoleSupervisor}
	hr         = domain.Actor{UserID: hrID, Role: domain.RoleHR}
	fixedNow   = time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
)

type PlanServiceTestSuite struct {
	suite.Suite
	planRepo     *MockPlanRepository
	taskRepo     *MockTaskRepository
	commentRepo  *MockCommentRepository
	userRepo     *MockUserRepository
	positionRepo *MockPositionRepository
	service      *services.PlanService
	ctx          context.Context
}

func (s *PlanServiceTestSuite) SetupTest() {
	s.planRepo = new(MockPlanRepository)
	s.taskRepo = new(MockTaskRepository)
	s.commentRepo = new(MockCommentRepository)
	s.userRepo = new(MockUserRepository)
	s.positionRepo = new(MockPositionRepository)
	s.service = services.NewPlanService(s.planRepo, s.taskRepo, s.commentRepo, s.userRepo, s.positionRepo)
	s.service.Now = func() time.Time { return fixedNow }
	s.ctx = context.Background()
}

func (s *PlanServiceTestSuite) TearDownTest() {
	s.planRepo.AssertExpectations(s.T())
	s.taskRepo.AssertExpectations(s.T())
	s.commentRepo.AssertExpectations(s.T())
	s.userRepo.AssertExpectations(s.T())
	s.positionRepo.AssertExpectations(s.T())
}

func TestPlanServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PlanServiceTestSuite))
}

func storedPlan(stage domain.Stage) domain.Plan {
	return domain.Plan{
		PlanID:          planID,
		EmployeeID:      employeeID,
		SupervisorID:    supervisorID,
		HRID:            hrID,
		PositionID:      positionID,
		Stage:           stage,
		AdaptationStart: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		AdaptationEnd:   time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		Rate:            domain.RateAbsent,
		TaskIDs:         []string{},
		CommentIDs:      []string{},
	}
}

func details(p domain.Plan) *domain.PlanDetails {
	return &domain.PlanDetails{
		Plan:       p,
		Employee:   domain.User{UserID: p.EmployeeID, Name: "Erin Employee", Role: domain.RoleEmployee},
		Supervisor: domain.User{UserID: p.SupervisorID, Name: "Sam Supervisor", Role: domain.RoleSupervisor},
		HR:         domain.User{UserID: p.HRID, Name: "Hana HR", Role: domain.RoleHR},
		Position:   domain.Position{PositionID: p.PositionID, Name: "Backend Engineer"},
	}
}

func (s *PlanServiceTestSuite) expectReferences() {
	s.userRepo.On("FindUserByID", mock.Anything, employeeID).
		Return(&domain.User{UserID: employeeID, Role: domain.RoleEmployee}, nil).Once()
	s.userRepo.On("FindUserByID", mock.Anything, supervisorID).
		Return(&domain.User{UserID: supervisorID, Role: domain.RoleSupervisor}, nil).Once()
	s.positionRepo.On("FindPositionByID", mock.Anything, positionID).
		Return(&domain.Position{PositionID: positionID}, nil).Once()
}

func createRequest() dto.CreatePlanRequest {
	start := dto.NewDate(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	return dto.CreatePlanRequest{
		EmployeeID:      employeeID,
		SupervisorID:    supervisorID,
		PositionID:      positionID,
		AdaptationStart: &start,
	}
}

func (s *PlanServiceTestSuite) TestCreatePlan_ByHRAppliesDefaults() {
	s.expectReferences()

	var saved domain.Plan
	reread := &domain.PlanDetails{}
	s.planRepo.On("SavePlan", mock.Anything, mock.MatchedBy(func(p domain.Plan) bool {
		saved = p
		*reread = *details(p)
		return true
	})).Return(nil).Once()
	s.planRepo.On("FindPlanByID", mock.Anything, mock.AnythingOfType("string")).
		Return(reread, nil).Once()

	got, err := s.service.CreatePlan(s.ctx, hr, createRequest())
	s.Require().NoError(err)

	s.Equal(domain.StageEmployeeFilling, saved.Stage)
	s.False(saved.Completed)
	s.Equal(domain.RateAbsent, saved.Rate)
	s.Equal(hrID, saved.HRID)
	s.Equal(fixedNow, saved.CreatedAt)
	s.Equal(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), saved.AdaptationEnd)
	s.NotEmpty(saved.PlanID)

	s.Equal(saved.EmployeeID, got.EmployeeID)
	s.Equal(saved.SupervisorID, got.SupervisorID)
	s.Equal(saved.PositionID, got.PositionID)
	s.Equal(domain.StageEmployeeFilling, got.Stage)
}

func (s *PlanServiceTestSuite) TestCreatePlan_ExplicitEndDateKept() {
	s.expectReferences()
	req := createRequest()
	end := dto.NewDate(time.Date(2026, 5, 15, 0, 0, 0, 0, time.UTC))
	req.AdaptationEnd = &end

	s.planRepo.On("SavePlan", mock.Anything, mock.MatchedBy(func(p domain.Plan) bool {
		return p.AdaptationEnd.Equal(end.Time)
	})).Return(nil).Once()
	s.planRepo.On("FindPlanByID", mock.Anything, mock.AnythingOfType("string")).
		Return(details(storedPlan(domain.StageEmployeeFilling)), nil).Once()

	_, err := s.service.CreatePlan(s.ctx, hr, req)
	s.NoError(err)
}

func (s *PlanServiceTestSuite) TestCreatePlan_NonHRDenied() {
	for _, actor := range []domain.Actor{employee, supervisor} {
		_, err := s.service.CreatePlan(s.ctx, actor, createRequest())
		s.ErrorIs(err, apperrors.ErrPermissionDenied)
	}
	s.planRepo.AssertNotCalled(s.T(), "SavePlan", mock.Anything, mock.Anything)
}

func (s *PlanServiceTestSuite) TestCreatePlan_ReferenceChecks() {
	s.Run("employee with wrong role", func() {
		s.userRepo.On("FindUserByID", mock.Anything, employeeID).
			Return(&domain.User{UserID: employeeID, Role: domain.RoleSupervisor}, nil).Once()

		_, err := s.service.CreatePlan(s.ctx, hr, createRequest())
		s.ErrorIs(err, apperrors.ErrValidation)
	})

	s.Run("missing supervisor", func() {
		s.userRepo.On("FindUserByID", mock.Anything, employeeID).
			Return(&domain.User{UserID: employeeID, Role: domain.RoleEmployee}, nil).Once()
		s.userRepo.On("FindUserByID", mock.Anything, supervisorID).
			Return(nil, apperrors.ErrNotFound).Once()

		_, err := s.service.CreatePlan(s.ctx, hr, createRequest())
		s.ErrorIs(err, apperrors.ErrValidation)
	})

	s.Run("missing position", func() {
		s.userRepo.On("FindUserByID", mock.Anything, employeeID).
			Return(&domain.User{UserID: employeeID, Role: domain.RoleEmployee}, nil).Once()
		s.userRepo.On("FindUserByID", mock.Anything, supervisorID).
			Return(&domain.User{UserID: supervisorID, Role: domain.RoleSupervisor}, nil).Once()
		s.positionRepo.On("FindPositionByID", mock.Anything, positionID).
			Return(nil, apperrors.ErrNotFound).Once()

		_, err := s.service.CreatePlan(s.ctx, hr, createRequest())
		s.ErrorIs(err, apperrors.ErrValidation)
	})

	s.planRepo.AssertNotCalled(s.T(), "SavePlan", mock.Anything, mock.Anything)
}

func (s *PlanServiceTestSuite) TestTransitionPlan() {
	tests := []struct {
		name      string
		actor     domain.Actor
		stage     domain.Stage
		dir       domain.Direction
		expected  *domain.Stage
		wantStage domain.Stage
		wantErr   error
	}{
		{name: "employee advances from filling", actor: employee, stage: 0, dir: domain.DirectionAdvance, wantStage: 1},
		{name: "employee cannot approve", actor: employee, stage: 1, dir: domain.DirectionAdvance, wantErr: apperrors.ErrPermissionDenied},
		{name: "hr cannot retreat from first stage", actor: hr, stage: 0, dir: domain.DirectionRetreat, wantErr: apperrors.ErrInvalidState},
		{name: "nobody advances past complete", actor: hr, stage: 4, dir: domain.DirectionAdvance, wantErr: apperrors.ErrInvalidState},
		{name: "supervisor sends back for rework", actor: supervisor, stage: 1, dir: domain.DirectionRetreat, wantStage: 0},
		{name: "hr reopens a complete plan", actor: hr, stage: 4, dir: domain.DirectionRetreat, wantStage: 3},
		{name: "expected stage matches", actor: supervisor, stage: 3, dir: domain.DirectionAdvance, expected: stagePtr(3), wantStage: 4},
		{name: "expected stage is stale", actor: supervisor, stage: 3, dir: domain.DirectionAdvance, expected: stagePtr(2), wantErr: apperrors.ErrConflict},
		{name: "stranger employee denied", actor: domain.Actor{UserID: strangerID, Role: domain.RoleEmployee}, stage: 0, dir: domain.DirectionAdvance, wantErr: apperrors.ErrPermissionDenied},
		{name: "unknown direction", actor: hr, stage: 2, dir: domain.Direction("sideways"), wantErr: apperrors.ErrValidation},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			current := storedPlan(tt.stage)

			if tt.dir == domain.DirectionAdvance || tt.dir == domain.DirectionRetreat {
				s.planRepo.On("UpdatePlanLocked", mock.Anything, planID).Return(current, nil).Once()
			}
			if tt.wantErr == nil {
				after := current
				after.Stage = tt.wantStage
				s.planRepo.On("FindPlanByID", mock.Anything, planID).Return(details(after), nil).Once()
			}

			got, err := s.service.TransitionPlan(s.ctx, tt.actor, planID, tt.dir, tt.expected)
			if tt.wantErr != nil {
				s.ErrorIs(err, tt.wantErr)
				s.Nil(got)
			} else {
				s.Require().NoError(err)
				s.Equal(tt.wantStage, got.Stage)
			}
			s.planRepo.AssertExpectations(s.T())
		})
	}
}

func (s *PlanServiceTestSuite) TestTransitionPlan_NotFound() {
	s.planRepo.On("UpdatePlanLocked", mock.Anything, planID).Return(domain.Plan{}, apperrors.ErrNotFound).Once()

	_, err := s.service.TransitionPlan(s.ctx, hr, planID, domain.DirectionAdvance, nil)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *PlanServiceTestSuite) TestUpdatePlan_StageDelta() {
	makeReq := func(stage int) dto.UpdatePlanRequest {
		start := dto.NewDate(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
		end := dto.NewDate(time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC))
		rate := "good"
		return dto.UpdatePlanRequest{
			EmployeeID:      employeeID,
			SupervisorID:    supervisorID,
			PositionID:      positionID,
			AdaptationStart: &start,
			AdaptationEnd:   &end,
			Stage:           &stage,
			Rate:            &rate,
		}
	}

	s.Run("single step is a transition", func() {
		s.SetupTest()
		s.expectReferences()
		s.planRepo.On("UpdatePlanLocked", mock.Anything, planID).Return(storedPlan(2), nil).Once()
		s.planRepo.On("FindPlanByID", mock.Anything, planID).Return(details(storedPlan(3)), nil).Once()

		got, err := s.service.UpdatePlan(s.ctx, supervisor, planID, makeReq(3))
		s.Require().NoError(err)
		s.Equal(domain.StageUnderEvaluation, got.Stage)
	})

	s.Run("same stage is a plain edit", func() {
		s.SetupTest()
		s.expectReferences()
		s.planRepo.On("UpdatePlanLocked", mock.Anything, planID).Return(storedPlan(2), nil).Once()
		s.planRepo.On("FindPlanByID", mock.Anything, planID).Return(details(storedPlan(2)), nil).Once()

		_, err := s.service.UpdatePlan(s.ctx, hr, planID, makeReq(2))
		s.NoError(err)
	})

	s.Run("jump of two stages is rejected", func() {
		s.SetupTest()
		s.expectReferences()
		s.planRepo.On("UpdatePlanLocked", mock.Anything, planID).Return(storedPlan(1), nil).Once()

		_, err := s.service.UpdatePlan(s.ctx, hr, planID, makeReq(3))
		s.ErrorIs(err, apperrors.ErrInvalidState)
	})

	s.Run("matrix still applies", func() {
		s.SetupTest()
		s.expectReferences()
		s.planRepo.On("UpdatePlanLocked", mock.Anything, planID).Return(storedPlan(0), nil).Once()

		_, err := s.service.UpdatePlan(s.ctx, supervisor, planID, makeReq(1))
		s.ErrorIs(err, apperrors.ErrPermissionDenied)
	})

	s.Run("employee cannot edit", func() {
		s.SetupTest()
		_, err := s.service.UpdatePlan(s.ctx, employee, planID, makeReq(0))
		s.ErrorIs(err, apperrors.ErrPermissionDenied)
		s.planRepo.AssertNotCalled(s.T(), "UpdatePlanLocked", mock.Anything, mock.Anything)
	})
}

func (s *PlanServiceTestSuite) TestDeletePlan() {
	s.Run("employee is denied and nothing is deleted", func() {
		s.SetupTest()
		err := s.service.DeletePlan(s.ctx, employee, planID)
		s.ErrorIs(err, apperrors.ErrPermissionDenied)
		s.planRepo.AssertNotCalled(s.T(), "DeletePlan", mock.Anything, mock.Anything)
	})

	s.Run("hr deletes", func() {
		s.SetupTest()
		s.planRepo.On("DeletePlan", mock.Anything, planID).Return(nil).Once()
		s.NoError(s.service.DeletePlan(s.ctx, hr, planID))
		s.planRepo.AssertExpectations(s.T())
	})

	s.Run("supervisor of the plan deletes", func() {
		s.SetupTest()
		s.planRepo.On("FindPlanByID", mock.Anything, planID).Return(details(storedPlan(2)), nil).Once()
		s.planRepo.On("DeletePlan", mock.Anything, planID).Return(nil).Once()
		s.NoError(s.service.DeletePlan(s.ctx, supervisor, planID))
		s.planRepo.AssertExpectations(s.T())
	})

	s.Run("missing plan", func() {
		s.SetupTest()
		s.planRepo.On("DeletePlan", mock.Anything, planID).Return(apperrors.ErrNotFound).Once()
		s.ErrorIs(s.service.DeletePlan(s.ctx, hr, planID), apperrors.ErrNotFound)
	})
}

func (s *PlanServiceTestSuite) TestListPlans_EmployeeSeesOwnPlans() {
	own := details(storedPlan(0))
	s.planRepo.On("FindPlans", mock.Anything, domain.PlanFilter{
		ParticipantID:   employeeID,
		ParticipantRole: domain.RoleEmployee,
		Limit:           10,
		Offset:          10,
	}).Return([]domain.PlanDetails{*own}, 11, nil).Once()

	resp, err := s.service.ListPlans(s.ctx, employee, dto.ListPlansParams{Page: 2, Limit: 10})
	s.Require().NoError(err)
	s.Require().Len(resp.Plans, 1)
	s.Equal(employeeID, resp.Plans[0].Employee.UserID)
	s.Equal(2, resp.PageCount)
	s.Nil(resp.Next)
	s.Require().NotNil(resp.Previous)
	s.Equal(1, resp.Previous.Page)
	s.Equal([]domain.Direction{domain.DirectionAdvance}, resp.Plans[0].AllowedTransitions)
}

func (s *PlanServiceTestSuite) TestListPlans_HRSeesAllWithDefaults() {
	s.planRepo.On("FindPlans", mock.Anything, domain.PlanFilter{Search: "ann", Limit: 10}).
		Return([]domain.PlanDetails{}, 0, nil).Once()

	resp, err := s.service.ListPlans(s.ctx, hr, dto.ListPlansParams{Search: "ann"})
	s.Require().NoError(err)
	s.Empty(resp.Plans)
	s.Equal(1, resp.PageCount)
	s.Nil(resp.Next)
	s.Nil(resp.Previous)
}

func (s *PlanServiceTestSuite) TestGetPlan_Idempotent() {
	plan := details(storedPlan(2))
	s.planRepo.On("FindPlanByID", mock.Anything, planID).Return(plan, nil).Twice()

	first, err := s.service.GetPlan(s.ctx, planID)
	s.Require().NoError(err)
	second, err := s.service.GetPlan(s.ctx, planID)
	s.Require().NoError(err)
	s.Equal(first, second)
}

func (s *PlanServiceTestSuite) TestAddTask() {
	s.Run("participant adds a task", func() {
		s.SetupTest()
		s.planRepo.On("FindPlanByID", mock.Anything, planID).Return(details(storedPlan(0)), nil).Once()
		s.taskRepo.On("SaveTask", mock.Anything, mock.MatchedBy(func(t *domain.Task) bool {
			return t.PlanID == planID && t.Name == "Read the handbook" && t.CreatedBy == employeeID
		})).Return(nil).Once()

		task, err := s.service.AddTask(s.ctx, employee, planID, dto.CreateTaskRequest{Name: "Read the handbook"})
		s.Require().NoError(err)
		s.NotEmpty(task.TaskID)
		s.taskRepo.AssertExpectations(s.T())
	})

	s.Run("outsider is denied", func() {
		s.SetupTest()
		s.planRepo.On("FindPlanByID", mock.Anything, planID).Return(details(storedPlan(0)), nil).Once()

		outsider := domain.Actor{UserID: strangerID, Role: domain.RoleSupervisor}
		_, err := s.service.AddTask(s.ctx, outsider, planID, dto.CreateTaskRequest{Name: "x"})
		s.ErrorIs(err, apperrors.ErrPermissionDenied)
		s.taskRepo.AssertNotCalled(s.T(), "SaveTask", mock.Anything, mock.Anything)
	})
}

func (s *PlanServiceTestSuite) TestUpdateTask_KeepsOmittedFields() {
	s.planRepo.On("FindPlanByID", mock.Anything, planID).Return(details(storedPlan(2)), nil).Once()
	s.taskRepo.On("FindTaskByID", mock.Anything, planID, "task-1").Return(&domain.Task{
		TaskID: "task-1", PlanID: planID, Name: "Setup laptop", Description: "IT ticket",
	}, nil).Once()
	s.taskRepo.On("UpdateTask", mock.Anything, mock.MatchedBy(func(t domain.Task) bool {
		return t.Name == "Setup laptop" && t.Description == "IT ticket" && t.Completed && t.Result == "done"
	})).Return(nil).Once()

	done, result := true, "done"
	task, err := s.service.UpdateTask(s.ctx, employee, planID, "task-1", dto.UpdateTaskRequest{Completed: &done, Result: &result})
	s.Require().NoError(err)
	s.True(task.Completed)
}

func (s *PlanServiceTestSuite) TestDeleteTask_EmployeeDenied() {
	err := s.service.DeleteTask(s.ctx, employee, planID, "task-1")
	s.ErrorIs(err, apperrors.ErrPermissionDenied)
	s.taskRepo.AssertNotCalled(s.T(), "DeleteTask", mock.Anything, mock.Anything, mock.Anything)
}

func (s *PlanServiceTestSuite) TestAddComment_ResolvesAuthor() {
	s.planRepo.On("FindPlanByID", mock.Anything, planID).Return(details(storedPlan(1)), nil).Once()
	s.userRepo.On("FindUserByID", mock.Anything, supervisorID).
		Return(&domain.User{UserID: supervisorID, Name: "Sam Supervisor", Role: domain.RoleSupervisor}, nil).Once()
	s.commentRepo.On("SaveComment", mock.Anything, mock.MatchedBy(func(c domain.Comment) bool {
		return c.AuthorID == supervisorID && c.Text == "Looks good" && c.CreatedAt.Equal(fixedNow)
	})).Return(nil).Once()

	comment, err := s.service.AddComment(s.ctx, supervisor, planID, dto.CreateCommentRequest{Text: "Looks good"})
	s.Require().NoError(err)
	s.Equal("Sam Supervisor", comment.Author.Name)
}

func (s *PlanServiceTestSuite) TestListPlanTasks_MissingPlan() {
	s.planRepo.On("FindPlanByID", mock.Anything, planID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := s.service.ListPlanTasks(s.ctx, planID)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func stagePtr(s domain.Stage) *domain.Stage { return &s }

func TestPlanService_NeverLeavesStageRange(t *testing.T) {
	for _, role := range domain.Roles {
		for stage := domain.StageEmployeeFilling; stage <= domain.StageComplete; stage++ {
			for _, dir := range []domain.Direction{domain.DirectionAdvance, domain.DirectionRetreat} {
				planRepo := new(MockPlanRepository)
				svc := services.NewPlanService(planRepo, nil, nil, nil, nil)
				actor := domain.Actor{UserID: hrID, Role: role}
				current := storedPlan(stage)
				current.EmployeeID, current.SupervisorID = hrID, hrID

				planRepo.On("UpdatePlanLocked", mock.Anything, planID).Return(current, nil).Once()
				planRepo.On("FindPlanByID", mock.Anything, planID).Return(details(current), nil).Maybe()

				_, err := svc.TransitionPlan(context.Background(), actor, planID, dir, nil)
				if err != nil {
					continue
				}
				next, terr := current.Transition(role, dir)
				require.NoError(t, terr)
				assert.True(t, next.Stage.IsValid(), "role %s stage %d dir %s", role, stage, dir)
			}
		}
	}
}
