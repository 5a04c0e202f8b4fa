package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/adaptation_plan_app/internal/apperrors"
	"github.com/SscSPs/adaptation_plan_app/internal/core/domain"
	portssvc "github.com/SscSPs/adaptation_plan_app/internal/core/ports/services"
	"github.com/SscSPs/adaptation_plan_app/internal/dto"
	"github.com/SscSPs/adaptation_plan_app/internal/handlers"
	"github.com/SscSPs/adaptation_plan_app/internal/middleware"
	"github.com/SscSPs/adaptation_plan_app/internal/platform/config"
	"github.com/SscSPs/adaptation_plan_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PlanService ---
type MockPlanService struct {
	mock.Mock
}

var _ portssvc.PlanSvcFacade = (*MockPlanService)(nil)

func planResult(args mock.Arguments) (*domain.PlanDetails, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlanDetails), args.Error(1)
}

func (m *MockPlanService) GetPlan(ctx context.Context, planID string) (*domain.PlanDetails, error) {
	return planResult(m.Called(ctx, planID))
}
func (m *MockPlanService) ListPlans(ctx context.Context, actor domain.Actor, params dto.ListPlansParams) (*dto.ListPlansResponse, error) {
	args := m.Called(ctx, actor, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListPlansResponse), args.Error(1)
}
func (m *MockPlanService) CreatePlan(ctx context.Context, actor domain.Actor, req dto.CreatePlanRequest) (*domain.PlanDetails, error) {
	return planResult(m.Called(ctx, actor, req))
}
func (m *MockPlanService) UpdatePlan(ctx context.Context, actor domain.Actor, planID string, req dto.UpdatePlanRequest) (*domain.PlanDetails, error) {
	return planResult(m.Called(ctx, actor, planID, req))
}
func (m *MockPlanService) DeletePlan(ctx context.Context, actor domain.Actor, planID string) error {
	return m.Called(ctx, actor, planID).Error(0)
}
func (m *MockPlanService) TransitionPlan(ctx context.Context, actor domain.Actor, planID string, dir domain.Direction, expectedStage *domain.Stage) (*domain.PlanDetails, error) {
	return planResult(m.Called(ctx, actor, planID, dir, expectedStage))
}
func (m *MockPlanService) ListPlanTasks(ctx context.Context, planID string) ([]domain.Task, error) {
	args := m.Called(ctx, planID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Task), args.Error(1)
}
func (m *MockPlanService) AddTask(ctx context.Context, actor domain.Actor, planID string, req dto.CreateTaskRequest) (*domain.Task, error) {
	args := m.Called(ctx, actor, planID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}
func (m *MockPlanService) UpdateTask(ctx context.Context, actor domain.Actor, planID, taskID string, req dto.UpdateTaskRequest) (*domain.Task, error) {
	args := m.Called(ctx, actor, planID, taskID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Task), args.Error(1)
}
func (m *MockPlanService) DeleteTask(ctx context.Context, actor domain.Actor, planID, taskID string) error {
	return m.Called(ctx, actor, planID, taskID).Error(0)
}
func (m *MockPlanService) ListPlanComments(ctx context.Context, planID string) ([]domain.CommentDetails, error) {
	args := m.Called(ctx, planID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CommentDetails), args.Error(1)
}
func (m *MockPlanService) AddComment(ctx context.Context, actor domain.Actor, planID string, req dto.CreateCommentRequest) (*domain.CommentDetails, error) {
	args := m.Called(ctx, actor, planID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CommentDetails), args.Error(1)
}

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

func userResult(args mock.Arguments) (*domain.User, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return userResult(m.Called(ctx, userID))
}
func (m *MockUserService) ListUsers(ctx context.Context, params dto.ListUsersParams) ([]domain.User, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockUserService) CreateUser(ctx context.Context, actor domain.Actor, req dto.CreateUserRequest) (*domain.User, error) {
	return userResult(m.Called(ctx, actor, req))
}
func (m *MockUserService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	return userResult(m.Called(ctx, username, password))
}

// --- Mock PositionService ---
type MockPositionService struct {
	mock.Mock
}

var _ portssvc.PositionSvcFacade = (*MockPositionService)(nil)

func (m *MockPositionService) GetPosition(ctx context.Context, positionID string) (*domain.Position, error) {
	args := m.Called(ctx, positionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Position), args.Error(1)
}
func (m *MockPositionService) ListPositions(ctx context.Context) ([]domain.Position, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Position), args.Error(1)
}
func (m *MockPositionService) CreatePosition(ctx context.Context, actor domain.Actor, req dto.CreatePositionRequest) (*domain.Position, error) {
	args := m.Called(ctx, actor, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Position), args.Error(1)
}

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- Test Suite Setup ---
type PlanHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	planService  *MockPlanService
	userService  *MockUserService
	posService   *MockPositionService
	tokenService *MockTokenService
	cfg          *config.Config
	employeeID   string
	supervisorID string
	hrID         string
	planID       string
}

func TestPlanHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(PlanHandlerTestSuite))
}

func (suite *PlanHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	suite.planService = new(MockPlanService)
	suite.userService = new(MockUserService)
	suite.posService = new(MockPositionService)
	suite.tokenService = new(MockTokenService)
	suite.cfg = &config.Config{
		JWTSecret:          "handler-test-secret",
		JWTExpiryDuration:  time.Hour,
		JWTIssuer:          "handler-test",
		LoginRateLimit:     "100-M",
		CORSAllowedOrigins: []string{"http://localhost:3000"},
		IsProduction:       true,
	}
	suite.employeeID = uuid.NewString()
	suite.supervisorID = uuid.NewString()
	suite.hrID = uuid.NewString()
	suite.planID = uuid.NewString()

	suite.router = gin.New()
	suite.router.Use(middleware.StructuredLoggingMiddleware(discardLogger()))
	handlers.RegisterRoutes(suite.router, suite.cfg, &portssvc.ServiceContainer{
		Plan:     suite.planService,
		User:     suite.userService,
		Position: suite.posService,
		Token:    suite.tokenService,
	})
}

func (suite *PlanHandlerTestSuite) TearDownTest() {
	suite.planService.AssertExpectations(suite.T())
	suite.userService.AssertExpectations(suite.T())
	suite.tokenService.AssertExpectations(suite.T())
}

func (suite *PlanHandlerTestSuite) actor(role domain.Role) domain.Actor {
	switch role {
	case domain.RoleEmployee:
		return domain.Actor{UserID: suite.employeeID, Role: role}
	case domain.RoleSupervisor:
		return domain.Actor{UserID: suite.supervisorID, Role: role}
	default:
		return domain.Actor{UserID: suite.hrID, Role: role}
	}
}

func (suite *PlanHandlerTestSuite) request(method, path string, role domain.Role, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if role != "" {
		token, err := utils.GenerateJWT(suite.actor(role).UserID, string(role), suite.cfg.JWTSecret, time.Hour, suite.cfg.JWTIssuer)
		suite.Require().NoError(err)
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *PlanHandlerTestSuite) planDetails(stage domain.Stage) *domain.PlanDetails {
	return &domain.PlanDetails{
		Plan: domain.Plan{
			PlanID:          suite.planID,
			EmployeeID:      suite.employeeID,
			SupervisorID:    suite.supervisorID,
			HRID:            suite.hrID,
			PositionID:      "pos-1",
			Stage:           stage,
			AdaptationStart: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
			AdaptationEnd:   time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
			Rate:            domain.RateAbsent,
			AuditFields:     domain.AuditFields{CreatedAt: time.Date(2026, 2, 27, 12, 0, 0, 0, time.UTC)},
		},
		Employee:   domain.User{UserID: suite.employeeID, Name: "Erin", Role: domain.RoleEmployee, PasswordHash: "secret-hash"},
		Supervisor: domain.User{UserID: suite.supervisorID, Name: "Sam", Role: domain.RoleSupervisor},
		HR:         domain.User{UserID: suite.hrID, Name: "Hana", Role: domain.RoleHR},
		Position:   domain.Position{PositionID: "pos-1", Name: "Backend Engineer"},
	}
}

func (suite *PlanHandlerTestSuite) TestHealth() {
	w := suite.request(http.MethodGet, "/health", "", nil)
	suite.Equal(http.StatusOK, w.Code)
}

func (suite *PlanHandlerTestSuite) TestMissingToken() {
	w := suite.request(http.MethodGet, "/api/v1/plans", "", nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *PlanHandlerTestSuite) TestGetPlan_ResolvedWithAllowedTransitions() {
	suite.planService.On("GetPlan", mock.Anything, suite.planID).Return(suite.planDetails(0), nil).Once()

	w := suite.request(http.MethodGet, "/api/v1/plans/"+suite.planID, domain.RoleEmployee, nil)
	suite.Require().Equal(http.StatusOK, w.Code)

	var resp map[string]any
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(suite.planID, resp["id"])
	suite.Equal("2026-03-01", resp["adaptationStart"])
	suite.Equal("absent", resp["rate"])
	suite.Equal([]any{"advance"}, resp["allowedTransitions"])
	suite.Equal([]any{}, resp["tasks"])
	employee := resp["employee"].(map[string]any)
	suite.Equal("Erin", employee["name"])
	suite.NotContains(w.Body.String(), "secret-hash")
}

func (suite *PlanHandlerTestSuite) TestGetPlan_NotFoundHasEmptyBody() {
	suite.planService.On("GetPlan", mock.Anything, suite.planID).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.request(http.MethodGet, "/api/v1/plans/"+suite.planID, domain.RoleHR, nil)
	suite.Equal(http.StatusNotFound, w.Code)
	suite.Empty(w.Body.String())
}

func (suite *PlanHandlerTestSuite) TestListPlans_PassesCallerAndDefaults() {
	suite.planService.On("ListPlans", mock.Anything, suite.actor(domain.RoleEmployee), dto.ListPlansParams{Page: 1, Limit: 10, Search: "eng"}).
		Return(&dto.ListPlansResponse{Plans: []dto.PlanResponse{}, PageCount: 1}, nil).Once()

	w := suite.request(http.MethodGet, "/api/v1/plans?search=eng", domain.RoleEmployee, nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"plans":[],"pageCount":1}`, w.Body.String())
}

func (suite *PlanHandlerTestSuite) TestListPlans_RejectsOversizedLimit() {
	w := suite.request(http.MethodGet, "/api/v1/plans?limit=500", domain.RoleHR, nil)
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *PlanHandlerTestSuite) TestListPlans_RejectsOversizedPage() {
	w := suite.request(http.MethodGet, "/api/v1/plans?page=92233720368547765&limit=100", domain.RoleHR, nil)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.planService.AssertNotCalled(suite.T(), "ListPlans", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PlanHandlerTestSuite) TestUpdatePlan_RateLength() {
	body := func(rate string) map[string]any {
		return map[string]any{
			"employee":         suite.employeeID,
			"supervisor":       suite.supervisorID,
			"employeePosition": uuid.NewString(),
			"adaptationStart":  "2026-03-01",
			"adaptationEnd":    "2026-06-01",
			"rate":             rate,
		}
	}

	suite.Run("longer than the column is rejected", func() {
		w := suite.request(http.MethodPut, "/api/v1/plans/"+suite.planID, domain.RoleHR, body(strings.Repeat("r", 65)))
		suite.Equal(http.StatusBadRequest, w.Code)
		suite.planService.AssertNotCalled(suite.T(), "UpdatePlan", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	suite.Run("store rejection is a validation error", func() {
		suite.planService.On("UpdatePlan", mock.Anything, suite.actor(domain.RoleHR), suite.planID, mock.AnythingOfType("dto.UpdatePlanRequest")).
			Return(nil, fmt.Errorf("failed to update plan: %w", apperrors.ErrValidation)).Once()
		w := suite.request(http.MethodPut, "/api/v1/plans/"+suite.planID, domain.RoleHR, body(strings.Repeat("r", 64)))
		suite.Equal(http.StatusBadRequest, w.Code)
	})
}

func (suite *PlanHandlerTestSuite) TestCreatePlan() {
	body := map[string]any{
		"employee":         suite.employeeID,
		"supervisor":       suite.supervisorID,
		"employeePosition": uuid.NewString(),
		"adaptationStart":  "2026-03-01",
	}

	suite.Run("supervisor is turned away before the service", func() {
		w := suite.request(http.MethodPost, "/api/v1/plans", domain.RoleSupervisor, body)
		suite.Equal(http.StatusUnauthorized, w.Code)
		suite.planService.AssertNotCalled(suite.T(), "CreatePlan", mock.Anything, mock.Anything, mock.Anything)
	})

	suite.Run("hr creates", func() {
		suite.planService.On("CreatePlan", mock.Anything, suite.actor(domain.RoleHR), mock.MatchedBy(func(req dto.CreatePlanRequest) bool {
			return req.EmployeeID == suite.employeeID && req.AdaptationStart != nil && req.AdaptationEnd == nil
		})).Return(suite.planDetails(0), nil).Once()

		w := suite.request(http.MethodPost, "/api/v1/plans", domain.RoleHR, body)
		suite.Equal(http.StatusCreated, w.Code)
		suite.Contains(w.Body.String(), `"stage":0`)
	})

	suite.Run("bad reference id", func() {
		bad := map[string]any{"employee": "nope", "supervisor": suite.supervisorID, "employeePosition": uuid.NewString(), "adaptationStart": "2026-03-01"}
		w := suite.request(http.MethodPost, "/api/v1/plans", domain.RoleHR, bad)
		suite.Equal(http.StatusBadRequest, w.Code)
	})
}

func (suite *PlanHandlerTestSuite) TestDeletePlan() {
	suite.Run("employee gets permission denied and nothing is deleted", func() {
		w := suite.request(http.MethodDelete, "/api/v1/plans/"+suite.planID, domain.RoleEmployee, nil)
		suite.Equal(http.StatusUnauthorized, w.Code)
		suite.Contains(w.Body.String(), "permission denied")
		suite.planService.AssertNotCalled(suite.T(), "DeletePlan", mock.Anything, mock.Anything, mock.Anything)
	})

	suite.Run("hr deletes", func() {
		suite.planService.On("DeletePlan", mock.Anything, suite.actor(domain.RoleHR), suite.planID).Return(nil).Once()
		w := suite.request(http.MethodDelete, "/api/v1/plans/"+suite.planID, domain.RoleHR, nil)
		suite.Equal(http.StatusNoContent, w.Code)
	})
}

func (suite *PlanHandlerTestSuite) TestTransitionPlan_ErrorMapping() {
	tests := []struct {
		name     string
		body     map[string]any
		svcErr   error
		wantCode int
	}{
		{name: "denied by matrix", body: map[string]any{"direction": "advance"}, svcErr: apperrors.ErrPermissionDenied, wantCode: http.StatusUnauthorized},
		{name: "out of range", body: map[string]any{"direction": "retreat"}, svcErr: apperrors.ErrInvalidState, wantCode: http.StatusUnprocessableEntity},
		{name: "stale expected stage", body: map[string]any{"direction": "advance", "expectedStage": 1}, svcErr: apperrors.ErrConflict, wantCode: http.StatusConflict},
		{name: "missing plan", body: map[string]any{"direction": "advance"}, svcErr: apperrors.ErrNotFound, wantCode: http.StatusNotFound},
		{name: "unexpected failure", body: map[string]any{"direction": "advance"}, svcErr: context.DeadlineExceeded, wantCode: http.StatusInternalServerError},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.planService.On("TransitionPlan", mock.Anything, suite.actor(domain.RoleEmployee), suite.planID,
				domain.Direction(tt.body["direction"].(string)), mock.Anything).Return(nil, tt.svcErr).Once()

			w := suite.request(http.MethodPost, "/api/v1/plans/"+suite.planID+"/transition", domain.RoleEmployee, tt.body)
			suite.Equal(tt.wantCode, w.Code)
		})
	}
}

func (suite *PlanHandlerTestSuite) TestTransitionPlan_Success() {
	suite.planService.On("TransitionPlan", mock.Anything, suite.actor(domain.RoleEmployee), suite.planID, domain.DirectionAdvance,
		mock.MatchedBy(func(s *domain.Stage) bool { return s != nil && *s == domain.StageEmployeeFilling })).
		Return(suite.planDetails(1), nil).Once()

	w := suite.request(http.MethodPost, "/api/v1/plans/"+suite.planID+"/transition", domain.RoleEmployee,
		map[string]any{"direction": "advance", "expectedStage": 0})
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"stage":1`)
	suite.Contains(w.Body.String(), `"allowedTransitions":[]`)
}

func (suite *PlanHandlerTestSuite) TestTransitionPlan_RejectsUnknownDirection() {
	w := suite.request(http.MethodPost, "/api/v1/plans/"+suite.planID+"/transition", domain.RoleHR, map[string]any{"direction": "sideways"})
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *PlanHandlerTestSuite) TestAddComment() {
	suite.planService.On("AddComment", mock.Anything, suite.actor(domain.RoleSupervisor), suite.planID, dto.CreateCommentRequest{Text: "Welcome aboard"}).
		Return(&domain.CommentDetails{
			Comment: domain.Comment{CommentID: "c1", PlanID: suite.planID, AuthorID: suite.supervisorID, Text: "Welcome aboard"},
			Author:  domain.User{UserID: suite.supervisorID, Name: "Sam", Role: domain.RoleSupervisor},
		}, nil).Once()

	w := suite.request(http.MethodPost, "/api/v1/plans/"+suite.planID+"/comments", domain.RoleSupervisor, map[string]any{"text": "Welcome aboard"})
	suite.Equal(http.StatusCreated, w.Code)
	suite.Contains(w.Body.String(), `"name":"Sam"`)
}

func (suite *PlanHandlerTestSuite) TestDeleteTask_EmployeeDenied() {
	w := suite.request(http.MethodDelete, "/api/v1/plans/"+suite.planID+"/tasks/t1", domain.RoleEmployee, nil)
	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.planService.AssertNotCalled(suite.T(), "DeleteTask", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PlanHandlerTestSuite) TestCreateUser_ValidatesRole() {
	w := suite.request(http.MethodPost, "/api/v1/users", domain.RoleHR, map[string]any{
		"username": "newbie", "password": "long-enough", "name": "New Bie", "role": "admin",
	})
	suite.Equal(http.StatusBadRequest, w.Code)

	suite.userService.On("CreateUser", mock.Anything, suite.actor(domain.RoleHR), mock.AnythingOfType("dto.CreateUserRequest")).
		Return(&domain.User{UserID: "u9", Username: "newbie", Role: domain.RoleEmployee}, nil).Once()
	w = suite.request(http.MethodPost, "/api/v1/users", domain.RoleHR, map[string]any{
		"username": "newbie", "password": "long-enough", "name": "New Bie", "role": "employee",
	})
	suite.Equal(http.StatusCreated, w.Code)
	suite.NotContains(w.Body.String(), "password")
}

func (suite *PlanHandlerTestSuite) TestLogin() {
	user := &domain.User{UserID: suite.hrID, Username: "hana", Role: domain.RoleHR}
	expires := time.Date(2026, 3, 2, 17, 0, 0, 0, time.UTC)

	suite.userService.On("AuthenticateUser", mock.Anything, "hana", "pw").Return(user, nil).Once()
	suite.tokenService.On("GenerateAccessToken", mock.Anything, user).Return("signed-token", expires, nil).Once()
	w := suite.request(http.MethodPost, "/api/v1/auth/login", "", map[string]any{"username": "hana", "password": "pw"})
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"token":"signed-token"`)

	suite.userService.On("AuthenticateUser", mock.Anything, "hana", "bad").Return(nil, apperrors.ErrUnauthorized).Once()
	w = suite.request(http.MethodPost, "/api/v1/auth/login", "", map[string]any{"username": "hana", "password": "bad"})
	suite.Equal(http.StatusUnauthorized, w.Code)
}
