package services_test

import (
	"context"

	"github.com/SscSPs/adaptation_plan_app/internal/core/domain"
	portsrepo "github.com/SscSPs/adaptation_plan_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// --- Mock PlanRepository ---
type MockPlanRepository struct {
	mock.Mock
}

var _ portsrepo.PlanRepositoryWithTx = (*MockPlanRepository)(nil)

func (m *MockPlanRepository) FindPlanByID(ctx context.Context, planID string) (*domain.PlanDetails, error) {
	args := m.Called(ctx, planID)
	var plan *domain.PlanDetails
	if args.Get(0) != nil {
		plan = args.Get(0).(*domain.PlanDetails)
	}
	return plan, args.Error(1)
}

func (m *MockPlanRepository) FindPlans(ctx context.Context, filter domain.PlanFilter) ([]domain.PlanDetails, int, error) {
	args := m.Called(ctx, filter)
	var plans []domain.PlanDetails
	if args.Get(0) != nil {
		plans = args.Get(0).([]domain.PlanDetails)
	}
	return plans, args.Int(1), args.Error(2)
}

func (m *MockPlanRepository) SavePlan(ctx context.Context, plan domain.Plan) error {
	args := m.Called(ctx, plan)
	return args.Error(0)
}

// UpdatePlanLocked feeds the stubbed current plan through mutate, the way the
// real repository does under its row lock.
func (m *MockPlanRepository) UpdatePlanLocked(ctx context.Context, planID string, mutate portsrepo.PlanMutator) (*domain.Plan, error) {
	args := m.Called(ctx, planID)
	if err := args.Error(1); err != nil {
		return nil, err
	}
	updated, err := mutate(args.Get(0).(domain.Plan))
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

func (m *MockPlanRepository) DeletePlan(ctx context.Context, planID string) error {
	args := m.Called(ctx, planID)
	return args.Error(0)
}

func (m *MockPlanRepository) Begin(ctx context.Context) (pgx.Tx, error) { return nil, nil }

func (m *MockPlanRepository) Commit(ctx context.Context, tx pgx.Tx) error { return nil }

func (m *MockPlanRepository) Rollback(ctx context.Context, tx pgx.Tx) error { return nil }

// --- Mock TaskRepository ---
type MockTaskRepository struct {
	mock.Mock
}

var _ portsrepo.TaskRepositoryFacade = (*MockTaskRepository)(nil)

func (m *MockTaskRepository) FindTaskByID(ctx context.Context, planID, taskID string) (*domain.Task, error) {
	args := m.Called(ctx, planID, taskID)
	var task *domain.Task
	if args.Get(0) != nil {
		task = args.Get(0).(*domain.Task)
	}
	return task, args.Error(1)
}

func (m *MockTaskRepository) FindTasksByPlanID(ctx context.Context, planID string) ([]domain.Task, error) {
	args := m.Called(ctx, planID)
	var tasks []domain.Task
	if args.Get(0) != nil {
		tasks = args.Get(0).([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *MockTaskRepository) SaveTask(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) UpdateTask(ctx context.Context, task domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *MockTaskRepository) DeleteTask(ctx context.Context, planID, taskID string) error {
	args := m.Called(ctx, planID, taskID)
	return args.Error(0)
}

// --- Mock CommentRepository ---
type MockCommentRepository struct {
	mock.Mock
}

var _ portsrepo.CommentRepositoryFacade = (*MockCommentRepository)(nil)

func (m *MockCommentRepository) FindCommentsByPlanID(ctx context.Context, planID string) ([]domain.CommentDetails, error) {
	args := m.Called(ctx, planID)
	var comments []domain.CommentDetails
	if args.Get(0) != nil {
		comments = args.Get(0).([]domain.CommentDetails)
	}
	return comments, args.Error(1)
}

func (m *MockCommentRepository) SaveComment(ctx context.Context, comment domain.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

// --- Mock PositionRepository ---
type MockPositionRepository struct {
	mock.Mock
}

var _ portsrepo.PositionRepositoryFacade = (*MockPositionRepository)(nil)

func (m *MockPositionRepository) FindPositionByID(ctx context.Context, positionID string) (*domain.Position, error) {
	args := m.Called(ctx, positionID)
	var position *domain.Position
	if args.Get(0) != nil {
		position = args.Get(0).(*domain.Position)
	}
	return position, args.Error(1)
}

func (m *MockPositionRepository) ListPositions(ctx context.Context) ([]domain.Position, error) {
	args := m.Called(ctx)
	var positions []domain.Position
	if args.Get(0) != nil {
		positions = args.Get(0).([]domain.Position)
	}
	return positions, args.Error(1)
}

func (m *MockPositionRepository) SavePosition(ctx context.Context, position domain.Position) error {
	args := m.Called(ctx, position)
	return args.Error(0)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context, filter portsrepo.UserFilter) ([]domain.User, error) {
	args := m.Called(ctx, filter)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
