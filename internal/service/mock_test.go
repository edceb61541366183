package service

import (
	"context"

	"github.com/google/uuid"

	"startup-hub-api/internal/domain"
)

// MockContestRepository is a mock implementation of ContestRepository
type MockContestRepository struct {
	CreateFunc   func(ctx context.Context, contest *domain.Contest) error
	FindAllFunc  func(ctx context.Context, includeInactive bool) ([]domain.Contest, error)
	FindByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Contest, error)
	UpdateFunc   func(ctx context.Context, contest *domain.Contest) error
	DeleteFunc   func(ctx context.Context, id uuid.UUID) error
	CountFunc    func(ctx context.Context) (int64, error)
}

func (m *MockContestRepository) Create(ctx context.Context, contest *domain.Contest) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, contest)
	}
	return nil
}

func (m *MockContestRepository) FindAll(ctx context.Context, includeInactive bool) ([]domain.Contest, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, includeInactive)
	}
	return nil, nil
}

func (m *MockContestRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Contest, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockContestRepository) Update(ctx context.Context, contest *domain.Contest) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, contest)
	}
	return nil
}

func (m *MockContestRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockContestRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockEventRepository is a mock implementation of EventRepository
type MockEventRepository struct {
	CreateFunc   func(ctx context.Context, event *domain.Event) error
	FindAllFunc  func(ctx context.Context, includeInactive bool) ([]domain.Event, error)
	FindByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Event, error)
	UpdateFunc   func(ctx context.Context, event *domain.Event) error
	DeleteFunc   func(ctx context.Context, id uuid.UUID) error
	CountFunc    func(ctx context.Context) (int64, error)
}

func (m *MockEventRepository) Create(ctx context.Context, event *domain.Event) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, event)
	}
	return nil
}

func (m *MockEventRepository) FindAll(ctx context.Context, includeInactive bool) ([]domain.Event, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, includeInactive)
	}
	return nil, nil
}

func (m *MockEventRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Event, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockEventRepository) Update(ctx context.Context, event *domain.Event) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, event)
	}
	return nil
}

func (m *MockEventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockEventRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockStartupBoardRepository is a mock implementation of StartupBoardRepository
type MockStartupBoardRepository struct {
	CreateFunc   func(ctx context.Context, board *domain.StartupBoard) error
	FindAllFunc  func(ctx context.Context, includeInactive bool) ([]domain.StartupBoard, error)
	FindByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.StartupBoard, error)
	UpdateFunc   func(ctx context.Context, board *domain.StartupBoard) error
	DeleteFunc   func(ctx context.Context, id uuid.UUID) error
	CountFunc    func(ctx context.Context) (int64, error)
}

func (m *MockStartupBoardRepository) Create(ctx context.Context, board *domain.StartupBoard) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, board)
	}
	return nil
}

func (m *MockStartupBoardRepository) FindAll(ctx context.Context, includeInactive bool) ([]domain.StartupBoard, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, includeInactive)
	}
	return nil, nil
}

func (m *MockStartupBoardRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.StartupBoard, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockStartupBoardRepository) Update(ctx context.Context, board *domain.StartupBoard) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, board)
	}
	return nil
}

func (m *MockStartupBoardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockStartupBoardRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockBoardLikeRepository is a mock implementation of BoardLikeRepository
type MockBoardLikeRepository struct {
	FindByBoardAndClientFunc func(ctx context.Context, boardID uuid.UUID, clientID string) (*domain.BoardLike, error)
	CreateFunc               func(ctx context.Context, like *domain.BoardLike) error
	DeleteFunc               func(ctx context.Context, id uuid.UUID) error
	CountByBoardFunc         func(ctx context.Context, boardID uuid.UUID) (int64, error)
}

func (m *MockBoardLikeRepository) FindByBoardAndClient(ctx context.Context, boardID uuid.UUID, clientID string) (*domain.BoardLike, error) {
	if m.FindByBoardAndClientFunc != nil {
		return m.FindByBoardAndClientFunc(ctx, boardID, clientID)
	}
	return nil, nil
}

func (m *MockBoardLikeRepository) Create(ctx context.Context, like *domain.BoardLike) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, like)
	}
	return nil
}

func (m *MockBoardLikeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockBoardLikeRepository) CountByBoard(ctx context.Context, boardID uuid.UUID) (int64, error) {
	if m.CountByBoardFunc != nil {
		return m.CountByBoardFunc(ctx, boardID)
	}
	return 0, nil
}

// MockWorkspaceRepository is a mock implementation of WorkspaceRepository
type MockWorkspaceRepository struct {
	CreateFunc    func(ctx context.Context, workspace *domain.Workspace) error
	FindAllFunc   func(ctx context.Context, includeInactive bool) ([]domain.Workspace, error)
	FindByIDFunc  func(ctx context.Context, id uuid.UUID) (*domain.Workspace, error)
	FindByIDsFunc func(ctx context.Context, ids []uuid.UUID) ([]domain.Workspace, error)
	UpdateFunc    func(ctx context.Context, workspace *domain.Workspace) error
	DeleteFunc    func(ctx context.Context, id uuid.UUID) error
	CountFunc     func(ctx context.Context) (int64, error)
}

func (m *MockWorkspaceRepository) Create(ctx context.Context, workspace *domain.Workspace) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, workspace)
	}
	return nil
}

func (m *MockWorkspaceRepository) FindAll(ctx context.Context, includeInactive bool) ([]domain.Workspace, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx, includeInactive)
	}
	return nil, nil
}

func (m *MockWorkspaceRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Workspace, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockWorkspaceRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Workspace, error) {
	if m.FindByIDsFunc != nil {
		return m.FindByIDsFunc(ctx, ids)
	}
	return nil, nil
}

func (m *MockWorkspaceRepository) Update(ctx context.Context, workspace *domain.Workspace) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, workspace)
	}
	return nil
}

func (m *MockWorkspaceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockWorkspaceRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockWorkspaceLikeRepository is a mock implementation of WorkspaceLikeRepository
type MockWorkspaceLikeRepository struct {
	FindByWorkspaceAndClientFunc func(ctx context.Context, workspaceID uuid.UUID, clientID string) (*domain.WorkspaceLike, error)
	CreateFunc                   func(ctx context.Context, like *domain.WorkspaceLike) error
	DeleteFunc                   func(ctx context.Context, id uuid.UUID) error
	CountByWorkspaceFunc         func(ctx context.Context, workspaceID uuid.UUID) (int64, error)
	FindAllOrderedFunc           func(ctx context.Context) ([]domain.WorkspaceLike, error)
}

func (m *MockWorkspaceLikeRepository) FindByWorkspaceAndClient(ctx context.Context, workspaceID uuid.UUID, clientID string) (*domain.WorkspaceLike, error) {
	if m.FindByWorkspaceAndClientFunc != nil {
		return m.FindByWorkspaceAndClientFunc(ctx, workspaceID, clientID)
	}
	return nil, nil
}

func (m *MockWorkspaceLikeRepository) Create(ctx context.Context, like *domain.WorkspaceLike) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, like)
	}
	return nil
}

func (m *MockWorkspaceLikeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockWorkspaceLikeRepository) CountByWorkspace(ctx context.Context, workspaceID uuid.UUID) (int64, error) {
	if m.CountByWorkspaceFunc != nil {
		return m.CountByWorkspaceFunc(ctx, workspaceID)
	}
	return 0, nil
}

func (m *MockWorkspaceLikeRepository) FindAllOrdered(ctx context.Context) ([]domain.WorkspaceLike, error) {
	if m.FindAllOrderedFunc != nil {
		return m.FindAllOrderedFunc(ctx)
	}
	return nil, nil
}
