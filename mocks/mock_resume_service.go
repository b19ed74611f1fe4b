package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"resumehub/internal/domain"
)

// MockResumeService is a testify mock for service.ResumeService.
type MockResumeService struct {
	mock.Mock
}

func (m *MockResumeService) ParseFile(ctx context.Context, fileID uuid.UUID) (*domain.ParseEvent, error) {
	args := m.Called(ctx, fileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ParseEvent), args.Error(1)
}

func (m *MockResumeService) GetLatest(ctx context.Context) (map[string]any, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

func (m *MockResumeService) GetAll(ctx context.Context) ([]map[string]any, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]map[string]any), args.Error(1)
}

func (m *MockResumeService) GetByID(ctx context.Context, id uuid.UUID) (map[string]any, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

func (m *MockResumeService) Save(ctx context.Context, record map[string]any) (uuid.UUID, error) {
	args := m.Called(ctx, record)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockResumeService) Update(ctx context.Context, id uuid.UUID, record map[string]any) error {
	args := m.Called(ctx, id, record)
	return args.Error(0)
}

func (m *MockResumeService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
