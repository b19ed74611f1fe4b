package mocks

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"resumehub/internal/domain"
)

// MockParseEventRepo is a testify mock for port.ParseEventRepository.
type MockParseEventRepo struct {
	mock.Mock
}

func (m *MockParseEventRepo) Create(ctx context.Context, event *domain.ParseEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockParseEventRepo) GetLatest(ctx context.Context) (*domain.ParseEvent, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ParseEvent), args.Error(1)
}

func (m *MockParseEventRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.ParseEvent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ParseEvent), args.Error(1)
}

func (m *MockParseEventRepo) List(ctx context.Context) ([]domain.ParseEvent, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ParseEvent), args.Error(1)
}

func (m *MockParseEventRepo) UpdateMapped(ctx context.Context, id uuid.UUID, mapped json.RawMessage) error {
	args := m.Called(ctx, id, mapped)
	return args.Error(0)
}

func (m *MockParseEventRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
