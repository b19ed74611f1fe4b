package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"
)

// MockFileStore is a testify mock for port.FileStore.
type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) Save(ctx context.Context, relPath string, r io.Reader) (int64, error) {
	args := m.Called(ctx, relPath, r)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFileStore) Open(ctx context.Context, relPath string) (io.ReadCloser, error) {
	args := m.Called(ctx, relPath)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

func (m *MockFileStore) Delete(ctx context.Context, relPath string) error {
	args := m.Called(ctx, relPath)
	return args.Error(0)
}

func (m *MockFileStore) Exists(ctx context.Context, relPath string) bool {
	args := m.Called(ctx, relPath)
	return args.Bool(0)
}

func (m *MockFileStore) RemoveDir(ctx context.Context, relDir string) error {
	args := m.Called(ctx, relDir)
	return args.Error(0)
}

func (m *MockFileStore) TotalSize(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
