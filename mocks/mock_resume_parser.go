package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockResumeParser is a testify mock for port.ResumeParser.
type MockResumeParser struct {
	mock.Mock
}

func (m *MockResumeParser) Parse(ctx context.Context, fileName string, content []byte) (map[string]any, error) {
	args := m.Called(ctx, fileName, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}
