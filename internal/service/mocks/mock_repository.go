package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of database.Repository
type MockRepository[T any] struct {
	mock.Mock
}

func (m *MockRepository[T]) ReadAll(ctx context.Context) ([]T, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockRepository[T]) WriteAll(ctx context.Context, items []T) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}
