package http

import (
	"context"

	"bakery/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/mock"
)

type MockCommandHandler[C any] struct{ mock.Mock }

func (m *MockCommandHandler[C]) Handle(ctx context.Context, cmd C) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockQueryHandler[Q, R any] struct{ mock.Mock }

func (m *MockQueryHandler[Q, R]) Handle(ctx context.Context, query Q) (R, error) {
	args := m.Called(ctx, query)
	var result R
	if v := args.Get(0); v != nil {
		result = v.(R)
	}
	return result, args.Error(1)
}

type MockReportHandler[R any] struct{ mock.Mock }

func (m *MockReportHandler[R]) Handle(ctx context.Context) (R, error) {
	args := m.Called(ctx)
	var result R
	if v := args.Get(0); v != nil {
		result = v.(R)
	}
	return result, args.Error(1)
}

type MockCRUDHandler[C any] struct{ mock.Mock }

func (m *MockCRUDHandler[C]) Create(ctx context.Context, cmd C) error {
	return m.Called(ctx, cmd).Error(0)
}

func (m *MockCRUDHandler[C]) Update(ctx context.Context, cmd C) error {
	return m.Called(ctx, cmd).Error(0)
}

func (m *MockCRUDHandler[C]) Delete(ctx context.Context, cmd commands.DeleteByIDCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockPinger struct{ mock.Mock }

func (m *MockPinger) PingContext(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}
