package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"repostapi/internal/model"
	"repostapi/internal/service"
)

type MockRepostService struct {
	mock.Mock
}

func (m *MockRepostService) Repost(ctx context.Context, threadID model.ThreadID, accountID model.AccountID) (*service.RepostResult, error) {
	args := m.Called(ctx, threadID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RepostResult), args.Error(1)
}

func (m *MockRepostService) Unrepost(ctx context.Context, threadID model.ThreadID, accountID model.AccountID) (*service.RepostResult, error) {
	args := m.Called(ctx, threadID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RepostResult), args.Error(1)
}

func (m *MockRepostService) List(ctx context.Context, threadID model.ThreadID) (*service.RepostListResult, error) {
	args := m.Called(ctx, threadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.RepostListResult), args.Error(1)
}
