package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"repostapi/internal/model"
	"repostapi/internal/repository"
)

type MockRepostRepository struct {
	mock.Mock
}

func (m *MockRepostRepository) Add(ctx context.Context, threadID model.ThreadID, accountID model.AccountID) (repository.Result, error) {
	args := m.Called(ctx, threadID, accountID)
	return args.Get(0).(repository.Result), args.Error(1)
}

func (m *MockRepostRepository) Remove(ctx context.Context, threadID model.ThreadID, accountID model.AccountID) (repository.Result, error) {
	args := m.Called(ctx, threadID, accountID)
	return args.Get(0).(repository.Result), args.Error(1)
}

func (m *MockRepostRepository) GetAllReposts(ctx context.Context, threadID model.ThreadID) ([]model.Repost, error) {
	args := m.Called(ctx, threadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Repost), args.Error(1)
}
