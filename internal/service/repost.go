package service

import (
	"context"
	"errors"
	"fmt"

	"repostapi/internal/model"
	"repostapi/internal/repository"
)

var (
	ErrInvalidThreadID  = errors.New("thread id must be positive")
	ErrInvalidAccountID = errors.New("account id must be positive")
)

// RepostResult reports how many rows a write touched.
type RepostResult struct {
	RowsAffected int64 `json:"rows_affected"`
}

// RepostListResult is the service-level DTO for a thread's reposts.
type RepostListResult struct {
	Items []model.Repost `json:"data"`
	Total int            `json:"total"`
}

// RepostService defines the use cases for handling reposts.
type RepostService interface {
	// Repost records that accountID reposted threadID.
	Repost(ctx context.Context, threadID model.ThreadID, accountID model.AccountID) (*RepostResult, error)

	// Unrepost removes every repost of threadID by accountID. Removing a repost
	// that does not exist succeeds with zero rows affected.
	Unrepost(ctx context.Context, threadID model.ThreadID, accountID model.AccountID) (*RepostResult, error)

	// List returns all reposts of threadID in no particular order.
	List(ctx context.Context, threadID model.ThreadID) (*RepostListResult, error)
}

type repostService struct {
	repo repository.RepostRepository
}

// NewRepostService constructs a new RepostService.
func NewRepostService(repo repository.RepostRepository) RepostService {
	return &repostService{repo: repo}
}

func validatePair(threadID model.ThreadID, accountID model.AccountID) error {
	if threadID <= 0 {
		return ErrInvalidThreadID
	}
	if accountID <= 0 {
		return ErrInvalidAccountID
	}
	return nil
}

func (s *repostService) Repost(ctx context.Context, threadID model.ThreadID, accountID model.AccountID) (*RepostResult, error) {
	if err := validatePair(threadID, accountID); err != nil {
		return nil, err
	}
	res, err := s.repo.Add(ctx, threadID, accountID)
	if err != nil {
		return nil, fmt.Errorf("add repost: %w", err)
	}
	return &RepostResult{RowsAffected: res.RowsAffected}, nil
}

func (s *repostService) Unrepost(ctx context.Context, threadID model.ThreadID, accountID model.AccountID) (*RepostResult, error) {
	if err := validatePair(threadID, accountID); err != nil {
		return nil, err
	}
	res, err := s.repo.Remove(ctx, threadID, accountID)
	if err != nil {
		return nil, fmt.Errorf("remove repost: %w", err)
	}
	return &RepostResult{RowsAffected: res.RowsAffected}, nil
}

func (s *repostService) List(ctx context.Context, threadID model.ThreadID) (*RepostListResult, error) {
	if threadID <= 0 {
		return nil, ErrInvalidThreadID
	}
	items, err := s.repo.GetAllReposts(ctx, threadID)
	if err != nil {
		return nil, fmt.Errorf("list reposts: %w", err)
	}
	if items == nil {
		items = []model.Repost{}
	}
	return &RepostListResult{Items: items, Total: len(items)}, nil
}
