// Code generated manually. DO NOT EDIT.

// Package mocks holds testify mocks for the repository and service interfaces.
package mocks

import (
	"context"

	"github.com/guttosm/label-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockCounterRepositoryInterface struct {
	mock.Mock
}

func (m *MockCounterRepositoryInterface) NextCounter(ctx context.Context, key string, count int) (int64, error) {
	args := m.Called(ctx, key, count)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCounterRepositoryInterface) Peek(ctx context.Context, key string) (int64, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(int64), args.Error(1)
}

type MockPrintBatchRepositoryInterface struct {
	mock.Mock
}

func (m *MockPrintBatchRepositoryInterface) Create(ctx context.Context, batch *model.PrintBatch) error {
	args := m.Called(ctx, batch)
	return args.Error(0)
}

func (m *MockPrintBatchRepositoryInterface) Get(ctx context.Context, id string) (*model.PrintBatch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PrintBatch), args.Error(1)
}

func (m *MockPrintBatchRepositoryInterface) List(ctx context.Context, contextKey string, limit int) ([]model.PrintBatch, error) {
	args := m.Called(ctx, contextKey, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PrintBatch), args.Error(1)
}

type MockLogsRepositoryInterface struct {
	mock.Mock
}

func (m *MockLogsRepositoryInterface) Create(ctx context.Context, entry *model.LogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLogsRepositoryInterface) CreateMany(ctx context.Context, entries []*model.LogEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockLogsRepositoryInterface) Query(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LogEntry), args.Error(1)
}

func (m *MockLogsRepositoryInterface) Count(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(int64), args.Error(1)
}
