// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/label-service/internal/domain/dto"
	"github.com/guttosm/label-service/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockCounterSource struct {
	mock.Mock
}

func (m *MockCounterSource) NextCounter(ctx context.Context, contextKey string, count int) (int64, error) {
	args := m.Called(ctx, contextKey, count)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCounterSource) Peek(ctx context.Context, contextKey string) (int64, error) {
	args := m.Called(ctx, contextKey)
	return args.Get(0).(int64), args.Error(1)
}

type MockPrintBatchService struct {
	mock.Mock
}

func (m *MockPrintBatchService) Submit(ctx context.Context, batch *model.PrintBatch) (model.SubmitResult, error) {
	args := m.Called(ctx, batch)
	return args.Get(0).(model.SubmitResult), args.Error(1)
}

func (m *MockPrintBatchService) Get(ctx context.Context, id string) (*model.PrintBatch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PrintBatch), args.Error(1)
}

func (m *MockPrintBatchService) List(ctx context.Context, contextKey string, limit int) ([]model.PrintBatch, error) {
	args := m.Called(ctx, contextKey, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PrintBatch), args.Error(1)
}

type MockWorkflowService struct {
	mock.Mock
}

func (m *MockWorkflowService) Create(ctx context.Context, contextParts []string) (model.Workflow, error) {
	args := m.Called(ctx, contextParts)
	return args.Get(0).(model.Workflow), args.Error(1)
}

func (m *MockWorkflowService) Get(ctx context.Context, id string) (model.Workflow, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Workflow), args.Error(1)
}

func (m *MockWorkflowService) Generate(ctx context.Context, id string, request model.AllocationRequest) (model.Workflow, error) {
	args := m.Called(ctx, id, request)
	return args.Get(0).(model.Workflow), args.Error(1)
}

func (m *MockWorkflowService) EditQuantity(ctx context.Context, id string, index, quantity int) (model.Workflow, error) {
	args := m.Called(ctx, id, index, quantity)
	return args.Get(0).(model.Workflow), args.Error(1)
}

func (m *MockWorkflowService) Validate(ctx context.Context, id string) (model.Workflow, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Workflow), args.Error(1)
}

func (m *MockWorkflowService) Submit(ctx context.Context, id string, metadata map[string]string) (model.Workflow, model.SubmitResult, error) {
	args := m.Called(ctx, id, metadata)
	return args.Get(0).(model.Workflow), args.Get(1).(model.SubmitResult), args.Error(2)
}

func (m *MockWorkflowService) Reset(ctx context.Context, id string) (model.Workflow, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Workflow), args.Error(1)
}

func (m *MockWorkflowService) Cancel(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockLoggingService struct {
	mock.Mock
}

func (m *MockLoggingService) CreateLog(ctx context.Context, entry *model.LogEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockLoggingService) CreateLogs(ctx context.Context, entries []*model.LogEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockLoggingService) QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.LogEntry), args.Error(1)
}

func (m *MockLoggingService) CountLogs(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(int64), args.Error(1)
}

type MockTokenVerifier struct {
	mock.Mock
}

func (m *MockTokenVerifier) Verify(tokenString string) (*dto.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.Claims), args.Error(1)
}

type MockAuditSink struct {
	mock.Mock
}

func (m *MockAuditSink) Log(entry *model.LogEntry) bool {
	args := m.Called(entry)
	return args.Bool(0)
}
