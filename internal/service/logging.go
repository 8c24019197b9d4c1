package service

import (
	"context"
	"time"

	"github.com/guttosm/label-service/internal/domain/model"
	"github.com/guttosm/label-service/internal/repository"
)

// Query limits for audit log reads.
const (
	DefaultLogQueryLimit = 100
	MaxLogQueryLimit     = 1000
)

// LoggingService stores and queries audit and request log entries.
type LoggingService interface {
	CreateLog(ctx context.Context, entry *model.LogEntry) error
	CreateLogs(ctx context.Context, entries []*model.LogEntry) error
	QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error)
	CountLogs(ctx context.Context, opts model.LogQueryOptions) (int64, error)
}

// LoggingServiceImpl implements LoggingService on top of a logs repository.
type LoggingServiceImpl struct {
	repo repository.LogsRepositoryInterface
}

// NewLoggingService creates a new logging service implementation.
func NewLoggingService(repo repository.LogsRepositoryInterface) LoggingService {
	return &LoggingServiceImpl{
		repo: repo,
	}
}

// CreateLog stores a single log entry.
func (s *LoggingServiceImpl) CreateLog(ctx context.Context, entry *model.LogEntry) error {
	if entry == nil {
		return nil
	}
	stamp(entry)
	return s.repo.Create(ctx, entry)
}

// CreateLogs stores entries in bulk, skipping nils.
func (s *LoggingServiceImpl) CreateLogs(ctx context.Context, entries []*model.LogEntry) error {
	batch := make([]*model.LogEntry, 0, len(entries))
	for _, entry := range entries {
		if entry != nil {
			stamp(entry)
			batch = append(batch, entry)
		}
	}
	if len(batch) == 0 {
		return nil
	}
	return s.repo.CreateMany(ctx, batch)
}

// QueryLogs returns matching entries, newest first.
func (s *LoggingServiceImpl) QueryLogs(ctx context.Context, opts model.LogQueryOptions) ([]model.LogEntry, error) {
	return s.repo.Query(ctx, clampQuery(opts))
}

// CountLogs counts matching entries. Paging options are ignored.
func (s *LoggingServiceImpl) CountLogs(ctx context.Context, opts model.LogQueryOptions) (int64, error) {
	opts.Limit, opts.Skip = 0, 0
	return s.repo.Count(ctx, opts)
}

func stamp(entry *model.LogEntry) {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
	if entry.Level == "" {
		entry.Level = "info"
	}
}

func clampQuery(opts model.LogQueryOptions) model.LogQueryOptions {
	switch {
	case opts.Limit <= 0:
		opts.Limit = DefaultLogQueryLimit
	case opts.Limit > MaxLogQueryLimit:
		opts.Limit = MaxLogQueryLimit
	}
	if opts.Skip < 0 {
		opts.Skip = 0
	}
	return opts
}

// AuditSink receives workflow audit entries without blocking the caller. It
// returns false when the entry was dropped.
type AuditSink interface {
	Log(entry *model.LogEntry) bool
}

// Actor identifies who issued a command and through which request.
type Actor struct {
	RequestID string
	Operator  string
}

type actorKey struct{}

// WithActor attaches the request ID and operator to ctx for audit entries.
func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFrom returns the actor attached to ctx, if any.
func ActorFrom(ctx context.Context) Actor {
	actor, _ := ctx.Value(actorKey{}).(Actor)
	return actor
}

// newAuditEntry builds an audit entry for a workflow event.
func newAuditEntry(ctx context.Context, level, action, message string, w *model.Workflow) *model.LogEntry {
	actor := ActorFrom(ctx)
	entry := &model.LogEntry{
		Timestamp:  time.Now().UTC(),
		Level:      level,
		Message:    message,
		RequestID:  actor.RequestID,
		Operator:   actor.Operator,
		ActionType: action,
	}
	if w != nil {
		entry.WorkflowID = w.ID
		entry.ContextKey = w.ContextKey
	}
	return entry
}
