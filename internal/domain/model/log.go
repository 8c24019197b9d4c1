package model

import "time"

// Audit action types recorded for print workflows.
const (
	ActionWorkflowCreated = "workflow_created"
	ActionGenerate        = "generate"
	ActionEditQuantity    = "edit_quantity"
	ActionEditRejected    = "edit_rejected"
	ActionReconcileFailed = "reconcile_failed"
	ActionSubmit          = "submit"
	ActionReset           = "reset"
	ActionCancel          = "cancel"
	ActionPreview         = "preview"
)

// LogEntry is an HTTP or audit log record. Context-specific data goes to Fields.
type LogEntry struct {
	ID         string                 `bson:"_id,omitempty" json:"id"`
	Timestamp  time.Time              `bson:"timestamp" json:"timestamp"`
	Level      string                 `bson:"level" json:"level"`
	Message    string                 `bson:"message" json:"message"`
	RequestID  string                 `bson:"request_id,omitempty" json:"request_id,omitempty"`
	Method     string                 `bson:"method,omitempty" json:"method,omitempty"`
	Path       string                 `bson:"path,omitempty" json:"path,omitempty"`
	StatusCode int                    `bson:"status_code,omitempty" json:"status_code,omitempty"`
	Duration   int64                  `bson:"duration_ms,omitempty" json:"duration_ms,omitempty"`
	IP         string                 `bson:"ip,omitempty" json:"ip,omitempty"`
	UserAgent  string                 `bson:"user_agent,omitempty" json:"user_agent,omitempty"`
	Error      string                 `bson:"error,omitempty" json:"error,omitempty"`
	Operator   string                 `bson:"operator,omitempty" json:"operator,omitempty"`
	WorkflowID string                 `bson:"workflow_id,omitempty" json:"workflow_id,omitempty"`
	ContextKey string                 `bson:"context_key,omitempty" json:"context_key,omitempty"`
	ActionType string                 `bson:"action_type,omitempty" json:"action_type,omitempty"`
	Fields     map[string]interface{} `bson:"fields,omitempty" json:"fields,omitempty"`
}

// WithField adds a field to the entry, initialising Fields when needed.
func (e *LogEntry) WithField(key string, value interface{}) *LogEntry {
	if e.Fields == nil {
		e.Fields = make(map[string]interface{})
	}
	e.Fields[key] = value
	return e
}

// WithFields merges fields into the entry.
func (e *LogEntry) WithFields(fields map[string]interface{}) *LogEntry {
	if e.Fields == nil {
		e.Fields = make(map[string]interface{})
	}
	for k, v := range fields {
		e.Fields[k] = v
	}
	return e
}

// LogQueryOptions filters audit log queries.
type LogQueryOptions struct {
	RequestID  string
	Level      string
	WorkflowID string
	ContextKey string
	ActionType string
	StartTime  *time.Time
	EndTime    *time.Time
	Limit      int
	Skip       int
}
