// Package dto defines Data Transfer Objects for HTTP request and response handling.
//
// DTOs decouple the HTTP layer from the domain model. Quantity rules are left to
// the allocation engine so every caller gets the same ValidationError messages.
package dto

import (
	"fmt"
	"strings"

	"github.com/guttosm/label-service/internal/domain/model"
)

// PreviewAllocationRequest runs the allocation engine without a workflow.
//
// @Description Stateless allocation preview
// @Example {"total_quantity": 100, "label_count": 3, "serial_prefix_parts": ["GRN-1001", "RM-42"], "starting_counter": 41, "strategy": "remainder_on_last"}
type PreviewAllocationRequest struct {
	TotalQuantity     int      `json:"total_quantity" example:"100"`
	LabelCount        int      `json:"label_count" example:"3"`
	SerialPrefixParts []string `json:"serial_prefix_parts" example:"GRN-1001,RM-42"`
	StartingCounter   int64    `json:"starting_counter" binding:"gte=0" example:"41"`
	// Strategy is optional; the server default applies when empty
	Strategy string `json:"strategy,omitempty" example:"remainder_on_last"`
} // @name PreviewAllocationRequest

// ToModel converts the request, falling back to defaultStrategy.
func (r *PreviewAllocationRequest) ToModel(defaultStrategy model.Strategy) (model.AllocationRequest, error) {
	strategy, err := resolveStrategy(r.Strategy, defaultStrategy)
	if err != nil {
		return model.AllocationRequest{}, err
	}
	return model.AllocationRequest{
		TotalQuantity:     r.TotalQuantity,
		LabelCount:        r.LabelCount,
		SerialPrefixParts: trimParts(r.SerialPrefixParts),
		StartingCounter:   r.StartingCounter,
		Strategy:          strategy,
	}, nil
}

// CreateWorkflowRequest opens a print workflow for one record.
//
// @Description Request to open a print workflow
// @Example {"context_parts": ["GRN-1001", "RM-42"]}
type CreateWorkflowRequest struct {
	// ContextParts identify the record (GRN + product, or order + material + batch).
	// They scope the serial counter.
	ContextParts []string `json:"context_parts" binding:"required,min=1" example:"GRN-1001,RM-42"`
} // @name CreateWorkflowRequest

// Parts returns the trimmed, non-empty context parts.
func (r *CreateWorkflowRequest) Parts() []string {
	return trimParts(r.ContextParts)
}

// ContextKey returns the counter scope for the workflow.
func (r *CreateWorkflowRequest) ContextKey() string {
	return model.BuildContextKey(r.ContextParts...)
}

// Validate ensures at least one non-blank context part was sent.
func (r *CreateWorkflowRequest) Validate() error {
	if r.ContextKey() == "" {
		return ErrEmptyContextKey
	}
	return nil
}

// GenerateRequest asks a workflow to generate allocations. The starting counter is
// always fetched server side.
//
// @Description Request to generate label allocations
// @Example {"total_quantity": 100, "label_count": 3, "strategy": "remainder_spread_first"}
type GenerateRequest struct {
	TotalQuantity int `json:"total_quantity" example:"100"`
	LabelCount    int `json:"label_count" example:"3"`
	// SerialPrefixParts defaults to the workflow context parts when empty
	SerialPrefixParts []string `json:"serial_prefix_parts,omitempty" example:"GRN-1001,RM-42"`
	Strategy          string   `json:"strategy,omitempty" example:"remainder_spread_first"`
} // @name GenerateRequest

// ToModel converts the request. An empty prefix is left empty so the workflow
// can substitute its own context parts.
func (r *GenerateRequest) ToModel(defaultStrategy model.Strategy) (model.AllocationRequest, error) {
	strategy, err := resolveStrategy(r.Strategy, defaultStrategy)
	if err != nil {
		return model.AllocationRequest{}, err
	}
	return model.AllocationRequest{
		TotalQuantity:     r.TotalQuantity,
		LabelCount:        r.LabelCount,
		SerialPrefixParts: trimParts(r.SerialPrefixParts),
		Strategy:          strategy,
	}, nil
}

// EditQuantityRequest replaces the quantity of one label.
//
// @Description Request to edit one label quantity
// @Example {"quantity": 15}
type EditQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required" example:"15"`
} // @name EditQuantityRequest

// SubmitRequest carries the print metadata handed to the submission sink.
//
// @Description Request to submit a validated allocation batch
// @Example {"metadata": {"printer": "zebra-02", "grn_no": "GRN-1001"}}
type SubmitRequest struct {
	Metadata map[string]string `json:"metadata,omitempty"`
} // @name SubmitRequest

// RequestError is a malformed request field that never reached the engine.
type RequestError struct {
	Field   string
	Message string
}

// Error returns "field: message".
func (e *RequestError) Error() string {
	return e.Field + ": " + e.Message
}

var (
	// ErrEmptyContextKey is returned when no usable context part was sent.
	ErrEmptyContextKey = &RequestError{
		Field:   "context_parts",
		Message: "must contain at least one non-empty value",
	}
)

func resolveStrategy(raw string, fallback model.Strategy) (model.Strategy, error) {
	if strings.TrimSpace(raw) == "" {
		if !fallback.Valid() {
			return model.StrategyRemainderOnLast, nil
		}
		return fallback, nil
	}
	s, err := model.ParseStrategy(raw)
	if err != nil {
		return "", &RequestError{Field: "strategy", Message: fmt.Sprintf("unknown value %q", raw)}
	}
	return s, nil
}

func trimParts(parts []string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
