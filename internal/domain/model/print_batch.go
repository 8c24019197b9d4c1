package model

import "time"

// PrintBatch is a validated allocation set accepted for printing.
//
// @Description Submitted label print batch
type PrintBatch struct {
	ID            string            `json:"id" bson:"_id" example:"9b2f6c1e-1a7d-4a3a-8f0e-2d5c6b7a8e90"`
	WorkflowID    string            `json:"workflow_id" bson:"workflow_id"`
	ContextKey    string            `json:"context_key" bson:"context_key" example:"GRN-1001|RM-42"`
	TotalQuantity int               `json:"total_quantity" bson:"total_quantity" example:"100"`
	LabelCount    int               `json:"label_count" bson:"label_count" example:"3"`
	Strategy      Strategy          `json:"strategy" bson:"strategy"`
	Labels        []LabelAllocation `json:"labels" bson:"labels"`
	Metadata      map[string]string `json:"metadata,omitempty" bson:"metadata,omitempty"`
	SubmittedBy   string            `json:"submitted_by,omitempty" bson:"submitted_by,omitempty"`
	CreatedAt     time.Time         `json:"created_at" bson:"created_at"`
}

// SubmitResult is the tagged outcome returned by a submission sink.
type SubmitResult struct {
	Success bool   `json:"success"`
	BatchID string `json:"batch_id,omitempty"`
	Message string `json:"message,omitempty"`
}
