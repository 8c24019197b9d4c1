// Package model defines the core domain entities for the label service.
package model

import (
	"fmt"
	"strconv"
	"strings"
)

// SerialDelimiter separates the prefix parts and the counter inside a serial number.
const SerialDelimiter = "|"

// Strategy selects where the division remainder lands when a quantity is split
// across labels.
type Strategy string

const (
	// StrategyRemainderOnLast gives every label the floor share and adds the whole
	// remainder to the last label.
	StrategyRemainderOnLast Strategy = "remainder_on_last"
	// StrategyRemainderSpreadFirst adds one unit of the remainder to each of the
	// first labels, so quantities differ by at most one.
	StrategyRemainderSpreadFirst Strategy = "remainder_spread_first"
)

// Strategies lists every supported strategy.
var Strategies = []Strategy{StrategyRemainderOnLast, StrategyRemainderSpreadFirst}

// Valid reports whether s is a known strategy.
func (s Strategy) Valid() bool {
	switch s {
	case StrategyRemainderOnLast, StrategyRemainderSpreadFirst:
		return true
	}
	return false
}

// ParseStrategy maps user input (full names or the short aliases used by the
// CLI) to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(StrategyRemainderOnLast), "last", "a":
		return StrategyRemainderOnLast, nil
	case string(StrategyRemainderSpreadFirst), "spread", "first", "b":
		return StrategyRemainderSpreadFirst, nil
	}
	return "", fmt.Errorf("unknown allocation strategy %q", s)
}

// AllocationRequest is the input of a single allocation run.
//
// @Description Quantity split request
type AllocationRequest struct {
	// TotalQuantity is the quantity to distribute, must be > 0
	TotalQuantity int `json:"total_quantity" bson:"total_quantity" example:"100"`
	// LabelCount is the number of labels, must be > 0
	LabelCount int `json:"label_count" bson:"label_count" example:"3"`
	// SerialPrefixParts are the stable tokens (product, GRN, batch...) of every serial
	SerialPrefixParts []string `json:"serial_prefix_parts" bson:"serial_prefix_parts" example:"GRN-1001,RM-42"`
	// StartingCounter is the first unused counter for this record
	StartingCounter int64 `json:"starting_counter" bson:"starting_counter" example:"1"`
	// Strategy controls remainder placement
	Strategy Strategy `json:"strategy" bson:"strategy" example:"remainder_on_last"`
}

// LabelAllocation is one generated label: a unique serial and its print quantity.
//
// @Description One label of an allocation batch
type LabelAllocation struct {
	SerialNumber string `json:"serial_number" bson:"serial_number" yaml:"serial_number" example:"GRN-1001|RM-42|7"`
	Quantity     int    `json:"quantity" bson:"quantity" yaml:"quantity" example:"34"`
	Editable     bool   `json:"editable" bson:"editable" yaml:"editable" example:"true"`
}

// SerialNumber builds the serial of a label from its prefix parts and counter.
func SerialNumber(prefixParts []string, counter int64) string {
	return strings.Join(prefixParts, SerialDelimiter) + SerialDelimiter + strconv.FormatInt(counter, 10)
}

// SumQuantities returns the total quantity across allocations.
func SumQuantities(allocations []LabelAllocation) int {
	sum := 0
	for _, a := range allocations {
		sum += a.Quantity
	}
	return sum
}

// CloneAllocations returns a copy that can be mutated without touching the input.
func CloneAllocations(allocations []LabelAllocation) []LabelAllocation {
	if allocations == nil {
		return nil
	}
	out := make([]LabelAllocation, len(allocations))
	copy(out, allocations)
	return out
}

// BuildContextKey joins the non-empty identifying parts of a record into the key
// that scopes its serial counter (e.g. GRN + product, or order + material + batch).
func BuildContextKey(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, SerialDelimiter)
}
