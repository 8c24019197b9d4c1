package service

import (
	"math"
	"time"

	"github.com/guttosm/label-service/internal/domain/model"
	"github.com/guttosm/label-service/internal/metrics"
)

// DefaultMaxLabelCount bounds a single generation when no option overrides it.
const DefaultMaxLabelCount = 10000

// GenerateAllocations splits request.TotalQuantity across request.LabelCount
// labels. Every label gets the floor share; the strategy decides where the
// remainder goes. Serials use consecutive counters from request.StartingCounter.
func GenerateAllocations(request model.AllocationRequest) ([]model.LabelAllocation, error) {
	if err := ValidateRequest(request); err != nil {
		return nil, err
	}

	n := request.LabelCount
	base := request.TotalQuantity / n
	remainder := request.TotalQuantity % n

	allocations := make([]model.LabelAllocation, n)
	for i := range allocations {
		qty := base
		switch request.Strategy {
		case model.StrategyRemainderOnLast:
			if i == n-1 {
				qty += remainder
			}
		case model.StrategyRemainderSpreadFirst:
			if i < remainder {
				qty++
			}
		}
		allocations[i] = model.LabelAllocation{
			SerialNumber: model.SerialNumber(request.SerialPrefixParts, request.StartingCounter+int64(i)),
			Quantity:     qty,
			Editable:     true,
		}
	}

	return allocations, nil
}

// ValidateRequest reports the first reason request cannot be allocated.
func ValidateRequest(request model.AllocationRequest) error {
	if request.TotalQuantity <= 0 {
		return &ValidationError{Field: "total_quantity", Message: "quantity must be greater than zero"}
	}
	if request.LabelCount <= 0 {
		return &ValidationError{Field: "label_count", Message: "label count must be greater than zero"}
	}
	if !request.Strategy.Valid() {
		return &ValidationError{Field: "strategy", Message: "unknown allocation strategy"}
	}
	if request.StartingCounter < 0 {
		return &ValidationError{Field: "starting_counter", Message: "starting counter must not be negative"}
	}
	if request.StartingCounter > math.MaxInt64-int64(request.LabelCount-1) {
		return &ValidationError{Field: "starting_counter", Message: "starting counter leaves no room for label_count serials"}
	}
	return nil
}

// EditAllocationQuantity returns a copy of allocations with label index set to
// newQuantity. The input is never modified, so a rejected edit leaves the
// caller's allocations as they were.
func EditAllocationQuantity(allocations []model.LabelAllocation, totalQuantity, index, newQuantity int) ([]model.LabelAllocation, error) {
	if index < 0 || index >= len(allocations) {
		return nil, &ValidationError{Field: "index", Message: "label index out of range"}
	}
	if newQuantity < 0 {
		return nil, &ValidationError{Field: "quantity", Message: "quantity must not be negative"}
	}
	if !allocations[index].Editable {
		return nil, &ValidationError{Field: "index", Message: "label is not editable"}
	}

	rest := model.SumQuantities(allocations) - allocations[index].Quantity
	if newQuantity > totalQuantity-rest {
		newSum := math.MaxInt
		if newQuantity <= math.MaxInt-rest {
			newSum = rest + newQuantity
		}
		return nil, &CapacityExceededError{Total: totalQuantity, NewSum: newSum}
	}

	updated := model.CloneAllocations(allocations)
	updated[index].Quantity = newQuantity
	return updated, nil
}

// ValidateForSubmission checks that allocations add up to exactly totalQuantity.
func ValidateForSubmission(allocations []model.LabelAllocation, totalQuantity int) error {
	if sum := model.SumQuantities(allocations); sum != totalQuantity {
		return &ReconciliationError{Expected: totalQuantity, Actual: sum}
	}
	return nil
}

// LabelAllocator applies server policy on top of the allocation functions.
type LabelAllocator interface {
	Check(request model.AllocationRequest) error
	Generate(request model.AllocationRequest) ([]model.LabelAllocation, error)
	Edit(allocations []model.LabelAllocation, totalQuantity, index, newQuantity int) ([]model.LabelAllocation, error)
	Validate(allocations []model.LabelAllocation, totalQuantity int) error
	DefaultStrategy() model.Strategy
}

// Option configures a LabelAllocatorService.
type Option func(*LabelAllocatorService)

// LabelAllocatorService implements LabelAllocator.
type LabelAllocatorService struct {
	defaultStrategy model.Strategy
	maxLabelCount   int
}

// NewLabelAllocatorService creates a new LabelAllocatorService with the given options.
func NewLabelAllocatorService(opts ...Option) *LabelAllocatorService {
	s := &LabelAllocatorService{
		defaultStrategy: model.StrategyRemainderOnLast,
		maxLabelCount:   DefaultMaxLabelCount,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithDefaultStrategy sets the strategy used when a request names none.
func WithDefaultStrategy(strategy model.Strategy) Option {
	return func(s *LabelAllocatorService) {
		if strategy.Valid() {
			s.defaultStrategy = strategy
		}
	}
}

// WithMaxLabelCount caps the number of labels per generation. Zero or less
// keeps the default.
func WithMaxLabelCount(max int) Option {
	return func(s *LabelAllocatorService) {
		if max > 0 {
			s.maxLabelCount = max
		}
	}
}

// DefaultStrategy returns the configured fallback strategy.
func (s *LabelAllocatorService) DefaultStrategy() model.Strategy {
	return s.defaultStrategy
}

// Check validates request against the engine rules and the label cap without
// generating anything, so callers can fail before reserving counters.
func (s *LabelAllocatorService) Check(request model.AllocationRequest) error {
	return s.check(s.withDefaults(request))
}

func (s *LabelAllocatorService) check(request model.AllocationRequest) error {
	if err := ValidateRequest(request); err != nil {
		return err
	}
	if request.LabelCount > s.maxLabelCount {
		return &ValidationError{Field: "label_count", Message: "label count exceeds the configured maximum"}
	}
	return nil
}

func (s *LabelAllocatorService) withDefaults(request model.AllocationRequest) model.AllocationRequest {
	if request.Strategy == "" {
		request.Strategy = s.defaultStrategy
	}
	return request
}

// Generate fills in the default strategy, enforces the label cap and runs
// GenerateAllocations.
func (s *LabelAllocatorService) Generate(request model.AllocationRequest) ([]model.LabelAllocation, error) {
	request = s.withDefaults(request)

	start := time.Now()
	var allocations []model.LabelAllocation
	err := s.check(request)
	if err == nil {
		allocations, err = GenerateAllocations(request)
	}
	metrics.RecordAllocation(string(request.Strategy), time.Since(start), len(allocations), err)

	return allocations, err
}

// Edit delegates to EditAllocationQuantity.
func (s *LabelAllocatorService) Edit(allocations []model.LabelAllocation, totalQuantity, index, newQuantity int) ([]model.LabelAllocation, error) {
	return EditAllocationQuantity(allocations, totalQuantity, index, newQuantity)
}

// Validate delegates to ValidateForSubmission.
func (s *LabelAllocatorService) Validate(allocations []model.LabelAllocation, totalQuantity int) error {
	return ValidateForSubmission(allocations, totalQuantity)
}
