package domain

import "fmt"

// Bounds on payroll input. With the largest built-in multiplier,
// MaxWorkers × MaxCostCents × ProjectManagerMultiplier stays below
// math.MaxInt64, so a validated request cannot overflow its total.
const (
	MaxCostCents Cents = 10_000_000_000_000
	MaxWorkers         = 10_000
)

// RoleSpec is the serialisable form of a contributor. Role names are
// resolved to concrete contributors by the roster registry.
type RoleSpec struct {
	// Role names a registered contributor variant (e.g. "developer").
	Role string `json:"role" yaml:"role" validate:"required"`

	// CostCents is the unweighted base cost.
	CostCents Cents `json:"cost_cents" yaml:"cost" validate:"min=0,max=10000000000000"`
}

// CalculateCostInput represents the input for the CalculateCost operation.
type CalculateCostInput struct {
	// Workers are the contributors to aggregate. An empty list totals zero.
	Workers []RoleSpec `json:"workers" validate:"max=10000,dive"`

	// ClientIdempotencyKey enables deterministic event generation.
	ClientIdempotencyKey string `json:"client_idempotency_key" validate:"required"`
}

// Validate checks the input contract.
func (c *CalculateCostInput) Validate() error { return validate.Struct(c) }

// CalculateCostOutput is the result of the CalculateCost operation.
type CalculateCostOutput struct {
	TotalCents  Cents `json:"total_cents" validate:"min=0"`
	WorkerCount int   `json:"worker_count" validate:"min=0"`
}

// Validate checks the output contract.
func (c *CalculateCostOutput) Validate() error { return validate.Struct(c) }

// CheckAccessInput represents the input for the CheckAccess operation.
type CheckAccessInput struct {
	UserKind             UserKind `json:"user_kind" validate:"required"`
	ClientIdempotencyKey string   `json:"client_idempotency_key" validate:"required"`
}

// Validate checks the input contract.
func (c *CheckAccessInput) Validate() error { return validate.Struct(c) }

// PayrollRequest asks for the total cost of a team on behalf of a user.
type PayrollRequest struct {
	// Requester is the user kind asking for the calculation; it must pass
	// CheckAccess before any cost is computed.
	Requester UserKind `json:"requester" validate:"required"`

	Workers []RoleSpec `json:"workers" validate:"max=10000,dive"`

	ClientIdempotencyKey string `json:"client_idempotency_key" validate:"required"`

	// TimeoutSeconds bounds each activity. Zero selects DefaultActivityTimeoutSeconds.
	TimeoutSeconds int `json:"timeout_seconds" validate:"min=0"`
}

// DefaultActivityTimeoutSeconds is the activity timeout used when a request
// does not set one.
const DefaultActivityTimeoutSeconds = 30

// Validate checks the request contract.
func (r *PayrollRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	return nil
}

// ActivityTimeoutSeconds returns the effective per-activity timeout.
func (r *PayrollRequest) ActivityTimeoutSeconds() int {
	if r.TimeoutSeconds == 0 {
		return DefaultActivityTimeoutSeconds
	}
	return r.TimeoutSeconds
}

// PayrollResult is the outcome of a payroll workflow.
type PayrollResult struct {
	Requester   UserKind `json:"requester"`
	TotalCents  Cents    `json:"total_cents"`
	WorkerCount int      `json:"worker_count"`
}
