// Package payroll implements Temporal activities for team cost calculation
// and access checks.
package payroll

import (
	"context"
	"errors"

	"go.temporal.io/sdk/temporal"

	"github.com/ahrav/go-solid/internal/domain"
	"github.com/ahrav/go-solid/internal/roster"
	"github.com/ahrav/go-solid/pkg/activity"
)

// Application error types surfaced to workflows.
const (
	ErrTypeCalculateCost = "CalculateCost"
	ErrTypeCheckAccess   = "CheckAccess"
	ErrTypeAccessDenied  = "AccessDenied"
)

// Activities handles payroll Temporal activities.
type Activities struct {
	activity.BaseActivities
	registry *roster.Registry
	events   *EventEmitter
}

// NewActivities creates payroll activities. A nil registry selects
// roster.DefaultRegistry.
func NewActivities(base activity.BaseActivities, registry *roster.Registry) *Activities {
	if registry == nil {
		registry = roster.DefaultRegistry()
	}
	return &Activities{
		BaseActivities: base,
		registry:       registry,
		events:         NewEventEmitter(base),
	}
}

// CalculateCost resolves the input workers to contributors and returns their
// summed contribution. The calculation itself is pure; the only side effect
// is a best-effort CostCalculated event.
func (a *Activities) CalculateCost(
	ctx context.Context,
	input domain.CalculateCostInput,
) (*domain.CalculateCostOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, nonRetryable(ErrTypeCalculateCost, err, "invalid input")
	}

	wfCtx := a.GetWorkflowContext(ctx)
	activity.SafeLog(ctx, "Starting CalculateCost activity",
		"workflow_id", wfCtx.WorkflowID,
		"activity_id", wfCtx.ActivityID,
		"workers", len(input.Workers))

	team, err := a.registry.Build(input.Workers)
	if err != nil {
		return nil, nonRetryable(ErrTypeCalculateCost, err, "cannot build team")
	}

	output := &domain.CalculateCostOutput{
		TotalCents:  domain.NewAggregator(team...).Total(),
		WorkerCount: len(team),
	}
	if err := output.Validate(); err != nil {
		return nil, nonRetryable(ErrTypeCalculateCost, err, "invalid output")
	}

	a.events.EmitCostCalculated(ctx, output, roster.CountByRole(input.Workers), wfCtx, input.ClientIdempotencyKey)

	activity.SafeLog(ctx, "CalculateCost completed",
		"total_cents", int64(output.TotalCents),
		"total", output.TotalCents.String())

	return output, nil
}

// CheckAccess applies domain.CheckAccess to the requested user kind. A
// refusal is returned as a non-retryable application error of type
// ErrTypeAccessDenied so workflows can tell it apart from bad input.
func (a *Activities) CheckAccess(ctx context.Context, input domain.CheckAccessInput) error {
	if err := input.Validate(); err != nil {
		return nonRetryable(ErrTypeCheckAccess, err, "invalid input")
	}

	user, err := domain.ParseUser(input.UserKind)
	if err != nil {
		return nonRetryable(ErrTypeCheckAccess, err, "unknown user")
	}

	if err := domain.CheckAccess(user); err != nil {
		wfCtx := a.GetWorkflowContext(ctx)
		a.events.EmitAccessDenied(ctx, user.Kind(), err, wfCtx, input.ClientIdempotencyKey)
		return nonRetryable(ErrTypeAccessDenied, err, "access denied")
	}

	activity.SafeLog(ctx, "Access granted", "user_kind", user.Kind().String())
	return nil
}

// IsAccessDenied reports whether err is an access refusal, either as the
// domain sentinel or as the application error CheckAccess returns.
func IsAccessDenied(err error) bool {
	if errors.Is(err, domain.ErrAccessDenied) {
		return true
	}
	var appErr *temporal.ApplicationError
	return errors.As(err, &appErr) && appErr.Type() == ErrTypeAccessDenied
}

func nonRetryable(tag string, cause error, msg string) error {
	return temporal.NewNonRetryableApplicationError(msg, tag, cause)
}
