package workflow

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/ahrav/go-solid/internal/domain"
)

// Activity names as registered by the worker.
const (
	CheckAccessActivity   = "CheckAccess"
	CalculateCostActivity = "CalculateCost"
)

// PayrollWorkflow runs CheckAccess then CalculateCost: it checks that the
// requester may see payroll data and then totals the requested team. An
// access refusal ends the workflow with the non-retryable error from
// CheckAccess; no cost is computed.
func PayrollWorkflow(
	ctx workflow.Context,
	req domain.PayrollRequest,
) (*domain.PayrollResult, error) {
	// Version gate enables safe evolution and backward compatibility.
	const currentVersion = 1
	_ = workflow.GetVersion(ctx, "payroll.v", workflow.DefaultVersion, currentVersion)

	if err := req.Validate(); err != nil {
		return nil, temporal.NewNonRetryableApplicationError(
			"invalid payroll request",
			"Validation",
			err,
		)
	}

	ao := workflow.ActivityOptions{
		StartToCloseTimeout: time.Duration(req.ActivityTimeoutSeconds()) * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    time.Minute,
			MaximumAttempts:    3,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, ao)
	logger := workflow.GetLogger(ctx)

	err := workflow.ExecuteActivity(ctx, CheckAccessActivity, domain.CheckAccessInput{
		UserKind:             req.Requester,
		ClientIdempotencyKey: req.ClientIdempotencyKey,
	}).Get(ctx, nil)
	if err != nil {
		logger.Warn("Payroll access refused", "requester", req.Requester.String(), "error", err)
		return nil, err
	}

	var out domain.CalculateCostOutput
	err = workflow.ExecuteActivity(ctx, CalculateCostActivity, domain.CalculateCostInput{
		Workers:              req.Workers,
		ClientIdempotencyKey: req.ClientIdempotencyKey,
	}).Get(ctx, &out)
	if err != nil {
		return nil, err
	}

	logger.Info("Payroll calculated", "total_cents", int64(out.TotalCents), "workers", out.WorkerCount)

	return &domain.PayrollResult{
		Requester:   req.Requester,
		TotalCents:  out.TotalCents,
		WorkerCount: out.WorkerCount,
	}, nil
}
