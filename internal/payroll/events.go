package payroll

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ahrav/go-solid/internal/domain"
	"github.com/ahrav/go-solid/pkg/activity"
	"github.com/ahrav/go-solid/pkg/events"
)

// EventEmitter handles event emission for the payroll domain.
// Emission is best-effort; failures are logged without affecting the result.
type EventEmitter struct {
	base activity.BaseActivities
}

// NewEventEmitter creates a new EventEmitter with the provided base activities.
func NewEventEmitter(base activity.BaseActivities) *EventEmitter {
	return &EventEmitter{base: base}
}

// EmitCostCalculated emits a CostCalculated event for a finished calculation.
func (e *EventEmitter) EmitCostCalculated(
	ctx context.Context,
	output *domain.CalculateCostOutput,
	byRole map[string]int,
	wfCtx activity.WorkflowContext,
	clientIdemKey string,
) {
	tenantID, err := parseUUID(wfCtx.TenantID, "tenant")
	if err != nil {
		activity.SafeLogError(ctx, "Failed to parse tenant ID for CostCalculated event",
			"tenant_id", wfCtx.TenantID,
			"error", err)
		return
	}

	ev, err := domain.NewCostCalculatedEvent(
		tenantID,
		wfCtx.WorkflowID,
		wfCtx.RunID,
		domain.CostCalculatedPayload{
			TotalCents:  output.TotalCents,
			WorkerCount: output.WorkerCount,
			ByRole:      byRole,
		},
		clientIdemKey,
	)
	if err != nil {
		activity.SafeLogError(ctx, "Failed to create CostCalculated event", "error", err)
		return
	}

	e.base.EmitEventSafe(ctx, toEnvelope(ev), "CostCalculated")
}

// EmitAccessDenied emits an AccessDenied event for a refused user.
func (e *EventEmitter) EmitAccessDenied(
	ctx context.Context,
	kind domain.UserKind,
	reason error,
	wfCtx activity.WorkflowContext,
	clientIdemKey string,
) {
	tenantID, err := parseUUID(wfCtx.TenantID, "tenant")
	if err != nil {
		activity.SafeLogError(ctx, "Failed to parse tenant ID for AccessDenied event",
			"tenant_id", wfCtx.TenantID,
			"error", err)
		return
	}

	ev, err := domain.NewAccessDeniedEvent(
		tenantID,
		wfCtx.WorkflowID,
		wfCtx.RunID,
		domain.AccessDeniedPayload{UserKind: kind, Reason: reason.Error()},
		clientIdemKey,
	)
	if err != nil {
		activity.SafeLogError(ctx, "Failed to create AccessDenied event", "error", err)
		return
	}

	e.base.EmitEventSafe(ctx, toEnvelope(ev), fmt.Sprintf("AccessDenied[%s]", kind))
}

func parseUUID(input, what string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(input)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s UUID '%s': %w", what, input, err)
	}
	return parsed, nil
}

// toEnvelope maps a domain event onto the generic envelope used by sinks.
func toEnvelope(ev domain.EventEnvelope) events.Envelope {
	return events.Envelope{
		ID:             ev.IdempotencyKey,
		Type:           string(ev.EventType),
		Source:         ev.Producer,
		Version:        fmt.Sprintf("%d.0.0", ev.Version),
		Timestamp:      ev.OccurredAt,
		IdempotencyKey: ev.IdempotencyKey,
		TenantID:       ev.TenantID.String(),
		WorkflowID:     ev.WorkflowID,
		RunID:          ev.RunID,
		Payload:        ev.Payload,
	}
}
