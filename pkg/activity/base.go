// Package activity provides common infrastructure for Temporal activity implementations.
// It includes context extraction, panic-safe logging, and best-effort event
// emission shared by every domain activity package.
package activity

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.temporal.io/sdk/activity"

	"github.com/ahrav/go-solid/pkg/events"
)

// DefaultTenantID is used until requests carry tenant metadata.
const DefaultTenantID = "550e8400-e29b-41d4-a716-446655440000"

// WorkflowContext contains metadata extracted from the Temporal activity context.
type WorkflowContext struct {
	WorkflowID string
	RunID      string
	TenantID   string
	ActivityID string
}

// BaseActivities provides common infrastructure for all activity types.
// It works both inside a Temporal activity and in plain unit tests.
type BaseActivities struct {
	eventSink events.EventSink
}

// NewBaseActivities creates a BaseActivities with the provided event sink.
// A nil sink disables event emission.
func NewBaseActivities(sink events.EventSink) BaseActivities {
	return BaseActivities{eventSink: sink}
}

// GetWorkflowContext extracts workflow execution details from ctx. Outside
// an activity context activity.GetInfo panics; in that case placeholder IDs
// are returned: fixed workflow, tenant and activity IDs and a random run ID.
// Event idempotency keys depend only on the client key, not on these IDs.
func (b *BaseActivities) GetWorkflowContext(ctx context.Context) WorkflowContext {
	var wfCtx WorkflowContext

	func() {
		defer func() {
			if r := recover(); r != nil {
				wfCtx.WorkflowID = "test-workflow"
				wfCtx.RunID = "test-run-" + uuid.New().String()[:8]
				wfCtx.TenantID = DefaultTenantID
				wfCtx.ActivityID = "test-activity"
			}
		}()

		info := activity.GetInfo(ctx)
		wfCtx.WorkflowID = info.WorkflowExecution.ID
		wfCtx.RunID = info.WorkflowExecution.RunID
		wfCtx.ActivityID = info.ActivityID
		wfCtx.TenantID = DefaultTenantID
	}()

	return wfCtx
}

// EmitEventSafe appends envelope to the sink, retrying once after a short
// delay. Failures are logged and never returned: events must not fail the
// calculation that produced them.
func (b *BaseActivities) EmitEventSafe(
	ctx context.Context,
	envelope events.Envelope,
	description string,
) {
	if b.eventSink == nil {
		return
	}

	const maxAttempts = 2
	const retryDelay = 200 * time.Millisecond

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(retryDelay):
			case <-ctx.Done():
				SafeLogError(ctx, fmt.Sprintf("Event emission cancelled: %s", description),
					"event_type", envelope.Type)
				return
			}
		}

		if err := b.eventSink.Append(ctx, envelope); err != nil {
			lastErr = err
			continue
		}

		SafeLog(ctx, fmt.Sprintf("Event emitted: %s", description),
			"event_type", envelope.Type,
			"idempotency_key", envelope.IdempotencyKey)
		return
	}

	SafeLogError(ctx, fmt.Sprintf("Failed to emit %s after %d attempts", description, maxAttempts),
		"event_type", envelope.Type,
		"error", lastErr)
}

// SafeLog logs through the activity logger and is a no-op outside an
// activity context.
func SafeLog(ctx context.Context, msg string, keyvals ...any) {
	defer func() { _ = recover() }()
	activity.GetLogger(ctx).Info(msg, keyvals...)
}

// SafeLogError is SafeLog at error level.
func SafeLogError(ctx context.Context, msg string, keyvals ...any) {
	defer func() { _ = recover() }()
	activity.GetLogger(ctx).Error(msg, keyvals...)
}
