package activity

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahrav/go-solid/pkg/events"
)

type flakySink struct {
	failures int32
	calls    atomic.Int32
	stored   []events.Envelope
}

func (f *flakySink) Append(_ context.Context, e events.Envelope) error {
	n := f.calls.Add(1)
	if n <= f.failures {
		return errors.New("sink unavailable")
	}
	f.stored = append(f.stored, e)
	return nil
}

func TestGetWorkflowContext_OutsideActivity(t *testing.T) {
	base := NewBaseActivities(nil)

	wfCtx := base.GetWorkflowContext(context.Background())

	assert.Equal(t, "test-workflow", wfCtx.WorkflowID)
	assert.Equal(t, DefaultTenantID, wfCtx.TenantID)
	assert.Equal(t, "test-activity", wfCtx.ActivityID)
	assert.NotEmpty(t, wfCtx.RunID)

	again := base.GetWorkflowContext(context.Background())
	assert.Equal(t, wfCtx.WorkflowID, again.WorkflowID)
	assert.NotEqual(t, wfCtx.RunID, again.RunID, "run ID is random per call")
}

func TestEmitEventSafe(t *testing.T) {
	t.Run("nil sink is a no-op", func(t *testing.T) {
		base := NewBaseActivities(nil)
		assert.NotPanics(t, func() {
			base.EmitEventSafe(context.Background(), events.Envelope{Type: "X"}, "x")
		})
	})

	t.Run("retries once after a failure", func(t *testing.T) {
		sink := &flakySink{failures: 1}
		base := NewBaseActivities(sink)

		base.EmitEventSafe(context.Background(), events.Envelope{Type: "X"}, "x")

		assert.Equal(t, int32(2), sink.calls.Load())
		require.Len(t, sink.stored, 1)
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		sink := &flakySink{failures: 10}
		base := NewBaseActivities(sink)

		base.EmitEventSafe(context.Background(), events.Envelope{Type: "X"}, "x")

		assert.Equal(t, int32(2), sink.calls.Load())
		assert.Empty(t, sink.stored)
	})

	t.Run("stops on cancelled context", func(t *testing.T) {
		sink := &flakySink{failures: 10}
		base := NewBaseActivities(sink)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		base.EmitEventSafe(ctx, events.Envelope{Type: "X"}, "x")

		assert.Equal(t, int32(1), sink.calls.Load())
	})
}

func TestSafeLog_OutsideActivity(t *testing.T) {
	assert.NotPanics(t, func() {
		SafeLog(context.Background(), "hello", "k", "v")
		SafeLogError(context.Background(), "oops", "k", "v")
	})
}
