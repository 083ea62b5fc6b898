package events

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryEventSink_Deduplicates(t *testing.T) {
	sink := NewMemoryEventSink()
	ctx := context.Background()

	require.NoError(t, sink.Append(ctx, Envelope{Type: "A", IdempotencyKey: "k1"}))
	require.NoError(t, sink.Append(ctx, Envelope{Type: "A", IdempotencyKey: "k1"}))
	require.NoError(t, sink.Append(ctx, Envelope{Type: "B", IdempotencyKey: "k2"}))

	got := sink.Events()
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Type)
	assert.Equal(t, "B", got[1].Type)
}

func TestMemoryEventSink_Concurrent(t *testing.T) {
	sink := NewMemoryEventSink()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = sink.Append(context.Background(), Envelope{IdempotencyKey: "same"})
		}()
	}
	wg.Wait()

	assert.Len(t, sink.Events(), 1)
}

type recordingLogger struct {
	msgs []string
	kvs  [][]interface{}
}

func (r *recordingLogger) Info(msg string, kv ...interface{}) {
	r.msgs = append(r.msgs, msg)
	r.kvs = append(r.kvs, kv)
}

func TestLogEventSink(t *testing.T) {
	rec := &recordingLogger{}
	sink := NewLogEventSink(rec)

	err := sink.Append(context.Background(), Envelope{
		Type:    "CostCalculated",
		Payload: json.RawMessage(`{"total_cents":1}`),
	})
	require.NoError(t, err)

	require.Len(t, rec.msgs, 1)
	assert.Equal(t, "event", rec.msgs[0])
	assert.Contains(t, rec.kvs[0], "CostCalculated")
	assert.Contains(t, rec.kvs[0], `{"total_cents":1}`)
}

func TestNoOpEventSink(t *testing.T) {
	assert.NoError(t, NewNoOpEventSink().Append(context.Background(), Envelope{}))
}
