// Package events provides the generic event infrastructure for domain event emission.
// It defines the Envelope type for wrapping domain events with consistent metadata
// and the EventSink interface for event storage/transmission.
package events

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

// Envelope wraps domain events with consistent metadata for reliable event processing.
type Envelope struct {
	// ID uniquely identifies this event instance.
	ID string `json:"id"`

	// Type identifies the event for routing, e.g. "CostCalculated".
	Type string `json:"type"`

	// Source identifies the component that emitted this event.
	Source string `json:"source"`

	// Version enables schema evolution. Starts at "1.0.0".
	Version string `json:"version"`

	Timestamp time.Time `json:"timestamp"`

	// IdempotencyKey ensures exactly-once processing during retries.
	IdempotencyKey string `json:"idempotency_key"`

	TenantID   string `json:"tenant_id"`
	WorkflowID string `json:"workflow_id"`
	RunID      string `json:"run_id"`

	// Payload contains the domain-specific event data as JSON.
	Payload json.RawMessage `json:"payload"`
}

// EventSink defines the interface for emitting events to downstream consumers.
type EventSink interface {
	// Append adds an event to the sink with best-effort delivery.
	// Duplicate idempotency keys must be no-ops.
	Append(ctx context.Context, envelope Envelope) error
}

// NoOpEventSink is a null implementation of EventSink for testing or when events are disabled.
type NoOpEventSink struct{}

// Append implements EventSink.Append with no-op behavior.
func (n *NoOpEventSink) Append(_ context.Context, _ Envelope) error {
	return nil
}

// NewNoOpEventSink creates a new no-op event sink.
func NewNoOpEventSink() EventSink {
	return &NoOpEventSink{}
}

// KeyValueLogger is the subset of a structured logger LogEventSink needs.
type KeyValueLogger interface {
	Info(msg string, keysAndValues ...interface{})
}

// LogEventSink writes each event as a structured log line.
type LogEventSink struct {
	log KeyValueLogger
}

// NewLogEventSink creates a sink that logs events through log.
func NewLogEventSink(log KeyValueLogger) *LogEventSink {
	return &LogEventSink{log: log}
}

// Append logs the envelope.
func (s *LogEventSink) Append(_ context.Context, e Envelope) error {
	s.log.Info("event",
		"type", e.Type,
		"source", e.Source,
		"idempotency_key", e.IdempotencyKey,
		"workflow_id", e.WorkflowID,
		"payload", string(e.Payload))
	return nil
}

// MemoryEventSink keeps events in memory, dropping duplicate idempotency keys.
// It is safe for concurrent use.
type MemoryEventSink struct {
	mu     sync.Mutex
	seen   map[string]struct{}
	events []Envelope
}

// NewMemoryEventSink creates an empty in-memory sink.
func NewMemoryEventSink() *MemoryEventSink {
	return &MemoryEventSink{seen: make(map[string]struct{})}
}

// Append stores the envelope unless its idempotency key was already seen.
func (s *MemoryEventSink) Append(_ context.Context, e Envelope) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e.IdempotencyKey != "" {
		if _, dup := s.seen[e.IdempotencyKey]; dup {
			return nil
		}
		s.seen[e.IdempotencyKey] = struct{}{}
	}
	s.events = append(s.events, e)
	return nil
}

// Events returns a copy of the stored envelopes in append order.
func (s *MemoryEventSink) Events() []Envelope {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Envelope(nil), s.events...)
}
