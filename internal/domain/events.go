package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EventType represents the type of event emitted by the system.
type EventType string

const (
	// EventTypeCostCalculated is emitted once per successful cost calculation.
	EventTypeCostCalculated EventType = "CostCalculated"

	// EventTypeAccessDenied is emitted when a user is refused access.
	EventTypeAccessDenied EventType = "AccessDenied"
)

// EventEnvelope wraps all events with consistent metadata for projection processing.
type EventEnvelope struct {
	// IdempotencyKey ensures events are processed exactly once during retries.
	IdempotencyKey string `json:"idempotency_key" validate:"required"`

	EventType EventType `json:"event_type" validate:"required"`

	// Version enables event schema evolution. Starts at 1.
	Version int `json:"version" validate:"required,min=1"`

	OccurredAt time.Time `json:"occurred_at" validate:"required"`

	TenantID uuid.UUID `json:"tenant_id" validate:"required"`

	WorkflowID string `json:"workflow_id" validate:"required"`
	RunID      string `json:"run_id" validate:"required"`

	// Payload contains the event-specific data as JSON.
	Payload json.RawMessage `json:"payload" validate:"required"`

	// Producer identifies the component that emitted this event.
	Producer string `json:"producer" validate:"required"`
}

// Validate checks if the event envelope meets all requirements.
func (e *EventEnvelope) Validate() error { return validate.Struct(e) }

// CostCalculatedPayload contains the data for CostCalculated events.
type CostCalculatedPayload struct {
	TotalCents  Cents          `json:"total_cents" validate:"min=0"`
	WorkerCount int            `json:"worker_count" validate:"min=0"`
	ByRole      map[string]int `json:"by_role,omitempty"`
}

// Validate checks if the payload meets all requirements.
func (c *CostCalculatedPayload) Validate() error { return validate.Struct(c) }

// AccessDeniedPayload contains the data for AccessDenied events.
type AccessDeniedPayload struct {
	UserKind UserKind `json:"user_kind" validate:"required"`
	Reason   string   `json:"reason" validate:"required"`
}

// Validate checks if the payload meets all requirements.
func (a *AccessDeniedPayload) Validate() error { return validate.Struct(a) }

// NewEventEnvelope creates a new EventEnvelope with required fields populated.
// The payload should be marshaled JSON for the specific event type.
func NewEventEnvelope(
	eventType EventType,
	tenantID uuid.UUID,
	workflowID, runID string,
	payload json.RawMessage,
	producer string,
) EventEnvelope {
	return EventEnvelope{
		EventType:  eventType,
		Version:    1,
		TenantID:   tenantID,
		WorkflowID: workflowID,
		RunID:      runID,
		Payload:    payload,
		Producer:   producer,
		OccurredAt: time.Now(),
	}
}

// GenerateIdempotencyKey creates a deterministic key for event deduplication
// as H(client_idem_key || suffix). Retries and replays of the same logical
// event produce the same key.
func GenerateIdempotencyKey(clientIdempotencyKey, eventSuffix string) string {
	hasher := sha256.New()
	hasher.Write([]byte(clientIdempotencyKey + eventSuffix))
	return hex.EncodeToString(hasher.Sum(nil))
}

// NewCostCalculatedEvent creates a CostCalculated event envelope.
func NewCostCalculatedEvent(
	tenantID uuid.UUID,
	workflowID, runID string,
	payload CostCalculatedPayload,
	clientIdempotencyKey string,
) (EventEnvelope, error) {
	if err := payload.Validate(); err != nil {
		return EventEnvelope{}, fmt.Errorf("invalid cost calculated payload: %w", err)
	}
	return newEvent(EventTypeCostCalculated, tenantID, workflowID, runID, payload,
		"activity.calculate_cost", GenerateIdempotencyKey(clientIdempotencyKey, ":cost:1"))
}

// NewAccessDeniedEvent creates an AccessDenied event envelope.
func NewAccessDeniedEvent(
	tenantID uuid.UUID,
	workflowID, runID string,
	payload AccessDeniedPayload,
	clientIdempotencyKey string,
) (EventEnvelope, error) {
	if err := payload.Validate(); err != nil {
		return EventEnvelope{}, fmt.Errorf("invalid access denied payload: %w", err)
	}
	return newEvent(EventTypeAccessDenied, tenantID, workflowID, runID, payload,
		"activity.check_access", GenerateIdempotencyKey(clientIdempotencyKey, ":access:1"))
}

func newEvent(
	eventType EventType,
	tenantID uuid.UUID,
	workflowID, runID string,
	payload any,
	producer, idemKey string,
) (EventEnvelope, error) {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return EventEnvelope{}, fmt.Errorf("failed to marshal payload: %w", err)
	}

	envelope := NewEventEnvelope(eventType, tenantID, workflowID, runID, payloadJSON, producer)
	envelope.IdempotencyKey = idemKey

	if err := envelope.Validate(); err != nil {
		return EventEnvelope{}, fmt.Errorf("invalid event envelope: %w", err)
	}
	return envelope, nil
}
