package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventSupplierCreated  EventType = "supplier_created"
	EventSupplierUpdated  EventType = "supplier_updated"
	EventSupplierDeleted  EventType = "supplier_deleted"
	EventWarehouseCreated EventType = "warehouse_created"
	EventWarehouseUpdated EventType = "warehouse_updated"
	EventWarehouseDeleted EventType = "warehouse_deleted"
)

// Event represents an entity mutation emitted by services. ActorID is empty
// when the mutation ran without a resolvable session.
type Event struct {
	ID         string      `json:"id"`
	Type       EventType   `json:"type"`
	EntityKind string      `json:"entity_kind"`
	EntityID   string      `json:"entity_id"`
	ActorID    string      `json:"actor_id,omitempty"`
	Timestamp  time.Time   `json:"timestamp"`
	Payload    interface{} `json:"payload"`
}

// CreatedPayload payload.
type CreatedPayload struct {
	Name string `json:"name"`
}

// UpdatedPayload payload.
type UpdatedPayload struct {
	ChangedFields []string `json:"changed_fields"`
}
