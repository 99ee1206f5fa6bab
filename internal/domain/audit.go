package domain

import "time"

// AuditAction enumerates recorded mutations.
type AuditAction string

const (
	AuditActionCreated AuditAction = "created"
	AuditActionUpdated AuditAction = "updated"
	AuditActionDeleted AuditAction = "deleted"
)

// AuditEntry records a single entity mutation for the audit trail.
type AuditEntry struct {
	ID         string      `json:"id"`
	EntityKind string      `json:"entityKind"`
	EntityID   string      `json:"entityId"`
	Action     AuditAction `json:"action"`
	ActorID    string      `json:"actorId"`
	CreatedAt  time.Time   `json:"createdAt"`
}
