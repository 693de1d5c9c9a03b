package domain

import "time"

// AuditRecord is one structured entry for the external append-only audit log.
// Emitted fire-and-forget on every post, reversal and auto-correction;
// failures to record never roll back the accounting write.
type AuditRecord struct {
	Actor      string    `json:"actor"`
	Action     string    `json:"action"`
	EntityType string    `json:"entityType"`
	EntityID   string    `json:"entityID"`
	Before     any       `json:"before,omitempty"`
	After      any       `json:"after,omitempty"`
	At         time.Time `json:"at"`
}
