package models

// AuditEvent là record audit log theo format wire của backend
type AuditEvent struct {
	ID           SnowflakeID `json:"id"`
	EventType    string      `json:"eventType"`  // REQUEST_CREATED, STATUS_CHANGED, ...
	EntityType   string      `json:"entityType"` // REQUEST, USER, ...
	EntityID     SnowflakeID `json:"entityId"`
	EventDetails string      `json:"eventDetails"`
	PerformedBy  SnowflakeID `json:"performedBy"`
	Timestamp    string      `json:"timestamp"`
}
