package events

import "time"

const CatalogChangedTopic = "hr.catalog.changed.v1"

// CatalogChangedEvent is what the upstream HR system publishes whenever
// master data or records change outside this service. Entity carries
// one of the catalog entity names; Action is create/update/delete.
type CatalogChangedEvent struct {
	EventType  string    `json:"event_type"`
	Entity     string    `json:"entity"`
	EntityID   string    `json:"entity_id"`
	Action     string    `json:"action"`
	OccurredAt time.Time `json:"occurred_at"`
}
