package entity

// ShipmentEventType classifies a change published to downstream consumers.
type ShipmentEventType string

const (
	ShipmentCreated       ShipmentEventType = "shipment.created"
	ShipmentUpdated       ShipmentEventType = "shipment.updated"
	ShipmentStatusChanged ShipmentEventType = "shipment.status_changed"
	ShipmentDeleted       ShipmentEventType = "shipment.deleted"
)

// ShipmentEvent describes one mutation issued by the dashboard.
type ShipmentEvent struct {
	ID         string            `json:"event_id"`
	RequestID  string            `json:"request_id,omitempty"`
	Type       ShipmentEventType `json:"type"`
	ShipmentID string            `json:"shipment_id"`
	TrackingNo string            `json:"tracking_no,omitempty"`
	OldStatus  string            `json:"old_status,omitempty"`
	Status     string            `json:"status,omitempty"`
	Backend    BackendMode       `json:"backend"`
	OccurredAt int64             `json:"occurred_at"`
}
