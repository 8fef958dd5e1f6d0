package payments

import (
	"encoding/json"
	"time"
)

const (
	EventOrderCreated  = "OrderCreated"
	EventDeviceOnline  = "DeviceOnline"
	EventDeviceOffline = "DeviceOffline"
)

type Envelope struct {
	EventID       string          `json:"event_id"`      // uuid
	EventType     string          `json:"event_type"`    // salah satu const di atas
	EventVersion  int             `json:"event_version"` // 1
	OccurredAt    time.Time       `json:"occurred_at"`   // RFC3339
	Producer      string          `json:"producer"`      // e.g., "kiosk-api"
	TraceID       string          `json:"trace_id,omitempty"`
	CorrelationID string          `json:"correlation_id,omitempty"` // order_id atau device_id
	Payload       json.RawMessage `json:"payload"`                  // payload spesifik
}

// ---- Payload tipe per event ----

type OrderCreatedPayload struct {
	OrderID     string `json:"order_id"`
	GrossAmount int64  `json:"gross_amount"`
	QRURL       string `json:"qr_url"`
}

type DevicePresencePayload struct {
	DeviceID   string `json:"device_id"`
	State      string `json:"state"` // online | offline
	LastSeen   int64  `json:"last_seen"`
	AgeSeconds int64  `json:"age_seconds"`
}
