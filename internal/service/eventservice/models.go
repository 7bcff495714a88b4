package eventservice

import (
	"time"

	"github.com/google/uuid"
)

type BaseEvent struct {
	EventID       string            `json:"event_id"`
	EventType     string            `json:"event_type"`
	OccurredAt    time.Time         `json:"occurred_at"`
	Version       string            `json:"version"`
	CorrelationID string            `json:"correlation_id,omitempty"`
	Source        string            `json:"source,omitempty"`
	Headers       map[string]string `json:"headers,omitempty"`
}

// ---- Extracto cargado en staging (lo emite el servicio de ingesta) ----
type ExtractLoadedEvent struct {
	BaseEvent
	SnapshotDate string `json:"snapshot_date"`
}

// ---- Corrida del pipeline terminada ----
type RunCompletedEvent struct {
	BaseEvent
	RunID               uuid.UUID `json:"run_id"`
	Status              string    `json:"status"`
	DimCustomers        int64     `json:"dim_customers"`
	DimProducts         int64     `json:"dim_products"`
	FactRows            int64     `json:"fact_rows"`
	DroppedCustomers    int64     `json:"dropped_customers"`
	DroppedProducts     int64     `json:"dropped_products"`
	UnresolvedProducts  int64     `json:"unresolved_products"`
	UnresolvedCustomers int64     `json:"unresolved_customers"`
}
