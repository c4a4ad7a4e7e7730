package models

import (
	"time"

	"github.com/google/uuid"
)

// DispatchEventType - тип события диспетчеризации
type DispatchEventType string

const (
	EventIncidentSet      DispatchEventType = "incident_set"
	EventSelectionChanged DispatchEventType = "selection_changed"
	EventIncidentCleared  DispatchEventType = "incident_cleared"
)

// DispatchEvent - событие, отправляемое во внешний вебхук
type DispatchEvent struct {
	ID         uuid.UUID         `json:"id"`
	Type       DispatchEventType `json:"type"`
	Incident   *Incident         `json:"incident,omitempty"`
	Responder  *RankedResponder  `json:"responder,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
}
