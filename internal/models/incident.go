package models

import (
	"time"

	"github.com/google/uuid"
)

// Incident - единственное активное место происшествия в сессии
type Incident struct {
	ID        uuid.UUID  `json:"id"`
	Location  Coordinate `json:"location"`
	CreatedAt time.Time  `json:"created_at"`
}

// IncidentIcon - стиль маркера точки происшествия на карте
type IncidentIcon string

const (
	IconSiren   IncidentIcon = "siren"
	IconCrash   IncidentIcon = "crash"
	IconFire    IncidentIcon = "fire"
	IconMedical IncidentIcon = "medical"
	IconWarning IncidentIcon = "warning"
)

// IncidentIcons - поддерживаемые значки происшествия, первый используется по умолчанию
var IncidentIcons = []IncidentIcon{IconSiren, IconCrash, IconFire, IconMedical, IconWarning}

// Valid сообщает, входит ли значок в IncidentIcons
func (i IncidentIcon) Valid() bool {
	for _, icon := range IncidentIcons {
		if icon == i {
			return true
		}
	}
	return false
}

// Settings - настройки отображения оператора
type Settings struct {
	IncidentIcon IncidentIcon `json:"incident_icon"`
}

// Suggestion - подсказка геокодера для поискового запроса
type Suggestion struct {
	Label    string     `json:"label"`
	Location Coordinate `json:"location"`
}
