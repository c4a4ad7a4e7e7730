package v1

import (
	"time"

	"github.com/google/uuid"
)

// MapClickRequest DTO для клика по карте
// @Description DTO для клика по карте
type MapClickRequest struct {
	Lat *float64 `json:"lat" validate:"required,latitude"`
	Lng *float64 `json:"lng" validate:"required,longitude"`
}

// SelectRequest DTO для выбора сотрудника из списка
// @Description DTO для выбора сотрудника из списка
type SelectRequest struct {
	ResponderID int64 `json:"responder_id" validate:"required,gt=0"`
}

// LoginRequest DTO для входа в админ-панель
// @Description DTO для входа в админ-панель
type LoginRequest struct {
	PIN string `json:"pin" validate:"required,max=64"`
}

// TabRequest DTO для переключения вкладки
// @Description DTO для переключения вкладки
type TabRequest struct {
	Tab string `json:"tab" validate:"required,oneof=primary admin settings"`
}

// SearchRequest DTO для подсказок поиска
// @Description DTO для подсказок поиска
type SearchRequest struct {
	Query string `json:"query" validate:"max=200"`
}

// AcceptLocationRequest DTO для принятия текста местоположения
// @Description DTO для принятия текста местоположения: координаты, ссылка на карту или название
type AcceptLocationRequest struct {
	Text string `json:"text" validate:"required,max=500"`
}

// ChooseSuggestionRequest DTO для выбора подсказки
// @Description DTO для выбора подсказки
type ChooseSuggestionRequest struct {
	Index *int `json:"index" validate:"required,gte=0"`
}

// IncidentIconRequest DTO для смены значка происшествия
// @Description DTO для смены значка происшествия
type IncidentIconRequest struct {
	Icon string `json:"icon" validate:"required,oneof=siren crash fire medical warning"`
}

// OpenFormRequest DTO для открытия формы сотрудника, без responder_id - новая запись
// @Description DTO для открытия формы сотрудника
type OpenFormRequest struct {
	ResponderID *int64 `json:"responder_id,omitempty" validate:"omitempty,gt=0"`
}

// ResponderRequest DTO для сохранения сотрудника из открытой формы
// @Description DTO для сохранения сотрудника; координаты берутся из формы
type ResponderRequest struct {
	Name     string  `json:"name" validate:"required,max=100"`
	Phone    string  `json:"phone" validate:"required,max=32"`
	Area     *string `json:"area,omitempty" validate:"omitempty,max=100"`
	Status   *string `json:"status,omitempty" validate:"omitempty,oneof=ready busy"`
	ImageRef *string `json:"image_ref,omitempty" validate:"omitempty,max=255"`
}

// CoordinateResponse DTO координаты
type CoordinateResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ResponderResponse DTO сотрудника
// @Description DTO сотрудника
type ResponderResponse struct {
	ID       int64              `json:"id"`
	Name     string             `json:"name"`
	Phone    string             `json:"phone"`
	Location CoordinateResponse `json:"location"`
	Area     *string            `json:"area,omitempty"`
	Status   string             `json:"status"`
	ImageRef *string            `json:"image_ref,omitempty"`
}

// RankedResponderResponse DTO сотрудника с оценкой пути до происшествия
// @Description DTO сотрудника с оценкой пути до происшествия
type RankedResponderResponse struct {
	ResponderResponse
	DistanceKm float64 `json:"distance_km"`
	EtaMinutes float64 `json:"eta_minutes"`
	Selected   bool    `json:"selected"`
}

// IncidentResponse DTO точки происшествия
// @Description DTO точки происшествия
type IncidentResponse struct {
	ID        uuid.UUID          `json:"id"`
	Location  CoordinateResponse `json:"location"`
	CreatedAt time.Time          `json:"created_at"`
}

// SuggestionResponse DTO подсказки геокодера
type SuggestionResponse struct {
	Label    string             `json:"label"`
	Location CoordinateResponse `json:"location"`
}

// FormResponse DTO формы сотрудника
type FormResponse struct {
	Open           bool                `json:"open"`
	EditingID      *int64              `json:"editing_id,omitempty"`
	Candidate      *CoordinateResponse `json:"candidate,omitempty"`
	CandidateLabel string              `json:"candidate_label,omitempty"`
}

// SessionResponse DTO состояния сессии оператора
// @Description DTO состояния сессии оператора
type SessionResponse struct {
	Tab           string                    `json:"tab"`
	Incident      *IncidentResponse         `json:"incident"`
	Ranked        []RankedResponderResponse `json:"ranked"`
	SelectedID    *int64                    `json:"selected_id"`
	Roster        []ResponderResponse       `json:"roster"`
	RosterSource  string                    `json:"roster_source,omitempty"`
	Authenticated bool                      `json:"authenticated"`
	SidebarOpen   bool                      `json:"sidebar_open"`
	Form          FormResponse              `json:"form"`
	SearchQuery   string                    `json:"search_query"`
	Suggestions   []SuggestionResponse      `json:"suggestions"`
	IncidentIcon  string                    `json:"incident_icon"`
	Notice        string                    `json:"notice,omitempty"`
}

// ImageUploadResponse DTO загруженного изображения
type ImageUploadResponse struct {
	Key string `json:"key"`
	URL string `json:"url"`
}
