package models

import "time"

// Status - рабочее состояние сотрудника
type Status string

const (
	StatusReady Status = "ready"
	StatusBusy  Status = "busy"
)

// Responder - запись о выездном сотруднике. Необязательные поля равны nil, если не заданы
type Responder struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Phone     string     `json:"phone"`
	Location  Coordinate `json:"location"`
	ImageRef  *string    `json:"image_ref,omitempty"`
	Area      *string    `json:"area,omitempty"`
	Status    *Status    `json:"status,omitempty"`
	CreatedAt time.Time  `json:"created_at,omitzero"`
	UpdatedAt time.Time  `json:"updated_at,omitzero"`
}

// EffectiveStatus возвращает статус, незаданный считается ready
func (r Responder) EffectiveStatus() Status {
	if r.Status == nil {
		return StatusReady
	}
	return *r.Status
}

// RankedResponder - сотрудник с оценкой пути до текущего происшествия
type RankedResponder struct {
	Responder
	DistanceKm float64 `json:"distance_km"`
	EtaMinutes float64 `json:"eta_minutes"`
}

// RosterSource указывает, из какого хранилища получен снимок реестра
type RosterSource string

const (
	RosterRemote RosterSource = "remote"
	RosterLocal  RosterSource = "local"
)

// Valid сообщает, известен ли статус
func (s Status) Valid() bool {
	return s == StatusReady || s == StatusBusy
}
