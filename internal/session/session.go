// Package session ведет сессию оператора: текущее происшествие, снимок реестра, список
// сотрудников по расстоянию и выбранного сотрудника для маршрута. Все изменения состояния
// проходят через одну горутину, переходы не перемежаются.
package session

import (
	"context"
	"slices"

	"github.com/Preechanamchu/KT-Monitor/internal/geocode"
	"github.com/Preechanamchu/KT-Monitor/internal/models"
)

// Tab - активная вкладка интерфейса оператора
type Tab string

const (
	TabPrimary  Tab = "primary"
	TabAdmin    Tab = "admin"
	TabSettings Tab = "settings"
)

// Valid сообщает, известна ли вкладка
func (t Tab) Valid() bool {
	return t == TabPrimary || t == TabAdmin || t == TabSettings
}

// RosterStore хранит сотрудников. Save создает запись при нулевом ID, иначе обновляет
type RosterStore interface {
	List(ctx context.Context) ([]models.Responder, error)
	Save(ctx context.Context, responder models.Responder) (models.Responder, error)
	Delete(ctx context.Context, id int64) error
}

// Authenticator проверяет PIN администратора
type Authenticator interface {
	Authenticate(ctx context.Context, pin string) (bool, error)
}

// LocationResolver переводит текст оператора в координаты
type LocationResolver interface {
	Resolve(ctx context.Context, text string) (geocode.Resolution, error)
	Suggest(ctx context.Context, query string) ([]models.Suggestion, error)
}

// DispatchPublisher доставляет события диспетчеризации внешним потребителям
type DispatchPublisher interface {
	Publish(ctx context.Context, event models.DispatchEvent) error
}

// SettingsStore хранит настройки оператора
type SettingsStore interface {
	Load(ctx context.Context) (models.Settings, error)
	Save(ctx context.Context, settings models.Settings) error
}

// ResponderInput - данные формы сотрудника; координата берется из точки формы
type ResponderInput struct {
	Name     string
	Phone    string
	Area     *string
	Status   *models.Status
	ImageRef *string
}

// FormView описывает форму редактирования сотрудника
type FormView struct {
	Open           bool               `json:"open"`
	EditingID      *int64             `json:"editing_id,omitempty"`
	Candidate      *models.Coordinate `json:"candidate,omitempty"`
	CandidateLabel string             `json:"candidate_label,omitempty"`
}

// View - снимок сессии только для чтения
type View struct {
	Tab           Tab                      `json:"tab"`
	Incident      *models.Incident         `json:"incident"`
	Ranked        []models.RankedResponder `json:"ranked"`
	SelectedID    *int64                   `json:"selected_id"`
	Roster        []models.Responder       `json:"roster"`
	RosterSource  models.RosterSource      `json:"roster_source,omitempty"`
	Authenticated bool                     `json:"authenticated"`
	SidebarOpen   bool                     `json:"sidebar_open"`
	Form          FormView                 `json:"form"`
	SearchQuery   string                   `json:"search_query"`
	Suggestions   []models.Suggestion      `json:"suggestions"`
	Settings      models.Settings          `json:"settings"`
	Notice        string                   `json:"notice,omitempty"`
}

// Selected возвращает запись списка для выбранного сотрудника
func (v View) Selected() (models.RankedResponder, bool) {
	if v.SelectedID == nil {
		return models.RankedResponder{}, false
	}
	i := slices.IndexFunc(v.Ranked, func(r models.RankedResponder) bool { return r.ID == *v.SelectedID })
	if i < 0 {
		return models.RankedResponder{}, false
	}
	return v.Ranked[i], true
}

type formState struct {
	open           bool
	editingID      int64
	candidate      *models.Coordinate
	candidateLabel string
}

// state принадлежит горутине контроллера
type state struct {
	tab           Tab
	incident      *models.Incident
	roster        []models.Responder
	rosterSource  models.RosterSource
	ranked        []models.RankedResponder
	selectedID    *int64
	authenticated bool
	sidebarOpen   bool
	form          formState
	searchQuery   string
	suggestions   []models.Suggestion
	searchSeq     uint64
	rosterSeq     uint64
	rosterApplied uint64
	settings      models.Settings
	notice        string
}

func newState() *state {
	return &state{
		tab:         TabPrimary,
		roster:      []models.Responder{},
		ranked:      []models.RankedResponder{},
		suggestions: []models.Suggestion{},
		settings:    models.Settings{IncidentIcon: models.IncidentIcons[0]},
	}
}

func (s *state) view() View {
	v := View{
		Tab:           s.tab,
		Ranked:        slices.Clone(s.ranked),
		Roster:        slices.Clone(s.roster),
		RosterSource:  s.rosterSource,
		Authenticated: s.authenticated,
		SidebarOpen:   s.sidebarOpen,
		SearchQuery:   s.searchQuery,
		Suggestions:   slices.Clone(s.suggestions),
		Settings:      s.settings,
		Notice:        s.notice,
		Form:          FormView{Open: s.form.open, CandidateLabel: s.form.candidateLabel},
	}
	if s.incident != nil {
		incident := *s.incident
		v.Incident = &incident
	}
	if s.selectedID != nil {
		id := *s.selectedID
		v.SelectedID = &id
	}
	if s.form.open && s.form.editingID != 0 {
		id := s.form.editingID
		v.Form.EditingID = &id
	}
	if s.form.candidate != nil {
		c := *s.form.candidate
		v.Form.Candidate = &c
	}
	return v
}
