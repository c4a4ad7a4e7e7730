package v1

import (
	"github.com/Preechanamchu/KT-Monitor/internal/models"
	"github.com/Preechanamchu/KT-Monitor/internal/session"
)

func coordinateResponse(c models.Coordinate) CoordinateResponse {
	return CoordinateResponse{Lat: c.Lat, Lng: c.Lng}
}

// ModelToResponderResponse преобразует доменную модель сотрудника в DTO
func ModelToResponderResponse(r models.Responder) ResponderResponse {
	return ResponderResponse{
		ID:       r.ID,
		Name:     r.Name,
		Phone:    r.Phone,
		Location: coordinateResponse(r.Location),
		Area:     r.Area,
		Status:   string(r.EffectiveStatus()),
		ImageRef: r.ImageRef,
	}
}

// DTOToResponderInput преобразует DTO формы в ввод для контроллера сессии
func DTOToResponderInput(dto ResponderRequest) session.ResponderInput {
	input := session.ResponderInput{
		Name:     dto.Name,
		Phone:    dto.Phone,
		Area:     dto.Area,
		ImageRef: dto.ImageRef,
	}
	if dto.Status != nil {
		status := models.Status(*dto.Status)
		input.Status = &status
	}
	return input
}

// ViewToSessionResponse преобразует снимок сессии в DTO для ответа
func ViewToSessionResponse(v session.View) SessionResponse {
	resp := SessionResponse{
		Tab:           string(v.Tab),
		SelectedID:    v.SelectedID,
		RosterSource:  string(v.RosterSource),
		Authenticated: v.Authenticated,
		SidebarOpen:   v.SidebarOpen,
		SearchQuery:   v.SearchQuery,
		IncidentIcon:  string(v.Settings.IncidentIcon),
		Notice:        v.Notice,
		Ranked:        make([]RankedResponderResponse, len(v.Ranked)),
		Roster:        make([]ResponderResponse, len(v.Roster)),
		Suggestions:   make([]SuggestionResponse, len(v.Suggestions)),
		Form: FormResponse{
			Open:           v.Form.Open,
			EditingID:      v.Form.EditingID,
			CandidateLabel: v.Form.CandidateLabel,
		},
	}
	if v.Incident != nil {
		resp.Incident = &IncidentResponse{
			ID:        v.Incident.ID,
			Location:  coordinateResponse(v.Incident.Location),
			CreatedAt: v.Incident.CreatedAt,
		}
	}
	for i, r := range v.Ranked {
		resp.Ranked[i] = RankedResponderResponse{
			ResponderResponse: ModelToResponderResponse(r.Responder),
			DistanceKm:        r.DistanceKm,
			EtaMinutes:        r.EtaMinutes,
			Selected:          v.SelectedID != nil && *v.SelectedID == r.ID,
		}
	}
	for i, r := range v.Roster {
		resp.Roster[i] = ModelToResponderResponse(r)
	}
	for i, s := range v.Suggestions {
		resp.Suggestions[i] = SuggestionResponse{Label: s.Label, Location: coordinateResponse(s.Location)}
	}
	if v.Form.Candidate != nil {
		c := coordinateResponse(*v.Form.Candidate)
		resp.Form.Candidate = &c
	}
	return resp
}
