package v1

import (
	"github.com/Preechanamchu/KT-Monitor/internal/models"
	"github.com/Preechanamchu/KT-Monitor/internal/session"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Значения свойства "kind" у объектов слоя карты
const (
	layerResponder = "responder"
	layerIncident  = "incident"
	layerCandidate = "candidate"
	layerRoute     = "route"
)

func toPoint(c models.Coordinate) orb.Point {
	return orb.Point{c.Lng, c.Lat}
}

// BuildLayers строит GeoJSON слой карты: сотрудники, точка происшествия,
// точка из формы и прямая линия маршрута от выбранного сотрудника до происшествия
func BuildLayers(v session.View) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	ranked := make(map[int64]models.RankedResponder, len(v.Ranked))
	for _, r := range v.Ranked {
		ranked[r.ID] = r
	}

	for _, r := range v.Roster {
		f := geojson.NewFeature(toPoint(r.Location))
		f.ID = r.ID
		f.Properties["kind"] = layerResponder
		f.Properties["id"] = r.ID
		f.Properties["name"] = r.Name
		f.Properties["phone"] = r.Phone
		f.Properties["status"] = string(r.EffectiveStatus())
		if r.Area != nil {
			f.Properties["area"] = *r.Area
		}
		if r.ImageRef != nil {
			f.Properties["image_ref"] = *r.ImageRef
		}
		f.Properties["selected"] = v.SelectedID != nil && *v.SelectedID == r.ID
		if rr, ok := ranked[r.ID]; ok {
			f.Properties["distance_km"] = rr.DistanceKm
			f.Properties["eta_minutes"] = rr.EtaMinutes
		}
		fc.Append(f)
	}

	if v.Incident != nil {
		f := geojson.NewFeature(toPoint(v.Incident.Location))
		f.ID = v.Incident.ID.String()
		f.Properties["kind"] = layerIncident
		f.Properties["icon"] = string(v.Settings.IncidentIcon)
		f.Properties["created_at"] = v.Incident.CreatedAt
		fc.Append(f)

		if selected, ok := v.Selected(); ok {
			route := geojson.NewFeature(orb.LineString{
				toPoint(selected.Location),
				toPoint(v.Incident.Location),
			})
			route.Properties["kind"] = layerRoute
			route.Properties["responder_id"] = selected.ID
			route.Properties["distance_km"] = selected.DistanceKm
			route.Properties["eta_minutes"] = selected.EtaMinutes
			fc.Append(route)
		}
	}

	if v.Form.Open && v.Form.Candidate != nil {
		f := geojson.NewFeature(toPoint(*v.Form.Candidate))
		f.Properties["kind"] = layerCandidate
		f.Properties["label"] = v.Form.CandidateLabel
		fc.Append(f)
	}

	return fc
}
