// Package ranking оценивает путь сотрудников до происшествия и упорядочивает их по расстоянию.
//
// Расстояние - дуга большого круга (гаверсинус), умноженная на коэффициент извилистости дорог;
// время в пути считается при постоянной средней скорости. Обе константы эмпирические и настраиваются.
package ranking

import (
	"math"
	"slices"

	"github.com/Preechanamchu/KT-Monitor/internal/models"
)

const (
	// EarthRadiusKm - радиус Земли для формулы гаверсинуса
	EarthRadiusKm = 6371.0

	// DefaultRoadFactor переводит расстояние по прямой в примерное расстояние по дорогам
	DefaultRoadFactor = 1.35

	// DefaultAverageSpeedKmh - средняя скорость в городе для расчета времени прибытия
	DefaultAverageSpeedKmh = 30.0

	// SuggestedMaxResults - длина списка на панели. По умолчанию движок список не обрезает
	SuggestedMaxResults = 10
)

// Travel - оценка пути между двумя точками
type Travel struct {
	DistanceKm float64 `json:"distance_km"`
	EtaMinutes float64 `json:"eta_minutes"`
}

// Engine ранжирует сотрудников с фиксированным набором констант
type Engine struct {
	roadFactor      float64
	averageSpeedKmh float64
	maxResults      int
}

// Option настраивает Engine
type Option func(*Engine)

// WithRoadFactor задает коэффициент извилистости дорог, неположительные значения игнорируются
func WithRoadFactor(f float64) Option {
	return func(e *Engine) {
		if f > 0 {
			e.roadFactor = f
		}
	}
}

// WithAverageSpeed задает среднюю скорость в км/ч, неположительные значения игнорируются
func WithAverageSpeed(kmh float64) Option {
	return func(e *Engine) {
		if kmh > 0 {
			e.averageSpeedKmh = kmh
		}
	}
}

// WithMaxResults ограничивает длину списка, ноль или отрицательное значение - без ограничения
func WithMaxResults(n int) Option {
	return func(e *Engine) {
		if n < 0 {
			n = 0
		}
		e.maxResults = n
	}
}

// NewEngine создает Engine с константами по умолчанию и без ограничения длины списка
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		roadFactor:      DefaultRoadFactor,
		averageSpeedKmh: DefaultAverageSpeedKmh,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEngine = NewEngine()

// HaversineKm возвращает расстояние по дуге большого круга в километрах
func HaversineKm(a, b models.Coordinate) float64 {
	dLat := degToRad(b.Lat - a.Lat)
	dLng := degToRad(b.Lng - a.Lng)

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)
	h := sinLat*sinLat + math.Cos(degToRad(a.Lat))*math.Cos(degToRad(b.Lat))*sinLng*sinLng

	return 2 * EarthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// EstimateTravel оценивает расстояние по дорогам и время в пути
func (e *Engine) EstimateTravel(from, to models.Coordinate) Travel {
	distance := HaversineKm(from, to) * e.roadFactor
	return Travel{
		DistanceKm: distance,
		EtaMinutes: distance / e.averageSpeedKmh * 60,
	}
}

// Rank дополняет каждого сотрудника оценкой пути до происшествия и возвращает список
// по возрастанию расстояния. При равных расстояниях сохраняется порядок реестра.
// Исходный реестр не изменяется.
func (e *Engine) Rank(incident models.Coordinate, roster []models.Responder) []models.RankedResponder {
	ranked := make([]models.RankedResponder, 0, len(roster))
	for _, r := range roster {
		t := e.EstimateTravel(r.Location, incident)
		ranked = append(ranked, models.RankedResponder{
			Responder:  r,
			DistanceKm: t.DistanceKm,
			EtaMinutes: t.EtaMinutes,
		})
	}

	slices.SortStableFunc(ranked, func(a, b models.RankedResponder) int {
		switch {
		case a.DistanceKm < b.DistanceKm:
			return -1
		case a.DistanceKm > b.DistanceKm:
			return 1
		}
		return 0
	})

	if e.maxResults > 0 && len(ranked) > e.maxResults {
		ranked = ranked[:e.maxResults]
	}
	return ranked
}

// MaxResults возвращает ограничение длины списка, ноль - без ограничения
func (e *Engine) MaxResults() int {
	return e.maxResults
}

// EstimateTravel оценивает путь с константами по умолчанию
func EstimateTravel(from, to models.Coordinate) Travel {
	return defaultEngine.EstimateTravel(from, to)
}

// Rank ранжирует с константами по умолчанию и без ограничения
func Rank(incident models.Coordinate, roster []models.Responder) []models.RankedResponder {
	return defaultEngine.Rank(incident, roster)
}

// DefaultSelection возвращает id ближайшего сотрудника или nil для пустого списка
func DefaultSelection(ranked []models.RankedResponder) *int64 {
	if len(ranked) == 0 {
		return nil
	}
	id := ranked[0].ID
	return &id
}

// Contains сообщает, есть ли id в списке
func Contains(ranked []models.RankedResponder, id int64) bool {
	return slices.ContainsFunc(ranked, func(r models.RankedResponder) bool { return r.ID == id })
}

func degToRad(d float64) float64 {
	return d * math.Pi / 180
}
