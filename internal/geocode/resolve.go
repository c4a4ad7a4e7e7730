package geocode

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/Preechanamchu/KT-Monitor/internal/models"
)

// Source - способ, которым получена координата
type Source string

const (
	SourceCoordinates Source = "coordinates"
	SourceMapLink     Source = "map_link"
	SourceGeocoder    Source = "geocoder"
)

// Resolution - результат разбора текста местоположения
type Resolution struct {
	Location models.Coordinate `json:"location"`
	Label    string            `json:"label"`
	Source   Source            `json:"source"`
}

var (
	rawPairPattern = regexp.MustCompile(`^\s*(-?\d+(?:\.\d+)?)\s*,\s*(-?\d+(?:\.\d+)?)\s*$`)
	atLinkPattern  = regexp.MustCompile(`@(-?\d+(?:\.\d+)?),(-?\d+(?:\.\d+)?)`)
	qLinkPattern   = regexp.MustCompile(`[?&]q=(-?\d+(?:\.\d+)?),(-?\d+(?:\.\d+)?)`)
)

// ParseCoordinates разбирает текст, который целиком является парой "lat, lng"
func ParseCoordinates(text string) (models.Coordinate, bool) {
	return matchPair(rawPairPattern, text)
}

// ParseMapLink достает координату из ссылки на карту: "@lat,lng" или "q=lat,lng"
func ParseMapLink(text string) (models.Coordinate, bool) {
	if c, ok := matchPair(atLinkPattern, text); ok {
		return c, true
	}
	return matchPair(qLinkPattern, text)
}

func matchPair(re *regexp.Regexp, text string) (models.Coordinate, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return models.Coordinate{}, false
	}
	lat, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return models.Coordinate{}, false
	}
	lng, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return models.Coordinate{}, false
	}
	c := models.Coordinate{Lat: lat, Lng: lng}
	if !c.Valid() {
		return models.Coordinate{}, false
	}
	return c, true
}

// Resolver переводит текст оператора в координату
type Resolver struct {
	client          Client
	suggestionLimit int
}

// NewResolver создает Resolver; suggestionLimit ограничивает число подсказок
func NewResolver(client Client, suggestionLimit int) *Resolver {
	if suggestionLimit < 1 {
		suggestionLimit = 5
	}
	return &Resolver{client: client, suggestionLimit: suggestionLimit}
}

// Resolve пробует по порядку пару координат, ссылку на карту и геокодер.
// Побеждает первый сработавший способ; геокодер вызывается, только если оба шаблона не подошли.
func (r *Resolver) Resolve(ctx context.Context, text string) (Resolution, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Resolution{}, ErrLocationNotFound
	}

	if c, ok := ParseCoordinates(text); ok {
		return Resolution{Location: c, Label: formatCoordinate(c), Source: SourceCoordinates}, nil
	}
	if c, ok := ParseMapLink(text); ok {
		return Resolution{Location: c, Label: formatCoordinate(c), Source: SourceMapLink}, nil
	}

	places, err := r.client.Search(ctx, text, 1)
	if err != nil {
		if errors.Is(err, ErrLocationNotFound) {
			return Resolution{}, ErrLocationNotFound
		}
		return Resolution{}, fmt.Errorf("%w: %w", ErrLocationNotFound, err)
	}
	if len(places) == 0 {
		return Resolution{}, ErrLocationNotFound
	}
	return Resolution{Location: places[0].Location, Label: places[0].Label, Source: SourceGeocoder}, nil
}

// Suggest возвращает подсказки геокодера для недописанного запроса
func (r *Resolver) Suggest(ctx context.Context, query string) ([]models.Suggestion, error) {
	places, err := r.client.Search(ctx, query, r.suggestionLimit)
	if err != nil {
		if errors.Is(err, ErrLocationNotFound) {
			return []models.Suggestion{}, nil
		}
		return nil, err
	}
	return places, nil
}

func formatCoordinate(c models.Coordinate) string {
	return fmt.Sprintf("%.6f, %.6f", c.Lat, c.Lng)
}
