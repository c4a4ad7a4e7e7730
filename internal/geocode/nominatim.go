// Package geocode переводит текст в координаты: пара чисел, ссылка на карту
// или название места через Nominatim.
package geocode

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Preechanamchu/KT-Monitor/internal/models"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// ErrLocationNotFound возвращается, если ни один способ не дал координату
var ErrLocationNotFound = errors.New("location not found")

const (
	DefaultNominatimURL = "https://nominatim.openstreetmap.org"
	defaultUserAgent    = "kt-monitor/1.0"
)

// Client ищет места по названию
type Client interface {
	Search(ctx context.Context, query string, limit int) ([]models.Suggestion, error)
}

// Cache хранит закодированные результаты поиска. Get при промахе возвращает nil, nil
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

type nominatimPlace struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}

// Nominatim - Client поверх поискового API OpenStreetMap Nominatim
type Nominatim struct {
	baseURL       string
	userAgent     string
	countrySuffix string
	httpClient    *http.Client
	limiter       *rate.Limiter
	cache         Cache
	cacheTTL      time.Duration
	logger        *logrus.Logger
}

// Option настраивает Nominatim
type Option func(*Nominatim)

// WithBaseURL задает адрес другого экземпляра Nominatim
func WithBaseURL(u string) Option {
	return func(n *Nominatim) {
		n.baseURL = strings.TrimRight(u, "/")
	}
}

// WithHTTPClient задает HTTP-клиент
func WithHTTPClient(hc *http.Client) Option {
	return func(n *Nominatim) {
		n.httpClient = hc
	}
}

// WithRateLimit задает лимит запросов в секунду. Публичный сервер допускает один
func WithRateLimit(rps float64) Option {
	return func(n *Nominatim) {
		burst := int(rps)
		if burst < 1 {
			burst = 1
		}
		n.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithCountrySuffix добавляет название страны к каждому запросу
func WithCountrySuffix(country string) Option {
	return func(n *Nominatim) {
		n.countrySuffix = strings.TrimSpace(country)
	}
}

// WithCache включает кэширование результатов
func WithCache(c Cache, ttl time.Duration) Option {
	return func(n *Nominatim) {
		n.cache = c
		n.cacheTTL = ttl
	}
}

// WithUserAgent задает заголовок User-Agent, обязательный по правилам Nominatim
func WithUserAgent(ua string) Option {
	return func(n *Nominatim) {
		n.userAgent = ua
	}
}

// NewNominatim создает клиент Nominatim
func NewNominatim(logger *logrus.Logger, opts ...Option) *Nominatim {
	n := &Nominatim{
		baseURL:    DefaultNominatimURL,
		userAgent:  defaultUserAgent,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		limiter:    rate.NewLimiter(1, 1),
		logger:     logger,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Search возвращает до limit мест по запросу, лучшие совпадения первыми
func (n *Nominatim) Search(ctx context.Context, query string, limit int) ([]models.Suggestion, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrLocationNotFound
	}
	if limit < 1 {
		limit = 1
	}
	log := n.logger.WithFields(logrus.Fields{
		"component": "geocode",
		"method":    "Search",
		"query":     query,
	})

	key := cacheKey(query, n.countrySuffix, limit)
	if n.cache != nil {
		if cached, err := n.fromCache(ctx, key); err != nil {
			log.WithError(err).Warn("Geocode cache read failed")
		} else if cached != nil {
			log.Debug("Geocode cache hit")
			return cached, nil
		}
	}

	if err := n.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("geocode: rate limiter: %w", err)
	}

	params := url.Values{}
	q := query
	if n.countrySuffix != "" {
		q = q + " " + n.countrySuffix
	}
	params.Set("q", q)
	params.Set("format", "json")
	params.Set("limit", strconv.Itoa(limit))
	params.Set("addressdetails", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("geocode: create request: %w", err)
	}
	req.Header.Set("User-Agent", n.userAgent)

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocode: unexpected status: %s", resp.Status)
	}

	var places []nominatimPlace
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return nil, fmt.Errorf("geocode: decode response: %w", err)
	}

	suggestions := make([]models.Suggestion, 0, len(places))
	for _, p := range places {
		lat, latErr := strconv.ParseFloat(p.Lat, 64)
		lng, lngErr := strconv.ParseFloat(p.Lon, 64)
		if latErr != nil || lngErr != nil {
			continue
		}
		suggestions = append(suggestions, models.Suggestion{
			Label:    placeLabel(p),
			Location: models.Coordinate{Lat: lat, Lng: lng},
		})
	}
	if len(suggestions) == 0 {
		log.Info("No places found")
		return nil, ErrLocationNotFound
	}

	if n.cache != nil {
		if err := n.toCache(ctx, key, suggestions); err != nil {
			log.WithError(err).Warn("Geocode cache write failed")
		}
	}
	log.WithField("count", len(suggestions)).Debug("Places found")
	return suggestions, nil
}

func (n *Nominatim) fromCache(ctx context.Context, key string) ([]models.Suggestion, error) {
	raw, err := n.cache.Get(ctx, key)
	if err != nil || raw == nil {
		return nil, err
	}
	var suggestions []models.Suggestion
	if err := json.Unmarshal(raw, &suggestions); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cached places: %w", err)
	}
	return suggestions, nil
}

func (n *Nominatim) toCache(ctx context.Context, key string, suggestions []models.Suggestion) error {
	raw, err := json.Marshal(suggestions)
	if err != nil {
		return fmt.Errorf("failed to marshal places for cache: %w", err)
	}
	return n.cache.Set(ctx, key, raw, n.cacheTTL)
}

// placeLabel берет короткое имя, иначе первую часть display_name
func placeLabel(p nominatimPlace) string {
	if p.Name != "" {
		return p.Name
	}
	first, _, _ := strings.Cut(p.DisplayName, ",")
	return strings.TrimSpace(first)
}

func cacheKey(query, suffix string, limit int) string {
	normalized := fmt.Sprintf("%s|%s|%d", strings.ToLower(strings.TrimSpace(query)), strings.ToLower(suffix), limit)
	return fmt.Sprintf("geocode:%x", sha256.Sum256([]byte(normalized)))
}
