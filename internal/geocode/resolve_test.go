package geocode

import (
	"context"
	"errors"
	"testing"

	"github.com/Preechanamchu/KT-Monitor/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClient запоминает вызовы геокодера
type stubClient struct {
	calls   []string
	results []models.Suggestion
	err     error
}

func (s *stubClient) Search(_ context.Context, query string, limit int) ([]models.Suggestion, error) {
	s.calls = append(s.calls, query)
	if s.err != nil {
		return nil, s.err
	}
	if limit < len(s.results) {
		return s.results[:limit], nil
	}
	return s.results, nil
}

func TestParseCoordinates(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  models.Coordinate
		ok    bool
	}{
		{"plain pair", "13.7,100.5", models.Coordinate{Lat: 13.7, Lng: 100.5}, true},
		{"spaces", "  13.7563 , 100.5018 ", models.Coordinate{Lat: 13.7563, Lng: 100.5018}, true},
		{"negative", "-33.86,151.2", models.Coordinate{Lat: -33.86, Lng: 151.2}, true},
		{"integers", "13,100", models.Coordinate{Lat: 13, Lng: 100}, true},
		{"out of range", "95.0,100.0", models.Coordinate{}, false},
		{"link is not a raw pair", "https://maps.google.com/@13.7,100.5,15z", models.Coordinate{}, false},
		{"text", "Siam", models.Coordinate{}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseCoordinates(tc.input)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseMapLink(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  models.Coordinate
		ok    bool
	}{
		{"at form", "https://maps.google.com/@13.7,100.5,15z", models.Coordinate{Lat: 13.7, Lng: 100.5}, true},
		{"query form", "https://maps.google.com/maps?q=13.80,100.55", models.Coordinate{Lat: 13.80, Lng: 100.55}, true},
		{"second query param", "https://maps.google.com/maps?hl=th&q=-1.5,36.8", models.Coordinate{Lat: -1.5, Lng: 36.8}, true},
		{"no coordinates", "https://maps.google.com/place/Siam", models.Coordinate{}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ParseMapLink(tc.input)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestResolve_RawPairSkipsGeocoder(t *testing.T) {
	client := &stubClient{}
	r := NewResolver(client, 5)

	res, err := r.Resolve(context.Background(), "13.7,100.5")

	require.NoError(t, err)
	assert.Equal(t, SourceCoordinates, res.Source)
	assert.Equal(t, models.Coordinate{Lat: 13.7, Lng: 100.5}, res.Location)
	assert.Empty(t, client.calls)
}

func TestResolve_MapLinkSkipsGeocoder(t *testing.T) {
	client := &stubClient{}
	r := NewResolver(client, 5)

	res, err := r.Resolve(context.Background(), "https://maps.google.com/@13.7,100.5,15z")

	require.NoError(t, err)
	assert.Equal(t, SourceMapLink, res.Source)
	assert.Equal(t, models.Coordinate{Lat: 13.7, Lng: 100.5}, res.Location)
	assert.Empty(t, client.calls)
}

func TestResolve_FreeTextUsesGeocoder(t *testing.T) {
	siam := models.Suggestion{Label: "Siam", Location: models.Coordinate{Lat: 13.7456, Lng: 100.5341}}
	client := &stubClient{results: []models.Suggestion{siam, {Label: "other"}}}
	r := NewResolver(client, 5)

	res, err := r.Resolve(context.Background(), "Siam")

	require.NoError(t, err)
	assert.Equal(t, SourceGeocoder, res.Source)
	assert.Equal(t, siam.Location, res.Location)
	assert.Equal(t, "Siam", res.Label)
	assert.Equal(t, []string{"Siam"}, client.calls)
}

func TestResolve_NotFound(t *testing.T) {
	r := NewResolver(&stubClient{err: ErrLocationNotFound}, 5)

	_, err := r.Resolve(context.Background(), "nowhere at all")

	assert.ErrorIs(t, err, ErrLocationNotFound)
}

func TestResolve_GeocoderFailureIsNotFound(t *testing.T) {
	r := NewResolver(&stubClient{err: errors.New("connection refused")}, 5)

	_, err := r.Resolve(context.Background(), "Siam")

	assert.ErrorIs(t, err, ErrLocationNotFound)
	assert.ErrorContains(t, err, "connection refused")
}

func TestResolve_EmptyText(t *testing.T) {
	client := &stubClient{}
	r := NewResolver(client, 5)

	_, err := r.Resolve(context.Background(), "   ")

	assert.ErrorIs(t, err, ErrLocationNotFound)
	assert.Empty(t, client.calls)
}

func TestSuggest(t *testing.T) {
	results := []models.Suggestion{{Label: "a"}, {Label: "b"}, {Label: "c"}}
	r := NewResolver(&stubClient{results: results}, 2)

	got, err := r.Suggest(context.Background(), "Bangkok")

	require.NoError(t, err)
	assert.Len(t, got, 2)

	empty, err := NewResolver(&stubClient{err: ErrLocationNotFound}, 2).Suggest(context.Background(), "zz")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
