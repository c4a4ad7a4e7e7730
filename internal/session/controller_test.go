package session_test

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Preechanamchu/KT-Monitor/internal/geocode"
	"github.com/Preechanamchu/KT-Monitor/internal/models"
	"github.com/Preechanamchu/KT-Monitor/internal/session"
	"github.com/Preechanamchu/KT-Monitor/internal/session/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var (
	bangkokIncident = models.Coordinate{Lat: 13.7563, Lng: 100.5018}

	responderOne = models.Responder{ID: 1, Name: "วิชัย รวดเร็ว", Phone: "089-222-2222", Location: models.Coordinate{Lat: 13.69, Lng: 100.60}}
	responderTwo = models.Responder{ID: 2, Name: "อำนาจ ประหยัด", Phone: "085-333-3333", Location: models.Coordinate{Lat: 13.80, Lng: 100.55}}
)

// recordingPublisher собирает опубликованные события
type recordingPublisher struct {
	mu     sync.Mutex
	events []models.DispatchEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event models.DispatchEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) Events() []models.DispatchEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]models.DispatchEvent(nil), p.events...)
}

type fixture struct {
	ctrl      session.Controller
	remote    *mocks.MockRosterStore
	local     *mocks.MockRosterStore
	auth      *mocks.MockAuthenticator
	resolver  *mocks.MockLocationResolver
	settings  *mocks.MockSettingsStore
	publisher *recordingPublisher
	stop      func()
}

func newTestController(t *testing.T, opts ...session.Option) *fixture {
	t.Helper()
	gc := gomock.NewController(t)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	f := &fixture{
		remote:    mocks.NewMockRosterStore(gc),
		local:     mocks.NewMockRosterStore(gc),
		auth:      mocks.NewMockAuthenticator(gc),
		resolver:  mocks.NewMockLocationResolver(gc),
		settings:  mocks.NewMockSettingsStore(gc),
		publisher: &recordingPublisher{},
	}
	opts = append([]session.Option{session.WithSearchDebounce(0)}, opts...)
	f.ctrl = session.NewController(session.Deps{
		Remote:    f.remote,
		Local:     f.local,
		Auth:      f.auth,
		Resolver:  f.resolver,
		Publisher: f.publisher,
		Settings:  f.settings,
		Logger:    logger,
	}, opts...)

	ctx, cancel := context.WithCancel(context.Background())
	f.ctrl.Start(ctx)
	var once sync.Once
	f.stop = func() {
		once.Do(func() {
			cancel()
			<-f.ctrl.Done()
		})
	}
	t.Cleanup(f.stop)
	return f
}

func (f *fixture) loadRemote(t *testing.T, roster ...models.Responder) session.View {
	t.Helper()
	f.remote.EXPECT().List(gomock.Any()).Return(roster, nil)
	view, err := f.ctrl.RefreshRoster(context.Background())
	require.NoError(t, err)
	return view
}

func (f *fixture) login(t *testing.T) {
	t.Helper()
	f.auth.EXPECT().Authenticate(gomock.Any(), "210406").Return(true, nil)
	_, err := f.ctrl.Login(context.Background(), "210406")
	require.NoError(t, err)
}

func rankedIDs(v session.View) []int64 {
	ids := make([]int64, 0, len(v.Ranked))
	for _, r := range v.Ranked {
		ids = append(ids, r.ID)
	}
	return ids
}

func requireSelected(t *testing.T, v session.View, id int64) {
	t.Helper()
	require.NotNil(t, v.SelectedID)
	assert.Equal(t, id, *v.SelectedID)
}

func TestMapClick_SetsIncidentAndSelectsNearest(t *testing.T) {
	f := newTestController(t)
	f.loadRemote(t, responderOne, responderTwo)

	view, err := f.ctrl.MapClick(context.Background(), bangkokIncident)
	require.NoError(t, err)

	require.NotNil(t, view.Incident)
	assert.Equal(t, bangkokIncident, view.Incident.Location)
	assert.Equal(t, []int64{2, 1}, rankedIDs(view))
	assert.Less(t, view.Ranked[0].DistanceKm, view.Ranked[1].DistanceKm)
	requireSelected(t, view, 2)
	assert.True(t, view.SidebarOpen)

	events := f.publisher.Events()
	require.Len(t, events, 1)
	assert.Equal(t, models.EventIncidentSet, events[0].Type)
	require.NotNil(t, events[0].Responder)
	assert.Equal(t, int64(2), events[0].Responder.ID)
}

func TestMapClick_NewIncidentResetsSelectionToTop(t *testing.T) {
	f := newTestController(t)
	f.loadRemote(t, responderOne, responderTwo)
	ctx := context.Background()

	first, err := f.ctrl.MapClick(ctx, bangkokIncident)
	require.NoError(t, err)
	_, err = f.ctrl.SelectResponder(ctx, 1)
	require.NoError(t, err)

	second, err := f.ctrl.MapClick(ctx, bangkokIncident)
	require.NoError(t, err)
	requireSelected(t, second, 2)
	assert.NotEqual(t, first.Incident.ID, second.Incident.ID, "a new incident replaces the old one")

	nearOne, err := f.ctrl.MapClick(ctx, models.Coordinate{Lat: 13.691, Lng: 100.599})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2}, rankedIDs(nearOne))
	requireSelected(t, nearOne, 1)
}

func TestMapClick_EmptyRoster(t *testing.T) {
	f := newTestController(t)
	f.loadRemote(t)

	view, err := f.ctrl.MapClick(context.Background(), bangkokIncident)
	require.NoError(t, err)
	assert.NotNil(t, view.Incident)
	assert.Empty(t, view.Ranked)
	assert.Nil(t, view.SelectedID)
}

func TestMapClick_InvalidCoordinate(t *testing.T) {
	f := newTestController(t)

	_, err := f.ctrl.MapClick(context.Background(), models.Coordinate{Lat: 91, Lng: 0})
	assert.ErrorIs(t, err, session.ErrInvalidInput)
}

func TestMapClick_AdminTab(t *testing.T) {
	f := newTestController(t)
	f.loadRemote(t, responderOne, responderTwo)
	ctx := context.Background()

	_, err := f.ctrl.SwitchTab(ctx, session.TabAdmin)
	require.NoError(t, err)

	// Без входа ничего не происходит
	view, err := f.ctrl.MapClick(ctx, bangkokIncident)
	require.NoError(t, err)
	assert.Nil(t, view.Incident)
	assert.Nil(t, view.Form.Candidate)

	f.login(t)
	_, err = f.ctrl.OpenForm(ctx, nil)
	require.NoError(t, err)

	view, err = f.ctrl.MapClick(ctx, bangkokIncident)
	require.NoError(t, err)
	assert.Nil(t, view.Incident, "admin clicks never touch the incident")
	require.NotNil(t, view.Form.Candidate)
	assert.Equal(t, bangkokIncident, *view.Form.Candidate)
	assert.Equal(t, "map", view.Form.CandidateLabel)
	assert.Empty(t, f.publisher.Events())
}

func TestSelectResponder(t *testing.T) {
	f := newTestController(t)
	f.loadRemote(t, responderOne, responderTwo)
	ctx := context.Background()

	_, err := f.ctrl.SelectResponder(ctx, 1)
	assert.ErrorIs(t, err, session.ErrNoIncident)

	_, err = f.ctrl.MapClick(ctx, bangkokIncident)
	require.NoError(t, err)

	view, err := f.ctrl.SelectResponder(ctx, 1)
	require.NoError(t, err)
	requireSelected(t, view, 1)
	assert.Equal(t, []int64{2, 1}, rankedIDs(view), "selection does not re-sort")

	_, err = f.ctrl.SelectResponder(ctx, 42)
	assert.ErrorIs(t, err, session.ErrNotInRanking)

	view, err = f.ctrl.View(ctx)
	require.NoError(t, err)
	requireSelected(t, view, 1)

	events := f.publisher.Events()
	require.Len(t, events, 2)
	assert.Equal(t, models.EventSelectionChanged, events[1].Type)
	assert.Equal(t, int64(1), events[1].Responder.ID)
}

func TestClearIncident(t *testing.T) {
	f := newTestController(t)
	f.loadRemote(t, responderOne, responderTwo)
	ctx := context.Background()

	_, err := f.ctrl.MapClick(ctx, bangkokIncident)
	require.NoError(t, err)

	view, err := f.ctrl.ClearIncident(ctx)
	require.NoError(t, err)
	assert.Nil(t, view.Incident)
	assert.Empty(t, view.Ranked)
	assert.NotNil(t, view.Ranked)
	assert.Nil(t, view.SelectedID)
	assert.Len(t, view.Roster, 2, "roster survives a clear")

	events := f.publisher.Events()
	require.Len(t, events, 2)
	assert.Equal(t, models.EventIncidentCleared, events[1].Type)
	require.NotNil(t, events[1].Incident)

	// Повторная очистка ничего не меняет
	_, err = f.ctrl.ClearIncident(ctx)
	require.NoError(t, err)
	assert.Len(t, f.publisher.Events(), 2)
}

func TestRefreshRoster_RepairsSelection(t *testing.T) {
	f := newTestController(t)
	f.loadRemote(t, responderOne, responderTwo)
	ctx := context.Background()

	_, err := f.ctrl.MapClick(ctx, bangkokIncident)
	require.NoError(t, err)

	// Выбранный сотрудник 2 пропал, выбирается новый первый
	view := f.loadRemote(t, responderOne)
	assert.Equal(t, []int64{1}, rankedIDs(view))
	requireSelected(t, view, 1)

	events := f.publisher.Events()
	require.Len(t, events, 2)
	assert.Equal(t, models.EventSelectionChanged, events[1].Type)
}

func TestRefreshRoster_KeepsSelectionWhenPresent(t *testing.T) {
	f := newTestController(t)
	f.loadRemote(t, responderOne, responderTwo)
	ctx := context.Background()

	_, err := f.ctrl.MapClick(ctx, bangkokIncident)
	require.NoError(t, err)
	_, err = f.ctrl.SelectResponder(ctx, 1)
	require.NoError(t, err)

	closest := models.Responder{ID: 3, Name: "สมชาย ใจดี", Phone: "081-111-1111", Location: bangkokIncident}
	view := f.loadRemote(t, responderOne, responderTwo, closest)
	assert.Equal(t, []int64{3, 2, 1}, rankedIDs(view))
	requireSelected(t, view, 1)
}

func TestRefreshRoster_EmptiedRosterClearsSelection(t *testing.T) {
	f := newTestController(t)
	f.loadRemote(t, responderOne)
	ctx := context.Background()

	_, err := f.ctrl.MapClick(ctx, bangkokIncident)
	require.NoError(t, err)

	view := f.loadRemote(t)
	assert.NotNil(t, view.Incident)
	assert.Empty(t, view.Ranked)
	assert.Nil(t, view.SelectedID)
}

func TestRefreshRoster_FallsBackToLocal(t *testing.T) {
	f := newTestController(t)
	f.remote.EXPECT().List(gomock.Any()).Return(nil, errors.New("connection refused"))
	f.local.EXPECT().List(gomock.Any()).Return([]models.Responder{responderOne}, nil)

	view, err := f.ctrl.RefreshRoster(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.RosterLocal, view.RosterSource)
	assert.Len(t, view.Roster, 1)
}

func TestRefreshRoster_Unavailable(t *testing.T) {
	f := newTestController(t)
	f.loadRemote(t, responderOne, responderTwo)

	f.remote.EXPECT().List(gomock.Any()).Return(nil, errors.New("connection refused"))
	f.local.EXPECT().List(gomock.Any()).Return(nil, errors.New("disk I/O error"))

	_, err := f.ctrl.RefreshRoster(context.Background())
	assert.ErrorIs(t, err, session.ErrRosterUnavailable)

	view, err := f.ctrl.View(context.Background())
	require.NoError(t, err)
	assert.Len(t, view.Roster, 2, "previous snapshot is kept")
	assert.Equal(t, models.RosterRemote, view.RosterSource)
	assert.NotEmpty(t, view.Notice)
}

func TestRefreshRoster_OlderSnapshotDiscarded(t *testing.T) {
	f := newTestController(t)
	ctx := context.Background()

	firstStarted := make(chan struct{})
	release := make(chan struct{})
	f.remote.EXPECT().List(gomock.Any()).DoAndReturn(
		func(context.Context) ([]models.Responder, error) {
			close(firstStarted)
			<-release
			return []models.Responder{responderOne}, nil
		})
	f.remote.EXPECT().List(gomock.Any()).Return([]models.Responder{responderOne, responderTwo}, nil)

	type result struct {
		view session.View
		err  error
	}
	older := make(chan result, 1)
	go func() {
		v, err := f.ctrl.RefreshRoster(ctx)
		older <- result{v, err}
	}()
	<-firstStarted

	view, err := f.ctrl.RefreshRoster(ctx)
	require.NoError(t, err)
	assert.Len(t, view.Roster, 2)

	close(release)
	res := <-older
	require.NoError(t, res.err)
	assert.Len(t, res.view.Roster, 2, "the newer snapshot stays in place")

	view, err = f.ctrl.View(ctx)
	require.NoError(t, err)
	assert.Len(t, view.Roster, 2)
}

func TestRefreshRoster_FailedNewerLoadKeepsOlderSnapshot(t *testing.T) {
	f := newTestController(t)
	ctx := context.Background()

	firstStarted := make(chan struct{})
	release := make(chan struct{})
	f.remote.EXPECT().List(gomock.Any()).DoAndReturn(
		func(context.Context) ([]models.Responder, error) {
			close(firstStarted)
			<-release
			return []models.Responder{responderOne, responderTwo}, nil
		})
	f.remote.EXPECT().List(gomock.Any()).Return(nil, errors.New("connection refused"))
	f.local.EXPECT().List(gomock.Any()).Return(nil, errors.New("disk I/O error"))

	older := make(chan error, 1)
	go func() {
		_, err := f.ctrl.RefreshRoster(ctx)
		older <- err
	}()
	<-firstStarted

	_, err := f.ctrl.RefreshRoster(ctx)
	assert.ErrorIs(t, err, session.ErrRosterUnavailable)

	close(release)
	require.NoError(t, <-older)

	view, err := f.ctrl.View(ctx)
	require.NoError(t, err)
	assert.Len(t, view.Roster, 2)
}

func TestRefreshRoster_StartedBeforeSaveDoesNotUndoIt(t *testing.T) {
	f := newTestController(t)
	f.loadRemote(t, responderOne)
	f.openNewForm(t, responderTwo.Location)
	ctx := context.Background()

	refreshStarted := make(chan struct{})
	release := make(chan struct{})
	f.remote.EXPECT().List(gomock.Any()).DoAndReturn(
		func(context.Context) ([]models.Responder, error) {
			close(refreshStarted)
			<-release
			return []models.Responder{responderOne}, nil
		})
	f.remote.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r models.Responder) (models.Responder, error) {
			r.ID = 2
			return r, nil
		})
	f.remote.EXPECT().List(gomock.Any()).Return([]models.Responder{responderOne, responderTwo}, nil)

	refreshed := make(chan error, 1)
	go func() {
		_, err := f.ctrl.RefreshRoster(ctx)
		refreshed <- err
	}()
	<-refreshStarted

	view, err := f.ctrl.SaveResponder(ctx, session.ResponderInput{Name: "อำนาจ ประหยัด", Phone: "085-333-3333"})
	require.NoError(t, err)
	assert.Len(t, view.Roster, 2)

	close(release)
	require.NoError(t, <-refreshed)

	view, err = f.ctrl.View(ctx)
	require.NoError(t, err)
	assert.Len(t, view.Roster, 2)
	assert.Equal(t, "responder saved", view.Notice)
}

func TestLogin(t *testing.T) {
	f := newTestController(t)
	ctx := context.Background()

	f.auth.EXPECT().Authenticate(gomock.Any(), "0000").Return(false, nil)
	_, err := f.ctrl.Login(ctx, "0000")
	assert.ErrorIs(t, err, session.ErrInvalidPIN)

	view, err := f.ctrl.View(ctx)
	require.NoError(t, err)
	assert.False(t, view.Authenticated)

	// После ошибки блокировки нет
	f.login(t)
	view, err = f.ctrl.View(ctx)
	require.NoError(t, err)
	assert.True(t, view.Authenticated)

	_, err = f.ctrl.Login(ctx, "210406")
	assert.ErrorIs(t, err, session.ErrAlreadyAuthenticated)
}

func TestLogin_AuthUnavailable(t *testing.T) {
	f := newTestController(t)

	f.auth.EXPECT().Authenticate(gomock.Any(), "210406").Return(false, errors.New("admin store down"))
	_, err := f.ctrl.Login(context.Background(), "210406")
	assert.ErrorIs(t, err, session.ErrInvalidPIN)
}

func TestLogout(t *testing.T) {
	f := newTestController(t)
	ctx := context.Background()

	_, err := f.ctrl.Logout(ctx)
	assert.ErrorIs(t, err, session.ErrNotAuthenticated)

	f.login(t)
	_, err = f.ctrl.OpenForm(ctx, nil)
	require.NoError(t, err)

	view, err := f.ctrl.Logout(ctx)
	require.NoError(t, err)
	assert.False(t, view.Authenticated)
	assert.Equal(t, session.TabPrimary, view.Tab)
	assert.False(t, view.Form.Open)
}

func TestSwitchTabAndSidebar(t *testing.T) {
	f := newTestController(t)
	ctx := context.Background()

	view, err := f.ctrl.SwitchTab(ctx, session.TabSettings)
	require.NoError(t, err)
	assert.Equal(t, session.TabSettings, view.Tab)

	_, err = f.ctrl.SwitchTab(ctx, session.Tab("reports"))
	assert.ErrorIs(t, err, session.ErrInvalidInput)

	view, err = f.ctrl.ToggleSidebar(ctx)
	require.NoError(t, err)
	assert.True(t, view.SidebarOpen)
	view, err = f.ctrl.ToggleSidebar(ctx)
	require.NoError(t, err)
	assert.False(t, view.SidebarOpen)

	// Клики на вкладке настроек игнорируются
	view, err = f.ctrl.MapClick(ctx, bangkokIncident)
	require.NoError(t, err)
	assert.Nil(t, view.Incident)
}

func TestSearch_StaleResultDiscarded(t *testing.T) {
	f := newTestController(t)
	ctx := context.Background()

	bangkStarted := make(chan struct{})
	release := make(chan struct{})
	bangk := []models.Suggestion{{Label: "Bang Kho Laem"}}
	bangkok := []models.Suggestion{{Label: "Bangkok", Location: models.Coordinate{Lat: 13.75, Lng: 100.50}}}

	f.resolver.EXPECT().Suggest(gomock.Any(), "Bangk").DoAndReturn(
		func(context.Context, string) ([]models.Suggestion, error) {
			close(bangkStarted)
			<-release
			return bangk, nil
		})
	f.resolver.EXPECT().Suggest(gomock.Any(), "Bangkok").Return(bangkok, nil)

	staleErr := make(chan error, 1)
	go func() {
		_, err := f.ctrl.Search(ctx, "Bangk")
		staleErr <- err
	}()
	<-bangkStarted

	view, err := f.ctrl.Search(ctx, "Bangkok")
	require.NoError(t, err)
	assert.Equal(t, bangkok, view.Suggestions)

	close(release)
	assert.ErrorIs(t, <-staleErr, session.ErrStaleSearch)

	view, err = f.ctrl.View(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Bangkok", view.SearchQuery)
	assert.Equal(t, bangkok, view.Suggestions)
}

func TestSearch_DebounceSkipsSupersededLookup(t *testing.T) {
	f := newTestController(t, session.WithSearchDebounce(100*time.Millisecond))
	ctx := context.Background()

	bangkok := []models.Suggestion{{Label: "Bangkok"}}
	// До геокодера доходит только последний запрос
	f.resolver.EXPECT().Suggest(gomock.Any(), "Bangkok").Return(bangkok, nil)

	staleErr := make(chan error, 1)
	go func() {
		_, err := f.ctrl.Search(ctx, "Bangk")
		staleErr <- err
	}()
	require.Eventually(t, func() bool {
		v, err := f.ctrl.View(ctx)
		return err == nil && v.SearchQuery == "Bangk"
	}, time.Second, 5*time.Millisecond)

	view, err := f.ctrl.Search(ctx, "Bangkok")
	require.NoError(t, err)
	assert.Equal(t, bangkok, view.Suggestions)
	assert.ErrorIs(t, <-staleErr, session.ErrStaleSearch)
}

func TestSearch_ShortQueryClearsSuggestions(t *testing.T) {
	f := newTestController(t)
	ctx := context.Background()

	f.resolver.EXPECT().Suggest(gomock.Any(), "Siam").Return([]models.Suggestion{{Label: "Siam"}}, nil)
	view, err := f.ctrl.Search(ctx, "Siam")
	require.NoError(t, err)
	assert.Len(t, view.Suggestions, 1)

	view, err = f.ctrl.Search(ctx, "S")
	require.NoError(t, err)
	assert.Empty(t, view.Suggestions)
	assert.Equal(t, "S", view.SearchQuery)
}

func TestSearch_LookupFailure(t *testing.T) {
	f := newTestController(t)

	f.resolver.EXPECT().Suggest(gomock.Any(), "Siam").Return(nil, errors.New("timeout"))
	view, err := f.ctrl.Search(context.Background(), "Siam")
	require.NoError(t, err)
	assert.Empty(t, view.Suggestions)
	assert.NotEmpty(t, view.Notice)
}

func TestAcceptLocation(t *testing.T) {
	f := newTestController(t)
	f.loadRemote(t, responderOne, responderTwo)
	ctx := context.Background()

	f.resolver.EXPECT().Resolve(gomock.Any(), "13.7563, 100.5018").Return(geocode.Resolution{
		Location: bangkokIncident,
		Label:    "13.756300, 100.501800",
		Source:   geocode.SourceCoordinates,
	}, nil)

	view, err := f.ctrl.AcceptLocation(ctx, "13.7563, 100.5018")
	require.NoError(t, err)
	require.NotNil(t, view.Incident)
	assert.Equal(t, bangkokIncident, view.Incident.Location)
	requireSelected(t, view, 2)
	assert.Equal(t, "13.756300, 100.501800", view.SearchQuery)
}

func TestAcceptLocation_NotFound(t *testing.T) {
	f := newTestController(t)
	ctx := context.Background()

	f.resolver.EXPECT().Resolve(gomock.Any(), "nowhere").Return(geocode.Resolution{}, geocode.ErrLocationNotFound)

	_, err := f.ctrl.AcceptLocation(ctx, "nowhere")
	assert.ErrorIs(t, err, session.ErrLocationNotFound)

	view, err := f.ctrl.View(ctx)
	require.NoError(t, err)
	assert.Nil(t, view.Incident)
	assert.Equal(t, "location not found", view.Notice)
}

func TestAcceptLocation_AdminFormClosed(t *testing.T) {
	f := newTestController(t)
	ctx := context.Background()
	f.login(t)

	_, err := f.ctrl.SwitchTab(ctx, session.TabAdmin)
	require.NoError(t, err)

	_, err = f.ctrl.AcceptLocation(ctx, "Siam")
	assert.ErrorIs(t, err, session.ErrFormClosed)
}

func TestAcceptLocation_OlderResultDiscarded(t *testing.T) {
	f := newTestController(t)
	f.loadRemote(t, responderOne, responderTwo)
	ctx := context.Background()

	bangkStarted := make(chan struct{})
	release := make(chan struct{})
	f.resolver.EXPECT().Resolve(gomock.Any(), "Bangk").DoAndReturn(
		func(context.Context, string) (geocode.Resolution, error) {
			close(bangkStarted)
			<-release
			return geocode.Resolution{Location: models.Coordinate{Lat: 13, Lng: 100}, Label: "Bang Kho Laem"}, nil
		})
	f.resolver.EXPECT().Resolve(gomock.Any(), "Bangkok").Return(geocode.Resolution{
		Location: bangkokIncident,
		Label:    "Bangkok",
		Source:   geocode.SourceGeocoder,
	}, nil)

	staleErr := make(chan error, 1)
	go func() {
		_, err := f.ctrl.AcceptLocation(ctx, "Bangk")
		staleErr <- err
	}()
	<-bangkStarted

	view, err := f.ctrl.AcceptLocation(ctx, "Bangkok")
	require.NoError(t, err)
	require.NotNil(t, view.Incident)
	assert.Equal(t, bangkokIncident, view.Incident.Location)

	close(release)
	assert.ErrorIs(t, <-staleErr, session.ErrStaleSearch)

	view, err = f.ctrl.View(ctx)
	require.NoError(t, err)
	require.NotNil(t, view.Incident)
	assert.Equal(t, bangkokIncident, view.Incident.Location)
	assert.Equal(t, "Bangkok", view.SearchQuery)
	assert.Len(t, f.publisher.Events(), 1)
}

func TestAcceptLocation_SupersededByMapClickOrClear(t *testing.T) {
	for _, tc := range []struct {
		name         string
		act          func(ctx context.Context, c session.Controller) error
		wantIncident bool
	}{
		{
			name: "map click",
			act: func(ctx context.Context, c session.Controller) error {
				_, err := c.MapClick(ctx, bangkokIncident)
				return err
			},
			wantIncident: true,
		},
		{
			name: "clear",
			act: func(ctx context.Context, c session.Controller) error {
				_, err := c.ClearIncident(ctx)
				return err
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			f := newTestController(t)
			ctx := context.Background()

			started := make(chan struct{})
			release := make(chan struct{})
			f.resolver.EXPECT().Resolve(gomock.Any(), "Siam").DoAndReturn(
				func(context.Context, string) (geocode.Resolution, error) {
					close(started)
					<-release
					return geocode.Resolution{Location: models.Coordinate{Lat: 13.7456, Lng: 100.5341}, Label: "Siam"}, nil
				})

			staleErr := make(chan error, 1)
			go func() {
				_, err := f.ctrl.AcceptLocation(ctx, "Siam")
				staleErr <- err
			}()
			<-started

			require.NoError(t, tc.act(ctx, f.ctrl))
			close(release)
			assert.ErrorIs(t, <-staleErr, session.ErrStaleSearch)

			view, err := f.ctrl.View(ctx)
			require.NoError(t, err)
			if tc.wantIncident {
				require.NotNil(t, view.Incident)
				assert.Equal(t, bangkokIncident, view.Incident.Location)
			} else {
				assert.Nil(t, view.Incident)
			}
		})
	}
}

func TestChooseSuggestion(t *testing.T) {
	f := newTestController(t)
	f.loadRemote(t, responderOne, responderTwo)
	ctx := context.Background()

	siam := models.Suggestion{Label: "Siam", Location: models.Coordinate{Lat: 13.7456, Lng: 100.5341}}
	f.resolver.EXPECT().Suggest(gomock.Any(), "Siam").Return([]models.Suggestion{siam}, nil)
	_, err := f.ctrl.Search(ctx, "Siam")
	require.NoError(t, err)

	_, err = f.ctrl.ChooseSuggestion(ctx, 3)
	assert.ErrorIs(t, err, session.ErrInvalidInput)

	view, err := f.ctrl.ChooseSuggestion(ctx, 0)
	require.NoError(t, err)
	require.NotNil(t, view.Incident)
	assert.Equal(t, siam.Location, view.Incident.Location)
	assert.Empty(t, view.Suggestions)
	assert.Equal(t, "Siam", view.SearchQuery)
}

func TestOpenForm(t *testing.T) {
	f := newTestController(t)
	f.loadRemote(t, responderOne, responderTwo)
	ctx := context.Background()

	_, err := f.ctrl.OpenForm(ctx, nil)
	assert.ErrorIs(t, err, session.ErrNotAuthenticated)

	f.login(t)
	missing := int64(99)
	_, err = f.ctrl.OpenForm(ctx, &missing)
	assert.ErrorIs(t, err, session.ErrResponderNotFound)

	id := int64(1)
	view, err := f.ctrl.OpenForm(ctx, &id)
	require.NoError(t, err)
	assert.Equal(t, session.TabAdmin, view.Tab)
	assert.True(t, view.Form.Open)
	require.NotNil(t, view.Form.EditingID)
	assert.Equal(t, int64(1), *view.Form.EditingID)
	assert.Equal(t, responderOne.Location, *view.Form.Candidate)

	view, err = f.ctrl.CloseForm(ctx)
	require.NoError(t, err)
	assert.False(t, view.Form.Open)
	assert.Nil(t, view.Form.Candidate)
}

func (f *fixture) openNewForm(t *testing.T, at models.Coordinate) {
	t.Helper()
	ctx := context.Background()
	f.login(t)
	_, err := f.ctrl.OpenForm(ctx, nil)
	require.NoError(t, err)
	_, err = f.ctrl.MapClick(ctx, at)
	require.NoError(t, err)
}

func TestSaveResponder_Remote(t *testing.T) {
	f := newTestController(t)
	f.loadRemote(t, responderOne)
	f.openNewForm(t, responderTwo.Location)

	area := " จตุจักร "
	f.remote.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, r models.Responder) (models.Responder, error) {
			assert.Equal(t, int64(0), r.ID)
			assert.Equal(t, "อำนาจ ประหยัด", r.Name)
			assert.Equal(t, responderTwo.Location, r.Location)
			require.NotNil(t, r.Area)
			assert.Equal(t, "จตุจักร", *r.Area)
			r.ID = 2
			return r, nil
		})
	f.remote.EXPECT().List(gomock.Any()).Return([]models.Responder{responderOne, responderTwo}, nil)

	view, err := f.ctrl.SaveResponder(context.Background(), session.ResponderInput{
		Name:  "  อำนาจ ประหยัด ",
		Phone: "085-333-3333",
		Area:  &area,
	})
	require.NoError(t, err)
	assert.Len(t, view.Roster, 2)
	assert.Equal(t, models.RosterRemote, view.RosterSource)
	assert.False(t, view.Form.Open)
}

func TestSaveResponder_Validation(t *testing.T) {
	f := newTestController(t)
	ctx := context.Background()

	_, err := f.ctrl.SaveResponder(ctx, session.ResponderInput{Name: "a", Phone: "b"})
	assert.ErrorIs(t, err, session.ErrNotAuthenticated)

	f.login(t)
	_, err = f.ctrl.SaveResponder(ctx, session.ResponderInput{Name: "a", Phone: "b"})
	assert.ErrorIs(t, err, session.ErrFormClosed)

	_, err = f.ctrl.OpenForm(ctx, nil)
	require.NoError(t, err)

	_, err = f.ctrl.SaveResponder(ctx, session.ResponderInput{Name: " ", Phone: "b"})
	assert.ErrorIs(t, err, session.ErrInvalidInput)

	_, err = f.ctrl.SaveResponder(ctx, session.ResponderInput{Name: "a", Phone: "b"})
	assert.ErrorIs(t, err, session.ErrInvalidInput, "no coordinate chosen yet")

	_, err = f.ctrl.MapClick(ctx, bangkokIncident)
	require.NoError(t, err)
	bogus := models.Status("asleep")
	_, err = f.ctrl.SaveResponder(ctx, session.ResponderInput{Name: "a", Phone: "b", Status: &bogus})
	assert.ErrorIs(t, err, session.ErrInvalidInput)
}

func TestSaveResponder_RemoteFailureOnRemoteSnapshot(t *testing.T) {
	f := newTestController(t)
	f.loadRemote(t, responderOne)
	f.openNewForm(t, responderTwo.Location)

	f.remote.EXPECT().Save(gomock.Any(), gomock.Any()).Return(models.Responder{}, errors.New("connection reset"))

	_, err := f.ctrl.SaveResponder(context.Background(), session.ResponderInput{Name: "a", Phone: "b"})
	assert.ErrorIs(t, err, session.ErrRosterUnavailable)

	view, err := f.ctrl.View(context.Background())
	require.NoError(t, err)
	assert.Len(t, view.Roster, 1, "failed write leaves the snapshot alone")
	assert.True(t, view.Form.Open)
}

func TestSaveResponder_LocalFallback(t *testing.T) {
	f := newTestController(t)
	f.remote.EXPECT().List(gomock.Any()).Return(nil, errors.New("connection refused"))
	f.local.EXPECT().List(gomock.Any()).Return([]models.Responder{responderOne}, nil)
	_, err := f.ctrl.RefreshRoster(context.Background())
	require.NoError(t, err)
	f.openNewForm(t, responderTwo.Location)

	f.remote.EXPECT().Save(gomock.Any(), gomock.Any()).Return(models.Responder{}, errors.New("connection refused"))
	f.local.EXPECT().Save(gomock.Any(), gomock.Any()).Return(responderTwo, nil)
	f.local.EXPECT().List(gomock.Any()).Return([]models.Responder{responderOne, responderTwo}, nil)

	view, err := f.ctrl.SaveResponder(context.Background(), session.ResponderInput{Name: "a", Phone: "b"})
	require.NoError(t, err)
	assert.Equal(t, models.RosterLocal, view.RosterSource)
	assert.Len(t, view.Roster, 2)
}

func TestDeleteResponder_RepairsSelection(t *testing.T) {
	f := newTestController(t)
	f.loadRemote(t, responderOne, responderTwo)
	ctx := context.Background()

	_, err := f.ctrl.MapClick(ctx, bangkokIncident)
	require.NoError(t, err)
	f.login(t)

	f.remote.EXPECT().Delete(gomock.Any(), int64(2)).Return(nil)
	f.remote.EXPECT().List(gomock.Any()).Return([]models.Responder{responderOne}, nil)

	view, err := f.ctrl.DeleteResponder(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, rankedIDs(view))
	requireSelected(t, view, 1)
}

func TestDeleteResponder_NotFoundDoesNotFallBack(t *testing.T) {
	f := newTestController(t)
	f.remote.EXPECT().List(gomock.Any()).Return(nil, errors.New("connection refused"))
	f.local.EXPECT().List(gomock.Any()).Return([]models.Responder{responderOne}, nil)
	_, err := f.ctrl.RefreshRoster(context.Background())
	require.NoError(t, err)
	f.login(t)

	f.remote.EXPECT().Delete(gomock.Any(), int64(9)).Return(session.ErrResponderNotFound)

	_, err = f.ctrl.DeleteResponder(context.Background(), 9)
	assert.ErrorIs(t, err, session.ErrResponderNotFound)
}

func TestSetIncidentIcon(t *testing.T) {
	f := newTestController(t)
	ctx := context.Background()

	_, err := f.ctrl.SetIncidentIcon(ctx, models.IncidentIcon("rocket"))
	assert.ErrorIs(t, err, session.ErrInvalidInput)

	f.settings.EXPECT().Save(gomock.Any(), models.Settings{IncidentIcon: models.IconFire}).Return(nil)
	view, err := f.ctrl.SetIncidentIcon(ctx, models.IconFire)
	require.NoError(t, err)
	assert.Equal(t, models.IconFire, view.Settings.IncidentIcon)
}

func TestBootstrap(t *testing.T) {
	f := newTestController(t)

	f.settings.EXPECT().Load(gomock.Any()).Return(models.Settings{IncidentIcon: models.IconMedical}, nil)
	f.remote.EXPECT().List(gomock.Any()).Return([]models.Responder{responderOne, responderTwo}, nil)

	view, err := f.ctrl.Bootstrap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.IconMedical, view.Settings.IncidentIcon)
	assert.Len(t, view.Roster, 2)
	assert.Equal(t, session.TabPrimary, view.Tab)
}

func TestPublishFailureDoesNotAffectState(t *testing.T) {
	f := newTestController(t)
	f.loadRemote(t, responderOne, responderTwo)
	f.publisher.err = errors.New("redis down")

	view, err := f.ctrl.MapClick(context.Background(), bangkokIncident)
	require.NoError(t, err)
	assert.NotNil(t, view.Incident)
}

func TestStoppedController(t *testing.T) {
	f := newTestController(t)
	f.stop()

	_, err := f.ctrl.View(context.Background())
	assert.ErrorIs(t, err, session.ErrStopped)
}
