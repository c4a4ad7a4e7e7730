package session

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/Preechanamchu/KT-Monitor/internal/models"
	"github.com/Preechanamchu/KT-Monitor/internal/ranking"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultSearchDebounce - пауза перед запросом подсказок
	DefaultSearchDebounce = 800 * time.Millisecond

	minSearchLength = 2

	candidateFromMap       = "map"
	candidateFromResponder = "current"
)

// Controller - единственный, кто изменяет сессию оператора
type Controller interface {
	Start(ctx context.Context)
	Done() <-chan struct{}
	Bootstrap(ctx context.Context) (View, error)
	View(ctx context.Context) (View, error)

	MapClick(ctx context.Context, at models.Coordinate) (View, error)
	SelectResponder(ctx context.Context, id int64) (View, error)
	ClearIncident(ctx context.Context) (View, error)
	Login(ctx context.Context, pin string) (View, error)
	Logout(ctx context.Context) (View, error)
	SwitchTab(ctx context.Context, tab Tab) (View, error)
	ToggleSidebar(ctx context.Context) (View, error)
	RefreshRoster(ctx context.Context) (View, error)
	Search(ctx context.Context, query string) (View, error)
	AcceptLocation(ctx context.Context, text string) (View, error)
	ChooseSuggestion(ctx context.Context, index int) (View, error)
	SetIncidentIcon(ctx context.Context, icon models.IncidentIcon) (View, error)

	OpenForm(ctx context.Context, id *int64) (View, error)
	CloseForm(ctx context.Context) (View, error)
	SaveResponder(ctx context.Context, input ResponderInput) (View, error)
	DeleteResponder(ctx context.Context, id int64) (View, error)
}

// Deps - зависимости контроллера. Local, Publisher и Settings могут быть nil
type Deps struct {
	Remote    RosterStore
	Local     RosterStore
	Auth      Authenticator
	Resolver  LocationResolver
	Publisher DispatchPublisher
	Settings  SettingsStore
	Engine    *ranking.Engine
	Logger    *logrus.Logger
}

// Option настраивает контроллер
type Option func(*controller)

// WithSearchDebounce задает паузу перед запросом подсказок, ноль ее отключает
func WithSearchDebounce(d time.Duration) Option {
	return func(c *controller) {
		c.debounce = d
	}
}

// WithClock подменяет time.Now для меток времени происшествий и событий
func WithClock(now func() time.Time) Option {
	return func(c *controller) {
		c.now = now
	}
}

type command func(s *state)

type stepFunc func(s *state) ([]models.DispatchEvent, error)

type controller struct {
	deps     Deps
	engine   *ranking.Engine
	logger   *logrus.Logger
	debounce time.Duration
	now      func() time.Time

	cmds chan command
	done chan struct{}

	st *state
}

func NewController(deps Deps, opts ...Option) Controller {
	c := &controller{
		deps:     deps,
		engine:   deps.Engine,
		logger:   deps.Logger,
		debounce: DefaultSearchDebounce,
		now:      time.Now,
		cmds:     make(chan command),
		done:     make(chan struct{}),
		st:       newState(),
	}
	if c.engine == nil {
		c.engine = ranking.NewEngine()
	}
	if c.logger == nil {
		c.logger = logrus.StandardLogger()
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start запускает горутину состояния до отмены ctx
func (c *controller) Start(ctx context.Context) {
	go func() {
		defer close(c.done)
		for {
			select {
			case <-ctx.Done():
				return
			case cmd := <-c.cmds:
				cmd(c.st)
			}
		}
	}()
}

// Done закрывается после выхода горутины состояния
func (c *controller) Done() <-chan struct{} {
	return c.done
}

// do выполняет fn в горутине состояния и ждет завершения
func (c *controller) do(ctx context.Context, fn func(s *state) error) error {
	errc := make(chan error, 1)
	cmd := func(s *state) { errc <- fn(s) }

	select {
	case c.cmds <- cmd:
	case <-c.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-errc:
		return err
	case <-c.done:
		select {
		case err := <-errc:
			return err
		default:
			return ErrStopped
		}
	}
}

// apply выполняет один переход, в том же шаге снимает View и затем публикует события
func (c *controller) apply(ctx context.Context, fn stepFunc) (View, error) {
	var (
		view   View
		events []models.DispatchEvent
	)
	err := c.do(ctx, func(s *state) error {
		ev, err := fn(s)
		if err != nil {
			return err
		}
		events = ev
		view = s.view()
		return nil
	})
	if err != nil {
		return View{}, err
	}
	c.publish(ctx, events)
	return view, nil
}

func (c *controller) publish(ctx context.Context, events []models.DispatchEvent) {
	if c.deps.Publisher == nil {
		return
	}
	for _, event := range events {
		if err := c.deps.Publisher.Publish(ctx, event); err != nil {
			c.logger.WithFields(logrus.Fields{
				"service":    "session",
				"method":     "publish",
				"event_type": event.Type,
			}).WithError(err).Warn("Failed to publish dispatch event")
		}
	}
}

func (c *controller) log(method string) *logrus.Entry {
	return c.logger.WithFields(logrus.Fields{
		"service": "session",
		"method":  method,
	})
}

// Bootstrap загружает сохраненные настройки и начальный реестр
func (c *controller) Bootstrap(ctx context.Context) (View, error) {
	if c.deps.Settings != nil {
		settings, err := c.deps.Settings.Load(ctx)
		if err != nil {
			c.log("Bootstrap").WithError(err).Warn("Failed to load settings, using defaults")
		} else if err := c.do(ctx, func(s *state) error {
			if settings.IncidentIcon.Valid() {
				s.settings = settings
			}
			return nil
		}); err != nil {
			return View{}, err
		}
	}
	return c.RefreshRoster(ctx)
}

func (c *controller) View(ctx context.Context) (View, error) {
	return c.apply(ctx, func(*state) ([]models.DispatchEvent, error) { return nil, nil })
}

// MapClick ставит происшествие на основной вкладке или точку формы на вкладке админа
func (c *controller) MapClick(ctx context.Context, at models.Coordinate) (View, error) {
	if !at.Valid() {
		return View{}, fmt.Errorf("session: map click: %w: coordinate out of range", ErrInvalidInput)
	}
	return c.apply(ctx, func(s *state) ([]models.DispatchEvent, error) {
		s.searchSeq++
		return c.pointAt(s, at, candidateFromMap), nil
	})
}

// pointAt - общий эффект клика по карте, принятого поиска и выбранной подсказки
func (c *controller) pointAt(s *state, at models.Coordinate, label string) []models.DispatchEvent {
	switch {
	case s.tab == TabPrimary:
		return c.setIncident(s, at)
	case s.tab == TabAdmin && s.authenticated && s.form.open:
		s.form.candidate = &at
		s.form.candidateLabel = label
	}
	return nil
}

func (c *controller) setIncident(s *state, at models.Coordinate) []models.DispatchEvent {
	s.incident = &models.Incident{
		ID:        uuid.New(),
		Location:  at,
		CreatedAt: c.now(),
	}
	s.ranked = c.engine.Rank(at, s.roster)
	s.selectedID = ranking.DefaultSelection(s.ranked)
	s.sidebarOpen = true
	s.suggestions = []models.Suggestion{}
	s.notice = ""

	c.log("setIncident").WithFields(logrus.Fields{
		"incident_id": s.incident.ID,
		"candidates":  len(s.ranked),
	}).Info("Incident set")
	return []models.DispatchEvent{c.event(s, models.EventIncidentSet)}
}

func (c *controller) event(s *state, typ models.DispatchEventType) models.DispatchEvent {
	event := models.DispatchEvent{
		ID:         uuid.New(),
		Type:       typ,
		OccurredAt: c.now(),
	}
	if s.incident != nil {
		incident := *s.incident
		event.Incident = &incident
	}
	if s.selectedID != nil {
		i := slices.IndexFunc(s.ranked, func(r models.RankedResponder) bool { return r.ID == *s.selectedID })
		if i >= 0 {
			selected := s.ranked[i]
			event.Responder = &selected
		}
	}
	return event
}

// SelectResponder выбирает сотрудника из списка, расстояния не пересчитываются
func (c *controller) SelectResponder(ctx context.Context, id int64) (View, error) {
	return c.apply(ctx, func(s *state) ([]models.DispatchEvent, error) {
		if s.incident == nil {
			return nil, fmt.Errorf("session: select responder: %w", ErrNoIncident)
		}
		if !ranking.Contains(s.ranked, id) {
			return nil, fmt.Errorf("session: select responder %d: %w", id, ErrNotInRanking)
		}
		if s.selectedID != nil && *s.selectedID == id {
			return nil, nil
		}
		s.selectedID = &id
		return []models.DispatchEvent{c.event(s, models.EventSelectionChanged)}, nil
	})
}

// ClearIncident снимает происшествие, список и выбор, а также очищает строку поиска
func (c *controller) ClearIncident(ctx context.Context) (View, error) {
	return c.apply(ctx, func(s *state) ([]models.DispatchEvent, error) {
		s.searchSeq++
		s.searchQuery = ""
		s.suggestions = []models.Suggestion{}
		if s.incident == nil {
			return nil, nil
		}
		cleared := c.event(s, models.EventIncidentCleared)
		s.incident = nil
		s.ranked = []models.RankedResponder{}
		s.selectedID = nil
		s.notice = ""
		c.log("ClearIncident").WithField("incident_id", cleared.Incident.ID).Info("Incident cleared")
		return []models.DispatchEvent{cleared}, nil
	})
}

// Login проверяет PIN вне горутины состояния и затем фиксирует результат
func (c *controller) Login(ctx context.Context, pin string) (View, error) {
	log := c.log("Login")
	err := c.do(ctx, func(s *state) error {
		if s.authenticated {
			return ErrAlreadyAuthenticated
		}
		return nil
	})
	if err != nil {
		return View{}, fmt.Errorf("session: login: %w", err)
	}

	ok, authErr := c.deps.Auth.Authenticate(ctx, pin)
	if authErr != nil {
		log.WithError(authErr).Warn("PIN check unavailable")
	}

	return c.apply(ctx, func(s *state) ([]models.DispatchEvent, error) {
		if !ok {
			s.notice = "incorrect PIN"
			if authErr != nil {
				return nil, fmt.Errorf("session: login: %w: %w", ErrInvalidPIN, authErr)
			}
			return nil, fmt.Errorf("session: login: %w", ErrInvalidPIN)
		}
		s.authenticated = true
		s.notice = ""
		log.Info("Operator authenticated")
		return nil, nil
	})
}

// Logout снимает вход и возвращает на основную вкладку
func (c *controller) Logout(ctx context.Context) (View, error) {
	return c.apply(ctx, func(s *state) ([]models.DispatchEvent, error) {
		if !s.authenticated {
			return nil, fmt.Errorf("session: logout: %w", ErrNotAuthenticated)
		}
		s.authenticated = false
		s.tab = TabPrimary
		s.form = formState{}
		c.log("Logout").Info("Operator logged out")
		return nil, nil
	})
}

func (c *controller) SwitchTab(ctx context.Context, tab Tab) (View, error) {
	if !tab.Valid() {
		return View{}, fmt.Errorf("session: switch tab: %w: unknown tab %q", ErrInvalidInput, tab)
	}
	return c.apply(ctx, func(s *state) ([]models.DispatchEvent, error) {
		if s.tab == TabAdmin && tab != TabAdmin {
			s.form = formState{}
		}
		s.tab = tab
		return nil, nil
	})
}

func (c *controller) ToggleSidebar(ctx context.Context) (View, error) {
	return c.apply(ctx, func(s *state) ([]models.DispatchEvent, error) {
		s.sidebarOpen = !s.sidebarOpen
		return nil, nil
	})
}

// RefreshRoster перечитывает реестр: сначала удаленное хранилище, при ошибке локальное.
// Если пока шла загрузка был выдан более новый снимок, результат отбрасывается
// и возвращается текущее состояние.
func (c *controller) RefreshRoster(ctx context.Context) (View, error) {
	seq, err := c.issueRoster(ctx)
	if err != nil {
		return View{}, err
	}
	roster, source, err := c.loadRoster(ctx)
	if err != nil {
		_, _ = c.apply(ctx, func(s *state) ([]models.DispatchEvent, error) {
			if seq > s.rosterApplied {
				s.notice = "roster unavailable"
			}
			return nil, nil
		})
		return View{}, err
	}
	return c.apply(ctx, func(s *state) ([]models.DispatchEvent, error) {
		return c.installRoster(s, seq, roster, source), nil
	})
}

// issueRoster выдает номер очередной загрузки реестра.
func (c *controller) issueRoster(ctx context.Context) (uint64, error) {
	var seq uint64
	err := c.do(ctx, func(s *state) error {
		s.rosterSeq++
		seq = s.rosterSeq
		return nil
	})
	return seq, err
}

// installRoster применяет снимок, только если он новее уже примененного.
func (c *controller) installRoster(s *state, seq uint64, roster []models.Responder, source models.RosterSource) []models.DispatchEvent {
	if seq <= s.rosterApplied {
		c.log("installRoster").WithFields(logrus.Fields{
			"roster_seq": seq,
			"applied":    s.rosterApplied,
		}).Debug("Superseded roster snapshot discarded")
		return nil
	}
	s.rosterApplied = seq
	return c.replaceRoster(s, roster, source)
}

func (c *controller) loadRoster(ctx context.Context) ([]models.Responder, models.RosterSource, error) {
	log := c.log("loadRoster")

	roster, err := c.deps.Remote.List(ctx)
	if err == nil {
		return roster, models.RosterRemote, nil
	}
	log.WithError(err).Warn("Remote roster unavailable, using local store")

	if c.deps.Local == nil {
		return nil, "", fmt.Errorf("session: load roster: %w: %w", ErrRosterUnavailable, err)
	}
	roster, localErr := c.deps.Local.List(ctx)
	if localErr != nil {
		log.WithError(localErr).Error("Local roster unavailable")
		return nil, "", fmt.Errorf("session: load roster: %w: %w", ErrRosterUnavailable, errors.Join(err, localErr))
	}
	return roster, models.RosterLocal, nil
}

// replaceRoster целиком заменяет снимок и в том же шаге пересчитывает список
func (c *controller) replaceRoster(s *state, roster []models.Responder, source models.RosterSource) []models.DispatchEvent {
	if roster == nil {
		roster = []models.Responder{}
	}
	s.roster = roster
	s.rosterSource = source
	s.notice = ""

	if s.incident == nil {
		return nil
	}
	s.ranked = c.engine.Rank(s.incident.Location, s.roster)

	previous := s.selectedID
	if previous == nil || !ranking.Contains(s.ranked, *previous) {
		s.selectedID = ranking.DefaultSelection(s.ranked)
	}
	if sameSelection(previous, s.selectedID) {
		return nil
	}
	c.log("replaceRoster").WithField("selected_id", s.selectedID).Info("Selection repaired after roster change")
	return []models.DispatchEvent{c.event(s, models.EventSelectionChanged)}
}

func sameSelection(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Search ищет подсказки. Обновить список может только последний выданный запрос,
// более старый возвращает ErrStaleSearch.
func (c *controller) Search(ctx context.Context, query string) (View, error) {
	query = strings.TrimSpace(query)

	var seq uint64
	view, err := c.apply(ctx, func(s *state) ([]models.DispatchEvent, error) {
		s.searchSeq++
		seq = s.searchSeq
		s.searchQuery = query
		if utf8.RuneCountInString(query) < minSearchLength {
			s.suggestions = []models.Suggestion{}
		}
		return nil, nil
	})
	if err != nil || utf8.RuneCountInString(query) < minSearchLength {
		return view, err
	}

	if c.debounce > 0 {
		timer := time.NewTimer(c.debounce)
		select {
		case <-ctx.Done():
			timer.Stop()
			return View{}, ctx.Err()
		case <-timer.C:
		}
		if err := c.do(ctx, func(s *state) error {
			if s.searchSeq != seq {
				return ErrStaleSearch
			}
			return nil
		}); err != nil {
			return View{}, fmt.Errorf("session: search %q: %w", query, err)
		}
	}

	suggestions, lookupErr := c.deps.Resolver.Suggest(ctx, query)

	return c.apply(ctx, func(s *state) ([]models.DispatchEvent, error) {
		if s.searchSeq != seq {
			return nil, fmt.Errorf("session: search %q: %w", query, ErrStaleSearch)
		}
		if lookupErr != nil {
			c.log("Search").WithError(lookupErr).Warn("Suggestion lookup failed")
			s.suggestions = []models.Suggestion{}
			s.notice = "location search unavailable"
			return nil, nil
		}
		if suggestions == nil {
			suggestions = []models.Suggestion{}
		}
		s.suggestions = suggestions
		return nil, nil
	})
}

// AcceptLocation разбирает текст и затем действует как клик по карте в найденной точке.
// Более поздний поиск, клик или очистка делают результат устаревшим (ErrStaleSearch).
func (c *controller) AcceptLocation(ctx context.Context, text string) (View, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return View{}, fmt.Errorf("session: accept location: %w: empty text", ErrInvalidInput)
	}

	var seq uint64
	err := c.do(ctx, func(s *state) error {
		if err := locationTarget(s); err != nil {
			return err
		}
		// незавершенные подсказки и более ранние запросы не должны перезаписать результат
		s.searchSeq++
		seq = s.searchSeq
		s.searchQuery = text
		return nil
	})
	if err != nil {
		return View{}, fmt.Errorf("session: accept location: %w", err)
	}

	res, resolveErr := c.deps.Resolver.Resolve(ctx, text)

	return c.apply(ctx, func(s *state) ([]models.DispatchEvent, error) {
		if s.searchSeq != seq {
			return nil, fmt.Errorf("session: accept location %q: %w", text, ErrStaleSearch)
		}
		if resolveErr != nil {
			c.log("AcceptLocation").WithError(resolveErr).Info("Location not resolved")
			s.notice = "location not found"
			return nil, fmt.Errorf("session: accept location %q: %w", text, ErrLocationNotFound)
		}
		if err := locationTarget(s); err != nil {
			return nil, fmt.Errorf("session: accept location: %w", err)
		}
		s.searchQuery = res.Label
		s.suggestions = []models.Suggestion{}
		return c.pointAt(s, res.Location, res.Label), nil
	})
}

// ChooseSuggestion действует как клик по карте в точке i-й подсказки
func (c *controller) ChooseSuggestion(ctx context.Context, index int) (View, error) {
	return c.apply(ctx, func(s *state) ([]models.DispatchEvent, error) {
		if index < 0 || index >= len(s.suggestions) {
			return nil, fmt.Errorf("session: choose suggestion: %w: index %d out of range", ErrInvalidInput, index)
		}
		if err := locationTarget(s); err != nil {
			return nil, fmt.Errorf("session: choose suggestion: %w", err)
		}
		chosen := s.suggestions[index]
		s.searchSeq++
		s.searchQuery = chosen.Label
		s.suggestions = []models.Suggestion{}
		return c.pointAt(s, chosen.Location, chosen.Label), nil
	})
}

// locationTarget проверяет, есть ли куда применить найденную точку
func locationTarget(s *state) error {
	switch s.tab {
	case TabPrimary:
		return nil
	case TabAdmin:
		if !s.authenticated {
			return ErrNotAuthenticated
		}
		if !s.form.open {
			return ErrFormClosed
		}
		return nil
	default:
		return fmt.Errorf("%w: location search is not available on tab %q", ErrInvalidInput, s.tab)
	}
}

// SetIncidentIcon меняет значок происшествия и сохраняет настройку
func (c *controller) SetIncidentIcon(ctx context.Context, icon models.IncidentIcon) (View, error) {
	if !icon.Valid() {
		return View{}, fmt.Errorf("session: set incident icon: %w: unknown icon %q", ErrInvalidInput, icon)
	}
	var settings models.Settings
	view, err := c.apply(ctx, func(s *state) ([]models.DispatchEvent, error) {
		s.settings.IncidentIcon = icon
		settings = s.settings
		return nil, nil
	})
	if err != nil {
		return View{}, err
	}
	if c.deps.Settings != nil {
		if err := c.deps.Settings.Save(ctx, settings); err != nil {
			c.log("SetIncidentIcon").WithError(err).Warn("Failed to persist settings")
		}
	}
	return view, nil
}
