package session

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/Preechanamchu/KT-Monitor/internal/models"
)

// OpenForm открывает форму сотрудника: пустую для новой записи или заполненную для существующей
func (c *controller) OpenForm(ctx context.Context, id *int64) (View, error) {
	return c.apply(ctx, func(s *state) ([]models.DispatchEvent, error) {
		if !s.authenticated {
			return nil, fmt.Errorf("session: open form: %w", ErrNotAuthenticated)
		}
		form := formState{open: true}
		if id != nil {
			existing, ok := findResponder(s.roster, *id)
			if !ok {
				return nil, fmt.Errorf("session: open form %d: %w", *id, ErrResponderNotFound)
			}
			at := existing.Location
			form.editingID = existing.ID
			form.candidate = &at
			form.candidateLabel = candidateFromResponder
		}
		s.tab = TabAdmin
		s.form = form
		return nil, nil
	})
}

func (c *controller) CloseForm(ctx context.Context) (View, error) {
	return c.apply(ctx, func(s *state) ([]models.DispatchEvent, error) {
		s.form = formState{}
		return nil, nil
	})
}

// SaveResponder записывает форму в удаленное хранилище. Если запись не удалась, а текущий снимок
// уже получен из локального хранилища, запись идет в локальное. Иначе возвращается ошибка
// и сессия не меняется.
func (c *controller) SaveResponder(ctx context.Context, input ResponderInput) (View, error) {
	var (
		responder models.Responder
		source    models.RosterSource
	)
	err := c.do(ctx, func(s *state) error {
		if !s.authenticated {
			return ErrNotAuthenticated
		}
		if !s.form.open {
			return ErrFormClosed
		}
		r, err := buildResponder(s, input)
		if err != nil {
			return err
		}
		responder = r
		source = s.rosterSource
		return nil
	})
	if err != nil {
		return View{}, fmt.Errorf("session: save responder: %w", err)
	}

	log := c.log("SaveResponder").WithField("responder_id", responder.ID)
	seq, roster, newSource, err := c.write(ctx, source, func(ctx context.Context, store RosterStore) error {
		_, err := store.Save(ctx, responder)
		return err
	})
	if err != nil {
		log.WithError(err).Error("Failed to save responder")
		return View{}, fmt.Errorf("session: save responder: %w", err)
	}
	log.WithField("roster_source", newSource).Info("Responder saved")

	return c.apply(ctx, func(s *state) ([]models.DispatchEvent, error) {
		events := c.installRoster(s, seq, roster, newSource)
		s.form = formState{}
		s.notice = "responder saved"
		return events, nil
	})
}

// DeleteResponder удаляет сотрудника с тем же выбором хранилища, что и SaveResponder
func (c *controller) DeleteResponder(ctx context.Context, id int64) (View, error) {
	var source models.RosterSource
	err := c.do(ctx, func(s *state) error {
		if !s.authenticated {
			return ErrNotAuthenticated
		}
		source = s.rosterSource
		return nil
	})
	if err != nil {
		return View{}, fmt.Errorf("session: delete responder: %w", err)
	}

	log := c.log("DeleteResponder").WithField("responder_id", id)
	seq, roster, newSource, err := c.write(ctx, source, func(ctx context.Context, store RosterStore) error {
		return store.Delete(ctx, id)
	})
	if err != nil {
		log.WithError(err).Error("Failed to delete responder")
		return View{}, fmt.Errorf("session: delete responder %d: %w", id, err)
	}
	log.WithField("roster_source", newSource).Info("Responder deleted")

	return c.apply(ctx, func(s *state) ([]models.DispatchEvent, error) {
		events := c.installRoster(s, seq, roster, newSource)
		if s.form.editingID == id {
			s.form = formState{}
		}
		s.notice = "responder deleted"
		return events, nil
	})
}

// write применяет op к удаленному хранилищу, а если сессия уже работает на локальном снимке,
// то к локальному. После подтверждения записи выдается новый номер загрузки реестра, так что
// загрузки, начатые до записи, уже не перезапишут результат, и перечитывается реестр того
// хранилища, которое приняло запись.
func (c *controller) write(
	ctx context.Context,
	source models.RosterSource,
	op func(ctx context.Context, store RosterStore) error,
) (uint64, []models.Responder, models.RosterSource, error) {
	err := op(ctx, c.deps.Remote)
	if err == nil {
		return c.reload(ctx, c.deps.Remote, models.RosterRemote)
	}
	if errors.Is(err, ErrResponderNotFound) {
		return 0, nil, "", err
	}
	if source != models.RosterLocal || c.deps.Local == nil {
		return 0, nil, "", fmt.Errorf("%w: %w", ErrRosterUnavailable, err)
	}

	c.log("write").WithError(err).Warn("Remote write failed, writing to local store")
	if err := op(ctx, c.deps.Local); err != nil {
		if errors.Is(err, ErrResponderNotFound) {
			return 0, nil, "", err
		}
		return 0, nil, "", fmt.Errorf("%w: %w", ErrRosterUnavailable, err)
	}
	return c.reload(ctx, c.deps.Local, models.RosterLocal)
}

func (c *controller) reload(
	ctx context.Context,
	store RosterStore,
	source models.RosterSource,
) (uint64, []models.Responder, models.RosterSource, error) {
	seq, err := c.issueRoster(ctx)
	if err != nil {
		return 0, nil, "", err
	}
	roster, err := store.List(ctx)
	if err != nil {
		return 0, nil, "", fmt.Errorf("%w: reload after write: %w", ErrRosterUnavailable, err)
	}
	return seq, roster, source, nil
}

func buildResponder(s *state, input ResponderInput) (models.Responder, error) {
	name := strings.TrimSpace(input.Name)
	phone := strings.TrimSpace(input.Phone)
	if name == "" || phone == "" {
		return models.Responder{}, fmt.Errorf("%w: name and phone are required", ErrInvalidInput)
	}
	if s.form.candidate == nil {
		return models.Responder{}, fmt.Errorf("%w: choose a location on the map first", ErrInvalidInput)
	}
	if input.Status != nil && !input.Status.Valid() {
		return models.Responder{}, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *input.Status)
	}

	r := models.Responder{
		ID:       s.form.editingID,
		Name:     name,
		Phone:    phone,
		Location: *s.form.candidate,
		Area:     trimmedOrNil(input.Area),
		Status:   input.Status,
		ImageRef: trimmedOrNil(input.ImageRef),
	}
	if r.ID != 0 && r.ImageRef == nil {
		if existing, ok := findResponder(s.roster, r.ID); ok {
			r.ImageRef = existing.ImageRef
		}
	}
	return r, nil
}

func findResponder(roster []models.Responder, id int64) (models.Responder, bool) {
	i := slices.IndexFunc(roster, func(r models.Responder) bool { return r.ID == id })
	if i < 0 {
		return models.Responder{}, false
	}
	return roster[i], true
}

func trimmedOrNil(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	if t == "" {
		return nil
	}
	return &t
}
