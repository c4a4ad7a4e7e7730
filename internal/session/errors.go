package session

import (
	"errors"

	"github.com/Preechanamchu/KT-Monitor/internal/geocode"
)

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrInvalidPIN           = errors.New("invalid PIN")
	ErrNotAuthenticated     = errors.New("not authenticated")
	ErrAlreadyAuthenticated = errors.New("already authenticated")
	ErrNoIncident           = errors.New("no active incident")
	ErrNotInRanking         = errors.New("responder is not in the ranked list")
	ErrResponderNotFound    = errors.New("responder not found")
	ErrFormClosed           = errors.New("responder form is not open")
	ErrStaleSearch          = errors.New("search superseded by a newer query")
	ErrRosterUnavailable    = errors.New("roster store unavailable")
	ErrStopped              = errors.New("session controller stopped")

	// ErrLocationNotFound - текст местоположения не удалось разобрать
	ErrLocationNotFound = geocode.ErrLocationNotFound
)
