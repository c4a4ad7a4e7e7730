package repository

import "github.com/Preechanamchu/KT-Monitor/internal/session"

// ErrNotFound возвращается, когда сотрудника с указанным идентификатором нет в реестре
var ErrNotFound = session.ErrResponderNotFound
