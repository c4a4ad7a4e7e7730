package v1

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/Preechanamchu/KT-Monitor/internal/session"
	"github.com/Preechanamchu/KT-Monitor/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// statusFor сопоставляет ошибку контроллера с HTTP-статусом
func statusFor(err error) int {
	switch {
	case errors.Is(err, session.ErrInvalidInput),
		errors.Is(err, storage.ErrUnsupportedImage):
		return http.StatusBadRequest
	case errors.Is(err, session.ErrInvalidPIN),
		errors.Is(err, session.ErrNotAuthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, session.ErrNoIncident),
		errors.Is(err, session.ErrNotInRanking),
		errors.Is(err, session.ErrResponderNotFound),
		errors.Is(err, session.ErrLocationNotFound),
		errors.Is(err, storage.ErrImageNotFound):
		return http.StatusNotFound
	case errors.Is(err, session.ErrAlreadyAuthenticated),
		errors.Is(err, session.ErrFormClosed),
		errors.Is(err, session.ErrStaleSearch):
		return http.StatusConflict
	case errors.Is(err, storage.ErrImageTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, session.ErrRosterUnavailable),
		errors.Is(err, session.ErrStopped),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError пишет ответ об ошибке в формате {"error": "..."}
func writeError(c *gin.Context, log *logrus.Entry, err error) {
	code := statusFor(err)
	msg := strings.TrimPrefix(err.Error(), "session: ")
	if code == http.StatusInternalServerError {
		log.WithError(err).Error("Request failed")
		msg = "internal server error"
	} else {
		log.WithError(err).Warn("Request rejected")
	}
	c.JSON(code, gin.H{"error": msg})
}
