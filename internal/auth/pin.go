// Package auth проверяет PIN оператора для входа в админ-панель.
package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// ErrAdminNotFound возвращается AdminStore, если записи администратора нет
var ErrAdminNotFound = errors.New("admin not found")

// AdminStore отдает сохраненный bcrypt-хэш PIN администратора
type AdminStore interface {
	PasswordHash(ctx context.Context, username string) (string, error)
}

// PINAuthenticator проверяет PIN по хранилищу администраторов. Если хранилище недоступно,
// PIN сравнивается с резервным; пустой резервный PIN отключает этот путь.
//
// Счетчика попыток и блокировки нет.
type PINAuthenticator struct {
	store       AdminStore
	username    string
	fallbackPIN string
	logger      *logrus.Logger
}

func NewPINAuthenticator(store AdminStore, username, fallbackPIN string, logger *logrus.Logger) *PINAuthenticator {
	return &PINAuthenticator{
		store:       store,
		username:    username,
		fallbackPIN: fallbackPIN,
		logger:      logger,
	}
}

// Authenticate сообщает, принят ли PIN. Ошибка возвращается, только если ни хранилище,
// ни резервный PIN не дали ответа.
func (a *PINAuthenticator) Authenticate(ctx context.Context, pin string) (bool, error) {
	log := a.logger.WithFields(logrus.Fields{
		"component": "auth",
		"method":    "Authenticate",
		"username":  a.username,
	})
	if pin == "" {
		return false, nil
	}

	hash, err := a.store.PasswordHash(ctx, a.username)
	switch {
	case err == nil:
		if bcrypt.CompareHashAndPassword([]byte(hash), []byte(pin)) != nil {
			log.Info("PIN rejected")
			return false, nil
		}
		return true, nil
	case errors.Is(err, ErrAdminNotFound):
		log.Warn("Admin record is missing")
		return false, nil
	}

	log.WithError(err).Warn("Admin store unavailable, using fallback PIN")
	if a.fallbackPIN == "" {
		return false, fmt.Errorf("auth: admin store unavailable and no fallback PIN configured: %w", err)
	}
	return subtle.ConstantTimeCompare([]byte(pin), []byte(a.fallbackPIN)) == 1, nil
}

// HashPIN возвращает bcrypt-хэш для таблицы admins
func HashPIN(pin string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("auth: hash pin: %w", err)
	}
	return string(hash), nil
}
