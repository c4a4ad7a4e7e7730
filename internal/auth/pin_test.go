package auth_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/Preechanamchu/KT-Monitor/internal/auth"
	"github.com/Preechanamchu/KT-Monitor/internal/auth/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthenticator(t *testing.T, fallback string) (*auth.PINAuthenticator, *mocks.MockAdminStore) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockAdminStore(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	return auth.NewPINAuthenticator(store, "admin", fallback, logger), store
}

func hashOf(t *testing.T, pin string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAuthenticate_StoredHash(t *testing.T) {
	a, store := newTestAuthenticator(t, "210406")
	hash := hashOf(t, "4321")
	store.EXPECT().PasswordHash(gomock.Any(), "admin").Return(hash, nil).Times(2)

	ok, err := a.Authenticate(context.Background(), "4321")
	require.NoError(t, err)
	assert.True(t, ok)

	// Пока хранилище отвечает, резервный PIN не принимается
	ok, err = a.Authenticate(context.Background(), "210406")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAuthenticate_MissingAdmin(t *testing.T) {
	a, store := newTestAuthenticator(t, "210406")
	store.EXPECT().PasswordHash(gomock.Any(), "admin").Return("", auth.ErrAdminNotFound)

	ok, err := a.Authenticate(context.Background(), "210406")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAuthenticate_FallbackWhenStoreDown(t *testing.T) {
	a, store := newTestAuthenticator(t, "210406")
	store.EXPECT().PasswordHash(gomock.Any(), "admin").Return("", errors.New("connection refused")).Times(2)

	ok, err := a.Authenticate(context.Background(), "210406")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = a.Authenticate(context.Background(), "000000")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestAuthenticate_NoFallbackConfigured(t *testing.T) {
	a, store := newTestAuthenticator(t, "")
	store.EXPECT().PasswordHash(gomock.Any(), "admin").Return("", errors.New("connection refused"))

	ok, err := a.Authenticate(context.Background(), "210406")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestAuthenticate_EmptyPIN(t *testing.T) {
	a, _ := newTestAuthenticator(t, "210406")

	ok, err := a.Authenticate(context.Background(), "")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHashPIN(t *testing.T) {
	hash, err := auth.HashPIN("1234")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("1234")))
}
