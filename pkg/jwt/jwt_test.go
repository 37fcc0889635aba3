package jwt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSigner_FirmaYVerifica(t *testing.T) {
	s, err := NewSigner("secret-de-pruebas", "stockflow-test", 60)
	require.NoError(t, err)

	tok, exp, err := s.Sign(Subject{UserID: "u-1", Username: "bodega1", Role: "user"})
	require.NoError(t, err)
	assert.False(t, exp.IsZero())

	claims, err := s.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "bodega1", claims.Username)
	assert.Equal(t, "user", claims.Role)
}

func TestSigner_Rechazos(t *testing.T) {
	s, err := NewSigner("secret-de-pruebas", "stockflow-test", 60)
	require.NoError(t, err)
	tok, _, err := s.Sign(Subject{UserID: "u-1", Username: "bodega1", Role: "admin"})
	require.NoError(t, err)

	expired, err := NewSigner("secret-de-pruebas", "stockflow-test", -1)
	require.NoError(t, err)
	old, _, err := expired.Sign(Subject{UserID: "u-1", Username: "bodega1"})
	require.NoError(t, err)
	_, err = s.Verify(old)
	assert.True(t, errors.Is(err, ErrExpired))

	other, _ := NewSigner("otro-secret-completamente-distinto", "stockflow-test", 60)
	_, err = other.Verify(tok)
	assert.True(t, errors.Is(err, ErrInvalid))

	otherIssuer, _ := NewSigner("secret-de-pruebas", "otro-emisor", 60)
	_, err = otherIssuer.Verify(tok)
	assert.True(t, errors.Is(err, ErrInvalid), "el emisor debe coincidir")

	_, err = s.Verify("token.invalido.aqui")
	assert.True(t, errors.Is(err, ErrInvalid))

	_, err = NewSigner("", "x", 60)
	assert.Error(t, err)
}
