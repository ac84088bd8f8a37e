package main

import (
	"testing"
	"time"

	"wasabi/internal/middleware"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstruirClaims_RolDesconocido(t *testing.T) {
	for _, rol := range []string{"", "cajero", "ADMINISTRADOR"} {
		_, err := construirClaims(rol, "dev", 0, time.Hour, time.Now())
		assert.Error(t, err, rol)
	}
}

func TestConstruirClaims_JefeNecesitaDepartamento(t *testing.T) {
	_, err := construirClaims(middleware.RolJefeDepartamento, "dev", 0, time.Hour, time.Now())
	require.Error(t, err)

	claims, err := construirClaims(middleware.RolJefeDepartamento, "dev", 7, time.Hour, time.Now())
	require.NoError(t, err)
	require.NotNil(t, claims.DepartamentoID)
	assert.Equal(t, int64(7), *claims.DepartamentoID)
}

func TestConstruirClaims_Contable(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	claims, err := construirClaims(middleware.RolContable, "ana", 0, 2*time.Hour, now)
	require.NoError(t, err)
	assert.Equal(t, middleware.RolContable, claims.Rol)
	assert.Equal(t, "dev-ana", claims.UserID)
	assert.Nil(t, claims.DepartamentoID)
	assert.Equal(t, now.Add(2*time.Hour).Unix(), claims.ExpiresAt.Unix())
}

func TestConstruirClaims_TTLNoPositivo(t *testing.T) {
	_, err := construirClaims(middleware.RolContable, "dev", 0, 0, time.Now())
	assert.Error(t, err)
}
