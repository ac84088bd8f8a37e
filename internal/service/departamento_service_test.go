package service

import (
	"context"
	"testing"

	"wasabi/internal/apierror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDepartamento_ObtenerPorID(t *testing.T) {
	repo := newDepartamentoRepo()
	svc := NewDepartamentoService(repo)
	ctx := context.Background()

	d, err := svc.ObtenerPorID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "Informática", d.Nombre)

	_, err = svc.ObtenerPorID(ctx, 8)
	assert.Equal(t, apierror.KindNoEncontrado, apierror.KindOf(err))

	_, err = svc.ObtenerPorID(ctx, -1)
	assert.Equal(t, apierror.KindValidacion, apierror.KindOf(err))
	assert.Equal(t, 2, repo.calls)
}
