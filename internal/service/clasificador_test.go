package service

import (
	"context"
	"errors"
	"testing"

	"wasabi/internal/apierror"
	"wasabi/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClasificarVinculos(t *testing.T) {
	cases := []struct {
		presupuesto, inversion bool
		want                   model.Categoria
	}{
		{true, false, model.CategoriaPresupuesto},
		{false, true, model.CategoriaInversion},
		{false, false, model.CategoriaDesconocida},
		{true, true, model.CategoriaPresupuesto},
	}
	for _, tc := range cases {
		got := ClasificarVinculos(tc.presupuesto, tc.inversion)
		assert.Equal(t, tc.want, got, "presupuesto=%v inversion=%v", tc.presupuesto, tc.inversion)
		// Same input, same answer.
		assert.Equal(t, got, ClasificarVinculos(tc.presupuesto, tc.inversion))
	}
}

func TestClasificador_Clasificar(t *testing.T) {
	svc := NewClasificadorService(&stubBolsaRepo{rows: departamento7()})
	ctx := context.Background()

	cases := map[int64]model.Categoria{
		1: model.CategoriaPresupuesto,
		4: model.CategoriaInversion,
		6: model.CategoriaPresupuesto,
		7: model.CategoriaDesconocida,
	}
	for id, want := range cases {
		got, err := svc.Clasificar(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, want, got, "bolsa %d", id)
	}
}

func TestClasificador_Errores(t *testing.T) {
	repo := &stubBolsaRepo{rows: departamento7()}
	svc := NewClasificadorService(repo)
	ctx := context.Background()

	_, err := svc.Clasificar(ctx, 0)
	assert.Equal(t, apierror.KindValidacion, apierror.KindOf(err))
	assert.Zero(t, repo.callCount())

	_, err = svc.Clasificar(ctx, 999)
	assert.Equal(t, apierror.KindNoEncontrado, apierror.KindOf(err))

	repo.err = errors.New("timeout")
	_, err = svc.Clasificar(ctx, 1)
	assert.Equal(t, apierror.KindPersistencia, apierror.KindOf(err))
}
