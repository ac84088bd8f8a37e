package service

import (
	"context"
	"errors"
	"testing"

	"wasabi/internal/apierror"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEliminarOrdenes_ToleraIDsInexistentes(t *testing.T) {
	repo := newStubOrdenRepo()
	svc := NewOrdenService(repo)

	resp, err := svc.EliminarOrdenes(context.Background(), []int64{101, 102})
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.EqualValues(t, 1, resp.DeletedCount)
	assert.EqualValues(t, 1, resp.Facturas)
	assert.EqualValues(t, 1, resp.Inversiones)
	assert.EqualValues(t, 1, resp.Compras)
	assert.True(t, repo.committed)
	assert.True(t, repo.ordenes[103], "103 no se toca")
	assert.Len(t, repo.facturas, 1)
}

func TestEliminarOrdenes_DuplicadosColapsan(t *testing.T) {
	repo := newStubOrdenRepo()
	svc := NewOrdenService(repo)

	resp, err := svc.EliminarOrdenes(context.Background(), []int64{103, 101, 103, 101})
	require.NoError(t, err)
	assert.EqualValues(t, 2, resp.DeletedCount)
	assert.EqualValues(t, 2, resp.Facturas)
	assert.Empty(t, repo.ordenes)
}

func TestEliminarOrdenes_SoloInexistentes(t *testing.T) {
	repo := newStubOrdenRepo()
	svc := NewOrdenService(repo)

	resp, err := svc.EliminarOrdenes(context.Background(), []int64{500})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Zero(t, resp.DeletedCount)
	assert.Len(t, repo.ordenes, 2)
}

func TestEliminarOrdenes_ValidacionSinTransaccion(t *testing.T) {
	cases := map[string][]int64{
		"nil":      nil,
		"vacía":    {},
		"cero":     {101, 0},
		"negativo": {-5},
	}
	for name, ids := range cases {
		t.Run(name, func(t *testing.T) {
			repo := newStubOrdenRepo()
			svc := NewOrdenService(repo)

			_, err := svc.EliminarOrdenes(context.Background(), ids)
			assert.Equal(t, apierror.KindValidacion, apierror.KindOf(err))
			assert.Zero(t, repo.txCalls)
		})
	}
}

func TestEliminarOrdenes_FalloEnCualquierPasoRevierteTodo(t *testing.T) {
	pasos := map[int]string{
		1: "eliminar facturas",
		2: "eliminar vínculos de inversión",
		3: "eliminar vínculos de compra",
		4: "eliminar ordenes",
	}
	for step, paso := range pasos {
		repo := newStubOrdenRepo()
		repo.failStep = step
		repo.failErr = &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"}
		svc := NewOrdenService(repo)

		resp, err := svc.EliminarOrdenes(context.Background(), []int64{101, 103})
		require.Error(t, err, "paso %d", step)
		assert.Nil(t, resp)

		var e *apierror.Error
		require.True(t, errors.As(err, &e))
		assert.Equal(t, apierror.KindPersistencia, e.Kind)
		assert.Equal(t, apierror.CausaRestriccion, e.Causa)
		assert.Equal(t, paso, e.Paso)
		assert.Equal(t, "23503", e.Codigo)

		assert.False(t, repo.committed)
		assert.Len(t, repo.ordenes, 2, "paso %d", step)
		assert.Len(t, repo.facturas, 2, "paso %d", step)
		assert.True(t, repo.ordenInversion[101])
		assert.True(t, repo.ordenCompra[101])
	}
}

func TestEliminarOrdenes_ErrorDeConexion(t *testing.T) {
	repo := newStubOrdenRepo()
	repo.beginErr = context.DeadlineExceeded
	svc := NewOrdenService(repo)

	_, err := svc.EliminarOrdenes(context.Background(), []int64{101})
	assert.Equal(t, apierror.CausaConexion, apierror.CausaOf(err))
	assert.Len(t, repo.ordenes, 2)
}

func TestNormalizarIDs(t *testing.T) {
	got, err := normalizarIDs([]int64{9, 3, 9, 1})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 3, 9}, got)
}
