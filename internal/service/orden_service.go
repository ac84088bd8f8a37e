package service

import (
	"context"
	"sort"

	"wasabi/internal/apierror"
	"wasabi/internal/dto"
	"wasabi/internal/repository"

	"github.com/rs/zerolog/log"
)

type OrdenService interface {
	EliminarOrdenes(ctx context.Context, ids []int64) (*dto.EliminarOrdenesResponse, error)
}

type ordenService struct {
	repo repository.OrdenRepository
}

func NewOrdenService(repo repository.OrdenRepository) OrdenService {
	return &ordenService{repo: repo}
}

// ── EliminarOrdenes ───────────────────────────────────────────────────────────
// One transaction, dependents before owners:
//   1. facturas          WHERE id_orden IN ids
//   2. orden_inversion   WHERE id_orden IN ids
//   3. orden_compra      WHERE id_orden IN ids
//   4. ordenes           WHERE id IN ids  → deleted_count
// Any failing step rolls back the whole call. Ids without an order are not errors.

func (s *ordenService) EliminarOrdenes(ctx context.Context, ids []int64) (*dto.EliminarOrdenesResponse, error) {
	set, err := normalizarIDs(ids)
	if err != nil {
		return nil, err
	}

	var resp dto.EliminarOrdenesResponse
	txErr := s.repo.Transaccion(ctx, func(tx repository.OrdenTx) error {
		n, err := tx.EliminarFacturas(ctx, set)
		if err != nil {
			return apierror.Persistencia("eliminar facturas", err)
		}
		resp.Facturas = n

		if n, err = tx.EliminarOrdenInversion(ctx, set); err != nil {
			return apierror.Persistencia("eliminar vínculos de inversión", err)
		}
		resp.Inversiones = n

		if n, err = tx.EliminarOrdenCompra(ctx, set); err != nil {
			return apierror.Persistencia("eliminar vínculos de compra", err)
		}
		resp.Compras = n

		if n, err = tx.EliminarOrdenes(ctx, set); err != nil {
			return apierror.Persistencia("eliminar ordenes", err)
		}
		resp.DeletedCount = n
		return nil
	})
	if txErr != nil {
		// Begin/commit failures come back untyped from the store.
		err := apierror.Persistencia("transacción de borrado", txErr)
		log.Error().
			Err(err.Err).
			Str("paso", err.Paso).
			Str("causa", string(err.Causa)).
			Str("sqlstate", err.Codigo).
			Ints64("ids", set).
			Msg("borrado de órdenes revertido")
		return nil, err
	}

	resp.Success = true
	log.Info().
		Ints64("ids", set).
		Int64("ordenes", resp.DeletedCount).
		Int64("facturas", resp.Facturas).
		Int64("inversiones", resp.Inversiones).
		Int64("compras", resp.Compras).
		Msg("órdenes eliminadas")
	return &resp, nil
}

// normalizarIDs enforces a non-empty set of positive ids and collapses duplicates.
func normalizarIDs(ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, apierror.Validacion("se requiere al menos un id de orden")
	}
	seen := make(map[int64]struct{}, len(ids))
	set := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id <= 0 {
			return nil, apierror.Validacion("id de orden inválido: %d", id)
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		set = append(set, id)
	}
	sort.Slice(set, func(i, j int) bool { return set[i] < set[j] })
	return set, nil
}
