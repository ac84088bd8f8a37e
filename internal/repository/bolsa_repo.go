package repository

import (
	"context"
	"time"

	"wasabi/internal/model"

	"gorm.io/gorm"
)

// BolsaRepository reads pockets together with their category link flags so
// that classification happens in one place (service.ClasificarVinculos).
type BolsaRepository interface {
	// ListarVinculadas returns every pocket of a department, restricted to the
	// pockets starting in anio when anio > 0. Row order is not part of the contract.
	ListarVinculadas(ctx context.Context, departamentoID int64, anio int) ([]model.BolsaVinculada, error)
	FindVinculada(ctx context.Context, id int64) (*model.BolsaVinculada, error)
}

type bolsaRepo struct{ db *gorm.DB }

func NewBolsaRepository(db *gorm.DB) BolsaRepository { return &bolsaRepo{db: db} }

const selectBolsaVinculada = `b.id, b.id_departamento, b.fecha_inicio, b.fecha_final, b.cantidad_inicial,
	EXISTS (SELECT 1 FROM presupuestos p WHERE p.id_bolsa = b.id) AS tiene_presupuesto,
	EXISTS (SELECT 1 FROM inversiones i WHERE i.id_bolsa = b.id) AS tiene_inversion`

func (r *bolsaRepo) vinculadas(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Table("bolsas AS b").Select(selectBolsaVinculada)
}

func (r *bolsaRepo) ListarVinculadas(ctx context.Context, departamentoID int64, anio int) ([]model.BolsaVinculada, error) {
	q := r.vinculadas(ctx).Where("b.id_departamento = ?", departamentoID)
	if anio > 0 {
		// Range predicate instead of EXTRACT(YEAR ...) keeps the date index usable.
		desde := time.Date(anio, time.January, 1, 0, 0, 0, 0, time.UTC)
		q = q.Where("b.fecha_inicio >= ? AND b.fecha_inicio < ?", desde, desde.AddDate(1, 0, 0))
	}
	var rows []model.BolsaVinculada
	if err := q.Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *bolsaRepo) FindVinculada(ctx context.Context, id int64) (*model.BolsaVinculada, error) {
	var rows []model.BolsaVinculada
	if err := r.vinculadas(ctx).Where("b.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rows[0], nil
}
