package repository

import (
	"context"

	"wasabi/internal/model"

	"gorm.io/gorm"
)

// OrdenRepository exposes the cascading delete steps only inside a transaction.
type OrdenRepository interface {
	// Transaccion runs fn inside one store transaction. It commits when fn
	// returns nil and rolls back on any error or panic; the connection is
	// released on every path.
	Transaccion(ctx context.Context, fn func(tx OrdenTx) error) error
}

// OrdenTx is the set of statements available inside Transaccion. Each method
// returns the number of rows it removed.
type OrdenTx interface {
	EliminarFacturas(ctx context.Context, ordenIDs []int64) (int64, error)
	EliminarOrdenInversion(ctx context.Context, ordenIDs []int64) (int64, error)
	EliminarOrdenCompra(ctx context.Context, ordenIDs []int64) (int64, error)
	EliminarOrdenes(ctx context.Context, ordenIDs []int64) (int64, error)
}

type ordenRepo struct{ db *gorm.DB }

func NewOrdenRepository(db *gorm.DB) OrdenRepository { return &ordenRepo{db: db} }

func (r *ordenRepo) Transaccion(ctx context.Context, fn func(tx OrdenTx) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ordenTx{db: tx})
	})
}

type ordenTx struct{ db *gorm.DB }

func (t *ordenTx) EliminarFacturas(ctx context.Context, ordenIDs []int64) (int64, error) {
	res := t.db.WithContext(ctx).Where("id_orden IN ?", ordenIDs).Delete(&model.Factura{})
	return res.RowsAffected, res.Error
}

func (t *ordenTx) EliminarOrdenInversion(ctx context.Context, ordenIDs []int64) (int64, error) {
	res := t.db.WithContext(ctx).Where("id_orden IN ?", ordenIDs).Delete(&model.OrdenInversion{})
	return res.RowsAffected, res.Error
}

func (t *ordenTx) EliminarOrdenCompra(ctx context.Context, ordenIDs []int64) (int64, error) {
	res := t.db.WithContext(ctx).Where("id_orden IN ?", ordenIDs).Delete(&model.OrdenCompra{})
	return res.RowsAffected, res.Error
}

func (t *ordenTx) EliminarOrdenes(ctx context.Context, ordenIDs []int64) (int64, error) {
	res := t.db.WithContext(ctx).Where("id IN ?", ordenIDs).Delete(&model.Orden{})
	return res.RowsAffected, res.Error
}
