package repository

import (
	"context"

	"wasabi/internal/model"

	"gorm.io/gorm"
)

type FacturaRepository interface {
	FindByID(ctx context.Context, id int64) (*model.Factura, error)
	UpdateEstado(ctx context.Context, id int64, estado string) (int64, error)
	UpdateRutaPDF(ctx context.Context, id int64, ruta string) error
}

type facturaRepo struct{ db *gorm.DB }

func NewFacturaRepository(db *gorm.DB) FacturaRepository { return &facturaRepo{db: db} }

// FindByID loads the invoice with its order, which the PDF layout needs.
func (r *facturaRepo) FindByID(ctx context.Context, id int64) (*model.Factura, error) {
	var f model.Factura
	err := r.db.WithContext(ctx).Preload("Orden").First(&f, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *facturaRepo) UpdateEstado(ctx context.Context, id int64, estado string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Factura{}).Where("id = ?", id).Update("estado", estado)
	return res.RowsAffected, res.Error
}

func (r *facturaRepo) UpdateRutaPDF(ctx context.Context, id int64, ruta string) error {
	return r.db.WithContext(ctx).Model(&model.Factura{}).Where("id = ?", id).Update("ruta_pdf", ruta).Error
}
