package repository

import (
	"context"

	"wasabi/internal/model"

	"gorm.io/gorm"
)

// DepartamentoRepository is read-only: departments are managed elsewhere.
type DepartamentoRepository interface {
	FindByID(ctx context.Context, id int64) (*model.Departamento, error)
}

type departamentoRepo struct{ db *gorm.DB }

func NewDepartamentoRepository(db *gorm.DB) DepartamentoRepository {
	return &departamentoRepo{db: db}
}

func (r *departamentoRepo) FindByID(ctx context.Context, id int64) (*model.Departamento, error) {
	var d model.Departamento
	err := r.db.WithContext(ctx).First(&d, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}
