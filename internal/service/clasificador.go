package service

import (
	"context"
	"errors"

	"wasabi/internal/apierror"
	"wasabi/internal/model"
	"wasabi/internal/repository"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ClasificarVinculos decides a pocket's category from its link flags.
// A budget link wins over an investment link, so a pocket carrying both
// (a data anomaly) still classifies deterministically as presupuesto.
func ClasificarVinculos(presupuesto, inversion bool) model.Categoria {
	switch {
	case presupuesto:
		return model.CategoriaPresupuesto
	case inversion:
		return model.CategoriaInversion
	default:
		return model.CategoriaDesconocida
	}
}

// clasificar is ClasificarVinculos plus the anomaly warning every caller owes.
func clasificar(b model.BolsaVinculada) model.Categoria {
	if b.Anomala() {
		log.Warn().
			Int64("bolsa_id", b.ID).
			Int64("departamento_id", b.DepartamentoID).
			Msg("bolsa vinculada a presupuesto e inversión; se clasifica como presupuesto")
	}
	return ClasificarVinculos(b.TienePresupuesto, b.TieneInversion)
}

type ClasificadorService interface {
	Clasificar(ctx context.Context, bolsaID int64) (model.Categoria, error)
}

type clasificadorService struct {
	repo repository.BolsaRepository
}

func NewClasificadorService(repo repository.BolsaRepository) ClasificadorService {
	return &clasificadorService{repo: repo}
}

func (s *clasificadorService) Clasificar(ctx context.Context, bolsaID int64) (model.Categoria, error) {
	if bolsaID <= 0 {
		return model.CategoriaDesconocida, apierror.Validacion("id de bolsa inválido: %d", bolsaID)
	}
	b, err := s.repo.FindVinculada(ctx, bolsaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.CategoriaDesconocida, apierror.NoEncontrado("bolsa %d no encontrada", bolsaID)
		}
		return model.CategoriaDesconocida, apierror.Persistencia("clasificar bolsa", err)
	}
	return clasificar(*b), nil
}
