package service

import (
	"context"
	"sort"

	"wasabi/internal/apierror"
	"wasabi/internal/dto"
	"wasabi/internal/infra"
	"wasabi/internal/model"
	"wasabi/internal/repository"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// HistorialService lists a department's pockets over time.
type HistorialService interface {
	Historial(ctx context.Context, departamentoID int64, categoria model.Categoria) ([]dto.BolsaHistorialItem, error)
	Anios(ctx context.Context, departamentoID int64) ([]dto.AnioResumen, error)
	ExportarAnios(ctx context.Context, departamentoID int64) ([]byte, error)
}

type historialService struct {
	bolsas repository.BolsaRepository
}

func NewHistorialService(bolsas repository.BolsaRepository) HistorialService {
	return &historialService{bolsas: bolsas}
}

// Historial returns the pockets of one category, newest start date first.
func (s *historialService) Historial(ctx context.Context, departamentoID int64, categoria model.Categoria) ([]dto.BolsaHistorialItem, error) {
	if err := validarDepartamento(departamentoID); err != nil {
		return nil, err
	}
	if err := validarCategoria(categoria); err != nil {
		return nil, err
	}

	rows, err := s.bolsas.ListarVinculadas(ctx, departamentoID, 0)
	if err != nil {
		return nil, apierror.Persistencia("listar historial", err)
	}
	ordenarRecientesPrimero(rows)

	result := make([]dto.BolsaHistorialItem, 0, len(rows))
	for _, b := range rows {
		if clasificar(b) != categoria {
			continue
		}
		result = append(result, dto.BolsaHistorialItem{
			ID:             b.ID,
			DepartamentoID: b.DepartamentoID,
			FechaInicio:    b.FechaInicio.Format(fechaISO),
			Cantidad:       b.CantidadInicial,
			FechaFin:       b.FechaFinal.Format(fechaISO),
		})
	}
	return result, nil
}

// Anios groups the department's pockets by start year in a single pass and
// returns both category totals per year, most recent year first. A year whose
// pockets are all unclassified is still listed, with zero totals.
func (s *historialService) Anios(ctx context.Context, departamentoID int64) ([]dto.AnioResumen, error) {
	if err := validarDepartamento(departamentoID); err != nil {
		return nil, err
	}

	rows, err := s.bolsas.ListarVinculadas(ctx, departamentoID, 0)
	if err != nil {
		return nil, apierror.Persistencia("listar años", err)
	}

	porAnio := make(map[int]*dto.AnioResumen)
	for _, b := range rows {
		anio := b.FechaInicio.Year()
		r, ok := porAnio[anio]
		if !ok {
			r = &dto.AnioResumen{Anio: anio, TotalPresupuesto: decimal.Zero, TotalInversion: decimal.Zero}
			porAnio[anio] = r
		}
		switch clasificar(b) {
		case model.CategoriaPresupuesto:
			r.TotalPresupuesto = r.TotalPresupuesto.Add(b.CantidadInicial)
		case model.CategoriaInversion:
			r.TotalInversion = r.TotalInversion.Add(b.CantidadInicial)
		}
	}

	result := make([]dto.AnioResumen, 0, len(porAnio))
	for _, r := range porAnio {
		result = append(result, *r)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Anio > result[j].Anio })
	return result, nil
}

// ExportarAnios renders the yearly totals and both histories as an xlsx workbook.
func (s *historialService) ExportarAnios(ctx context.Context, departamentoID int64) ([]byte, error) {
	if err := validarDepartamento(departamentoID); err != nil {
		return nil, err
	}

	var (
		anios                  []dto.AnioResumen
		presupuesto, inversion []dto.BolsaHistorialItem
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		anios, err = s.Anios(gctx, departamentoID)
		return err
	})
	g.Go(func() (err error) {
		presupuesto, err = s.Historial(gctx, departamentoID, model.CategoriaPresupuesto)
		return err
	})
	g.Go(func() (err error) {
		inversion, err = s.Historial(gctx, departamentoID, model.CategoriaInversion)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return infra.AniosWorkbook(departamentoID, anios, presupuesto, inversion)
}
