package service

import (
	"context"
	"errors"
	"time"

	"wasabi/internal/apierror"
	"wasabi/internal/dto"
	"wasabi/internal/model"
	"wasabi/internal/repository"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// AgregadoService computes per-department totals of funding pockets.
type AgregadoService interface {
	TotalesAnio(ctx context.Context, departamentoID int64, anio int, categoria model.Categoria) (*dto.AgregadoResponse, error)
	TotalesVentana(ctx context.Context, departamentoID int64, categoria model.Categoria) (*dto.VentanaResponse, error)
	BolsasAnio(ctx context.Context, departamentoID int64, anio int) ([]dto.BolsaAnioItem, error)
	Resumen(ctx context.Context, departamentoID int64) (*dto.ResumenResponse, error)
}

type agregadoService struct {
	bolsas        repository.BolsaRepository
	departamentos repository.DepartamentoRepository
}

func NewAgregadoService(bolsas repository.BolsaRepository, departamentos repository.DepartamentoRepository) AgregadoService {
	return &agregadoService{bolsas: bolsas, departamentos: departamentos}
}

// ── TotalesAnio ───────────────────────────────────────────────────────────────
// total = Σ cantidad_inicial of the department's pockets that start in anio and
// classify as categoria; mensual = total / 12. No matching pocket yields zeros.

func (s *agregadoService) TotalesAnio(ctx context.Context, departamentoID int64, anio int, categoria model.Categoria) (*dto.AgregadoResponse, error) {
	if err := validarDepartamento(departamentoID); err != nil {
		return nil, err
	}
	if err := validarAnio(anio); err != nil {
		return nil, err
	}
	if err := validarCategoria(categoria); err != nil {
		return nil, err
	}

	if _, err := s.departamentos.FindByID(ctx, departamentoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NoEncontrado("departamento %d no encontrado", departamentoID)
		}
		return nil, apierror.Persistencia("obtener departamento", err)
	}

	rows, err := s.bolsas.ListarVinculadas(ctx, departamentoID, anio)
	if err != nil {
		return nil, apierror.Persistencia("listar bolsas", err)
	}

	total := decimal.Zero
	for _, b := range rows {
		if b.FechaInicio.Year() != anio {
			continue
		}
		if clasificar(b) == categoria {
			total = total.Add(b.CantidadInicial)
		}
	}

	return &dto.AgregadoResponse{
		DepartamentoID: departamentoID,
		Anio:           anio,
		Categoria:      categoria,
		Total:          total,
		Mensual:        total.Div(doce),
	}, nil
}

// ── TotalesVentana ────────────────────────────────────────────────────────────

func (s *agregadoService) TotalesVentana(ctx context.Context, departamentoID int64, categoria model.Categoria) (*dto.VentanaResponse, error) {
	if err := validarDepartamento(departamentoID); err != nil {
		return nil, err
	}
	if err := validarCategoria(categoria); err != nil {
		return nil, err
	}

	rows, err := s.bolsas.ListarVinculadas(ctx, departamentoID, 0)
	if err != nil {
		return nil, apierror.Persistencia("listar bolsas", err)
	}

	total := decimal.Zero
	var inicio, fin *time.Time
	for i := range rows {
		b := rows[i]
		if clasificar(b) != categoria {
			continue
		}
		total = total.Add(b.CantidadInicial)
		if inicio == nil || b.FechaInicio.Before(*inicio) {
			inicio = &rows[i].FechaInicio
		}
		if fin == nil || b.FechaFinal.After(*fin) {
			fin = &rows[i].FechaFinal
		}
	}

	resp := &dto.VentanaResponse{
		DepartamentoID: departamentoID,
		Categoria:      categoria,
		Total:          total,
		Mensual:        total.Div(doce),
	}
	if inicio != nil {
		f := inicio.Format(fechaISO)
		resp.FechaInicio = &f
	}
	if fin != nil {
		f := fin.Format(fechaISO)
		resp.FechaFin = &f
	}
	return resp, nil
}

// ── BolsasAnio ────────────────────────────────────────────────────────────────

func (s *agregadoService) BolsasAnio(ctx context.Context, departamentoID int64, anio int) ([]dto.BolsaAnioItem, error) {
	if err := validarDepartamento(departamentoID); err != nil {
		return nil, err
	}
	if err := validarAnio(anio); err != nil {
		return nil, err
	}

	rows, err := s.bolsas.ListarVinculadas(ctx, departamentoID, anio)
	if err != nil {
		return nil, apierror.Persistencia("listar bolsas", err)
	}
	ordenarRecientesPrimero(rows)

	result := make([]dto.BolsaAnioItem, 0, len(rows))
	for _, b := range rows {
		if b.FechaInicio.Year() != anio {
			continue
		}
		result = append(result, dto.BolsaAnioItem{
			ID:        b.ID,
			Cantidad:  b.CantidadInicial,
			Categoria: clasificar(b),
		})
	}
	return result, nil
}

// ── Resumen ───────────────────────────────────────────────────────────────────
// Both window aggregations are independent reads, so they run concurrently.

func (s *agregadoService) Resumen(ctx context.Context, departamentoID int64) (*dto.ResumenResponse, error) {
	if err := validarDepartamento(departamentoID); err != nil {
		return nil, err
	}

	var presupuesto, inversion *dto.VentanaResponse
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		presupuesto, err = s.TotalesVentana(gctx, departamentoID, model.CategoriaPresupuesto)
		return err
	})
	g.Go(func() error {
		var err error
		inversion, err = s.TotalesVentana(gctx, departamentoID, model.CategoriaInversion)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dto.ResumenResponse{
		DepartamentoID: departamentoID,
		Presupuesto:    *presupuesto,
		Inversion:      *inversion,
	}, nil
}
