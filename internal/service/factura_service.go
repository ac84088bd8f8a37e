package service

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"

	"wasabi/internal/apierror"
	"wasabi/internal/dto"
	"wasabi/internal/model"
	"wasabi/internal/repository"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Renderer writes the PDF of an invoice to destino. Implementations must only
// touch destino and must be safe to call again for the same invoice.
type Renderer interface {
	Render(f *model.Factura, destino string) error
}

type FacturaService interface {
	ActualizarEstado(ctx context.Context, id int64, estado string) error
	GenerarPDF(ctx context.Context, id int64) (*dto.FacturaResponse, error)
	ObtenerPDFPath(ctx context.Context, id int64) (string, error)
}

type facturaService struct {
	repo        repository.FacturaRepository
	renderer    Renderer
	storagePath string
}

func NewFacturaService(repo repository.FacturaRepository, renderer Renderer, storagePath string) FacturaService {
	return &facturaService{repo: repo, renderer: renderer, storagePath: storagePath}
}

// ActualizarEstado sets any recognised estado regardless of the current one;
// invoices have no enforced lifecycle.
func (s *facturaService) ActualizarEstado(ctx context.Context, id int64, estado string) error {
	if id <= 0 {
		return apierror.Validacion("id de factura inválido: %d", id)
	}
	if !model.EstadoFacturaValido(estado) {
		return apierror.Validacion("estado %q inválido: use pendiente, contabilizada o anulada", estado)
	}
	n, err := s.repo.UpdateEstado(ctx, id, estado)
	if err != nil {
		return apierror.Persistencia("actualizar estado de factura", err)
	}
	if n == 0 {
		return apierror.NoEncontrado("factura %d no encontrada", id)
	}
	return nil
}

// GenerarPDF renders the invoice into the storage directory and records the path.
func (s *facturaService) GenerarPDF(ctx context.Context, id int64) (*dto.FacturaResponse, error) {
	f, err := s.buscar(ctx, id)
	if err != nil {
		return nil, err
	}

	destino := filepath.Join(s.storagePath, fmt.Sprintf("factura_%d.pdf", f.ID))
	if err := s.renderer.Render(f, destino); err != nil {
		log.Error().Err(err).Int64("factura_id", f.ID).Msg("fallo al generar PDF de factura")
		return nil, fmt.Errorf("generar PDF de factura %d: %w", f.ID, err)
	}
	if err := s.repo.UpdateRutaPDF(ctx, f.ID, destino); err != nil {
		return nil, apierror.Persistencia("guardar ruta de PDF", err)
	}
	f.RutaPDF = &destino
	return facturaToResponse(f), nil
}

// ObtenerPDFPath returns the filesystem path of a rendered invoice PDF.
func (s *facturaService) ObtenerPDFPath(ctx context.Context, id int64) (string, error) {
	f, err := s.buscar(ctx, id)
	if err != nil {
		return "", err
	}
	if f.RutaPDF == nil || *f.RutaPDF == "" {
		return "", apierror.NoEncontrado("PDF no disponible: la factura %d aún no se ha generado", id)
	}
	return *f.RutaPDF, nil
}

func (s *facturaService) buscar(ctx context.Context, id int64) (*model.Factura, error) {
	if id <= 0 {
		return nil, apierror.Validacion("id de factura inválido: %d", id)
	}
	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NoEncontrado("factura %d no encontrada", id)
		}
		return nil, apierror.Persistencia("obtener factura", err)
	}
	return f, nil
}

// ── helpers ──────────────────────────────────────────────────────────────────

func facturaToResponse(f *model.Factura) *dto.FacturaResponse {
	resp := &dto.FacturaResponse{
		ID:           f.ID,
		OrdenID:      f.OrdenID,
		FechaEmision: f.FechaEmision.Format(fechaISO),
		Estado:       f.Estado,
	}
	if f.RutaPDF != nil && *f.RutaPDF != "" {
		u := "/v1/facturas/" + strconv.FormatInt(f.ID, 10) + "/pdf"
		resp.PDFUrl = &u
	}
	return resp
}
