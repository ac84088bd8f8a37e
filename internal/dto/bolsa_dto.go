package dto

import (
	"wasabi/internal/model"

	"github.com/shopspring/decimal"
)

// ── Response DTOs ─────────────────────────────────────────────────────────────

// AgregadoResponse is returned by GET /v1/departamentos/:id/agregado.
type AgregadoResponse struct {
	DepartamentoID int64           `json:"departamento_id"`
	Anio           int             `json:"anio"`
	Categoria      model.Categoria `json:"categoria"`
	Total          decimal.Decimal `json:"total"`
	Mensual        decimal.Decimal `json:"mensual"`
}

// VentanaResponse aggregates a category across every year. Dates are absent
// when no pocket matched.
type VentanaResponse struct {
	DepartamentoID int64           `json:"departamento_id"`
	Categoria      model.Categoria `json:"categoria"`
	Total          decimal.Decimal `json:"total"`
	Mensual        decimal.Decimal `json:"mensual"`
	FechaInicio    *string         `json:"fecha_inicio"`
	FechaFin       *string         `json:"fecha_fin"`
}

type ResumenResponse struct {
	DepartamentoID int64           `json:"departamento_id"`
	Presupuesto    VentanaResponse `json:"presupuesto"`
	Inversion      VentanaResponse `json:"inversion"`
}

// BolsaAnioItem is one row of GET /v1/departamentos/:id/anios/:anio/bolsas.
type BolsaAnioItem struct {
	ID        int64           `json:"id"`
	Cantidad  decimal.Decimal `json:"cantidad"`
	Categoria model.Categoria `json:"categoria"`
}

// BolsaHistorialItem is one row of the pocket history, newest first.
type BolsaHistorialItem struct {
	ID             int64           `json:"id"`
	DepartamentoID int64           `json:"departamento_id"`
	FechaInicio    string          `json:"fecha_inicio"`
	Cantidad       decimal.Decimal `json:"cantidad"`
	FechaFin       string          `json:"fecha_fin"`
}

// AnioResumen pairs a year with both category totals.
type AnioResumen struct {
	Anio             int             `json:"anio"`
	TotalPresupuesto decimal.Decimal `json:"total_presupuesto"`
	TotalInversion   decimal.Decimal `json:"total_inversion"`
}

type ClasificacionResponse struct {
	BolsaID   int64           `json:"bolsa_id"`
	Categoria model.Categoria `json:"categoria"`
}
