package dto

// ── Request DTOs ──────────────────────────────────────────────────────────────

// EliminarOrdenesRequest is validated by service.OrdenService: non-empty,
// positive ids, duplicates collapsed.
type EliminarOrdenesRequest struct {
	IDs []int64 `json:"ids"`
}

// ── Response DTOs ─────────────────────────────────────────────────────────────

// EliminarOrdenesResponse reports the rows removed by one cascading delete.
// DeletedCount only counts ordenes; ids without an order contribute nothing.
type EliminarOrdenesResponse struct {
	Success      bool  `json:"success"`
	DeletedCount int64 `json:"deleted_count"`
	Facturas     int64 `json:"facturas"`
	Inversiones  int64 `json:"inversiones"`
	Compras      int64 `json:"compras"`
}

// EliminarOrdenesError is the failure body of POST /v1/ordenes/eliminar.
type EliminarOrdenesError struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Kind    string `json:"kind"`
	Causa   string `json:"causa,omitempty"`
}
