package dto

type ActualizarEstadoFacturaRequest struct {
	Estado string `json:"estado" validate:"required,oneof=pendiente contabilizada anulada"`
}

type FacturaResponse struct {
	ID           int64   `json:"id"`
	OrdenID      int64   `json:"orden_id"`
	FechaEmision string  `json:"fecha_emision"`
	Estado       string  `json:"estado"`
	PDFUrl       *string `json:"pdf_url,omitempty"`
}
