package model

import "time"

// Factura estados. Any transition between them is allowed.
const (
	EstadoFacturaPendiente     = "pendiente"
	EstadoFacturaContabilizada = "contabilizada"
	EstadoFacturaAnulada       = "anulada"
)

// EstadoFacturaValido reports whether s is one of the recognised estados.
func EstadoFacturaValido(s string) bool {
	switch s {
	case EstadoFacturaPendiente, EstadoFacturaContabilizada, EstadoFacturaAnulada:
		return true
	}
	return false
}

// Factura bills an order. RutaPDF is empty until the PDF has been rendered.
type Factura struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	OrdenID      int64     `gorm:"column:id_orden;not null;index"`
	FechaEmision time.Time `gorm:"column:fecha_emision;type:date;not null"`
	RutaPDF      *string   `gorm:"column:ruta_pdf"`
	Estado       string    `gorm:"column:estado;type:varchar(20);not null;default:'pendiente'"`

	Orden *Orden `gorm:"foreignKey:OrdenID"`
}

func (Factura) TableName() string { return "facturas" }
