package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Orden is a purchase requisition placed by a department against a provider.
type Orden struct {
	ID             int64           `gorm:"column:id;primaryKey"`
	DepartamentoID int64           `gorm:"column:id_departamento;not null;index"`
	ProveedorID    int64           `gorm:"column:id_proveedor;not null;index"`
	Fecha          time.Time       `gorm:"column:fecha;type:date;not null"`
	Importe        decimal.Decimal `gorm:"column:importe;type:decimal(12,2);not null"`
	Cantidad       int             `gorm:"column:cantidad;not null;default:1"`
	Inventariable  bool            `gorm:"column:inventariable;not null;default:false"`
	Descripcion    string          `gorm:"column:descripcion"`
}

func (Orden) TableName() string { return "ordenes" }

// OrdenInversion charges an order against an investment pocket (0..1 per order).
type OrdenInversion struct {
	ID          int64 `gorm:"column:id;primaryKey"`
	OrdenID     int64 `gorm:"column:id_orden;not null;uniqueIndex"`
	InversionID int64 `gorm:"column:id_inversion;not null"`
}

func (OrdenInversion) TableName() string { return "orden_inversion" }

// OrdenCompra charges an order against a budget pocket (0..1 per order).
type OrdenCompra struct {
	ID            int64 `gorm:"column:id;primaryKey"`
	OrdenID       int64 `gorm:"column:id_orden;not null;uniqueIndex"`
	PresupuestoID int64 `gorm:"column:id_presupuesto;not null"`
}

func (OrdenCompra) TableName() string { return "orden_compra" }
