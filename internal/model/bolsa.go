package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bolsa is a funding pocket: one department, one time window, one initial amount.
// Pockets are created by the external budgeting process and are read-only here.
type Bolsa struct {
	ID              int64           `gorm:"column:id;primaryKey"`
	DepartamentoID  int64           `gorm:"column:id_departamento;not null;index"`
	FechaInicio     time.Time       `gorm:"column:fecha_inicio;type:date;not null"`
	FechaFinal      time.Time       `gorm:"column:fecha_final;type:date;not null"`
	CantidadInicial decimal.Decimal `gorm:"column:cantidad_inicial;type:decimal(12,2);not null"`
}

func (Bolsa) TableName() string { return "bolsas" }

// Presupuesto links a pocket to the budget category.
type Presupuesto struct {
	ID      int64 `gorm:"column:id;primaryKey"`
	BolsaID int64 `gorm:"column:id_bolsa;not null;index"`
}

func (Presupuesto) TableName() string { return "presupuestos" }

// Inversion links a pocket to the investment category.
type Inversion struct {
	ID      int64 `gorm:"column:id;primaryKey"`
	BolsaID int64 `gorm:"column:id_bolsa;not null;index"`
}

func (Inversion) TableName() string { return "inversiones" }

// BolsaVinculada is a pocket read together with the existence of its category links.
type BolsaVinculada struct {
	Bolsa
	TienePresupuesto bool `gorm:"column:tiene_presupuesto"`
	TieneInversion   bool `gorm:"column:tiene_inversion"`
}

// Anomala reports a pocket linked to both categories at once.
func (b BolsaVinculada) Anomala() bool { return b.TienePresupuesto && b.TieneInversion }
