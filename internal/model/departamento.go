package model

// Departamento is owned by an external CRUD process; the ledger only reads it.
type Departamento struct {
	ID     int64  `gorm:"column:id;primaryKey"`
	Nombre string `gorm:"column:nombre;not null"`
}

func (Departamento) TableName() string { return "departamentos" }
