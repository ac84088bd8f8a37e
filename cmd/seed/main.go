// cmd/seed/main.go: Carga un departamento de demo con bolsas, órdenes y facturas.
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"time"

	"wasabi/internal/config"
	"wasabi/internal/infra"
	"wasabi/internal/model"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func fecha(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}
	db, err := infra.NewDatabase(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("db connect")
	}

	upsert := clause.OnConflict{DoNothing: true}
	err = db.WithContext(context.Background()).Transaction(func(tx *gorm.DB) error {
		steps := []any{
			&model.Departamento{ID: 7, Nombre: "Informática"},
			&[]model.Bolsa{
				{ID: 1, DepartamentoID: 7, FechaInicio: fecha("2023-01-01"), FechaFinal: fecha("2023-12-31"), CantidadInicial: decimal.NewFromInt(1200)},
				{ID: 2, DepartamentoID: 7, FechaInicio: fecha("2023-03-01"), FechaFinal: fecha("2023-12-31"), CantidadInicial: decimal.NewFromInt(600)},
				{ID: 3, DepartamentoID: 7, FechaInicio: fecha("2023-06-01"), FechaFinal: fecha("2024-05-31"), CantidadInicial: decimal.NewFromInt(2400)},
				{ID: 4, DepartamentoID: 7, FechaInicio: fecha("2022-01-01"), FechaFinal: fecha("2022-12-31"), CantidadInicial: decimal.NewFromInt(800)},
			},
			&[]model.Presupuesto{{ID: 1, BolsaID: 1}, {ID: 2, BolsaID: 2}, {ID: 3, BolsaID: 3}},
			&[]model.Inversion{{ID: 1, BolsaID: 4}},
			&[]model.Orden{
				{ID: 101, DepartamentoID: 7, ProveedorID: 1, Fecha: fecha("2023-04-10"), Importe: decimal.RequireFromString("150.00"), Cantidad: 1, Descripcion: "Monitores"},
				{ID: 102, DepartamentoID: 7, ProveedorID: 1, Fecha: fecha("2022-09-15"), Importe: decimal.RequireFromString("640.00"), Cantidad: 2, Inventariable: true, Descripcion: "Servidor"},
			},
			&[]model.OrdenCompra{{ID: 1, OrdenID: 101, PresupuestoID: 1}},
			&[]model.OrdenInversion{{ID: 1, OrdenID: 102, InversionID: 1}},
			&[]model.Factura{
				{ID: 1, OrdenID: 101, FechaEmision: fecha("2023-04-20"), Estado: model.EstadoFacturaPendiente},
				{ID: 2, OrdenID: 102, FechaEmision: fecha("2022-09-30"), Estado: model.EstadoFacturaContabilizada},
			},
		}
		// Providers are owned elsewhere and have no model here.
		if err := tx.Exec(`INSERT INTO proveedores (id, nombre) VALUES (1, 'Suministros Demo') ON CONFLICT DO NOTHING`).Error; err != nil {
			return err
		}
		for _, v := range steps {
			if err := tx.Clauses(upsert).Create(v).Error; err != nil {
				return err
			}
		}
		// Explicit ids bypass the sequences; move them past the seeded rows.
		for _, table := range []string{"departamentos", "proveedores", "bolsas", "presupuestos", "inversiones", "ordenes", "orden_compra", "orden_inversion", "facturas"} {
			if err := tx.Exec(fmt.Sprintf(`SELECT setval(pg_get_serial_sequence('%s', 'id'), (SELECT MAX(id) FROM %s))`, table, table)).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.Fatal().Err(err).Msg("seed")
	}
	log.Info().Int64("departamento_id", 7).Msg("datos de demo cargados")
}
