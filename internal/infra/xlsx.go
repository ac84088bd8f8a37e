package infra

import (
	"fmt"

	"wasabi/internal/dto"

	"github.com/xuri/excelize/v2"
)

const (
	hojaAnios       = "Años"
	hojaPresupuesto = "Presupuesto"
	hojaInversion   = "Inversión"
)

// AniosWorkbook builds the yearly export of a department: one sheet with the
// per-year totals and one history sheet per category.
func AniosWorkbook(departamentoID int64, anios []dto.AnioResumen, presupuesto, inversion []dto.BolsaHistorialItem) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", hojaAnios); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(hojaAnios, "A1", &[]interface{}{
		fmt.Sprintf("Departamento %d", departamentoID),
	}); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(hojaAnios, "A2", &[]interface{}{"Año", "Total presupuesto", "Total inversión"}); err != nil {
		return nil, err
	}
	for i, a := range anios {
		p, _ := a.TotalPresupuesto.Float64()
		inv, _ := a.TotalInversion.Float64()
		cell, _ := excelize.CoordinatesToCellName(1, i+3)
		if err := f.SetSheetRow(hojaAnios, cell, &[]interface{}{a.Anio, p, inv}); err != nil {
			return nil, err
		}
	}

	for _, h := range []struct {
		nombre string
		filas  []dto.BolsaHistorialItem
	}{
		{hojaPresupuesto, presupuesto},
		{hojaInversion, inversion},
	} {
		if _, err := f.NewSheet(h.nombre); err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(h.nombre, "A1", &[]interface{}{"Bolsa", "Inicio", "Fin", "Cantidad"}); err != nil {
			return nil, err
		}
		for i, b := range h.filas {
			cantidad, _ := b.Cantidad.Float64()
			cell, _ := excelize.CoordinatesToCellName(1, i+2)
			if err := f.SetSheetRow(h.nombre, cell, &[]interface{}{b.ID, b.FechaInicio, b.FechaFin, cantidad}); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
