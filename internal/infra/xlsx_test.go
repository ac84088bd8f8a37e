package infra

import (
	"bytes"
	"testing"

	"wasabi/internal/dto"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestAniosWorkbook(t *testing.T) {
	anios := []dto.AnioResumen{
		{Anio: 2023, TotalPresupuesto: decimal.NewFromInt(4200), TotalInversion: decimal.NewFromInt(900)},
		{Anio: 2022, TotalPresupuesto: decimal.NewFromInt(1000), TotalInversion: decimal.Zero},
	}
	presupuesto := []dto.BolsaHistorialItem{
		{ID: 3, DepartamentoID: 7, FechaInicio: "2023-06-01", FechaFin: "2023-12-31", Cantidad: decimal.NewFromInt(2400)},
	}

	data, err := AniosWorkbook(7, anios, presupuesto, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{hojaAnios, hojaPresupuesto, hojaInversion}, f.GetSheetList())

	v, err := f.GetCellValue(hojaAnios, "A3")
	require.NoError(t, err)
	assert.Equal(t, "2023", v)
	v, err = f.GetCellValue(hojaAnios, "B3")
	require.NoError(t, err)
	assert.Equal(t, "4200", v)
	v, err = f.GetCellValue(hojaAnios, "A4")
	require.NoError(t, err)
	assert.Equal(t, "2022", v)

	v, err = f.GetCellValue(hojaPresupuesto, "B2")
	require.NoError(t, err)
	assert.Equal(t, "2023-06-01", v)

	rows, err := f.GetRows(hojaInversion)
	require.NoError(t, err)
	assert.Len(t, rows, 1, "solo la cabecera")
}
