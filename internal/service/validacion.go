package service

import (
	"sort"

	"wasabi/internal/apierror"
	"wasabi/internal/model"

	"github.com/shopspring/decimal"
)

const fechaISO = "2006-01-02"

var doce = decimal.NewFromInt(12)

func validarDepartamento(id int64) error {
	if id <= 0 {
		return apierror.Validacion("id de departamento inválido: %d", id)
	}
	return nil
}

func validarAnio(anio int) error {
	if anio < 1000 || anio > 9999 {
		return apierror.Validacion("año inválido: %d (se esperan cuatro dígitos)", anio)
	}
	return nil
}

func validarCategoria(c model.Categoria) error {
	if !c.Solicitable() {
		return apierror.Validacion("categoría %q inválida: use presupuesto o inversion", c.String())
	}
	return nil
}

// ordenarRecientesPrimero sorts by start date descending, then id descending,
// so the result never depends on the order the store returned rows in.
func ordenarRecientesPrimero(rows []model.BolsaVinculada) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if !a.FechaInicio.Equal(b.FechaInicio) {
			return a.FechaInicio.After(b.FechaInicio)
		}
		return a.ID > b.ID
	})
}
