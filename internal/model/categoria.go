package model

import (
	"strings"

	"wasabi/internal/apierror"
)

// Categoria classifies a funding pocket. The zero value is CategoriaDesconocida,
// which the classifier produces for pockets without any category link; requests
// may only name CategoriaPresupuesto or CategoriaInversion.
type Categoria uint8

const (
	CategoriaDesconocida Categoria = iota
	CategoriaPresupuesto
	CategoriaInversion
)

// String returns the wire name used in JSON and query strings.
func (c Categoria) String() string {
	switch c {
	case CategoriaPresupuesto:
		return "presupuesto"
	case CategoriaInversion:
		return "inversion"
	default:
		return "desconocida"
	}
}

// Solicitable reports whether c may be used as a request parameter.
func (c Categoria) Solicitable() bool {
	return c == CategoriaPresupuesto || c == CategoriaInversion
}

func (c Categoria) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// ParseCategoria accepts only the two request-side categories.
func ParseCategoria(s string) (Categoria, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "presupuesto":
		return CategoriaPresupuesto, nil
	case "inversion", "inversión":
		return CategoriaInversion, nil
	case "":
		return CategoriaDesconocida, apierror.Validacion("la categoría es obligatoria")
	default:
		return CategoriaDesconocida, apierror.Validacion("categoría %q inválida: use presupuesto o inversion", s)
	}
}
