package apierror

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
)

// Kind classifies a service error for the HTTP boundary.
type Kind string

const (
	KindValidacion   Kind = "validacion"
	KindNoEncontrado Kind = "no_encontrado"
	KindPersistencia Kind = "persistencia"
)

// Causa refines a persistence error: a constraint violation is the caller's
// problem, a connectivity failure is worth retrying.
type Causa string

const (
	CausaRestriccion Causa = "restriccion"
	CausaConexion    Causa = "conexion"
	CausaAlmacen     Causa = "almacen"
)

// Error is the typed error returned by every service.
type Error struct {
	Kind  Kind
	Msg   string
	Causa Causa  // persistence only
	Paso  string // persistence only: the operation that failed
	// Codigo is the SQLSTATE reported by PostgreSQL, when there is one.
	Codigo string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) publicMessage() string {
	switch e.Causa {
	case CausaRestriccion:
		return fmt.Sprintf("%s: violación de restricción de integridad", e.Paso)
	case CausaConexion:
		return fmt.Sprintf("%s: base de datos no disponible", e.Paso)
	default:
		return fmt.Sprintf("%s: error de base de datos", e.Paso)
	}
}

// Validacion reports malformed input. No store access happens after one.
func Validacion(format string, args ...any) *Error {
	return &Error{Kind: KindValidacion, Msg: fmt.Sprintf(format, args...)}
}

// NoEncontrado reports a referenced entity that does not exist.
func NoEncontrado(format string, args ...any) *Error {
	return &Error{Kind: KindNoEncontrado, Msg: fmt.Sprintf(format, args...)}
}

// Persistencia wraps a store failure that happened while running paso.
// An err that is already an *Error is returned unchanged.
func Persistencia(paso string, err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	out := &Error{
		Kind:  KindPersistencia,
		Msg:   "error de persistencia en " + paso,
		Paso:  paso,
		Causa: CausaAlmacen,
		Err:   err,
	}
	var pgErr *pgconn.PgError
	var connErr *pgconn.ConnectError
	var netErr net.Error
	switch {
	case errors.As(err, &pgErr):
		out.Codigo = pgErr.Code
		switch sqlstateClass(pgErr.Code) {
		case "23":
			out.Causa = CausaRestriccion
		case "08", "57":
			out.Causa = CausaConexion
		}
	case errors.As(err, &connErr),
		errors.As(err, &netErr),
		errors.Is(err, driver.ErrBadConn),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled),
		pgconn.Timeout(err):
		out.Causa = CausaConexion
	}
	return out
}

func sqlstateClass(code string) string {
	if len(code) < 2 {
		return ""
	}
	return code[:2]
}

// KindOf returns the kind of err, or "" when err is not a typed service error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// CausaOf returns the persistence cause of err, or "" when not applicable.
func CausaOf(err error) Causa {
	var e *Error
	if errors.As(err, &e) {
		return e.Causa
	}
	return ""
}

// Status maps a service error to an HTTP status code.
func Status(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case KindValidacion:
		return http.StatusBadRequest
	case KindNoEncontrado:
		return http.StatusNotFound
	case KindPersistencia:
		switch e.Causa {
		case CausaRestriccion:
			return http.StatusConflict
		case CausaConexion:
			return http.StatusServiceUnavailable
		}
	}
	return http.StatusInternalServerError
}
