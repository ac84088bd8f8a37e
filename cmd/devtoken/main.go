// cmd/devtoken/main.go: Firma un JWT de desarrollo con JWT_SECRET.
// Los tokens reales los emite el servicio de sesiones; éste sólo sirve para
// probar la API en local.
// Uso: go run ./cmd/devtoken -rol jefe_departamento -departamento 7
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"wasabi/internal/config"
	"wasabi/internal/middleware"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
)

func main() {
	rol := flag.String("rol", middleware.RolAdministrador, "administrador | contable | jefe_departamento")
	usuario := flag.String("usuario", "dev", "username del token")
	departamento := flag.Int64("departamento", 0, "departamento del jefe (obligatorio con -rol jefe_departamento)")
	ttl := flag.Duration("ttl", 8*time.Hour, "validez del token")
	flag.Parse()

	claims, err := construirClaims(*rol, *usuario, *departamento, *ttl, time.Now())
	if err != nil {
		fmt.Fprintln(os.Stderr, "devtoken:", err)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}
	if cfg.IsProduction() {
		log.Fatal().Msg("devtoken no se usa en producción")
	}

	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		log.Fatal().Err(err).Msg("firmar token")
	}
	fmt.Fprintln(os.Stdout, s)
}

func construirClaims(rol, usuario string, departamento int64, ttl time.Duration, now time.Time) (middleware.JWTClaims, error) {
	if !middleware.RolValido(rol) {
		return middleware.JWTClaims{}, fmt.Errorf("rol %q desconocido", rol)
	}
	if ttl <= 0 {
		return middleware.JWTClaims{}, errors.New("ttl debe ser positivo")
	}
	claims := middleware.JWTClaims{
		UserID:   "dev-" + usuario,
		Username: usuario,
		Rol:      rol,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	switch {
	case rol == middleware.RolJefeDepartamento && departamento <= 0:
		return middleware.JWTClaims{}, errors.New("jefe_departamento necesita -departamento")
	case departamento > 0:
		claims.DepartamentoID = &departamento
	}
	return claims, nil
}
