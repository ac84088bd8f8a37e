package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"wasabi/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ClaimsKey = "claims"
)

// Roles carried in the rol claim. Tokens are issued by the session service.
const (
	RolAdministrador    = "administrador"
	RolContable         = "contable"
	RolJefeDepartamento = "jefe_departamento"
)

// JWTClaims are the custom claims embedded in every access token.
type JWTClaims struct {
	UserID         string `json:"user_id"`
	Username       string `json:"username"`
	Rol            string `json:"rol"`
	DepartamentoID *int64 `json:"departamento_id,omitempty"`
	jwt.RegisteredClaims
}

// JWTAuth validates the Bearer token on every protected route.
func JWTAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Autenticacion requerida"))
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		claims := &JWTClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})

		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Token invalido o expirado"))
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// RequireRole rejects requests whose JWT role is not in the allowed list.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		claims, ok := c.MustGet(ClaimsKey).(*JWTClaims)
		if !ok || !allowed[claims.Rol] {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("Permisos insuficientes"))
			return
		}
		c.Next()
	}
}

// GetClaims is a helper to retrieve typed claims from the Gin context.
func GetClaims(c *gin.Context) *JWTClaims {
	claims, _ := c.MustGet(ClaimsKey).(*JWTClaims)
	return claims
}

// RolValido reports whether rol is one of the roles the API knows.
func RolValido(rol string) bool {
	switch rol {
	case RolAdministrador, RolContable, RolJefeDepartamento:
		return true
	}
	return false
}

// SoloSuDepartamento limits a jefe_departamento to the department named by the
// route parameter param. Other roles pass through. A parameter that is not a
// number is left to the handler, which answers 400.
func SoloSuDepartamento(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil || claims.Rol != RolJefeDepartamento {
			c.Next()
			return
		}
		id, err := strconv.ParseInt(c.Param(param), 10, 64)
		if err != nil {
			c.Next()
			return
		}
		if claims.DepartamentoID == nil || *claims.DepartamentoID != id {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("Sin acceso a este departamento"))
			return
		}
		c.Next()
	}
}
