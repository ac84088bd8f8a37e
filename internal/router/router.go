package router

import (
	"time"

	"wasabi/internal/config"
	"wasabi/internal/handler"
	"wasabi/internal/infra"
	"wasabi/internal/middleware"
	"wasabi/internal/repository"
	"wasabi/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS(cfg.IsProduction(), cfg.AllowedOrigins()))
	r.Use(middleware.ErrorHandler())
	if rdb != nil {
		r.Use(middleware.RateLimiter(rdb, cfg.RateLimitPerMinute, time.Minute))
	}

	// ── Infrastructure ───────────────────────────────────────────────────────
	pdf := infra.NewPDFRenderer(cfg.Organizacion)

	// ── Repositories ─────────────────────────────────────────────────────────
	departamentoRepo := repository.NewDepartamentoRepository(db)
	bolsaRepo := repository.NewBolsaRepository(db)
	ordenRepo := repository.NewOrdenRepository(db)
	facturaRepo := repository.NewFacturaRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	departamentoSvc := service.NewDepartamentoService(departamentoRepo)
	clasificadorSvc := service.NewClasificadorService(bolsaRepo)
	agregadoSvc := service.NewAgregadoService(bolsaRepo, departamentoRepo)
	historialSvc := service.NewHistorialService(bolsaRepo)
	ordenSvc := service.NewOrdenService(ordenRepo)
	facturaSvc := service.NewFacturaService(facturaRepo, pdf, cfg.PDFStoragePath)

	// ── Handlers ─────────────────────────────────────────────────────────────
	departamentosH := handler.NewDepartamentosHandler(departamentoSvc, agregadoSvc, historialSvc)
	bolsasH := handler.NewBolsasHandler(clasificadorSvc)
	ordenesH := handler.NewOrdenesHandler(ordenSvc)
	facturasH := handler.NewFacturasHandler(facturaSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	todos := middleware.RequireRole(middleware.RolAdministrador, middleware.RolContable, middleware.RolJefeDepartamento)
	contables := middleware.RequireRole(middleware.RolAdministrador, middleware.RolContable)

	// Protected routes
	v1 := r.Group("/v1", middleware.JWTAuth(cfg.JWTSecret))
	{
		dep := v1.Group("/departamentos/:id", todos, middleware.SoloSuDepartamento("id"))
		{
			dep.GET("", departamentosH.ObtenerPorID)
			dep.GET("/anios", departamentosH.Anios)
			dep.GET("/anios/export", departamentosH.ExportarAnios)
			dep.GET("/anios/:anio/bolsas", departamentosH.BolsasAnio)
			dep.GET("/historial", departamentosH.Historial)
			dep.GET("/agregado", departamentosH.Agregado)
			dep.GET("/agregado/ventana", departamentosH.Ventana)
			dep.GET("/resumen", departamentosH.Resumen)
		}

		v1.GET("/bolsas/:id/categoria", todos, bolsasH.Categoria)

		// Destructive and billing operations: accounting roles only
		v1.POST("/ordenes/eliminar", contables, ordenesH.Eliminar)

		fact := v1.Group("/facturas/:id")
		{
			fact.PATCH("/estado", contables, facturasH.ActualizarEstado)
			fact.POST("/pdf", contables, facturasH.GenerarPDF)
			fact.GET("/pdf", todos, facturasH.DescargarPDF)
		}
	}

	// Swagger UI, only enabled outside production
	if !cfg.IsProduction() {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
