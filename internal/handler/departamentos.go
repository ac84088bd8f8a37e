package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"wasabi/internal/apierror"
	"wasabi/internal/model"
	"wasabi/internal/service"

	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// DepartamentosHandler serves the per-department pocket ledger: lookups,
// yearly aggregates, history and the xlsx export.
type DepartamentosHandler struct {
	departamentos service.DepartamentoService
	agregado      service.AgregadoService
	historial     service.HistorialService
}

func NewDepartamentosHandler(
	departamentos service.DepartamentoService,
	agregado service.AgregadoService,
	historial service.HistorialService,
) *DepartamentosHandler {
	return &DepartamentosHandler{departamentos: departamentos, agregado: agregado, historial: historial}
}

// ObtenerPorID godoc
// @Summary      Obtener departamento
// @Tags         departamentos
// @Produce      json
// @Security     BearerAuth
// @Param        id   path     int  true  "ID del departamento"
// @Success      200  {object} dto.DepartamentoResponse
// @Failure      400  {object} apierror.APIError
// @Failure      404  {object} apierror.APIError
// @Router       /v1/departamentos/{id} [get]
func (h *DepartamentosHandler) ObtenerPorID(c *gin.Context) {
	id, ok := paramID(c, "id", "departamento")
	if !ok {
		return
	}
	resp, err := h.departamentos.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Agregado godoc
// @Summary      Total anual de una categoría
// @Description  Suma la cantidad inicial de las bolsas del departamento que empiezan en el año y pertenecen a la categoría, y la reparte en doce meses.
// @Tags         departamentos
// @Produce      json
// @Security     BearerAuth
// @Param        id         path     int     true  "ID del departamento"
// @Param        anio       query    int     true  "Año (cuatro dígitos)"
// @Param        categoria  query    string  true  "presupuesto | inversion"
// @Success      200  {object} dto.AgregadoResponse
// @Failure      400  {object} apierror.APIError
// @Failure      404  {object} apierror.APIError
// @Router       /v1/departamentos/{id}/agregado [get]
func (h *DepartamentosHandler) Agregado(c *gin.Context) {
	id, ok := paramID(c, "id", "departamento")
	if !ok {
		return
	}
	anio, err := strconv.Atoi(c.Query("anio"))
	if err != nil {
		respondError(c, apierror.Validacion("año inválido: %q", c.Query("anio")))
		return
	}
	categoria, err := model.ParseCategoria(c.Query("categoria"))
	if err != nil {
		respondError(c, err)
		return
	}

	resp, err := h.agregado.TotalesAnio(c.Request.Context(), id, anio, categoria)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Ventana godoc
// @Summary      Total de una categoría en todos los años
// @Tags         departamentos
// @Produce      json
// @Security     BearerAuth
// @Param        id         path     int     true  "ID del departamento"
// @Param        categoria  query    string  true  "presupuesto | inversion"
// @Success      200  {object} dto.VentanaResponse
// @Failure      400  {object} apierror.APIError
// @Router       /v1/departamentos/{id}/agregado/ventana [get]
func (h *DepartamentosHandler) Ventana(c *gin.Context) {
	id, ok := paramID(c, "id", "departamento")
	if !ok {
		return
	}
	categoria, err := model.ParseCategoria(c.Query("categoria"))
	if err != nil {
		respondError(c, err)
		return
	}
	resp, err := h.agregado.TotalesVentana(c.Request.Context(), id, categoria)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Resumen godoc
// @Summary      Resumen de presupuesto e inversión
// @Tags         departamentos
// @Produce      json
// @Security     BearerAuth
// @Param        id   path     int  true  "ID del departamento"
// @Success      200  {object} dto.ResumenResponse
// @Router       /v1/departamentos/{id}/resumen [get]
func (h *DepartamentosHandler) Resumen(c *gin.Context) {
	id, ok := paramID(c, "id", "departamento")
	if !ok {
		return
	}
	resp, err := h.agregado.Resumen(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// BolsasAnio godoc
// @Summary      Bolsas de un año
// @Description  Lista las bolsas que empiezan en el año con su categoría, de la más reciente a la más antigua.
// @Tags         departamentos
// @Produce      json
// @Security     BearerAuth
// @Param        id    path     int  true  "ID del departamento"
// @Param        anio  path     int  true  "Año"
// @Success      200  {array}  dto.BolsaAnioItem
// @Failure      400  {object} apierror.APIError
// @Router       /v1/departamentos/{id}/anios/{anio}/bolsas [get]
func (h *DepartamentosHandler) BolsasAnio(c *gin.Context) {
	id, ok := paramID(c, "id", "departamento")
	if !ok {
		return
	}
	anio, err := strconv.Atoi(c.Param("anio"))
	if err != nil {
		respondError(c, apierror.Validacion("año inválido: %q", c.Param("anio")))
		return
	}
	resp, err := h.agregado.BolsasAnio(c.Request.Context(), id, anio)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Historial godoc
// @Summary      Historial de bolsas por categoría
// @Tags         departamentos
// @Produce      json
// @Security     BearerAuth
// @Param        id         path     int     true  "ID del departamento"
// @Param        categoria  query    string  true  "presupuesto | inversion"
// @Success      200  {array}  dto.BolsaHistorialItem
// @Failure      400  {object} apierror.APIError
// @Router       /v1/departamentos/{id}/historial [get]
func (h *DepartamentosHandler) Historial(c *gin.Context) {
	id, ok := paramID(c, "id", "departamento")
	if !ok {
		return
	}
	categoria, err := model.ParseCategoria(c.Query("categoria"))
	if err != nil {
		respondError(c, err)
		return
	}
	resp, err := h.historial.Historial(c.Request.Context(), id, categoria)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Anios godoc
// @Summary      Totales por año
// @Tags         departamentos
// @Produce      json
// @Security     BearerAuth
// @Param        id   path     int  true  "ID del departamento"
// @Success      200  {array}  dto.AnioResumen
// @Router       /v1/departamentos/{id}/anios [get]
func (h *DepartamentosHandler) Anios(c *gin.Context) {
	id, ok := paramID(c, "id", "departamento")
	if !ok {
		return
	}
	resp, err := h.historial.Anios(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ExportarAnios godoc
// @Summary      Exportar totales e historial a Excel
// @Tags         departamentos
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security     BearerAuth
// @Param        id   path     int  true  "ID del departamento"
// @Success      200  {file}   binary
// @Router       /v1/departamentos/{id}/anios/export [get]
func (h *DepartamentosHandler) ExportarAnios(c *gin.Context) {
	id, ok := paramID(c, "id", "departamento")
	if !ok {
		return
	}
	data, err := h.historial.ExportarAnios(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="departamento_%d_anios.xlsx"`, id))
	c.Data(http.StatusOK, xlsxContentType, data)
}
