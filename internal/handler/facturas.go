package handler

import (
	"fmt"
	"net/http"

	"wasabi/internal/dto"
	"wasabi/internal/service"

	"github.com/gin-gonic/gin"
)

type FacturasHandler struct{ svc service.FacturaService }

func NewFacturasHandler(svc service.FacturaService) *FacturasHandler {
	return &FacturasHandler{svc: svc}
}

// ActualizarEstado godoc
// @Summary      Cambiar estado de factura
// @Description  Cualquier transición entre pendiente, contabilizada y anulada está permitida.
// @Tags         facturas
// @Accept       json
// @Security     BearerAuth
// @Param        id   path     int                                 true "ID de la factura"
// @Param        body body     dto.ActualizarEstadoFacturaRequest  true "Nuevo estado"
// @Success      204
// @Failure      404  {object} apierror.APIError
// @Failure      422  {object} apierror.ValidationError
// @Router       /v1/facturas/{id}/estado [patch]
func (h *FacturasHandler) ActualizarEstado(c *gin.Context) {
	id, ok := paramID(c, "id", "factura")
	if !ok {
		return
	}
	var req dto.ActualizarEstadoFacturaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.ActualizarEstado(c.Request.Context(), id, req.Estado); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GenerarPDF godoc
// @Summary      Generar PDF de factura
// @Description  Renderiza el PDF y guarda su ruta. Volver a llamarlo sobrescribe el archivo.
// @Tags         facturas
// @Produce      json
// @Security     BearerAuth
// @Param        id   path     int  true  "ID de la factura"
// @Success      200  {object} dto.FacturaResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/facturas/{id}/pdf [post]
func (h *FacturasHandler) GenerarPDF(c *gin.Context) {
	id, ok := paramID(c, "id", "factura")
	if !ok {
		return
	}
	resp, err := h.svc.GenerarPDF(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DescargarPDF godoc
// @Summary      Descargar PDF de factura
// @Tags         facturas
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id   path     int  true  "ID de la factura"
// @Success      200  {file}   binary
// @Failure      404  {object} apierror.APIError
// @Router       /v1/facturas/{id}/pdf [get]
func (h *FacturasHandler) DescargarPDF(c *gin.Context) {
	id, ok := paramID(c, "id", "factura")
	if !ok {
		return
	}
	path, err := h.svc.ObtenerPDFPath(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.FileAttachment(path, fmt.Sprintf("factura_%d.pdf", id))
}

