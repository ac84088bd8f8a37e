package handler

import (
	"net/http"

	"wasabi/internal/apierror"
	"wasabi/internal/dto"
	"wasabi/internal/service"

	"github.com/gin-gonic/gin"
)

type OrdenesHandler struct{ svc service.OrdenService }

func NewOrdenesHandler(svc service.OrdenService) *OrdenesHandler {
	return &OrdenesHandler{svc: svc}
}

// Eliminar godoc
// @Summary      Eliminar órdenes en cascada
// @Description  Borra en una transacción las facturas, vínculos de inversión, vínculos de compra y finalmente las órdenes. Si un paso falla no se borra nada.
// @Tags         ordenes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body     dto.EliminarOrdenesRequest true "IDs de orden"
// @Success      200  {object} dto.EliminarOrdenesResponse
// @Failure      400  {object} dto.EliminarOrdenesError
// @Failure      409  {object} dto.EliminarOrdenesError
// @Failure      503  {object} dto.EliminarOrdenesError
// @Router       /v1/ordenes/eliminar [post]
func (h *OrdenesHandler) Eliminar(c *gin.Context) {
	// The id list is validated by the service so that every failure, malformed
	// input included, answers with the same {success:false} body.
	var req dto.EliminarOrdenesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		eliminarFallido(c, apierror.Validacion("JSON invalido: %v", err))
		return
	}

	resp, err := h.svc.EliminarOrdenes(c.Request.Context(), req.IDs)
	if err != nil {
		eliminarFallido(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func eliminarFallido(c *gin.Context, err error) {
	_ = c.Error(err)
	env := apierror.FromError(err)
	c.AbortWithStatusJSON(apierror.Status(err), dto.EliminarOrdenesError{
		Success: false,
		Error:   env.Detail,
		Kind:    env.Kind,
		Causa:   string(apierror.CausaOf(err)),
	})
}
