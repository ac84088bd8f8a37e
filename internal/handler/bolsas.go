package handler

import (
	"net/http"

	"wasabi/internal/dto"
	"wasabi/internal/service"

	"github.com/gin-gonic/gin"
)

type BolsasHandler struct{ svc service.ClasificadorService }

func NewBolsasHandler(svc service.ClasificadorService) *BolsasHandler {
	return &BolsasHandler{svc: svc}
}

// Categoria godoc
// @Summary      Clasificar una bolsa
// @Description  presupuesto si tiene vínculo de presupuesto, inversion si sólo tiene vínculo de inversión, desconocida si no tiene ninguno.
// @Tags         bolsas
// @Produce      json
// @Security     BearerAuth
// @Param        id   path     int  true  "ID de la bolsa"
// @Success      200  {object} dto.ClasificacionResponse
// @Failure      404  {object} apierror.APIError
// @Router       /v1/bolsas/{id}/categoria [get]
func (h *BolsasHandler) Categoria(c *gin.Context) {
	id, ok := paramID(c, "id", "bolsa")
	if !ok {
		return
	}
	cat, err := h.svc.Clasificar(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ClasificacionResponse{BolsaID: id, Categoria: cat})
}
