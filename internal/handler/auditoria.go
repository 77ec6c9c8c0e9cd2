package handler

import (
	"net/http"

	"licitasis/internal/apierror"
	"licitasis/internal/dto"
	"licitasis/internal/service"

	"github.com/gin-gonic/gin"
)

type AuditoriaHandler struct{ svc service.AuditService }

func NewAuditoriaHandler(svc service.AuditService) *AuditoriaHandler {
	return &AuditoriaHandler{svc: svc}
}

// Listar godoc
// @Summary      Consultar trilha de auditoria
// @Description  Lista as entradas do log de auditoria, filtráveis por tabela e registro.
// @Tags         auditoria
// @Produce      json
// @Security     BearerAuth
// @Param        tabela      query string false "Nome da tabela"
// @Param        registro_id query string false "ID do registro"
// @Success      200 {object} dto.AuditListResponse
// @Router       /v1/auditoria [get]
func (h *AuditoriaHandler) Listar(c *gin.Context) {
	var filter dto.AuditFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
