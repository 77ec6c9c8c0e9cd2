package handler

import (
	"net/http"

	"licitasis/internal/dto"
	"licitasis/internal/service"

	"github.com/gin-gonic/gin"
)

type EmpenhosHandler struct{ svc service.EmpenhoService }

func NewEmpenhosHandler(svc service.EmpenhoService) *EmpenhosHandler {
	return &EmpenhosHandler{svc: svc}
}

// Criar godoc
// @Summary      Cadastrar empenho
// @Tags         empenhos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CriarEmpenhoRequest true "Dados do empenho"
// @Success      201 {object} dto.EmpenhoResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/empenhos [post]
func (h *EmpenhosHandler) Criar(c *gin.Context) {
	var req dto.CriarEmpenhoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CriarEmpenho(c.Request.Context(), actorFrom(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AtualizarStatus godoc
// @Summary      Avançar status do empenho
// @Description  Avança o ciclo pendente → faturado → entregue → liquidado → pago, um passo por vez.
// @Tags         empenhos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id   path string true "UUID do empenho"
// @Param        body body dto.AtualizarStatusEmpenhoRequest true "Novo status"
// @Success      200 {object} dto.EmpenhoResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/empenhos/{id}/status [put]
func (h *EmpenhosHandler) AtualizarStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.AtualizarStatusEmpenhoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AtualizarStatus(c.Request.Context(), actorFrom(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EmpenhosHandler) Buscar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.BuscarEmpenho(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *EmpenhosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.ListarEmpenhos(c.Request.Context(), c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
