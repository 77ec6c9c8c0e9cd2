package handler

import (
	"net/http"

	"licitasis/internal/apierror"
	"licitasis/internal/dto"
	"licitasis/internal/service"

	"github.com/gin-gonic/gin"
)

type ContasPagarHandler struct{ svc service.ContaPagarService }

func NewContasPagarHandler(svc service.ContaPagarService) *ContasPagarHandler {
	return &ContasPagarHandler{svc: svc}
}

// Criar godoc
// @Summary      Cadastrar conta a pagar avulsa
// @Tags         contas-pagar
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CriarContaPagarRequest true "Dados da conta"
// @Success      201 {object} dto.ContaPagarResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/contas-pagar [post]
func (h *ContasPagarHandler) Criar(c *gin.Context) {
	var req dto.CriarContaPagarRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CriarConta(c.Request.Context(), actorFrom(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// MarcarPaga godoc
// @Summary      Baixar conta a pagar
// @Tags         contas-pagar
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID da conta"
// @Success      200 {object} dto.ContaPagarResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/contas-pagar/{id}/pagar [post]
func (h *ContasPagarHandler) MarcarPaga(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.MarcarPaga(c.Request.Context(), actorFrom(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ContasPagarHandler) Listar(c *gin.Context) {
	var filter dto.ContaPagarFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.ListarContas(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
