package handler

import (
	"net/http"

	"licitasis/internal/dto"
	"licitasis/internal/service"

	"github.com/gin-gonic/gin"
)

type TransportadorasHandler struct{ svc service.TransportadoraService }

func NewTransportadorasHandler(svc service.TransportadoraService) *TransportadorasHandler {
	return &TransportadorasHandler{svc: svc}
}

func (h *TransportadorasHandler) Criar(c *gin.Context) {
	var req dto.CriarTransportadoraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CriarTransportadora(c.Request.Context(), actorFrom(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *TransportadorasHandler) Atualizar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.CriarTransportadoraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AtualizarTransportadora(c.Request.Context(), actorFrom(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TransportadorasHandler) Buscar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.BuscarTransportadora(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TransportadorasHandler) Listar(c *gin.Context) {
	resp, err := h.svc.ListarTransportadoras(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TransportadorasHandler) Desativar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.svc.DesativarTransportadora(c.Request.Context(), actorFrom(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
