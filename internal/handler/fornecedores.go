package handler

import (
	"net/http"

	"licitasis/internal/dto"
	"licitasis/internal/service"

	"github.com/gin-gonic/gin"
)

type FornecedoresHandler struct{ svc service.FornecedorService }

func NewFornecedoresHandler(svc service.FornecedorService) *FornecedoresHandler {
	return &FornecedoresHandler{svc: svc}
}

// Criar godoc
// @Summary      Cadastrar fornecedor
// @Description  Valida o dígito verificador do CNPJ e rejeita duplicados. Consulta o serviço de CNPJ para enriquecer o endereço quando disponível.
// @Tags         fornecedores
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body dto.CriarFornecedorRequest true "Dados do fornecedor"
// @Success      201 {object} dto.FornecedorResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/fornecedores [post]
func (h *FornecedoresHandler) Criar(c *gin.Context) {
	var req dto.CriarFornecedorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.CriarFornecedor(c.Request.Context(), actorFrom(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *FornecedoresHandler) Atualizar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.CriarFornecedorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.AtualizarFornecedor(c.Request.Context(), actorFrom(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *FornecedoresHandler) Buscar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.BuscarFornecedor(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *FornecedoresHandler) Listar(c *gin.Context) {
	resp, err := h.svc.ListarFornecedores(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *FornecedoresHandler) Desativar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.svc.DesativarFornecedor(c.Request.Context(), actorFrom(c), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ConsultarCNPJ godoc
// @Summary      Consultar CNPJ no serviço de registro
// @Tags         fornecedores
// @Produce      json
// @Security     BearerAuth
// @Param        cnpj path string true "CNPJ (com ou sem máscara)"
// @Success      200 {object} dto.CNPJConsultaResponse
// @Failure      400 {object} apierror.APIError
// @Router       /v1/fornecedores/cnpj/{cnpj} [get]
func (h *FornecedoresHandler) ConsultarCNPJ(c *gin.Context) {
	resp, err := h.svc.ConsultarCNPJ(c.Request.Context(), c.Param("cnpj"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
