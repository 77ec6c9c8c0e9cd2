package handler

import (
	"io"
	"net/http"
	"strconv"

	"licitasis/internal/apierror"
	"licitasis/internal/dto"
	"licitasis/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// maxComprovanteBytes caps the receipt upload at 10 MiB.
const maxComprovanteBytes = 10 << 20

type ComprasHandler struct{ svc service.CompraService }

func NewComprasHandler(svc service.CompraService) *ComprasHandler {
	return &ComprasHandler{svc: svc}
}

// RegistrarCompra godoc
// @Summary      Registrar uma nova compra
// @Description  Cria uma compra em transação única: cabeçalho, itens e conta a pagar (quando sem data de pagamento). Aceita multipart com comprovante anexo.
// @Tags         compras
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        fornecedor_id  formData string true  "UUID do fornecedor"
// @Param        numero_nf      formData string true  "Número da nota fiscal"
// @Param        data_compra    formData string true  "Data AAAA-MM-DD"
// @Param        produto_id     formData []string true "IDs dos produtos (paralelo)"
// @Param        quantidade     formData []int    true "Quantidades (paralelo)"
// @Param        valor_unitario formData []string true "Valores unitários (paralelo)"
// @Param        comprovante    formData file     false "Comprovante (jpg, jpeg, png, pdf)"
// @Success      201 {object} dto.CompraResponse
// @Failure      400 {object} apierror.APIError
// @Failure      404 {object} apierror.APIError
// @Failure      422 {object} apierror.ValidationError
// @Router       /v1/compras [post]
func (h *ComprasHandler) RegistrarCompra(c *gin.Context) {
	req, ok := parseCompraForm(c)
	if !ok {
		return
	}
	if !validateStruct(c, req) {
		return
	}

	upload, ok := readComprovante(c)
	if !ok {
		return
	}

	resp, err := h.svc.RegistrarCompra(c.Request.Context(), actorFrom(c), *req, upload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// parseCompraForm assembles the purchase DTO from the multipart fields. Line
// items arrive as the parallel arrays produto_id[], quantidade[] and
// valor_unitario[], one position per row.
func parseCompraForm(c *gin.Context) (*dto.RegistrarCompraRequest, bool) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Formulário multipart inválido"))
		return nil, false
	}

	req := &dto.RegistrarCompraRequest{
		FornecedorID:        c.PostForm("fornecedor_id"),
		NumeroNF:            c.PostForm("numero_nf"),
		DataCompra:          c.PostForm("data_compra"),
		DataPagamentoCompra: formPtr(c, "data_pagamento_compra"),
		DataPagamentoFrete:  formPtr(c, "data_pagamento_frete"),
		LinkPagamento:       formPtr(c, "link_pagamento"),
		NumeroEmpenho:       formPtr(c, "numero_empenho"),
		Observacao:          formPtr(c, "observacao"),
	}

	req.Frete = decimal.Zero
	if raw := c.PostForm("frete"); raw != "" {
		frete, err := decimal.NewFromString(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("Frete inválido"))
			return nil, false
		}
		req.Frete = frete
	}
	if raw := c.PostForm("dias_vencimento"); raw != "" {
		dias, err := strconv.Atoi(raw)
		if err != nil || dias < 0 {
			c.JSON(http.StatusBadRequest, apierror.New("dias_vencimento inválido"))
			return nil, false
		}
		req.DiasVencimento = dias
	}

	produtoIDs := formArray(form.Value, "produto_id")
	quantidades := formArray(form.Value, "quantidade")
	valores := formArray(form.Value, "valor_unitario")
	if len(produtoIDs) == 0 || len(produtoIDs) != len(quantidades) || len(produtoIDs) != len(valores) {
		c.JSON(http.StatusBadRequest, apierror.New("Itens da compra mal formados: produto_id, quantidade e valor_unitario devem ter o mesmo tamanho"))
		return nil, false
	}

	for i := range produtoIDs {
		qtd, err := strconv.Atoi(quantidades[i])
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("Quantidade inválida no item "+strconv.Itoa(i+1)))
			return nil, false
		}
		valor, err := decimal.NewFromString(valores[i])
		if err != nil {
			c.JSON(http.StatusBadRequest, apierror.New("Valor unitário inválido no item "+strconv.Itoa(i+1)))
			return nil, false
		}
		req.Itens = append(req.Itens, dto.ItemCompraRequest{
			ProdutoID:     produtoIDs[i],
			Quantidade:    qtd,
			ValorUnitario: valor,
		})
	}
	return req, true
}

// readComprovante pulls the optional "comprovante" file out of the form.
func readComprovante(c *gin.Context) (*dto.ComprovanteUpload, bool) {
	fh, err := c.FormFile("comprovante")
	if err != nil {
		return nil, true // no file attached
	}
	if fh.Size > maxComprovanteBytes {
		c.JSON(http.StatusBadRequest, apierror.New("Comprovante excede o tamanho máximo de 10MB"))
		return nil, false
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Falha ao ler o comprovante"))
		return nil, false
	}
	defer f.Close()
	content, err := io.ReadAll(io.LimitReader(f, maxComprovanteBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Falha ao ler o comprovante"))
		return nil, false
	}
	return &dto.ComprovanteUpload{Filename: fh.Filename, Conteudo: content}, true
}

// BuscarCompra godoc
// @Summary      Detalhar compra
// @Tags         compras
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "UUID da compra"
// @Success      200 {object} dto.CompraResponse
// @Failure      404 {object} apierror.APIError
// @Router       /v1/compras/{id} [get]
func (h *ComprasHandler) BuscarCompra(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.BuscarCompra(c.Request.Context(), actorFrom(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarCompras godoc
// @Summary      Listar compras
// @Tags         compras
// @Produce      json
// @Security     BearerAuth
// @Param        fornecedor_id query string false "Filtro por fornecedor"
// @Param        numero_nf     query string false "Filtro por nota fiscal"
// @Param        page          query int    false "Página (default 1)"
// @Param        limit         query int    false "Registros por página (default 50)"
// @Success      200 {object} dto.CompraListResponse
// @Router       /v1/compras [get]
func (h *ComprasHandler) ListarCompras(c *gin.Context) {
	var filter dto.CompraFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.svc.ListarCompras(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func formPtr(c *gin.Context, key string) *string {
	if v := c.PostForm(key); v != "" {
		return &v
	}
	return nil
}

// formArray accepts both "campo" and "campo[]" naming, matching what the
// legacy front-end sends.
func formArray(values map[string][]string, key string) []string {
	if v, ok := values[key+"[]"]; ok {
		return v
	}
	return values[key]
}
