package infra

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// CNPJResponse is the subset of the registry payload the backend uses.
type CNPJResponse struct {
	CNPJ               string `json:"cnpj"`
	RazaoSocial        string `json:"razao_social"`
	NomeFantasia       string `json:"nome_fantasia"`
	SituacaoCadastral  string `json:"descricao_situacao_cadastral"`
	Logradouro         string `json:"logradouro"`
	Municipio          string `json:"municipio"`
	UF                 string `json:"uf"`
	DDDTelefone        string `json:"ddd_telefone_1"`
}

// CNPJClient queries an external CNPJ registry service (BrasilAPI-compatible)
// to enrich supplier/carrier registrations. Lookups are best effort: callers
// must tolerate errors and fall back to manually entered data.
type CNPJClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewCNPJClient(baseURL string) *CNPJClient {
	return &CNPJClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Consultar fetches registry data for a bare-digit CNPJ.
func (c *CNPJClient) Consultar(ctx context.Context, cnpj string) (*CNPJResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/cnpj/"+cnpj, nil)
	if err != nil {
		return nil, fmt.Errorf("cnpjws: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cnpjws: service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cnpjws: service returned %d", resp.StatusCode)
	}

	var result CNPJResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("cnpjws: decode response: %w", err)
	}
	return &result, nil
}
