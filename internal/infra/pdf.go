package infra

// pdf.go — purchase record PDF generation using go-pdf/fpdf.
// Renders an A4 summary of a registered purchase:
//   - Header with supplier and invoice number
//   - Purchase date and empenho number when present
//   - Item table (product, quantity, unit value, line total)
//   - Freight and bold grand total
//
// The output file is saved to storagePath/compra_{id}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"licitasis/internal/model"

	"github.com/go-pdf/fpdf"
)

// GenerateCompraPDF renders the purchase summary PDF and returns its path.
func GenerateCompraPDF(compra *model.Compra, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0o755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("compra_%s.pdf", compra.ID)
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "LicitaSis", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, "Comprovante de Compra", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(contentW, 6, fmt.Sprintf("Fornecedor: %s", compra.FornecedorNome), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(contentW, 5, fmt.Sprintf("NF %s — %s", compra.NumeroNF, compra.DataCompra.Format("02/01/2006")), "", 1, "L", false, 0, "")
	if compra.NumeroEmpenho != nil {
		pdf.CellFormat(contentW, 5, fmt.Sprintf("Empenho: %s", *compra.NumeroEmpenho), "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)

	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(3)

	// ── Item table ────────────────────────────────────────────────────────────
	col1 := contentW * 0.46 // product
	col2 := contentW * 0.14 // qty
	col3 := contentW * 0.20 // unit value
	col4 := contentW * 0.20 // line total

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1, 6, "Produto", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 6, "Qtde", "B", 0, "C", false, 0, "")
	pdf.CellFormat(col3, 6, "Valor Unit.", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col4, 6, "Total", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	for _, item := range compra.Itens {
		nome := ""
		if item.Produto != nil {
			nome = item.Produto.Nome
		}
		pdf.CellFormat(col1, 6, nome, "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 6, fmt.Sprintf("%d", item.Quantidade), "", 0, "C", false, 0, "")
		pdf.CellFormat(col3, 6, "R$ "+item.ValorUnitario.StringFixed(2), "", 0, "R", false, 0, "")
		pdf.CellFormat(col4, 6, "R$ "+item.ValorTotal.StringFixed(2), "", 1, "R", false, 0, "")
	}

	pdf.Ln(2)
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(2)

	// ── Totals ────────────────────────────────────────────────────────────────
	if !compra.Frete.IsZero() {
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(contentW*0.8, 6, "Frete", "", 0, "R", false, 0, "")
		pdf.CellFormat(contentW*0.2, 6, "R$ "+compra.Frete.StringFixed(2), "", 1, "R", false, 0, "")
	}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW*0.8, 8, "TOTAL", "", 0, "R", false, 0, "")
	pdf.CellFormat(contentW*0.2, 8, "R$ "+compra.ValorTotal.StringFixed(2), "", 1, "R", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}
	return filePath, nil
}
