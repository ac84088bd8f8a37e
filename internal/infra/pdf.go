package infra

// pdf.go: invoice PDF rendering using go-pdf/fpdf.
// A4 portrait document with:
//   - Header with the invoice number and issue date
//   - Order block (department, provider, date, description)
//   - Amount table (quantity, unit amount, total)
//   - Estado footer
//
// The file is written to the exact destination the caller passes in.

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"wasabi/internal/model"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// PDFRenderer renders invoices; it satisfies service.Renderer.
type PDFRenderer struct {
	Organizacion string
}

func NewPDFRenderer(organizacion string) *PDFRenderer {
	return &PDFRenderer{Organizacion: organizacion}
}

// Render writes the invoice PDF to destino, creating its directory if needed.
// Rendering twice overwrites the previous file.
func (r *PDFRenderer) Render(f *model.Factura, destino string) error {
	if f.Orden == nil {
		return fmt.Errorf("pdf: factura %d sin orden cargada", f.ID)
	}
	if err := os.MkdirAll(filepath.Dir(destino), 0755); err != nil {
		return fmt.Errorf("pdf: create storage dir: %w", err)
	}

	o := f.Orden
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, tr(r.Organizacion), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(contentW/2, 7, tr(fmt.Sprintf("Factura N° %d", f.ID)), "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW/2, 7, tr("Emisión: "+f.FechaEmision.Format("02/01/2006")), "", 1, "R", false, 0, "")
	pdf.Ln(3)
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(4)

	// ── Order block ──────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 10)
	rows := [][2]string{
		{"Orden", strconv.FormatInt(o.ID, 10)},
		{"Departamento", strconv.FormatInt(o.DepartamentoID, 10)},
		{"Proveedor", strconv.FormatInt(o.ProveedorID, 10)},
		{"Fecha de orden", o.Fecha.Format("02/01/2006")},
		{"Inventariable", siNo(o.Inventariable)},
	}
	for _, row := range rows {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(45, 6, tr(row[0]+":"), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(contentW-45, 6, tr(row[1]), "", 1, "L", false, 0, "")
	}
	if o.Descripcion != "" {
		pdf.Ln(2)
		pdf.MultiCell(contentW, 5, tr(o.Descripcion), "", "L", false)
	}
	pdf.Ln(4)

	// ── Amounts ──────────────────────────────────────────────────────────────
	col1, col2, col3 := contentW*0.4, contentW*0.3, contentW*0.3
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(col1, 7, "Cantidad", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 7, "Importe unitario", "B", 0, "R", false, 0, "")
	pdf.CellFormat(col3, 7, "Total", "B", 1, "R", false, 0, "")

	unitario := o.Importe
	if o.Cantidad > 1 {
		unitario = o.Importe.Div(decimal.NewFromInt(int64(o.Cantidad)))
	}
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(col1, 7, strconv.Itoa(o.Cantidad), "", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 7, tr(unitario.StringFixed(2)+" €"), "", 0, "R", false, 0, "")
	pdf.CellFormat(col3, 7, tr(o.Importe.StringFixed(2)+" €"), "", 1, "R", false, 0, "")

	// ── Footer ───────────────────────────────────────────────────────────────
	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(contentW, 5, tr("Estado: "+f.Estado), "", 1, "L", false, 0, "")

	if err := pdf.OutputFileAndClose(destino); err != nil {
		return fmt.Errorf("pdf: write file: %w", err)
	}
	return nil
}

func siNo(b bool) string {
	if b {
		return "sí"
	}
	return "no"
}
