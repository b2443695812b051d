package reports

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
)

const (
	pageMargin = 10.0
	headerH    = 8.0
	rowH       = 7.0
	titleSize  = 14.0
	bodySize   = 9.0
	footerSize = 8.0
)

// Render writes the report as an A4 portrait PDF. The generation timestamp
// goes into the page header; page numbers go into the footer.
func Render(r Report, w io.Writer) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.SetAutoPageBreak(true, 15)

	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Arial", "I", footerSize)
		pdf.CellFormat(0, 8, fmt.Sprintf("Page %d", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	pdf.AddPage()

	pdf.SetFont("Arial", "B", titleSize)
	pdf.CellFormat(0, 10, r.Title, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", footerSize)
	pdf.CellFormat(0, 6, "Generated: "+r.GeneratedAt.Format("02 Jan 2006 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	for _, table := range r.Tables {
		renderTable(pdf, table)
		pdf.Ln(6)
	}

	return pdf.Output(w)
}

// Save renders the report to dir, creating it if needed, and returns the
// written path. Used as the fallback when streaming to the client fails.
func Save(r Report, dir, fileName string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create reports dir: %w", err)
	}

	path := filepath.Join(dir, fileName)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create report file: %w", err)
	}
	defer f.Close()

	if err := Render(r, f); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}

func renderTable(pdf *gofpdf.Fpdf, t Table) {
	if t.Title != "" {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(0, 8, t.Title, "", 1, "L", false, 0, "")
	}

	// Header row
	pdf.SetFont("Arial", "B", bodySize)
	pdf.SetFillColor(230, 230, 230)
	for _, col := range t.Columns {
		pdf.CellFormat(col.Width, headerH, col.Label, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", bodySize)
	for _, row := range t.Rows {
		for i, col := range t.Columns {
			text := ""
			if i < len(row) {
				text = row[i]
			}
			pdf.CellFormat(col.Width, rowH, text, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
}
