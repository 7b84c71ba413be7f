// Package render — PDF renderer.
// Lays the link list out as a numbered, clickable list using gofpdf.
package render

import (
	"bytes"
	"fmt"

	"github.com/gaurav-prasanna/linkpipe/core"
	"github.com/jung-kurt/gofpdf"
)

// maxLinkText is the longest URL printed on one line; the link target is never cut.
const maxLinkText = 95

// PDFRenderer renders the link list as a PDF document.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render converts the links into PDF bytes.
func (r *PDFRenderer) Render(links []string, meta core.PageMetadata) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Title from metadata.
	title := meta.Title
	if title == "" {
		title = "Links"
	}
	pdf.SetFont("Helvetica", "B", 18)
	pdf.MultiCell(0, 8, title, "", "L", false)
	pdf.Ln(4)

	// Source URL and count.
	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(100, 100, 100)
	if meta.URL != "" {
		pdf.MultiCell(0, 5, "Source: "+meta.URL, "", "L", false)
	}
	pdf.MultiCell(0, 5, fmt.Sprintf("%d links from %d chunks", len(links), meta.Chunks), "", "L", false)
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(6)

	if len(links) == 0 {
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, "No links found.", "", "L", false)
	}

	for i, link := range links {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(0, 0, 0)
		pdf.CellFormat(10, 5, fmt.Sprintf("%d.", i+1), "", 0, "R", false, 0, "")

		pdf.SetTextColor(20, 60, 160)
		pdf.CellFormat(0, 5, " "+truncate(link, maxLinkText), "", 1, "L", false, 0, link)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}
