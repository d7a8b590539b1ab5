// Package report renders the finished summaries into a shareable artifact.
// The only format here is a minimal one-page PDF; richer layout is not the
// point of this tool.
package report

import (
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// Document is the renderable outcome of one pipeline run.
type Document struct {
	Title      string
	Official   string
	Simplified string
	// Translated copies, rendered in their own section when present.
	Language             string
	OfficialTranslated   string
	SimplifiedTranslated string
}

// WritePDF renders doc to outPath. The built-in core fonts only cover
// Latin text; fontPath may name a UTF-8 TTF file (e.g. a Noto Sans variant)
// for Indic output, in which case it is used for the whole document.
func WritePDF(doc Document, outPath, fontPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")

	family := "Helvetica"
	boldStyle := "B"
	if fontPath != "" {
		family = "custom"
		boldStyle = "" // a single TTF has no synthetic bold
		pdf.AddUTF8Font(family, "", fontPath)
	}

	pdf.SetFont(family, "", 11)
	pdf.AddPage()

	heading := func(text string, size float64) {
		pdf.SetFont(family, boldStyle, size)
		pdf.CellFormat(0, 8, text, "", 1, "L", false, 0, "")
		pdf.SetFont(family, "", 11)
	}
	paragraph := func(text string) {
		for _, line := range strings.Split(text, "\n") {
			if strings.TrimSpace(line) == "" {
				pdf.Ln(3)
				continue
			}
			pdf.MultiCell(0, 5, line, "", "L", false)
		}
		pdf.Ln(4)
	}

	if doc.Title != "" {
		heading(doc.Title, 14)
		pdf.Ln(2)
	}
	if doc.Official != "" {
		heading("Official Summary", 12)
		paragraph(doc.Official)
	}
	if doc.Simplified != "" {
		heading("Simplified Summary", 12)
		paragraph(doc.Simplified)
	}
	if doc.OfficialTranslated != "" || doc.SimplifiedTranslated != "" {
		title := "Translation"
		if doc.Language != "" {
			title = "Translation (" + doc.Language + ")"
		}
		heading(title, 12)
		if doc.OfficialTranslated != "" {
			paragraph(doc.OfficialTranslated)
		}
		if doc.SimplifiedTranslated != "" {
			paragraph(doc.SimplifiedTranslated)
		}
	}

	return pdf.OutputFileAndClose(outPath)
}
