// Package render produces the output artifacts for a document model: the
// paginated PDF (through the layout engine and a gofpdf-backed drawing
// surface) and the tabular spreadsheet export. Both paths share the same
// totals calculator and serial numbering so they always agree numerically.
package render

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"

	"github.com/shakeelmo/smartuniit-task-flow-sub001/layout"
)

const pdfFontFamily = "Helvetica"

// PDFSurface adapts gofpdf to the layout.Surface interface. One surface
// serves exactly one render call.
type PDFSurface struct {
	pdf       *gofpdf.Fpdf
	translate func(string) string
	images    int
}

// NewPDFSurface returns an A4 portrait surface measured in millimeters.
// Automatic page breaks are disabled: pagination is owned by the layout
// engine's pager, not by the PDF backend.
func NewPDFSurface() *PDFSurface {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetMargins(0, 0, 0)
	pdf.SetCellMargin(0)
	pdf.SetFont(pdfFontFamily, "", 10)

	return &PDFSurface{
		pdf:       pdf,
		translate: pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

func (s *PDFSurface) PageSize() (w, h float64) {
	return s.pdf.GetPageSize()
}

func (s *PDFSurface) AddPage() {
	s.pdf.AddPage()
}

func (s *PDFSurface) PageNumber() int {
	return s.pdf.PageNo()
}

func (s *PDFSurface) SetFont(style layout.FontStyle, size float64) {
	s.pdf.SetFont(pdfFontFamily, string(style), size)
}

func (s *PDFSurface) SetTextColor(c layout.Color) {
	s.pdf.SetTextColor(c.R, c.G, c.B)
}

func (s *PDFSurface) TextWidth(text string) float64 {
	return s.pdf.GetStringWidth(s.translate(text))
}

func (s *PDFSurface) CellText(x, y, w, h float64, text string, align layout.Align) {
	s.pdf.SetXY(x, y)
	s.pdf.CellFormat(w, h, s.translate(text), "", 0, string(align)+"M", false, 0, "")
}

func (s *PDFSurface) FillRect(x, y, w, h float64, c layout.Color) {
	s.pdf.SetFillColor(c.R, c.G, c.B)
	s.pdf.Rect(x, y, w, h, "F")
}

func (s *PDFSurface) StrokeRect(x, y, w, h float64, c layout.Color) {
	s.pdf.SetDrawColor(c.R, c.G, c.B)
	s.pdf.Rect(x, y, w, h, "D")
}

func (s *PDFSurface) Line(x1, y1, x2, y2 float64, c layout.Color) {
	s.pdf.SetDrawColor(c.R, c.G, c.B)
	s.pdf.SetLineWidth(0.2)
	s.pdf.Line(x1, y1, x2, y2)
}

func (s *PDFSurface) FillTriangle(x1, y1, x2, y2, x3, y3 float64, c layout.Color) {
	s.pdf.SetFillColor(c.R, c.G, c.B)
	s.pdf.Polygon([]gofpdf.PointType{
		{X: x1, Y: y1},
		{X: x2, Y: y2},
		{X: x3, Y: y3},
	}, "F")
}

func (s *PDFSurface) Image(data []byte, format string, x, y, w, h float64) error {
	s.images++
	name := fmt.Sprintf("img-%d", s.images)
	opts := gofpdf.ImageOptions{ImageType: format, ReadDpi: true}
	s.pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(data))
	if s.pdf.Err() {
		return fmt.Errorf("render: register image: %w", s.pdf.Error())
	}
	s.pdf.ImageOptions(name, x, y, w, h, false, opts, 0, "")
	if s.pdf.Err() {
		return fmt.Errorf("render: place image: %w", s.pdf.Error())
	}
	return nil
}

func (s *PDFSurface) SetPageFooter(draw func(pageNo int)) {
	s.pdf.AliasNbPages("")
	s.pdf.SetFooterFunc(func() {
		draw(s.pdf.PageNo())
	})
}

func (s *PDFSurface) TotalPagesLabel() string {
	return "{nb}"
}

// Measurer returns the text metrics function backed by this surface's
// fonts, for injection into the wrap engine and table renderer.
func (s *PDFSurface) Measurer() layout.Measurer {
	return func(text string, fontSize float64) float64 {
		s.pdf.SetFontSize(fontSize)
		return s.pdf.GetStringWidth(s.translate(text))
	}
}

// Bytes finalizes the document and returns the PDF artifact.
func (s *PDFSurface) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := s.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render: produce pdf: %w", err)
	}
	return buf.Bytes(), nil
}
