// Package testhelpers provides a recording drawing surface and fixture
// builders so layout and render behavior can be asserted without producing
// real output artifacts.
package testhelpers

import (
	"strings"

	"github.com/shakeelmo/smartuniit-task-flow-sub001/document"
	"github.com/shakeelmo/smartuniit-task-flow-sub001/layout"
)

// CharWidth is the fixed per-rune width (in mm at font size 10) used by
// the recording surface's deterministic text metrics.
const CharWidth = 0.5

// TextOp records one text placement.
type TextOp struct {
	Page       int
	X, Y, W, H float64
	Text       string
	Align      layout.Align
	Style      layout.FontStyle
	Size       float64
}

// RectOp records one filled rectangle.
type RectOp struct {
	Page       int
	X, Y, W, H float64
	Color      layout.Color
}

// RecordingSurface implements layout.Surface by recording drawing
// operations. Text widths are proportional to rune count, so wrap and
// truncation behavior is deterministic in tests.
type RecordingSurface struct {
	W, H float64

	page      int
	fontStyle layout.FontStyle
	fontSize  float64

	Texts  []TextOp
	Rects  []RectOp
	Images int
	footer func(pageNo int)
}

// NewRecordingSurface returns an A4-sized recording surface.
func NewRecordingSurface() *RecordingSurface {
	return &RecordingSurface{W: 210, H: 297}
}

// Measure is the deterministic text metrics function matching the
// surface's TextWidth.
func Measure(text string, fontSize float64) float64 {
	return float64(len([]rune(text))) * CharWidth * fontSize / 10
}

func (s *RecordingSurface) PageSize() (float64, float64) { return s.W, s.H }

func (s *RecordingSurface) AddPage() { s.page++ }

func (s *RecordingSurface) PageNumber() int { return s.page }

func (s *RecordingSurface) SetFont(style layout.FontStyle, size float64) {
	s.fontStyle = style
	s.fontSize = size
}

func (s *RecordingSurface) SetTextColor(c layout.Color) {}

func (s *RecordingSurface) TextWidth(text string) float64 {
	return Measure(text, s.fontSize)
}

func (s *RecordingSurface) CellText(x, y, w, h float64, text string, align layout.Align) {
	s.Texts = append(s.Texts, TextOp{
		Page: s.page, X: x, Y: y, W: w, H: h,
		Text: text, Align: align, Style: s.fontStyle, Size: s.fontSize,
	})
}

func (s *RecordingSurface) FillRect(x, y, w, h float64, c layout.Color) {
	s.Rects = append(s.Rects, RectOp{Page: s.page, X: x, Y: y, W: w, H: h, Color: c})
}

func (s *RecordingSurface) StrokeRect(x, y, w, h float64, c layout.Color) {}

func (s *RecordingSurface) Line(x1, y1, x2, y2 float64, c layout.Color) {}

func (s *RecordingSurface) FillTriangle(x1, y1, x2, y2, x3, y3 float64, c layout.Color) {}

func (s *RecordingSurface) Image(data []byte, format string, x, y, w, h float64) error {
	s.Images++
	return nil
}

func (s *RecordingSurface) SetPageFooter(draw func(pageNo int)) { s.footer = draw }

func (s *RecordingSurface) TotalPagesLabel() string { return "{nb}" }

// PageCount returns how many pages were opened.
func (s *RecordingSurface) PageCount() int { return s.page }

// TextsOnPage returns the text placements recorded on the given 1-based
// page.
func (s *RecordingSurface) TextsOnPage(page int) []TextOp {
	var out []TextOp
	for _, t := range s.Texts {
		if t.Page == page {
			out = append(out, t)
		}
	}
	return out
}

// ContainsText reports whether any recorded text on the page contains the
// substring.
func (s *RecordingSurface) ContainsText(page int, substr string) bool {
	for _, t := range s.TextsOnPage(page) {
		if strings.Contains(t.Text, substr) {
			return true
		}
	}
	return false
}

// SampleModel returns a small flat-item document for render tests.
func SampleModel() *document.DocumentModel {
	return &document.DocumentModel{
		Number:   "QUO-2026-0042",
		Date:     "2026-08-01",
		Currency: document.SAR,
		Customer: document.PartyInfo{
			CompanyName: "Al Noor Trading Est.",
			ContactName: "Khalid",
			Phone:       "+966 55 000 0000",
			Email:       "khalid@alnoor.example",
		},
		LineItems: []document.LineItem{
			{Description: "Network installation", Quantity: 2, UnitPrice: 100},
			{Description: "Cat6 cabling", Unit: "Meter", Quantity: 40, UnitPrice: 3.5},
		},
		DiscountType:  document.DiscountPercentage,
		DiscountValue: 10,
		Terms:         "Payment due within 30 days of invoice date.",
	}
}
