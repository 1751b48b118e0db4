package layout

import (
	"fmt"
	"math"

	"github.com/shakeelmo/smartuniit-task-flow-sub001/document"
)

// Table layout metrics, in mm.
const (
	HeaderRowHeight = 8.0
	BaseRowHeight   = 7.0
	RowLineHeight   = 4.0
	SectionBand     = 7.0
	cellPadding     = 1.5

	headerFontSize = 8.0
	bodyFontSize   = 8.0
)

var (
	headerBg   = Color{R: 33, G: 37, B: 41}
	headerFg   = Color{R: 255, G: 255, B: 255}
	altRowBg   = Color{R: 248, G: 249, B: 250}
	sectionBg  = Color{R: 235, G: 235, B: 235}
	gridLine   = Color{R: 210, G: 210, B: 210}
	bodyText   = Color{R: 33, G: 37, B: 41}
	detailText = Color{R: 90, G: 90, B: 90}
)

// Table draws the line-item grid: a header band followed by one row per
// item. Row heights are dynamic, driven by the tallest wrapped cell, and
// every row consults the pager before drawing so the table can cross page
// boundaries, re-emitting its header after each break.
type Table struct {
	Surface  Surface
	Measure  Measurer
	Pager    *Pager
	Columns  ColumnSet
	Currency document.Currency
}

// DrawHeader draws the column header band at y and returns the cursor
// below it. Labels are centered and shortened to fit their column: the
// role's abbreviations are tried first, then character truncation.
func (t *Table) DrawHeader(y float64) float64 {
	s := t.Surface
	s.FillRect(t.Columns.Left, y, t.Columns.TableWidth, HeaderRowHeight, headerBg)

	s.SetFont(FontBold, headerFontSize)
	for _, col := range t.Columns.Cols {
		label := t.fitHeaderLabel(col)
		t.cellText(col.X, y, col.Width, HeaderRowHeight, label, AlignCenter, headerFg)
	}
	return y + HeaderRowHeight
}

// DrawSectionBand draws a shaded group header across the table width.
func (t *Table) DrawSectionBand(title string, y float64) (float64, bool) {
	y, broke := t.Pager.EnsureSpace(y, SectionBand+BaseRowHeight)
	if broke {
		y = t.DrawHeader(y)
	}
	s := t.Surface
	s.FillRect(t.Columns.Left, y, t.Columns.TableWidth, SectionBand, sectionBg)
	s.SetFont(FontBold, bodyFontSize)
	inset := t.Columns.Left + cellPadding
	t.cellText(inset, y, t.Columns.TableWidth-2*cellPadding, SectionBand, title, AlignLeft, bodyText)
	return y + SectionBand, broke
}

// DrawRow draws one line item and returns the cursor just below it, so
// callers can chain rows without recomputing heights. rowIndex drives the
// alternating background shading. The line total cell is always recomputed
// from quantity × unit price; any stored total on the item is ignored.
func (t *Table) DrawRow(item document.LineItem, serial, rowIndex int, y float64) (float64, bool) {
	descCol, _ := t.Columns.ByRole(ColDescription)
	descLines := Wrap(t.Measure, item.Description, descCol.Width-2*cellPadding, bodyFontSize)

	var partLines []string
	if partCol, ok := t.Columns.ByRole(ColPartNumber); ok && item.PartNumber != "" {
		partLines = Wrap(t.Measure, item.PartNumber, partCol.Width-2*cellPadding, bodyFontSize)
	}

	lineCount := len(descLines)
	if len(partLines) > lineCount {
		lineCount = len(partLines)
	}
	rowH := math.Max(BaseRowHeight, float64(lineCount)*RowLineHeight+2*cellPadding)

	y, broke := t.Pager.EnsureSpace(y, rowH)
	if broke {
		y = t.DrawHeader(y)
	}

	s := t.Surface
	if rowIndex%2 == 1 {
		s.FillRect(t.Columns.Left, y, t.Columns.TableWidth, rowH, altRowBg)
	}

	for _, col := range t.Columns.Cols {
		switch col.Role {
		case ColSerial:
			s.SetFont(FontRegular, bodyFontSize)
			t.cellText(col.X, y, col.Width, rowH, fmt.Sprintf("%d", serial), AlignCenter, bodyText)
		case ColDescription:
			t.drawTextBlock(col, y, descLines, true)
		case ColPartNumber:
			t.drawTextBlock(col, y, partLines, false)
		case ColQuantity:
			s.SetFont(FontRegular, bodyFontSize)
			t.cellText(col.X, y, col.Width, rowH, FormatQty(item.Quantity), AlignCenter, bodyText)
		case ColUnit:
			s.SetFont(FontRegular, bodyFontSize)
			unit := TruncateToWidth(t.Measure, item.UnitLabel(), col.Width-2*cellPadding, bodyFontSize)
			t.cellText(col.X, y, col.Width, rowH, unit, AlignCenter, bodyText)
		case ColUnitPrice:
			s.SetFont(FontRegular, bodyFontSize)
			amount := t.fitAmount(item.UnitPrice, col.Width-2*cellPadding)
			t.cellText(col.X+cellPadding, y, col.Width-2*cellPadding, rowH, amount, AlignRight, bodyText)
		case ColLineTotal:
			s.SetFont(FontBold, bodyFontSize)
			amount := t.fitAmount(item.LineTotal(), col.Width-2*cellPadding)
			t.cellText(col.X+cellPadding, y, col.Width-2*cellPadding, rowH, amount, AlignRight, bodyText)
		}
	}

	s.Line(t.Columns.Left, y+rowH, t.Columns.Left+t.Columns.TableWidth, y+rowH, gridLine)
	return y + rowH, broke
}

// drawTextBlock renders wrapped lines top-aligned inside a cell. When
// emphasizeFirst is set the first line is drawn bold as the item name and
// the remaining lines in a muted detail style.
func (t *Table) drawTextBlock(col Column, y float64, lines []string, emphasizeFirst bool) {
	s := t.Surface
	lineY := y + cellPadding
	for i, line := range lines {
		style := FontRegular
		color := bodyText
		if emphasizeFirst {
			if i == 0 {
				style = FontBold
			} else {
				color = detailText
			}
		}
		s.SetFont(style, bodyFontSize)
		t.cellText(col.X+cellPadding, lineY, col.Width-2*cellPadding, RowLineHeight, line, AlignLeft, color)
		lineY += RowLineHeight
	}
}

// fitHeaderLabel shortens a header title to its column width, preferring
// the role's abbreviations over raw truncation.
func (t *Table) fitHeaderLabel(col Column) string {
	budget := col.Width - 2*cellPadding
	if t.Measure(col.Title, headerFontSize) <= budget {
		return col.Title
	}
	for _, abbr := range col.Abbreviations {
		if t.Measure(abbr, headerFontSize) <= budget {
			return abbr
		}
	}
	return TruncateToWidth(t.Measure, col.Title, budget, headerFontSize)
}

// fitAmount formats a monetary cell value, dropping the currency suffix
// when the full form would overflow the column.
func (t *Table) fitAmount(v float64, budget float64) string {
	full := document.FormatCurrency(v, t.Currency)
	if t.Measure(full, bodyFontSize) <= budget {
		return full
	}
	bare := document.FormatAmount(v)
	if t.Measure(bare, bodyFontSize) <= budget {
		return bare
	}
	return TruncateToWidth(t.Measure, bare, budget, bodyFontSize)
}

func (t *Table) cellText(x, y, w, h float64, text string, align Align, c Color) {
	t.Surface.SetTextColor(c)
	t.Surface.CellText(x, y, w, h, text, align)
}

// FormatQty renders a quantity: whole numbers without decimals, fractional
// values with two.
func FormatQty(qty float64) string {
	if qty == math.Trunc(qty) {
		return fmt.Sprintf("%.0f", qty)
	}
	return fmt.Sprintf("%.2f", qty)
}
