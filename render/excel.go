package render

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/shakeelmo/smartuniit-task-flow-sub001/document"
	"github.com/shakeelmo/smartuniit-task-flow-sub001/layout"
)

// RenderWorkbook produces the tabular spreadsheet export for the model.
// The column set, serial numbering and totals all come from the same code
// paths as the PDF renderer, so both artifacts agree numerically for the
// same model.
func RenderWorkbook(m *document.DocumentModel, flavor Flavor) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := flavor.Title
	if len(sheetName) > 31 {
		sheetName = sheetName[:31]
	}
	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	// A4 page width drives the pdf column set; reuse its roles and order so
	// the sheet shows exactly the columns the printed document shows.
	cols := layout.ComputeColumns(m.HasPartNumbers(), m.HasUnits(), 210, pageMargin)
	letters := make([]string, len(cols.Cols))
	for i := range cols.Cols {
		letters[i] = string(rune('A' + i))
	}
	lastCol := letters[len(letters)-1]

	for i, col := range cols.Cols {
		// mm to spreadsheet character width.
		if err := f.SetColWidth(sheetName, letters[i], letters[i], col.Width*0.45); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", letters[i], err)
		}
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#1F3A5F"}, Pattern: 1},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	sectionStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 10},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"#EBEBEB"}, Pattern: 1},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create section style: %w", err)
	}

	itemStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create item style: %w", err)
	}

	summaryLabelStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary label style: %w", err)
	}

	summaryValueStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return nil, fmt.Errorf("create summary value style: %w", err)
	}

	// ── Header rows (1-3) ───────────────────────────────────────────────

	if err := f.MergeCell(sheetName, "A1", lastCol+"1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(sheetName, "A1", sanitizeCell(flavor.Title+" "+m.Number))
	f.SetCellStyle(sheetName, "A1", lastCol+"1", titleStyle)

	if err := f.MergeCell(sheetName, "A2", lastCol+"2"); err != nil {
		return nil, fmt.Errorf("merge customer: %w", err)
	}
	f.SetCellValue(sheetName, "A2", sanitizeCell("Customer: "+m.Customer.DisplayName()))
	f.SetCellStyle(sheetName, "A2", lastCol+"2", subtitleStyle)

	if err := f.MergeCell(sheetName, "A3", lastCol+"3"); err != nil {
		return nil, fmt.Errorf("merge date: %w", err)
	}
	dateLine := flavor.DateLabel + ": " + m.Date
	if flavor.ExpiryLabel != "" && flavor.ExpiryValue(m) != "" {
		dateLine += "   " + flavor.ExpiryLabel + ": " + flavor.ExpiryValue(m)
	}
	f.SetCellValue(sheetName, "A3", dateLine)
	f.SetCellStyle(sheetName, "A3", lastCol+"3", subtitleStyle)

	// ── Row 5: column headers ───────────────────────────────────────────

	for i, col := range cols.Cols {
		f.SetCellValue(sheetName, fmt.Sprintf("%s5", letters[i]), col.Title)
	}
	f.SetCellStyle(sheetName, "A5", lastCol+"5", headerStyle)

	// ── Data rows ───────────────────────────────────────────────────────

	row := 6
	for _, section := range m.NumberedSections() {
		if section.Title != "" {
			rowStr := fmt.Sprintf("%d", row)
			if err := f.MergeCell(sheetName, "A"+rowStr, lastCol+rowStr); err != nil {
				return nil, fmt.Errorf("merge section row: %w", err)
			}
			f.SetCellValue(sheetName, "A"+rowStr, sanitizeCell(section.Title))
			f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, sectionStyle)
			row++
		}

		for _, ni := range section.Items {
			rowStr := fmt.Sprintf("%d", row)
			for i, col := range cols.Cols {
				cell := letters[i] + rowStr
				switch col.Role {
				case layout.ColSerial:
					f.SetCellValue(sheetName, cell, ni.Serial)
				case layout.ColDescription:
					f.SetCellValue(sheetName, cell, sanitizeCell(ni.Item.Description))
				case layout.ColPartNumber:
					f.SetCellValue(sheetName, cell, sanitizeCell(ni.Item.PartNumber))
				case layout.ColQuantity:
					f.SetCellValue(sheetName, cell, ni.Item.Quantity)
				case layout.ColUnit:
					f.SetCellValue(sheetName, cell, sanitizeCell(ni.Item.UnitLabel()))
				case layout.ColUnitPrice:
					f.SetCellValue(sheetName, cell, document.FormatCurrency(ni.Item.UnitPrice, m.Currency))
				case layout.ColLineTotal:
					// Recomputed, never the stored amount.
					f.SetCellValue(sheetName, cell, document.FormatCurrency(ni.Item.LineTotal(), m.Currency))
				}
			}
			f.SetCellStyle(sheetName, "A"+rowStr, lastCol+rowStr, itemStyle)
			row++
		}
	}

	// ── Summary rows ────────────────────────────────────────────────────

	row++
	totals := m.Totals()
	display := totals.Display(m.Currency)

	labelCol := letters[len(letters)-2]
	valueCol := lastCol

	writeSummary := func(label, value string) {
		rowStr := fmt.Sprintf("%d", row)
		f.SetCellValue(sheetName, labelCol+rowStr, label)
		f.SetCellStyle(sheetName, labelCol+rowStr, labelCol+rowStr, summaryLabelStyle)
		f.SetCellValue(sheetName, valueCol+rowStr, value)
		f.SetCellStyle(sheetName, valueCol+rowStr, valueCol+rowStr, summaryValueStyle)
		row++
	}

	writeSummary("Subtotal:", display.Subtotal)
	if totals.HasDiscount() {
		label := "Discount:"
		if totals.DiscountType == document.DiscountPercentage {
			label = fmt.Sprintf("Discount (%s%%):", layout.FormatQty(totals.DiscountValue))
		}
		writeSummary(label, display.DiscountAmount)
		writeSummary("Taxable Amount:", display.TaxableBase)
	}
	writeSummary(fmt.Sprintf("VAT (%.0f%%):", totals.TaxRate*100), display.Tax)
	writeSummary("Grand Total:", display.GrandTotal)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// sanitizeCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Spreadsheet applications interpret cells
// starting with =, +, -, @, \t or \r as formulas.
func sanitizeCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns thin borders for all four cell sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{Type: side, Color: "#000000", Style: 1}
	}
	return borders
}
