package layout

// ColumnRole identifies what a table column displays. Alignment and header
// abbreviation rules hang off the role, not off hardcoded labels.
type ColumnRole int

const (
	ColSerial ColumnRole = iota
	ColDescription
	ColPartNumber
	ColQuantity
	ColUnit
	ColUnitPrice
	ColLineTotal
)

// Column is one table column with its resolved width and x-offset.
type Column struct {
	Role  ColumnRole
	Title string
	// Abbreviations are shorter header forms tried in order before falling
	// back to character truncation when the full title does not fit.
	Abbreviations []string
	Align         Align
	Width         float64
	X             float64
}

// ColumnSet is the resolved column layout for one table.
type ColumnSet struct {
	Cols []Column
	// Left is the x-offset of the first column.
	Left float64
	// TableWidth is the sum of all column widths.
	TableWidth float64
}

// ByRole returns the column with the given role, if present.
func (cs ColumnSet) ByRole(r ColumnRole) (Column, bool) {
	for _, c := range cs.Cols {
		if c.Role == r {
			return c, true
		}
	}
	return Column{}, false
}

// HasRole reports whether the set contains a column with the given role.
func (cs ColumnSet) HasRole(r ColumnRole) bool {
	_, ok := cs.ByRole(r)
	return ok
}

// ComputeColumns selects one of four fixed column templates based on which
// optional columns are active and resolves widths and x-offsets for the
// page. When the template's nominal widths exceed the available width
// (pageWidth − 2×margin) every width is scaled by the same factor, so the
// column count and proportions stay stable and the table never overflows
// the page horizontally.
func ComputeColumns(hasPartNumber, hasUnit bool, pageWidth, margin float64) ColumnSet {
	cols := columnTemplate(hasPartNumber, hasUnit)

	var nominal float64
	for _, c := range cols {
		nominal += c.Width
	}

	available := pageWidth - 2*margin
	if nominal > available {
		scale := available / nominal
		for i := range cols {
			cols[i].Width *= scale
		}
	}

	x := margin
	var total float64
	for i := range cols {
		cols[i].X = x
		x += cols[i].Width
		total += cols[i].Width
	}

	return ColumnSet{Cols: cols, Left: margin, TableWidth: total}
}

// columnTemplate returns the nominal widths (in mm, biased toward the
// description column) for one of the four optional-column combinations.
func columnTemplate(hasPartNumber, hasUnit bool) []Column {
	serial := Column{Role: ColSerial, Title: "#", Align: AlignCenter, Width: 12}
	desc := Column{Role: ColDescription, Title: "Description", Align: AlignLeft}
	part := Column{
		Role:          ColPartNumber,
		Title:         "Part Number",
		Abbreviations: []string{"Part No", "Part"},
		Align:         AlignLeft,
		Width:         30,
	}
	qty := Column{Role: ColQuantity, Title: "Qty", Align: AlignCenter, Width: 16}
	unit := Column{Role: ColUnit, Title: "Unit", Align: AlignCenter, Width: 18}
	price := Column{
		Role:          ColUnitPrice,
		Title:         "Unit Price",
		Abbreviations: []string{"Price"},
		Align:         AlignRight,
		Width:         28,
	}
	total := Column{
		Role:          ColLineTotal,
		Title:         "Total Price",
		Abbreviations: []string{"Total"},
		Align:         AlignRight,
		Width:         28,
	}

	switch {
	case hasPartNumber && hasUnit:
		desc.Width = 70
		return []Column{serial, desc, part, qty, unit, price, total}
	case hasPartNumber:
		desc.Width = 88
		return []Column{serial, desc, part, qty, price, total}
	case hasUnit:
		desc.Width = 92
		qty.Width = 18
		price.Width = 30
		total.Width = 30
		return []Column{serial, desc, qty, unit, price, total}
	default:
		desc.Width = 98
		qty.Width = 20
		price.Width = 30
		total.Width = 30
		return []Column{serial, desc, qty, price, total}
	}
}
