package document

// VATRate is the value-added tax rate applied to every document.
const VATRate = 0.15

// Totals is the computed totals breakdown of a document. It is always
// recomputed from line items at render time and never stored.
type Totals struct {
	Subtotal       float64
	DiscountValue  float64
	DiscountType   DiscountType
	DiscountAmount float64
	TaxableBase    float64
	TaxRate        float64
	Tax            float64
	GrandTotal     float64
}

// TotalsDisplay carries the formatted strings for the totals block.
type TotalsDisplay struct {
	Subtotal       string
	DiscountAmount string
	TaxableBase    string
	Tax            string
	GrandTotal     string
}

// ComputeTotals derives the totals breakdown from a subtotal and discount.
// A percentage discount takes subtotal × value/100; a fixed discount takes
// the value verbatim. A fixed discount larger than the subtotal is NOT
// clamped: the taxable base goes negative and the totals reflect it, which
// matches the documents this engine has historically produced.
//
// Every document renderer must call this function rather than embedding its
// own arithmetic, so the printed totals can never drift between renderers.
func ComputeTotals(subtotal, discountValue float64, discountType DiscountType, taxRate float64) Totals {
	var discountAmount float64
	switch discountType {
	case DiscountPercentage:
		discountAmount = subtotal * discountValue / 100
	case DiscountFixed:
		discountAmount = discountValue
	}

	taxableBase := subtotal - discountAmount
	tax := taxableBase * taxRate

	return Totals{
		Subtotal:       subtotal,
		DiscountValue:  discountValue,
		DiscountType:   discountType,
		DiscountAmount: discountAmount,
		TaxableBase:    taxableBase,
		TaxRate:        taxRate,
		Tax:            tax,
		GrandTotal:     taxableBase + tax,
	}
}

// HasDiscount reports whether a discount row should appear in the totals
// block.
func (t Totals) HasDiscount() bool {
	return t.DiscountAmount != 0
}

// Display returns the totals formatted in the given currency.
func (t Totals) Display(c Currency) TotalsDisplay {
	return TotalsDisplay{
		Subtotal:       FormatCurrency(t.Subtotal, c),
		DiscountAmount: FormatCurrency(t.DiscountAmount, c),
		TaxableBase:    FormatCurrency(t.TaxableBase, c),
		Tax:            FormatCurrency(t.Tax, c),
		GrandTotal:     FormatCurrency(t.GrandTotal, c),
	}
}
