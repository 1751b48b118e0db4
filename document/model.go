package document

// DefaultUnit is the unit label substituted when a line item carries none.
const DefaultUnit = "Each"

// FallbackCompanyName replaces an empty customer company name in rendered
// output so the party block is never blank.
const FallbackCompanyName = "Customer"

// DiscountType selects how DocumentModel.DiscountValue is interpreted.
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// LineItem is one billable row of a document.
//
// Amount may arrive from the caller as a precomputed total; rendering
// ignores it and always recomputes LineTotal so a stale stored value can
// never leak into the printed document.
type LineItem struct {
	Description string  `json:"description"`
	PartNumber  string  `json:"partNumber,omitempty"`
	Unit        string  `json:"unit,omitempty"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Amount      float64 `json:"amount,omitempty"`
}

// LineTotal returns Quantity × UnitPrice, recomputed on every call.
func (li LineItem) LineTotal() float64 {
	return li.Quantity * li.UnitPrice
}

// UnitLabel returns the unit text with the unit-of-one default applied.
func (li LineItem) UnitLabel() string {
	if li.Unit == "" {
		return DefaultUnit
	}
	return li.Unit
}

// Section groups line items under a title. Serial numbering runs globally
// across all sections of a document, never per section.
type Section struct {
	Title string     `json:"title"`
	Items []LineItem `json:"items"`
}

// PartyInfo describes one party of the document (usually the customer).
type PartyInfo struct {
	CompanyName string `json:"companyName"`
	ContactName string `json:"contactName,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	VATNumber   string `json:"vatNumber,omitempty"`
	CRNumber    string `json:"crNumber,omitempty"`
}

// DisplayName returns the company name or the fallback label when empty.
func (p PartyInfo) DisplayName() string {
	if p.CompanyName == "" {
		return FallbackCompanyName
	}
	return p.CompanyName
}

// DocumentModel is the in-memory document handed to the rendering pipeline.
// It is constructed wholesale by the calling layer, passed into one render
// call and discarded; the rendering core keeps no state between calls.
//
// A document carries either a flat LineItems list or one-or-more Sections.
// When both are set, Sections win.
type DocumentModel struct {
	Number        string       `json:"number"`
	Date          string       `json:"date"`
	DueDate       string       `json:"dueDate,omitempty"`
	ValidUntil    string       `json:"validUntil,omitempty"`
	Customer      PartyInfo    `json:"customer"`
	LineItems     []LineItem   `json:"lineItems,omitempty"`
	Sections      []Section    `json:"sections,omitempty"`
	Currency      Currency     `json:"currency"`
	DiscountValue float64      `json:"discountValue,omitempty"`
	DiscountType  DiscountType `json:"discountType,omitempty"`
	Terms         string       `json:"terms,omitempty"`
	Notes         string       `json:"notes,omitempty"`
}

// NumberedItem pairs a line item with its global serial number.
type NumberedItem struct {
	Serial int
	Item   LineItem
}

// RenderSection is a section normalized for rendering: a flat document
// becomes a single untitled section.
type RenderSection struct {
	Title string
	Items []NumberedItem
}

// NumberedSections normalizes the document into render sections with a
// continuous serial number across all sections.
func (m *DocumentModel) NumberedSections() []RenderSection {
	serial := 0
	number := func(items []LineItem) []NumberedItem {
		out := make([]NumberedItem, 0, len(items))
		for _, it := range items {
			serial++
			out = append(out, NumberedItem{Serial: serial, Item: it})
		}
		return out
	}

	if len(m.Sections) > 0 {
		out := make([]RenderSection, 0, len(m.Sections))
		for _, s := range m.Sections {
			out = append(out, RenderSection{Title: s.Title, Items: number(s.Items)})
		}
		return out
	}
	return []RenderSection{{Items: number(m.LineItems)}}
}

// AllItems returns every line item regardless of sectioning.
func (m *DocumentModel) AllItems() []LineItem {
	if len(m.Sections) > 0 {
		var out []LineItem
		for _, s := range m.Sections {
			out = append(out, s.Items...)
		}
		return out
	}
	return m.LineItems
}

// Subtotal sums the recomputed line totals over all items.
func (m *DocumentModel) Subtotal() float64 {
	var sum float64
	for _, it := range m.AllItems() {
		sum += it.LineTotal()
	}
	return sum
}

// HasPartNumbers reports whether any item carries a part number, which
// switches the table to a layout template with a part number column.
func (m *DocumentModel) HasPartNumbers() bool {
	for _, it := range m.AllItems() {
		if it.PartNumber != "" {
			return true
		}
	}
	return false
}

// HasUnits reports whether any item carries an explicit unit.
func (m *DocumentModel) HasUnits() bool {
	for _, it := range m.AllItems() {
		if it.Unit != "" {
			return true
		}
	}
	return false
}

// Totals computes the document totals breakdown from the current line items.
func (m *DocumentModel) Totals() Totals {
	return ComputeTotals(m.Subtotal(), m.DiscountValue, m.DiscountType, VATRate)
}
