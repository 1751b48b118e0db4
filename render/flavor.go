package render

import (
	"fmt"

	"github.com/shakeelmo/smartuniit-task-flow-sub001/document"
)

// Flavor is the per-document-type configuration consumed by the assembler.
// All measurement, wrapping, column math and totals math are shared; a
// flavor only owns captions and which sections of the pipeline apply, so
// the three document types can never drift apart numerically.
type Flavor struct {
	Kind     string
	Title    string
	Subtitle string

	NumberLabel string
	DateLabel   string
	// ExpiryLabel captions the secondary date (validity or due date).
	// Empty means the document type has none.
	ExpiryLabel string
	expiryFrom  func(*document.DocumentModel) string

	// ShowBanking adds the banking panel next to the terms column.
	ShowBanking bool
	// Preamble renders the document notes as introduction paragraphs before
	// the line-item table (used by proposals, which embed their quotation
	// after the narrative part).
	Preamble bool
}

// ExpiryValue returns the flavor's secondary date from the model.
func (f Flavor) ExpiryValue(m *document.DocumentModel) string {
	if f.expiryFrom == nil {
		return ""
	}
	return f.expiryFrom(m)
}

var (
	QuotationFlavor = Flavor{
		Kind:        "quotation",
		Title:       "QUOTATION",
		Subtitle:    "Commercial Offer",
		NumberLabel: "Quotation #",
		DateLabel:   "Date",
		ExpiryLabel: "Valid Until",
		expiryFrom:  func(m *document.DocumentModel) string { return m.ValidUntil },
	}

	InvoiceFlavor = Flavor{
		Kind:        "invoice",
		Title:       "INVOICE",
		Subtitle:    "VAT Invoice",
		NumberLabel: "Invoice #",
		DateLabel:   "Date",
		ExpiryLabel: "Due Date",
		expiryFrom:  func(m *document.DocumentModel) string { return m.DueDate },
		ShowBanking: true,
	}

	ProposalFlavor = Flavor{
		Kind:        "proposal",
		Title:       "PROPOSAL",
		Subtitle:    "Technical & Commercial Proposal",
		NumberLabel: "Proposal #",
		DateLabel:   "Date",
		ExpiryLabel: "Valid Until",
		expiryFrom:  func(m *document.DocumentModel) string { return m.ValidUntil },
		Preamble:    true,
	}
)

// FlavorForKind maps a document kind name to its flavor.
func FlavorForKind(kind string) (Flavor, error) {
	switch kind {
	case QuotationFlavor.Kind:
		return QuotationFlavor, nil
	case InvoiceFlavor.Kind:
		return InvoiceFlavor, nil
	case ProposalFlavor.Kind:
		return ProposalFlavor, nil
	}
	return Flavor{}, fmt.Errorf("render: unknown document kind %q", kind)
}
