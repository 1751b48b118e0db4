package render

import (
	"testing"

	"github.com/shakeelmo/smartuniit-task-flow-sub001/document"
)

func TestFlavorForKind(t *testing.T) {
	tests := []struct {
		kind      string
		wantTitle string
		wantErr   bool
	}{
		{"quotation", "QUOTATION", false},
		{"invoice", "INVOICE", false},
		{"proposal", "PROPOSAL", false},
		{"receipt", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			f, err := FlavorForKind(tt.kind)
			if tt.wantErr {
				if err == nil {
					t.Errorf("FlavorForKind(%q) expected error", tt.kind)
				}
				return
			}
			if err != nil {
				t.Fatalf("FlavorForKind(%q): %v", tt.kind, err)
			}
			if f.Title != tt.wantTitle {
				t.Errorf("title = %q, want %q", f.Title, tt.wantTitle)
			}
		})
	}
}

func TestFlavorExpiryValue(t *testing.T) {
	m := &document.DocumentModel{ValidUntil: "2026-09-30", DueDate: "2026-09-15"}

	if got := QuotationFlavor.ExpiryValue(m); got != "2026-09-30" {
		t.Errorf("quotation expiry = %q, want valid-until date", got)
	}
	if got := InvoiceFlavor.ExpiryValue(m); got != "2026-09-15" {
		t.Errorf("invoice expiry = %q, want due date", got)
	}
	if got := ProposalFlavor.ExpiryValue(m); got != "2026-09-30" {
		t.Errorf("proposal expiry = %q, want valid-until date", got)
	}
}

func TestFlavorPipelineSwitches(t *testing.T) {
	if QuotationFlavor.ShowBanking || ProposalFlavor.ShowBanking {
		t.Error("only invoices carry the banking panel")
	}
	if !InvoiceFlavor.ShowBanking {
		t.Error("invoices must carry the banking panel")
	}
	if !ProposalFlavor.Preamble {
		t.Error("proposals must render their notes as a preamble")
	}
	if QuotationFlavor.Preamble || InvoiceFlavor.Preamble {
		t.Error("only proposals render a preamble")
	}
}
