package render

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shakeelmo/smartuniit-task-flow-sub001/document"
	"github.com/shakeelmo/smartuniit-task-flow-sub001/testhelpers"
)

func testBrand() Branding {
	return Branding{
		CompanyName: "Smart Universe for Communications & IT",
		Address:     "Riyadh, Saudi Arabia",
		Email:       "info@smartuniit.com",
		Phone:       "+966 11 000 0000",
		VATNumber:   "310123456700003",
		Bank: BankDetails{
			BankName:      "Al Rajhi Bank",
			Beneficiary:   "Smart Universe Co.",
			IBAN:          "SA0000000000000000000000",
			AccountNumber: "123456789",
		},
	}
}

func assertPDF(t *testing.T, data []byte, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatal("output does not start with %PDF-")
	}
	if len(data) < 1000 {
		t.Errorf("output suspiciously small: %d bytes", len(data))
	}
}

func TestRenderPDFAllFlavors(t *testing.T) {
	for _, flavor := range []Flavor{QuotationFlavor, InvoiceFlavor, ProposalFlavor} {
		t.Run(flavor.Kind, func(t *testing.T) {
			m := testhelpers.SampleModel()
			m.ValidUntil = "2026-09-30"
			m.DueDate = "2026-09-15"
			m.Notes = "Scope covers supply and installation of the listed items."

			a := NewAssembler(flavor, testBrand())
			data, err := a.RenderPDF(context.Background(), m)
			assertPDF(t, data, err)
		})
	}
}

func TestRenderPDFEmptyItems(t *testing.T) {
	m := &document.DocumentModel{
		Number:   "QUO-EMPTY-1",
		Date:     "2026-08-01",
		Currency: document.SAR,
	}

	a := NewAssembler(QuotationFlavor, testBrand())
	data, err := a.RenderPDF(context.Background(), m)
	assertPDF(t, data, err)
}

func TestRenderPDFMissingOptionalFields(t *testing.T) {
	m := &document.DocumentModel{
		Number:   "INV-BARE-1",
		Date:     "2026-08-01",
		Currency: document.USD,
		LineItems: []document.LineItem{
			{Description: "Consulting", Quantity: 1, UnitPrice: 1200},
		},
	}

	// No customer block fields, no terms, no banking details.
	a := NewAssembler(InvoiceFlavor, Branding{CompanyName: "Acme"})
	data, err := a.RenderPDF(context.Background(), m)
	assertPDF(t, data, err)
}

func TestRenderPDFSections(t *testing.T) {
	m := testhelpers.SampleModel()
	m.LineItems = nil
	m.Sections = []document.Section{
		{Title: "Civil Works", Items: []document.LineItem{
			{Description: "Trenching", Unit: "Meter", Quantity: 120, UnitPrice: 15},
		}},
		{Title: "Network Equipment", Items: []document.LineItem{
			{Description: "Core switch", PartNumber: "WS-C2960X", Quantity: 2, UnitPrice: 4500},
		}},
	}

	a := NewAssembler(QuotationFlavor, testBrand())
	data, err := a.RenderPDF(context.Background(), m)
	assertPDF(t, data, err)
}

func TestRenderPDFManyItems(t *testing.T) {
	m := testhelpers.SampleModel()
	m.LineItems = nil
	for i := 0; i < 120; i++ {
		m.LineItems = append(m.LineItems, document.LineItem{
			Description: fmt.Sprintf("Patch cord %d with strain relief boots", i+1),
			Quantity:    float64(i%5 + 1),
			UnitPrice:   3.25,
		})
	}

	a := NewAssembler(QuotationFlavor, testBrand())
	data, err := a.RenderPDF(context.Background(), m)
	assertPDF(t, data, err)
}

func TestRenderPDFWithLogo(t *testing.T) {
	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			img.Set(x, y, color.RGBA{R: 31, G: 58, B: 95, A: 255})
		}
	}
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode test logo: %v", err)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write(buf.Bytes())
	}))
	defer srv.Close()

	brand := testBrand()
	brand.LogoURL = srv.URL + "/logo.png"

	a := NewAssembler(QuotationFlavor, brand)
	data, err := a.RenderPDF(context.Background(), testhelpers.SampleModel())
	assertPDF(t, data, err)
}

func TestRenderPDFLogoUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	brand := testBrand()
	brand.LogoURL = srv.URL + "/logo.png"

	// Fetch failure degrades to the text fallback, never a render error.
	a := NewAssembler(QuotationFlavor, brand)
	data, err := a.RenderPDF(context.Background(), testhelpers.SampleModel())
	assertPDF(t, data, err)
}

func TestJoinNonEmpty(t *testing.T) {
	tests := []struct {
		parts  []string
		expect string
	}{
		{[]string{"a", "b", "c"}, "a | b | c"},
		{[]string{"a", "", "c"}, "a | c"},
		{[]string{"", "", ""}, ""},
		{nil, ""},
	}
	for _, tt := range tests {
		if got := joinNonEmpty(tt.parts, " | "); got != tt.expect {
			t.Errorf("joinNonEmpty(%v) = %q, want %q", tt.parts, got, tt.expect)
		}
	}
}

func TestOrPlaceholder(t *testing.T) {
	if got := orPlaceholder(""); got != "N/A" {
		t.Errorf("empty = %q", got)
	}
	if got := orPlaceholder("x"); got != "x" {
		t.Errorf("non-empty = %q", got)
	}
}

func TestBankingLines(t *testing.T) {
	lines := bankingLines(testBrand().Bank)
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want heading plus four rows", len(lines))
	}
	if lines[0].text != "BANK DETAILS" || !lines[0].bold {
		t.Errorf("heading = %+v", lines[0])
	}
	if !strings.HasPrefix(lines[3].text, "IBAN: ") {
		t.Errorf("line 3 = %q", lines[3].text)
	}

	if got := bankingLines(BankDetails{}); got != nil {
		t.Errorf("empty bank details should yield no lines, got %v", got)
	}
}
