package render

import (
	"context"
	"fmt"
	"log"

	"github.com/shakeelmo/smartuniit-task-flow-sub001/document"
	"github.com/shakeelmo/smartuniit-task-flow-sub001/layout"
)

// Page geometry, in mm.
const (
	pageMargin   = 10.0
	topMargin    = 10.0
	bottomMargin = 20.0

	partyLineHeight = 5.0
	paraLineHeight  = 4.5
	totalsRowHeight = 7.0
)

var (
	accent    = layout.Color{R: 31, G: 58, B: 95}
	accentHot = layout.Color{R: 230, G: 126, B: 34}
	inkColor  = layout.Color{R: 33, G: 37, B: 41}
	mutedText = layout.Color{R: 100, G: 100, B: 100}
	white     = layout.Color{R: 255, G: 255, B: 255}
	panelBg   = layout.Color{R: 245, G: 245, B: 245}
)

// BankDetails feed the banking panel on invoice documents.
type BankDetails struct {
	BankName      string `yaml:"bankName"`
	Beneficiary   string `yaml:"beneficiary"`
	IBAN          string `yaml:"iban"`
	AccountNumber string `yaml:"accountNumber"`
}

// Branding carries the issuing company's identity used across all
// documents.
type Branding struct {
	CompanyName string      `yaml:"companyName"`
	Address     string      `yaml:"address"`
	Email       string      `yaml:"email"`
	Phone       string      `yaml:"phone"`
	VATNumber   string      `yaml:"vatNumber"`
	CRNumber    string      `yaml:"crNumber"`
	LogoURL     string      `yaml:"logoURL"`
	Bank        BankDetails `yaml:"bank"`
}

// Assembler orchestrates one document render: header, title bar, party
// details, line-item table(s), totals, terms and banking, footer. All
// layout math is delegated to the layout package; the assembler owns only
// section ordering and captions.
type Assembler struct {
	Flavor Flavor
	Brand  Branding
}

// NewAssembler returns an assembler for the given document flavor.
func NewAssembler(flavor Flavor, brand Branding) *Assembler {
	return &Assembler{Flavor: flavor, Brand: brand}
}

// RenderPDF produces the paginated PDF artifact for the model. All layout
// state lives within this call, so one assembler may serve concurrent
// renders; it is read-only while rendering.
func (a *Assembler) RenderPDF(ctx context.Context, m *document.DocumentModel) ([]byte, error) {
	// The one asynchronous asset fetch of the pipeline, awaited before the
	// header is drawn.
	logoCh := fetchLogoAsync(ctx, a.Brand.LogoURL)

	s := NewPDFSurface()
	measure := s.Measurer()
	pageW, pageH := s.PageSize()
	contentW := pageW - 2*pageMargin

	pager := &layout.Pager{
		Surface:      s,
		TopMargin:    topMargin,
		BottomMargin: bottomMargin,
	}

	s.SetPageFooter(func(pageNo int) {
		s.SetFont(layout.FontRegular, 7)
		s.SetTextColor(mutedText)
		s.CellText(pageMargin, pageH-12, contentW/2, 4, a.Brand.CompanyName, layout.AlignLeft)
		label := fmt.Sprintf("Page %d of %s", pageNo, s.TotalPagesLabel())
		s.CellText(pageMargin+contentW/2, pageH-12, contentW/2, 4, label, layout.AlignRight)
	})

	s.AddPage()

	logo := <-logoCh
	if logo.err != nil && a.Brand.LogoURL != "" {
		log.Printf("render: logo unavailable, using text fallback: %v", logo.err)
	}

	y := a.drawHeader(s, m, logo)
	y = a.drawTitleBar(s, contentW, y)

	// Every page after this one is self-describing.
	pager.Continuation = func(cs layout.Surface) float64 {
		return a.drawContinuationHeader(cs, m, contentW)
	}

	y = a.drawPartyDetails(s, pager, m, y)

	if a.Flavor.Preamble && m.Notes != "" {
		y = a.drawParagraphs(s, measure, pager, "INTRODUCTION", m.Notes, pageMargin, contentW, y)
	}

	cols := layout.ComputeColumns(m.HasPartNumbers(), m.HasUnits(), pageW, pageMargin)
	table := &layout.Table{
		Surface:  s,
		Measure:  measure,
		Pager:    pager,
		Columns:  cols,
		Currency: m.Currency,
	}

	y, _ = pager.EnsureSpace(y, layout.HeaderRowHeight+layout.BaseRowHeight)
	y = table.DrawHeader(y)
	rowIndex := 0
	for _, section := range m.NumberedSections() {
		if section.Title != "" {
			y, _ = table.DrawSectionBand(section.Title, y)
		}
		for _, ni := range section.Items {
			y, _ = table.DrawRow(ni.Item, ni.Serial, rowIndex, y)
			rowIndex++
		}
	}

	y = a.drawTotals(s, pager, m, contentW, y+3)
	y = a.drawTermsAndBanking(s, measure, pager, m, contentW, y+5)

	if !a.Flavor.Preamble && m.Notes != "" {
		_ = a.drawParagraphs(s, measure, pager, "NOTES", m.Notes, pageMargin, contentW, y+3)
	}

	return s.Bytes()
}

// drawHeader places the logo (or its deterministic text fallback) on the
// left and the document identity block on the right.
func (a *Assembler) drawHeader(s layout.Surface, m *document.DocumentModel, logo logoResult) float64 {
	y := topMargin

	drawn := false
	if logo.err == nil && len(logo.data) > 0 {
		if err := s.Image(logo.data, logo.format, pageMargin, y, 42, 0); err != nil {
			log.Printf("render: logo placement failed, using text fallback: %v", err)
		} else {
			drawn = true
		}
	}
	if !drawn {
		// Stylized company name stands in for the logo. Never abort a
		// render for a missing decorative asset.
		s.SetFont(layout.FontBold, 15)
		s.SetTextColor(accent)
		s.CellText(pageMargin, y, 100, 8, a.Brand.CompanyName, layout.AlignLeft)
	}

	s.SetFont(layout.FontRegular, 7)
	s.SetTextColor(mutedText)
	contact := joinNonEmpty([]string{a.Brand.Address, a.Brand.Email, a.Brand.Phone}, " | ")
	s.CellText(pageMargin, y+15, 110, 4, contact, layout.AlignLeft)
	if a.Brand.VATNumber != "" {
		s.CellText(pageMargin, y+19, 110, 4, "VAT: "+a.Brand.VATNumber, layout.AlignLeft)
	}

	pageW, _ := s.PageSize()
	right := pageW - pageMargin - 70

	s.SetFont(layout.FontBold, 10)
	s.SetTextColor(inkColor)
	s.CellText(right, y, 70, 5, a.Flavor.NumberLabel+" "+m.Number, layout.AlignRight)

	s.SetFont(layout.FontRegular, 8)
	s.SetTextColor(mutedText)
	s.CellText(right, y+6, 70, 4, a.Flavor.DateLabel+": "+m.Date, layout.AlignRight)
	if a.Flavor.ExpiryLabel != "" && a.Flavor.ExpiryValue(m) != "" {
		s.CellText(right, y+11, 70, 4, a.Flavor.ExpiryLabel+": "+a.Flavor.ExpiryValue(m), layout.AlignRight)
	}

	return y + 26
}

// drawTitleBar draws the accent band with the document title and its
// secondary caption.
func (a *Assembler) drawTitleBar(s layout.Surface, contentW, y float64) float64 {
	const bandH = 10.0

	s.FillRect(pageMargin, y, contentW, bandH, accent)
	s.FillTriangle(
		pageMargin+contentW, y,
		pageMargin+contentW, y+bandH,
		pageMargin+contentW-8, y+bandH,
		accentHot,
	)

	s.SetFont(layout.FontBold, 13)
	s.SetTextColor(white)
	s.CellText(pageMargin+3, y, contentW/2, bandH, a.Flavor.Title, layout.AlignLeft)

	s.SetFont(layout.FontItalic, 9)
	s.CellText(pageMargin+contentW/2-12, y, contentW/2, bandH, a.Flavor.Subtitle, layout.AlignRight)

	return y + bandH + 4
}

// drawContinuationHeader draws the abbreviated header that opens every page
// after the first, identifying the document and party out of sequence.
func (a *Assembler) drawContinuationHeader(s layout.Surface, m *document.DocumentModel, contentW float64) float64 {
	const bandH = 8.0
	y := topMargin

	s.FillRect(pageMargin, y, contentW, bandH, accent)
	s.SetFont(layout.FontBold, 8)
	s.SetTextColor(white)
	label := fmt.Sprintf("%s %s — %s (continued)", a.Flavor.Title, m.Number, m.Customer.DisplayName())
	s.CellText(pageMargin+3, y, contentW-6, bandH, label, layout.AlignLeft)

	return y + bandH + 4
}

// drawPartyDetails renders the customer block. Missing optional fields get
// a literal placeholder so the block shape is stable.
func (a *Assembler) drawPartyDetails(s layout.Surface, pager *layout.Pager, m *document.DocumentModel, y float64) float64 {
	y, _ = pager.EnsureSpace(y, partyLineHeight)
	s.SetFont(layout.FontBold, 7)
	s.SetTextColor(mutedText)
	s.CellText(pageMargin, y, 80, partyLineHeight, "CUSTOMER", layout.AlignLeft)
	y += partyLineHeight

	y, _ = pager.EnsureSpace(y, partyLineHeight)
	s.SetFont(layout.FontBold, 9)
	s.SetTextColor(inkColor)
	s.CellText(pageMargin, y, 120, partyLineHeight, m.Customer.DisplayName(), layout.AlignLeft)
	y += partyLineHeight

	rows := []struct{ label, value string }{
		{"Contact", orPlaceholder(m.Customer.ContactName)},
		{"Phone", orPlaceholder(m.Customer.Phone)},
		{"Email", orPlaceholder(m.Customer.Email)},
	}
	if m.Customer.VATNumber != "" {
		rows = append(rows, struct{ label, value string }{"VAT No", m.Customer.VATNumber})
	}
	if m.Customer.CRNumber != "" {
		rows = append(rows, struct{ label, value string }{"CR No", m.Customer.CRNumber})
	}

	s.SetFont(layout.FontRegular, 8)
	for _, r := range rows {
		y, _ = pager.EnsureSpace(y, partyLineHeight)
		s.SetTextColor(mutedText)
		s.CellText(pageMargin, y, 24, partyLineHeight, r.label+":", layout.AlignLeft)
		s.SetTextColor(inkColor)
		s.CellText(pageMargin+24, y, 110, partyLineHeight, r.value, layout.AlignLeft)
		y += partyLineHeight
	}

	return y + 3
}

// drawTotals renders the right-aligned totals block. The breakdown comes
// from the shared calculator; the assembler never does its own arithmetic.
func (a *Assembler) drawTotals(s layout.Surface, pager *layout.Pager, m *document.DocumentModel, contentW, y float64) float64 {
	totals := m.Totals()
	display := totals.Display(m.Currency)

	labelW := 50.0
	valueW := 45.0
	x := pageMargin + contentW - labelW - valueW

	type totalsRow struct {
		label, value string
		grand        bool
	}
	rows := []totalsRow{{label: "Subtotal", value: display.Subtotal}}
	if totals.HasDiscount() {
		label := "Discount"
		if totals.DiscountType == document.DiscountPercentage {
			label = fmt.Sprintf("Discount (%s%%)", layout.FormatQty(totals.DiscountValue))
		}
		rows = append(rows, totalsRow{label: label, value: display.DiscountAmount})
		rows = append(rows, totalsRow{label: "Taxable Amount", value: display.TaxableBase})
	}
	rows = append(rows,
		totalsRow{label: fmt.Sprintf("VAT (%.0f%%)", totals.TaxRate*100), value: display.Tax},
		totalsRow{label: "Grand Total", value: display.GrandTotal, grand: true},
	)

	for _, r := range rows {
		y, _ = pager.EnsureSpace(y, totalsRowHeight)

		bg, fg := panelBg, inkColor
		style := layout.FontRegular
		if r.grand {
			bg, fg = accent, white
			style = layout.FontBold
		}
		s.FillRect(x, y, labelW+valueW, totalsRowHeight, bg)
		s.SetFont(layout.FontBold, 8)
		s.SetTextColor(fg)
		s.CellText(x+2, y, labelW-2, totalsRowHeight, r.label, layout.AlignLeft)
		s.SetFont(style, 8)
		s.CellText(x+labelW, y, valueW-2, totalsRowHeight, r.value, layout.AlignRight)
		y += totalsRowHeight
	}

	return y
}

type panelLine struct {
	text string
	bold bool
}

// drawTermsAndBanking lays the terms column and the banking column side by
// side. The two columns paginate independently, one line at a time, and the
// cursor advances to the max of both final positions.
func (a *Assembler) drawTermsAndBanking(s layout.Surface, measure layout.Measurer, pager *layout.Pager, m *document.DocumentModel, contentW, y float64) float64 {
	const gap = 8.0
	colW := (contentW - gap) / 2

	var left, right []panelLine
	if m.Terms != "" {
		left = append(left, panelLine{text: "TERMS & CONDITIONS", bold: true})
		for _, line := range layout.Wrap(measure, m.Terms, colW, 8) {
			left = append(left, panelLine{text: line})
		}
	}
	if a.Flavor.ShowBanking {
		right = bankingLines(a.Brand.Bank)
	}
	if len(left) == 0 && len(right) == 0 {
		return y
	}

	leftX := pageMargin
	rightX := pageMargin + colW + gap

	count := len(left)
	if len(right) > count {
		count = len(right)
	}
	for i := 0; i < count; i++ {
		y, _ = pager.EnsureSpace(y, paraLineHeight)
		if i < len(left) {
			drawPanelLine(s, left[i], leftX, y, colW)
		}
		if i < len(right) {
			drawPanelLine(s, right[i], rightX, y, colW)
		}
		y += paraLineHeight
	}
	return y
}

func drawPanelLine(s layout.Surface, line panelLine, x, y, w float64) {
	if line.bold {
		s.SetFont(layout.FontBold, 8)
		s.SetTextColor(accent)
	} else {
		s.SetFont(layout.FontRegular, 8)
		s.SetTextColor(inkColor)
	}
	s.CellText(x, y, w, paraLineHeight, line.text, layout.AlignLeft)
}

func bankingLines(b BankDetails) []panelLine {
	rows := []struct{ label, value string }{
		{"Bank", b.BankName},
		{"Beneficiary", b.Beneficiary},
		{"IBAN", b.IBAN},
		{"Account #", b.AccountNumber},
	}
	var lines []panelLine
	for _, r := range rows {
		if r.value == "" {
			continue
		}
		lines = append(lines, panelLine{text: r.label + ": " + r.value})
	}
	if len(lines) == 0 {
		return nil
	}
	return append([]panelLine{{text: "BANK DETAILS", bold: true}}, lines...)
}

// drawParagraphs renders a captioned free-text block wrapped to the given
// width, paginating per line.
func (a *Assembler) drawParagraphs(s layout.Surface, measure layout.Measurer, pager *layout.Pager, caption, text string, x, w, y float64) float64 {
	y, _ = pager.EnsureSpace(y, paraLineHeight)
	s.SetFont(layout.FontBold, 8)
	s.SetTextColor(accent)
	s.CellText(x, y, w, paraLineHeight, caption, layout.AlignLeft)
	y += paraLineHeight

	s.SetFont(layout.FontRegular, 8)
	s.SetTextColor(inkColor)
	for _, line := range layout.Wrap(measure, text, w, 8) {
		y, _ = pager.EnsureSpace(y, paraLineHeight)
		s.CellText(x, y, w, paraLineHeight, line, layout.AlignLeft)
		y += paraLineHeight
	}
	return y + 2
}

func orPlaceholder(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}

// joinNonEmpty joins non-empty strings with the given separator.
func joinNonEmpty(parts []string, sep string) string {
	out := ""
	for _, p := range parts {
		if p == "" {
			continue
		}
		if out != "" {
			out += sep
		}
		out += p
	}
	return out
}
