package layout_test

import (
	"fmt"
	"testing"

	"github.com/shakeelmo/smartuniit-task-flow-sub001/document"
	"github.com/shakeelmo/smartuniit-task-flow-sub001/layout"
	"github.com/shakeelmo/smartuniit-task-flow-sub001/testhelpers"
)

func newTable(s *testhelpers.RecordingSurface, hasPart, hasUnit bool) *layout.Table {
	s.AddPage()
	cols := layout.ComputeColumns(hasPart, hasUnit, s.W, 10)
	return &layout.Table{
		Surface:  s,
		Measure:  testhelpers.Measure,
		Pager:    &layout.Pager{Surface: s, TopMargin: 10, BottomMargin: 20},
		Columns:  cols,
		Currency: document.SAR,
	}
}

func TestDrawHeader(t *testing.T) {
	s := testhelpers.NewRecordingSurface()
	tbl := newTable(s, true, true)

	y := tbl.DrawHeader(10)
	if y != 10+layout.HeaderRowHeight {
		t.Errorf("cursor after header = %v, want %v", y, 10+layout.HeaderRowHeight)
	}

	for _, label := range []string{"#", "Description", "Qty", "Unit"} {
		if !s.ContainsText(1, label) {
			t.Errorf("header label %q not drawn", label)
		}
	}

	if len(s.Rects) == 0 {
		t.Fatal("header band rectangle not drawn")
	}
	band := s.Rects[0]
	if band.H != layout.HeaderRowHeight || band.W != tbl.Columns.TableWidth {
		t.Errorf("header band = %+v", band)
	}
}

func TestDrawHeaderAbbreviates(t *testing.T) {
	// On a narrow page the scaled part number column cannot hold the full
	// title and the first fitting abbreviation is used instead.
	s := testhelpers.NewRecordingSurface()
	s.W = 65
	tbl := newTable(s, true, true)

	tbl.DrawHeader(10)
	if s.ContainsText(1, "Part Number") {
		t.Error("full title drawn where it cannot fit")
	}
	if !s.ContainsText(1, "Part No") {
		t.Error("abbreviated header label not drawn")
	}
}

func TestDrawRowSingleLine(t *testing.T) {
	s := testhelpers.NewRecordingSurface()
	tbl := newTable(s, false, false)

	item := document.LineItem{Description: "Switch", Quantity: 2, UnitPrice: 100}
	y, broke := tbl.DrawRow(item, 1, 0, 20)
	if broke {
		t.Error("unexpected page break")
	}
	if y != 20+layout.BaseRowHeight {
		t.Errorf("cursor after row = %v, want %v", y, 20+layout.BaseRowHeight)
	}

	if !s.ContainsText(1, "Switch") {
		t.Error("description not drawn")
	}
	if !s.ContainsText(1, "1") {
		t.Error("serial not drawn")
	}
	if !s.ContainsText(1, "2") {
		t.Error("quantity not drawn")
	}
	if !s.ContainsText(1, "200.00 SAR") {
		t.Error("line total not drawn")
	}
}

func TestDrawRowRecomputesLineTotal(t *testing.T) {
	s := testhelpers.NewRecordingSurface()
	tbl := newTable(s, false, false)

	item := document.LineItem{Description: "Router", Quantity: 3, UnitPrice: 150, Amount: 9999}
	tbl.DrawRow(item, 1, 0, 20)

	if !s.ContainsText(1, "450.00 SAR") {
		t.Error("recomputed line total missing")
	}
	if s.ContainsText(1, "9,999.00") {
		t.Error("stored Amount leaked into the rendered row")
	}
}

func TestDrawRowMultiLineHeight(t *testing.T) {
	s := testhelpers.NewRecordingSurface()
	tbl := newTable(s, false, false)

	item := document.LineItem{
		Description: "Core switch\n48-port PoE+\nRack mounting kit included",
		Quantity:    1,
		UnitPrice:   5000,
	}
	y, _ := tbl.DrawRow(item, 1, 0, 20)

	wantH := 3*layout.RowLineHeight + 3 // three wrapped lines plus padding
	if got := y - 20; got != wantH {
		t.Errorf("row height = %v, want %v", got, wantH)
	}
	if !s.ContainsText(1, "48-port PoE+") {
		t.Error("second description line not drawn")
	}
}

func TestDrawRowAlternatingShading(t *testing.T) {
	s := testhelpers.NewRecordingSurface()
	tbl := newTable(s, false, false)
	item := document.LineItem{Description: "Cable", Quantity: 1, UnitPrice: 5}

	y, _ := tbl.DrawRow(item, 1, 0, 20)
	evenRects := len(s.Rects)
	tbl.DrawRow(item, 2, 1, y)

	if len(s.Rects) != evenRects+1 {
		t.Errorf("odd row should add exactly one shading rectangle, rects %d -> %d", evenRects, len(s.Rects))
	}
	if evenRects != 0 {
		t.Errorf("even row drew %d rectangles, want 0", evenRects)
	}
}

func TestDrawSectionBand(t *testing.T) {
	s := testhelpers.NewRecordingSurface()
	tbl := newTable(s, false, false)

	y, broke := tbl.DrawSectionBand("Civil Works", 30)
	if broke {
		t.Error("unexpected page break")
	}
	if y != 30+layout.SectionBand {
		t.Errorf("cursor after section band = %v, want %v", y, 30+layout.SectionBand)
	}
	if !s.ContainsText(1, "Civil Works") {
		t.Error("section title not drawn")
	}
}

func TestTableReemitsHeaderAfterBreak(t *testing.T) {
	s := testhelpers.NewRecordingSurface()
	tbl := newTable(s, false, false)

	y := tbl.DrawHeader(10)
	for i := 0; i < 80; i++ {
		item := document.LineItem{Description: fmt.Sprintf("Item %d", i+1), Quantity: 1, UnitPrice: 10}
		y, _ = tbl.DrawRow(item, i+1, i, y)
	}

	if s.PageCount() < 2 {
		t.Fatalf("80 rows should span multiple pages, got %d", s.PageCount())
	}
	for page := 1; page <= s.PageCount(); page++ {
		if !s.ContainsText(page, "Description") {
			t.Errorf("page %d lacks a table header", page)
		}
	}
	// No text op may enter the footer band.
	for _, op := range s.Texts {
		if op.Y+op.H > s.H-20+0.001 {
			t.Errorf("text %q at y=%v h=%v enters the footer band", op.Text, op.Y, op.H)
		}
	}
}

func TestTableContinuationHeaderOnEveryFollowOnPage(t *testing.T) {
	s := testhelpers.NewRecordingSurface()
	tbl := newTable(s, false, false)
	tbl.Pager.Continuation = func(surf layout.Surface) float64 {
		surf.SetFont(layout.FontBold, 8)
		surf.CellText(10, tbl.Pager.TopMargin, 190, 8, "QUO-2026-0042 (continued)", layout.AlignLeft)
		return tbl.Pager.TopMargin + 12
	}

	y := tbl.DrawHeader(tbl.Pager.TopMargin)
	for i := 0; i < 80; i++ {
		item := document.LineItem{Description: "Fiber splice", Quantity: 1, UnitPrice: 12}
		y, _ = tbl.DrawRow(item, i+1, i, y)
	}

	if s.PageCount() < 2 {
		t.Fatalf("expected multiple pages, got %d", s.PageCount())
	}
	if s.ContainsText(1, "(continued)") {
		t.Error("first page must not carry a continuation header")
	}
	for page := 2; page <= s.PageCount(); page++ {
		if !s.ContainsText(page, "(continued)") {
			t.Errorf("page %d lacks a continuation header", page)
		}
	}
}

func TestTablePageCountMatchesContentHeight(t *testing.T) {
	s := testhelpers.NewRecordingSurface()
	tbl := newTable(s, false, false)

	const rows = 100
	y := tbl.DrawHeader(tbl.Pager.TopMargin)
	for i := 0; i < rows; i++ {
		item := document.LineItem{Description: "Patch cord", Quantity: 1, UnitPrice: 3}
		y, _ = tbl.DrawRow(item, i+1, i, y)
	}

	// Each page holds the header plus floor((usable-header)/rowH) rows.
	perPage := int((tbl.Pager.Usable() - layout.HeaderRowHeight) / layout.BaseRowHeight)
	wantPages := (rows + perPage - 1) / perPage
	if s.PageCount() != wantPages {
		t.Errorf("pages = %d, want %d (%d rows, %d per page)", s.PageCount(), wantPages, rows, perPage)
	}
}

func TestFormatQty(t *testing.T) {
	tests := []struct {
		qty    float64
		expect string
	}{
		{1, "1"},
		{40, "40"},
		{2.5, "2.50"},
		{0.25, "0.25"},
		{100, "100"},
	}
	for _, tt := range tests {
		if got := layout.FormatQty(tt.qty); got != tt.expect {
			t.Errorf("FormatQty(%v) = %q, want %q", tt.qty, got, tt.expect)
		}
	}
}
