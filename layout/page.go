package layout

// Pager tracks the vertical cursor against the page height and owns page
// breaks. It is allocated fresh for every render call and never shared
// across concurrent renders.
type Pager struct {
	Surface Surface
	// TopMargin is where the cursor restarts on a fresh page.
	TopMargin float64
	// BottomMargin is the reserved footer band; content never enters it.
	BottomMargin float64
	// Continuation, when set, draws the abbreviated continuation header at
	// the top of every follow-on page and returns the cursor position just
	// below it.
	Continuation func(s Surface) float64
}

// EnsureSpace guarantees requiredHeight of vertical space starting at y.
// If the block fits above the footer margin the cursor is returned
// unchanged; otherwise a new page is started, the continuation header is
// drawn and the cursor below it is returned along with broke=true.
//
// Callers must invoke this per atomic unit (one table row, one paragraph
// line), never once for a whole block, so a single long block can span
// multiple pages without losing rows.
func (p *Pager) EnsureSpace(y, requiredHeight float64) (cursorY float64, broke bool) {
	_, pageH := p.Surface.PageSize()
	if y+requiredHeight <= pageH-p.BottomMargin {
		return y, false
	}

	p.Surface.AddPage()
	y = p.TopMargin
	if p.Continuation != nil {
		y = p.Continuation(p.Surface)
	}
	return y, true
}

// Usable returns the content height of one page between the top margin and
// the reserved footer band.
func (p *Pager) Usable() float64 {
	_, pageH := p.Surface.PageSize()
	return pageH - p.TopMargin - p.BottomMargin
}
