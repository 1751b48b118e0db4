// Package layout implements the page layout engine: text wrapping, column
// templates, the pagination controller and the line-item table renderer.
// All drawing goes through the Surface interface so the engine stays
// independent of the PDF backend and testable without producing output
// artifacts.
package layout

// Align is a horizontal text alignment within a cell.
type Align string

const (
	AlignLeft   Align = "L"
	AlignCenter Align = "C"
	AlignRight  Align = "R"
)

// FontStyle selects the face variant used for text drawing.
type FontStyle string

const (
	FontRegular    FontStyle = ""
	FontBold       FontStyle = "B"
	FontItalic     FontStyle = "I"
	FontBoldItalic FontStyle = "BI"
)

// Color is an RGB color with 0-255 channels.
type Color struct {
	R, G, B int
}

// Surface is the narrow page-coordinate drawing backend the engine renders
// against. Coordinates are in millimeters with the origin at the top-left
// corner of the current page. Implementations are not safe for concurrent
// use; each render call owns its surface.
type Surface interface {
	// PageSize returns the page width and height.
	PageSize() (w, h float64)
	// AddPage starts a new blank page and makes it current.
	AddPage()
	// PageNumber returns the 1-based index of the current page.
	PageNumber() int

	// SetFont selects the face variant and size for subsequent text calls.
	SetFont(style FontStyle, size float64)
	// SetTextColor selects the fill color for subsequent text calls.
	SetTextColor(c Color)
	// TextWidth measures the rendered width of text in the current font.
	TextWidth(text string) float64
	// CellText draws text inside the box at (x, y) with the given
	// horizontal alignment, vertically centered.
	CellText(x, y, w, h float64, text string, align Align)

	FillRect(x, y, w, h float64, c Color)
	StrokeRect(x, y, w, h float64, c Color)
	Line(x1, y1, x2, y2 float64, c Color)
	FillTriangle(x1, y1, x2, y2, x3, y3 float64, c Color)

	// Image places raster image data on the page. format is "PNG" or "JPG".
	Image(data []byte, format string, x, y, w, h float64) error

	// SetPageFooter registers a hook invoked once per page after content is
	// final, so footers can include the total page count via
	// TotalPagesLabel.
	SetPageFooter(draw func(pageNo int))
	// TotalPagesLabel returns the placeholder substituted with the final
	// page count when the artifact is produced.
	TotalPagesLabel() string
}

// Measurer measures the width of text at a font size. The table renderer
// and wrap engine take it as an injected dependency so layout math can run
// against fake metrics in tests.
type Measurer func(text string, fontSize float64) float64
