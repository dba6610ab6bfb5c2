package zplize

import "image"

// Orientation is a ZPL field rotation letter.
type Orientation byte

const (
	Normal   Orientation = 'N' // no rotation
	Rotated  Orientation = 'R' // drawn at -90 degrees: a quarter turn counterclockwise on the y-down canvas
	Inverted Orientation = 'I' // 180 degrees
	BottomUp Orientation = 'B' // drawn at +90 degrees: a quarter turn clockwise on the y-down canvas
)

// angle returns the canvas rotation in degrees for the orientation.
func (o Orientation) angle() float64 {
	switch o {
	case Rotated:
		return -90
	case Inverted:
		return 180
	case BottomUp:
		return 90
	default:
		return 0
	}
}

// swaps reports whether the orientation swaps an element's width and height.
func (o Orientation) swaps() bool {
	return o == Rotated || o == BottomUp
}

func orientationOf(b byte) (Orientation, bool) {
	switch Orientation(b) {
	case Normal, Rotated, Inverted, BottomUp:
		return Orientation(b), true
	}
	return Normal, false
}

// OriginType tells the text drawer how to interpret an element's y coordinate.
type OriginType byte

const (
	TopLeft  OriginType = iota // ^FO: y is the top of the glyph box
	Baseline                   // ^FT: y is the baseline
)

// Color is a ZPL line color or fill letter.
type Color byte

const (
	Black Color = 'B'
	White Color = 'W'
	Fill  Color = 'F'
)

// CodeType identifies a barcode symbology.
type CodeType string

const (
	Code39          CodeType = "code39"
	Code93          CodeType = "code93"
	Code128         CodeType = "code128"
	EAN13           CodeType = "ean13"
	Interleaved2of5 CodeType = "interleaved2of5"
	QRCode          CodeType = "qrcode"
	DataMatrix      CodeType = "datamatrix"
	PDF417          CodeType = "pdf417"
)

// matrix reports whether the symbology is a 2D code driven by a scale
// factor rather than module width and height.
func (t CodeType) matrix() bool {
	return t == QRCode || t == DataMatrix
}

// ElementKind discriminates the Element union.
type ElementKind string

const (
	KindText     ElementKind = "text"
	KindBarcode  ElementKind = "barcode"
	KindBox      ElementKind = "box"
	KindCircle   ElementKind = "circle"
	KindDiagonal ElementKind = "diagonal"
	KindImage    ElementKind = "image"
)

// Element is a positioned drawable primitive. Kind selects which payload
// pointer is populated. Coordinates are dots from the canvas origin with
// the label home offset already applied.
type Element struct {
	Kind        ElementKind
	X, Y        int
	Orientation Orientation
	Reverse     bool

	// RenderWidth and RenderHeight are attached by the prepare pass.
	RenderWidth  int
	RenderHeight int

	Text     *TextElement
	Barcode  *BarcodeElement
	Box      *BoxElement
	Circle   *CircleElement
	Diagonal *DiagonalElement
	Image    *ImageElement
}

// TextElement carries one line of field data.
type TextElement struct {
	Text       string
	FontName   byte
	Height     int
	Width      int
	OriginType OriginType

	// Block formatting survives field-block wrapping so the drawer can
	// align each line inside the block width.
	BlockWidth int
	BlockAlign byte

	measured float64
}

// BarcodeElement carries an armed barcode spec combined with its data.
type BarcodeElement struct {
	CodeType            CodeType
	Text                string
	Height              int
	ModuleWidth         int
	Ratio               float64
	Options             BarcodeOptions
	PrintInterpretation bool
	PrintAbove          bool

	bitmap image.Image
}

// BarcodeOptions are the code-specific parameters of a ^Bx command.
type BarcodeOptions struct {
	Scale         int    // qrcode, datamatrix
	ECCLevel      byte   // qrcode: L, M, Q, H
	Mode          string // code128
	ModuleWidth   int    // pdf417
	SecurityLevel int    // pdf417
	Columns       int    // pdf417
	Rows          int    // pdf417
	RowHeight     int    // pdf417
	Truncated     bool   // pdf417
}

// BoxElement is a ^GB rectangle.
type BoxElement struct {
	Width     int
	Height    int
	Thickness int
	Color     Color
}

// CircleElement is a ^GC circle.
type CircleElement struct {
	Diameter  int
	Thickness int
	Color     Color
}

// DiagonalElement is a ^GD diagonal line.
type DiagonalElement struct {
	Width     int
	Height    int
	Thickness int
	Color     Color
}

// ImageElement recalls a stored graphic.
type ImageElement struct {
	ScaleX  int
	ScaleY  int
	Graphic *Graphic

	bitmap image.Image
}

// Graphic is an entry of the virtual printer's graphic store, keyed by
// its device-qualified name (for example "R:LOGO.PNG").
type Graphic struct {
	Data []byte // decoded payload (~DY)
	Raw  string // raw payload when decoding failed or for ~DG rows
	Type string // "png" when the payload is a decoded ~DY image

	TotalBytes  int // ~DG
	BytesPerRow int // ~DG
}

// Label is one ^XA...^XZ section: the ordered elements of a single
// rendered page.
type Label struct {
	Elements []*Element
}
