package zplize

import (
	"fmt"
	"image"
	"math"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/boombuler/barcode/code93"
	"github.com/boombuler/barcode/datamatrix"
	"github.com/boombuler/barcode/ean"
	"github.com/boombuler/barcode/pdf417"
	"github.com/boombuler/barcode/qr"
	"github.com/boombuler/barcode/twooffive"
	"github.com/fogleman/gg"
)

// BarcodeRequest carries everything a symbology engine needs to raster
// one delegated barcode. Linear codes are driven by the per-axis scales
// and the millimeter height; matrix codes by the single scale factor.
type BarcodeRequest struct {
	CodeType    CodeType
	Text        string
	ScaleX      int
	ScaleY      int
	Scale       int
	HeightMM    float64
	BarRatio    float64
	SpaceRatio  float64
	Rotate      byte // N, R, L, I
	IncludeText bool
	TextXAlign  string
	Options     BarcodeOptions
}

// BarcodeFunc generates a bitmap for a delegated symbology. Rotation is
// applied by the drawer as a canvas transform, never by the engine.
type BarcodeFunc func(req BarcodeRequest) (image.Image, error)

// buildRequest maps an armed barcode element onto engine parameters.
func buildRequest(b *BarcodeElement, o Orientation) BarcodeRequest {
	req := BarcodeRequest{
		CodeType:    b.CodeType,
		Text:        b.Text,
		Rotate:      'N',
		IncludeText: b.PrintInterpretation,
		Options:     b.Options,
	}
	if b.PrintInterpretation {
		req.TextXAlign = "center"
	}
	switch o {
	case Rotated:
		req.Rotate = 'R'
	case BottomUp:
		req.Rotate = 'L'
	case Inverted:
		req.Rotate = 'I'
	}

	if b.CodeType.matrix() {
		req.Scale = b.Options.Scale
		if req.Scale < 1 {
			req.Scale = b.ModuleWidth
		}
		return req
	}

	req.ScaleX = b.ModuleWidth
	req.ScaleY = b.ModuleWidth
	if b.ModuleWidth > 0 {
		req.HeightMM = float64(b.Height) * 25.4 / (72 * float64(b.ModuleWidth))
	}
	if b.CodeType == Interleaved2of5 {
		req.BarRatio = b.Ratio - 1
		req.SpaceRatio = b.Ratio - 1
	}
	return req
}

// EncodeBarcode is the default BarcodeFunc. It drives the boombuler
// encoders, scales linear codes to their module width and dot height,
// scales matrix codes by their scale factor, and composes the
// interpretation line when requested.
func EncodeBarcode(req BarcodeRequest) (image.Image, error) {
	bc, err := encode(req)
	if err != nil {
		return nil, fmt.Errorf("zplize: %s: %w", req.CodeType, err)
	}

	bounds := bc.Bounds()
	if req.CodeType.matrix() {
		s := req.Scale
		if s < 1 {
			s = 1
		}
		scaled, err := barcode.Scale(bc, bounds.Dx()*s, bounds.Dy()*s)
		if err != nil {
			return nil, fmt.Errorf("zplize: scaling %s: %w", req.CodeType, err)
		}
		return scaled, nil
	}

	w := bounds.Dx() * max(req.ScaleX, 1)
	h := int(math.Round(req.HeightMM / 25.4 * 72 * float64(max(req.ScaleY, 1))))
	if h < bounds.Dy() {
		h = bounds.Dy()
	}
	scaled, err := barcode.Scale(bc, w, h)
	if err != nil {
		return nil, fmt.Errorf("zplize: scaling %s: %w", req.CodeType, err)
	}
	if !req.IncludeText {
		return scaled, nil
	}
	return composeInterpretation(scaled, req.Text), nil
}

func encode(req BarcodeRequest) (barcode.Barcode, error) {
	switch req.CodeType {
	case Code128:
		return code128.Encode(req.Text)
	case Code93:
		// No checksum character and no full ASCII mode. The encoder
		// always draws the start/stop characters.
		return code93.Encode(req.Text, false, false)
	case EAN13:
		return ean.Encode(req.Text)
	case Interleaved2of5:
		return twooffive.Encode(req.Text, true)
	case QRCode:
		return qr.Encode(req.Text, qrLevel(req.Options.ECCLevel), qr.Auto)
	case DataMatrix:
		return datamatrix.Encode(req.Text)
	case PDF417:
		level := req.Options.SecurityLevel
		if level < 0 || level > 8 {
			level = 2
		}
		return pdf417.Encode(req.Text, byte(level))
	}
	return nil, fmt.Errorf("unsupported symbology %q", req.CodeType)
}

func qrLevel(ecc byte) qr.ErrorCorrectionLevel {
	switch ecc {
	case 'L':
		return qr.L
	case 'Q':
		return qr.Q
	case 'H':
		return qr.H
	default:
		return qr.M
	}
}

// composeInterpretation re-plots the barcode with the human readable
// line centered beneath the bars.
func composeInterpretation(img image.Image, text string) image.Image {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	area := h/5 + 4

	dc := gg.NewContext(w, h+area)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.DrawImage(img, 0, 0)

	size := h / 5
	if size < 1 {
		size = 1
	}
	dc.SetRGB(0, 0, 0)
	dc.SetFontFace(fonts.face('A', size))
	dc.DrawStringAnchored(text, float64(w)/2, float64(h)+float64(area)/2, 0.5, 0.5)
	return dc.Image()
}

type barcodeDrawer struct {
	renderer *renderer
}

// prepare rasterizes the symbol. Code 39 is generated natively; every
// other symbology goes through the engine. Engine failures leave the
// element with placeholder dimensions and nothing to draw.
func (d *barcodeDrawer) prepare(e *Element) {
	b := e.Barcode

	if b.CodeType == Code39 {
		b.bitmap = drawCode39(b)
		e.RenderWidth = b.bitmap.Bounds().Dx()
		e.RenderHeight = b.bitmap.Bounds().Dy()
		return
	}

	img, err := d.renderer.barcodeFunc(buildRequest(b, e.Orientation))
	if err != nil || img == nil {
		e.RenderWidth = len(b.Text) * b.ModuleWidth * 10
		e.RenderHeight = b.Height
		if e.RenderHeight == 0 {
			e.RenderHeight = 50
		}
		return
	}
	b.bitmap = img

	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	if b.Height > 0 && !b.CodeType.matrix() {
		if top, bottom, ok := inkBounds(img); ok {
			scale := float64(b.Height) / float64(bottom-top+1)
			e.RenderWidth = int(math.Round(float64(w) * scale))
			e.RenderHeight = int(math.Round(float64(h) * scale))
			return
		}
	}
	e.RenderWidth = w
	e.RenderHeight = h
}

func (d *barcodeDrawer) draw(dc *gg.Context, e *Element) {
	blit(dc, e, e.Barcode.bitmap)
}
