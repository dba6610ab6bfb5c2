// Package zplize renders Zebra Programming Language (ZPL II) label
// documents to PNG images.
//
// A document is analyzed by a virtual printer into one label per
// ^XA...^XZ section, each label an ordered list of drawable elements,
// and every label rasterizes to an image sized to the union of its
// element bounding boxes. Coordinates are printer dots, one dot per
// output pixel.
//
// Unsupported commands are ignored rather than failing the label, so
// documents written for real printers render their recognized subset.
package zplize

import "errors"

// ErrNoLabels is returned when a document contains no ^XA...^XZ section
// and no trailing elements.
var ErrNoLabels = errors.New("zplize: document yields no labels")

// Render analyzes a ZPL document and rasterizes its first label to PNG.
//
// Callers needing every label of a multi-label document use RenderAll,
// or Analyze and DrawElements separately.
func Render(zpl string, opts ...Options) ([]byte, error) {
	labels := Analyze(zpl)
	if len(labels) == 0 {
		return nil, ErrNoLabels
	}
	return DrawElements(labels[0], opts...)
}

// RenderAll rasterizes every label of a document, one PNG per label.
func RenderAll(zpl string, opts ...Options) ([][]byte, error) {
	labels := Analyze(zpl)
	if len(labels) == 0 {
		return nil, ErrNoLabels
	}
	r := newRenderer(opts...)
	out := make([][]byte, 0, len(labels))
	for _, label := range labels {
		png, err := r.drawLabel(label)
		if err != nil {
			return nil, err
		}
		out = append(out, png)
	}
	return out, nil
}

// DrawElements prepares, lays out, and paints one label, returning the
// encoded PNG.
func DrawElements(label *Label, opts ...Options) ([]byte, error) {
	return newRenderer(opts...).drawLabel(label)
}

// renderer binds the drawers to their configuration for one render.
type renderer struct {
	barcodeFunc BarcodeFunc
	drawers     map[ElementKind]drawer
}

func newRenderer(opts ...Options) *renderer {
	r := &renderer{barcodeFunc: EncodeBarcode}
	for _, opt := range opts {
		opt.apply(r)
	}
	r.drawers = map[ElementKind]drawer{
		KindText:     textDrawer{},
		KindBarcode:  &barcodeDrawer{renderer: r},
		KindBox:      boxDrawer{},
		KindCircle:   circleDrawer{},
		KindDiagonal: diagonalDrawer{},
		KindImage:    imageDrawer{},
	}
	return r
}
