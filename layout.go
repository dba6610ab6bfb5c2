package zplize

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/fogleman/gg"
)

// canvasMargin is the white border added beyond the furthest element.
const canvasMargin = 4

// drawLabel runs the full raster pipeline for one label: prepare every
// element, size the canvas, paint in emission order, encode to PNG.
func (r *renderer) drawLabel(label *Label) ([]byte, error) {
	r.prepareAll(label)

	w, h := canvasSize(label.Elements)
	dc := gg.NewContext(w, h)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	r.drawAll(dc, label)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dc.Image()); err != nil {
		return nil, fmt.Errorf("zplize: encoding label: %w", err)
	}
	return buf.Bytes(), nil
}

// canvasSize computes the canvas dimensions covering every element plus
// the margin. Rotated elements contribute swapped extents; a content
// extent below one dot is clamped to one before the margin applies.
func canvasSize(elements []*Element) (int, int) {
	var maxX, maxY int
	for _, e := range elements {
		w, h := elementSize(e)
		if e.Orientation.swaps() {
			w, h = h, w
		}
		if x := e.X + w; x > maxX {
			maxX = x
		}
		if y := e.Y + h; y > maxY {
			maxY = y
		}
	}
	if maxX < 1 {
		maxX = 1
	}
	if maxY < 1 {
		maxY = 1
	}
	return maxX + canvasMargin, maxY + canvasMargin
}

// elementSize returns an element's prepared render dimensions, falling
// back to its declared dimensions, then to zero.
func elementSize(e *Element) (int, int) {
	if e.RenderWidth > 0 || e.RenderHeight > 0 {
		return e.RenderWidth, e.RenderHeight
	}
	switch e.Kind {
	case KindBox:
		return e.Box.Width, e.Box.Height
	case KindCircle:
		return e.Circle.Diameter, e.Circle.Diameter
	case KindDiagonal:
		return e.Diagonal.Width, e.Diagonal.Height
	}
	return 0, 0
}
