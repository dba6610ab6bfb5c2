package zplize

import (
	"image/color"

	"github.com/fogleman/gg"
)

// drawer lays out and paints one kind of element.
//
// prepare may perform slow work (font loads, barcode rasters, bitmap
// decodes) and annotates the element with its render dimensions and any
// cached bitmap; a failure there degrades the element to placeholder
// dimensions instead of surfacing. draw paints onto a context whose
// y axis points down; the dispatcher brackets it with a transform
// save/restore.
type drawer interface {
	prepare(e *Element)
	draw(dc *gg.Context, e *Element)
}

func (r *renderer) drawerFor(kind ElementKind) drawer {
	return r.drawers[kind]
}

// prepareAll runs the prepare pass over a label in emission order.
// Elements of an unknown kind are skipped here and in the draw pass.
func (r *renderer) prepareAll(label *Label) {
	for _, e := range label.Elements {
		if d := r.drawerFor(e.Kind); d != nil {
			d.prepare(e)
		}
	}
}

// drawAll paints a label in emission order; later elements overlay
// earlier ones.
func (r *renderer) drawAll(dc *gg.Context, label *Label) {
	for _, e := range label.Elements {
		if d := r.drawerFor(e.Kind); d != nil {
			dc.Push()
			d.draw(dc, e)
			dc.Pop()
		}
	}
}

// paint returns the element's foreground color: black by default, white
// for reversed elements.
func paint(e *Element) color.Color {
	if e.Reverse {
		return color.White
	}
	return color.Black
}
