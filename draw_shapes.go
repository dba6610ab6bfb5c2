package zplize

import "github.com/fogleman/gg"

type boxDrawer struct{}

func (boxDrawer) prepare(e *Element) {
	e.RenderWidth = e.Box.Width
	e.RenderHeight = e.Box.Height
}

// draw paints a ^GB rectangle. A box whose thickness covers both
// dimensions is solid, as is an explicit fill color; anything else is an
// outline stroked at the requested thickness.
func (boxDrawer) draw(dc *gg.Context, e *Element) {
	b := e.Box
	dc.SetColor(paint(e))

	x, y := float64(e.X), float64(e.Y)
	w, h := float64(b.Width), float64(b.Height)

	if b.Color == Fill || (b.Thickness >= b.Width && b.Thickness >= b.Height) {
		dc.DrawRectangle(x, y, w, h)
		dc.Fill()
		return
	}

	dc.SetLineWidth(lineWidth(b.Thickness))
	dc.DrawRectangle(x, y, w, h)
	dc.Stroke()
}

type circleDrawer struct{}

func (circleDrawer) prepare(e *Element) {
	e.RenderWidth = e.Circle.Diameter
	e.RenderHeight = e.Circle.Diameter
}

func (circleDrawer) draw(dc *gg.Context, e *Element) {
	c := e.Circle
	dc.SetColor(paint(e))

	r := float64(c.Diameter) / 2
	cx := float64(e.X) + r
	cy := float64(e.Y) + r

	dc.DrawCircle(cx, cy, r)
	if c.Thickness == 0 || c.Color == Fill {
		dc.Fill()
		return
	}
	dc.SetLineWidth(float64(c.Thickness))
	dc.Stroke()
}

type diagonalDrawer struct{}

func (diagonalDrawer) prepare(e *Element) {
	e.RenderWidth = e.Diagonal.Width
	e.RenderHeight = e.Diagonal.Height
}

func (diagonalDrawer) draw(dc *gg.Context, e *Element) {
	d := e.Diagonal
	dc.SetColor(paint(e))
	dc.SetLineWidth(lineWidth(d.Thickness))
	dc.DrawLine(float64(e.X), float64(e.Y), float64(e.X+d.Width), float64(e.Y+d.Height))
	dc.Stroke()
}

func lineWidth(thickness int) float64 {
	if thickness < 1 {
		return 1
	}
	return float64(thickness)
}
