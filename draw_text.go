package zplize

import (
	"math"

	"github.com/fogleman/gg"
)

type textDrawer struct{}

// prepare measures the text at its font size and attaches the compressed
// advance as the render width.
func (textDrawer) prepare(e *Element) {
	t := e.Text
	face := fonts.face(t.FontName, t.Height)
	t.measured = measure(face, t.Text)

	scaleX := textScaleX(t.FontName, t.Width, t.Height)
	e.RenderWidth = int(math.Round(t.measured * scaleX))
	e.RenderHeight = t.Height
}

// draw paints the text with its baseline at the resolved origin,
// rotating and compressing about that point. Font '0' is painted three
// times at one-dot offsets to thicken the strokes toward the bitmap
// fonts it stands in for.
func (textDrawer) draw(dc *gg.Context, e *Element) {
	t := e.Text

	baseX := float64(e.X)
	baseY := float64(e.Y)
	if t.OriginType == TopLeft {
		baseY += float64(t.Height)
	}

	scaleX := textScaleX(t.FontName, t.Width, t.Height)

	if t.BlockWidth > 0 && t.BlockAlign != 0 {
		actual := t.measured * scaleX
		switch t.BlockAlign {
		case 'C':
			baseX += (float64(t.BlockWidth) - actual) / 2
		case 'R':
			baseX += float64(t.BlockWidth) - actual
		}
	}

	dc.SetColor(paint(e))
	dc.SetFontFace(fonts.face(t.FontName, t.Height))

	dc.Translate(baseX, baseY)
	dc.Rotate(gg.Radians(e.Orientation.angle()))
	dc.Scale(scaleX, 1)

	dc.DrawString(t.Text, 0, 0)
	if t.FontName == '0' {
		dc.DrawString(t.Text, 1, 0)
		dc.DrawString(t.Text, 0, 1)
	}
}
