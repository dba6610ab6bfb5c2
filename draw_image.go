package zplize

import (
	"bytes"
	"image"
	"image/png"

	"github.com/fogleman/gg"
	"github.com/nfnt/resize"
)

type imageDrawer struct{}

// prepare decodes the recalled graphic. A ~DY payload is tried as PNG
// (also when the stored type is unspecified); a ~DG payload that is not
// a PNG is unpacked from its bit rows. A graphic that decodes to nothing
// leaves the element without dimensions and the draw pass paints
// nothing.
func (imageDrawer) prepare(e *Element) {
	im := e.Image
	g := im.Graphic
	if g == nil {
		return
	}

	data := g.Data
	if data == nil {
		data = []byte(g.Raw)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil && g.Type == "" {
		img = grfImage(g)
	}
	if img == nil {
		return
	}
	im.bitmap = img

	if im.ScaleX < 1 {
		im.ScaleX = 1
	}
	if im.ScaleY < 1 {
		im.ScaleY = 1
	}
	e.RenderWidth = img.Bounds().Dx() * im.ScaleX
	e.RenderHeight = img.Bounds().Dy() * im.ScaleY
}

func (imageDrawer) draw(dc *gg.Context, e *Element) {
	blit(dc, e, e.Image.bitmap)
}

// blit paints a prepared bitmap at the element anchor, rotated per the
// element orientation and scaled to the render dimensions.
func blit(dc *gg.Context, e *Element, img image.Image) {
	if img == nil || e.RenderWidth < 1 || e.RenderHeight < 1 {
		return
	}

	if img.Bounds().Dx() != e.RenderWidth || img.Bounds().Dy() != e.RenderHeight {
		img = resize.Resize(uint(e.RenderWidth), uint(e.RenderHeight), img, resize.NearestNeighbor)
	}

	dc.Translate(float64(e.X), float64(e.Y))
	dc.Rotate(gg.Radians(e.Orientation.angle()))
	dc.DrawImage(img, 0, 0)
}
