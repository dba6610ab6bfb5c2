package zplize

import (
	"encoding/hex"
	"image"
	"image/color"
	"strings"
)

// inkThreshold is the channel value below which a pixel counts as ink.
const inkThreshold = 200

// ink reports whether a pixel is visibly dark: any alpha at all and at
// least one RGB channel below the threshold.
func ink(c color.Color) bool {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return false
	}
	return r>>8 < inkThreshold || g>>8 < inkThreshold || b>>8 < inkThreshold
}

// inkBounds scans an image vertically and returns the first and last row
// containing ink, relative to the image origin. ok is false for a blank
// image.
func inkBounds(img image.Image) (top, bottom int, ok bool) {
	bounds := img.Bounds()
	top, bottom = -1, -1
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if ink(img.At(x, y)) {
				if top < 0 {
					top = y
				}
				bottom = y
				break
			}
		}
	}
	if top < 0 {
		return 0, 0, false
	}
	return top - bounds.Min.Y, bottom - bounds.Min.Y, true
}

// grfImage unpacks the hexadecimal rows of a ~DG graphic into a
// black-and-white bitmap, one bit per pixel, most significant bit first.
func grfImage(g *Graphic) image.Image {
	if g.BytesPerRow <= 0 {
		return nil
	}

	data, err := hex.DecodeString(strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t':
			return -1
		}
		return r
	}, g.Raw))
	if err != nil || len(data) < g.BytesPerRow {
		return nil
	}

	w := g.BytesPerRow * 8
	h := len(data) / g.BytesPerRow

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		row := data[y*g.BytesPerRow : (y+1)*g.BytesPerRow]
		for x := 0; x < w; x++ {
			c := color.RGBA{R: 255, G: 255, B: 255, A: 255}
			if row[x/8]&(0x80>>uint(x%8)) != 0 {
				c = color.RGBA{A: 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
