package zplize

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInk(t *testing.T) {
	assert.True(t, ink(color.Black))
	assert.False(t, ink(color.White))
	assert.False(t, ink(color.RGBA{}), "fully transparent")
	assert.True(t, ink(color.RGBA{R: 255, G: 100, B: 255, A: 255}), "one dark channel")
	assert.False(t, ink(color.RGBA{R: 240, G: 240, B: 240, A: 255}), "light gray")
}

func TestInkBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 10; x++ {
			img.Set(x, y, color.White)
		}
	}
	img.Set(4, 3, color.Black)
	img.Set(7, 15, color.Black)

	top, bottom, ok := inkBounds(img)
	require.True(t, ok)
	assert.Equal(t, 3, top)
	assert.Equal(t, 15, bottom)
}

func TestInkBoundsBlank(t *testing.T) {
	_, _, ok := inkBounds(image.NewRGBA(image.Rect(0, 0, 5, 5)))
	assert.False(t, ok)
}

func TestGrfImage(t *testing.T) {
	img := grfImage(&Graphic{Raw: "F0 0F", BytesPerRow: 1})
	require.NotNil(t, img)
	assert.Equal(t, 8, img.Bounds().Dx())
	assert.Equal(t, 2, img.Bounds().Dy())

	assert.True(t, ink(img.At(0, 0)))
	assert.False(t, ink(img.At(7, 0)))
	assert.False(t, ink(img.At(0, 1)))
	assert.True(t, ink(img.At(7, 1)))
}

func TestGrfImageRejectsGarbage(t *testing.T) {
	assert.Nil(t, grfImage(&Graphic{Raw: "zz", BytesPerRow: 1}))
	assert.Nil(t, grfImage(&Graphic{Raw: "FF", BytesPerRow: 0}))
	assert.Nil(t, grfImage(&Graphic{Raw: "FF", BytesPerRow: 4}))
}
