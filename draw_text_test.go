package zplize

import (
	"testing"

	"github.com/fogleman/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextPrepareMeasures(t *testing.T) {
	e := &Element{Kind: KindText, Text: &TextElement{Text: "HELLO", FontName: 'A', Height: 20}}
	textDrawer{}.prepare(e)

	assert.Positive(t, e.RenderWidth)
	assert.Equal(t, 20, e.RenderHeight)
	assert.Positive(t, e.Text.measured)
}

func TestTextPrepareCompression(t *testing.T) {
	// Font '0' without a width compresses to 0.65 of the measured
	// advance; an explicit width scales by width/height.
	narrow := &Element{Kind: KindText, Text: &TextElement{Text: "HELLO", FontName: '0', Height: 20}}
	textDrawer{}.prepare(narrow)

	wide := &Element{Kind: KindText, Text: &TextElement{Text: "HELLO", FontName: '0', Height: 20, Width: 40}}
	textDrawer{}.prepare(wide)

	assert.Less(t, narrow.RenderWidth, wide.RenderWidth)
}

func TestTextDrawTopLeftBaseline(t *testing.T) {
	// With a top-left origin the glyphs sit below y; nothing is painted
	// above the element.
	e := &Element{
		Kind: KindText,
		X:    10,
		Y:    30,
		Text: &TextElement{Text: "H", FontName: 'A', Height: 20, OriginType: TopLeft},
	}
	textDrawer{}.prepare(e)

	dc := gg.NewContext(100, 100)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	textDrawer{}.draw(dc, e)

	img := dc.Image()
	for y := 0; y < 30; y++ {
		for x := 0; x < 100; x++ {
			require.False(t, ink(img.At(x, y)), "ink above the origin at %d,%d", x, y)
		}
	}

	found := false
	for y := 30; y < 55 && !found; y++ {
		for x := 0; x < 100; x++ {
			if ink(img.At(x, y)) {
				found = true
				break
			}
		}
	}
	assert.True(t, found)
}

func TestTextDrawBlockAlignment(t *testing.T) {
	center := &Element{
		Kind: KindText,
		Text: &TextElement{
			Text: "M", FontName: 'A', Height: 20, OriginType: TopLeft,
			BlockWidth: 80, BlockAlign: 'C',
		},
	}
	textDrawer{}.prepare(center)

	dc := gg.NewContext(100, 50)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	textDrawer{}.draw(dc, center)

	img := dc.Image()
	leftmost := -1
	for x := 0; x < 100 && leftmost < 0; x++ {
		for y := 0; y < 50; y++ {
			if ink(img.At(x, y)) {
				leftmost = x
				break
			}
		}
	}
	require.GreaterOrEqual(t, leftmost, 0, "no ink")
	// A centered glyph starts well inside the block.
	assert.Greater(t, leftmost, 20)
}
