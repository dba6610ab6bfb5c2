package zplize

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodePNG(t *testing.T, data []byte) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	return img
}

func TestRenderEmptyDocument(t *testing.T) {
	_, err := Render("")
	assert.ErrorIs(t, err, ErrNoLabels)

	_, err = Render("no zpl here")
	assert.ErrorIs(t, err, ErrNoLabels)
}

func TestRenderBoxCanvas(t *testing.T) {
	data, err := Render("^XA^FO5,5^GB100,50,3,B^FS^XZ")
	require.NoError(t, err)

	img := decodePNG(t, data)
	assert.Equal(t, 109, img.Bounds().Dx())
	assert.Equal(t, 59, img.Bounds().Dy())

	// Stroked box: ink on the border, none in the middle.
	assert.True(t, ink(img.At(55, 5)))
	assert.False(t, ink(img.At(55, 30)))
}

func TestRenderFilledBox(t *testing.T) {
	// Thickness covers both dimensions, so the box is solid.
	data, err := Render("^XA^FO0,0^GB10,10,10,B^FS^XZ")
	require.NoError(t, err)

	img := decodePNG(t, data)
	assert.Equal(t, 14, img.Bounds().Dx())
	assert.Equal(t, 14, img.Bounds().Dy())
	assert.True(t, ink(img.At(5, 5)))
	assert.True(t, ink(img.At(1, 1)))
	assert.False(t, ink(img.At(12, 12)))
}

func TestRenderOutlinedBoxWideThickness(t *testing.T) {
	// Thickness covers only one dimension: still an outline.
	data, err := Render("^XA^FO0,0^GB40,10,10,B^FS^XZ")
	require.NoError(t, err)

	img := decodePNG(t, data)
	assert.True(t, ink(img.At(20, 0)))
}

func TestRenderReverseBox(t *testing.T) {
	// A reversed box on top of a filled one knocks its area out to
	// white.
	data, err := Render("^XA^FO0,0^GB40,40,40,B^FR^FO10,10^GB20,20,20,B^FS^XZ")
	require.NoError(t, err)

	img := decodePNG(t, data)
	assert.True(t, ink(img.At(5, 5)))
	assert.False(t, ink(img.At(20, 20)))
}

func TestRenderCircle(t *testing.T) {
	data, err := Render("^XA^FO0,0^GC40,0,B^FS^XZ")
	require.NoError(t, err)

	img := decodePNG(t, data)
	// Filled circle: ink at the center, none in the canvas corner.
	assert.True(t, ink(img.At(20, 20)))
	assert.False(t, ink(img.At(1, 1)))
}

func TestRenderDiagonal(t *testing.T) {
	data, err := Render("^XA^FO0,0^GD40,40,2,B^FS^XZ")
	require.NoError(t, err)

	img := decodePNG(t, data)
	assert.True(t, ink(img.At(20, 20)))
	assert.False(t, ink(img.At(38, 2)))
}

func TestRenderText(t *testing.T) {
	data, err := Render("^XA^FO10,20^A0N,30,20^FDHI^FS^XZ")
	require.NoError(t, err)

	img := decodePNG(t, data)
	found := false
	for y := 0; y < img.Bounds().Dy() && !found; y++ {
		for x := 0; x < img.Bounds().Dx(); x++ {
			if ink(img.At(x, y)) {
				found = true
				break
			}
		}
	}
	assert.True(t, found, "text leaves no ink")
}

func TestRenderUndecodableImageIsBlank(t *testing.T) {
	// Eight bytes of PNG header are stored but do not decode; the image
	// draws nothing and the canvas collapses to the margin minimum.
	data, err := Render("^XA~DYR:L.PNG,P,P,4,,,89504E470D0A1A0A^FO0,0^XGR:L.PNG,1,1^FS^XZ")
	require.NoError(t, err)

	img := decodePNG(t, data)
	assert.Equal(t, 5, img.Bounds().Dx())
	assert.Equal(t, 5, img.Bounds().Dy())
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			assert.False(t, ink(img.At(x, y)))
		}
	}
}

func TestRenderStoredPNG(t *testing.T) {
	// A real 2x2 black PNG stored via ~DY renders at double scale.
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			src.Set(x, y, color.Black)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))

	hexData := ""
	for _, b := range buf.Bytes() {
		hexData += string("0123456789ABCDEF"[b>>4]) + string("0123456789ABCDEF"[b&0xf])
	}

	data, err := Render("^XA~DYR:DOT.PNG,P,P,4,,," + hexData + "^FO0,0^XGR:DOT.PNG,2,2^FS^XZ")
	require.NoError(t, err)

	img := decodePNG(t, data)
	assert.Equal(t, 8, img.Bounds().Dx())
	assert.Equal(t, 8, img.Bounds().Dy())
	assert.True(t, ink(img.At(1, 1)))
	assert.True(t, ink(img.At(3, 3)))
	assert.False(t, ink(img.At(4, 4) /* beyond the scaled bitmap */))
}

func TestRenderGraphicRows(t *testing.T) {
	// A ~DG graphic unpacks its bit rows: 8x2 dots, left half black.
	data, err := Render("^XA~DGR:X.GRF,2,1,F0F0^FO0,0^XGR:X.GRF,1,1^FS^XZ")
	require.NoError(t, err)

	img := decodePNG(t, data)
	assert.True(t, ink(img.At(0, 0)))
	assert.True(t, ink(img.At(3, 1)))
	assert.False(t, ink(img.At(4, 0)))
}

func TestRenderCode39(t *testing.T) {
	data, err := Render("^XA^BY2,2,50^FO0,0^B3N,N,50,N,N^FD123^FS^XZ")
	require.NoError(t, err)

	img := decodePNG(t, data)
	assert.Equal(t, 172, img.Bounds().Dx())
	assert.Equal(t, 54, img.Bounds().Dy())
	assert.True(t, ink(img.At(20, 25)))
	assert.False(t, ink(img.At(5, 25)))
}

func TestRenderBarcodeEngineFailure(t *testing.T) {
	// A failing engine leaves placeholder dimensions and draws nothing.
	fail := func(req BarcodeRequest) (image.Image, error) {
		return nil, errors.New("engine down")
	}
	labels := Analyze("^XA^FO0,0^BCN,50,N^FDDATA^FS^XZ")
	require.Len(t, labels, 1)

	data, err := DrawElements(labels[0], WithBarcodeFunc(fail))
	require.NoError(t, err)

	e := labels[0].Elements[0]
	assert.Equal(t, len("DATA")*2*10, e.RenderWidth)
	assert.Equal(t, 50, e.RenderHeight)

	img := decodePNG(t, data)
	assert.Equal(t, 84, img.Bounds().Dx())
	for y := 0; y < img.Bounds().Dy(); y++ {
		for x := 0; x < img.Bounds().Dx(); x++ {
			require.False(t, ink(img.At(x, y)))
		}
	}
}

func TestRenderBarcodeCustomEngine(t *testing.T) {
	var got BarcodeRequest
	engine := func(req BarcodeRequest) (image.Image, error) {
		got = req
		img := image.NewRGBA(image.Rect(0, 0, 40, 50))
		for y := 0; y < 50; y++ {
			for x := 0; x < 40; x++ {
				img.Set(x, y, color.Black)
			}
		}
		return img, nil
	}

	labels := Analyze("^XA^BY2,3,50^FO0,0^BCN,50,N^FDDATA^FS^XZ")
	_, err := DrawElements(labels[0], WithBarcodeFunc(engine))
	require.NoError(t, err)

	assert.Equal(t, Code128, got.CodeType)
	assert.Equal(t, "DATA", got.Text)
	assert.Equal(t, 2, got.ScaleX)
	assert.Equal(t, byte('N'), got.Rotate)
	assert.False(t, got.IncludeText)
	assert.InDelta(t, 50*25.4/(72*2), got.HeightMM, 1e-9)

	// The ink box spans the full bitmap, so the render dimensions match
	// the requested height exactly.
	e := labels[0].Elements[0]
	assert.Equal(t, 50, e.RenderHeight)
	assert.Equal(t, 40, e.RenderWidth)
}

func TestRenderAll(t *testing.T) {
	pngs, err := RenderAll("^XA^FO0,0^GB10,10,10^FS^XZ^XA^FO0,0^GB30,10,1^FS^XZ")
	require.NoError(t, err)
	require.Len(t, pngs, 2)

	assert.Equal(t, 14, decodePNG(t, pngs[0]).Bounds().Dx())
	assert.Equal(t, 34, decodePNG(t, pngs[1]).Bounds().Dx())
}

func TestRenderFirstLabelOnly(t *testing.T) {
	data, err := Render("^XA^FO0,0^GB10,10,10^FS^XZ^XA^FO0,0^GB30,10,1^FS^XZ")
	require.NoError(t, err)
	assert.Equal(t, 14, decodePNG(t, data).Bounds().Dx())
}
