package zplize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawerDispatch(t *testing.T) {
	r := newRenderer()
	for _, kind := range []ElementKind{
		KindText, KindBarcode, KindBox, KindCircle, KindDiagonal, KindImage,
	} {
		assert.NotNil(t, r.drawerFor(kind), string(kind))
	}
	assert.Nil(t, r.drawerFor("hologram"))
}

func TestDrawLabelSkipsUnknownKinds(t *testing.T) {
	label := &Label{Elements: []*Element{
		{Kind: "hologram"},
		{Kind: KindBox, Box: &BoxElement{Width: 10, Height: 10, Thickness: 10, Color: Black}},
	}}

	data, err := DrawElements(label)
	require.NoError(t, err)

	// The unknown element is neither prepared nor painted.
	img := decodePNG(t, data)
	assert.Equal(t, 14, img.Bounds().Dx())
	assert.Equal(t, 14, img.Bounds().Dy())
}
