package zplize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFontRegistryEnsureIdempotent(t *testing.T) {
	fonts.ensure()
	sans, bold, condensed := fonts.sans, fonts.bold, fonts.condensedBold

	for i := 0; i < 3; i++ {
		fonts.ensure()
	}
	assert.Same(t, sans, fonts.sans)
	assert.Equal(t, bold, fonts.bold)
	assert.Equal(t, condensed, fonts.condensedBold)
}

func TestFontRegistryNormalFaceAlwaysAvailable(t *testing.T) {
	// Even on a host without the DejaVu files the embedded fallback
	// provides a usable normal face.
	face := fonts.face('A', 20)
	require.NotNil(t, face)
	assert.Positive(t, measure(face, "HI"))
}

func TestFontRegistryFaceCache(t *testing.T) {
	a := fonts.face('A', 14)
	b := fonts.face('A', 14)
	assert.Equal(t, a, b)

	c := fonts.face('A', 15)
	assert.NotEqual(t, a, c)
}

func TestFontRegistryClampsSize(t *testing.T) {
	assert.NotNil(t, fonts.face('A', 0))
}

func TestTextScaleX(t *testing.T) {
	assert.Equal(t, 0.65, textScaleX('0', 0, 30))
	assert.Equal(t, 0.5, textScaleX('0', 15, 30))
	assert.Equal(t, 1.0, textScaleX('A', 0, 30))
	assert.Equal(t, 2.0, textScaleX('A', 60, 30))
	assert.Equal(t, 1.0, textScaleX('A', 60, 0))
}
