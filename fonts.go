package zplize

import (
	"os"
	"path/filepath"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Scalable font files resolved against the font search directories.
const (
	sansFile          = "DejaVuSans.ttf"
	boldFile          = "DejaVuSans-Bold.ttf"
	condensedBoldFile = "DejaVuSansCondensed-Bold.ttf"
)

var defaultFontDirs = []string{
	"/usr/share/fonts/truetype/dejavu",
	"/usr/share/fonts/dejavu",
	"/usr/share/fonts/TTF",
	"/usr/local/share/fonts",
}

var fontDirs = defaultFontDirs

// SetFontDirs sets the directories searched for the DejaVu font files.
// It must be called before the first render.
func SetFontDirs(dirs ...string) {
	fontDirs = dirs
}

// ResetFontDirs restores the default font search directories.
func ResetFontDirs() {
	fontDirs = defaultFontDirs
}

const (
	styleSans = iota
	styleBold
	styleCondensedBold
)

type faceKey struct {
	style int
	size  int
}

// fontRegistry lazily loads the scalable faces used for text measurement
// and rendering. It is process-wide and not safe for concurrent first
// use; callers serialize the first load.
type fontRegistry struct {
	loaded bool

	sans          *truetype.Font
	bold          *truetype.Font
	condensedBold *truetype.Font

	faces map[faceKey]font.Face
}

var fonts = &fontRegistry{faces: make(map[faceKey]font.Face)}

// ensure performs the one-time registration. The normal face falls back
// to the embedded Go Regular font when no DejaVu file is found; missing
// bold variants leave their slots empty.
func (r *fontRegistry) ensure() {
	if r.loaded {
		return
	}
	r.loaded = true

	r.sans = loadFontFile(sansFile)
	if r.sans == nil {
		r.sans, _ = truetype.Parse(goregular.TTF)
	}
	r.bold = loadFontFile(boldFile)
	r.condensedBold = loadFontFile(condensedBoldFile)
}

func loadFontFile(name string) *truetype.Font {
	for _, dir := range fontDirs {
		bs, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		f, err := truetype.Parse(bs)
		if err != nil {
			continue
		}
		return f
	}
	return nil
}

// face returns a cached face for a ZPL font designator at the given
// size in dots. Designator '0' selects the condensed bold face, falling
// back through bold to the normal face; every other designator uses the
// normal face.
func (r *fontRegistry) face(designator byte, size int) font.Face {
	r.ensure()

	if size < 1 {
		size = 1
	}

	style := styleSans
	f := r.sans
	if designator == '0' {
		switch {
		case r.condensedBold != nil:
			style, f = styleCondensedBold, r.condensedBold
		case r.bold != nil:
			style, f = styleBold, r.bold
		}
	}

	key := faceKey{style: style, size: size}
	if face, ok := r.faces[key]; ok {
		return face
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	r.faces[key] = face
	return face
}

// measure returns the advance width of s in dots, before horizontal
// compression.
func measure(face font.Face, s string) float64 {
	return float64(font.MeasureString(face, s)) / 64
}

// textScaleX is the horizontal compression applied to rendered text:
// 0.65 for font '0' with no explicit width, the width/height ratio when
// both are set, and 1 otherwise.
func textScaleX(name byte, width, height int) float64 {
	if name == '0' && width == 0 {
		return 0.65
	}
	if width > 0 && height > 0 {
		return float64(width) / float64(height)
	}
	return 1
}
