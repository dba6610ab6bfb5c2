package zplize

import (
	"image"
	"math"
	"strings"

	"github.com/fogleman/gg"
)

// code39Patterns maps each supported character to its nine-element
// narrow/wide pattern. Bars sit at even indices, spaces at odd.
var code39Patterns = map[byte]string{
	'0': "nnnwwnwnn",
	'1': "wnnwnnnnw",
	'2': "nnwwnnnnw",
	'3': "wnwwnnnnn",
	'4': "nnnwwnnnw",
	'5': "wnnwwnnnn",
	'6': "nnwwwnnnn",
	'7': "nnnwnnwnw",
	'8': "wnnwnnwnn",
	'9': "nnwwnnwnn",
	'A': "wnnnnwnnw",
	'B': "nnwnnwnnw",
	'C': "wnwnnwnnn",
	'D': "nnnnwwnnw",
	'E': "wnnnwwnnn",
	'F': "nnwnwwnnn",
	'G': "nnnnnwwnw",
	'H': "wnnnnwwnn",
	'I': "nnwnnwwnn",
	'J': "nnnnwwwnn",
	'K': "wnnnnnnww",
	'L': "nnwnnnnww",
	'M': "wnwnnnnwn",
	'N': "nnnnwnnww",
	'O': "wnnnwnnwn",
	'P': "nnwnwnnwn",
	'Q': "nnnnnnwww",
	'R': "wnnnnnwwn",
	'S': "nnwnnnwwn",
	'T': "nnnnwnwwn",
	'U': "wwnnnnnnw",
	'V': "nwwnnnnnw",
	'W': "wwwnnnnnn",
	'X': "nwnnwnnnw",
	'Y': "wwnnwnnnn",
	'Z': "nwwnwnnnn",
	'-': "nwnnnnwnw",
	'.': "wwnnnnwnn",
	' ': "nwwnnnwnn",
	'$': "nwnwnwnnn",
	'/': "nwnwnnnwn",
	'+': "nwnnnwnwn",
	'%': "nnnwnwnwn",
	'*': "nwnnwnwnn",
}

// code39Pattern returns the pattern for a character, falling back to the
// dash for anything outside the alphabet.
func code39Pattern(c byte) string {
	if p, ok := code39Patterns[c]; ok {
		return p
	}
	return code39Patterns['-']
}

// code39QuietModules is the quiet zone on each side, in narrow modules.
const code39QuietModules = 10

// code39Modules returns the total symbol width in narrow-module units:
// quiet zones, nine elements per character with wide elements counting
// the ratio, and a single-module gap between characters.
func code39Modules(wrapped string, ratio float64) float64 {
	total := float64(2 * code39QuietModules)
	for i := 0; i < len(wrapped); i++ {
		for _, e := range code39Pattern(wrapped[i]) {
			if e == 'w' {
				total += ratio
			} else {
				total++
			}
		}
		if i < len(wrapped)-1 {
			total++
		}
	}
	return total
}

// drawCode39 rasterizes a code 39 symbol. The input is upper-cased and
// wrapped with the * start/stop characters; when interpretation text is
// requested a fifth of the height plus padding is reserved for it and
// the bars are clamped to at least one dot.
func drawCode39(b *BarcodeElement) image.Image {
	narrow := float64(b.ModuleWidth)
	if narrow <= 0 {
		narrow = 2
	}
	ratio := b.Ratio
	if ratio <= 0 {
		ratio = 2
	}
	heightDots := b.Height
	if heightDots <= 0 {
		heightDots = 50
	}

	wrapped := "*" + strings.ToUpper(b.Text) + "*"

	width := int(math.Ceil(code39Modules(wrapped, ratio) * narrow))

	textArea := 0
	if b.PrintInterpretation {
		textArea = heightDots/5 + 4
	}
	barHeight := heightDots - textArea
	if barHeight < 1 {
		barHeight = 1
	}
	barY := 0.0
	if b.PrintInterpretation && b.PrintAbove {
		barY = float64(textArea)
	}

	dc := gg.NewContext(width, heightDots)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetRGB(0, 0, 0)

	x := float64(code39QuietModules) * narrow
	for i := 0; i < len(wrapped); i++ {
		for j, e := range code39Pattern(wrapped[i]) {
			w := narrow
			if e == 'w' {
				w = ratio * narrow
			}
			if j%2 == 0 {
				dc.DrawRectangle(x, barY, w, float64(barHeight))
				dc.Fill()
			}
			x += w
		}
		x += narrow
	}

	if b.PrintInterpretation {
		size := heightDots / 5
		if size < 1 {
			size = 1
		}
		dc.SetFontFace(fonts.face('A', size))
		cy := float64(barHeight) + float64(textArea)/2
		if b.PrintAbove {
			cy = float64(textArea) / 2
		}
		dc.DrawStringAnchored(wrapped, float64(width)/2, cy, 0.5, 0.5)
	}

	return dc.Image()
}
