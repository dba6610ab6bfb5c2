package zplize

import (
	"encoding/hex"
	"math"
	"strconv"
	"strings"
)

// Analyze runs a ZPL document through the virtual printer and returns the
// labels it produces. Unknown or malformed commands never abort a label;
// the analyzer always succeeds.
func Analyze(zpl string) []*Label {
	p := newPrinter()
	for _, token := range tokenize(zpl) {
		p.evaluate(token)
	}
	p.flushTrailing()
	return p.labels
}

// evaluate dispatches one command token on its two-character designator.
func (p *printer) evaluate(token string) {
	if len(token) < 3 {
		return
	}
	tail := token[3:]

	switch token[1:3] {
	case "XA":
		p.reset()
	case "XZ":
		p.finalize()
	case "FO":
		p.armPosition(tail, TopLeft)
	case "FT":
		p.armPosition(tail, Baseline)
	case "LH":
		fs := fields(tail)
		p.homeX = intField(fs, 0, 0)
		p.homeY = intField(fs, 1, 0)
	case "CF":
		fs := fields(tail)
		if f := strField(fs, 0); f != "" {
			p.font.name = f[0]
		}
		p.font.height = intField(fs, 1, p.font.height)
		p.font.width = intField(fs, 2, p.font.width)
	case "FW":
		if o, ok := orientationOf(upperByte(tail, byte(Normal))); ok {
			p.fieldOrient = &o
		}
	case "FB":
		fs := fields(tail)
		align := letterField(fs, 3, 'L')
		switch align {
		case 'L', 'C', 'R', 'J':
		default:
			align = 'L'
		}
		p.block = &fieldBlock{
			width:       intField(fs, 0, 0),
			lines:       intField(fs, 1, 0),
			lineSpacing: intField(fs, 2, 0),
			align:       align,
			indent:      intField(fs, 4, 0),
		}
	case "FR":
		p.reverseNext = true
	case "GB":
		fs := fields(tail)
		p.emitShape(&Element{Kind: KindBox, Box: &BoxElement{
			Width:     intField(fs, 0, 0),
			Height:    intField(fs, 1, 0),
			Thickness: intField(fs, 2, 1),
			Color:     colorField(fs, 3),
		}})
	case "GC":
		fs := fields(tail)
		p.emitShape(&Element{Kind: KindCircle, Circle: &CircleElement{
			Diameter:  intField(fs, 0, 0),
			Thickness: intField(fs, 1, 0),
			Color:     colorField(fs, 2),
		}})
	case "GD":
		fs := fields(tail)
		p.emitShape(&Element{Kind: KindDiagonal, Diagonal: &DiagonalElement{
			Width:     intField(fs, 0, 0),
			Height:    intField(fs, 1, 0),
			Thickness: intField(fs, 2, 1),
			Color:     colorField(fs, 3),
		}})
	case "BY":
		fs := fields(tail)
		p.defaults.moduleWidth = intField(fs, 0, p.defaults.moduleWidth)
		p.defaults.ratio = floatField(fs, 1, p.defaults.ratio)
		p.defaults.height = intField(fs, 2, p.defaults.height)
	case "FD":
		p.fieldData(tail)
	case "FS":
		p.next = nil
		p.barcode = nil
	case "IM", "XG":
		p.recallImage(tail)
	case "DG":
		p.storeGraphic(tail)
	case "DY":
		p.storeImage(tail)
	default:
		switch token[1] {
		case 'A':
			p.setFont(token[2], tail)
		case 'B':
			p.armBarcode(token[2], tail)
		}
	}
}

// armPosition arms the origin for the next element-creating command.
// Label home is applied here, at evaluation time.
func (p *printer) armPosition(tail string, origin OriginType) {
	fs := fields(tail)
	p.next = &position{
		x:          p.homeX + intField(fs, 0, 0),
		y:          p.homeY + intField(fs, 1, 0),
		bottom:     intField(fs, 2, 0) != 0,
		originType: origin,
	}
}

// setFont handles ^Aa[o][,h[,w]]. A set field orientation overrides the
// orientation parameter.
func (p *printer) setFont(name byte, tail string) {
	fs := fields(tail)
	p.font.name = name
	o, _ := orientationOf(upperByte(strField(fs, 0), byte(Normal)))
	if p.fieldOrient != nil {
		o = *p.fieldOrient
	}
	p.font.orientation = o
	p.font.height = intField(fs, 1, p.font.height)
	p.font.width = intField(fs, 2, p.font.width)
}

// emitShape places a shape element at the armed origin, or at the canvas
// origin when none is armed.
func (p *printer) emitShape(e *Element) {
	pos := p.takePosition(0, 0)
	e.X, e.Y = pos.x, pos.y
	e.Orientation = Normal
	e.Reverse = p.takeReverse()
	p.emit(e)
}

// fieldData handles ^FD. The armed barcode wins over the armed field
// block; with neither armed a single text element is emitted. The armed
// position is cleared in every case.
func (p *printer) fieldData(data string) {
	if bc := p.takeBarcode(); bc != nil {
		pos := p.takePosition(p.homeX, p.homeY)
		height := bc.height
		if height == 0 {
			height = p.defaults.height
		}
		moduleWidth := p.defaults.moduleWidth
		if bc.options.ModuleWidth > 0 {
			moduleWidth = bc.options.ModuleWidth
		}
		p.emit(&Element{
			Kind:        KindBarcode,
			X:           pos.x,
			Y:           pos.y,
			Orientation: bc.orientation,
			Reverse:     p.takeReverse(),
			Barcode: &BarcodeElement{
				CodeType:            bc.codeType,
				Text:                data,
				Height:              height,
				ModuleWidth:         moduleWidth,
				Ratio:               p.defaults.ratio,
				Options:             bc.options,
				PrintInterpretation: bc.printInterpretation,
				PrintAbove:          bc.printAbove,
			},
		})
		return
	}

	if blk := p.takeBlock(); blk != nil {
		p.emitBlock(data, blk)
		return
	}

	pos := p.takePosition(p.homeX, p.homeY)
	p.emit(&Element{
		Kind:        KindText,
		X:           pos.x,
		Y:           pos.y,
		Orientation: p.font.orientation,
		Reverse:     p.takeReverse(),
		Text: &TextElement{
			Text:       data,
			FontName:   p.font.name,
			Height:     p.font.height,
			Width:      p.font.width,
			OriginType: pos.originType,
		},
	})
}

// emitBlock wraps field data into the armed ^FB block and emits one text
// element per line.
func (p *printer) emitBlock(data string, blk *fieldBlock) {
	pos := p.takePosition(p.homeX, p.homeY)
	reverse := p.takeReverse()

	lines := wrapBlock(data, blk.width, p.font.name, p.font.height, p.font.width)
	if blk.lines > 0 && len(lines) > blk.lines {
		lines = lines[:blk.lines]
	}

	h, s := p.font.height, blk.lineSpacing
	offsetY := 0
	if blk.lines > len(lines) {
		offsetY = ((blk.lines*(h+s) - s) - (len(lines)*(h+s) - s)) / 2
	}

	for i, line := range lines {
		x := pos.x
		if i > 0 {
			x += blk.indent
		}
		p.emit(&Element{
			Kind:        KindText,
			X:           x,
			Y:           pos.y + offsetY + i*(h+s),
			Orientation: p.font.orientation,
			Reverse:     reverse,
			Text: &TextElement{
				Text:       line,
				FontName:   p.font.name,
				Height:     p.font.height,
				Width:      p.font.width,
				OriginType: pos.originType,
				BlockWidth: blk.width,
				BlockAlign: blk.align,
			},
		})
	}
}

// wrapBlock splits field data on the \& paragraph escape and packs words
// greedily into lines that fit the block width. The per-character width
// estimate is fontHeight x 0.6, compressed by 0.65 for font '0' when no
// explicit width is set.
func wrapBlock(data string, blockWidth int, fontName byte, fontHeight, fontWidth int) []string {
	scaleX := 1.0
	if fontName == '0' && fontWidth == 0 {
		scaleX = 0.65
	}
	charWidth := float64(fontHeight) * 0.6 * scaleX

	limited := blockWidth > 0 && charWidth > 0
	maxChars := 0
	if limited {
		maxChars = int(math.Floor(float64(blockWidth) / charWidth))
	}

	var lines []string
	for _, paragraph := range strings.Split(data, `\&`) {
		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		current := ""
		for _, word := range words {
			switch {
			case current == "":
				current = word
			case limited && len(current)+1+len(word) > maxChars:
				lines = append(lines, current)
				current = word
			default:
				current += " " + word
			}
		}
		lines = append(lines, current)
	}
	return lines
}

// recallImage handles ^IM and ^XG. Both clear the field block and take
// their orientation from ^FW.
func (p *printer) recallImage(tail string) {
	fs := fields(tail)
	pos := p.takePosition(p.homeX, p.homeY)
	p.block = nil

	orientation := Normal
	if p.fieldOrient != nil {
		orientation = *p.fieldOrient
	}

	p.emit(&Element{
		Kind:        KindImage,
		X:           pos.x,
		Y:           pos.y,
		Orientation: orientation,
		Reverse:     p.takeReverse(),
		Image: &ImageElement{
			ScaleX:  intField(fs, 1, 1),
			ScaleY:  intField(fs, 2, 1),
			Graphic: p.graphics[strField(fs, 0)],
		},
	})
}

// storeGraphic handles ~DGname,total,bytesPerRow,data.
func (p *printer) storeGraphic(tail string) {
	parts := strings.SplitN(tail, ",", 4)
	if len(parts) < 4 {
		return
	}
	total, _ := strconv.Atoi(strings.TrimSpace(parts[1]))
	perRow, _ := strconv.Atoi(strings.TrimSpace(parts[2]))
	p.graphics[parts[0]] = &Graphic{
		Raw:         parts[3],
		TotalBytes:  total,
		BytesPerRow: perRow,
	}
}

// storeImage handles ~DYname,f,b,x,t,w,hexData. The payload is
// hexadecimal; a payload that fails to decode is stored raw and the image
// drawer will treat it as unavailable.
func (p *printer) storeImage(tail string) {
	parts := strings.SplitN(tail, ",", 7)
	if len(parts) < 7 {
		return
	}
	data, err := hex.DecodeString(parts[6])
	if err != nil {
		p.graphics[parts[0]] = &Graphic{Raw: parts[6]}
		return
	}
	p.graphics[parts[0]] = &Graphic{Data: data, Type: "png"}
}

// fields splits a parameter tail on commas. An empty tail has no fields.
func fields(tail string) []string {
	if tail == "" {
		return nil
	}
	return strings.Split(tail, ",")
}

func strField(fs []string, i int) string {
	if i >= len(fs) {
		return ""
	}
	return strings.TrimSpace(fs[i])
}

// intField parses an integer parameter, substituting the documented
// default on absence or parse failure.
func intField(fs []string, i, def int) int {
	s := strField(fs, i)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func floatField(fs []string, i int, def float64) float64 {
	s := strField(fs, i)
	if s == "" {
		return def
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return f
}

// letterField returns the upper-cased first character of a parameter.
func letterField(fs []string, i int, def byte) byte {
	return upperByte(strField(fs, i), def)
}

func colorField(fs []string, i int) Color {
	switch c := Color(letterField(fs, i, 'B')); c {
	case Black, White, Fill:
		return c
	default:
		return Black
	}
}

func upperByte(s string, def byte) byte {
	if s == "" {
		return def
	}
	b := s[0]
	if b >= 'a' && b <= 'z' {
		b -= 'a' - 'A'
	}
	return b
}

// ynField parses a Y/N parameter.
func ynField(fs []string, i int, def bool) bool {
	switch letterField(fs, i, 0) {
	case 'Y':
		return true
	case 'N':
		return false
	default:
		return def
	}
}
