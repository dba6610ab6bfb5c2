package zplize

// position is an armed ^FO/^FT origin, label home already applied.
type position struct {
	x, y       int
	bottom     bool
	originType OriginType
}

// fontState is the current default font of the virtual printer.
type fontState struct {
	name        byte
	orientation Orientation
	height      int
	width       int
}

// barcodeDefaults are the ^BY module parameters inherited by every
// subsequent barcode command that leaves them unset.
type barcodeDefaults struct {
	moduleWidth int
	ratio       float64
	height      int
}

// pendingBarcode is an armed ^Bx command waiting for its ^FD data.
type pendingBarcode struct {
	codeType            CodeType
	orientation         Orientation
	height              int
	printInterpretation bool
	printAbove          bool
	options             BarcodeOptions
}

// fieldBlock is an armed ^FB spec consumed by the next text field.
type fieldBlock struct {
	width       int
	lines       int
	lineSpacing int
	align       byte
	indent      int
}

// printer is the mutable evaluator state of a single document. The
// meaning of a terminal ^FD depends on which of these fields is armed.
type printer struct {
	next        *position
	homeX       int
	homeY       int
	font        fontState
	fieldOrient *Orientation
	defaults    barcodeDefaults
	barcode     *pendingBarcode
	block       *fieldBlock
	reverseNext bool
	graphics    map[string]*Graphic

	elements []*Element
	labels   []*Label
}

func newPrinter() *printer {
	p := &printer{graphics: make(map[string]*Graphic)}
	p.reset()
	return p
}

// reset restores the per-label state. The graphic store is device memory
// and survives ^XA within a document; accumulated labels are kept.
func (p *printer) reset() {
	p.next = nil
	p.homeX, p.homeY = 0, 0
	p.font = fontState{name: '0', orientation: Normal, height: 10}
	p.fieldOrient = nil
	p.defaults = barcodeDefaults{moduleWidth: 2, ratio: 3, height: 50}
	p.barcode = nil
	p.block = nil
	p.reverseNext = false
}

// takePosition consumes the armed origin, falling back to the given
// default coordinates when none is armed.
func (p *printer) takePosition(defX, defY int) position {
	if p.next == nil {
		return position{x: defX, y: defY, originType: TopLeft}
	}
	pos := *p.next
	p.next = nil
	return pos
}

// takeReverse consumes the one-shot ^FR flag.
func (p *printer) takeReverse() bool {
	r := p.reverseNext
	p.reverseNext = false
	return r
}

// takeBarcode consumes the armed ^Bx spec, if any.
func (p *printer) takeBarcode() *pendingBarcode {
	b := p.barcode
	p.barcode = nil
	return b
}

// takeBlock consumes the armed ^FB spec, if any.
func (p *printer) takeBlock() *fieldBlock {
	b := p.block
	p.block = nil
	return b
}

// emit appends an element to the current label buffer.
func (p *printer) emit(e *Element) {
	p.elements = append(p.elements, e)
}

// finalize pushes the current element buffer as a finished label.
// ^XZ always produces a label, even an empty one.
func (p *printer) finalize() {
	p.labels = append(p.labels, &Label{Elements: p.elements})
	p.elements = nil
	p.next = nil
	p.barcode = nil
	p.block = nil
}

// flushTrailing pushes a non-empty element buffer left after the final
// ^XZ as a trailing label.
func (p *printer) flushTrailing() {
	if len(p.elements) == 0 {
		return
	}
	p.labels = append(p.labels, &Label{Elements: p.elements})
	p.elements = nil
}
