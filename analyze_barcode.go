package zplize

// armBarcode handles the ^Bx family. The armed spec waits for its ^FD
// data; an unknown barcode letter is ignored like any unknown command.
// The first parameter is the orientation slot; code-specific parameters
// follow it.
func (p *printer) armBarcode(kind byte, tail string) {
	fs := fields(tail)
	bc := &pendingBarcode{orientation: Normal}
	if o, ok := orientationOf(upperByte(strField(fs, 0), byte(Normal))); ok {
		bc.orientation = o
	}
	if len(fs) > 0 {
		fs = fs[1:]
	}

	switch kind {
	case 'C', 'D':
		bc.codeType = Code128
		bc.height = intField(fs, 0, 0)
		bc.printInterpretation = ynField(fs, 1, true)
		bc.printAbove = ynField(fs, 2, false)
		bc.options.Mode = strField(fs, 3)
	case '3':
		bc.codeType = Code39
		// The check-digit parameter is accepted and ignored.
		bc.height = intField(fs, 1, 0)
		bc.printInterpretation = ynField(fs, 2, true)
		bc.printAbove = ynField(fs, 3, false)
	case 'E', '8':
		bc.codeType = EAN13
		bc.height = intField(fs, 0, 0)
		bc.printInterpretation = ynField(fs, 1, true)
		bc.printAbove = ynField(fs, 2, false)
	case '9', 'A':
		bc.codeType = Code93
		bc.height = intField(fs, 0, 0)
		bc.printInterpretation = ynField(fs, 1, true)
		bc.printAbove = ynField(fs, 2, false)
	case '2':
		bc.codeType = Interleaved2of5
		bc.height = intField(fs, 0, 0)
		bc.printInterpretation = ynField(fs, 1, true)
		bc.printAbove = ynField(fs, 2, false)
	case 'Q':
		bc.codeType = QRCode
		bc.options.Scale = intField(fs, 0, 0)
		bc.options.ECCLevel = eccField(fs, 1)
	case 'X':
		bc.codeType = DataMatrix
		bc.options.Scale = intField(fs, 0, 0)
	case '7':
		bc.codeType = PDF417
		bc.options.ModuleWidth = intField(fs, 0, 0)
		bc.options.SecurityLevel = intField(fs, 1, 0)
		bc.options.Columns = intField(fs, 2, 0)
		bc.options.Rows = intField(fs, 3, 0)
		bc.options.RowHeight = intField(fs, 4, 0)
		bc.options.Truncated = ynField(fs, 5, false)
	default:
		return
	}

	p.barcode = bc
}

// eccField parses a QR error-correction letter.
func eccField(fs []string, i int) byte {
	switch l := letterField(fs, i, 'M'); l {
	case 'L', 'M', 'Q', 'H':
		return l
	default:
		return 'M'
	}
}
