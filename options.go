package zplize

// Options customizes the behavior of a render.
type Options interface {
	apply(any)
}

type option func(any)

func (o option) apply(c any) {
	o(c)
}

// WithBarcodeFunc sets a custom function for generating the delegated
// barcode symbologies. The code 39 generator is built in and is not
// affected by this option.
func WithBarcodeFunc(fn BarcodeFunc) Options {
	return option(func(c any) {
		if r, ok := c.(*renderer); ok && fn != nil {
			r.barcodeFunc = fn
		}
	})
}
