package font

import (
	"errors"

	"github.com/gogpu/fontmetrics/text"
)

// Service opens measurement contexts for descriptors.
// *text.Measurer implements Service.
type Service interface {
	Open(d text.Descriptor) (text.MeasureContext, error)
}

// withContext resolves the adapter's descriptor, opens a context, runs fn
// and closes the context on every return path. A close error is joined
// with the error of fn.
func (a *Adapter) withContext(fn func(ctx text.MeasureContext) error) (err error) {
	ctx, err := a.service.Open(a.Resolve().Descriptor)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := ctx.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}()
	return fn(ctx)
}
