package mock

import (
	"context"

	"github.com/fwojciec/cmdref"
)

// Compile-time interface verification.
var _ cmdref.Copier = (*Copier)(nil)

// Copier is a mock implementation of cmdref.Copier.
type Copier struct {
	CopyFn func(ctx context.Context, text string) bool
}

func (c *Copier) Copy(ctx context.Context, text string) bool {
	return c.CopyFn(ctx, text)
}
