package mock

import (
	"context"

	"github.com/fwojciec/cmdref"
)

// Compile-time interface verification.
var _ cmdref.Browser = (*Browser)(nil)

// Browser is a mock implementation of cmdref.Browser.
type Browser struct {
	BrowseFn func(ctx context.Context, corpus *cmdref.Corpus) error
}

func (b *Browser) Browse(ctx context.Context, corpus *cmdref.Corpus) error {
	return b.BrowseFn(ctx, corpus)
}
