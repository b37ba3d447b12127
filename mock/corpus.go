package mock

import (
	"context"

	"github.com/fwojciec/cmdref"
)

// Compile-time interface verification.
var (
	_ cmdref.CorpusLoader = (*CorpusLoader)(nil)
	_ cmdref.ConfigLoader = (*ConfigLoader)(nil)
)

// CorpusLoader is a mock implementation of cmdref.CorpusLoader.
type CorpusLoader struct {
	LoadFn func(ctx context.Context) (*cmdref.Corpus, error)
}

func (l *CorpusLoader) Load(ctx context.Context) (*cmdref.Corpus, error) {
	return l.LoadFn(ctx)
}

// ConfigLoader is a mock implementation of cmdref.ConfigLoader.
type ConfigLoader struct {
	LoadFn func(path string) (cmdref.Config, error)
}

func (l *ConfigLoader) Load(path string) (cmdref.Config, error) {
	return l.LoadFn(path)
}
