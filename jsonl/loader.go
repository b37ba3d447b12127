// Package jsonl loads the command corpus from JSONL files.
package jsonl

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/fwojciec/cmdref"
	"golang.org/x/sync/errgroup"
)

// Compile-time interface verification.
var _ cmdref.CorpusLoader = (*Loader)(nil)

// Corpus layout inside the file system.
const (
	PlatformsFile = "platforms.jsonl"
	CommandsGlob  = "commands/*.jsonl"
)

// maxLineSize is the maximum size for a single JSONL line (1MB).
const maxLineSize = 1024 * 1024

// Loader reads a corpus from a file system holding PlatformsFile and command
// chunks matching CommandsGlob.
type Loader struct {
	fsys   fs.FS
	strict bool
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithStrict makes Load fail when cmdref.ValidateCorpus reports problems.
func WithStrict(strict bool) LoaderOption {
	return func(l *Loader) {
		l.strict = strict
	}
}

// NewLoader creates a new Loader reading from fsys.
func NewLoader(fsys fs.FS, opts ...LoaderOption) *Loader {
	l := &Loader{fsys: fsys}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads the platform descriptors and every command chunk. Chunks are
// decoded concurrently and concatenated in lexical file order.
func (l *Loader) Load(ctx context.Context) (*cmdref.Corpus, error) {
	platforms, err := decodeFile[cmdref.Platform](l.fsys, PlatformsFile)
	if err != nil {
		return nil, err
	}

	chunks, err := fs.Glob(l.fsys, CommandsGlob)
	if err != nil {
		return nil, err
	}

	results := make([][]cmdref.Command, len(chunks))
	g, ctx := errgroup.WithContext(ctx)
	for i, name := range chunks {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cmds, err := decodeFile[cmdref.Command](l.fsys, name)
			if err != nil {
				return err
			}
			results[i] = cmds
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var commands []cmdref.Command
	for _, cmds := range results {
		commands = append(commands, cmds...)
	}
	if len(commands) == 0 {
		return nil, cmdref.ErrEmptyCorpus
	}

	corpus := &cmdref.Corpus{Commands: commands, Platforms: platforms}
	if l.strict {
		if verrs := cmdref.ValidateCorpus(corpus); len(verrs) > 0 {
			errs := make([]error, len(verrs))
			for i, e := range verrs {
				errs[i] = e
			}
			return nil, fmt.Errorf("invalid corpus: %w", errors.Join(errs...))
		}
	}
	return corpus, nil
}

func decodeFile[T any](fsys fs.FS, name string) ([]T, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decode[T](f, name)
}

// decode reads one record per non-blank line. Errors carry name:line.
func decode[T any](r io.Reader, name string) ([]T, error) {
	var records []T
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var rec T
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			return nil, fmt.Errorf("%s:%d: %w", name, lineNum, err)
		}
		records = append(records, rec)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return records, nil
}
