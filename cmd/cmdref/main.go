package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/cmdref"
	"github.com/fwojciec/cmdref/bubbletea"
	"github.com/fwojciec/cmdref/chroma"
	"github.com/fwojciec/cmdref/clipboard"
	"github.com/fwojciec/cmdref/feedback"
	"github.com/fwojciec/cmdref/fs"
	"github.com/fwojciec/cmdref/jsonl"
	"github.com/fwojciec/cmdref/lipgloss"
	"github.com/fwojciec/cmdref/search"
	"github.com/fwojciec/cmdref/toml"
)

// ErrNoResults is returned when a search matches no commands.
var ErrNoResults = errors.New("no commands match")

// ErrCopyFailed is returned when no clipboard strategy succeeded.
var ErrCopyFailed = errors.New("copy failed")

// App encapsulates the application logic for testing.
type App struct {
	Getenv       func(string) string
	ConfigLoader cmdref.ConfigLoader

	// Constructors for collaborators that depend on the loaded config.
	NewCorpusLoader func(dir string, strict bool) (cmdref.CorpusLoader, error)
	NewCopier       func(cfg cmdref.Config, logger *log.Logger) cmdref.Copier
	NewBrowser      func(cfg cmdref.Config, fb *feedback.Controller) cmdref.Browser
	RenderMarkdown  func(cfg cmdref.Config, markdown string) (string, error)
	OpenLog         func(path string) (io.Closer, error)

	// Flags
	ConfigPath string
	CorpusDir  string
	Platform   string
	Strict     bool
	Debug      bool

	config  cmdref.Config
	logger  *log.Logger
	logFile io.Closer
}

// NewApp returns an App wired to the real implementations.
func NewApp() *App {
	return &App{
		Getenv:       os.Getenv,
		ConfigLoader: toml.NewLoader(),
		NewCorpusLoader: func(dir string, strict bool) (cmdref.CorpusLoader, error) {
			fsys, err := fs.CorpusFS(dir)
			if err != nil {
				return nil, err
			}
			return jsonl.NewLoader(fsys, jsonl.WithStrict(strict)), nil
		},
		NewCopier: func(cfg cmdref.Config, logger *log.Logger) cmdref.Copier {
			return clipboard.NewDefaultLadder(clipboard.DetectEnvironment(), cfg.Clipboard, nil, clipboard.WithLogger(logger))
		},
		NewBrowser: newBrowser,
		RenderMarkdown: func(cfg cmdref.Config, markdown string) (string, error) {
			return bubbletea.GlamourMarkdown(cfg.Theme)(markdown, 80)
		},
		OpenLog: openLog,
	}
}

// openLog points the standard logger at path, creating its directory.
func openLog(path string) (io.Closer, error) {
	if err := fs.EnsureDir(path); err != nil {
		return nil, err
	}
	return tea.LogToFile(path, "cmdref")
}

func newBrowser(cfg cmdref.Config, fb *feedback.Controller) cmdref.Browser {
	theme := lipgloss.ThemeByName(cfg.Theme)
	opts := []bubbletea.BrowserOption{
		bubbletea.WithTheme(theme),
		bubbletea.WithLanguageDetector(chroma.NewDetector()),
		bubbletea.WithMarkdownRenderer(bubbletea.GlamourMarkdown(theme.Name())),
		bubbletea.WithSearchOptions(
			search.WithDelay(cfg.SearchDelay()),
			search.WithPlatform(cfg.DefaultPlatform),
		),
	}
	if tokenizer, err := chroma.NewTokenizer(chroma.StyleFromPalette(theme.Palette())); err == nil {
		opts = append(opts, bubbletea.WithTokenizer(tokenizer))
	}
	return bubbletea.NewBrowser(fb, opts...)
}

// Setup loads the configuration, applies environment and flag overrides and
// opens the debug log.
func (a *App) Setup() error {
	path := a.ConfigPath
	if path == "" {
		path = a.Getenv(cmdref.EnvConfig)
	}
	if path == "" {
		path = fs.DefaultConfigPath(a.Getenv)
	}

	cfg, err := a.ConfigLoader.Load(path)
	if err != nil {
		return err
	}
	cfg.ApplyEnv(a.Getenv)
	if a.CorpusDir != "" {
		cfg.CorpusDir = a.CorpusDir
	}
	if a.Platform != "" {
		cfg.DefaultPlatform = a.Platform
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.config = cfg

	a.logger = log.New(io.Discard, "", 0)
	if a.Debug {
		logPath := cfg.LogFile
		if logPath == "" {
			logPath = fs.DefaultLogPath(a.Getenv)
		}
		open := a.OpenLog
		if open == nil {
			open = openLog
		}
		f, err := open(logPath)
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		a.logFile = f
		a.logger = log.Default()
		a.logger.Printf("config: %s", path)
	}
	return nil
}

// Close releases resources opened by Setup. It is safe to call more than once.
func (a *App) Close() error {
	if a.logFile == nil {
		return nil
	}
	err := a.logFile.Close()
	a.logFile = nil
	return err
}

// Run executes the command line in args and releases the app's resources
// whether or not the command succeeds.
func (a *App) Run(ctx context.Context, args []string, out io.Writer) error {
	defer a.Close()

	cmd := NewRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetOut(out)
	cmd.SetErr(out)
	return cmd.ExecuteContext(ctx)
}

// Config returns the configuration loaded by Setup.
func (a *App) Config() cmdref.Config {
	return a.config
}

// LoadCorpus loads the corpus and checks the selected platform exists.
func (a *App) LoadCorpus(ctx context.Context) (*cmdref.Corpus, error) {
	loader, err := a.NewCorpusLoader(a.config.CorpusDir, a.Strict)
	if err != nil {
		return nil, err
	}
	corpus, err := loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	if verrs := cmdref.ValidateCorpus(corpus); len(verrs) > 0 {
		for _, e := range verrs {
			a.log().Printf("corpus: %v", e)
		}
	}
	if id := a.config.DefaultPlatform; id != "" {
		if _, ok := corpus.Platform(id); !ok {
			return nil, fmt.Errorf("unknown platform %q", id)
		}
	}
	a.log().Printf("corpus: %d commands, %d platforms", len(corpus.Commands), len(corpus.Platforms))
	return corpus, nil
}

// Feedback returns a feedback controller over the configured copier.
func (a *App) Feedback() *feedback.Controller {
	cb := a.config.Clipboard
	return feedback.NewController(a.NewCopier(a.config, a.log()),
		feedback.WithDefaultMessages(cb.SuccessMessage, cb.FailureMessage))
}

func (a *App) log() *log.Logger {
	if a.logger == nil {
		return log.New(io.Discard, "", 0)
	}
	return a.logger
}

// Browse opens the interactive browser.
func (a *App) Browse(ctx context.Context) error {
	corpus, err := a.LoadCorpus(ctx)
	if err != nil {
		return err
	}
	return a.NewBrowser(a.config, a.Feedback()).Browse(ctx, corpus)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := NewApp().Run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
