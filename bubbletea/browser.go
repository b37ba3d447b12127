// Package bubbletea provides a terminal UI for browsing the command corpus
// using the Bubble Tea framework.
package bubbletea

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/cmdref"
	"github.com/fwojciec/cmdref/feedback"
	cmdlipgloss "github.com/fwojciec/cmdref/lipgloss"
	"github.com/fwojciec/cmdref/search"
)

// DefaultToastDuration is how long a copy notification stays up.
const DefaultToastDuration = 2 * time.Second

// headerHeight is the title, search and platform lines; footerHeight is
// the toast and help lines.
const (
	headerHeight = 3
	footerHeight = 2
)

type focus int

const (
	focusList focus = iota
	focusSearch
	focusDetail
)

// settledMsg is sent when the engine's loading window elapses.
type settledMsg struct{}

// copiedMsg reports a finished copy and the feedback generation it produced.
type copiedMsg struct {
	generation uint64
}

// dismissMsg asks to hide the toast of the given generation.
type dismissMsg struct {
	generation uint64
}

// BrowserModel browses a corpus with a search box, a platform filter and a
// card list. Copies go through a feedback.Controller whose toast is shown
// under the list.
type BrowserModel struct {
	ctx      context.Context
	corpus   *cmdref.Corpus
	engine   *search.Engine
	feedback *feedback.Controller

	platforms      []cmdref.Platform // Category order, numbered from 1 in the bar
	platformCursor int
	cursor         int // Index into the current results
	offsets        []int
	detail         *cmdref.Command

	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model
	help     help.Model
	keymap   KeyMap
	focus    focus

	styles        cmdref.Styles
	renderer      *lipgloss.Renderer
	tokenizer     cmdref.Tokenizer
	detector      cmdref.LanguageDetector
	formatter     cmdref.Formatter
	markdown      MarkdownRenderer
	toastDuration time.Duration

	width  int
	height int
	ready  bool
}

// BrowserOption configures a BrowserModel.
type BrowserOption func(*browserConfig)

type browserConfig struct {
	ctx           context.Context
	theme         cmdref.Theme
	renderer      *lipgloss.Renderer
	tokenizer     cmdref.Tokenizer
	detector      cmdref.LanguageDetector
	markdown      MarkdownRenderer
	toastDuration time.Duration
	searchOpts    []search.Option
}

// WithContext sets the context passed to copies.
func WithContext(ctx context.Context) BrowserOption {
	return func(cfg *browserConfig) {
		cfg.ctx = ctx
	}
}

// WithTheme sets the theme for the model.
func WithTheme(t cmdref.Theme) BrowserOption {
	return func(cfg *browserConfig) {
		cfg.theme = t
	}
}

// WithRenderer sets a custom lipgloss renderer for the model.
func WithRenderer(r *lipgloss.Renderer) BrowserOption {
	return func(cfg *browserConfig) {
		cfg.renderer = r
	}
}

// WithTokenizer sets the tokenizer for syntax highlighting.
func WithTokenizer(t cmdref.Tokenizer) BrowserOption {
	return func(cfg *browserConfig) {
		cfg.tokenizer = t
	}
}

// WithLanguageDetector sets the language detector for syntax highlighting.
func WithLanguageDetector(d cmdref.LanguageDetector) BrowserOption {
	return func(cfg *browserConfig) {
		cfg.detector = d
	}
}

// WithMarkdownRenderer sets how the detail view renders markdown.
func WithMarkdownRenderer(r MarkdownRenderer) BrowserOption {
	return func(cfg *browserConfig) {
		cfg.markdown = r
	}
}

// WithToastDuration sets how long copy notifications stay visible.
func WithToastDuration(d time.Duration) BrowserOption {
	return func(cfg *browserConfig) {
		cfg.toastDuration = d
	}
}

// WithSearchOptions configures the search engine.
func WithSearchOptions(opts ...search.Option) BrowserOption {
	return func(cfg *browserConfig) {
		cfg.searchOpts = append(cfg.searchOpts, opts...)
	}
}

// NewBrowserModel creates a BrowserModel over corpus copying through fb.
func NewBrowserModel(corpus *cmdref.Corpus, fb *feedback.Controller, opts ...BrowserOption) BrowserModel {
	cfg := &browserConfig{
		ctx:           context.Background(),
		toastDuration: DefaultToastDuration,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.theme == nil {
		cfg.theme = cmdlipgloss.DefaultTheme()
	}
	if cfg.markdown == nil {
		cfg.markdown = PlainMarkdown
	}
	if corpus == nil {
		corpus = &cmdref.Corpus{}
	}

	categories, groups := corpus.PlatformsByCategory()
	var platforms []cmdref.Platform
	for _, c := range categories {
		platforms = append(platforms, groups[c]...)
	}

	styles := cfg.theme.Styles()

	input := textinput.New()
	input.Prompt = "/ "
	input.Placeholder = "Search commands"
	input.PromptStyle = cmdlipgloss.Style(styles.Selected, cfg.renderer)
	input.PlaceholderStyle = cmdlipgloss.Style(styles.Muted, cfg.renderer)

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = cmdlipgloss.Style(styles.Selected, cfg.renderer)

	h := help.New()
	h.Styles.ShortKey = cmdlipgloss.Style(styles.Subtitle, cfg.renderer)
	h.Styles.ShortDesc = cmdlipgloss.Style(styles.Muted, cfg.renderer)
	h.Styles.FullKey = h.Styles.ShortKey
	h.Styles.FullDesc = h.Styles.ShortDesc

	engine := search.NewEngine(corpus.Commands, cfg.searchOpts...)
	platformCursor := 0
	for i, p := range platforms {
		if p.ID == engine.SelectedPlatform() {
			platformCursor = i
		}
	}

	return BrowserModel{
		ctx:            cfg.ctx,
		corpus:         corpus,
		engine:         engine,
		feedback:       fb,
		platforms:      platforms,
		platformCursor: platformCursor,
		input:          input,
		spinner:        sp,
		help:           h,
		keymap:         DefaultKeyMap(),
		styles:         styles,
		renderer:       cfg.renderer,
		tokenizer:      cfg.tokenizer,
		detector:       cfg.detector,
		formatter:      &cmdref.MarkdownFormatter{},
		markdown:       cfg.markdown,
		toastDuration:  cfg.toastDuration,
	}
}

// Engine returns the search engine driving the model.
func (m BrowserModel) Engine() *search.Engine {
	return m.engine
}

// Init implements tea.Model.
func (m BrowserModel) Init() tea.Cmd {
	return waitForSettle(m.engine)
}

func waitForSettle(e *search.Engine) tea.Cmd {
	return func() tea.Msg {
		<-e.Settled()
		return settledMsg{}
	}
}

// Update implements tea.Model.
func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		vpHeight := max(msg.Height-headerHeight-footerHeight, 1)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = vpHeight
		}
		m.input.Width = max(msg.Width-len(m.input.Prompt)-1, 10)
		m.help.Width = msg.Width
		m.refresh()
		return m, nil

	case settledMsg:
		m.refresh()
		return m, waitForSettle(m.engine)

	case spinner.TickMsg:
		if !m.engine.IsLoading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.refresh()
		return m, cmd

	case copiedMsg:
		m.refresh()
		gen := msg.generation
		return m, tea.Tick(m.toastDuration, func(time.Time) tea.Msg {
			return dismissMsg{generation: gen}
		})

	case dismissMsg:
		m.feedback.DismissGeneration(msg.generation)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keymap.ForceQuit) {
			return m, tea.Quit
		}
		switch m.focus {
		case focusSearch:
			return m.updateSearch(msg)
		case focusDetail:
			return m.updateDetail(msg)
		default:
			return m.updateList(msg)
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m BrowserModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.Blur) {
		m.focus = focusList
		m.input.Blur()
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() == m.engine.Query() {
		return m, cmd
	}

	m.engine.SetQuery(m.input.Value())
	m.cursor = 0
	m.viewport.GotoTop()
	m.refresh()
	if m.engine.IsLoading() {
		return m, tea.Batch(cmd, m.spinner.Tick)
	}
	return m, cmd
}

func (m BrowserModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	results := m.engine.Results()

	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Search):
		m.focus = focusSearch
		cmd := m.input.Focus()
		return m, cmd
	case key.Matches(msg, m.keymap.Down):
		if m.cursor < len(results)-1 {
			m.cursor++
			m.refresh()
		}
		return m, nil
	case key.Matches(msg, m.keymap.Up):
		if m.cursor > 0 {
			m.cursor--
			m.refresh()
		}
		return m, nil
	case key.Matches(msg, m.keymap.PlatformLeft):
		if m.platformCursor > 0 {
			m.platformCursor--
			m.refresh()
		}
		return m, nil
	case key.Matches(msg, m.keymap.PlatformRight):
		if m.platformCursor < len(m.platforms)-1 {
			m.platformCursor++
			m.refresh()
		}
		return m, nil
	case key.Matches(msg, m.keymap.TogglePlatform):
		idx := m.platformCursor
		if s := msg.String(); s != " " {
			idx = int(s[0] - '1')
		}
		if idx < len(m.platforms) {
			m.platformCursor = idx
			m.engine.SelectPlatform(m.platforms[idx].ID)
			m.cursor = 0
			m.viewport.GotoTop()
			m.refresh()
		}
		return m, nil
	case key.Matches(msg, m.keymap.ClearPlatform):
		m.engine.SelectPlatform("")
		m.refresh()
		return m, nil
	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.cursor >= len(results) {
		return m, nil
	}
	cmd := results[m.cursor]

	switch {
	case key.Matches(msg, m.keymap.CopySyntax):
		return m, m.copy(cmd.SyntaxPattern)
	case key.Matches(msg, m.keymap.CopyExample):
		if len(cmd.Examples) == 0 {
			return m, nil
		}
		return m, m.copy(cmd.Examples[0].Command)
	case key.Matches(msg, m.keymap.Open):
		m.detail = &cmd
		m.focus = focusDetail
		m.viewport.GotoTop()
		m.refresh()
		return m, nil
	}
	return m, nil
}

func (m BrowserModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Back):
		m.detail = nil
		m.focus = focusList
		m.refresh()
		return m, nil
	case key.Matches(msg, m.keymap.CopySyntax):
		return m, m.copy(m.detail.SyntaxPattern)
	case key.Matches(msg, m.keymap.CopyExample):
		if len(m.detail.Examples) > 0 {
			return m, m.copy(m.detail.Examples[0].Command)
		}
		return m, nil
	}

	if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
		if n := int(s[0] - '1'); n < len(m.detail.Examples) {
			return m, m.copy(m.detail.Examples[n].Command)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// copy runs the copy off the update loop and reports the new generation.
func (m BrowserModel) copy(text string) tea.Cmd {
	ctx, fb := m.ctx, m.feedback
	return func() tea.Msg {
		_, gen := fb.CopyGeneration(ctx, text, "", "")
		return copiedMsg{generation: gen}
	}
}

// refresh re-renders the viewport content for the current state.
func (m *BrowserModel) refresh() {
	if !m.ready {
		return
	}
	cfg := m.renderConfig()

	if m.focus == focusDetail && m.detail != nil {
		out, err := m.markdown(m.formatter.Format(*m.detail), m.width)
		if err != nil {
			out = m.formatter.Format(*m.detail)
		}
		m.viewport.SetContent(out)
		return
	}

	state := m.engine.Snapshot()
	switch state.Status {
	case search.StatusLoading:
		m.viewport.SetContent(m.spinner.View() + " Searching...")
		return
	case search.StatusNoResults:
		msg := fmt.Sprintf("No commands match %q", strings.TrimSpace(state.Query))
		hint := "Try a different search or clear the platform filter with 0."
		m.viewport.SetContent(cfg.style(m.styles.Title).Bold(true).Render(msg) + "\n" + cfg.style(m.styles.Muted).Render(hint))
		return
	}

	if len(state.Results) == 0 {
		m.viewport.SetContent(cfg.style(m.styles.Muted).Render("No commands for this platform."))
		return
	}

	if m.cursor >= len(state.Results) {
		m.cursor = len(state.Results) - 1
	}
	content, offsets := renderCards(cfg, state.Results, m.cursor)
	m.offsets = offsets
	m.viewport.SetContent(content)
	m.scrollToCursor()
}

// scrollToCursor keeps the selected card inside the viewport.
func (m *BrowserModel) scrollToCursor() {
	if m.cursor >= len(m.offsets) {
		return
	}
	top := m.offsets[m.cursor]
	bottom := m.viewport.TotalLineCount()
	if m.cursor+1 < len(m.offsets) {
		bottom = m.offsets[m.cursor+1]
	}
	switch {
	case top < m.viewport.YOffset:
		m.viewport.SetYOffset(top)
	case bottom > m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(bottom - m.viewport.Height)
	}
}

func (m BrowserModel) renderConfig() renderConfig {
	return renderConfig{
		styles:    m.styles,
		renderer:  m.renderer,
		tokenizer: m.tokenizer,
		detector:  m.detector,
		width:     m.width,
	}
}

// View implements tea.Model.
func (m BrowserModel) View() string {
	if !m.ready {
		return "Loading..."
	}
	cfg := m.renderConfig()

	state := m.engine.Snapshot()
	title := cfg.style(m.styles.Title).Bold(true).Render("cmdref")
	var count string
	switch state.Status {
	case search.StatusLoading:
		count = "searching"
	case search.StatusBrowse:
		count = pluralize(state.ResultCount, "command")
	default:
		count = pluralize(state.ResultCount, "result")
	}
	header := title + " " + cfg.style(m.styles.Muted).Render(count)
	if m.focus == focusDetail && m.detail != nil {
		header += " " + cfg.style(m.styles.Subtitle).Render("› "+m.detail.Name)
	}

	bar := renderPlatformBar(cfg, m.platforms, state.SelectedPlatformID, m.platformCursor, m.focus == focusList)

	toast := ""
	if fb := m.feedback.State(); fb.Visible {
		toast = renderToast(cfg, fb.Success, fb.Message)
	}

	return strings.Join([]string{
		header,
		m.input.View(),
		bar,
		m.viewport.View(),
		toast,
		m.help.View(m.keymap),
	}, "\n")
}

// Browser implements cmdref.Browser using a Bubble Tea TUI.
type Browser struct {
	feedback *feedback.Controller
	opts     []BrowserOption
	progOpts []tea.ProgramOption
}

// Compile-time interface verification.
var _ cmdref.Browser = (*Browser)(nil)

// NewBrowser creates a new Browser. Model options apply to every Browse.
func NewBrowser(fb *feedback.Controller, opts ...BrowserOption) *Browser {
	return &Browser{feedback: fb, opts: opts}
}

// WithProgramOptions adds Bubble Tea program options, used by tests to
// replace the terminal.
func (b *Browser) WithProgramOptions(opts ...tea.ProgramOption) *Browser {
	b.progOpts = append(b.progOpts, opts...)
	return b
}

// Browse displays the corpus and blocks until the user exits or ctx is done.
func (b *Browser) Browse(ctx context.Context, corpus *cmdref.Corpus) error {
	opts := append([]BrowserOption{WithContext(ctx)}, b.opts...)
	m := NewBrowserModel(corpus, b.feedback, opts...)

	progOpts := append([]tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	}, b.progOpts...)
	_, err := tea.NewProgram(m, progOpts...).Run()
	return err
}
