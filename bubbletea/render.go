package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/cmdref"
	cmdlipgloss "github.com/fwojciec/cmdref/lipgloss"
)

// renderConfig holds the rendering parameters shared by the browser views.
type renderConfig struct {
	styles    cmdref.Styles
	renderer  *lipgloss.Renderer
	tokenizer cmdref.Tokenizer
	detector  cmdref.LanguageDetector
	width     int
}

func (cfg renderConfig) style(cp cmdref.ColorPair) lipgloss.Style {
	return cmdlipgloss.Style(cp, cfg.renderer)
}

// renderCards renders the result cards and returns the first line of each
// card so the caller can keep the cursor in view.
func renderCards(cfg renderConfig, commands []cmdref.Command, cursor int) (string, []int) {
	var sb strings.Builder
	offsets := make([]int, len(commands))
	line := 0

	cardWidth := cfg.width - 2 // border
	if cardWidth < 20 {
		cardWidth = 20
	}

	for i, cmd := range commands {
		offsets[i] = line

		border := cfg.styles.Border
		if i == cursor {
			border = cfg.styles.Selected
		}
		card := cfg.style(cmdref.ColorPair{}).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(border.Foreground)).
			Width(cardWidth).
			Padding(0, 1).
			Render(renderCardBody(cfg, cmd, cardWidth-2))

		sb.WriteString(card)
		sb.WriteString("\n")
		line += lipgloss.Height(card)
	}
	return sb.String(), offsets
}

func renderCardBody(cfg renderConfig, cmd cmdref.Command, width int) string {
	var lines []string

	header := cfg.style(cfg.styles.Title).Bold(true).Render(cmd.Name) + " " + renderSafetyBadge(cfg, cmd.Safety)
	for _, p := range cmd.Platforms {
		header += " " + renderPlatformBadge(cfg, p)
	}
	lines = append(lines, header)

	if cmd.Subtitle != "" {
		lines = append(lines, cfg.style(cfg.styles.Subtitle).Italic(true).Render(cmd.Subtitle))
	}
	if cmd.Description != "" {
		lines = append(lines, cfg.style(cmdref.ColorPair{}).Width(width).Render(cmd.Description))
	}
	if cmd.SyntaxPattern != "" {
		lines = append(lines, "$ "+renderSyntax(cfg, cmd, cmd.SyntaxPattern))
	}
	if n := len(cmd.Examples); n > 0 {
		lines = append(lines, cfg.style(cfg.styles.Muted).Render(pluralize(n, "example")))
	}

	return strings.Join(lines, "\n")
}

func renderSafetyBadge(cfg renderConfig, level cmdref.Safety) string {
	return cfg.style(cfg.styles.SafetyStyle(level)).Padding(0, 1).Render(level.String())
}

func renderPlatformBadge(cfg renderConfig, tag cmdref.PlatformTag) string {
	name := tag.Name
	if name == "" {
		name = tag.ID
	}
	return cfg.style(cfg.styles.PlatformStyle(tag.ColorToken)).Padding(0, 1).Render(name)
}

// renderSyntax highlights a command line in the command's shell language,
// falling back to the plain syntax style.
func renderSyntax(cfg renderConfig, cmd cmdref.Command, source string) string {
	if cfg.tokenizer != nil && cfg.detector != nil {
		if tokens := cfg.tokenizer.Tokenize(cfg.detector.DetectFromCommand(cmd), source); len(tokens) > 0 {
			var sb strings.Builder
			for _, tok := range tokens {
				s := cfg.style(cmdref.ColorPair{Foreground: tok.Style.Foreground})
				if tok.Style.Bold {
					s = s.Bold(true)
				}
				sb.WriteString(s.Render(tok.Text))
			}
			return sb.String()
		}
	}
	return cfg.style(cfg.styles.Syntax).Render(source)
}

// renderPlatformBar renders the platform toggles, numbered from 1. The
// selected platform uses the "on" style; the cursor is bracketed.
func renderPlatformBar(cfg renderConfig, platforms []cmdref.Platform, selected string, cursor int, focused bool) string {
	parts := make([]string, 0, len(platforms)+1)
	parts = append(parts, cfg.style(cfg.styles.Muted).Render("Platforms:"))
	for i, p := range platforms {
		label := p.Name
		if i < 9 {
			label = fmt.Sprintf("%d %s", i+1, p.Name)
		}
		style := cfg.style(cfg.styles.Platform)
		if p.ID == selected {
			style = cfg.style(cfg.styles.PlatformOn).Bold(true)
		}
		if focused && i == cursor {
			label = "[" + label + "]"
		} else {
			label = " " + label + " "
		}
		parts = append(parts, style.Render(label))
	}
	return strings.Join(parts, " ")
}

// renderToast renders the copy notification.
func renderToast(cfg renderConfig, success bool, message string) string {
	if success {
		return cfg.style(cfg.styles.ToastOK).Padding(0, 1).Render("✓ " + message)
	}
	return cfg.style(cfg.styles.ToastFailed).Padding(0, 1).Render("✗ " + message)
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
