package cmdref

import (
	"fmt"
	"strings"
)

// Formatter renders a command as text for display.
type Formatter interface {
	Format(cmd Command) string
}

// MarkdownFormatter implements Formatter, producing a markdown document
// suitable for a terminal markdown renderer.
type MarkdownFormatter struct{}

// Format renders the command as markdown.
func (f *MarkdownFormatter) Format(cmd Command) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# %s\n\n", cmd.Name))
	if cmd.Subtitle != "" {
		sb.WriteString(fmt.Sprintf("*%s*\n\n", cmd.Subtitle))
	}

	sb.WriteString(fmt.Sprintf("**Safety:** %s", cmd.Safety))
	if len(cmd.Platforms) > 0 {
		names := make([]string, 0, len(cmd.Platforms))
		for _, p := range cmd.Platforms {
			names = append(names, p.Name)
		}
		sb.WriteString(fmt.Sprintf(" · **Platforms:** %s", strings.Join(names, ", ")))
	}
	sb.WriteString("\n\n")

	if cmd.Description != "" {
		sb.WriteString(cmd.Description)
		sb.WriteString("\n\n")
	}

	sb.WriteString("## Syntax\n\n")
	writeCodeBlock(&sb, cmd.SyntaxPattern)

	if len(cmd.Warnings) > 0 {
		sb.WriteString("## Warnings\n\n")
		writeList(&sb, cmd.Warnings)
	}

	if len(cmd.CommonFlags) > 0 {
		sb.WriteString("## Common flags\n\n")
		sb.WriteString("| Flag | Description |\n")
		sb.WriteString("|------|-------------|\n")
		for _, fl := range cmd.CommonFlags {
			sb.WriteString(fmt.Sprintf("| `%s` | %s |\n", fl.Flag, escapeCell(fl.Description)))
		}
		sb.WriteString("\n")
	}

	if len(cmd.Examples) > 0 {
		sb.WriteString("## Examples\n\n")
		for i, ex := range cmd.Examples {
			title := ex.Title
			if title == "" {
				title = fmt.Sprintf("Example %d", i+1)
			}
			sb.WriteString(fmt.Sprintf("**%d. %s**\n\n", i+1, title))
			writeCodeBlock(&sb, ex.Command)
			if ex.Description != "" {
				sb.WriteString(ex.Description)
				sb.WriteString("\n\n")
			}
		}
	}

	if len(cmd.Prerequisites) > 0 {
		sb.WriteString("## Prerequisites\n\n")
		writeList(&sb, cmd.Prerequisites)
	}

	if len(cmd.Notes) > 0 {
		sb.WriteString("## Notes\n\n")
		writeList(&sb, cmd.Notes)
	}

	if len(cmd.RelatedCommands) > 0 {
		sb.WriteString("## Related\n\n")
		related := make([]string, 0, len(cmd.RelatedCommands))
		for _, r := range cmd.RelatedCommands {
			related = append(related, "`"+r+"`")
		}
		sb.WriteString(strings.Join(related, ", "))
		sb.WriteString("\n\n")
	}

	if cmd.ManPageURL != "" {
		sb.WriteString(fmt.Sprintf("[Manual page](%s)\n", cmd.ManPageURL))
	}

	return sb.String()
}

func writeCodeBlock(sb *strings.Builder, code string) {
	sb.WriteString("```sh\n")
	sb.WriteString(strings.TrimSuffix(code, "\n"))
	sb.WriteString("\n```\n\n")
}

func writeList(sb *strings.Builder, items []string) {
	for _, item := range items {
		sb.WriteString("- ")
		sb.WriteString(item)
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
}

// escapeCell keeps pipes from splitting a markdown table cell.
func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
