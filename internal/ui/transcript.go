// internal/ui/transcript.go
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"compass/internal/session"
)

// transcriptRenderer formats transcript messages for the chat viewport.
// Assistant answers are markdown and go through glamour when available.
type transcriptRenderer struct {
	markdown *glamour.TermRenderer
	width    int
}

func newTranscriptRenderer(width int) *transcriptRenderer {
	r := &transcriptRenderer{width: width}
	md, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(max(width-4, 20)),
	)
	if err == nil {
		r.markdown = md
	}
	return r
}

func (r *transcriptRenderer) Render(msgs []session.Message) string {
	var sb strings.Builder

	for _, msg := range msgs {
		ts := msg.At.Format("15:04")
		header := RoleStyle(msg.Role).Render(fmt.Sprintf("[%s] %s:", ts, roleLabel(msg.Role)))
		sb.WriteString(header)
		sb.WriteString("\n")

		switch msg.Role {
		case session.RoleAssistant:
			sb.WriteString(r.renderMarkdown(msg.Content))
			if sources := uniqueSources(msg.Sources); len(sources) > 0 {
				sb.WriteString("  ")
				sb.WriteString(DimStyle.Render("Sources: " + strings.Join(sources, ", ")))
				sb.WriteString("\n")
			}
		case session.RoleError:
			writeIndented(&sb, msg.Content, func(line string) string { return ErrorStyle.Render(line) })
		default:
			writeIndented(&sb, msg.Content, func(line string) string { return line })
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func (r *transcriptRenderer) renderMarkdown(content string) string {
	if r.markdown != nil {
		out, err := r.markdown.Render(content)
		if err == nil {
			return strings.Trim(out, "\n") + "\n"
		}
	}
	var sb strings.Builder
	writeIndented(&sb, content, func(line string) string { return line })
	return sb.String()
}

func writeIndented(sb *strings.Builder, content string, style func(string) string) {
	for _, line := range strings.Split(content, "\n") {
		sb.WriteString("  ")
		sb.WriteString(style(line))
		sb.WriteString("\n")
	}
}

// uniqueSources drops repeated source names, keeping first-seen order.
// The service returns one entry per retrieved chunk.
func uniqueSources(sources []string) []string {
	seen := make(map[string]bool, len(sources))
	var out []string
	for _, s := range sources {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
