// internal/ui/help.go
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Help overlay content and rendering

var (
	helpTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Cyan).
			MarginBottom(1)

	helpSectionStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(Yellow).
				MarginTop(1)

	helpKeyStyle = lipgloss.NewStyle().
			Foreground(Green).
			Bold(true)

	helpCmdStyle = lipgloss.NewStyle().
			Foreground(Magenta)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(White)

	helpDimStyle = lipgloss.NewStyle().
			Foreground(Dim)
)

// HelpContent returns the formatted help overlay content
func HelpContent(width, height int) string {
	var content strings.Builder

	content.WriteString(helpTitleStyle.Render("COMPASS HELP"))
	content.WriteString("\n\n")

	content.WriteString(helpSectionStyle.Render("KEYBINDINGS"))
	content.WriteString("\n\n")

	keybindings := []struct {
		key  string
		desc string
	}{
		{"Tab", "Switch between Upload and Chat"},
		{"Enter (Upload)", "Select the typed paths; on an empty line, upload"},
		{"Ctrl+U", "Upload the selected files"},
		{"Enter (Chat)", "Ask the typed question or run a /command"},
		{"PgUp / PgDn", "Scroll the transcript"},
		{"F1", "Toggle this help overlay"},
		{"Esc", "Close help"},
		{"Ctrl+C / Ctrl+Q", "Quit compass"},
	}

	for _, kb := range keybindings {
		key := helpKeyStyle.Width(16).Render(kb.key)
		desc := helpDescStyle.Render(kb.desc)
		content.WriteString("  " + key + "  " + desc + "\n")
	}

	content.WriteString("\n")
	content.WriteString(helpSectionStyle.Render("SLASH COMMANDS"))
	content.WriteString("\n\n")

	commands := []struct {
		cmd  string
		desc string
	}{
		{"/help", "Show this help overlay"},
		{"/select <paths>", "Stage files, globs or folders for upload"},
		{"/upload", "Upload the staged files"},
		{"/files", "List the staged files"},
		{"/health", "Check the document service"},
		{"/quit", "Exit compass"},
	}

	for _, cmd := range commands {
		cmdStr := helpCmdStyle.Width(18).Render(cmd.cmd)
		desc := helpDescStyle.Render(cmd.desc)
		content.WriteString("  " + cmdStr + "  " + desc + "\n")
	}

	content.WriteString("\n")
	content.WriteString(helpSectionStyle.Render("HOW IT WORKS"))
	content.WriteString("\n\n")

	howto := []string{
		"1. Select PDF, TXT or MD documents in the Upload panel",
		"2. Upload them as one batch; the service indexes them",
		"3. Chat unlocks after the first successful upload",
		"4. Each answer is grounded in the uploaded documents",
		"",
		"One question at a time: wait for the answer before asking again.",
		"The transcript lives only as long as this session.",
	}

	for _, line := range howto {
		if line == "" {
			content.WriteString("\n")
		} else {
			content.WriteString("  " + helpDimStyle.Render(line) + "\n")
		}
	}

	content.WriteString("\n")
	footer := helpDimStyle.Render("Press F1 or Esc to close this help")
	content.WriteString(lipgloss.PlaceHorizontal(max(width-8, 1), lipgloss.Center, footer))

	overlayStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Cyan).
		Padding(1, 3).
		MaxWidth(max(width-10, 20)).
		MaxHeight(max(height-4, 10))

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		overlayStyle.Render(content.String()),
	)
}

// renderHelp renders the help overlay (called from app.go)
func (m Model) renderHelp() string {
	return HelpContent(m.width, m.height)
}
