// internal/ui/chat.go
package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"compass/internal/session"
)

const (
	gatedHint = "Please upload documents first to start chatting"
	emptyHint = "Ask a question about your uploaded legal documents"
)

// chatPanel is the transcript + question input half of the page
type chatPanel struct {
	ctl      *session.ChatController
	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model
	renderer *transcriptRenderer
	notice   string // output of slash commands; never part of the transcript
	width    int
	height   int
}

func newChatPanel(ctl *session.ChatController) *chatPanel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 4096

	vp := viewport.New(40, 10)
	vp.Style = lipgloss.NewStyle()
	vp.MouseWheelEnabled = true

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = StatusWarn

	p := &chatPanel{
		ctl:      ctl,
		input:    ti,
		viewport: vp,
		spinner:  sp,
		renderer: newTranscriptRenderer(40),
	}
	p.syncPlaceholder()
	return p
}

func (p *chatPanel) SetSize(width, height int) {
	resized := width != p.width
	p.width = width
	p.height = height
	p.input.Width = max(width-8, 10)
	p.viewport.Width = max(width-4, 10)
	p.viewport.Height = max(height-10, 3)
	if resized {
		p.renderer = newTranscriptRenderer(p.viewport.Width)
	}
	p.refresh()
}

// refresh re-renders the transcript and keeps the newest message in view
func (p *chatPanel) refresh() {
	p.syncPlaceholder()
	p.viewport.SetContent(p.renderer.Render(p.ctl.Transcript().Messages()))
	p.viewport.GotoBottom()
}

func (p *chatPanel) syncPlaceholder() {
	switch {
	case p.ctl.Disabled():
		p.input.Placeholder = "Upload documents first (/select, /upload)"
	case p.ctl.InFlight():
		p.input.Placeholder = "Waiting for the answer..."
	default:
		p.input.Placeholder = "Ask a question..."
	}
}

// ask hands the question to the controller. The input is cleared only when
// the controller accepted it.
func (p *chatPanel) ask(ctx context.Context, question string) tea.Cmd {
	call, err := p.ctl.Ask(ctx, question)
	if err != nil {
		p.syncPlaceholder()
		return nil
	}
	p.input.Reset()
	p.notice = ""
	p.refresh()
	return tea.Batch(runAsk(call), p.spinner.Tick)
}

func (p *chatPanel) resolve(res session.ChatResult) {
	p.ctl.Resolve(res)
	p.refresh()
}

func (p *chatPanel) View(focused bool) string {
	var sb strings.Builder

	sb.WriteString(TitleStyle.Render("CHAT"))
	sb.WriteString("\n")
	sb.WriteString(SubtitleStyle.Render("Ask questions about your documents"))
	sb.WriteString("\n\n")

	disabled := p.ctl.Disabled()
	if disabled {
		sb.WriteString(WarnBanner.Render(gatedHint))
		sb.WriteString("\n\n")
	}

	if p.ctl.Transcript().Len() == 0 {
		if !disabled {
			sb.WriteString(lipgloss.PlaceHorizontal(p.viewport.Width, lipgloss.Center, DimStyle.Render(emptyHint)))
		}
		sb.WriteString(strings.Repeat("\n", max(p.viewport.Height-1, 0)))
	} else {
		sb.WriteString(p.viewport.View())
	}
	sb.WriteString("\n")

	switch {
	case p.ctl.InFlight():
		sb.WriteString(p.spinner.View() + " " + DimStyle.Render("Thinking..."))
	case p.notice != "":
		sb.WriteString(SystemStyle.Render(p.notice))
	}
	sb.WriteString("\n")

	sb.WriteString(DimStyle.Render(strings.Repeat("─", max(p.width-4, 1))))
	sb.WriteString("\n")
	if disabled || p.ctl.InFlight() {
		sb.WriteString(DimStyle.Render(p.input.View()))
	} else {
		sb.WriteString(p.input.View())
	}

	box := InactiveBox
	if focused {
		box = ActiveBox
	}
	return box.
		Width(max(p.width-2, 10)).
		Height(max(p.height-2, 3)).
		MaxHeight(max(p.height, 5)).
		Padding(0, 1).
		Render(sb.String())
}
