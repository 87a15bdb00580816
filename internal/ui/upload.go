// internal/ui/upload.go
package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"compass/internal/documents"
	"compass/internal/session"
)

// uploadPanel is the file selection + upload half of the page
type uploadPanel struct {
	ctl     *session.UploadController
	picker  *documents.Picker
	input   textinput.Model
	spinner spinner.Model
	skipped string // paths the picker left out of the last selection
	refused string // why the last typed selection was not applied
	width   int
	height  int
}

func newUploadPanel(ctl *session.UploadController, picker *documents.Picker) *uploadPanel {
	ti := textinput.New()
	ti.Prompt = "path> "
	ti.Placeholder = "files, globs or folders"
	ti.CharLimit = 4096

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = StatusWarn

	return &uploadPanel{
		ctl:     ctl,
		picker:  picker,
		input:   ti,
		spinner: sp,
	}
}

func (p *uploadPanel) SetSize(width, height int) {
	p.width = width
	p.height = height
	p.input.Width = max(width-12, 10)
}

// uploadBusyNotice is shown when paths are typed while a batch is uploading
const uploadBusyNotice = "Upload in progress, selection unchanged"

// selectPaths resolves the typed paths and replaces the selection with
// whatever the picker let through. It reports false, keeping the typed
// paths, while an upload is running.
func (p *uploadPanel) selectPaths(input string) bool {
	sel := p.picker.Resolve(input)
	if !p.ctl.SelectFiles(sel.Files) {
		p.refused = uploadBusyNotice
		return false
	}
	p.refused = ""
	p.skipped = documents.Describe(sel.Skipped)
	p.input.Reset()
	return true
}

// startUpload submits the selection. Empty selections and double submits
// are handled by the controller and produce no command.
func (p *uploadPanel) startUpload(ctx context.Context) tea.Cmd {
	call, err := p.ctl.Submit(ctx)
	if err != nil {
		if errors.Is(err, session.ErrEmptySelection) {
			p.skipped = ""
		}
		return nil
	}
	p.refused = ""
	return tea.Batch(runUpload(call), p.spinner.Tick)
}

// handleEnter selects the typed paths, or uploads when nothing is typed.
func (p *uploadPanel) handleEnter(ctx context.Context) tea.Cmd {
	value := strings.TrimSpace(p.input.Value())
	if value == "" {
		return p.startUpload(ctx)
	}
	p.selectPaths(value)
	return nil
}

func (p *uploadPanel) View(focused bool) string {
	var sb strings.Builder

	sb.WriteString(TitleStyle.Render("UPLOAD DOCUMENTS"))
	sb.WriteString("\n")
	sb.WriteString(SubtitleStyle.Render("Select legal documents to analyze"))
	sb.WriteString("\n\n")

	sb.WriteString(p.input.View())
	sb.WriteString("\n")
	sb.WriteString(DimStyle.Render(acceptHint(p.picker.Accept())))
	sb.WriteString("\n\n")

	files := p.ctl.Files()
	if len(files) > 0 {
		sb.WriteString(SystemStyle.Render("Selected files:"))
		sb.WriteString("\n")
		nameWidth := max(p.width-16, 8)
		for _, f := range files {
			name := runewidth.Truncate(f.Name, nameWidth, "…")
			sb.WriteString(fmt.Sprintf("  • %s %s\n", name, DimStyle.Render(formatSize(f.Size))))
		}
		sb.WriteString("\n")
	}

	if p.ctl.Uploading() {
		sb.WriteString(p.spinner.View() + " " + StatusWarn.Render("Uploading..."))
		if p.refused != "" {
			sb.WriteString("\n")
			sb.WriteString(WarnBanner.Width(max(p.width-6, 10)).Render(p.refused))
		}
	} else {
		button := "[ Upload Documents ]"
		if len(files) == 0 {
			sb.WriteString(DimStyle.Render(button))
		} else {
			sb.WriteString(SuccessStyle.Render(button) + DimStyle.Render("  enter / ctrl+u"))
		}
	}
	sb.WriteString("\n")

	if notice := p.ctl.Notice(); notice != "" {
		sb.WriteString("\n")
		style := ErrorBanner
		if p.ctl.Status().Phase == session.UploadSucceeded {
			style = SuccessBanner
		}
		sb.WriteString(style.Width(max(p.width-6, 10)).Render(notice))
		sb.WriteString("\n")
	}

	if p.skipped != "" {
		sb.WriteString("\n")
		sb.WriteString(WarnBanner.Width(max(p.width-6, 10)).Render("Skipped: " + p.skipped))
		sb.WriteString("\n")
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

func acceptHint(accept []string) string {
	if len(accept) == 0 {
		return "Any file type"
	}
	exts := make([]string, len(accept))
	for i, ext := range accept {
		exts[i] = strings.ToUpper(strings.TrimPrefix(ext, "."))
	}
	if len(exts) == 1 {
		return exts[0] + " files"
	}
	return strings.Join(exts[:len(exts)-1], ", ") + ", or " + exts[len(exts)-1] + " files"
}

func formatSize(n int64) string {
	switch {
	case n < 1024:
		return fmt.Sprintf("%d B", n)
	case n < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(n)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(n)/(1024*1024))
	}
}
