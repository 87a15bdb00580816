// internal/ui/app.go

// The page: upload and chat panels side by side, owned by one Session.
package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"compass/internal/commands"
	"compass/internal/documents"
	"compass/internal/logger"
	"compass/internal/session"
)

type focus int

const (
	focusUpload focus = iota
	focusChat
)

// stackedWidth is the terminal width below which panels stack vertically
const stackedWidth = 100

// Options configures the page
type Options struct {
	Service session.Service
	Health  HealthChecker // optional
	Accept  []string      // picker allow-list
	BaseURL string        // shown in the header
}

type Model struct {
	ctx     context.Context
	session *session.Session
	health  HealthChecker
	baseURL string

	upload *uploadPanel
	chat   *chatPanel

	focus    focus
	keys     keyMap
	help     help.Model
	showHelp bool

	healthStatus string
	healthErr    error
	checking     bool

	width, height int
	ready         bool
}

func New(opts Options) Model {
	sess := session.NewSession(opts.Service)

	m := Model{
		ctx:     context.Background(),
		session: sess,
		health:  opts.Health,
		baseURL: opts.BaseURL,
		upload:  newUploadPanel(sess.Upload(), documents.NewPicker(opts.Accept)),
		chat:    newChatPanel(sess.Chat()),
		keys:    defaultKeyMap(),
		help:    help.New(),
	}
	m.upload.input.Focus()
	return m
}

func (m Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.health != nil {
		cmds = append(cmds, checkHealth(m.health))
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.layout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.chat.viewport, cmd = m.chat.viewport.Update(msg)
		return m, cmd

	case uploadDoneMsg:
		if ev := m.session.ResolveUpload(msg.Result); ev != nil {
			logger.Infof("ui: %d document(s) ingested", ev.Count)
		}
		m.chat.refresh()
		return m, nil

	case answerMsg:
		m.chat.resolve(msg.Result)
		return m, nil

	case healthMsg:
		m.checking = false
		m.healthStatus = msg.Status
		m.healthErr = msg.Err
		if msg.Err != nil {
			logger.Warnf("ui: health check failed: %v", msg.Err)
		}
		return m, nil

	case spinner.TickMsg:
		var cmds []tea.Cmd
		if m.session.Upload().Uploading() {
			var cmd tea.Cmd
			m.upload.spinner, cmd = m.upload.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
		if m.session.Chat().InFlight() {
			var cmd tea.Cmd
			m.chat.spinner, cmd = m.chat.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}

	if m.showHelp {
		if key.Matches(msg, m.keys.Help, m.keys.Close) {
			m.showHelp = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.SwitchPanel):
		if m.focus == focusUpload {
			m.setFocus(focusChat)
		} else {
			m.setFocus(focusUpload)
		}
		return m, nil

	case key.Matches(msg, m.keys.Upload):
		return m, m.upload.startUpload(m.ctx)

	case key.Matches(msg, m.keys.ScrollUp):
		m.chat.viewport.HalfViewUp()
		return m, nil

	case key.Matches(msg, m.keys.ScrollDown):
		m.chat.viewport.HalfViewDown()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		if m.focus == focusUpload {
			return m, m.upload.handleEnter(m.ctx)
		}
		return m.submitChat()
	}

	var cmd tea.Cmd
	if m.focus == focusUpload {
		m.upload.input, cmd = m.upload.input.Update(msg)
	} else {
		m.chat.input, cmd = m.chat.input.Update(msg)
	}
	return m, cmd
}

// submitChat runs a slash command or asks the typed question.
func (m Model) submitChat() (tea.Model, tea.Cmd) {
	value := m.chat.input.Value()

	cmd := commands.Parse(value)
	if cmd == nil {
		return m, m.chat.ask(m.ctx, value)
	}

	m.chat.input.Reset()
	m.chat.notice = ""

	switch c := cmd.(type) {
	case commands.Help:
		m.showHelp = true
	case commands.Quit:
		return m, tea.Quit
	case commands.Health:
		if m.health == nil {
			m.chat.notice = "Health check not available"
			return m, nil
		}
		m.checking = true
		return m, checkHealth(m.health)
	case commands.Select:
		if !m.upload.selectPaths(c.Paths) {
			m.chat.notice = uploadBusyNotice
			return m, nil
		}
		m.chat.notice = describeSelection(m.session.Upload().Files())
	case commands.Upload:
		return m, m.upload.startUpload(m.ctx)
	case commands.ListFiles:
		m.chat.notice = describeSelection(m.session.Upload().Files())
	case commands.ParseError:
		m.chat.notice = c.Message
	}
	return m, nil
}

func describeSelection(files []session.File) string {
	if len(files) == 0 {
		return "No files selected"
	}
	names := make([]string, len(files))
	for i, f := range files {
		names[i] = f.Name
	}
	return fmt.Sprintf("%d file(s) selected: %s", len(files), strings.Join(names, ", "))
}

func (m *Model) setFocus(f focus) {
	m.focus = f
	if f == focusUpload {
		m.chat.input.Blur()
		m.upload.input.Focus()
	} else {
		m.upload.input.Blur()
		m.chat.input.Focus()
	}
}

// layout sizes the panels: side by side on wide terminals, stacked
// otherwise.
func (m *Model) layout() {
	bodyHeight := max(m.height-headerHeight-1, 10)
	m.help.Width = m.width

	if m.width >= stackedWidth {
		left := m.width * 2 / 5
		m.upload.SetSize(left, bodyHeight)
		m.chat.SetSize(m.width-left, bodyHeight)
		return
	}

	uploadHeight := max(bodyHeight*2/5, 12)
	m.upload.SetSize(m.width, uploadHeight)
	m.chat.SetSize(m.width, max(bodyHeight-uploadHeight, 10))
}

const headerHeight = 3

func (m Model) renderHeader() string {
	title := TitleStyle.Render("Digital Legal Compass")
	subtitle := SubtitleStyle.Render("RAG-powered legal document assistant")

	var status string
	switch {
	case m.health == nil:
		status = DimStyle.Render("○ " + m.baseURL)
	case m.checking:
		status = DimStyle.Render("○ checking " + m.baseURL)
	case m.healthErr != nil:
		status = StatusCrit.Render("✗ unreachable ") + DimStyle.Render(m.baseURL)
	case m.healthStatus != "":
		status = StatusOK.Render("● "+m.healthStatus+" ") + DimStyle.Render(m.baseURL)
	default:
		status = DimStyle.Render("○ " + m.baseURL)
	}

	docs := DimStyle.Render("no documents")
	if m.session.DocumentsAvailable() {
		docs = StatusOK.Render("documents ready")
	}

	left := lipgloss.JoinVertical(lipgloss.Left, title, subtitle)
	right := lipgloss.JoinVertical(lipgloss.Right, status, docs)
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, strings.Repeat(" ", gap), right) + "\n"
}

func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	uploadView := m.upload.View(m.focus == focusUpload)
	chatView := m.chat.View(m.focus == focusChat)

	var body string
	if m.width >= stackedWidth {
		body = lipgloss.JoinHorizontal(lipgloss.Top, uploadView, chatView)
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, uploadView, chatView)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		body,
		m.help.View(m.keys),
	)
}
