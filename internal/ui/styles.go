package ui

import (
	"github.com/charmbracelet/lipgloss"

	"compass/internal/session"
)

var (
	// Colors
	Cyan     = lipgloss.Color("#00FFFF")
	Green    = lipgloss.Color("#00FF00")
	Yellow   = lipgloss.Color("#FFD700")
	Orange   = lipgloss.Color("#FFA500")
	Red      = lipgloss.Color("#FF6B6B")
	Magenta  = lipgloss.Color("#FF00FF")
	SkyBlue  = lipgloss.Color("#87CEEB")
	Dim      = lipgloss.Color("#555555")
	White    = lipgloss.Color("#FFFFFF")
	DarkGray = lipgloss.Color("#333333")

	// Role colors
	UserColor      = SkyBlue
	AssistantColor = Cyan
	ErrorColor     = Red

	// Box styles
	ActiveBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Cyan)

	InactiveBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Dim)

	// Text styles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Cyan)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(Dim).
			Italic(true)

	UserStyle = lipgloss.NewStyle().
			Foreground(SkyBlue).
			Bold(true)

	SystemStyle = lipgloss.NewStyle().
			Foreground(Yellow)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green).
			Bold(true)

	DimStyle = lipgloss.NewStyle().
			Foreground(Dim)

	// Status indicators
	StatusOK   = lipgloss.NewStyle().Foreground(Green).Bold(true)
	StatusWarn = lipgloss.NewStyle().Foreground(Orange).Bold(true)
	StatusCrit = lipgloss.NewStyle().Foreground(Red).Bold(true)

	// Banner styles for inline notices
	WarnBanner = lipgloss.NewStyle().
			Foreground(Yellow).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(Yellow).
			PaddingLeft(1)

	ErrorBanner = lipgloss.NewStyle().
			Foreground(Red).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(Red).
			PaddingLeft(1)

	SuccessBanner = lipgloss.NewStyle().
			Foreground(Green).
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(Green).
			PaddingLeft(1)
)

// RoleStyle returns the header style for a transcript role
func RoleStyle(role session.Role) lipgloss.Style {
	switch role {
	case session.RoleUser:
		return UserStyle
	case session.RoleAssistant:
		return lipgloss.NewStyle().Foreground(AssistantColor).Bold(true)
	case session.RoleError:
		return ErrorStyle
	default:
		return lipgloss.NewStyle().Foreground(White)
	}
}

func roleLabel(role session.Role) string {
	switch role {
	case session.RoleUser:
		return "You"
	case session.RoleAssistant:
		return "Compass"
	case session.RoleError:
		return "Error"
	default:
		return role.String()
	}
}
