// Package commands handles slash command parsing for the compass TUI.
package commands

import (
	"strings"
)

// Command interface for all command types
type Command interface {
	Type() string
}

// Help toggles the help overlay
type Help struct{}

func (Help) Type() string { return "help" }

// Health pings the document service
type Health struct{}

func (Health) Type() string { return "health" }

// Select stages files for upload, replacing the current selection
type Select struct {
	Paths string
}

func (Select) Type() string { return "select" }

// Upload submits the staged files
type Upload struct{}

func (Upload) Type() string { return "upload" }

// ListFiles lists the staged files
type ListFiles struct{}

func (ListFiles) Type() string { return "files" }

// Quit exits the program
type Quit struct{}

func (Quit) Type() string { return "quit" }

// ParseError represents a command parsing error
type ParseError struct {
	Message string
}

func (ParseError) Type() string { return "error" }

// Parse parses user input and returns the appropriate Command.
// Returns nil if the input is not a slash command, i.e. it is a question.
func Parse(input string) Command {
	input = strings.TrimSpace(input)
	if !strings.HasPrefix(input, "/") {
		return nil
	}

	parts := strings.Fields(input)
	if len(parts) == 0 {
		return nil
	}

	cmd := strings.ToLower(parts[0])
	rest := strings.TrimSpace(strings.TrimPrefix(input, parts[0]))

	switch cmd {
	case "/help", "/?":
		return Help{}

	case "/health":
		return Health{}

	case "/select":
		if rest == "" {
			return ParseError{Message: "/select requires one or more paths"}
		}
		return Select{Paths: rest}

	case "/upload":
		return Upload{}

	case "/files":
		return ListFiles{}

	case "/quit", "/exit":
		return Quit{}

	default:
		return ParseError{Message: "unknown command: " + cmd}
	}
}

// HelpText returns the help text for all available commands.
func HelpText() string {
	return `Available commands:
  /help              - Show this help
  /select <paths>    - Stage files for upload (globs and directories ok)
  /upload            - Upload the staged files
  /files             - List the staged files
  /health            - Check the document service
  /quit              - Exit compass`
}
