package commands

import (
	"strings"
	"testing"
)

func TestParse_NonSlashCommand(t *testing.T) {
	tests := []string{
		"What is the termination clause?",
		"",
		"   ",
		"help",
		"upload the lease",
		"and/or indemnity",
	}

	for _, input := range tests {
		result := Parse(input)
		if result != nil {
			t.Errorf("Parse(%q) = %v, want nil", input, result)
		}
	}
}

func TestParse_Help(t *testing.T) {
	tests := []string{
		"/help",
		"/HELP",
		"/Help",
		"  /help  ",
		"/?",
		"/help extra args ignored",
	}

	for _, input := range tests {
		result := Parse(input)
		if result == nil {
			t.Errorf("Parse(%q) = nil, want Help{}", input)
			continue
		}
		if _, ok := result.(Help); !ok {
			t.Errorf("Parse(%q) = %T, want Help", input, result)
		}
		if result.Type() != "help" {
			t.Errorf("Parse(%q).Type() = %q, want %q", input, result.Type(), "help")
		}
	}
}

func TestParse_Select(t *testing.T) {
	tests := []struct {
		input     string
		wantPaths string
	}{
		{"/select a.pdf", "a.pdf"},
		{"/SELECT a.pdf b.md", "a.pdf b.md"},
		{`  /select "my lease.pdf"  `, `"my lease.pdf"`},
		{"/select ~/contracts/*.pdf, notes.txt", "~/contracts/*.pdf, notes.txt"},
	}

	for _, tt := range tests {
		result := Parse(tt.input)
		sel, ok := result.(Select)
		if !ok {
			t.Errorf("Parse(%q) = %T, want Select", tt.input, result)
			continue
		}
		if sel.Paths != tt.wantPaths {
			t.Errorf("Parse(%q).Paths = %q, want %q", tt.input, sel.Paths, tt.wantPaths)
		}
	}
}

func TestParse_SelectRequiresPaths(t *testing.T) {
	result := Parse("/select   ")
	perr, ok := result.(ParseError)
	if !ok {
		t.Fatalf("Parse(/select) = %T, want ParseError", result)
	}
	if !strings.Contains(perr.Message, "requires") {
		t.Errorf("unexpected message %q", perr.Message)
	}
}

func TestParse_SimpleCommands(t *testing.T) {
	tests := []struct {
		input    string
		wantType string
	}{
		{"/upload", "upload"},
		{"/files", "files"},
		{"/health", "health"},
		{"/quit", "quit"},
		{"/exit", "quit"},
	}

	for _, tt := range tests {
		result := Parse(tt.input)
		if result == nil {
			t.Errorf("Parse(%q) = nil", tt.input)
			continue
		}
		if result.Type() != tt.wantType {
			t.Errorf("Parse(%q).Type() = %q, want %q", tt.input, result.Type(), tt.wantType)
		}
	}
}

func TestParse_Unknown(t *testing.T) {
	result := Parse("/consensus")
	perr, ok := result.(ParseError)
	if !ok {
		t.Fatalf("Parse(/consensus) = %T, want ParseError", result)
	}
	if perr.Message != "unknown command: /consensus" {
		t.Errorf("unexpected message %q", perr.Message)
	}
	if perr.Type() != "error" {
		t.Errorf("ParseError.Type() = %q", perr.Type())
	}
}

func TestHelpTextListsCommands(t *testing.T) {
	text := HelpText()
	for _, cmd := range []string{"/help", "/select", "/upload", "/files", "/health", "/quit"} {
		if !strings.Contains(text, cmd) {
			t.Errorf("HelpText missing %s", cmd)
		}
	}
}
