// internal/documents/picker.go

// Turns what the user typed into the upload panel into file handles.
// The accept-list and sensitive-path checks here are advisory picker
// filters; the service remains the authority on what it will ingest.
package documents

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"compass/internal/session"
)

// Skipped is a path the picker left out, with the reason shown to the user
type Skipped struct {
	Path   string
	Reason string
}

// Selection is the result of resolving user input
type Selection struct {
	Files   []session.File
	Skipped []Skipped
}

// Picker resolves paths against an extension allow-list
type Picker struct {
	accept map[string]bool
}

// NewPicker creates a picker. An empty accept list lets every extension
// through.
func NewPicker(accept []string) *Picker {
	p := &Picker{accept: make(map[string]bool, len(accept))}
	for _, ext := range accept {
		p.accept[strings.ToLower(ext)] = true
	}
	return p
}

// Accept returns the allow-list in sorted order, for display
func (p *Picker) Accept() []string {
	out := make([]string, 0, len(p.accept))
	for ext := range p.accept {
		out = append(out, ext)
	}
	sort.Strings(out)
	return out
}

// Resolve expands the input into files in the order given. Globs are
// expanded in lexical order and a directory contributes its direct,
// non-hidden children.
func (p *Picker) Resolve(input string) Selection {
	var sel Selection
	for _, token := range SplitPaths(input) {
		p.resolveToken(token, &sel)
	}
	return sel
}

func (p *Picker) resolveToken(token string, sel *Selection) {
	path := expandHome(token)

	if hasGlobMeta(path) {
		matches, err := filepath.Glob(path)
		if err != nil {
			sel.Skipped = append(sel.Skipped, Skipped{Path: token, Reason: "bad pattern"})
			return
		}
		if len(matches) == 0 {
			sel.Skipped = append(sel.Skipped, Skipped{Path: token, Reason: "no matches"})
			return
		}
		for _, m := range matches {
			p.addPath(m, sel, false)
		}
		return
	}

	p.addPath(path, sel, true)
}

func (p *Picker) addPath(path string, sel *Selection, explicit bool) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		sel.Skipped = append(sel.Skipped, Skipped{Path: path, Reason: "invalid path"})
		return
	}

	if isSensitivePath(absPath) {
		sel.Skipped = append(sel.Skipped, Skipped{Path: path, Reason: "sensitive path"})
		return
	}

	info, err := os.Stat(absPath)
	if os.IsNotExist(err) {
		sel.Skipped = append(sel.Skipped, Skipped{Path: path, Reason: "not found"})
		return
	} else if err != nil {
		sel.Skipped = append(sel.Skipped, Skipped{Path: path, Reason: "cannot access"})
		return
	}

	if info.IsDir() {
		if explicit {
			p.addDir(absPath, sel)
		}
		return
	}

	if !info.Mode().IsRegular() {
		sel.Skipped = append(sel.Skipped, Skipped{Path: path, Reason: "not a regular file"})
		return
	}

	if !p.accepts(absPath) {
		sel.Skipped = append(sel.Skipped, Skipped{Path: path, Reason: "unsupported type"})
		return
	}

	sel.Files = append(sel.Files, session.File{
		Name: filepath.Base(absPath),
		Path: absPath,
		Size: info.Size(),
	})
}

// addDir adds the accepted files directly inside dir. Unaccepted files are
// dropped silently, they were never asked for by name.
func (p *Picker) addDir(dir string, sel *Selection) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		sel.Skipped = append(sel.Skipped, Skipped{Path: dir, Reason: "cannot read directory"})
		return
	}

	before := len(sel.Files)
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		full := filepath.Join(dir, name)
		if !p.accepts(full) {
			continue
		}
		p.addPath(full, sel, false)
	}
	if len(sel.Files) == before {
		sel.Skipped = append(sel.Skipped, Skipped{Path: dir, Reason: "no supported files"})
	}
}

func (p *Picker) accepts(path string) bool {
	if len(p.accept) == 0 {
		return true
	}
	return p.accept[strings.ToLower(filepath.Ext(path))]
}

// Describe renders a skip list as a single line
func Describe(skipped []Skipped) string {
	parts := make([]string, len(skipped))
	for i, s := range skipped {
		parts[i] = fmt.Sprintf("%s (%s)", s.Path, s.Reason)
	}
	return strings.Join(parts, ", ")
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

func hasGlobMeta(path string) bool {
	return strings.ContainsAny(path, "*?[")
}

// isSensitivePath reports key material and credential files. Only the
// base name and whole path components are matched, never substrings, so
// folders like "Credentials Review" pass.
func isSensitivePath(path string) bool {
	dirs := map[string]bool{".ssh": true, ".gnupg": true, ".aws": true}
	names := map[string]bool{
		".env":        true,
		".netrc":      true,
		".npmrc":      true,
		".pypirc":     true,
		"credentials": true,
	}
	exts := map[string]bool{".pem": true, ".key": true}

	parts := strings.Split(strings.ToLower(filepath.ToSlash(filepath.Clean(path))), "/")
	for i, part := range parts[:len(parts)-1] {
		if dirs[part] || (part == "gcloud" && i > 0 && parts[i-1] == ".config") {
			return true
		}
	}

	base := parts[len(parts)-1]
	if names[base] || exts[filepath.Ext(base)] {
		return true
	}
	if base == "shadow" && len(parts) >= 2 && parts[len(parts)-2] == "etc" {
		return true
	}
	for _, prefix := range []string{"id_rsa", "id_ed25519", "id_ecdsa"} {
		if strings.HasPrefix(base, prefix) {
			return true
		}
	}
	return false
}
