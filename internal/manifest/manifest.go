// Package manifest provides read/write access to the TOML project manifest
// edited by the release pipeline.
//
// The manifest (typically pyproject.toml) is treated as an opaque text
// document: TOML parsing is delegated to pelletier/go-toml for lookups, and
// fields are addressed by dotted keys such as "project.version". Writes
// replace only the addressed value inside the retained raw bytes, so
// comments, key order, and quoting elsewhere in the file survive a version
// bump untouched.
//
// The raw file contents are retained alongside the decoded tree so the CLI
// can print the manifest verbatim for operator verification before and
// after a version bump.
package manifest

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Manifest is a loaded TOML manifest bound to its file path.
type Manifest struct {
	path string
	raw  []byte
	tree map[string]any
}

// Load reads and decodes the manifest at path. Returns an error when the
// file is missing or not valid TOML.
func Load(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	tree := make(map[string]any)
	if err := toml.Unmarshal(raw, &tree); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}

	return &Manifest{path: path, raw: raw, tree: tree}, nil
}

// Path returns the file path the manifest was loaded from.
func (m *Manifest) Path() string {
	return m.path
}

// Contents returns the manifest text as last read from or written to disk.
// Used to print the document for operator verification.
func (m *Manifest) Contents() string {
	return string(m.raw)
}

// Get returns the string value at the dotted key (e.g. "project.version").
// Returns an error when any intermediate table is missing, the key is
// absent, or the value is not a string.
func (m *Manifest) Get(key string) (string, error) {
	table, leaf, err := m.resolve(key)
	if err != nil {
		return "", err
	}

	value, ok := table[leaf]
	if !ok {
		return "", fmt.Errorf("manifest %s has no field %q", m.path, key)
	}
	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("manifest field %q is not a string (got %T)", key, value)
	}
	return s, nil
}

// Set updates the string value at the dotted key in memory. The value is
// replaced in place inside the raw document text, scoped to the table the
// key lives in, so nothing else in the file changes. Intermediate tables
// must already exist; the release flow never invents manifest structure.
// Call Save to persist the change.
func (m *Manifest) Set(key, value string) error {
	table, leaf, err := m.resolve(key)
	if err != nil {
		return err
	}
	old, err := m.Get(key)
	if err != nil {
		return err
	}

	edited, err := replaceValue(m.raw, key, leaf, old, value)
	if err != nil {
		return fmt.Errorf("manifest %s: %w", m.path, err)
	}
	m.raw = edited
	table[leaf] = value
	return nil
}

// Save writes the manifest text back to its file, overwriting it in place.
// Comments, ordering, and formatting are preserved because edits only ever
// touch the addressed value.
func (m *Manifest) Save() error {
	if err := os.WriteFile(m.path, m.raw, 0o644); err != nil {
		return fmt.Errorf("failed to write manifest %s: %w", m.path, err)
	}
	return nil
}

var tableHeader = regexp.MustCompile(`^\s*\[\[?\s*([^\]]*?)\s*\]?\]`)

// replaceValue rewrites the quoted value of leaf within the table named by
// key's parent segments, leaving every other byte of the document alone.
// The existing quote style is kept. Returns an error when the assignment
// cannot be located, e.g. for values inside inline tables.
func replaceValue(raw []byte, key, leaf, old, value string) ([]byte, error) {
	segments := strings.Split(key, ".")
	tablePath := strings.Join(segments[:len(segments)-1], ".")

	assignment := regexp.MustCompile(
		`^(\s*` + regexp.QuoteMeta(leaf) + `\s*=\s*)(["'])` + regexp.QuoteMeta(old) + `(["'])`)

	lines := strings.Split(string(raw), "\n")
	currentTable := ""
	for i, line := range lines {
		if h := tableHeader.FindStringSubmatch(line); h != nil {
			currentTable = h[1]
			continue
		}
		if currentTable != tablePath {
			continue
		}
		if a := assignment.FindStringSubmatch(line); a != nil {
			lines[i] = a[1] + a[2] + value + a[3] + line[len(a[0]):]
			return []byte(strings.Join(lines, "\n")), nil
		}
	}
	return nil, fmt.Errorf("cannot locate %q = %q for in-place edit", key, old)
}

// resolve walks the dotted key down to its parent table and returns the
// table plus the leaf key name.
func (m *Manifest) resolve(key string) (map[string]any, string, error) {
	segments := strings.Split(key, ".")
	if len(segments) == 0 || key == "" {
		return nil, "", fmt.Errorf("manifest key cannot be empty")
	}

	current := m.tree
	for _, segment := range segments[:len(segments)-1] {
		next, ok := current[segment]
		if !ok {
			return nil, "", fmt.Errorf("manifest %s has no table %q (key %q)", m.path, segment, key)
		}
		table, ok := next.(map[string]any)
		if !ok {
			return nil, "", fmt.Errorf("manifest entry %q is not a table (key %q)", segment, key)
		}
		current = table
	}

	return current, segments[len(segments)-1], nil
}
