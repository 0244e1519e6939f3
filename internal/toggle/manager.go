// Package toggle implements the core jsontoggle behavior: switching
// subtrees of a JSON document out of and back into the file.
//
// Toggling a path OUT stores the node's current raw JSON value in a file
// under the toggles directory and deletes the node from the document.
// Toggling the same path again restores the stored value into the document
// and removes the toggle file. The toggle files double as the record of
// which paths are currently toggled out, so state survives restarts without
// any extra bookkeeping.
package toggle

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mintyPT/jsontoggle/internal/document"
)

// toggleSeparator replaces dots in toggle file names. Dotted paths map to
// file names reversibly as long as document keys never contain two
// consecutive underscores.
const toggleSeparator = "__"

// Manager toggles nodes of one JSON document, persisting removed values
// under togglesDir.
type Manager struct {
	doc        *document.Document
	togglesDir string
}

// NewManager loads the document at docPath and ensures togglesDir exists.
func NewManager(docPath, togglesDir string) (*Manager, error) {
	doc, err := document.Load(docPath)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(togglesDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create toggles directory %s: %w", togglesDir, err)
	}
	return &Manager{doc: doc, togglesDir: togglesDir}, nil
}

// Document exposes the managed document for rendering.
func (m *Manager) Document() *document.Document {
	return m.doc
}

// Toggle switches the node at path between present and toggled-out.
// Returns a human-readable message describing what happened.
func (m *Manager) Toggle(path string) (string, error) {
	toggleFile := m.toggleFilePath(path)

	if _, err := os.Stat(toggleFile); err == nil {
		return m.restore(path, toggleFile)
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("failed to check toggle file %s: %w", toggleFile, err)
	}
	return m.remove(path, toggleFile)
}

// remove toggles a node out: its raw value goes to the toggle file, the
// node leaves the document. Array elements are nulled instead of deleted so
// sibling indices stay stable and the restore is lossless.
func (m *Manager) remove(path, toggleFile string) (string, error) {
	node, ok := m.doc.Get(path)
	if !ok {
		return "", fmt.Errorf("cannot toggle %q: path does not exist in %s", path, m.doc.Path())
	}

	if err := os.WriteFile(toggleFile, []byte(node.Raw), 0o644); err != nil {
		return "", fmt.Errorf("failed to store toggled value: %w", err)
	}

	var err error
	if m.isArrayElement(path) {
		err = m.doc.SetRaw(path, []byte("null"))
	} else {
		err = m.doc.Delete(path)
	}
	if err != nil {
		// The document was not modified; drop the orphaned toggle file.
		os.Remove(toggleFile)
		return "", err
	}
	if err := m.doc.Save(); err != nil {
		return "", err
	}

	return fmt.Sprintf("Toggled out: %s (stored in %s)", path, filepath.Base(toggleFile)), nil
}

// isArrayElement reports whether path addresses an element of an array.
func (m *Manager) isArrayElement(path string) bool {
	idx := strings.LastIndex(path, ".")
	if idx < 0 {
		return false
	}
	parent, ok := m.doc.Get(path[:idx])
	return ok && parent.IsArray()
}

// restore toggles a node back in from its stored value.
func (m *Manager) restore(path, toggleFile string) (string, error) {
	raw, err := os.ReadFile(toggleFile)
	if err != nil {
		return "", fmt.Errorf("failed to read toggle file %s: %w", toggleFile, err)
	}

	if err := m.doc.SetRaw(path, raw); err != nil {
		return "", err
	}
	if err := m.doc.Save(); err != nil {
		return "", err
	}
	if err := os.Remove(toggleFile); err != nil {
		return "", fmt.Errorf("failed to remove toggle file %s: %w", toggleFile, err)
	}

	return fmt.Sprintf("Reverted: %s", path), nil
}

// Active reports whether the node at path is currently toggled out.
func (m *Manager) Active(path string) bool {
	_, err := os.Stat(m.toggleFilePath(path))
	return err == nil
}

// List returns the sorted paths currently toggled out, reconstructed from
// the toggle file names.
func (m *Manager) List() ([]string, error) {
	entries, err := os.ReadDir(m.togglesDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read toggles directory %s: %w", m.togglesDir, err)
	}

	var paths []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		stem := strings.TrimSuffix(name, ".json")
		paths = append(paths, strings.ReplaceAll(stem, toggleSeparator, "."))
	}
	sort.Strings(paths)
	return paths, nil
}

// toggleFilePath maps a dotted path to its storage file under togglesDir.
func (m *Manager) toggleFilePath(path string) string {
	return filepath.Join(m.togglesDir, strings.ReplaceAll(path, ".", toggleSeparator)+".json")
}
