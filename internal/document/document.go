// Package document provides dotted-path access to JSON documents on disk.
//
// A Document wraps the raw bytes of a JSON file and exposes get/set/delete
// operations addressed by gjson-style dotted paths ("settings.theme",
// "users.0.name" for array elements). Path lookup is delegated to
// tidwall/gjson and mutation to tidwall/sjson; the package never walks JSON
// structures by hand.
//
// The toggle manager and the TUI both operate on Documents: the manager
// removes and restores subtrees, the TUI walks the tree to render it.
package document

import (
	"fmt"
	"os"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
)

// Document is a JSON file held in memory as raw bytes, bound to its path.
type Document struct {
	path string
	data []byte
}

// Load reads and validates the JSON document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", path, err)
	}
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("document %s is not valid JSON", path)
	}
	return &Document{path: path, data: data}, nil
}

// Path returns the file path the document was loaded from.
func (d *Document) Path() string {
	return d.path
}

// Bytes returns the current document contents.
func (d *Document) Bytes() []byte {
	return d.data
}

// Root returns the parsed root of the document for traversal.
func (d *Document) Root() gjson.Result {
	return gjson.ParseBytes(d.data)
}

// Get returns the node at the dotted path and whether it exists.
func (d *Document) Get(path string) (gjson.Result, bool) {
	res := gjson.GetBytes(d.data, path)
	return res, res.Exists()
}

// Has reports whether a node exists at the dotted path.
func (d *Document) Has(path string) bool {
	return gjson.GetBytes(d.data, path).Exists()
}

// SetRaw replaces the node at the dotted path with the given raw JSON
// value, creating the node if it does not exist.
func (d *Document) SetRaw(path string, raw []byte) error {
	data, err := sjson.SetRawBytes(d.data, path, raw)
	if err != nil {
		return fmt.Errorf("failed to set %q in %s: %w", path, d.path, err)
	}
	d.data = data
	return nil
}

// Delete removes the node at the dotted path. Deleting a missing path is an
// error so callers can't silently toggle nothing.
func (d *Document) Delete(path string) error {
	if !d.Has(path) {
		return fmt.Errorf("document %s has no node at %q", d.path, path)
	}
	data, err := sjson.DeleteBytes(d.data, path)
	if err != nil {
		return fmt.Errorf("failed to delete %q from %s: %w", path, d.path, err)
	}
	d.data = data
	return nil
}

// Save writes the document back to its file, pretty-printed with two-space
// indentation to match how the documents are usually authored.
func (d *Document) Save() error {
	out := pretty.PrettyOptions(d.data, &pretty.Options{Indent: "  "})
	if err := os.WriteFile(d.path, out, 0o644); err != nil {
		return fmt.Errorf("failed to write document %s: %w", d.path, err)
	}
	d.data = out
	return nil
}
