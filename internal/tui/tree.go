package tui

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/mintyPT/jsontoggle/internal/toggle"
)

// node is one entry of the rendered JSON tree. Branch nodes (objects and
// arrays) can expand; leaf nodes carry a display value. Placeholder nodes
// stand in for subtrees that are currently toggled out of the document, so
// they stay selectable and can be toggled back in.
type node struct {
	label       string
	path        string
	depth       int
	leaf        bool
	value       string
	expanded    bool
	placeholder bool
	children    []*node
}

// buildTree converts the managed document into a tree of nodes, inserting
// placeholders for toggled-out paths. Top-level branches start expanded,
// nested ones collapsed.
func buildTree(mgr *toggle.Manager) []*node {
	nodes := buildChildren(mgr.Document().Root(), "", 0)

	toggled, err := mgr.List()
	if err != nil {
		return nodes
	}
	for _, path := range toggled {
		if findNode(nodes, path) != nil {
			continue
		}
		nodes = insertPlaceholder(nodes, path)
	}
	return nodes
}

// insertPlaceholder adds a selectable stand-in row for a toggled-out path,
// attached under its parent when the parent is still present and at the top
// level otherwise.
func insertPlaceholder(nodes []*node, path string) []*node {
	p := &node{
		label:       path[strings.LastIndex(path, ".")+1:],
		path:        path,
		leaf:        true,
		placeholder: true,
	}

	if idx := strings.LastIndex(path, "."); idx >= 0 {
		if parent := findNode(nodes, path[:idx]); parent != nil && !parent.leaf {
			p.depth = parent.depth + 1
			parent.children = append(parent.children, p)
			return nodes
		}
	}
	return append(nodes, p)
}

// buildChildren walks one gjson level and produces its child nodes.
// Array elements are labeled and addressed by their index.
func buildChildren(parent gjson.Result, parentPath string, depth int) []*node {
	var nodes []*node

	parent.ForEach(func(key, value gjson.Result) bool {
		label := key.String()
		path := label
		if parent.IsArray() {
			label = fmt.Sprintf("%d", len(nodes))
			path = label
		}
		if parentPath != "" {
			path = parentPath + "." + path
		}

		n := &node{
			label:    label,
			path:     path,
			depth:    depth,
			expanded: depth == 0,
		}
		if value.IsObject() || value.IsArray() {
			n.children = buildChildren(value, path, depth+1)
		} else {
			n.leaf = true
			n.value = value.Raw
		}
		nodes = append(nodes, n)
		return true
	})

	return nodes
}

// flatten returns the visible rows of the tree in render order, honoring
// per-branch expansion state.
func flatten(nodes []*node) []*node {
	var rows []*node
	for _, n := range nodes {
		rows = append(rows, n)
		if !n.leaf && n.expanded {
			rows = append(rows, flatten(n.children)...)
		}
	}
	return rows
}

// findNode locates a node by path so expansion state can be carried across
// tree rebuilds.
func findNode(nodes []*node, path string) *node {
	for _, n := range nodes {
		if n.path == path {
			return n
		}
		if found := findNode(n.children, path); found != nil {
			return found
		}
	}
	return nil
}

// copyExpansion transfers expansion state from an old tree to a rebuilt one.
func copyExpansion(from, to []*node) {
	for _, n := range to {
		if old := findNode(from, n.path); old != nil {
			n.expanded = old.expanded
		}
		copyExpansion(from, n.children)
	}
}
