// Package tui implements the interactive terminal interface for toggling
// JSON nodes.
//
// It uses bubbletea, which follows The Elm Architecture:
//
//  1. Model: the application state (the JSON tree, cursor, status line)
//  2. Update: a function that updates state based on messages
//  3. View: a function that renders state to a string
//
// The flow is: User Input -> Message -> Update -> New Model -> View -> Screen
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mintyPT/jsontoggle/internal/toggle"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#42E7FF"))

	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#60F281"))

	branchStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7F6DFF"))

	toggledStyle = lipgloss.NewStyle().
			Strikethrough(true).
			Foreground(lipgloss.Color("#6B6B6B"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE763"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF4473"))
)

// keyMap defines the TUI keybindings, rendered by the help bubble.
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Expand key.Binding
	Toggle key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Expand, k.Toggle, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Expand, k.Toggle, k.Quit}}
}

var defaultKeys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Expand: key.NewBinding(
		key.WithKeys("enter", " "),
		key.WithHelp("enter", "expand/collapse"),
	),
	Toggle: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "toggle node"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// App is the main application model. In bubbletea, this holds ALL the state.
type App struct {
	mgr      *toggle.Manager
	fileName string

	tree   []*node
	rows   []*node
	cursor int

	status  string
	statErr bool

	keys   keyMap
	help   help.Model
	width  int
	height int
}

// NewApp builds the TUI model over a toggle manager.
func NewApp(mgr *toggle.Manager, fileName string) *App {
	tree := buildTree(mgr)
	return &App{
		mgr:      mgr,
		fileName: fileName,
		tree:     tree,
		rows:     flatten(tree),
		keys:     defaultKeys,
		help:     help.New(),
	}
}

// Run launches the TUI program and blocks until the user quits.
func Run(mgr *toggle.Manager, fileName string) error {
	p := tea.NewProgram(NewApp(mgr, fileName), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model, handling key presses and terminal resizes.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		return a, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.Up):
			a.moveCursor(-1)
		case key.Matches(msg, a.keys.Down):
			a.moveCursor(1)
		case key.Matches(msg, a.keys.Expand):
			a.expandCurrent()
		case key.Matches(msg, a.keys.Toggle):
			a.toggleCurrent()
		}
	}
	return a, nil
}

// moveCursor shifts the selection, clamped to the visible rows.
func (a *App) moveCursor(delta int) {
	a.cursor += delta
	if a.cursor < 0 {
		a.cursor = 0
	}
	if a.cursor >= len(a.rows) {
		a.cursor = len(a.rows) - 1
	}
	a.updateStatusForCursor()
}

// expandCurrent flips expansion of the branch under the cursor.
func (a *App) expandCurrent() {
	if len(a.rows) == 0 {
		return
	}
	n := a.rows[a.cursor]
	if n.leaf {
		return
	}
	n.expanded = !n.expanded
	a.rows = flatten(a.tree)
	if a.cursor >= len(a.rows) {
		a.cursor = len(a.rows) - 1
	}
}

// toggleCurrent toggles the node under the cursor in or out of the document
// and rebuilds the tree from the updated document.
func (a *App) toggleCurrent() {
	if len(a.rows) == 0 {
		return
	}
	selected := a.rows[a.cursor]

	msg, err := a.mgr.Toggle(selected.path)
	if err != nil {
		a.status = err.Error()
		a.statErr = true
		return
	}
	a.status = msg
	a.statErr = false

	rebuilt := buildTree(a.mgr)
	copyExpansion(a.tree, rebuilt)
	a.tree = rebuilt
	a.rows = flatten(a.tree)
	if a.cursor >= len(a.rows) {
		a.cursor = len(a.rows) - 1
	}
}

// updateStatusForCursor shows the selected path and value in the status line.
func (a *App) updateStatusForCursor() {
	if len(a.rows) == 0 {
		return
	}
	n := a.rows[a.cursor]
	if n.leaf {
		a.status = fmt.Sprintf("%s = %s", n.path, n.value)
	} else {
		a.status = n.path
	}
	a.statErr = false
}

// View implements tea.Model, rendering the tree with the cursor, toggle
// markers, the status line, and help.
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(a.fileName))
	b.WriteString("\n\n")

	for i, n := range a.rows {
		prefix := "  "
		if i == a.cursor {
			prefix = "> "
		}

		line := strings.Repeat("  ", n.depth)
		switch {
		case n.placeholder:
			line += n.label
		case n.leaf:
			line += fmt.Sprintf("%s: %s", n.label, n.value)
		default:
			marker := "▸"
			if n.expanded {
				marker = "▾"
			}
			line = line + marker + " " + n.label
		}
		if a.mgr.Active(n.path) {
			line += "  [toggled out]"
		}

		switch {
		case i == a.cursor:
			line = cursorStyle.Render(line)
		case a.mgr.Active(n.path):
			line = toggledStyle.Render(line)
		case !n.leaf:
			line = branchStyle.Render(line)
		}

		b.WriteString(prefix + line + "\n")
	}

	b.WriteString("\n")
	if a.status != "" {
		if a.statErr {
			b.WriteString(errorStyle.Render(a.status))
		} else {
			b.WriteString(statusStyle.Render(a.status))
		}
		b.WriteString("\n")
	}
	b.WriteString(a.help.View(a.keys))

	return b.String()
}
