package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sergiud/glsexpand/internal/gls"
	"github.com/sergiud/glsexpand/internal/output"
)

// Run launches the interactive abbreviation browser over the given
// definitions. Enter copies the highlighted short form to the clipboard.
func Run(defs []gls.Definition, clip output.Clipboard) error {
	if len(defs) == 0 {
		return fmt.Errorf("no abbreviations defined")
	}

	RefreshStyles()

	m := newBrowseModel(defs, clip)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// browseModel is a filterable list of abbreviations with a preview pane
type browseModel struct {
	defs      []gls.Definition
	filtered  []gls.Definition
	cursor    int
	textInput textinput.Model
	width     int
	height    int
	clipboard output.Clipboard
	status    string
}

// newBrowseModel creates a new abbreviation browser model
func newBrowseModel(defs []gls.Definition, clip output.Clipboard) browseModel {
	ti := textinput.New()
	ti.Placeholder = "Type to filter abbreviations..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 60

	return browseModel{
		defs:      defs,
		filtered:  defs,
		textInput: ti,
		clipboard: clip,
	}
}

// Init implements tea.Model
func (m browseModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if cmd := m.handleKeyPress(msg); cmd != nil {
			return m, cmd
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textInput.Width = msg.Width - 4
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	m.filterDefs()

	return m, cmd
}

// handleKeyPress processes keyboard input
func (m *browseModel) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c", "esc":
		return tea.Quit
	case "enter":
		if m.cursor < len(m.filtered) {
			def := m.filtered[m.cursor]
			if err := m.clipboard.Copy(def.Short); err != nil {
				m.status = fmt.Sprintf("copy failed: %v", err)
			} else {
				m.status = fmt.Sprintf("copied %q", def.Short)
			}
		}
	case "up", "ctrl+p":
		m.moveCursor(-1)
	case "down", "ctrl+n":
		m.moveCursor(1)
	}
	return nil
}

// moveCursor moves the selection, clamped to the filtered list
func (m *browseModel) moveCursor(delta int) {
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// filterDefs narrows the list to definitions matching the filter text
func (m *browseModel) filterDefs() {
	query := strings.ToLower(m.textInput.Value())
	if query == "" {
		m.filtered = m.defs
	} else {
		var filtered []gls.Definition
		for _, def := range m.defs {
			if strings.Contains(strings.ToLower(def.ID), query) ||
				strings.Contains(strings.ToLower(def.Short), query) ||
				strings.Contains(strings.ToLower(def.Long), query) {
				filtered = append(filtered, def)
			}
		}
		m.filtered = filtered
	}

	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View implements tea.Model
func (m browseModel) View() string {
	var b strings.Builder

	b.WriteString(styles.PreviewHeader.Render("Abbreviations"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	if len(m.filtered) == 0 {
		b.WriteString(styles.Dim.Render("  no matches"))
		b.WriteString("\n")
	}

	visible := m.visibleRows()
	start, end := m.window(visible)
	for i := start; i < end; i++ {
		def := m.filtered[i]
		line := fmt.Sprintf("%s  %s  %s",
			styles.ID.Render(fmt.Sprintf("%-16s", def.ID)),
			styles.Short.Render(fmt.Sprintf("%-12s", def.Short)),
			styles.Long.Render(def.Long))
		if i == m.cursor {
			b.WriteString(styles.Cursor.Render("> "))
			b.WriteString(styles.Selected.Render(line))
		} else {
			b.WriteString("  ")
			b.WriteString(line)
		}
		b.WriteString("\n")
	}

	if m.cursor < len(m.filtered) {
		b.WriteString("\n")
		b.WriteString(m.renderPreview(m.filtered[m.cursor]))
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(styles.Dim.Render(m.status))
	}

	b.WriteString("\n")
	b.WriteString(styles.Dim.Render("enter: copy short form • esc: quit"))
	b.WriteString("\n")

	return b.String()
}

// renderPreview shows how the highlighted abbreviation expands on first
// and on subsequent use
func (m browseModel) renderPreview(def gls.Definition) string {
	first := fmt.Sprintf("%s (%s)", def.Long, def.Short)
	return styles.Border.Render(fmt.Sprintf("first use   %s\nafter that  %s",
		styles.PreviewText.Render(first),
		styles.PreviewText.Render(def.Short)))
}

// visibleRows returns how many list rows fit above the preview pane
func (m browseModel) visibleRows() int {
	rows := m.height - 12
	if rows < 3 {
		rows = 3
	}
	return rows
}

// window returns the slice of the filtered list that keeps the cursor
// on screen
func (m browseModel) window(visible int) (start, end int) {
	start = 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	end = start + visible
	if end > len(m.filtered) {
		end = len(m.filtered)
	}
	return start, end
}
