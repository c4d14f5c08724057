package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/htmlkit/htmlbridge/document"
	"github.com/htmlkit/htmlbridge/internal/refengine"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	nodeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	geomStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type viewState int

const (
	stateTree viewState = iota
	stateProbe
)

type treeEntry struct {
	depth int
	el    *document.Element
}

type viewerModel struct {
	err      error
	doc      *document.Document
	host     *termHost
	filename string
	cssFile  string
	width    float32
	entries  []treeEntry
	selected int
	probe    textinput.Model
	result   string
	state    viewState
}

func newViewerModel(filename, cssFile string) *viewerModel {
	probe := textinput.New()
	probe.Placeholder = "x,y"
	probe.Prompt = "probe point: "
	probe.Width = 20
	return &viewerModel{
		filename: filename,
		cssFile:  cssFile,
		width:    terminalWidth(),
		probe:    probe,
		state:    stateTree,
	}
}

type loadedMsg struct {
	err     error
	doc     *document.Document
	host    *termHost
	entries []treeEntry
}

type probeResultMsg struct {
	result string
}

func (m *viewerModel) Init() tea.Cmd {
	return m.loadDocument
}

func (m *viewerModel) loadDocument() tea.Msg {
	markup, err := os.ReadFile(m.filename)
	if err != nil {
		return loadedMsg{err: err}
	}

	host := newTermHost()
	doc, err := document.Create(refengine.New(), string(markup), host.table(), document.CreateOptions{})
	if err != nil {
		return loadedMsg{err: err}
	}

	if m.cssFile != "" {
		css, err := os.ReadFile(m.cssFile)
		if err != nil {
			doc.Destroy()
			return loadedMsg{err: err}
		}
		if err := doc.AddStylesheet(string(css), m.cssFile, ""); err != nil {
			doc.Destroy()
			return loadedMsg{err: err}
		}
	}

	doc.Render(m.width)
	return loadedMsg{doc: doc, host: host, entries: flattenTree(doc.Root())}
}

func flattenTree(root *document.Element) []treeEntry {
	var entries []treeEntry
	var walk func(el *document.Element, depth int)
	walk = func(el *document.Element, depth int) {
		if el == nil {
			return
		}
		entries = append(entries, treeEntry{depth: depth, el: el})
		for i := 0; i < el.ChildrenCount(); i++ {
			walk(el.ChildAt(i), depth+1)
		}
	}
	walk(root, 0)
	return entries
}

func (m *viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.state == stateProbe && msg.String() == "q" {
				break // let the input take the character
			}
			if m.doc != nil {
				m.doc.Destroy()
			}
			return m, tea.Quit

		case "up", "k":
			if m.state == stateTree && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateTree && m.selected < len(m.entries)-1 {
				m.selected++
			}

		case "+", "-":
			if m.state == stateTree && m.doc != nil {
				if msg.String() == "+" {
					m.width += 80
				} else if m.width > 160 {
					m.width -= 80
				}
				m.doc.Render(m.width)
				m.entries = flattenTree(m.doc.Root())
				if m.selected >= len(m.entries) {
					m.selected = len(m.entries) - 1
				}
			}

		case "p":
			if m.state == stateTree {
				m.state = stateProbe
				m.result = ""
				m.probe.SetValue("")
				m.probe.Focus()
				return m, textinput.Blink
			}

		case "enter":
			if m.state == stateProbe {
				return m, m.runProbe
			}

		case "esc":
			if m.state == stateProbe {
				m.state = stateTree
				m.probe.Blur()
			}
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.doc = msg.doc
		m.host = msg.host
		m.entries = msg.entries

	case probeResultMsg:
		m.result = msg.result
	}

	if m.state == stateProbe {
		var cmd tea.Cmd
		m.probe, cmd = m.probe.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *viewerModel) runProbe() tea.Msg {
	x, y, err := parsePoint(m.probe.Value())
	if err != nil {
		return probeResultMsg{result: errorStyle.Render(err.Error())}
	}
	hit := m.doc.ElementByPoint(x, y, x, y)
	if hit == nil {
		return probeResultMsg{result: "no element at point"}
	}
	return probeResultMsg{result: resultStyle.Render(describeElement(hit))}
}

func (m *viewerModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}
	if m.doc == nil {
		return "Loading document..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("HTML Viewer"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	if m.host.caption != "" {
		b.WriteString(" - ")
		b.WriteString(m.host.caption)
	}
	fmt.Fprintf(&b, "\nlayout %.0fx%.0f at width %.0f\n\n", m.doc.Width(), m.doc.Height(), m.width)

	switch m.state {
	case stateTree:
		for i, entry := range m.entries {
			line := strings.Repeat("  ", entry.depth) + m.formatEntry(entry)
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • p probe • +/- width • q quit"))

	case stateProbe:
		b.WriteString(m.probe.View())
		b.WriteString("\n\n")
		if m.result != "" {
			b.WriteString(m.result)
			b.WriteString("\n\n")
		}
		b.WriteString(helpStyle.Render("enter probe • esc back"))
	}

	return b.String()
}

func (m *viewerModel) formatEntry(entry treeEntry) string {
	el := entry.el
	label := fmt.Sprintf("element[%d]", el.ChildrenCount())
	if el.IsText() {
		var text string
		el.Text(func(s string) { text = s })
		label = fmt.Sprintf("%q", truncate(text, 30))
	}
	p := el.Placement()
	geom := fmt.Sprintf(" (%.0f,%.0f %.0fx%.0f)", p.X, p.Y, p.Width, p.Height)
	if n := el.InlineBoxesCount(); n > 0 {
		geom += fmt.Sprintf(" lines=%d", n)
	}
	return nodeStyle.Render(label) + geomStyle.Render(geom)
}

func runInteractive(filename, cssFile string) error {
	p := tea.NewProgram(newViewerModel(filename, cssFile), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
