package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/carverauto/swos/pkg/decode"
	"github.com/carverauto/swos/pkg/endpoints"
)

// Dracula theme colors.
const (
	draculaForeground = "#F8F8F2"
	draculaCyan       = "#8BE9FD"
	draculaGreen      = "#50FA7B"
	draculaPink       = "#FF79C6"
	draculaPurple     = "#BD93F9"
	draculaRed        = "#FF5555"
	draculaYellow     = "#F1FA8C"
	draculaComment    = "#6272A4"
)

const (
	listPaneWidth  = 36
	minOutputWidth = 40
	minPaneHeight  = 8
	chromeHeight   = 8
)

var errNoPayloads = errors.New("no payload files found in directory")

// payloadFile is one file in the browsed directory, matched to a
// registered endpoint by its name.
type payloadFile struct {
	name     string
	path     string
	endpoint string // empty when no endpoint claims the name
}

// Styling with lipgloss.
func newStyles() struct {
	title, item, selected, tag, untagged, header, help, error, success, list, output lipgloss.Style
} {
	return struct {
		title, item, selected, tag, untagged, header, help, error, success, list, output lipgloss.Style
	}{
		title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaPink)).
			Bold(true),
		item: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaForeground)),
		selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaPink)).
			Bold(true),
		tag: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaCyan)),
		untagged: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaComment)),
		header: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaYellow)),
		help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaComment)),
		error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaRed)).
			Bold(true),
		success: lipgloss.NewStyle().
			Foreground(lipgloss.Color(draculaGreen)),
		list: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(draculaPurple)).
			Padding(0, 1),
		output: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(draculaCyan)).
			Padding(0, 1),
	}
}

type browseModel struct {
	dir       string
	ports     int
	files     []payloadFile
	visible   []int // indexes into files after filtering
	cursor    int   // position within visible
	filter    textinput.Model
	filtering bool
	header    string
	rendered  string
	decodeErr string
	copyMsg   string
	canCopy   bool
	width     int
	height    int
	styles    struct {
		title, item, selected, tag, untagged, header, help, error, success, list, output lipgloss.Style
	}
}

func browse(dir string, ports int) error {
	files, err := scanPayloads(dir)
	if err != nil {
		return err
	}

	p := tea.NewProgram(newBrowseModel(dir, ports, files), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browse: %w", err)
	}

	return nil
}

func scanPayloads(dir string) ([]payloadFile, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read payload directory: %w", err)
	}

	var files []payloadFile

	for _, de := range dirEntries {
		name := de.Name()
		if de.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		if strings.Contains(name, ".expected") || name == "manifest.json" {
			continue
		}

		files = append(files, payloadFile{
			name:     name,
			path:     filepath.Join(dir, name),
			endpoint: matchEndpoint(name),
		})
	}

	sort.Slice(files, func(i, j int) bool { return files[i].name < files[j].name })

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", errNoPayloads, dir)
	}

	return files, nil
}

// matchEndpoint maps a payload file name to a registered firmware path.
// Both bare names ("link.b") and fixture names
// ("link.b_response_css326.txt") resolve.
func matchEndpoint(name string) string {
	base := strings.TrimSuffix(name, ".txt")
	if i := strings.Index(base, "_response_"); i >= 0 {
		base = base[:i]
	}

	if _, ok := endpoints.Lookup(base); ok {
		return base
	}

	return ""
}

func newBrowseModel(dir string, ports int, files []payloadFile) *browseModel {
	fi := textinput.New()
	fi.Placeholder = "filter files"
	fi.Width = listPaneWidth - 8
	fi.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(draculaCyan))
	fi.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(draculaForeground))
	fi.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(draculaComment))

	canCopy := true
	if err := clipboard.WriteAll(""); err != nil {
		canCopy = false
	}

	m := &browseModel{
		dir:     dir,
		ports:   ports,
		files:   files,
		filter:  fi,
		canCopy: canCopy,
		styles:  newStyles(),
	}

	m.applyFilter()

	return m
}

func (*browseModel) Init() tea.Cmd {
	return nil
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		return m, nil
	case tea.KeyMsg:
		if m.filtering {
			return m.updateFilter(msg)
		}

		return m.handleKeyMsg(msg)
	}

	return m, nil
}

func (m *browseModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	//nolint:exhaustive // Default case handles all unlisted keys
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEsc:
		m.filtering = false
		m.filter.Blur()
		m.filter.SetValue("")
		m.applyFilter()

		return m, nil
	case tea.KeyEnter:
		m.filtering = false
		m.filter.Blur()

		return m, nil
	default:
		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		m.applyFilter()

		return m, cmd
	}
}

func (m *browseModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc", "q":
		return m, tea.Quit
	case "up", "k":
		m.move(-1)
	case "down", "j":
		m.move(1)
	case "/":
		m.filtering = true
		m.filter.Focus()

		return m, textinput.Blink
	case "c":
		m.copyCurrent()
	}

	return m, nil
}

func (m *browseModel) move(delta int) {
	if len(m.visible) == 0 {
		return
	}

	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}

	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}

	m.decodeCurrent()
}

func (m *browseModel) applyFilter() {
	needle := strings.ToLower(strings.TrimSpace(m.filter.Value()))

	m.visible = m.visible[:0]

	for i, f := range m.files {
		if needle == "" || strings.Contains(strings.ToLower(f.name), needle) {
			m.visible = append(m.visible, i)
		}
	}

	if m.cursor >= len(m.visible) {
		m.cursor = 0
	}

	m.decodeCurrent()
}

func (m *browseModel) decodeCurrent() {
	m.header = ""
	m.rendered = ""
	m.decodeErr = ""
	m.copyMsg = ""

	if len(m.visible) == 0 {
		m.decodeErr = "no files match the filter"

		return
	}

	f := m.files[m.visible[m.cursor]]

	if f.endpoint == "" {
		m.decodeErr = fmt.Sprintf("no endpoint matches %q", f.name)

		return
	}

	entry, _ := endpoints.Lookup(f.endpoint)
	m.header = fmt.Sprintf("%s -> %s", f.endpoint, entry.Record)

	data, err := os.ReadFile(f.path)
	if err != nil {
		m.decodeErr = err.Error()

		return
	}

	var opts []decode.Option
	if m.ports > 0 {
		opts = append(opts, decode.WithPortCount(m.ports))
	}

	record, err := endpoints.Decode(f.endpoint, data, opts...)
	if err != nil {
		m.decodeErr = err.Error()

		return
	}

	rendered, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		m.decodeErr = err.Error()

		return
	}

	m.rendered = string(rendered)
}

func (m *browseModel) copyCurrent() {
	if !m.canCopy || m.rendered == "" {
		return
	}

	if err := clipboard.WriteAll(m.rendered); err != nil {
		m.copyMsg = "Failed to copy to clipboard"
	} else {
		m.copyMsg = "Decoded JSON copied to clipboard!"
	}
}

func (m *browseModel) View() string {
	var content strings.Builder

	title := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.NewStyle().Foreground(lipgloss.Color(draculaPurple)).Render("⣿ "),
		m.styles.title.Render("SwOS payload browser: "+m.dir),
	)
	content.WriteString(title + "\n\n")

	content.WriteString(lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderList(),
		" ",
		m.renderOutput(),
	))
	content.WriteString("\n")

	if m.filtering {
		content.WriteString(m.filter.View() + "\n")
	}

	help := "↑/↓ select | / filter | c copy JSON | q/Esc quit"
	if !m.canCopy {
		help = "↑/↓ select | / filter | q/Esc quit"
	}

	content.WriteString(m.styles.help.Render(help))

	if m.copyMsg != "" {
		messageStyle := m.styles.success
		if strings.HasPrefix(m.copyMsg, "Failed") {
			messageStyle = m.styles.error
		}

		content.WriteString("\n" + messageStyle.Render(m.copyMsg))
	}

	return content.String()
}

func (m *browseModel) paneHeight() int {
	h := m.height - chromeHeight
	if h < minPaneHeight {
		h = minPaneHeight
	}

	return h
}

func (m *browseModel) renderList() string {
	height := m.paneHeight()
	start, end := m.listWindow(height)

	var lines []string

	for i := start; i < end; i++ {
		f := m.files[m.visible[i]]

		label := truncate(f.name, listPaneWidth-6)

		tag := m.styles.untagged.Render("unmatched")
		if f.endpoint != "" {
			tag = m.styles.tag.Render(f.endpoint)
		}

		if i == m.cursor {
			lines = append(lines, m.styles.selected.Render("> "+label), "  "+tag)
		} else {
			lines = append(lines, m.styles.item.Render("  "+label), "  "+tag)
		}
	}

	return m.styles.list.
		Width(listPaneWidth).
		Height(height).
		Render(strings.Join(lines, "\n"))
}

// listWindow returns the half-open range of visible entries shown in the
// list pane, keeping the cursor in view. Each entry takes two lines.
func (m *browseModel) listWindow(height int) (start, end int) {
	rows := height / 2
	if rows < 1 {
		rows = 1
	}

	if len(m.visible) <= rows {
		return 0, len(m.visible)
	}

	start = m.cursor - rows/2
	if start < 0 {
		start = 0
	}

	end = start + rows
	if end > len(m.visible) {
		end = len(m.visible)
		start = end - rows
	}

	return start, end
}

func (m *browseModel) renderOutput() string {
	height := m.paneHeight()

	width := m.width - listPaneWidth - 8
	if width < minOutputWidth {
		width = minOutputWidth
	}

	var body string

	switch {
	case m.decodeErr != "":
		body = m.styles.error.Render(truncate(m.decodeErr, width*3))
	default:
		lines := strings.Split(m.rendered, "\n")
		if len(lines) > height-1 {
			hidden := len(lines) - (height - 1)
			lines = append(lines[:height-1], m.styles.help.Render(fmt.Sprintf("… %d more lines", hidden)))
		}

		for i, line := range lines {
			lines[i] = truncate(line, width-2)
		}

		body = strings.Join(lines, "\n")
	}

	if m.header != "" {
		body = m.styles.header.Render(m.header) + "\n" + body
	}

	return m.styles.output.
		Width(width).
		Height(height).
		Render(body)
}

func truncate(s string, width int) string {
	if width < 1 {
		return ""
	}

	runes := []rune(s)
	if len(runes) <= width {
		return s
	}

	return string(runes[:width-1]) + "…"
}
