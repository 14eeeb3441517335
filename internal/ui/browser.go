// Package ui implements the interactive terminal browser over the kept
// record set: the terminal twin of the HTML report's filter bar. It consumes
// the same ordered record list the emitters do and keeps no pipeline state
// of its own.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"tidyscope/internal/aggregate"
	"tidyscope/internal/diag"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	selectedStyle = lipgloss.NewStyle().Background(lipgloss.Color("237"))
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	checkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// severity filter cycle: all -> error -> warning -> all
var sevFilters = []string{"", "error", "warning"}

type browserModel struct {
	records []diag.Record
	// checks holds the distinct check identifiers in by-count order; the
	// leading empty entry means "all".
	checks    []string
	visible   []int
	sevIdx    int
	checkIdx  int
	search    textinput.Model
	searching bool
	cursor    int
	offset    int
	width     int
	height    int
}

// NewBrowser returns a Bubble Tea model over records, which must already be
// in display order.
func NewBrowser(records []diag.Record) tea.Model {
	search := textinput.New()
	search.Placeholder = "file / message contains…"
	search.Prompt = "/"
	search.CharLimit = 128

	checks := []string{""}
	for _, g := range aggregate.GroupByCheck(records) {
		if g.Check != "" {
			checks = append(checks, g.Check)
		}
	}

	m := &browserModel{
		records: records,
		checks:  checks,
		search:  search,
		width:   80,
		height:  24,
	}
	m.refilter()
	return m
}

func (m *browserModel) Init() tea.Cmd {
	return nil
}

func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampView()
		return m, nil
	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "s":
			m.sevIdx = (m.sevIdx + 1) % len(sevFilters)
			m.refilter()
		case "c":
			m.checkIdx = (m.checkIdx + 1) % len(m.checks)
			m.refilter()
		case "C":
			m.checkIdx = (m.checkIdx - 1 + len(m.checks)) % len(m.checks)
			m.refilter()
		case "/":
			m.searching = true
			m.search.Focus()
			return m, textinput.Blink
		case "up", "k":
			m.cursor--
			m.clampView()
		case "down", "j":
			m.cursor++
			m.clampView()
		case "pgup":
			m.cursor -= m.pageSize()
			m.clampView()
		case "pgdown":
			m.cursor += m.pageSize()
			m.clampView()
		case "home", "g":
			m.cursor = 0
			m.clampView()
		case "end", "G":
			m.cursor = len(m.visible) - 1
			m.clampView()
		}
		return m, nil
	}
	return m, nil
}

func (m *browserModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.search.Blur()
		return m, nil
	case "esc":
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.refilter()
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.refilter()
	return m, cmd
}

func (m *browserModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("tidyscope"))
	b.WriteString(statusStyle.Render(fmt.Sprintf("  %d/%d records", len(m.visible), len(m.records))))
	b.WriteByte('\n')
	b.WriteString(statusStyle.Render(fmt.Sprintf("severity:%s  check:%s", labelOr(sevFilters[m.sevIdx], "all"), labelOr(m.checks[m.checkIdx], "all"))))
	b.WriteByte('\n')
	if m.searching || m.search.Value() != "" {
		b.WriteString(m.search.View())
		b.WriteByte('\n')
	}

	page := m.pageSize()
	end := m.offset + page
	if end > len(m.visible) {
		end = len(m.visible)
	}
	if len(m.visible) == 0 {
		b.WriteString(statusStyle.Render("no records match") + "\n")
	}
	for i := m.offset; i < end; i++ {
		line := m.renderRecord(m.records[m.visible[i]])
		if i == m.cursor {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString(helpStyle.Render("s severity  c/C check  / search  ↑↓ move  q quit"))
	return b.String()
}

func (m *browserModel) renderRecord(r diag.Record) string {
	sev := r.Severity.String()
	switch r.Severity {
	case diag.SevError:
		sev = errStyle.Render(sev)
	case diag.SevWarning:
		sev = warnStyle.Render(sev)
	}
	line := fmt.Sprintf("%s:%d:%d: %s: %s", r.Path, r.Line, r.Col, sev, r.Message)
	if r.Check != "" {
		line += checkStyle.Render(" [" + r.Check + "]")
	}
	if m.width > 4 {
		line = runewidth.Truncate(line, m.width-1, "…")
	}
	return line
}

func (m *browserModel) refilter() {
	sev := sevFilters[m.sevIdx]
	check := m.checks[m.checkIdx]
	query := strings.ToLower(strings.TrimSpace(m.search.Value()))
	m.visible = m.visible[:0]
	for i, r := range m.records {
		if sev != "" && r.Severity.String() != sev {
			continue
		}
		if check != "" && r.Check != check {
			continue
		}
		if query != "" {
			hay := strings.ToLower(r.Path + " " + r.Message)
			if !strings.Contains(hay, query) {
				continue
			}
		}
		m.visible = append(m.visible, i)
	}
	m.cursor = 0
	m.offset = 0
}

func (m *browserModel) pageSize() int {
	// Header, filter line, optional search line and help line eat rows.
	reserved := 4
	if m.searching || m.search.Value() != "" {
		reserved++
	}
	if page := m.height - reserved; page > 0 {
		return page
	}
	return 1
}

func (m *browserModel) clampView() {
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	page := m.pageSize()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+page {
		m.offset = m.cursor - page + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func labelOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
