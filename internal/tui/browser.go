// Package tui is an interactive question browser over a session's
// analytics: a filterable list of questions with a per-question detail
// pane.
package tui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abiral/quizsight/internal/analytics"
	"github.com/abiral/quizsight/internal/report"
)

type mode int

const (
	modeList mode = iota
	modeDetail
	modeFilter
)

// browserModel is the root Bubble Tea model.
type browserModel struct {
	title    string
	analyses []analytics.QuestionAnalysis
	summary  *analytics.QuizSummary

	mode     mode
	cursor   int
	visible  []int // indices into analyses after filtering
	filter   textinput.Model
	width    int
	height   int
}

// Run opens the interactive browser for one session's analytics.
func Run(title string, analyses []analytics.QuestionAnalysis, summary *analytics.QuizSummary) error {
	if len(analyses) == 0 {
		return fmt.Errorf("no analytics to browse")
	}

	filter := textinput.New()
	filter.Placeholder = "filter questions"

	m := browserModel{
		title:    title,
		analyses: analyses,
		summary:  summary,
		filter:   filter,
	}
	m.applyFilter("")

	_, err := tea.NewProgram(m).Run()
	return err
}

func (m browserModel) Init() tea.Cmd {
	return nil
}

func (m browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case modeFilter:
			return m.updateFilter(msg)
		case modeDetail:
			return m.updateDetail(msg)
		default:
			return m.updateList(msg)
		}
	}
	return m, nil
}

func (m browserModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
	case "enter":
		if len(m.visible) > 0 {
			m.mode = modeDetail
		}
	case "/":
		m.mode = modeFilter
		m.filter.SetValue("")
		return m, m.filter.Focus()
	}
	return m, nil
}

func (m browserModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "enter":
		m.mode = modeList
	}
	return m, nil
}

func (m browserModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		m.applyFilter("")
		return m, nil
	case "enter":
		m.mode = modeList
		return m, nil
	}
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	m.applyFilter(m.filter.Value())
	return m, cmd
}

// applyFilter recomputes the visible list, matching the query against
// question text case-insensitively.
func (m *browserModel) applyFilter(query string) {
	query = strings.ToLower(strings.TrimSpace(query))
	m.visible = m.visible[:0]
	for i := range m.analyses {
		if query == "" || strings.Contains(strings.ToLower(m.analyses[i].Text), query) {
			m.visible = append(m.visible, i)
		}
	}
	if m.cursor >= len(m.visible) {
		m.cursor = 0
	}
}

func (m browserModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	var content string
	if m.mode == modeDetail {
		content = m.detailView()
	} else {
		content = m.listView()
	}
	v.SetContent(content)
	return v
}

func (m browserModel) listView() string {
	var b strings.Builder

	title := m.title
	if title == "" {
		title = "Quiz results"
	}
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(report.Primary).Render(title))
	b.WriteString("\n\n")

	if m.mode == modeFilter {
		b.WriteString("/" + m.filter.View())
		b.WriteString("\n\n")
	}

	if len(m.visible) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(report.TextDim).Render("No matching questions."))
		b.WriteString("\n")
	}

	for pos, idx := range m.visible {
		a := m.analyses[idx]
		marker := "  "
		style := lipgloss.NewStyle().Foreground(report.Text)
		if pos == m.cursor && m.mode != modeFilter {
			marker = "> "
			style = style.Foreground(report.Primary).Bold(true)
		}

		status := ""
		if a.IsPotentiallyProblematic {
			status = lipgloss.NewStyle().Foreground(report.Danger).Render(" !")
		}
		line := fmt.Sprintf("%sQ%-3d %3.0f%%  %s", marker, a.QuestionNumber, a.SuccessRate, truncate(a.Text, m.width-16))
		b.WriteString(style.Render(line) + status)
		b.WriteString("\n")
	}

	if m.summary != nil {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(report.TextDim).Render(
			fmt.Sprintf("%d questions, %.0f%% avg success, %d flagged",
				m.summary.TotalQuestions, m.summary.AvgSuccessRate, m.summary.ProblematicCount)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(report.TextDim).Render(
		"↑↓ navigate · enter detail · / filter · q quit"))
	return b.String()
}

func (m browserModel) detailView() string {
	if m.cursor >= len(m.visible) {
		return ""
	}
	a := m.analyses[m.visible[m.cursor]]

	var b strings.Builder
	b.WriteString(report.RenderQuestionDetail(&a))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(report.TextDim).Render("esc back · q quit"))
	return b.String()
}

func truncate(s string, width int) string {
	if width <= 3 || len(s) <= width {
		return s
	}
	return s[:width-3] + "..."
}
