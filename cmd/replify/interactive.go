package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/t14raptor/replify/repl"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	lz     *repl.Legalizer
	input  textarea.Model
	result repl.Result
	err    error
	done   bool
}

type legalizedMsg struct {
	result repl.Result
	err    error
}

func newInteractiveModel(lz *repl.Legalizer) *interactiveModel {
	ta := textarea.New()
	ta.Placeholder = "import { readFile } from 'fs/promises';\nawait readFile('x');"
	ta.ShowLineNumbers = true
	ta.SetWidth(80)
	ta.SetHeight(8)
	ta.Focus()

	return &interactiveModel{
		lz:    lz,
		input: ta,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m *interactiveModel) legalize() tea.Cmd {
	src := m.input.Value()
	lz := m.lz
	return func() tea.Msg {
		res, err := lz.Legalize(src)
		return legalizedMsg{result: res, err: err}
	}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.input.SetWidth(msg.Width)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "ctrl+s":
			return m, m.legalize()

		case "ctrl+l":
			m.input.Reset()
			m.result = repl.Result{}
			m.err = nil
			m.done = false
			return m, nil
		}

	case legalizedMsg:
		m.result = msg.result
		m.err = msg.err
		m.done = true
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("replify"))
	b.WriteString(" ")
	b.WriteString(m.describeConfig())
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.done {
		switch {
		case m.err != nil && !errors.Is(m.err, repl.ErrIllegalReturn):
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
			b.WriteString("\n\n")
		default:
			b.WriteString(infoStyle.Render(fmt.Sprintf("%s, %d import(s)", m.result.Outcome, m.result.Imports)))
			b.WriteString("\n\n")
			b.WriteString(resultStyle.Render(strings.TrimRight(m.result.Code, "\n")))
			b.WriteString("\n\n")
			if m.err != nil {
				b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
				b.WriteString("\n\n")
			}
		}
	}

	b.WriteString(helpStyle.Render("ctrl+s legalize • ctrl+l clear • esc quit"))
	return b.String()
}

func (m *interactiveModel) describeConfig() string {
	cfg := m.lz.Config()
	var passes []string
	if cfg.Imports {
		passes = append(passes, "imports")
	}
	if cfg.TopLevelAwait {
		passes = append(passes, "top-level await")
	}
	if len(passes) == 0 {
		passes = append(passes, "no passes")
	}
	desc := strings.Join(passes, " + ")
	if cfg.Loader != "" {
		desc += " via " + cfg.Loader
	}
	return desc
}

func runInteractive(lz *repl.Legalizer) error {
	p := tea.NewProgram(newInteractiveModel(lz), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
