// Package tui provides the interactive provider picker used by profile
// creation when running on a terminal.
package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"ccswitch/config/models"
)

var (
	pickerTitleStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("205")).
				Bold(true)

	pickerCursorStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("205")).
				Bold(true)

	pickerItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	pickerDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	pickerHintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)
)

// PickProvider shows an interactive list of the given providers and returns
// the selected one. The boolean is false when the user cancelled.
func PickProvider(options []models.ProviderPreset) (models.ProviderPreset, bool, error) {
	if !isTerminal() {
		return models.ProviderPreset{}, false, fmt.Errorf("provider selection requires a terminal; pass --provider instead")
	}

	m := newPickerModel(options)
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return models.ProviderPreset{}, false, err
	}

	picker := final.(pickerModel)
	if picker.choice == nil {
		return models.ProviderPreset{}, false, nil
	}
	return *picker.choice, true, nil
}

// isTerminal checks if stdin is a terminal.
func isTerminal() bool {
	fileInfo, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

type pickerModel struct {
	all      []models.ProviderPreset
	filtered []models.ProviderPreset
	cursor   int
	input    textinput.Model
	choice   *models.ProviderPreset
}

func newPickerModel(options []models.ProviderPreset) pickerModel {
	input := textinput.New()
	input.Placeholder = "type to filter"
	input.Prompt = "/ "
	input.Focus()

	return pickerModel{
		all:      options,
		filtered: options,
		input:    input,
	}
}

func (m pickerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "ctrl+n":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil
		case "enter":
			if m.cursor < len(m.filtered) {
				choice := m.filtered[m.cursor]
				m.choice = &choice
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.filtered = filterProviders(m.all, m.input.Value())
	if m.cursor >= len(m.filtered) {
		m.cursor = 0
	}
	return m, cmd
}

func (m pickerModel) View() string {
	var b strings.Builder
	b.WriteString(pickerTitleStyle.Render("Select a provider"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if len(m.filtered) == 0 {
		b.WriteString(pickerDimStyle.Render("  no matching providers"))
		b.WriteString("\n")
	}

	for i, p := range m.filtered {
		cursor := "  "
		idCol := fmt.Sprintf("%-14s", p.ID)
		line := pickerItemStyle.Render(idCol) + " " + pickerDimStyle.Render(p.BaseURL)
		if i == m.cursor {
			cursor = pickerCursorStyle.Render("> ")
			line = pickerCursorStyle.Render(idCol) + " " + pickerDimStyle.Render(p.BaseURL)
		}
		b.WriteString(cursor + line + "\n")
	}

	b.WriteString("\n")
	b.WriteString(pickerHintStyle.Render("enter: select • esc: cancel"))
	b.WriteString("\n")
	return b.String()
}

// filterProviders returns the providers whose id or display name contains the
// query, case-insensitively. An empty query keeps everything.
func filterProviders(options []models.ProviderPreset, query string) []models.ProviderPreset {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return options
	}

	var out []models.ProviderPreset
	for _, p := range options {
		if strings.Contains(strings.ToLower(p.ID), query) ||
			strings.Contains(strings.ToLower(p.DisplayName), query) {
			out = append(out, p)
		}
	}
	return out
}
