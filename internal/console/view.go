package console

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"utility-calculator/internal/calculator"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7c3aed"))
	displayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#404040")).
			Padding(0, 1).
			Width(32).
			Align(lipgloss.Right)
	focusedStyle = displayStyle.BorderForeground(lipgloss.Color("#a78bfa"))
	labelStyle   = lipgloss.NewStyle().Width(10).Foreground(lipgloss.Color("#a0a0a0"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#3b82f6"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444"))
	noteStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#f59e0b"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280"))
)

var inputLabels = [focusCount]string{
	focusExponent: "Exponent",
	focusList:     "List",
	focusTarget:   "Remove",
}

func (m Model) View() string {
	sections := []string{titleStyle.Render("Utility calculator")}

	box := displayStyle
	if m.focus == focusDisplay {
		box = focusedStyle
	}
	display := m.state.Display
	if display == "" {
		display = "0"
	}
	sections = append(sections, box.Render(display))

	if p := m.state.Pending; p != nil {
		sections = append(sections, mutedStyle.Render(fmt.Sprintf("%s %s", calculator.FormatNumber(p.Operand), pendingSymbol(p.Operator))))
	}

	info := infoStyle
	if strings.HasPrefix(m.state.Info, "Error: ") {
		info = errorStyle
	}
	sections = append(sections, info.Render(m.state.Info))
	if m.state.Note != "" {
		sections = append(sections, noteStyle.Render(m.state.Note))
	}

	sections = append(sections, "")
	for i := focusExponent; i < focusCount; i++ {
		sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(inputLabels[i]), m.inputs[i].View()))
	}

	sections = append(sections, "")
	if m.waiting {
		sections = append(sections, mutedStyle.Render("working..."))
	}
	if m.err != nil {
		sections = append(sections, errorStyle.Render("Connection error: "+m.err.Error()))
	}
	if m.status != "" {
		sections = append(sections, mutedStyle.Render(m.status))
	}
	sections = append(sections, mutedStyle.Render(fmt.Sprintf("Errors logged: %d", m.state.ErrorCount)))
	sections = append(sections, mutedStyle.Render(m.help()))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func pendingSymbol(op calculator.BinaryOperator) string {
	if op == calculator.OpMultiply {
		return "×"
	}
	return "+"
}

func (m Model) help() string {
	parts := []string{"digits, + * = enter, s m f, esc clear"}
	for _, b := range m.keys.Actions {
		h := b.Binding.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	for _, b := range []key.Binding{m.keys.NextFocus, m.keys.Export, m.keys.Quit} {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " · ")
}
