// Package console - терминальный клиент калькулятора поверх gRPC
package console

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"utility-calculator/internal/calculator"
)

// Фокус: дисплей или одно из полей ввода
const (
	focusDisplay = iota
	focusExponent
	focusList
	focusTarget
	focusCount
)

var inputFields = [focusCount]calculator.Field{
	focusExponent: calculator.FieldExponent,
	focusList:     calculator.FieldList,
	focusTarget:   calculator.FieldTarget,
}

// Model - состояние консоли
type Model struct {
	remote  Remote
	keys    KeyMap
	inputs  [focusCount]textinput.Model
	state   calculator.State
	focus   int
	dir     string
	waiting bool
	status  string
	err     error
	width   int
}

// New создает модель. dir - каталог для выгрузки журнала.
func New(remote Remote, dir string) Model {
	m := Model{
		remote: remote,
		keys:   DefaultKeyMap(),
		dir:    dir,
	}

	placeholders := map[int]string{
		focusExponent: "n",
		focusList:     "1, 2, 3",
		focusTarget:   "value to remove",
	}
	for i := focusExponent; i < focusCount; i++ {
		in := textinput.New()
		in.Placeholder = placeholders[i]
		in.CharLimit = 256
		m.inputs[i] = in
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return m.fetchState()
}

// State возвращает последнее полученное состояние сессии
func (m Model) State() calculator.State { return m.state }

// inputValues - текущие значения полей ввода, включая несохраненные правки
func (m Model) inputValues() map[string]string {
	values := make(map[string]string, focusCount-1)
	for i := focusExponent; i < focusCount; i++ {
		values[string(inputFields[i])] = m.inputs[i].Value()
	}
	return values
}

func (m *Model) setFocus(focus int) tea.Cmd {
	if m.focus != focusDisplay {
		m.inputs[m.focus].Blur()
	}
	m.focus = focus
	if focus == focusDisplay {
		return nil
	}
	return m.inputs[focus].Focus()
}

// applyState синхронизирует поля ввода с сессией: списочные операции
// записывают результат обратно в поле списка
func (m *Model) applyState(st calculator.State) {
	m.state = st
	m.inputs[focusExponent].SetValue(st.Exponent)
	m.inputs[focusList].SetValue(st.List)
	m.inputs[focusTarget].SetValue(st.Target)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		m.waiting = false
		m.err = msg.err
		if msg.err == nil {
			m.applyState(msg.reply.State)
		}
		return m, nil

	case exportMsg:
		m.waiting = false
		m.err = msg.err
		if msg.err == nil {
			m.status = "Log saved to " + msg.path
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.NextFocus):
		cmd := m.setFocus((m.focus + 1) % focusCount)
		return m, cmd

	case key.Matches(msg, m.keys.PrevFocus):
		cmd := m.setFocus((m.focus + focusCount - 1) % focusCount)
		return m, cmd

	case key.Matches(msg, m.keys.Export):
		m.waiting = true
		m.status = ""
		return m, m.export()
	}

	for _, b := range m.keys.Actions {
		if key.Matches(msg, b.Binding) {
			m.waiting = true
			m.status = ""
			return m, m.do(b.Action, m.inputValues())
		}
	}

	if m.focus == focusDisplay {
		k := displayKey(msg.String())
		if k == "" {
			return m, nil
		}
		m.waiting = true
		return m, m.press(k)
	}

	if msg.String() == "enter" {
		field := string(inputFields[m.focus])
		m.waiting = true
		return m, m.setFields(map[string]string{field: m.inputs[m.focus].Value()})
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}
