package console

import (
	"github.com/charmbracelet/bubbles/key"

	"utility-calculator/internal/calculator"
)

// KeyMap - сочетания клавиш консоли
type KeyMap struct {
	Quit      key.Binding
	NextFocus key.Binding
	PrevFocus key.Binding
	Export    key.Binding
	Actions   []ActionBinding
}

// ActionBinding связывает сочетание клавиш с действием сессии
type ActionBinding struct {
	Binding key.Binding
	Action  calculator.Action
}

func actionBinding(keys, help string, action calculator.Action) ActionBinding {
	return ActionBinding{
		Binding: key.NewBinding(key.WithKeys(keys), key.WithHelp(keys, help)),
		Action:  action,
	}
}

// DefaultKeyMap возвращает сочетания клавиш по умолчанию
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		NextFocus: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		PrevFocus: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous field")),
		Export:    key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "export log")),
		Actions: []ActionBinding{
			actionBinding("ctrl+w", "x²", calculator.ActionSquare),
			actionBinding("ctrl+b", "x³", calculator.ActionCube),
			actionBinding("ctrl+p", "xⁿ", calculator.ActionPower),
			actionBinding("ctrl+u", "sum", calculator.ActionSum),
			actionBinding("ctrl+a", "mean", calculator.ActionMean),
			actionBinding("ctrl+o", "sort", calculator.ActionSort),
			actionBinding("ctrl+r", "reverse", calculator.ActionReverse),
			actionBinding("ctrl+l", "remove last", calculator.ActionRemoveLast),
			actionBinding("ctrl+d", "remove value", calculator.ActionRemoveValue),
		},
	}
}

// displayKey переводит клавишу терминала в клавишу сессии.
// Пустая строка - клавиша не передается.
func displayKey(k string) string {
	switch k {
	case "enter":
		return "Enter"
	case "backspace":
		return "Backspace"
	case "esc":
		return "Escape"
	case "+", "*", "=", ".", ",", "s", "S", "m", "M", "f", "F":
		return k
	}
	if len(k) == 1 && k[0] >= '0' && k[0] <= '9' {
		return k
	}
	return ""
}
