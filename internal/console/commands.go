package console

import (
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"utility-calculator/internal/calculator"
	"utility-calculator/internal/grpc"
)

// Remote - удаленная сессия калькулятора
type Remote interface {
	Do(action calculator.Action, fields map[string]string) (grpc.Reply, error)
	Press(key string) (grpc.Reply, error)
	SetFields(fields map[string]string) (grpc.Reply, error)
	State() (grpc.Reply, error)
	Export(format string) (grpc.Export, error)
}

type replyMsg struct {
	reply grpc.Reply
	err   error
}

type exportMsg struct {
	path string
	err  error
}

func toReply(reply grpc.Reply, err error) tea.Msg {
	return replyMsg{reply: reply, err: err}
}

func (m Model) fetchState() tea.Cmd {
	return func() tea.Msg { return toReply(m.remote.State()) }
}

func (m Model) press(k string) tea.Cmd {
	return func() tea.Msg { return toReply(m.remote.Press(k)) }
}

func (m Model) setFields(fields map[string]string) tea.Cmd {
	return func() tea.Msg { return toReply(m.remote.SetFields(fields)) }
}

func (m Model) do(action calculator.Action, fields map[string]string) tea.Cmd {
	return func() tea.Msg { return toReply(m.remote.Do(action, fields)) }
}

// export сохраняет журнал ошибок в JSON в каталог dir
func (m Model) export() tea.Cmd {
	return func() tea.Msg {
		export, err := m.remote.Export("json")
		if err != nil {
			return exportMsg{err: err}
		}
		path := filepath.Join(m.dir, export.Name)
		if err := os.WriteFile(path, export.Data, 0644); err != nil {
			return exportMsg{err: err}
		}
		return exportMsg{path: path}
	}
}
