package console

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"utility-calculator/internal/calculator"
	"utility-calculator/internal/grpc"
)

// fakeRemote выполняет вызовы над локальной сессией и запоминает их
type fakeRemote struct {
	session *calculator.Session
	calls   []string
	fields  []map[string]string
	err     error
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{session: calculator.NewSession()}
}

func (f *fakeRemote) reply(err error) (grpc.Reply, error) {
	if f.err != nil {
		return grpc.Reply{}, f.err
	}
	r := grpc.Reply{State: f.session.State()}
	var opErr *calculator.OperationError
	if errors.As(err, &opErr) {
		return r, nil
	}
	return r, err
}

func (f *fakeRemote) Do(action calculator.Action, fields map[string]string) (grpc.Reply, error) {
	f.calls = append(f.calls, "do:"+string(action))
	f.fields = append(f.fields, fields)
	if err := f.session.SetFields(fields); err != nil {
		return f.reply(err)
	}
	return f.reply(f.session.Do(action))
}

func (f *fakeRemote) Press(key string) (grpc.Reply, error) {
	f.calls = append(f.calls, "key:"+key)
	return f.reply(f.session.Press(key))
}

func (f *fakeRemote) SetFields(fields map[string]string) (grpc.Reply, error) {
	f.calls = append(f.calls, "fields")
	f.fields = append(f.fields, fields)
	return f.reply(f.session.SetFields(fields))
}

func (f *fakeRemote) State() (grpc.Reply, error) {
	f.calls = append(f.calls, "state")
	return f.reply(nil)
}

func (f *fakeRemote) Export(format string) (grpc.Export, error) {
	f.calls = append(f.calls, "export:"+format)
	data, name, err := f.session.Log().ExportJSON()
	return grpc.Export{Name: name, Data: data}, err
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send передает клавишу модели и, если run, выполняет команду и отдает результат обратно
func send(t *testing.T, m Model, msg tea.KeyMsg, run bool) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	m = next.(Model)
	if run {
		if cmd == nil {
			t.Fatalf("key %q produced no command", msg.String())
		}
		next, _ = m.Update(cmd())
		m = next.(Model)
	}
	return m
}

// TestDisplayKeys проверяет передачу клавиш дисплея в сессию
func TestDisplayKeys(t *testing.T) {
	remote := newFakeRemote()
	m := New(remote, t.TempDir())

	for _, k := range []tea.KeyMsg{runes("1"), runes("2"), runes("+"), runes("3"), {Type: tea.KeyEnter}} {
		m = send(t, m, k, true)
	}

	if got := m.State().Display; got != "15" {
		t.Errorf("display = %q, want 15", got)
	}
	want := []string{"key:1", "key:2", "key:+", "key:3", "key:Enter"}
	if !reflect.DeepEqual(remote.calls, want) {
		t.Errorf("calls = %v, want %v", remote.calls, want)
	}

	// неизвестные клавиши не отправляются
	next, cmd := m.Update(runes("q"))
	if cmd != nil {
		t.Error("unexpected command for unmapped key")
	}
	m = next.(Model)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc}, true)
	if got := m.State().Display; got != "" {
		t.Errorf("display after esc = %q", got)
	}
}

// TestFocusAndFieldSave проверяет переключение фокуса и сохранение поля по Enter
func TestFocusAndFieldSave(t *testing.T) {
	remote := newFakeRemote()
	m := New(remote, t.TempDir())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab}, false)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab}, false)
	if m.focus != focusList {
		t.Fatalf("focus = %d, want list", m.focus)
	}

	m = send(t, m, runes("3,1,2"), false)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter}, true)

	if got := m.State().List; got != "3,1,2" {
		t.Errorf("list = %q", got)
	}
	if len(remote.fields) != 1 || remote.fields[0]["list"] != "3,1,2" {
		t.Errorf("fields sent = %v", remote.fields)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab}, false)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyShiftTab}, false)
	if m.focus != focusDisplay {
		t.Errorf("focus = %d, want display", m.focus)
	}
}

// TestActionBindings проверяет, что действие отправляет текущие поля и результат записывается обратно
func TestActionBindings(t *testing.T) {
	remote := newFakeRemote()
	m := New(remote, t.TempDir())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab}, false)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab}, false)
	m = send(t, m, runes("3, 1, 2"), false)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlO}, true)
	if got := m.inputs[focusList].Value(); got != "1, 2, 3" {
		t.Errorf("list input after sort = %q", got)
	}
	if m.State().Info != "Operation: Sort list. Processed list of values (3)" {
		t.Errorf("info = %q", m.State().Info)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlU}, true)
	if got := m.State().Display; got != "6" {
		t.Errorf("display after sum = %q", got)
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlD}, true)
	if m.State().ErrorCount != 1 || !strings.HasPrefix(m.State().Info, "Error: ") {
		t.Errorf("remove-value with empty target should fail, state %+v", m.State())
	}
	if !strings.Contains(m.View(), "Errors logged: 1") {
		t.Error("view does not show error count")
	}
}

// TestExportWritesFile проверяет ctrl+x
func TestExportWritesFile(t *testing.T) {
	remote := newFakeRemote()
	dir := t.TempDir()
	m := New(remote, dir)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlA}, true)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlX}, true)

	if m.err != nil {
		t.Fatalf("export error = %v", m.err)
	}
	matches, _ := filepath.Glob(filepath.Join(dir, "calculadora-logs-*.json"))
	if len(matches) != 1 {
		t.Fatalf("exported files = %v", matches)
	}
	data, err := os.ReadFile(matches[0])
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"source": "mean"`) {
		t.Errorf("unexpected export %s", data)
	}
	if !strings.Contains(m.status, matches[0]) {
		t.Errorf("status = %q", m.status)
	}
}

// TestConnectionError проверяет, что ошибка транспорта показывается и не сбрасывает состояние
func TestConnectionError(t *testing.T) {
	remote := newFakeRemote()
	m := New(remote, t.TempDir())
	m = send(t, m, runes("7"), true)

	remote.err = errors.New("connection refused")
	m = send(t, m, runes("8"), true)

	if m.State().Display != "7" {
		t.Errorf("display = %q, want 7", m.State().Display)
	}
	if !strings.Contains(m.View(), "Connection error: connection refused") {
		t.Error("view does not show connection error")
	}
}

func TestQuit(t *testing.T) {
	m := New(newFakeRemote(), t.TempDir())
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c produced no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c should quit")
	}
}
