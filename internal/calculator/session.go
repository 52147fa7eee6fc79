// Package calculator содержит операции калькулятора и сессию,
// которая хранит поля ввода, отложенную бинарную операцию и журнал ошибок.
package calculator

import (
	"utility-calculator/internal/errlog"
	"utility-calculator/internal/feedback"
	"utility-calculator/internal/validator"
)

// Field - поле ввода сессии
type Field string

const (
	FieldDisplay  Field = "display"
	FieldExponent Field = "exponent"
	FieldList     Field = "list"
	FieldTarget   Field = "target"
)

// BinaryOperator - оператор отложенной операции
type BinaryOperator string

const (
	OpAdd      BinaryOperator = "add"
	OpMultiply BinaryOperator = "multiply"
)

const noteNegative = "Negative number"

type pendingOperation struct {
	operand  float64
	operator BinaryOperator
}

// Session - состояние одного калькулятора.
// Методы не потокобезопасны: доступ сериализует Registry.
type Session struct {
	display  string
	exponent string
	list     string
	target   string
	info     string
	note     string
	loading  bool
	pending  *pendingOperation
	log      *errlog.Log

	onLoading func(bool)
	onError   func(errlog.Entry)
}

// Option настраивает сессию
type Option func(*Session)

// WithLog задает журнал ошибок
func WithLog(log *errlog.Log) Option {
	return func(s *Session) { s.log = log }
}

// WithLoadingObserver вызывается при включении и выключении индикатора загрузки
func WithLoadingObserver(fn func(bool)) Option {
	return func(s *Session) { s.onLoading = fn }
}

// WithErrorObserver вызывается после каждой записи в журнал ошибок
func WithErrorObserver(fn func(errlog.Entry)) Option {
	return func(s *Session) { s.onError = fn }
}

// NewSession создает пустую сессию
func NewSession(opts ...Option) *Session {
	s := &Session{}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = errlog.New()
	}
	return s
}

// Log возвращает журнал ошибок сессии
func (s *Session) Log() *errlog.Log {
	return s.log
}

func (s *Session) Info() string { return s.info }
func (s *Session) Note() string { return s.note }

// Field возвращает текст поля
func (s *Session) Field(name Field) (string, error) {
	p, err := s.fieldPtr(name)
	if err != nil {
		return "", err
	}
	return *p, nil
}

// SetField заменяет текст поля
func (s *Session) SetField(name Field, value string) error {
	p, err := s.fieldPtr(name)
	if err != nil {
		return err
	}
	*p = value
	return nil
}

// SetFields заменяет несколько полей сразу. Если хотя бы одно имя
// неизвестно, ни одно поле не меняется.
func (s *Session) SetFields(values map[string]string) error {
	for name := range values {
		if _, err := s.fieldPtr(Field(name)); err != nil {
			return err
		}
	}
	for name, value := range values {
		s.SetField(Field(name), value)
	}
	return nil
}

func (s *Session) fieldPtr(name Field) (*string, error) {
	switch name {
	case FieldDisplay:
		return &s.display, nil
	case FieldExponent:
		return &s.exponent, nil
	case FieldList:
		return &s.list, nil
	case FieldTarget:
		return &s.target, nil
	}
	return nil, ErrUnknownField
}

// Append дописывает текст в дисплей
func (s *Session) Append(text string) {
	s.display += text
}

// Backspace удаляет последний символ дисплея
func (s *Session) Backspace() {
	r := []rune(s.display)
	if len(r) > 0 {
		s.display = string(r[:len(r)-1])
	}
}

// Clear очищает дисплей
func (s *Session) Clear() {
	s.display = ""
}

// Pending возвращает отложенную операцию, если она есть
func (s *Session) Pending() (float64, BinaryOperator, bool) {
	if s.pending == nil {
		return 0, "", false
	}
	return s.pending.operand, s.pending.operator, true
}

// PendingState - отложенная операция в снимке состояния
type PendingState struct {
	Operand  float64        `json:"operand"`
	Operator BinaryOperator `json:"operator"`
}

// State - снимок состояния сессии
type State struct {
	Display    string        `json:"display"`
	Exponent   string        `json:"exponent"`
	List       string        `json:"list"`
	Target     string        `json:"target"`
	Info       string        `json:"info"`
	Note       string        `json:"note,omitempty"`
	Pending    *PendingState `json:"pending"`
	Loading    bool          `json:"loading"`
	ErrorCount int           `json:"error_count"`
}

// State возвращает снимок состояния
func (s *Session) State() State {
	st := State{
		Display:    s.display,
		Exponent:   s.exponent,
		List:       s.list,
		Target:     s.target,
		Info:       s.info,
		Note:       s.note,
		Loading:    s.loading,
		ErrorCount: s.log.Len(),
	}
	if s.pending != nil {
		st.Pending = &PendingState{Operand: s.pending.operand, Operator: s.pending.operator}
	}
	return st
}

// fail записывает ошибку в журнал, меняет только поле информации
func (s *Session) fail(op string, kind error, message, detail string) error {
	entry := s.log.Record(op, message, detail)
	s.info = feedback.Error(message)
	s.note = ""
	if s.onError != nil {
		s.onError(entry)
	}
	return &OperationError{Op: op, Kind: kind, Message: message}
}

func (s *Session) succeed(outcome feedback.Outcome, label string) {
	s.info = feedback.Describe(outcome, label)
	s.note = ""
}

func (s *Session) setLoading(on bool) {
	s.loading = on
	if s.onLoading != nil {
		s.onLoading(on)
	}
}

// readNumber читает поле как одно число
func (s *Session) readNumber(op, raw string) (float64, error) {
	switch r := validator.Validate(raw).(type) {
	case validator.Number:
		return r.Value, nil
	case validator.Empty:
		return 0, s.fail(op, ErrEmptyInput, r.Message(), validator.ReasonEmpty)
	case validator.Invalid:
		return 0, s.fail(op, ErrInvalidInput, r.Message(), r.Reason)
	case validator.NumericList:
		return 0, s.fail(op, ErrInvalidInput, msgInvalidInput, "")
	}
	return 0, s.fail(op, ErrInvalidInput, msgInvalidInput, "")
}

// readList читает поле списка
func (s *Session) readList(op string) ([]float64, error) {
	switch r := validator.Validate(s.list).(type) {
	case validator.NumericList:
		return r.Values, nil
	case validator.Empty:
		return nil, s.fail(op, ErrEmptyInput, r.Message(), validator.ReasonEmpty)
	case validator.Invalid:
		return nil, s.fail(op, ErrInvalidInput, r.Message(), r.Reason)
	case validator.Number:
		return nil, s.fail(op, ErrInvalidInput, msgInvalidCSV, "")
	}
	return nil, s.fail(op, ErrInvalidInput, msgInvalidCSV, "")
}

// readOperand читает дополнительное поле, ошибка которого имеет свой вид
func (s *Session) readOperand(op, raw string, kind error, message string) (float64, error) {
	if r, ok := validator.Validate(raw).(validator.Number); ok {
		return r.Value, nil
	}
	return 0, s.fail(op, kind, message, raw)
}
