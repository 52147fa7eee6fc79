package calculator

// Action - имя действия, доступного через API
type Action string

const (
	ActionSquare      Action = "square"
	ActionCube        Action = "cube"
	ActionSqrt        Action = "sqrt"
	ActionPower       Action = "pow-n"
	ActionModulus     Action = "modulus"
	ActionFactorial   Action = "factorial"
	ActionAdd         Action = "add"
	ActionMultiply    Action = "multiply"
	ActionEquals      Action = "equals"
	ActionSum         Action = "sum"
	ActionSort        Action = "sort"
	ActionReverse     Action = "reverse"
	ActionRemoveLast  Action = "remove-last"
	ActionMean        Action = "mean"
	ActionRemoveValue Action = "remove-value"
	ActionClear       Action = "clear"
	ActionBackspace   Action = "backspace"
)

var actions = map[Action]func(*Session) error{
	ActionSquare:      (*Session).Square,
	ActionCube:        (*Session).Cube,
	ActionSqrt:        (*Session).SquareRoot,
	ActionPower:       (*Session).Power,
	ActionModulus:     (*Session).Modulus,
	ActionFactorial:   (*Session).Factorial,
	ActionAdd:         func(s *Session) error { return s.BeginBinary(OpAdd) },
	ActionMultiply:    func(s *Session) error { return s.BeginBinary(OpMultiply) },
	ActionEquals:      (*Session).CompleteBinary,
	ActionSum:         (*Session).Sum,
	ActionSort:        (*Session).Sort,
	ActionReverse:     (*Session).Reverse,
	ActionRemoveLast:  (*Session).RemoveLast,
	ActionMean:        (*Session).Mean,
	ActionRemoveValue: (*Session).RemoveValue,
	ActionClear:       func(s *Session) error { s.Clear(); return nil },
	ActionBackspace:   func(s *Session) error { s.Backspace(); return nil },
}

// KnownAction сообщает, есть ли такое действие
func KnownAction(name string) bool {
	_, ok := actions[Action(name)]
	return ok
}

// Do выполняет действие по имени
func (s *Session) Do(action Action) error {
	fn, ok := actions[action]
	if !ok {
		return ErrUnknownAction
	}
	return fn(s)
}
