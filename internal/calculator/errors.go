package calculator

import "errors"

// Виды ошибок операций
var (
	ErrEmptyInput      = errors.New("empty input")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidExponent = errors.New("invalid exponent")
	ErrInvalidValue    = errors.New("invalid value to remove")
	ErrDomain          = errors.New("factorial is defined only for non-negative integers")
	ErrEmptyList       = errors.New("CSV list is empty")
	ErrNotFound        = errors.New("value not found in CSV")
	ErrUnknownAction   = errors.New("unknown action")
	ErrUnknownField    = errors.New("unknown field")
	ErrUnknownOperator = errors.New("unknown binary operator")
)

// Сообщения для пользователя
const (
	msgInvalidInput    = "Invalid input"
	msgInvalidCSV      = "Invalid CSV"
	msgInvalidExponent = "Invalid exponent"
	msgInvalidValue    = "Invalid value to remove"
	msgDomain          = "Factorial is defined only for non-negative integers"
	msgEmptyList       = "CSV list is empty"
	msgNotFound        = "Value not found in CSV"
)

// OperationError - ошибка операции, уже записанная в журнал сессии
type OperationError struct {
	Op      string
	Kind    error
	Message string
}

func (e *OperationError) Error() string {
	return e.Op + ": " + e.Message
}

func (e *OperationError) Unwrap() error {
	return e.Kind
}

// Failure - ошибка операции в ответах HTTP и gRPC
type Failure struct {
	Op      string `json:"op"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// FailureFrom возвращает описание ошибки операции или nil для остальных ошибок
func FailureFrom(err error) *Failure {
	var opErr *OperationError
	if !errors.As(err, &opErr) {
		return nil
	}
	return &Failure{Op: opErr.Op, Kind: opErr.Kind.Error(), Message: opErr.Message}
}
