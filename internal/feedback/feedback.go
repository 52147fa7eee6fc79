// Package feedback формирует подсказки для пользователя по результату операции.
package feedback

import "fmt"

// Outcome - то, что вернула операция: Scalar, List или Done
type Outcome interface {
	isOutcome()
}

// Scalar - числовой результат
type Scalar float64

// List - результат в виде списка
type List []float64

// Done - операция без значения (например, отложенная бинарная операция)
type Done struct{}

func (Scalar) isOutcome() {}
func (List) isOutcome()   {}
func (Done) isOutcome()   {}

// Describe возвращает текст для поля информации.
// Для чисел используется одна из трех групп: < 100, [100, 200], > 200.
func Describe(outcome Outcome, label string) string {
	switch o := outcome.(type) {
	case Scalar:
		v := float64(o)
		switch {
		case v < 100:
			return fmt.Sprintf("Operation: %s. Info: the result is less than 100", label)
		case v <= 200:
			return fmt.Sprintf("Operation: %s. Info: the result is between 100 and 200", label)
		default:
			// NaN сюда тоже попадает
			return fmt.Sprintf("Operation: %s. Info: the result is greater than 200", label)
		}
	case List:
		return fmt.Sprintf("Operation: %s. Processed list of values (%d)", label, len(o))
	default:
		return fmt.Sprintf("Operation: %s. Result ready", label)
	}
}

// Error возвращает текст ошибки для поля информации
func Error(message string) string {
	return "Error: " + message
}

// Pending сообщает об ожидающей бинарной операции
func Pending(operator string) string {
	return "Pending operation: " + operator
}
