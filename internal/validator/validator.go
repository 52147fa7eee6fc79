// Package validator классифицирует сырой текст из полей калькулятора:
// одно число, список через запятую или некорректный ввод.
package validator

import (
	"math"
	"strconv"
	"strings"
)

// Коды причин некорректного ввода
const (
	ReasonEmpty      = "empty"
	ReasonInvalid    = "invalid"
	ReasonCSVEmpty   = "csv-empty"
	ReasonCSVInvalid = "csv-invalid"
)

var reasonMessages = map[string]string{
	ReasonEmpty:      "Empty input",
	ReasonInvalid:    "Invalid input",
	ReasonCSVEmpty:   "CSV list is empty",
	ReasonCSVInvalid: "CSV contains non-numeric values",
}

// Result - результат валидации. Реализуется только типами этого пакета:
// Empty, Number, NumericList и Invalid.
type Result interface {
	isResult()
}

// Empty - ввод отсутствует или состоит из пробелов
type Empty struct{}

// Number - одно конечное число
type Number struct {
	Value float64
}

// NumericList - непустой список чисел в порядке ввода
type NumericList struct {
	Values []float64
}

// Invalid - ввод не распознан
type Invalid struct {
	Reason string
}

func (Empty) isResult()       {}
func (Number) isResult()      {}
func (NumericList) isResult() {}
func (Invalid) isResult()     {}

// Message возвращает человекочитаемую причину
func (i Invalid) Message() string {
	if msg, ok := reasonMessages[i.Reason]; ok {
		return msg
	}
	return reasonMessages[ReasonInvalid]
}

// Message возвращает текст для пустого ввода
func (Empty) Message() string {
	return reasonMessages[ReasonEmpty]
}

// Validate классифицирует строку. Функция чистая: одинаковый ввод дает одинаковый результат.
func Validate(raw string) Result {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Empty{}
	}

	// Одиночное число проверяется раньше списка, поэтому "1,5" - это 1.5
	if v, ok := ParseNumber(s); ok {
		return Number{Value: v}
	}

	if !strings.Contains(s, ",") {
		return Invalid{Reason: ReasonInvalid}
	}

	parts := strings.Split(s, ",")
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	if len(tokens) == 0 {
		return Invalid{Reason: ReasonCSVEmpty}
	}

	values := make([]float64, 0, len(tokens))
	for _, token := range tokens {
		v, ok := ParseNumber(token)
		if !ok {
			return Invalid{Reason: ReasonCSVInvalid}
		}
		values = append(values, v)
	}
	return NumericList{Values: values}
}

// ValidatePtr обрабатывает отсутствующее значение поля как пустой ввод
func ValidatePtr(raw *string) Result {
	if raw == nil {
		return Empty{}
	}
	return Validate(*raw)
}

// ParseNumber разбирает десятичное число, в котором первая запятая
// может играть роль десятичного разделителя. Бесконечности и NaN не принимаются.
func ParseNumber(s string) (float64, bool) {
	s = strings.Replace(strings.TrimSpace(s), ",", ".", 1)
	if s == "" || !decimalSyntax(s) {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// decimalSyntax отсекает запись, которую понимает только Go:
// разделители "_" и шестнадцатеричные числа
func decimalSyntax(s string) bool {
	if strings.ContainsRune(s, '_') {
		return false
	}
	unsigned := strings.TrimLeft(s, "+-")
	return !strings.HasPrefix(unsigned, "0x") && !strings.HasPrefix(unsigned, "0X")
}
