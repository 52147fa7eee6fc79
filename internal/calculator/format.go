package calculator

import (
	"math"
	"strconv"
	"strings"
)

// FormatNumber выводит число так, как его показывает дисплей:
// обычная запись для 1e-6 <= |v| < 1e21, иначе экспоненциальная ("1e+21", "1.5e-7").
// Знак отрицательного нуля сохраняется.
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		if math.Signbit(v) {
			return "-0"
		}
		return "0"
	}

	abs := math.Abs(v)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	s := strconv.FormatFloat(v, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	sign := exp[:1]
	digits := strings.TrimLeft(exp[1:], "0")
	return mantissa + "e" + sign + digits
}

// JoinList сериализует список для записи обратно в поле ввода
func JoinList(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = FormatNumber(v)
	}
	return strings.Join(parts, ", ")
}
