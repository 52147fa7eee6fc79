package calculator

import (
	"math"
	"sort"
)

func Sum(values []float64) float64 {
	s := 0.0
	for _, v := range values {
		s += v
	}
	return s
}

// Mean возвращает среднее значение списка
func Mean(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, ErrEmptyList
	}
	return Sum(values) / float64(len(values)), nil
}

// SortAscending возвращает отсортированную по возрастанию копию.
// Сортировка устойчивая: равные значения (в том числе -0 и 0) сохраняют порядок.
func SortAscending(values []float64) []float64 {
	out := make([]float64, len(values))
	copy(out, values)
	sort.SliceStable(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func Reverse(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[len(values)-1-i] = v
	}
	return out
}

// RemoveLast возвращает список без последнего элемента
func RemoveLast(values []float64) ([]float64, error) {
	if len(values) == 0 {
		return nil, ErrEmptyList
	}
	out := make([]float64, len(values)-1)
	copy(out, values)
	return out, nil
}

// SameValue сравнивает числа побитово: -0 и 0 различаются, NaN равен NaN
func SameValue(a, b float64) bool {
	if math.IsNaN(a) && math.IsNaN(b) {
		return true
	}
	return math.Float64bits(a) == math.Float64bits(b)
}

// RemoveValue удаляет первое вхождение target по SameValue
func RemoveValue(values []float64, target float64) ([]float64, error) {
	for i, v := range values {
		if SameValue(v, target) {
			out := make([]float64, 0, len(values)-1)
			out = append(out, values[:i]...)
			return append(out, values[i+1:]...), nil
		}
	}
	return nil, ErrNotFound
}
