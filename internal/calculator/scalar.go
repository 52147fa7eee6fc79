package calculator

import "math"

// Square - квадрат x
func Square(x float64) float64 {
	return x * x
}

// Cube - куб x
func Cube(x float64) float64 {
	return x * x * x
}

// SquareRoot возвращает корень и признак отрицательного аргумента.
// Для отрицательных чисел результат - NaN, это не ошибка.
func SquareRoot(x float64) (float64, bool) {
	return math.Sqrt(x), x < 0
}

// Power возводит x в степень n
func Power(x, n float64) float64 {
	return math.Pow(x, n)
}

// Modulus - абсолютное значение
func Modulus(x float64) float64 {
	return math.Abs(x)
}

// Factorial считает 2*3*...*x для целых x >= 0.
// Переполнение не проверяется: большие x дают +Inf.
func Factorial(x float64) (float64, error) {
	if x != math.Floor(x) || x < 0 || math.IsInf(x, 0) {
		return 0, ErrDomain
	}
	acc := 1.0
	for i := 2.0; i <= x; i++ {
		acc *= i
		if math.IsInf(acc, 1) {
			// дальше значение уже не меняется
			break
		}
	}
	return acc, nil
}
