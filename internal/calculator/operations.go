package calculator

import (
	"utility-calculator/internal/chart"
	"utility-calculator/internal/feedback"
)

// Источники записей журнала
const (
	SourceSquare      = "square"
	SourceCube        = "cube"
	SourceSqrt        = "sqrt"
	SourcePower       = "pow-n"
	SourceModulus     = "modulus"
	SourceFactorial   = "factorial"
	SourceBeginBinary = "begin-binary"
	SourceEquals      = "equals"
	SourceSum         = "sum"
	SourceSort        = "sort"
	SourceReverse     = "reverse"
	SourceRemoveLast  = "remove-last"
	SourceMean        = "mean"
	SourceRemoveValue = "remove-value"
	SourcePlotList    = "plot-list"
)

func (s *Session) unary(op, label string, fn func(float64) float64) error {
	x, err := s.readNumber(op, s.display)
	if err != nil {
		return err
	}
	y := fn(x)
	s.display = FormatNumber(y)
	s.succeed(feedback.Scalar(y), label)
	return nil
}

func (s *Session) Square() error {
	return s.unary(SourceSquare, "Square", Square)
}

func (s *Session) Cube() error {
	return s.unary(SourceCube, "Cube", Cube)
}

func (s *Session) Modulus() error {
	return s.unary(SourceModulus, "Modulus", Modulus)
}

// SquareRoot записывает корень. Для отрицательного числа результат NaN
// и заметка "Negative number", ошибка не записывается.
func (s *Session) SquareRoot() error {
	x, err := s.readNumber(SourceSqrt, s.display)
	if err != nil {
		return err
	}
	y, negative := SquareRoot(x)
	s.display = FormatNumber(y)
	s.succeed(feedback.Scalar(y), "Square root")
	if negative {
		s.note = noteNegative
	}
	return nil
}

// Power возводит дисплей в степень из поля показателя
func (s *Session) Power() error {
	x, err := s.readNumber(SourcePower, s.display)
	if err != nil {
		return err
	}
	n, err := s.readOperand(SourcePower, s.exponent, ErrInvalidExponent, msgInvalidExponent)
	if err != nil {
		return err
	}
	y := Power(x, n)
	s.display = FormatNumber(y)
	s.succeed(feedback.Scalar(y), "Power n")
	return nil
}

func (s *Session) Factorial() error {
	x, err := s.readNumber(SourceFactorial, s.display)
	if err != nil {
		return err
	}
	y, err := Factorial(x)
	if err != nil {
		return s.fail(SourceFactorial, ErrDomain, msgDomain, FormatNumber(x))
	}
	s.display = FormatNumber(y)
	s.succeed(feedback.Scalar(y), "Factorial")
	return nil
}

// BeginBinary запоминает дисплей как первый операнд и очищает дисплей.
// Незавершенная операция перезаписывается.
func (s *Session) BeginBinary(op BinaryOperator) error {
	if op != OpAdd && op != OpMultiply {
		return s.fail(SourceBeginBinary, ErrUnknownOperator, "Unknown operator", string(op))
	}
	x, err := s.readNumber(SourceBeginBinary, s.display)
	if err != nil {
		return err
	}
	s.pending = &pendingOperation{operand: x, operator: op}
	s.info = feedback.Pending(string(op))
	s.note = ""
	s.display = ""
	return nil
}

// CompleteBinary применяет отложенную операцию ко второму операнду на дисплее.
// Без отложенной операции ничего не делает. Слот очищается только после успешного вычисления.
func (s *Session) CompleteBinary() error {
	if s.pending == nil {
		return nil
	}
	y, err := s.readNumber(SourceEquals, s.display)
	if err != nil {
		return err
	}

	var result float64
	label := "Addition"
	switch s.pending.operator {
	case OpAdd:
		result = s.pending.operand + y
	case OpMultiply:
		result = s.pending.operand * y
		label = "Multiplication"
	}
	s.display = FormatNumber(result)
	s.succeed(feedback.Scalar(result), label)
	s.pending = nil
	return nil
}

func (s *Session) withLoading(fn func() error) error {
	s.setLoading(true)
	defer s.setLoading(false)
	return fn()
}

// Sum записывает сумму списка в дисплей
func (s *Session) Sum() error {
	return s.withLoading(func() error {
		values, err := s.readList(SourceSum)
		if err != nil {
			return err
		}
		y := Sum(values)
		s.display = FormatNumber(y)
		s.succeed(feedback.Scalar(y), "List sum")
		return nil
	})
}

// Mean записывает среднее списка в дисплей
func (s *Session) Mean() error {
	return s.withLoading(func() error {
		values, err := s.readList(SourceMean)
		if err != nil {
			return err
		}
		return s.applyMean(values)
	})
}

func (s *Session) applyMean(values []float64) error {
	y, err := Mean(values)
	if err != nil {
		return s.fail(SourceMean, ErrEmptyList, msgEmptyList, "")
	}
	s.display = FormatNumber(y)
	s.succeed(feedback.Scalar(y), "List mean")
	return nil
}

// writeBack записывает список обратно в поле ввода
func (s *Session) writeBack(values []float64, label string) {
	s.list = JoinList(values)
	s.succeed(feedback.List(values), label)
}

func (s *Session) Sort() error {
	return s.withLoading(func() error {
		values, err := s.readList(SourceSort)
		if err != nil {
			return err
		}
		s.writeBack(SortAscending(values), "Sort list")
		return nil
	})
}

func (s *Session) Reverse() error {
	return s.withLoading(func() error {
		values, err := s.readList(SourceReverse)
		if err != nil {
			return err
		}
		s.writeBack(Reverse(values), "Reverse list")
		return nil
	})
}

func (s *Session) RemoveLast() error {
	return s.withLoading(func() error {
		values, err := s.readList(SourceRemoveLast)
		if err != nil {
			return err
		}
		return s.applyRemoveLast(values)
	})
}

func (s *Session) applyRemoveLast(values []float64) error {
	out, err := RemoveLast(values)
	if err != nil {
		return s.fail(SourceRemoveLast, ErrEmptyList, msgEmptyList, "")
	}
	s.writeBack(out, "Remove last")
	return nil
}

// RemoveValue удаляет из списка первое значение, совпадающее с полем target
func (s *Session) RemoveValue() error {
	return s.withLoading(func() error {
		values, err := s.readList(SourceRemoveValue)
		if err != nil {
			return err
		}
		target, err := s.readOperand(SourceRemoveValue, s.target, ErrInvalidValue, msgInvalidValue)
		if err != nil {
			return err
		}
		out, err := RemoveValue(values, target)
		if err != nil {
			return s.fail(SourceRemoveValue, ErrNotFound, msgNotFound, FormatNumber(target))
		}
		s.writeBack(out, "Remove value")
		return nil
	})
}

// Render рисует график на поверхности. Оси рисуются всегда,
// даже если список не прошел проверку.
func (s *Session) Render(mode chart.Mode, surface chart.Surface) error {
	frame := surface.Size()
	var values []float64
	if mode == chart.ModeList {
		var err error
		values, err = s.readList(SourcePlotList)
		if err != nil {
			chart.Draw(surface, chart.Drawing{Mode: mode, Frame: frame, Axes: frame.Axes()})
			return err
		}
	}

	d, err := chart.Plot(mode, values, frame)
	if err != nil {
		chart.Draw(surface, chart.Drawing{Mode: mode, Frame: frame, Axes: frame.Axes()})
		return err
	}
	chart.Draw(surface, d)
	s.info = "Operation: Chart " + mode.Label()
	s.note = ""
	return nil
}
