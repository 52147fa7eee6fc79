package calculator

import "strings"

// Press обрабатывает нажатие клавиши.
// Цифры, '.' и ',' дописываются в дисплей (',' как '.'), остальные клавиши
// запускают операции. Незнакомые клавиши игнорируются.
func (s *Session) Press(key string) error {
	if len(key) == 1 && key[0] >= '0' && key[0] <= '9' {
		s.Append(key)
		return nil
	}

	switch key {
	case ".", ",":
		s.Append(".")
		return nil
	case "Backspace":
		s.Backspace()
		return nil
	case "Escape":
		s.Clear()
		return nil
	case "+":
		return s.BeginBinary(OpAdd)
	case "*":
		return s.BeginBinary(OpMultiply)
	case "Enter", "=":
		return s.CompleteBinary()
	}

	switch strings.ToLower(key) {
	case "s":
		return s.SquareRoot()
	case "m":
		return s.Modulus()
	case "f":
		return s.Factorial()
	}
	return nil
}
